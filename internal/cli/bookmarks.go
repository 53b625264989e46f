package cli

import (
	"flag"
	"fmt"
)

// BookmarksCommand lists or removes bookmarked prayers.
type BookmarksCommand struct {
	storeFlags
	output

	Remove  string
	Verbose bool
}

func NewBookmarksCommand() *BookmarksCommand {
	return &BookmarksCommand{output: defaultOutput()}
}

func (cmd *BookmarksCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("bookmarks", flag.ExitOnError)
	cmd.storeFlags.register(fs)

	fs.StringVar(&cmd.Remove, "remove", "", "Remove the bookmark with this id (e.g. 2024-03-01-morning)")
	fs.BoolVar(&cmd.Verbose, "verbose", false, "Show the scripture of each bookmark")

	fs.Usage = usage(fs, "bookmarks [options]",
		"List bookmarked prayers, most recent first.",
		"bookmarks -verbose",
		"bookmarks -remove 2024-03-01-morning",
	)

	return fs.Parse(args)
}

func (cmd *BookmarksCommand) Run() error {
	app, err := cmd.open(cmd.Now)
	if err != nil {
		return err
	}
	defer app.Close()

	if cmd.Remove != "" {
		if _, ok := app.Bookmarks.Get(cmd.Remove); !ok {
			return fmt.Errorf("bookmark %s not found", cmd.Remove)
		}
		app.Bookmarks.RemoveBookmark(cmd.Remove)
		app.Audit.LogBookmark("bookmark_remove", cmd.Remove, "Removed bookmark "+cmd.Remove)
		cmd.printf("Removed bookmark %s\n", cmd.Remove)
		return nil
	}

	list := app.Bookmarks.List()
	if len(list) == 0 {
		cmd.println("No bookmarks yet")
		return nil
	}

	cmd.printf("%d bookmarked prayers\n\n", len(list))
	for _, b := range list {
		cmd.printf("%-22s %s Prayer, %s\n", b.ID, b.TimeOfDay.Label(), b.Date)
		if cmd.Verbose {
			cmd.printf("    %s (%s)\n", b.Scripture.Text, b.Scripture.Reference)
		}
	}
	return nil
}
