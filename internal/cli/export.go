package cli

import (
	"flag"
	"fmt"

	"github.com/mrlokans/devotional/internal/exporters"
)

// ExportCommand writes bookmarks and studies as markdown notes.
type ExportCommand struct {
	storeFlags
	output

	Dir   string
	Study string
}

func NewExportCommand() *ExportCommand {
	return &ExportCommand{output: defaultOutput()}
}

func (cmd *ExportCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("export", flag.ExitOnError)
	cmd.storeFlags.register(fs)

	fs.StringVar(&cmd.Dir, "dir", "", "Export directory (default: the configured export directory)")
	fs.StringVar(&cmd.Study, "study", "", "Export only the study with this id")

	fs.Usage = usage(fs, "export [options]",
		"Export bookmarked prayers and studies as markdown notes, e.g. into an Obsidian vault.",
		"export -dir ~/Obsidian/Vault",
		"export -study <id>",
	)

	return fs.Parse(args)
}

func (cmd *ExportCommand) Run() error {
	app, err := cmd.open(cmd.Now)
	if err != nil {
		return err
	}
	defer app.Close()

	dir := cmd.Dir
	if dir == "" {
		dir = app.Settings.GetExportDir()
	}
	if dir == "" {
		return fmt.Errorf("no export directory: pass -dir or set EXPORT_DIR")
	}
	exporter := exporters.NewMarkdownExporter(dir)

	if cmd.Study != "" {
		study, ok := app.Studies.GetStudy(cmd.Study)
		if !ok {
			return fmt.Errorf("study %s not found", cmd.Study)
		}
		path, err := exporter.ExportStudy(study)
		app.Audit.LogExport("study_export", "Exported study "+cmd.Study, 0, 1, err)
		if err != nil {
			return err
		}
		cmd.printf("Exported %s to %s\n", study.DisplayTitle(), path)
		return nil
	}

	result, err := exporter.Export(app.Bookmarks.List(), app.Studies.List())
	app.Audit.LogExport("markdown_export", "Export (cli) to "+dir, result.BookmarksProcessed, result.StudiesProcessed, err)
	if err != nil {
		return err
	}

	cmd.printf("Exported to %s\n", result.OutputDir)
	cmd.printf("  bookmarks: %d exported, %d failed\n", result.BookmarksProcessed, result.BookmarksFailed)
	cmd.printf("  studies:   %d exported, %d failed\n", result.StudiesProcessed, result.StudiesFailed)
	if result.NotesRemoved > 0 {
		cmd.printf("  removed:   %d stale notes\n", result.NotesRemoved)
	}
	return nil
}
