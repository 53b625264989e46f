package cli

import (
	"flag"
	"fmt"
)

// StudiesCommand lists, creates and deletes studies.
type StudiesCommand struct {
	storeFlags
	output

	New    string
	Create bool
	Delete string
}

func NewStudiesCommand() *StudiesCommand {
	return &StudiesCommand{output: defaultOutput()}
}

func (cmd *StudiesCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("studies", flag.ExitOnError)
	cmd.storeFlags.register(fs)

	fs.StringVar(&cmd.New, "new", "", "Start a study of this passage (e.g. \"John 3:16-21\")")
	fs.BoolVar(&cmd.Create, "create", false, "Start a study without a passage")
	fs.StringVar(&cmd.Delete, "delete", "", "Delete the study with this id")

	fs.Usage = usage(fs, "studies [options]",
		"List Bible studies, most recently started first.",
		"studies",
		"studies -new \"John 3:16-21\"",
		"studies -delete <id>",
	)

	if err := fs.Parse(args); err != nil {
		return err
	}
	if cmd.Delete != "" && (cmd.New != "" || cmd.Create) {
		return fmt.Errorf("-delete cannot be combined with -new or -create")
	}
	return nil
}

func (cmd *StudiesCommand) Run() error {
	app, err := cmd.open(cmd.Now)
	if err != nil {
		return err
	}
	defer app.Close()

	switch {
	case cmd.Delete != "":
		study, ok := app.Studies.GetStudy(cmd.Delete)
		if !ok {
			return fmt.Errorf("study %s not found", cmd.Delete)
		}
		app.Studies.DeleteStudy(cmd.Delete)
		app.Audit.LogStudy("study_delete", cmd.Delete, "Deleted study "+study.DisplayTitle())
		cmd.printf("Deleted study %s\n", study.DisplayTitle())
		return nil

	case cmd.New != "" || cmd.Create:
		study := app.Studies.CreateStudy(cmd.New)
		app.Audit.LogStudy("study_create", study.ID, "Started study "+study.DisplayTitle())
		cmd.printf("Started study %s\n", study.DisplayTitle())
		cmd.printf("ID: %s\n", study.ID)
		return nil
	}

	summaries := app.Studies.Summaries()
	if len(summaries) == 0 {
		cmd.println("No studies yet. Start one with -new \"<passage>\"")
		return nil
	}

	for _, s := range summaries {
		cmd.printf("%s  %-30s step %d/8  %d%% complete\n", s.ID, s.Title, s.CurrentStep, s.ProgressPercent)
	}
	return nil
}
