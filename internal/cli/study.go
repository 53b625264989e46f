package cli

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/mrlokans/devotional/internal/audit"
	"github.com/mrlokans/devotional/internal/progress"
	"github.com/mrlokans/devotional/internal/share"
)

// StudyCommand works through the steps of one study.
type StudyCommand struct {
	storeFlags
	output

	ID       string
	Next     bool
	Previous bool
	Jump     int
	Notes    string
	SetNotes bool
	Toggle   bool
	Export   bool
	Share    bool
}

func NewStudyCommand() *StudyCommand {
	return &StudyCommand{output: defaultOutput()}
}

func (cmd *StudyCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("study", flag.ExitOnError)
	cmd.storeFlags.register(fs)

	fs.StringVar(&cmd.ID, "id", "", "Study id (required)")
	fs.BoolVar(&cmd.Next, "next", false, "Move to the next step")
	fs.BoolVar(&cmd.Previous, "prev", false, "Move to the previous step")
	fs.IntVar(&cmd.Jump, "jump", 0, "Jump to step 1-8")
	fs.StringVar(&cmd.Notes, "notes", "", "Replace the notes of the current step")
	fs.BoolVar(&cmd.Toggle, "toggle", false, "Toggle completion of the current step")
	fs.BoolVar(&cmd.Export, "export", false, "Print the study as plain text")
	fs.BoolVar(&cmd.Share, "share", false, "Print the study in its shareable form")

	fs.Usage = usage(fs, "study -id <id> [options]",
		"Show the current step of a study, move between steps and take notes.",
		"study -id <id>",
		"study -id <id> -next",
		"study -id <id> -notes \"Jesus speaks to Nicodemus at night\" -toggle",
		"study -id <id> -export > study.txt",
	)

	if err := fs.Parse(args); err != nil {
		return err
	}

	fs.Visit(func(f *flag.Flag) {
		if f.Name == "notes" {
			cmd.SetNotes = true
		}
	})

	if cmd.ID == "" {
		return fmt.Errorf("-id is required")
	}
	moves := 0
	for _, set := range []bool{cmd.Next, cmd.Previous, cmd.Jump != 0} {
		if set {
			moves++
		}
	}
	if moves > 1 {
		return fmt.Errorf("only one of -next, -prev and -jump may be given")
	}
	return nil
}

func (cmd *StudyCommand) Run() error {
	app, err := cmd.open(cmd.Now)
	if err != nil {
		return err
	}
	defer app.Close()

	study, ok := app.Studies.GetStudy(cmd.ID)
	if !ok {
		return fmt.Errorf("study %s not found", cmd.ID)
	}
	title := study.DisplayTitle()

	if cmd.Export {
		cmd.printf("%s", app.Studies.ExportStudy(cmd.ID))
		return nil
	}

	if cmd.Share {
		sharer := share.NewSharer(nil, share.WriterClipboard{W: cmd.Out}, share.WriterNotifier{W: cmd.Err})
		outcome := sharer.ShareStudy(context.Background(), title, app.Studies.ExportStudy(cmd.ID))
		app.Audit.LogShare(audit.EntityStudy, cmd.ID, string(outcome), !outcome.Succeeded())
		if !outcome.Succeeded() {
			return fmt.Errorf("share failed")
		}
		return nil
	}

	ctrl, err := progress.New(app.Studies, cmd.ID)
	if err != nil {
		return err
	}

	switch {
	case cmd.Next:
		_, err = ctrl.Next()
	case cmd.Previous:
		_, err = ctrl.Previous()
	case cmd.Jump != 0:
		err = ctrl.JumpTo(cmd.Jump)
	}
	if err != nil {
		return err
	}

	if cmd.SetNotes {
		if err := ctrl.UpdateNotes(cmd.Notes); err != nil {
			return err
		}
	}
	if cmd.Toggle {
		if err := ctrl.ToggleComplete(); err != nil {
			return err
		}
	}

	view, err := ctrl.View()
	if err != nil {
		return err
	}
	prog, err := ctrl.Progress()
	if err != nil {
		return err
	}

	cmd.printf("%s\n", title)
	cmd.printf("Step %d of 8: %s  (%d%% complete)\n\n", view.Step.ID, view.Step.Name, prog.Percent)
	cmd.printf("%s\n\n", view.Step.Description)
	for _, q := range view.Step.GuidingQuestions {
		cmd.printf("  ? %s\n", q)
	}

	status := "not completed"
	if view.Data.Completed {
		status = "completed"
	}
	cmd.printf("\nStatus: %s\n", status)
	if strings.TrimSpace(view.Data.Notes) != "" {
		cmd.printf("Notes:\n%s\n", view.Data.Notes)
	}
	return nil
}
