package cli

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/mrlokans/devotional/internal/audit"
	"github.com/mrlokans/devotional/internal/content"
	"github.com/mrlokans/devotional/internal/entities"
	"github.com/mrlokans/devotional/internal/share"
)

// TodayCommand prints the prayer for the current (or a given) day and slot.
type TodayCommand struct {
	storeFlags
	output

	Date      string
	TimeOfDay string
	All       bool
	Bookmark  bool
	Share     bool
}

func NewTodayCommand() *TodayCommand {
	return &TodayCommand{output: defaultOutput()}
}

func (cmd *TodayCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("today", flag.ExitOnError)
	cmd.storeFlags.register(fs)

	fs.StringVar(&cmd.Date, "date", "", "Day to show as YYYY-MM-DD (default: today)")
	fs.StringVar(&cmd.TimeOfDay, "time", "", "Slot to show: morning, midday or evening (default: current)")
	fs.BoolVar(&cmd.All, "all", false, "Show all three prayers of the day")
	fs.BoolVar(&cmd.Bookmark, "bookmark", false, "Bookmark the prayer that is shown")
	fs.BoolVar(&cmd.Share, "share", false, "Print the prayer in its shareable text form")

	fs.Usage = usage(fs, "today [options]",
		"Show today's prayer for the current time of day.",
		"today",
		"today -time evening -bookmark",
		"today -date 2024-12-25 -all",
	)

	if err := fs.Parse(args); err != nil {
		return err
	}

	if cmd.All && (cmd.Bookmark || cmd.Share) {
		return fmt.Errorf("-all cannot be combined with -bookmark or -share")
	}
	return nil
}

// selection resolves the day and slot from the flags.
func (cmd *TodayCommand) selection() (time.Time, entities.TimeOfDay, error) {
	now := cmd.Now()
	day := now
	if cmd.Date != "" {
		d, err := time.ParseInLocation(time.DateOnly, cmd.Date, now.Location())
		if err != nil {
			return time.Time{}, "", fmt.Errorf("invalid -date %q, expected YYYY-MM-DD", cmd.Date)
		}
		day = d
	}

	tod := content.TimeOfDayAt(now)
	if cmd.TimeOfDay != "" {
		parsed, err := entities.ParseTimeOfDay(cmd.TimeOfDay)
		if err != nil {
			return time.Time{}, "", err
		}
		tod = parsed
	}
	return day, tod, nil
}

func (cmd *TodayCommand) Run() error {
	day, tod, err := cmd.selection()
	if err != nil {
		return err
	}

	app, err := cmd.open(cmd.Now)
	if err != nil {
		return err
	}
	defer app.Close()

	readings := app.Content.ContentFor(day)
	date := content.DateKey(day)

	if cmd.All {
		for _, slot := range entities.TimesOfDay {
			cmd.printPrayer(date, slot, readings.For(slot), app.Bookmarks.IsBookmarked(date, slot))
			cmd.println()
		}
		return nil
	}

	prayer := readings.For(tod)

	if cmd.Share {
		sharer := share.NewSharer(nil, share.WriterClipboard{W: cmd.Out}, share.WriterNotifier{W: cmd.Err})
		outcome := sharer.SharePrayer(context.Background(), prayer, tod)
		app.Audit.LogShare(audit.EntityPrayer, entities.BookmarkID(date, tod), string(outcome), !outcome.Succeeded())
		if !outcome.Succeeded() {
			return fmt.Errorf("share failed")
		}
		return nil
	}

	if cmd.Bookmark {
		input := entities.BookmarkInput{Date: date, TimeOfDay: tod, DailyPrayer: prayer}
		if app.Bookmarks.AddBookmark(input) {
			app.Audit.LogBookmark("bookmark_add", entities.BookmarkID(date, tod), "Bookmarked "+tod.Label()+" prayer for "+date)
		}
	}

	cmd.printPrayer(date, tod, prayer, app.Bookmarks.IsBookmarked(date, tod))
	return nil
}

func (cmd *TodayCommand) printPrayer(date string, tod entities.TimeOfDay, p entities.DailyPrayer, bookmarked bool) {
	marker := ""
	if bookmarked {
		marker = " [bookmarked]"
	}
	cmd.printf("%s Prayer - %s%s\n", tod.Label(), date, marker)
	cmd.println("==========================")
	cmd.printf("\n%s\n\n", p.Call)
	cmd.printf("\"%s\"\n  - %s\n\n", p.Scripture.Text, p.Scripture.Reference)
	cmd.printf("%s\n\n", p.Reflection)
	cmd.println("Prayer prompts:")
	for _, prompt := range p.Prompts {
		cmd.printf("  * %s\n", prompt)
	}
	cmd.printf("\n%s\n", p.Benediction)
}
