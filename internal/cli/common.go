package cli

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/mrlokans/devotional/internal/config"
	"github.com/mrlokans/devotional/internal/entrypoint"
)

// storeFlags are the storage options shared by every command.
type storeFlags struct {
	DatabasePath string
	Engine       string
	JSONPath     string
}

func (f *storeFlags) register(fs *flag.FlagSet) {
	cfg := config.NewConfig()
	fs.StringVar(&f.DatabasePath, "db", cfg.Database.Path, "Path to the SQLite database")
	fs.StringVar(&f.Engine, "storage", cfg.Storage.Engine, "Storage engine: sqlite, json or memory")
	fs.StringVar(&f.JSONPath, "json", cfg.Storage.JSONPath, "File used by the json storage engine")
}

// open loads the stores with the flag values applied over the environment.
func (f *storeFlags) open(now func() time.Time) (*entrypoint.App, error) {
	cfg := config.NewConfig()
	cfg.Database.Path = f.DatabasePath
	cfg.Storage.Engine = f.Engine
	cfg.Storage.JSONPath = f.JSONPath

	return entrypoint.NewApp(cfg, now)
}

// output holds the writers and clock a command uses, so tests can capture them.
type output struct {
	Out io.Writer
	Err io.Writer
	Now func() time.Time
}

func defaultOutput() output {
	return output{Out: os.Stdout, Err: os.Stderr, Now: time.Now}
}

func (o output) printf(format string, args ...any) {
	fmt.Fprintf(o.Out, format, args...)
}

func (o output) println(args ...any) {
	fmt.Fprintln(o.Out, args...)
}

func usage(fs *flag.FlagSet, synopsis, description string, examples ...string) func() {
	return func() {
		fmt.Fprintf(os.Stderr, "Usage: %s %s\n\n", os.Args[0], synopsis)
		fmt.Fprintf(os.Stderr, "%s\n\n", description)
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		if len(examples) > 0 {
			fmt.Fprintf(os.Stderr, "\nExamples:\n")
			for _, ex := range examples {
				fmt.Fprintf(os.Stderr, "  %s %s\n", os.Args[0], ex)
			}
		}
	}
}
