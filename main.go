package main

import (
	"fmt"
	"os"

	"github.com/mrlokans/devotional/internal/cli"
	"github.com/mrlokans/devotional/internal/config"
	"github.com/mrlokans/devotional/internal/entrypoint"
)

// Version information - set at build time via ldflags
var (
	Version = "dev"
	Commit  = "unknown"
)

type command interface {
	ParseFlags(args []string) error
	Run() error
}

func main() {
	config.LoadDotEnv()

	// If no arguments or "serve" command, run the HTTP server
	if len(os.Args) < 2 || os.Args[1] == "serve" {
		cfg := config.NewConfig()
		entrypoint.Run(cfg, Version)
		return
	}

	name := os.Args[1]
	args := os.Args[2:]

	var cmd command
	switch name {
	case "today":
		cmd = cli.NewTodayCommand()
	case "bookmarks":
		cmd = cli.NewBookmarksCommand()
	case "studies":
		cmd = cli.NewStudiesCommand()
	case "study":
		cmd = cli.NewStudyCommand()
	case "export":
		cmd = cli.NewExportCommand()

	case "version":
		fmt.Printf("devotional %s (%s)\n", Version, Commit)
		return

	case "-h", "--help", "help":
		printUsage()
		return

	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", name)
		printUsage()
		os.Exit(1)
	}

	if err := cmd.ParseFlags(args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := cmd.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintf(os.Stderr, "Usage: %s <command> [options]\n\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "Commands:\n")
	fmt.Fprintf(os.Stderr, "  serve      Start the HTTP server (default if no command given)\n")
	fmt.Fprintf(os.Stderr, "  today      Show today's prayer for the current time of day\n")
	fmt.Fprintf(os.Stderr, "  bookmarks  List or remove bookmarked prayers\n")
	fmt.Fprintf(os.Stderr, "  studies    List, start or delete Bible studies\n")
	fmt.Fprintf(os.Stderr, "  study      Work through the steps of a study\n")
	fmt.Fprintf(os.Stderr, "  export     Export bookmarks and studies as markdown notes\n")
	fmt.Fprintf(os.Stderr, "  version    Print the version\n")
	fmt.Fprintf(os.Stderr, "\nUse '%s <command> -h' for help on a specific command.\n", os.Args[0])
}
