package main

import (
	"fmt"
	"os"

	"github.com/mrlokans/librarian/internal/cli"
	"github.com/mrlokans/librarian/internal/config"
	"github.com/mrlokans/librarian/internal/entrypoint"
	"github.com/mrlokans/librarian/internal/logging"
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
	cfg := config.NewConfig()
	logging.Setup(cfg.Log.Level, cfg.Log.Format, os.Stderr)

	// No arguments runs the interactive menu
	name := "menu"
	var args []string
	if len(os.Args) >= 2 {
		name = os.Args[1]
		args = os.Args[2:]
	}

	var cmd command
	switch name {
	case "menu":
		cmd = cli.NewMenuCommand(cfg)
	case "seed":
		cmd = cli.NewSeedCommand(cfg)
	case "export":
		cmd = cli.NewExportCommand(cfg)
	case "drop-tables":
		cmd = cli.NewDropTablesCommand(cfg)

	case "serve":
		if err := entrypoint.Run(cfg, Version); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return

	case "version":
		fmt.Printf("librarian %s (%s)\n", Version, Commit)
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
	fmt.Fprintf(os.Stderr, "  menu          Interactive console menu (default if no command given)\n")
	fmt.Fprintf(os.Stderr, "  serve         Start the JSON HTTP API\n")
	fmt.Fprintf(os.Stderr, "  seed          Insert a small sample catalog\n")
	fmt.Fprintf(os.Stderr, "  export        Export authors and books to an xlsx workbook\n")
	fmt.Fprintf(os.Stderr, "  drop-tables   Drop the books and authors tables\n")
	fmt.Fprintf(os.Stderr, "  version       Print version information\n")
	fmt.Fprintf(os.Stderr, "\nUse '%s <command> -h' for help on a specific command.\n", os.Args[0])
}
