// Package main provides the entry point for the starport demo.
//
// starport keeps a single stateful card alive and animates it between
// landing spots on a Bubble Tea screen.
//
// Usage:
//
//	starport [command]
package main

import (
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/riordanpawley/starport/internal/app"
	"github.com/riordanpawley/starport/internal/cli"
	"github.com/riordanpawley/starport/internal/config"
	"github.com/riordanpawley/starport/internal/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	logger, closer, err := logging.New(cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", err)
		logger = logging.Discard()
	} else {
		defer closer.Close()
	}
	slog.SetDefault(logger)

	if len(os.Args) > 1 {
		if err := runCommand(cfg, logger, os.Args[1:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	p := tea.NewProgram(
		app.New(cfg, logger),
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Enable mouse support
	)

	if _, err := p.Run(); err != nil {
		logger.Error("program exited", "error", err)
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", err)
		os.Exit(1)
	}
}

func runCommand(cfg *config.Config, logger *slog.Logger, args []string) error {
	if args[0] == "help" || args[0] == "-h" || args[0] == "--help" {
		cli.PrintUsage(os.Stdout)
		return nil
	}

	deps, err := cli.NewDependencies(cfg, logger)
	if err != nil {
		return err
	}

	switch args[0] {
	case "init":
		format := ""
		if len(args) > 1 {
			format = args[1]
		}
		return cli.InitCommand(deps, format)
	case "config":
		return cli.ConfigCommand(deps)
	default:
		cli.PrintUsage(os.Stderr)
		return fmt.Errorf("unknown command: %s", args[0])
	}
}
