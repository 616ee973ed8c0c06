// Package cli implements the non-interactive starport subcommands
package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"text/tabwriter"

	"github.com/riordanpawley/starport/internal/config"
)

// Dependencies holds everything the CLI commands need
type Dependencies struct {
	Config *config.Config
	Dir    string
	Out    io.Writer
	Logger *slog.Logger
}

// NewDependencies creates Dependencies rooted at the current directory
func NewDependencies(cfg *config.Config, logger *slog.Logger) (*Dependencies, error) {
	dir, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get current directory: %w", err)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Dependencies{
		Config: cfg,
		Dir:    dir,
		Out:    os.Stdout,
		Logger: logger,
	}, nil
}

// ErrConfigExists is returned by InitCommand when a config file is present
var ErrConfigExists = errors.New("config file already exists")

// InitCommand writes the effective configuration to .starport.<format> in
// the working directory. Existing files are never overwritten.
func InitCommand(deps *Dependencies, format string) error {
	if format == "" {
		format = "json"
	}
	path := filepath.Join(deps.Dir, ".starport."+format)

	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s: %w", path, ErrConfigExists)
	}

	deps.Logger.Info("writing config", "path", path)
	if err := config.SaveConfig(deps.Config, path); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	fmt.Fprintf(deps.Out, "✓ Wrote %s\n", path)
	return nil
}

// ConfigCommand prints the effective configuration
func ConfigCommand(deps *Dependencies) error {
	cfg := deps.Config

	w := tabwriter.NewWriter(deps.Out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SETTING\tVALUE")
	fmt.Fprintln(w, "-------\t-----")
	rows := [][2]string{
		{"floating.durations", strconv.Itoa(cfg.Floating.Durations) + "ms"},
		{"floating.clearOnUnmount", strconv.FormatBool(cfg.Floating.ClearOnUnmount)},
		{"floating.frameIntervalMs", strconv.Itoa(cfg.Floating.FrameIntervalMs)},
		{"demo.spots", strconv.Itoa(cfg.Demo.Spots)},
		{"demo.columns", strconv.Itoa(cfg.Demo.Columns)},
		{"demo.title", cfg.Demo.Title},
		{"log.path", cfg.Log.Path},
		{"log.level", cfg.Log.Level},
	}
	for _, row := range rows {
		fmt.Fprintf(w, "%s\t%s\n", row[0], row[1])
	}

	return w.Flush()
}

// PrintUsage prints CLI usage information
func PrintUsage(w io.Writer) {
	usage := `Usage: starport [command] [arguments]

Commands:
  (no command)         Start the demo TUI
  init [json|yaml]     Write the effective config to .starport.json or .starport.yaml
  config               Show the effective config
  help                 Show this help message

Examples:
  starport             # Start TUI
  starport init yaml   # Create .starport.yaml with defaults
  starport config      # Show durations, grid and log settings
`
	fmt.Fprint(w, usage)
}
