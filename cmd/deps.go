// Package cmd implements the chatstats CLI commands.
package cmd

import (
	"io"
	"os"

	"github.com/finesaaa/chatstats/config"
	"github.com/finesaaa/chatstats/pkg/export"
	"github.com/finesaaa/chatstats/pkg/logging"
)

// CommandDeps holds dependencies for chatstats commands. Tests inject
// their own config loader, output writer, and clipboard function.
type CommandDeps struct {
	LoadConfig     func() (*config.CLIConfig, error)
	Logger         logging.Logger
	WriteClipboard func(string) error

	// Out receives command output. Defaults to os.Stdout.
	Out io.Writer
}

// DefaultDeps returns default dependencies for production use.
func DefaultDeps() *CommandDeps {
	return &CommandDeps{
		LoadConfig:     config.LoadConfig,
		WriteClipboard: export.WriteClipboard,
	}
}

func (d *CommandDeps) out() io.Writer {
	if d.Out != nil {
		return d.Out
	}
	return os.Stdout
}

// logger returns the injected logger, or builds one from the config.
func (d *CommandDeps) logger(cfg *config.CLIConfig) logging.Logger {
	if d.Logger != nil {
		return d.Logger
	}
	level := logging.LevelInfo
	if cfg != nil && cfg.Debug {
		level = logging.LevelDebug
	}
	return logging.NewLogger(&logging.Config{Level: level})
}
