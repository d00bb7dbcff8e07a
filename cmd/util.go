package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/finesaaa/chatstats/config"
	"github.com/finesaaa/chatstats/pkg/logging"
	"github.com/finesaaa/chatstats/pkg/transcript"
)

const fallbackTermWidth = 80

// resolveFormat picks the output format from the -o flag, falling back
// to the configured default.
func resolveFormat(cfg *config.CLIConfig, flagValue string) (config.OutputFormat, error) {
	if flagValue == "" {
		return cfg.OutputFormat, nil
	}
	format := config.OutputFormat(flagValue)
	if !format.IsValid() {
		return "", fmt.Errorf("invalid output format %q (valid: text, json, yaml)", flagValue)
	}
	return format, nil
}

// renderStructured writes v as JSON or YAML.
func renderStructured(w io.Writer, format config.OutputFormat, v interface{}) error {
	switch format {
	case config.OutputFormatJSON:
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling output: %w", err)
		}
		fmt.Fprintln(w, string(data))
		return nil
	case config.OutputFormatYAML:
		data, err := yaml.Marshal(v)
		if err != nil {
			return fmt.Errorf("marshaling output: %w", err)
		}
		fmt.Fprint(w, string(data))
		return nil
	default:
		return fmt.Errorf("unsupported structured format %q", format)
	}
}

// terminalWidth returns the width of the attached terminal, or a
// fallback when output is not a terminal.
func terminalWidth() int {
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	return fallbackTermWidth
}

// loadSessions discovers transcript files under the given paths, sorts
// them by the date embedded in their names, and parses them in parallel.
func loadSessions(ctx context.Context, log logging.Logger, cfg *config.CLIConfig, paths []string) ([]transcript.FileRecords, error) {
	var files []string
	for _, path := range paths {
		found, err := transcript.DiscoverFiles(path)
		if err != nil {
			return nil, err
		}
		files = append(files, found...)
	}

	files = transcript.SortByDate(files)
	log.Debug("discovered transcript files", logging.F("count", len(files)))

	return transcript.ParseAll(ctx, files, cfg.Concurrency, log)
}

// mergeSessions flattens per-file results into a single record list.
func mergeSessions(sessions []transcript.FileRecords) []transcript.Record {
	perFile := make([][]transcript.Record, len(sessions))
	for i, s := range sessions {
		perFile[i] = s.Records
	}
	return transcript.Merge(perFile...)
}
