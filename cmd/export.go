package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/finesaaa/chatstats/pkg/export"
	"github.com/finesaaa/chatstats/pkg/logging"
	"github.com/finesaaa/chatstats/pkg/stats"
)

// Export specific flags
var (
	exportFile      string
	exportStats     bool
	exportClipboard bool
)

// NewExportCommand creates the 'export' command.
func NewExportCommand(deps *CommandDeps) *cobra.Command {
	if deps == nil {
		deps = DefaultDeps()
	}

	cmd := &cobra.Command{
		Use:   "export <path>...",
		Short: "Export parsed records or speaker stats as CSV",
		Long: `Parse transcripts and export the result as CSV.

By default the full record list is exported with columns timestamp, role,
speaker, message, and source_file. With --stats, the per-speaker counts
are exported instead.

Examples:
  # Records CSV to stdout
  chatstats export ./chats/

  # Records CSV to a file
  chatstats export ./chats/ --file records.csv

  # Speaker stats to the clipboard
  chatstats export ./chats/ --stats --clipboard`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd, deps, args)
		},
	}

	cmd.Flags().StringVarP(&exportFile, "file", "f", "", "write CSV to this file instead of stdout")
	cmd.Flags().BoolVar(&exportStats, "stats", false, "export per-speaker statistics instead of records")
	cmd.Flags().BoolVar(&exportClipboard, "clipboard", false, "copy the CSV to the system clipboard")

	return cmd
}

func runExport(cmd *cobra.Command, deps *CommandDeps, args []string) error {
	cfg, err := deps.LoadConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	log := deps.logger(cfg)

	sessions, err := loadSessions(cmd.Context(), log, cfg, args)
	if err != nil {
		return err
	}
	records := mergeSessions(sessions)

	var csvText string
	if exportStats {
		csvText, err = export.StatsCSV(stats.Aggregate(records))
	} else {
		csvText, err = export.RecordsCSV(records)
	}
	if err != nil {
		return err
	}

	if exportClipboard {
		if err := deps.WriteClipboard(csvText); err != nil {
			return err
		}
		log.Info("copied CSV to clipboard", logging.F("bytes", len(csvText)))
	}

	if exportFile != "" {
		if err := os.WriteFile(exportFile, []byte(csvText), 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", exportFile, err)
		}
		log.Info("wrote CSV", logging.F("path", exportFile), logging.F("records", len(records)))
		return nil
	}
	if exportClipboard {
		return nil
	}

	fmt.Fprint(deps.out(), csvText)
	return nil
}
