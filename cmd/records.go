package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/finesaaa/chatstats/config"
	"github.com/finesaaa/chatstats/pkg/export"
	"github.com/finesaaa/chatstats/pkg/logging"
	"github.com/finesaaa/chatstats/pkg/transcript"
)

// Records specific flags
var (
	recordsOutput  string
	recordsSpeaker string
	recordsLimit   int
)

// NewRecordsCommand creates the 'records' command.
func NewRecordsCommand(deps *CommandDeps) *cobra.Command {
	if deps == nil {
		deps = DefaultDeps()
	}

	cmd := &cobra.Command{
		Use:   "records <path>...",
		Short: "List parsed chat records",
		Long: `Parse transcripts and list the assembled chat records in order.

Multi-line messages are shown with their continuation lines. Each record
carries the file it came from.

Examples:
  # List every record in a session
  chatstats records ./meeting_saved_chat.txt

  # Only records from one speaker
  chatstats records ./chats/ --speaker "Issac Newton"

  # First 20 records as JSON
  chatstats records ./chats/ --limit 20 -o json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRecords(cmd, deps, args)
		},
	}

	cmd.Flags().StringVarP(&recordsOutput, "output", "o", "", "output format: text, json, yaml, csv")
	cmd.Flags().StringVar(&recordsSpeaker, "speaker", "", "only show records from this speaker (exact match)")
	cmd.Flags().IntVar(&recordsLimit, "limit", 0, "maximum number of records to show (0 = all)")

	return cmd
}

func runRecords(cmd *cobra.Command, deps *CommandDeps, args []string) error {
	cfg, err := deps.LoadConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	log := deps.logger(cfg)

	asCSV := recordsOutput == "csv"
	var format config.OutputFormat
	if !asCSV {
		format, err = resolveFormat(cfg, recordsOutput)
		if err != nil {
			return err
		}
	}

	sessions, err := loadSessions(cmd.Context(), log, cfg, args)
	if err != nil {
		return err
	}
	records := mergeSessions(sessions)

	if recordsSpeaker != "" {
		filtered := records[:0:0]
		for _, r := range records {
			if r.Speaker == recordsSpeaker {
				filtered = append(filtered, r)
			}
		}
		records = filtered
	}
	if recordsLimit > 0 && len(records) > recordsLimit {
		records = records[:recordsLimit]
	}

	log.Debug("listing records", logging.F("count", len(records)))

	w := deps.out()
	if asCSV {
		return export.WriteCSV(w, records)
	}
	if format != config.OutputFormatText {
		return renderStructured(w, format, records)
	}

	for _, r := range records {
		printRecord(w, r)
	}
	fmt.Fprintf(w, "\n%d records\n", len(records))
	return nil
}

func printRecord(w io.Writer, r transcript.Record) {
	speaker := r.Speaker
	if r.Role != "" {
		speaker = fmt.Sprintf("[%s] %s", r.Role, speaker)
	}
	fmt.Fprintf(w, "%s  %s: %s  (%s)\n", r.Timestamp, speaker, r.Message, r.SourceFile)
}
