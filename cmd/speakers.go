package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/finesaaa/chatstats/config"
	"github.com/finesaaa/chatstats/pkg/stats"
	"github.com/finesaaa/chatstats/pkg/transcript"
)

// Speakers specific flags
var (
	speakersOutput string
	speakersNotes  bool
)

// SpeakersReport is the structured result of the speakers command.
type SpeakersReport struct {
	Speakers     []stats.SpeakerStats `json:"speakers" yaml:"speakers"`
	Notes        []stats.SpeakerNotes `json:"notes,omitempty" yaml:"notes,omitempty"`
	MeanChat     int                  `json:"mean_chat,omitempty" yaml:"mean_chat,omitempty"`
	MeanReaction int                  `json:"mean_reaction,omitempty" yaml:"mean_reaction,omitempty"`
}

// NewSpeakersCommand creates the 'speakers' command.
func NewSpeakersCommand(deps *CommandDeps) *cobra.Command {
	if deps == nil {
		deps = DefaultDeps()
	}

	cmd := &cobra.Command{
		Use:   "speakers <path>...",
		Short: "Show per-speaker message statistics",
		Long: `Parse transcripts and report how many messages each speaker sent,
split into typed chats and emoji reactions.

With --notes, each speaker also gets a per-session activity note that
compares them against the course-wide mean.

Examples:
  # Per-speaker counts
  chatstats speakers ./chats/

  # Include per-day activity notes
  chatstats speakers ./chats/ --notes

  # Output as YAML
  chatstats speakers ./chats/ -o yaml`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSpeakers(cmd, deps, args)
		},
	}

	cmd.Flags().StringVarP(&speakersOutput, "output", "o", "", "output format: text, json, yaml")
	cmd.Flags().BoolVar(&speakersNotes, "notes", false, "include per-session activity notes")

	return cmd
}

func runSpeakers(cmd *cobra.Command, deps *CommandDeps, args []string) error {
	cfg, err := deps.LoadConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	log := deps.logger(cfg)

	format, err := resolveFormat(cfg, speakersOutput)
	if err != nil {
		return err
	}

	sessions, err := loadSessions(cmd.Context(), log, cfg, args)
	if err != nil {
		return err
	}
	records := mergeSessions(sessions)

	report := SpeakersReport{Speakers: stats.Aggregate(records)}
	if speakersNotes {
		perDay := make([][]transcript.Record, len(sessions))
		labels := make([]string, len(sessions))
		for i, s := range sessions {
			perDay[i] = s.Records
			labels[i] = sessionLabel(s.Path, i)
		}
		report.Notes, report.MeanChat, report.MeanReaction = stats.Notes(perDay, labels)
	}

	w := deps.out()
	if format != config.OutputFormatText {
		return renderStructured(w, format, report)
	}

	printSpeakerTable(w, report.Speakers)
	if speakersNotes {
		fmt.Fprintf(w, "\nActivity notes (mean chat %d, mean reactions %d per speaker-day):\n", report.MeanChat, report.MeanReaction)
		for _, n := range report.Notes {
			fmt.Fprintf(w, "\n%s\n", n.Speaker)
			for _, line := range n.Lines {
				fmt.Fprintf(w, "  %s\n", line)
			}
		}
	}
	return nil
}

// sessionLabel turns a file name into a day label, preferring the date
// embedded in the name.
func sessionLabel(path string, i int) string {
	if date := transcript.FileDate(path); date != transcript.UnknownDate {
		return date
	}
	return fmt.Sprintf("Day %d", i+1)
}

func printSpeakerTable(w io.Writer, speakers []stats.SpeakerStats) {
	nameWidth := len("SPEAKER")
	for _, s := range speakers {
		if len(s.Speaker) > nameWidth {
			nameWidth = len(s.Speaker)
		}
	}

	fmt.Fprintf(w, "%-*s  %8s  %6s  %9s\n", nameWidth, "SPEAKER", "MESSAGES", "CHATS", "REACTIONS")
	fmt.Fprintln(w, strings.Repeat("-", nameWidth+2+8+2+6+2+9))
	for _, s := range speakers {
		fmt.Fprintf(w, "%-*s  %8d  %6d  %9d\n", nameWidth, s.Speaker, s.MessageCount, s.ChatCount, s.ReactionCount)
	}
}
