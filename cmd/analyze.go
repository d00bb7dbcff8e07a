package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/finesaaa/chatstats/config"
	"github.com/finesaaa/chatstats/pkg/export"
	"github.com/finesaaa/chatstats/pkg/logging"
	"github.com/finesaaa/chatstats/pkg/plot"
	"github.com/finesaaa/chatstats/pkg/stats"
	"github.com/finesaaa/chatstats/pkg/transcript"
)

// Analyze specific flags
var (
	analyzeTopN        int
	analyzeCourse      string
	analyzeOutput      string
	analyzePlotDir     string
	analyzeNoBars      bool
	analyzeExport      string
	analyzeClipboard   bool
	analyzeConcurrency int
)

// AnalyzeReport is the structured result of the analyze command.
type AnalyzeReport struct {
	Course      string               `json:"course" yaml:"course"`
	Files       []string             `json:"files" yaml:"files"`
	RecordCount int                  `json:"record_count" yaml:"record_count"`
	MostActive  []stats.SpeakerStats `json:"most_active" yaml:"most_active"`
	MostSilent  []stats.SpeakerStats `json:"most_silent" yaml:"most_silent"`
}

// NewAnalyzeCommand creates the 'analyze' command.
func NewAnalyzeCommand(deps *CommandDeps) *cobra.Command {
	if deps == nil {
		deps = DefaultDeps()
	}

	cmd := &cobra.Command{
		Use:   "analyze <path>...",
		Short: "Rank the most active and most silent speakers",
		Long: `Parse Zoom chat transcripts and rank speakers by message count.

Accepts .txt transcript files or directories to scan recursively. Files
named with a GMTYYYYMMDD marker are ordered by that date before merging.

Examples:
  # Analyze a single session
  chatstats analyze ./meeting_saved_chat.txt

  # Analyze a whole course directory, top 5 speakers
  chatstats analyze ~/course/chats/ --top 5

  # Save bar charts alongside the report
  chatstats analyze ./chats/ --plot-dir ./plots

  # Output as JSON
  chatstats analyze ./chats/ -o json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyze(cmd, deps, args)
		},
	}

	cmd.Flags().IntVarP(&analyzeTopN, "top", "n", 0, "number of speakers per ranking (default from config)")
	cmd.Flags().StringVar(&analyzeCourse, "course", "", "course name used in report headings")
	cmd.Flags().StringVarP(&analyzeOutput, "output", "o", "", "output format: text, json, yaml")
	cmd.Flags().StringVar(&analyzePlotDir, "plot-dir", "", "write ranking bar charts as PNGs into this directory")
	cmd.Flags().BoolVar(&analyzeNoBars, "no-bars", false, "suppress terminal bar charts")
	cmd.Flags().StringVar(&analyzeExport, "export", "", "also write the merged records as CSV to this file")
	cmd.Flags().BoolVar(&analyzeClipboard, "clipboard", false, "also copy the merged records CSV to the clipboard")
	cmd.Flags().IntVar(&analyzeConcurrency, "concurrency", 0, "number of files parsed in parallel (default from config)")

	return cmd
}

func runAnalyze(cmd *cobra.Command, deps *CommandDeps, args []string) error {
	cfg, err := deps.LoadConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	log := deps.logger(cfg)

	format, err := resolveFormat(cfg, analyzeOutput)
	if err != nil {
		return err
	}

	topN := cfg.TopN
	if analyzeTopN > 0 {
		topN = analyzeTopN
	}
	course := cfg.CourseName
	if analyzeCourse != "" {
		course = analyzeCourse
	}
	plotDir := cfg.PlotDir
	if analyzePlotDir != "" {
		plotDir = analyzePlotDir
	}
	if analyzeConcurrency > 0 {
		cfg.Concurrency = analyzeConcurrency
	}

	sessions, err := loadSessions(cmd.Context(), log, cfg, args)
	if err != nil {
		return err
	}
	records := mergeSessions(sessions)

	mostActive, mostSilent, err := stats.Rank(records, topN)
	if err != nil {
		return err
	}

	report := AnalyzeReport{
		Course:      course,
		Files:       sessionPaths(sessions),
		RecordCount: len(records),
		MostActive:  mostActive,
		MostSilent:  mostSilent,
	}

	if analyzeExport != "" || analyzeClipboard {
		if err := exportAnalyzeRecords(deps, log, records); err != nil {
			return err
		}
	}

	if plotDir != "" && len(mostActive) > 0 {
		if err := savePlots(plotDir, course, mostActive, mostSilent); err != nil {
			return err
		}
		log.Info("wrote ranking charts", logging.F("dir", plotDir))
	}

	w := deps.out()
	if format != config.OutputFormatText {
		return renderStructured(w, format, report)
	}

	fmt.Fprintf(w, "Most Active & Most Silent: %s\n", course)
	fmt.Fprintf(w, "Sessions: %d  Records: %d\n\n", len(sessions), len(records))

	width := terminalWidth()
	fmt.Fprintf(w, "Most Active (top %d)\n", topN)
	if err := printRanking(w, mostActive, width); err != nil {
		return err
	}
	fmt.Fprintf(w, "\nMost Silent (top %d)\n", topN)
	return printRanking(w, mostSilent, width)
}

func printRanking(w io.Writer, ranking []stats.SpeakerStats, width int) error {
	if len(ranking) == 0 {
		fmt.Fprintln(w, "  (no speakers)")
		return nil
	}
	if analyzeNoBars {
		for i, s := range ranking {
			fmt.Fprintf(w, "  %2d. %s (%d)\n", i+1, s.Speaker, s.MessageCount)
		}
		return nil
	}
	return plot.RenderTerminal(w, ranking, width)
}

func exportAnalyzeRecords(deps *CommandDeps, log logging.Logger, records []transcript.Record) error {
	csvText, err := export.RecordsCSV(records)
	if err != nil {
		return err
	}
	if analyzeExport != "" {
		if err := os.WriteFile(analyzeExport, []byte(csvText), 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", analyzeExport, err)
		}
		log.Info("wrote records CSV", logging.F("path", analyzeExport))
	}
	if analyzeClipboard {
		if err := deps.WriteClipboard(csvText); err != nil {
			return err
		}
		log.Info("copied records CSV to clipboard", logging.F("bytes", len(csvText)))
	}
	return nil
}

func savePlots(dir, course string, mostActive, mostSilent []stats.SpeakerStats) error {
	if _, err := plot.SavePNG(dir, "most_active.png", fmt.Sprintf("Most Active: %s", course), mostActive); err != nil {
		return err
	}
	if len(mostSilent) == 0 {
		return nil
	}
	_, err := plot.SavePNG(dir, "most_silent.png", fmt.Sprintf("Most Silent: %s", course), mostSilent)
	return err
}

func sessionPaths(sessions []transcript.FileRecords) []string {
	paths := make([]string, len(sessions))
	for i, s := range sessions {
		paths[i] = filepath.Base(s.Path)
	}
	return paths
}
