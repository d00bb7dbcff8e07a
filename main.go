// Package main provides the chatstats CLI entry point.
// chatstats analyzes Zoom chat transcripts and reports the most active
// and most silent speakers across one or more sessions.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/finesaaa/chatstats/cmd"
)

var debug bool

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "chatstats",
	Short: "Zoom chat transcript analyzer",
	Long: `chatstats parses saved Zoom chat transcripts and reports speaker
activity: who talks the most, who stays silent, and how chats split
into typed messages and emoji reactions.

COMMON WORKFLOWS:
  Rank speakers:    chatstats analyze ./chats/ --top 5
  Inspect records:  chatstats records ./meeting_saved_chat.txt
  Per-speaker view: chatstats speakers ./chats/ --notes
  Export CSV:       chatstats export ./chats/ --file records.csv`,
	PersistentPreRun: func(c *cobra.Command, args []string) {
		// The config layer reads CHATSTATS_DEBUG, so the flag only has
		// to feed the same overlay.
		if debug {
			os.Setenv("CHATSTATS_DEBUG", "true")
		}
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	rootCmd.AddCommand(cmd.NewAnalyzeCommand(nil))
	rootCmd.AddCommand(cmd.NewRecordsCommand(nil))
	rootCmd.AddCommand(cmd.NewSpeakersCommand(nil))
	rootCmd.AddCommand(cmd.NewExportCommand(nil))
	rootCmd.AddCommand(cmd.NewVersionCommand(nil))
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
