package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/finesaaa/chatstats/config"
	"github.com/finesaaa/chatstats/pkg/buildinfo"
)

var versionOutput string

// NewVersionCommand creates the 'version' command.
func NewVersionCommand(deps *CommandDeps) *cobra.Command {
	if deps == nil {
		deps = DefaultDeps()
	}

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			info := buildinfo.Get("chatstats")
			format := config.OutputFormat(versionOutput)
			if format == config.OutputFormatJSON || format == config.OutputFormatYAML {
				return renderStructured(deps.out(), format, info)
			}
			fmt.Fprintf(deps.out(), "chatstats %s\n", buildinfo.String())
			fmt.Fprintf(deps.out(), "go: %s\n", info.GoVersion)
			return nil
		},
	}

	cmd.Flags().StringVarP(&versionOutput, "output", "o", "", "output format: text, json, yaml")

	return cmd
}
