// Package cli provides the Cobra command structure for markdoc.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/markdoc/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// globalFlags holds flags shared across subcommands.
type globalFlags struct {
	configPath string
}

// NewRootCommand creates the root markdoc command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var color string
	flags := &globalFlags{}

	rootCmd := &cobra.Command{
		Use:   "markdoc",
		Short: "Parse, query, and reformat Markdown documents",
		Long: `markdoc parses Markdown into a normalized header tree, lets you query it
with the MarkdQL path language, and serializes it back with stable
formatting. It targets a deliberately small Markdown subset — headers,
paragraphs, tables, code fences, comments, and link references — rather
than full CommonMark.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if debug {
				logging.SetLevel("debug")
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&flags.configPath, "config", "", "path to format config file")
	rootCmd.PersistentFlags().StringVar(&color, "color", "auto",
		"colorize output: auto, always, never")

	rootCmd.AddCommand(newFmtCommand(flags))
	rootCmd.AddCommand(newQueryCommand(flags))
	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	helpFormatter := NewHelpFormatter(color, os.Stdout)
	helpFormatter.ApplyToCommand(rootCmd)

	return rootCmd
}
