// Package cli implements matchctl, an offline ranking tool that runs the
// matching engine against a TOML catalog.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	// Version info set from main
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"
)

// SetVersionInfo sets version information from build flags
func SetVersionInfo(v, c, b string) {
	version = v
	commit = c
	buildTime = b
}

type rootOptions struct {
	catalogPath string
	outputFmt   string
}

// NewRootCommand builds the matchctl command tree.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "matchctl",
		Short: "Rank mentors for students from a catalog file",
		Long: `matchctl scores and ranks mentors for a student using the same
engine as the Mentor Match API, reading profiles from a TOML catalog
with [[students]] and [[mentors]] tables.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			switch opts.outputFmt {
			case "table", "json":
				return nil
			default:
				return fmt.Errorf("unknown output format: %s", opts.outputFmt)
			}
		},
	}

	root.PersistentFlags().StringVar(&opts.catalogPath, "catalog", "catalog.toml", "catalog file")
	root.PersistentFlags().StringVarP(&opts.outputFmt, "output", "o", "table", "output format (table, json)")

	root.AddCommand(newRecommendCommand(opts))
	root.AddCommand(newExplainCommand(opts))
	root.AddCommand(newVersionCommand())
	return root
}

// Execute runs the root command
func Execute() error {
	return NewRootCommand().Execute()
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "matchctl %s\n", version)
			fmt.Fprintf(out, "  commit: %s\n", commit)
			fmt.Fprintf(out, "  built:  %s\n", buildTime)
		},
	}
}
