package cli

import (
	"context"
	"fmt"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	version string // semantic version (e.g., "v1.2.3")
	commit  string // git commit SHA
	date    string // build timestamp
)

// SetVersion sets the version information displayed by --version.
// Values are normally injected via ldflags at build time.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Version returns the version set with SetVersion, or "dev".
func Version() string {
	if version == "" {
		return "dev"
	}
	return version
}

// Execute runs the roomcrawl CLI and returns an error if any command fails.
func Execute(ctx context.Context) error {
	return newRootCmd().ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:          "roomcrawl",
		Short:        "roomcrawl loads and explores room-based worlds",
		Long:         `roomcrawl builds a graph of rooms from a world file, reports problems in it, and lets you walk it in the terminal.`,
		Version:      Version(),
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("roomcrawl %s\ncommit: %s\nbuilt: %s\n", Version(), commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newCheckCmd())
	root.AddCommand(newPlayCmd())
	root.AddCommand(newMapCmd())

	return root
}
