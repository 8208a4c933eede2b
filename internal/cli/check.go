package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/samdwyer/roomcrawl/internal/world"
)

// errWorldHasErrors is returned by check --strict when any error-severity
// diagnostic was reported.
var errWorldHasErrors = errors.New("world has errors")

func newCheckCmd() *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "check [world-file]",
		Short: "Load a world file and report problems",
		Long: `Load a world file, build its room graph and report every problem found.

Rooms missing a name or description are dropped, exits to unknown rooms are
ignored, and a missing or unknown start room is reported. None of these stop
the load. A file that cannot be read or parsed, or that has no rooms
collection, fails the command.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			result, name, err := loadWorld(ctx, logger, worldPath(args))
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), summary(name, result))
			if strict && result.Diagnostics.HasErrors() {
				return errWorldHasErrors
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "fail if any error is reported")
	return cmd
}

// summary describes a loaded world in one line.
func summary(name string, result world.Result) string {
	start := "none"
	if result.Start != nil {
		start = fmt.Sprintf("%q", result.Start.Name)
	}

	exits, blocked := 0, 0
	for _, r := range result.Rooms {
		for _, dest := range r.Exits {
			if dest == nil {
				blocked++
				continue
			}
			exits++
		}
	}

	return fmt.Sprintf("%s: %d rooms, %d exits, %d blocked, start %s, %d errors, %d warnings",
		name, len(result.Rooms), exits, blocked, start,
		result.Diagnostics.Count(world.SeverityError),
		result.Diagnostics.Count(world.SeverityWarning))
}
