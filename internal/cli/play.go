package cli

import (
	"github.com/spf13/cobra"

	"github.com/samdwyer/roomcrawl/internal/game"
)

func newPlayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "play [world-file]",
		Short: "Explore a world in the terminal",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			result, _, err := loadWorld(ctx, logger, worldPath(args))
			if err != nil {
				return err
			}

			g, err := game.New(result)
			if err != nil {
				return err
			}
			return g.Run(ctx)
		},
	}
}
