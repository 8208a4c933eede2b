package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/samdwyer/roomcrawl/internal/render"
)

var mapFormats = []string{"dot", "svg", "png"}

func newMapCmd() *cobra.Command {
	var (
		format string
		output string
	)

	cmd := &cobra.Command{
		Use:   "map [world-file]",
		Short: "Export a world's room graph",
		Long: `Export the room graph of a world as Graphviz DOT, SVG or PNG.

The format defaults to the output file's extension, or DOT when writing to
stdout. PNG output needs --output.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			resolved, err := mapFormat(format, output)
			if err != nil {
				return err
			}
			if resolved == "png" && output == "" {
				return fmt.Errorf("png output needs --output")
			}

			result, _, err := loadWorld(ctx, logger, worldPath(args))
			if err != nil {
				return err
			}

			dot := render.ToDOT(result.Rooms, result.Start)
			var data []byte
			switch resolved {
			case "svg":
				data, err = render.RenderSVG(ctx, dot)
			case "png":
				data, err = render.RenderPNG(ctx, dot)
			default:
				data = []byte(dot)
			}
			if err != nil {
				return err
			}

			if output == "" {
				return writeAll(cmd.OutOrStdout(), data)
			}
			if err := os.WriteFile(output, data, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", output, err)
			}
			logger.Infof("Wrote %s map of %d rooms to %s", resolved, len(result.Rooms), output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", "output format: "+strings.Join(mapFormats, ", "))
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	return cmd
}

// mapFormat resolves the requested format, inferring it from the output
// file extension when unset.
func mapFormat(format, output string) (string, error) {
	if format == "" {
		format = strings.TrimPrefix(strings.ToLower(filepath.Ext(output)), ".")
		if format == "" || format == "gv" {
			format = "dot"
		}
	}
	format = strings.ToLower(format)
	for _, f := range mapFormats {
		if f == format {
			return format, nil
		}
	}
	return "", fmt.Errorf("unsupported map format %q (want one of %s)", format, strings.Join(mapFormats, ", "))
}

func writeAll(w io.Writer, data []byte) error {
	_, err := w.Write(data)
	return err
}
