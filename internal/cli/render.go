package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/clowdgraph/clowd/pkg/graphio"
	"github.com/clowdgraph/clowd/pkg/render"
)

// renderCommand creates the render command.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		format      string
		output      string
		showWeights bool
		horizontal  bool
	)

	cmd := &cobra.Command{
		Use:   "render <graph.json>",
		Short: "Render a graph as DOT, SVG, or PNG",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := graphio.ReadFile(args[0])
			if err != nil {
				return err
			}

			opts := render.Options{ShowWeights: showWeights, Horizontal: horizontal}
			dot := render.ToDOT(g, opts)

			var data []byte
			switch format {
			case "dot":
				data = []byte(dot)
			case "svg":
				spin := newSpinnerWithContext(cmd.Context(), "Rendering SVG...")
				spin.Start()
				data, err = render.RenderSVG(dot)
				spin.Stop()
			case "png":
				spin := newSpinnerWithContext(cmd.Context(), "Rendering PNG...")
				spin.Start()
				data, err = render.RenderPNG(dot)
				spin.Stop()
			default:
				return fmt.Errorf("invalid format: %q (must be one of: dot, svg, png)", format)
			}
			if err != nil {
				return err
			}

			if output == "" {
				output = strings.TrimSuffix(args[0], ".json") + "." + format
			}
			if output == "-" {
				_, err = os.Stdout.Write(data)
				return err
			}
			if err := os.WriteFile(output, data, 0644); err != nil {
				return fmt.Errorf("write %s: %w", output, err)
			}

			printSuccess("Rendered %s", format)
			printFile(output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "svg", "output format: dot, svg, or png")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: input name with new extension, - for stdout)")
	cmd.Flags().BoolVar(&showWeights, "weights", false, "include edge weights in labels")
	cmd.Flags().BoolVar(&horizontal, "horizontal", false, "lay out left to right")

	return cmd
}
