package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/clowdgraph/clowd/pkg/analyze"
	"github.com/clowdgraph/clowd/pkg/graph"
	"github.com/clowdgraph/clowd/pkg/graphio"
)

// pathsCommand creates the paths command.
func (c *CLI) pathsCommand() *cobra.Command {
	var noCache bool

	cmd := &cobra.Command{
		Use:   "paths <graph.json> <from> <to>",
		Short: "Enumerate all simple paths between two items",
		Long: `Enumerate every simple path from one item to another.

The graph must be acyclic. Parallel edges with distinct labels produce
distinct paths.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := graphio.ReadFile(args[0])
			if err != nil {
				return err
			}
			from, to := args[1], args[2]

			runner, err := c.newRunner(noCache)
			if err != nil {
				return err
			}
			defer runner.Close()

			routes, err := runner.Paths(cmd.Context(), g, from, to, analyze.Options{})
			if errors.Is(err, graph.ErrCyclicGraph) {
				return fmt.Errorf("paths require an acyclic graph; run 'clowd analyze %s' to locate the cycle", args[0])
			}
			if err != nil {
				return err
			}

			if len(routes) == 0 {
				printInfo("No path from %s to %s", from, to)
				return nil
			}

			printSuccess("%d path(s) from %s to %s", len(routes), from, to)
			for _, route := range routes {
				printDetail("%s  (weight %g)", strings.Join(route.Nodes, " "+iconArrow+" "), route.Weight)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the analysis cache")

	return cmd
}
