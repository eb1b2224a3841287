package cli

import (
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/clowdgraph/clowd/pkg/graphio"
)

// splitCommand creates the split command.
func (c *CLI) splitCommand() *cobra.Command {
	var outDir string

	cmd := &cobra.Command{
		Use:   "split <graph.json>",
		Short: "Split a graph into its clowds",
		Long: `Split a graph into its weakly-connected subgraphs (clowds).

Each clowd is a self-contained graph: no edge of the original crosses
between two clowds. With --out-dir, each clowd is written as its own
node-link JSON file.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := graphio.ReadFile(args[0])
			if err != nil {
				return err
			}

			parts := g.Split()
			if parts == nil {
				printInfo("Graph is empty, nothing to split")
				return nil
			}

			printSuccess("%d clowd(s)", len(parts))
			for i, part := range parts {
				items := part.Items()
				slices.Sort(items)
				printDetail("clowd %d: %s", i+1, strings.Join(items, ", "))
			}

			if outDir == "" {
				return nil
			}
			for i, part := range parts {
				path := filepath.Join(outDir, fmt.Sprintf("clowd-%d.json", i+1))
				if err := graphio.WriteFile(part, path); err != nil {
					return err
				}
				printFile(path)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outDir, "out-dir", "d", "", "write each clowd as a JSON file into this directory")

	return cmd
}
