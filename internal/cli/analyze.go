package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/clowdgraph/clowd/pkg/analyze"
	"github.com/clowdgraph/clowd/pkg/graphio"
)

// analyzeCommand creates the analyze command.
func (c *CLI) analyzeCommand() *cobra.Command {
	var (
		noCache bool
		refresh bool
		output  string
	)

	cmd := &cobra.Command{
		Use:   "analyze <graph.json>",
		Short: "Analyze a graph: boundary sets, cycles, and clowds",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := graphio.ReadFile(args[0])
			if err != nil {
				return err
			}

			runner, err := c.newRunner(noCache)
			if err != nil {
				return err
			}
			defer runner.Close()

			prog := newProgress(c.Logger)
			report, cacheHit, err := runner.AnalyzeWithCacheInfo(cmd.Context(), g, analyze.Options{Refresh: refresh})
			if err != nil {
				return err
			}
			prog.done(fmt.Sprintf("Analyzed %d nodes", report.NodeCount))

			printReport(report, cacheHit)

			if output != "" {
				data, err := analyze.MarshalReport(report)
				if err != nil {
					return err
				}
				if err := os.WriteFile(output, data, 0644); err != nil {
					return fmt.Errorf("write %s: %w", output, err)
				}
				printFile(output)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the analysis cache")
	cmd.Flags().BoolVar(&refresh, "refresh", false, "recompute even if cached")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write the report JSON to a file")

	return cmd
}

// printReport prints a report summary to stdout.
func printReport(report *analyze.Report, cacheHit bool) {
	printStats(report.NodeCount, report.EdgeCount, cacheHit)

	printKeyValue("sources", strings.Join(report.Sources, ", "))
	printKeyValue("sinks", strings.Join(report.Sinks, ", "))
	if report.Cyclic {
		printWarning("graph contains a cycle")
	} else {
		printKeyValue("cyclic", "no")
	}

	printKeyValue("clowds", fmt.Sprintf("%d", len(report.Clowds)))
	for i, clowd := range report.Clowds {
		printDetail("clowd %d: %s", i+1, strings.Join(clowd, ", "))
	}
	printDetail("report %s", report.ID)
}
