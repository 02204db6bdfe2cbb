package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/pion/decodebench/internal/suite"
	"github.com/spf13/cobra"
)

func newListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List suites and the benchmarks they run",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 8, 2, ' ', 0)
			fmt.Fprintln(w, "BENCHMARK\tBYTES\tITERS")
			for _, s := range suite.All() {
				for _, c := range s.Configs {
					fmt.Fprintf(w, "%s_%s\t%d\t%d\n", s.Family(), c.Name, c.WantBytes, c.ItersUnscaled*s.IterScale)
				}
			}
			return w.Flush()
		},
	}
}
