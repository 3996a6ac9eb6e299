package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/golden-spiral/sequence"
)

func newRatiosCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "ratios",
		Short: "Print consecutive Fibonacci ratios and their distance to phi",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			seq, err := sequence.Generate(a.cfg.Spiral.Squares)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			closest := sequence.ClosestIndex(seq)
			fmt.Fprintf(out, "phi=%.15f\n", sequence.Phi)
			if closest < 0 {
				fmt.Fprintln(out, "fewer than 2 terms, no ratios")
				return nil
			}

			tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "i\tratio\tvalue\t|value-phi|\t")
			for i := range len(seq) - 1 {
				info, _ := sequence.Info(seq, i)
				mark := ""
				if i == closest {
					mark = " *"
				}
				fmt.Fprintf(tw, "%d\t%d/%d\t%.9f\t%.3e%s\t\n",
					i, info.Numerator, info.Denominator, info.Ratio, info.Convergence, mark)
			}
			return tw.Flush()
		},
	}
}
