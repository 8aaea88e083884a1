package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"rule-ca/internal/survey"
)

func (c *cli) sweepCmd() *cobra.Command {
	var (
		codes string
		class string
	)
	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Classify many rule numbers over the same initial row",
		Long: `sweep evolves the initial row under each rule number for --rounds rows
and labels the result uniform, periodic or aperiodic.`,
		Example: "  ca sweep --codes 0-255 --initial 000000000010000000000 --rounds 200 --class aperiodic",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			list, err := survey.ParseCodes(codes)
			if err != nil {
				return err
			}
			row, err := c.cfg.InitialRow()
			if err != nil {
				return err
			}
			results := survey.Run(row, list, c.cfg.Rounds)

			counts := map[survey.Class]int{}
			out := cmd.OutOrStdout()
			for _, r := range results {
				counts[r.Class]++
				if class != "" && string(r.Class) != class {
					continue
				}
				if _, err := fmt.Fprintln(out, r); err != nil {
					return err
				}
			}
			c.logger.Info("sweep finished",
				"rules", len(results),
				"uniform", counts[survey.Uniform],
				"periodic", counts[survey.Periodic],
				"aperiodic", counts[survey.Aperiodic])
			return nil
		},
	}
	cmd.Flags().StringVar(&codes, "codes", "0-255", "rule numbers, e.g. 30,90,100-110")
	cmd.Flags().StringVar(&class, "class", "", "only print rules of this class")
	return cmd
}
