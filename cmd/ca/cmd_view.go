package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"rule-ca/internal/app"
	"rule-ca/internal/sims/elementary"
)

func (c *cli) viewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view",
		Short: "Watch the automaton evolve in a window (requires -tags ebiten)",
		Long: `view scrolls the evolution down a window. The panel on the right toggles
individual rule entries and steps the rule number; every change restarts
from the initial row.

Keys: space pause, N single step, R reset, S reset with a new seed,
G grid lines, Q or Esc quit.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			row, table, err := c.inputs()
			if err != nil {
				return err
			}
			palette, err := c.cfg.Palette()
			if err != nil {
				return err
			}
			sim := elementary.New(elementary.Config{
				Initial: row,
				Rule:    table,
				Height:  c.cfg.View.Height,
				Random:  c.cfg.Random,
				Density: c.cfg.Density,
			})
			sim.Reset(c.cfg.Seed)

			opts := app.Options{
				Scale:     c.cfg.View.Scale,
				Rate:      c.cfg.View.Rate,
				Panel:     c.cfg.View.Panel,
				Seed:      c.cfg.Seed,
				GridLines: c.cfg.GridLines,
				Palette:   palette,
			}
			c.logger.Info("opening viewer", "rule", ruleLabel(table), "width", len(row), "height", c.cfg.View.Height)
			return app.Run(sim, opts, fmt.Sprintf("rule-ca — %s", ruleLabel(table)), c.cfg.View.TPS)
		},
	}
	c.cfg.BindView(cmd.Flags())
	return cmd
}
