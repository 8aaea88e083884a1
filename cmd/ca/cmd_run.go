package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"rule-ca/internal/render"
	"rule-ca/pkg/automaton"
)

func (c *cli) runCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Evolve the automaton and write an image or text rendering",
		Example: `  ca run --rule 90 --initial 0000000100000000 --rounds 8 --out rule90.png
  ca run --table 000=0,001=1,010=1,011=1,100=1,101=0,110=0,111=0 -n 16 -f text`,
		Args: cobra.NoArgs,
		RunE: c.runRun,
	}
}

func (c *cli) runRun(cmd *cobra.Command, _ []string) error {
	row, table, err := c.inputs()
	if err != nil {
		return err
	}
	grid := automaton.Evolve(row, table, c.cfg.Rounds)
	c.logger.Info("evolved", "rule", ruleLabel(table), "width", grid.Width(), "rounds", grid.Height())

	switch c.cfg.Format {
	case "text":
		return c.writeText(cmd.OutOrStdout(), grid)
	default:
		return c.writePNG(cmd.OutOrStdout(), grid)
	}
}

func (c *cli) writeText(w io.Writer, grid automaton.Grid) error {
	style, err := render.ParseTextStyle(c.cfg.TextStyle)
	if err != nil {
		return err
	}
	palette, err := c.cfg.Palette()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, render.Text(grid, style, palette))
	return err
}

// writePNG writes to the configured output path, or to stdout for "-".
func (c *cli) writePNG(stdout io.Writer, grid automaton.Grid) error {
	opts, err := c.cfg.RenderOptions()
	if err != nil {
		return err
	}
	if c.cfg.Output == "-" {
		return render.WritePNG(stdout, grid, opts)
	}

	// Encode first so a failed render leaves no partial file behind.
	var buf bytes.Buffer
	if err := render.WritePNG(&buf, grid, opts); err != nil {
		return err
	}
	if err := os.WriteFile(c.cfg.Output, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	c.logger.Info("wrote image", "path", c.cfg.Output, "scale", opts.Scale)
	return nil
}
