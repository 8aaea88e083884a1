package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"rule-ca/internal/config"
	"rule-ca/internal/logging"
	"rule-ca/pkg/automaton"
)

// cli carries the state shared by every subcommand.
type cli struct {
	cfg        *config.Config
	configPath string
	logLevel   string
	logJSON    bool
	logger     *logging.Logger
}

func newRootCmd() *cobra.Command {
	c := &cli{cfg: config.NewConfig(), logger: logging.Discard()}

	root := &cobra.Command{
		Use:   "ca",
		Short: "Evolve and render one-dimensional binary cellular automata",
		Long: `ca applies a rule mapping every 3-cell neighborhood to a next value,
row by row, starting from an initial row. Cells beyond both ends of the
row are always 0. The rule is a Wolfram number (--rule) or explicit
entries (--table); entries left out map to 0 unless --strict is set.`,
		SilenceUsage:      true,
		PersistentPreRunE: c.setup,
	}
	pf := root.PersistentFlags()
	pf.StringVarP(&c.configPath, "config", "c", "", "YAML file with run parameters")
	pf.StringVar(&c.logLevel, "log-level", "info", "log level: debug, info, warn, error")
	pf.BoolVar(&c.logJSON, "log-json", false, "log as JSON")
	c.cfg.Bind(pf)

	root.AddCommand(c.runCmd(), c.rulesCmd(), c.sweepCmd(), c.viewCmd())
	return root
}

// setup builds the logger, merges the config file under the flags and
// validates the result.
func (c *cli) setup(cmd *cobra.Command, _ []string) error {
	level, err := logging.ParseLevel(c.logLevel)
	if err != nil {
		return err
	}
	c.logger = logging.New(logging.Config{
		Level:   level,
		JSON:    c.logJSON,
		Output:  cmd.ErrOrStderr(),
		Service: "ca",
	}).With("command", cmd.Name())

	if c.configPath != "" {
		if err := c.cfg.LoadFile(c.configPath, cmd.Flags()); err != nil {
			return err
		}
		c.logger.Debug("loaded config", "path", c.configPath)
	}
	return c.cfg.Validate()
}

// inputs resolves the initial row and rule table, warning about entries that
// fall back to 0.
func (c *cli) inputs() (automaton.Row, automaton.RuleTable, error) {
	row, err := c.cfg.InitialRow()
	if err != nil {
		return nil, automaton.RuleTable{}, err
	}
	table, err := c.cfg.RuleTable()
	if err != nil {
		return nil, automaton.RuleTable{}, err
	}
	if missing := table.Missing(); len(missing) > 0 {
		c.logger.Warn("rule table incomplete, missing patterns map to 0", "missing", missing)
	}
	return row, table, nil
}

func ruleLabel(t automaton.RuleTable) string {
	if code, ok := t.Code(); ok {
		return fmt.Sprintf("rule %d", code)
	}
	return "custom rule " + t.String()
}
