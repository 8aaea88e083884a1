package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"rule-ca/internal/render"
)

// ruleDocument is the YAML form of a rule table. It uses the same keys as
// the config file so the output can be pasted into one.
type ruleDocument struct {
	Rule  *int           `yaml:"rule,omitempty"`
	Rules map[string]int `yaml:"rules"`
}

func (c *cli) rulesCmd() *cobra.Command {
	var asYAML bool
	cmd := &cobra.Command{
		Use:   "rules",
		Short: "Show the rule table selected by --rule or --table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			table, err := c.cfg.RuleTable()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if asYAML {
				doc := ruleDocument{Rules: map[string]int{}}
				for k, v := range table.Assignments() {
					doc.Rules[k] = int(v)
				}
				if code, ok := table.Code(); ok {
					n := int(code)
					doc.Rule = &n
				}
				data, err := yaml.Marshal(doc)
				if err != nil {
					return fmt.Errorf("encode rule table: %w", err)
				}
				_, err = out.Write(data)
				return err
			}
			style, err := render.ParseTextStyle(c.cfg.TextStyle)
			if err != nil {
				return err
			}
			palette, err := c.cfg.Palette()
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(out, render.RuleTableText(table, style, palette))
			return err
		},
	}
	cmd.Flags().BoolVar(&asYAML, "yaml", false, "print the table as YAML")
	return cmd
}
