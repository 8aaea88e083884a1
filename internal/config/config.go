// Package config holds the run parameters of the ca commands. Values come from
// defaults, an optional YAML file and command-line flags, in increasing order
// of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"rule-ca/internal/render"
	"rule-ca/pkg/automaton"
	"rule-ca/pkg/core"
)

// MaxWidth bounds the number of cells in a row, whether given by Width or by
// an explicit initial row.
const MaxWidth = 1000

// Colors are hex colours for the raster and text renderers.
type Colors struct {
	On   string `yaml:"on" validate:"hexcolor"`
	Off  string `yaml:"off" validate:"hexcolor"`
	Line string `yaml:"line" validate:"hexcolor"`
}

// View configures the interactive viewer.
type View struct {
	Scale int `yaml:"scale" validate:"gte=1,lte=16"`
	TPS   int `yaml:"tps" validate:"gte=1,lte=240"`
	// Rate is the number of generations per second.
	Rate   int `yaml:"rate" validate:"gte=1,lte=240"`
	Height int `yaml:"height" validate:"gte=1,lte=2000"`
	Panel  int `yaml:"panel" validate:"gte=0,lte=600"`
}

// Config represents the parameters of one simulation run.
type Config struct {
	// Initial is the first row as '0'/'1' characters. When empty the first
	// row is Width live cells.
	Initial string  `yaml:"initial" validate:"cells"`
	Width   int     `yaml:"width" validate:"gte=1"`
	Random  bool    `yaml:"random"`
	Seed    int64   `yaml:"seed"`
	Density float64 `yaml:"density" validate:"gte=0,lte=1"`

	// Rule is a Wolfram rule number, used when neither Table nor Rules is set.
	Rule int `yaml:"rule" validate:"gte=0,lte=255"`
	// Table lists rule entries in the form accepted by
	// automaton.ParseAssignments and takes precedence over Rules.
	Table string         `yaml:"table"`
	Rules map[string]int `yaml:"rules" validate:"omitempty,dive,oneof=0 1"`
	// Strict rejects incomplete or malformed rule tables instead of mapping
	// missing entries to 0.
	Strict bool `yaml:"strict"`

	Rounds int `yaml:"rounds" validate:"gte=1,lte=100000"`

	Output    string `yaml:"output"`
	Format    string `yaml:"format" validate:"oneof=png text"`
	TextStyle string `yaml:"text_style" validate:"oneof=blocks ascii color"`
	Scale     int    `yaml:"scale" validate:"gte=1,lte=64"`
	GridLines bool   `yaml:"grid_lines"`
	Colors    Colors `yaml:"colors"`

	View View `yaml:"view"`
}

// NewConfig returns a Config populated with the defaults: eight live cells,
// rule 90, ten rounds rendered to ca.png.
func NewConfig() *Config {
	return &Config{
		Width:     8,
		Density:   0.5,
		Seed:      42,
		Rule:      90,
		Rounds:    10,
		Output:    "ca.png",
		Format:    "png",
		TextStyle: string(render.TextBlocks),
		Scale:     10,
		GridLines: true,
		Colors:    Colors{On: render.DefaultOn, Off: render.DefaultOff, Line: render.DefaultLine},
		View:      View{Scale: 4, TPS: 60, Rate: 30, Height: 160, Panel: 220},
	}
}

// Bind attaches the run parameters to the provided FlagSet.
func (c *Config) Bind(fs *pflag.FlagSet) {
	fs.StringVarP(&c.Initial, "initial", "i", c.Initial, "initial row of 0/1 characters (default: width live cells)")
	fs.IntVarP(&c.Width, "width", "w", c.Width, "number of cells when no initial row is given")
	fs.BoolVar(&c.Random, "random", c.Random, "draw the initial row at random")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for --random")
	fs.Float64Var(&c.Density, "density", c.Density, "fraction of live cells for --random")
	fs.IntVarP(&c.Rule, "rule", "r", c.Rule, "Wolfram rule number 0-255")
	fs.StringVarP(&c.Table, "table", "t", c.Table, `rule entries, "000=0,001=1,..." or eight digits for 000..111`)
	fs.BoolVar(&c.Strict, "strict", c.Strict, "reject incomplete rule tables")
	fs.IntVarP(&c.Rounds, "rounds", "n", c.Rounds, "number of rows including the initial row")
	fs.StringVarP(&c.Output, "out", "o", c.Output, "output file for png format")
	fs.StringVarP(&c.Format, "format", "f", c.Format, "output format: png or text")
	fs.StringVar(&c.TextStyle, "style", c.TextStyle, "text glyphs: blocks, ascii or color")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixels per cell in png output")
	fs.BoolVar(&c.GridLines, "grid", c.GridLines, "draw grid lines between cells")
	fs.StringVar(&c.Colors.On, "on-color", c.Colors.On, "colour of live cells")
	fs.StringVar(&c.Colors.Off, "off-color", c.Colors.Off, "colour of dead cells")
	fs.StringVar(&c.Colors.Line, "line-color", c.Colors.Line, "colour of grid lines")
}

// BindView attaches the viewer parameters to the provided FlagSet.
func (c *Config) BindView(fs *pflag.FlagSet) {
	fs.IntVar(&c.View.Scale, "view-scale", c.View.Scale, "pixel scale multiplier")
	fs.IntVar(&c.View.TPS, "tps", c.View.TPS, "ticks per second")
	fs.IntVar(&c.View.Rate, "rate", c.View.Rate, "generations per second")
	fs.IntVar(&c.View.Height, "height", c.View.Height, "visible generations")
	fs.IntVar(&c.View.Panel, "panel", c.View.Panel, "width of the rule panel in pixels, 0 hides it")
}

// LoadFile reads YAML from path into c. Flags already set on fs keep their
// command-line values.
func (c *Config) LoadFile(path string, fs *pflag.FlagSet) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	ruleOnly := fs != nil && fs.Changed("rule") && !fs.Changed("table")
	changed := map[string]string{}
	if fs != nil {
		fs.Visit(func(f *pflag.Flag) { changed[f.Name] = f.Value.String() })
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	for name, value := range changed {
		if err := fs.Set(name, value); err != nil {
			return fmt.Errorf("reapply flag --%s: %w", name, err)
		}
	}
	// A rule number from the command line replaces a table from the file.
	if ruleOnly {
		c.Table = ""
		c.Rules = nil
	}
	return nil
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("cells", validateCells)
	v.RegisterStructValidation(validateWidth, Config{})
	return v
}

// validateCells accepts strings made of '0', '1' and whitespace.
func validateCells(fl validator.FieldLevel) bool {
	_, err := automaton.ParseRow(fl.Field().String())
	return err == nil
}

// validateWidth applies MaxWidth to Width and to the explicit initial row.
func validateWidth(sl validator.StructLevel) {
	c := sl.Current().Interface().(Config)
	limit := strconv.Itoa(MaxWidth)
	if c.Width > MaxWidth {
		sl.ReportError(c.Width, "Width", "Width", "lte", limit)
	}
	if row, err := automaton.ParseRow(c.Initial); err == nil && len(row) > MaxWidth {
		sl.ReportError(len(row), "Initial", "Initial", "lte", limit)
	}
}

// rowWidth is the number of cells in the first row.
func (c *Config) rowWidth() int {
	if c.Random || strings.TrimSpace(c.Initial) == "" {
		return c.Width
	}
	row, err := automaton.ParseRow(c.Initial)
	if err != nil {
		return c.Width
	}
	return len(row)
}

// Validate checks every field against its bounds, and for png output the
// size of the image against render.MaxPixels.
func (c *Config) Validate() error {
	if err := c.validateFields(); err != nil {
		return err
	}
	if c.Format == "png" {
		if err := render.CheckSize(c.rowWidth(), c.Rounds, c.Scale); err != nil {
			return fmt.Errorf("invalid config: %w (lower --scale, --width or --rounds)", err)
		}
	}
	return nil
}

func (c *Config) validateFields() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s: failed %q (value %v)", fe.Namespace(), fe.ActualTag(), fe.Value()))
	}
	return fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
}

// InitialRow builds the first row of the run.
func (c *Config) InitialRow() (automaton.Row, error) {
	if c.Random {
		return core.RandomRow(c.Seed, c.Width, c.Density), nil
	}
	if strings.TrimSpace(c.Initial) == "" {
		return automaton.Ones(c.Width), nil
	}
	row, err := automaton.ParseRow(c.Initial)
	if err != nil {
		return nil, fmt.Errorf("initial row: %w", err)
	}
	return row, nil
}

// Assignments returns the explicit rule entries from Table or Rules, or nil
// when the rule is given by number.
func (c *Config) Assignments() (map[string]automaton.Cell, error) {
	if strings.TrimSpace(c.Table) != "" {
		return automaton.ParseAssignments(c.Table)
	}
	if len(c.Rules) == 0 {
		return nil, nil
	}
	out := make(map[string]automaton.Cell, len(c.Rules))
	for k, v := range c.Rules {
		out[k] = automaton.Cell(v)
	}
	return out, nil
}

// RuleTable builds the rule table of the run.
func (c *Config) RuleTable() (automaton.RuleTable, error) {
	assignments, err := c.Assignments()
	if err != nil {
		return automaton.RuleTable{}, fmt.Errorf("rule table: %w", err)
	}
	if assignments == nil {
		return automaton.FromCode(uint8(c.Rule)), nil
	}
	if c.Strict {
		return automaton.NewStrictRuleTable(assignments)
	}
	return automaton.NewRuleTable(assignments), nil
}

// Palette parses the configured colours.
func (c *Config) Palette() (render.Palette, error) {
	return render.ParsePalette(c.Colors.On, c.Colors.Off, c.Colors.Line)
}

// RenderOptions bundles the raster settings.
func (c *Config) RenderOptions() (render.Options, error) {
	p, err := c.Palette()
	if err != nil {
		return render.Options{}, err
	}
	return render.Options{Palette: p, Scale: c.Scale, GridLines: c.GridLines}, nil
}
