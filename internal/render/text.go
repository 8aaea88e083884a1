package render

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"rule-ca/pkg/automaton"
)

// TextStyle selects the glyphs used for terminal output.
type TextStyle string

const (
	// TextBlocks draws cells as ⬛ (1) and ⬜ (0).
	TextBlocks TextStyle = "blocks"
	// TextASCII draws cells as '#' and '.'.
	TextASCII TextStyle = "ascii"
	// TextColor draws two-column cells with the palette as background.
	TextColor TextStyle = "color"
)

// ParseTextStyle validates a style name.
func ParseTextStyle(s string) (TextStyle, error) {
	switch TextStyle(s) {
	case TextBlocks, TextASCII, TextColor:
		return TextStyle(s), nil
	}
	return "", fmt.Errorf("unknown text style %q", s)
}

type glyphs struct {
	on, off string
}

func glyphsFor(style TextStyle, p Palette) glyphs {
	switch style {
	case TextASCII:
		return glyphs{on: "#", off: "."}
	case TextColor:
		on := lipgloss.NewStyle().Background(lipgloss.Color(hex(p.On))).Render("  ")
		off := lipgloss.NewStyle().Background(lipgloss.Color(hex(p.Off))).Render("  ")
		return glyphs{on: on, off: off}
	default:
		return glyphs{on: "⬛", off: "⬜"}
	}
}

// RowText renders one row.
func RowText(r automaton.Row, style TextStyle, p Palette) string {
	g := glyphsFor(style, p)
	var b strings.Builder
	for _, c := range r {
		if c != 0 {
			b.WriteString(g.on)
			continue
		}
		b.WriteString(g.off)
	}
	return b.String()
}

// Text renders g one row per line, oldest first.
func Text(g automaton.Grid, style TextStyle, p Palette) string {
	lines := make([]string, len(g))
	for i, row := range g {
		lines[i] = RowText(row, style, p)
	}
	return strings.Join(lines, "\n")
}

var (
	ruleBox = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(DefaultOn)).
		Padding(0, 1).
		Align(lipgloss.Center)
	ruleTitle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(DefaultOn))
	undefined = lipgloss.NewStyle().Faint(true)
)

// RuleTableText renders each pattern above its output cell, one box per
// pattern in enumeration order, followed by the rule number when the table is
// complete. Undefined entries are shown faint.
func RuleTableText(t automaton.RuleTable, style TextStyle, p Palette) string {
	boxes := make([]string, 0, automaton.PatternCount)
	for _, n := range automaton.Patterns() {
		pattern := RowText(automaton.Row{n.Left, n.Center, n.Right}, style, p)
		out := RowText(automaton.Row{t.Lookup(n)}, style, p)
		label := fmt.Sprintf("%s → %d", n, t.Lookup(n))
		if !t.Defined(n) {
			label = undefined.Render(fmt.Sprintf("%s → 0*", n))
		}
		boxes = append(boxes, ruleBox.Render(lipgloss.JoinVertical(lipgloss.Center, pattern, out, label)))
	}
	title := "Rule (incomplete, * defaults to 0)"
	if code, ok := t.Code(); ok {
		title = fmt.Sprintf("Rule %d", code)
	}
	return lipgloss.JoinVertical(lipgloss.Left, ruleTitle.Render(title), lipgloss.JoinHorizontal(lipgloss.Top, boxes...))
}

func hex(c color.Color) string {
	r, g, b, _ := c.RGBA()
	return fmt.Sprintf("#%02x%02x%02x", r>>8, g>>8, b>>8)
}
