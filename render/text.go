package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/netra-cyber/netra-portal/aggregate"
	"github.com/netra-cyber/netra-portal/sanitize"
)

var badgeColors = map[string]*color.Color{
	aggregate.ColorSuccess:   color.New(color.FgGreen, color.Bold),
	aggregate.ColorWarning:   color.New(color.FgYellow, color.Bold),
	aggregate.ColorDanger:    color.New(color.FgRed, color.Bold),
	aggregate.ColorInfo:      color.New(color.FgCyan),
	aggregate.ColorPrimary:   color.New(color.FgBlue, color.Bold),
	aggregate.ColorSecondary: color.New(color.FgHiBlack),
}

var heading = color.New(color.FgWhite, color.Underline)

// Text writes views to a terminal.
type Text struct {
	w        io.Writer
	colorize bool
}

// NewText returns a Text writing to w. Colour is only emitted when colorize is set and
// colour has not been turned off globally.
func NewText(w io.Writer, colorize bool) *Text {
	return &Text{w: w, colorize: colorize && !color.NoColor}
}

func (t *Text) paint(c *color.Color, s string) string {
	if !t.colorize || c == nil {
		return s
	}
	return c.Sprint(s)
}

func (t *Text) badge(s, colorName string) string {
	return t.paint(badgeColors[colorName], "["+s+"]")
}

func (t *Text) cell(c aggregate.Cell) string {
	switch {
	case c.Link != "":
		return c.Link
	case c.Badge != "":
		return t.badge(c.Text, c.Badge)
	default:
		return sanitize.PlainText(c.Text)
	}
}

func (t *Text) section(s aggregate.Section) {
	fmt.Fprintf(t.w, "\n%s\n", t.paint(heading, s.Title))
	fmt.Fprintln(t.w, strings.Join(s.Columns, " | "))
	for _, row := range s.Rows {
		cells := make([]string, len(row))
		for i, c := range row {
			cells[i] = t.cell(c)
		}
		fmt.Fprintln(t.w, strings.Join(cells, " | "))
	}
}

func (t *Text) tiles(tiles []aggregate.Tile) {
	parts := make([]string, 0, len(tiles))
	for _, tile := range tiles {
		parts = append(parts, fmt.Sprintf("%s: %s", tile.Label, t.paint(badgeColors[tile.Color], tile.Value)))
	}
	if len(parts) > 0 {
		fmt.Fprintln(t.w, strings.Join(parts, "  "))
	}
}

// Search writes a grouped universal search result.
func (t *Text) Search(v aggregate.SearchView) {
	if v.Empty {
		fmt.Fprintf(t.w, "No matches found for %q.\n", v.Query)
		return
	}
	fmt.Fprintf(t.w, "%d match(es) for %q\n", v.Count, v.Query)
	t.tiles(v.Tiles)
	for _, g := range v.Groups {
		t.section(g)
	}
}

// Report writes an investigation report.
func (t *Text) Report(v aggregate.ReportView) {
	fmt.Fprintf(t.w, "Investigation Report: %s\n", v.Identifier)
	if r := v.Risk; r != nil {
		fmt.Fprintf(t.w, "Risk %d %s %s\n%s\n", r.Score, t.badge(r.Level, aggregate.ColorDanger), r.Priority, r.Advice)
	}
	t.tiles(v.Stats)
	if v.NoData {
		fmt.Fprintln(t.w, "No records linked to this identifier.")
		return
	}
	for _, s := range v.Sections {
		t.section(s)
	}
}

// Graph writes a network graph as an edge list.
func (t *Text) Graph(v aggregate.GraphView) {
	if v.Empty {
		fmt.Fprintln(t.w, "No network connections found.")
		return
	}
	fmt.Fprintf(t.w, "\n%s\n", t.paint(heading, "Network: "+v.Identifier))
	for _, e := range v.Edges {
		if e.Label != "" {
			fmt.Fprintf(t.w, "%s -> %s (%s)\n", e.From, e.To, e.Label)
			continue
		}
		fmt.Fprintf(t.w, "%s -> %s\n", e.From, e.To)
	}
}

// Dashboard writes the financial dashboard and repeat-entity alerts.
func (t *Text) Dashboard(v aggregate.DashboardView, newAlerts int) {
	if newAlerts > 0 {
		fmt.Fprintln(t.w, t.badge(fmt.Sprintf("%d NEW REPEAT ENTITIES", newAlerts), aggregate.ColorDanger))
	}
	fmt.Fprintf(t.w, "Amount at risk: %s  Bank requests: %d  Freezes: %d/%d  Avg response: %s\n",
		v.AmountAtRisk, v.BankRequestsSent, v.FreezeConfirmed, v.FreezeTotal, v.AvgResponseTime)
	for _, f := range v.FraudTypes {
		fmt.Fprintf(t.w, "  %-24s %d\n", f.Type, f.Count)
	}
	fmt.Fprintf(t.w, "Repeat entities: %d\n", v.RepeatTotal)
	for _, a := range v.Alerts {
		fmt.Fprintf(t.w, "  %s %s %s (%d cases: %s)\n", t.badge(a.Level, a.Color), a.Type, a.Identifier, a.LinkedCases, a.FIRNumbers)
	}
}
