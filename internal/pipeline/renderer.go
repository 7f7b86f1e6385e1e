package pipeline

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/ppiankov/typechart/internal/model"
	"github.com/samber/lo"
)

// Renderer turns a report into markup
type Renderer struct {
	title           string
	stylesheet      string
	collapseNeutral int
}

// NewRenderer creates a renderer from output settings
func NewRenderer(cfg model.OutputConfig) *Renderer {
	return &Renderer{
		title:           cfg.Title,
		stylesheet:      cfg.Stylesheet,
		collapseNeutral: cfg.CollapseNeutral,
	}
}

// Render writes the report in the given format
func (r *Renderer) Render(w io.Writer, report *model.Report, format string) error {
	switch strings.ToLower(format) {
	case model.FormatHTML, "":
		return r.RenderHTML(w, report)
	case model.FormatJSON:
		return r.RenderJSON(w, report)
	case model.FormatMarkdown, "markdown":
		return r.RenderMarkdown(w, report)
	default:
		return fmt.Errorf("unknown format: %s (supported: html, json, md)", format)
	}
}

// RenderJSON writes the report as indented JSON
func (r *Renderer) RenderJSON(w io.Writer, report *model.Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(report); err != nil {
		return fmt.Errorf("encode JSON: %w", err)
	}
	return nil
}

// cell is one square of the 3×3 display grid. Immune types are listed
// separately so they can be marked.
type cell struct {
	class    string // CSS class, empty for plain cells
	ordinary []model.Type
	immune   []model.Type
}

func (c cell) empty() bool {
	return len(c.ordinary) == 0 && len(c.immune) == 0
}

func (c cell) size() int {
	return len(c.ordinary) + len(c.immune)
}

// Grid row and column headings: resisted, neutral, super effective
var gridHeadings = [3]string{"-", "1", "+"}

// grid folds the 16 buckets into the displayed 3×3 layout. Rows are damage
// from (incoming), columns damage to (outgoing). Immunities share a cell with
// the matching resistance.
func grid(c *model.MatchupChart) [3][3]cell {
	b := c.Bucket
	I, R, N, S := model.Immune, model.Resist, model.Neutral, model.Super

	return [3][3]cell{
		{
			{ordinary: b(R, R), immune: lo.Flatten([][]model.Type{b(I, I), b(I, R), b(R, I)})},
			{ordinary: b(R, N), immune: b(I, N)},
			{ordinary: b(R, S), immune: b(I, S)},
		},
		{
			{ordinary: b(N, R), immune: b(N, I)},
			{ordinary: b(N, N), class: "nn"},
			{ordinary: b(N, S)},
		},
		{
			{ordinary: b(S, R), immune: b(S, I)},
			{ordinary: b(S, N)},
			{ordinary: b(S, S)},
		},
	}
}

// collapsed reports whether the neutral cell should be shown as a count
func (r *Renderer) collapsed(c cell) bool {
	return c.class == "nn" && r.collapseNeutral > 0 && c.size() >= r.collapseNeutral
}

// RenderMarkdown writes one 3×3 table per type
func (r *Renderer) RenderMarkdown(w io.Writer, report *model.Report) error {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", report.Title)
	fmt.Fprintf(&b, "Table: `%s`\n\n", report.Table)

	for _, c := range report.Charts {
		fmt.Fprintf(&b, "## %s\n\n", c.Type.Label())
		b.WriteString("| from \\ to | - | 1 | + |\n")
		b.WriteString("|---|---|---|---|\n")

		g := grid(c)
		for row := range g {
			fmt.Fprintf(&b, "| **%s** |", gridHeadings[row])
			for col := range g[row] {
				fmt.Fprintf(&b, " %s |", r.markdownCell(g[row][col]))
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	b.WriteString("\\* immunity / double resistance\n")

	_, err := io.WriteString(w, b.String())
	return err
}

func (r *Renderer) markdownCell(c cell) string {
	if r.collapsed(c) {
		return fmt.Sprintf("[…%d…]", c.size())
	}
	items := lo.Map(c.immune, func(t model.Type, _ int) string { return t.Abbr() + "\\*" })
	items = append(items, lo.Map(c.ordinary, func(t model.Type, _ int) string { return t.Abbr() })...)
	return strings.Join(items, " ")
}
