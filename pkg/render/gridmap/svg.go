// Package gridmap renders geographic grid datasets as SVG: equal-size
// square cells colored by their discrete level, with optional
// directional flow arrows between cell centers.
package gridmap

import (
	"bytes"
	"encoding/xml"
	"fmt"

	"github.com/ballotviz/ballotviz/pkg/grid"
)

// levelPalette maps the discrete cell level (0-5) to a fill color.
// Colors are fixed; the Jenks classifier is deliberately not wired in.
var levelPalette = [grid.MaxLevel + 1]string{
	"#F2F0F7",
	"#DADAEB",
	"#BCBDDC",
	"#9E9AC8",
	"#756BB1",
	"#54278F",
}

// LevelColor returns the fill color for a cell level. Out-of-range
// levels fall back to level 0.
func LevelColor(level int) string {
	if level < 0 || level > grid.MaxLevel {
		return levelPalette[0]
	}
	return levelPalette[level]
}

const arrowDefs = `  <defs>
    <marker id="flow-arrow" viewBox="0 0 10 10" refX="9" refY="5" markerWidth="6" markerHeight="6" orient="auto-start-reverse">
      <path d="M 0 0 L 10 5 L 0 10 z" fill="#D94801"/>
    </marker>
  </defs>
`

// Option configures RenderSVG.
type Option func(*renderer)

type renderer struct {
	arrows  bool
	padding float64
}

// WithArrows enables directional flow arrows for cells carrying a flow
// target.
func WithArrows() Option { return func(r *renderer) { r.arrows = true } }

// WithPadding overrides the default viewport padding (40px).
func WithPadding(p float64) Option { return func(r *renderer) { r.padding = p } }

// RenderSVG lays out the cells inside the viewport and renders them as
// a self-contained SVG document. Cell validation and layout failures
// (duplicates, empty dataset, unusable viewport) propagate unchanged.
func RenderSVG(cells []grid.Cell, viewportWidth, viewportHeight float64, opts ...Option) ([]byte, error) {
	r := renderer{padding: 40}
	for _, opt := range opts {
		opt(&r)
	}

	if err := grid.ValidateCells(cells); err != nil {
		return nil, err
	}
	layout, err := grid.ComputeLayout(cells, viewportWidth, viewportHeight, r.padding)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		viewportWidth, viewportHeight, viewportWidth, viewportHeight)
	buf.WriteString(arrowDefs)

	for _, c := range cells {
		renderCell(&buf, c, layout)
	}
	if r.arrows {
		for _, c := range cells {
			renderArrow(&buf, c, layout)
		}
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes(), nil
}

func renderCell(buf *bytes.Buffer, c grid.Cell, l grid.Layout) {
	p := grid.CellToPixel(c, l)
	fmt.Fprintf(buf, `  <rect id="cell-%d-%d" class="cell" x="%.2f" y="%.2f" width="%.2f" height="%.2f" fill="%s" stroke="#FFFFFF" stroke-width="1"`,
		c.X, c.Y, p.X, p.Y, l.CellSize, l.CellSize, LevelColor(c.Level))
	if name, ok := c.Properties["name"].(string); ok && name != "" {
		fmt.Fprintf(buf, `><title>%s</title></rect>`+"\n", escape(name))
		return
	}
	buf.WriteString("/>\n")
}

// renderArrow draws a line with an arrowhead from the cell center to
// its flow target's center.
func renderArrow(buf *bytes.Buffer, c grid.Cell, l grid.Layout) {
	if c.Flow == nil {
		return
	}
	from := grid.CellCenter(c, l)
	to := grid.CellCenter(grid.Cell{X: c.Flow.X, Y: c.Flow.Y}, l)
	fmt.Fprintf(buf, `  <line class="flow" x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" stroke="#D94801" stroke-width="1.5" marker-end="url(#flow-arrow)"/>`+"\n",
		from.X, from.Y, to.X, to.Y)
}

func escape(s string) string {
	var buf bytes.Buffer
	_ = xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
