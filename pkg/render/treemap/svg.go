package treemap

import (
	"bytes"
	"encoding/xml"
	"fmt"
)

const labelMinW = 60
const labelMinH = 20

// Option configures RenderSVG.
type Option func(*renderer)

type renderer struct {
	labels   bool
	colorFor func(partyID string) string
}

// WithLabels draws the item label and percentage inside blocks large
// enough to hold text.
func WithLabels() Option { return func(r *renderer) { r.labels = true } }

// WithColorFor supplies a fill color per party. Item.Color, when set,
// still wins.
func WithColorFor(f func(partyID string) string) Option {
	return func(r *renderer) { r.colorFor = f }
}

// RenderSVG lays out the items and renders one rect per block, with a
// tooltip carrying the label and share.
func RenderSVG(items []Item, width, height float64, opts ...Option) ([]byte, error) {
	r := renderer{}
	for _, opt := range opts {
		opt(&r)
	}

	blocks, err := Layout(items, width, height)
	if err != nil {
		return nil, err
	}

	var total float64
	for _, b := range blocks {
		total += b.Value
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		width, height, width, height)

	for i, b := range blocks {
		share := 100 * b.Value / total
		fmt.Fprintf(&buf, `  <rect id="block-%d" class="block" x="%.2f" y="%.2f" width="%.2f" height="%.2f" fill="%s" stroke="#FFFFFF" stroke-width="2">`,
			i, b.X, b.Y, b.W, b.H, r.fill(b))
		fmt.Fprintf(&buf, `<title>%s: %.1f%%</title></rect>`+"\n", escape(b.Label), share)

		if r.labels && b.W >= labelMinW && b.H >= labelMinH {
			fmt.Fprintf(&buf, `  <text x="%.2f" y="%.2f" font-size="12" text-anchor="middle" fill="#FFFFFF">%s %.1f%%</text>`+"\n",
				b.X+b.W/2, b.Y+b.H/2+4, escape(b.Label), share)
		}
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes(), nil
}

const defaultFill = "#999999"

func (r *renderer) fill(b Block) string {
	if b.Color != "" {
		return b.Color
	}
	if r.colorFor != nil {
		if c := r.colorFor(b.PartyID); c != "" {
			return c
		}
	}
	return defaultFill
}

func escape(s string) string {
	var buf bytes.Buffer
	_ = xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
