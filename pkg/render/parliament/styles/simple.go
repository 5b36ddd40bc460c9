package styles

import (
	"bytes"
	"encoding/xml"
	"fmt"
)

// DefaultFill is the seat color used when a party has no configured color.
const DefaultFill = "#999999"

// Simple renders seats as flat circles with a thin outline and a plain
// text legend. It writes no defs.
type Simple struct{}

// RenderDefs writes nothing: the simple style needs no defs.
func (Simple) RenderDefs(buf *bytes.Buffer) {}

// RenderSeat writes one seat circle with a <title> tooltip carrying the
// candidate name, vote count, and within-party rank.
func (Simple) RenderSeat(buf *bytes.Buffer, s Seat) {
	fill := s.Color
	if fill == "" {
		fill = DefaultFill
	}
	fmt.Fprintf(buf, `  <circle id="seat-%s" class="seat" cx="%.2f" cy="%.2f" r="%.2f" fill="%s" stroke="#333" stroke-width="0.5" data-party="%s">`,
		escape(s.ID), s.X, s.Y, s.R, escape(fill), escape(s.PartyID))
	if s.Label != "" {
		fmt.Fprintf(buf, `<title>%s (%s): %d votes, rank %d</title>`,
			escape(s.Label), escape(s.PartyID), s.Votes, s.Rank)
	}
	buf.WriteString("</circle>\n")
}

// RenderLegend writes one swatch row per party at (x, y), stacked
// vertically.
func (Simple) RenderLegend(buf *bytes.Buffer, entries []LegendEntry, x, y float64) {
	const rowHeight = 18.0
	for i, e := range entries {
		color := e.Color
		if color == "" {
			color = DefaultFill
		}
		rowY := y + float64(i)*rowHeight
		fmt.Fprintf(buf, `  <rect x="%.1f" y="%.1f" width="12" height="12" fill="%s" stroke="#333" stroke-width="0.5"/>`+"\n",
			x, rowY, escape(color))
		fmt.Fprintf(buf, `  <text x="%.1f" y="%.1f" font-family="sans-serif" font-size="12">%s (%d)</text>`+"\n",
			x+18, rowY+10, escape(e.PartyID), e.Seats)
	}
}

// escape XML-escapes a string for safe inclusion in SVG attributes and
// text content.
func escape(s string) string {
	var buf bytes.Buffer
	_ = xml.EscapeText(&buf, []byte(s))
	return buf.String()
}

// Ensure Simple implements Style.
var _ Style = Simple{}
