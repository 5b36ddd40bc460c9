// Package styles defines the visual appearance of parliament seat
// diagrams. A Style controls how individual seats, labels, and the
// party legend are drawn; sinks stay format-focused and delegate all
// shape decisions here.
package styles

import "bytes"

// Style defines the visual appearance for parliament rendering.
type Style interface {
	// RenderDefs writes SVG <defs> content (filters, gradients).
	RenderDefs(buf *bytes.Buffer)
	// RenderSeat writes the SVG for a single seat circle.
	RenderSeat(buf *bytes.Buffer, s Seat)
	// RenderLegend writes the SVG for the party legend.
	RenderLegend(buf *bytes.Buffer, entries []LegendEntry, x, y float64)
}

// Seat contains all data needed to render a single seat.
type Seat struct {
	ID      string  // Element identifier (party-seatNumber)
	PartyID string  // Owning party code
	Label   string  // Candidate name
	X, Y    float64 // Center in SVG coordinates
	R       float64 // Circle radius
	Color   string  // Fill color (empty means style default)
	Votes   int     // Vote count for the tooltip
	Rank    int     // Within-party rank
}

// LegendEntry is one party swatch in the legend.
type LegendEntry struct {
	PartyID string
	Color   string
	Seats   int
}
