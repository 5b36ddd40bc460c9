// Package sink renders assembled parliament diagrams to output formats:
// hand-built SVG with hover interaction, and indented JSON for callers
// that draw the chart themselves.
package sink

import (
	"bytes"
	"fmt"

	"github.com/ballotviz/ballotviz/pkg/render/parliament"
	"github.com/ballotviz/ballotviz/pkg/render/parliament/layout"
	"github.com/ballotviz/ballotviz/pkg/render/parliament/styles"
)

const seatInteractionCSS = `
    .seat { transition: stroke-width 0.15s ease; }
    .seat.highlight { stroke-width: 2.5; }`

const seatInteractionJS = `
    function highlight(party) {
      document.querySelectorAll('.seat').forEach(s => s.classList.toggle('highlight', s.dataset.party === party));
    }
    function clearHighlight() {
      document.querySelectorAll('.seat').forEach(s => s.classList.remove('highlight'));
    }
    document.querySelectorAll('.seat').forEach(el => {
      el.addEventListener('mouseenter', () => highlight(el.dataset.party));
      el.addEventListener('mouseleave', clearHighlight);
    });`

const (
	margin       = 20.0 // space around the half circle
	legendHeight = 80.0 // space reserved below the baseline for the legend
)

// SVGOption configures RenderSVG.
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	style  styles.Style
	legend bool
}

// WithStyle selects the seat style. Default is styles.Simple.
func WithStyle(s styles.Style) SVGOption { return func(r *svgRenderer) { r.style = s } }

// WithLegend enables the party legend below the diagram.
func WithLegend() SVGOption { return func(r *svgRenderer) { r.legend = true } }

// RenderSVG renders the diagram as a self-contained SVG document.
// Seat circles carry party data attributes wired to hover-highlight
// CSS/JS; all labels are XML-escaped by the style.
func RenderSVG(d parliament.Diagram, opts ...SVGOption) []byte {
	r := svgRenderer{style: styles.Simple{}}
	for _, opt := range opts {
		opt(&r)
	}

	width := 2 * (d.OuterRadius + margin)
	height := d.OuterRadius + margin + legendHeight

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		width, height, width, height)

	r.style.RenderDefs(&buf)

	for _, seat := range buildSeats(d) {
		r.style.RenderSeat(&buf, seat)
	}

	fmt.Fprintf(&buf, "  <style>%s\n  </style>\n", seatInteractionCSS)
	fmt.Fprintf(&buf, "  <script type=\"text/javascript\"><![CDATA[%s\n  ]]></script>\n", seatInteractionJS)

	if r.legend {
		r.style.RenderLegend(&buf, buildLegend(d), margin, d.OuterRadius+margin+12)
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

// buildSeats converts layout coordinates (origin at the arc center,
// y pointing up) to SVG coordinates (origin top-left, y pointing down)
// and joins each seat with its binding.
func buildSeats(d parliament.Diagram) []styles.Seat {
	bindingFor := make(map[int]layout.SeatBinding, len(d.Bindings))
	for _, b := range d.Bindings {
		bindingFor[b.SeatIndex] = b
	}

	seats := make([]styles.Seat, 0, len(d.Seats))
	for i, pos := range d.Seats {
		s := styles.Seat{
			X: pos.X + d.OuterRadius + margin,
			Y: d.OuterRadius + margin - pos.Y,
			R: layout.DefaultSeatRadius,
		}
		if i < len(d.Assignment) {
			s.PartyID = d.Assignment[i].PartyID
			s.Color = d.Assignment[i].Color
		}
		if b, ok := bindingFor[i]; ok {
			s.ID = fmt.Sprintf("%s-%d", b.PartyID, pos.SeatNumber)
			s.Label = b.CandidateName
			s.Votes = b.VoteCount
			s.Rank = b.Rank
			s.R = layout.SeatRadius(b.VoteCount, d.AreaDivisor)
		} else {
			s.ID = fmt.Sprintf("seat-%d", pos.SeatNumber)
		}
		seats = append(seats, s)
	}
	return seats
}

// buildLegend collects one entry per party in assignment order.
func buildLegend(d parliament.Diagram) []styles.LegendEntry {
	var entries []styles.LegendEntry
	index := map[string]int{}
	for _, a := range d.Assignment {
		if i, seen := index[a.PartyID]; seen {
			entries[i].Seats++
			continue
		}
		index[a.PartyID] = len(entries)
		entries = append(entries, styles.LegendEntry{PartyID: a.PartyID, Color: a.Color, Seats: 1})
	}
	return entries
}
