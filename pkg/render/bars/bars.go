// Package bars renders per-candidate vote counts as a horizontal bar
// chart, sorted by votes descending.
package bars

import (
	"bytes"
	"encoding/xml"
	"fmt"

	"github.com/ballotviz/ballotviz/pkg/election"
	"github.com/ballotviz/ballotviz/pkg/errors"
)

const (
	barHeight  = 22.0
	barGap     = 6.0
	labelWidth = 160.0
	margin     = 20.0
)

// Option configures RenderSVG.
type Option func(*renderer)

type renderer struct {
	width    float64
	colorFor func(partyID string) string
}

// WithWidth overrides the default chart width (800px).
func WithWidth(w float64) Option { return func(r *renderer) { r.width = w } }

// WithColorFor supplies a bar color per party.
func WithColorFor(f func(partyID string) string) Option {
	return func(r *renderer) { r.colorFor = f }
}

const defaultFill = "#999999"

// RenderSVG draws one bar per record, longest first. Bar length scales
// linearly with vote count against the leader. The chart height grows
// with the record count. Fails with EMPTY_DATASET for zero records.
func RenderSVG(records []election.SeatRecord, opts ...Option) ([]byte, error) {
	r := renderer{width: 800}
	for _, opt := range opts {
		opt(&r)
	}
	if len(records) == 0 {
		return nil, errors.New(errors.ErrCodeEmptyDataset, "no records to chart")
	}
	if err := errors.ValidateViewport(r.width, 1); err != nil {
		return nil, err
	}

	ranked := election.RankByVotes(records)
	maxVotes := ranked[0].VoteCount
	height := margin*2 + float64(len(ranked))*(barHeight+barGap) - barGap
	barMax := r.width - labelWidth - margin*2

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		r.width, height, r.width, height)

	for i, rec := range ranked {
		y := margin + float64(i)*(barHeight+barGap)
		w := 0.0
		if maxVotes > 0 {
			w = barMax * float64(rec.VoteCount) / float64(maxVotes)
		}
		fill := defaultFill
		if r.colorFor != nil {
			if c := r.colorFor(rec.PartyID); c != "" {
				fill = c
			}
		}

		fmt.Fprintf(&buf, `  <text x="%.1f" y="%.1f" font-size="12" text-anchor="end">%s</text>`+"\n",
			margin+labelWidth-8, y+barHeight/2+4, escape(rec.CandidateName))
		fmt.Fprintf(&buf, `  <rect class="bar" data-party="%s" x="%.1f" y="%.1f" width="%.2f" height="%.1f" fill="%s">`,
			escape(rec.PartyID), margin+labelWidth, y, w, barHeight, fill)
		fmt.Fprintf(&buf, `<title>%s (%s): %d votes</title></rect>`+"\n",
			escape(rec.CandidateName), escape(rec.PartyID), rec.VoteCount)
		fmt.Fprintf(&buf, `  <text x="%.1f" y="%.1f" font-size="11" fill="#555555">%d</text>`+"\n",
			margin+labelWidth+w+6, y+barHeight/2+4, rec.VoteCount)
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes(), nil
}

func escape(s string) string {
	var buf bytes.Buffer
	_ = xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
