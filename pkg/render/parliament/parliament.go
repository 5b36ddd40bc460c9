// Package parliament assembles half-circle seat diagrams from electoral
// records: geometric seat layout, contiguous party block assignment,
// candidate-to-seat binding, and area-proportional seat sizing.
//
// The heavy lifting lives in the layout subpackage; this package wires
// the pieces into a Diagram that the sink subpackage renders to SVG or
// JSON.
package parliament

import (
	"github.com/ballotviz/ballotviz/pkg/election"
	"github.com/ballotviz/ballotviz/pkg/render/parliament/layout"
)

// Default geometry for a council-sized chamber.
const (
	DefaultRowCount    = 5
	DefaultInnerRadius = 60.0
	DefaultOuterRadius = 260.0
)

// Options configures diagram construction.
type Options struct {
	RowCount    int
	InnerRadius float64
	OuterRadius float64
	AreaDivisor float64

	// CenterStart is the seat index where the first party's block
	// begins. When nil it defaults to the second party's seat count, so
	// the leftward block exactly fills the left edge.
	CenterStart *int

	// ColorFor resolves a party code to a fill color. Nil leaves colors
	// empty and the sink substitutes its default.
	ColorFor func(partyID string) string
}

func (o *Options) setDefaults() {
	if o.RowCount == 0 {
		o.RowCount = DefaultRowCount
	}
	if o.InnerRadius == 0 {
		o.InnerRadius = DefaultInnerRadius
	}
	if o.OuterRadius == 0 {
		o.OuterRadius = DefaultOuterRadius
	}
	if o.AreaDivisor == 0 {
		o.AreaDivisor = layout.DefaultAreaDivisor
	}
}

// Diagram is a fully assembled parliament chart: positioned seats, the
// party owning each seat, and the candidate bound to it. A Diagram is a
// value; once built it is never mutated.
type Diagram struct {
	Seats       []layout.SeatPosition       `json:"seats"`
	Assignment  []election.PartyAllocation  `json:"assignment"`
	Bindings    []layout.SeatBinding        `json:"bindings"`
	OuterRadius float64                     `json:"outer_radius"`
	AreaDivisor float64                     `json:"area_divisor"`
}

// Empty reports whether the diagram has no seats.
func (d Diagram) Empty() bool { return len(d.Seats) == 0 }

// Build assembles a diagram from per-candidate records: one seat per
// record, party blocks in first-appearance order with the first party
// as the center block. An empty record set yields an empty diagram, not
// an error, since an empty chart is a valid state.
func Build(records []election.SeatRecord, opts Options) (Diagram, error) {
	opts.setDefaults()

	if len(records) == 0 {
		return Diagram{OuterRadius: opts.OuterRadius, AreaDivisor: opts.AreaDivisor}, nil
	}

	seats, err := layout.Generate(len(records), opts.RowCount, opts.InnerRadius, opts.OuterRadius)
	if err != nil {
		return Diagram{}, err
	}

	allocations := election.AllocationsFromRecords(records, opts.ColorFor)

	centerStart := 0
	if len(allocations) > 1 {
		centerStart = allocations[1].SeatCount
	}
	if opts.CenterStart != nil {
		centerStart = *opts.CenterStart
	}

	assignment, err := layout.AssignParties(seats, allocations, centerStart)
	if err != nil {
		return Diagram{}, err
	}

	bindings, err := layout.BindCandidates(seats, assignment, records)
	if err != nil {
		return Diagram{}, err
	}

	return Diagram{
		Seats:       seats,
		Assignment:  assignment,
		Bindings:    bindings,
		OuterRadius: opts.OuterRadius,
		AreaDivisor: opts.AreaDivisor,
	}, nil
}
