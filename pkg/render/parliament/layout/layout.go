// Package layout computes the geometric arrangement of a half-circle
// parliament seat diagram.
//
// Seats are placed on concentric arcs between an inner and outer radius.
// Each row receives a seat count proportional to its arc length, with
// rounding drift absorbed by the outermost row so the total is always
// exact. The merged seat list is ordered left-to-right by descending
// angle, and parties are assigned to contiguous blocks of that order.
//
// All functions are pure: they never mutate their inputs and hold no
// shared state, so concurrent layout requests are safe.
package layout

import (
	"math"
	"sort"

	"github.com/ballotviz/ballotviz/pkg/errors"
)

// SeatPosition is one computed seat placement.
// SeatNumber is the 1-based index in left-to-right visual order.
type SeatPosition struct {
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	Row        int     `json:"row"`
	Angle      float64 `json:"angle"`
	SeatNumber int     `json:"seat_number"`
}

// defaultAngle is where a row's only seat sits when the row holds a
// single seat: top center of the arc.
const defaultAngle = math.Pi / 2

// Generate computes one position per seat along rowCount concentric
// half-circle arcs from innerRadius to outerRadius.
//
// Row radii are linearly interpolated between the two radii inclusive
// (a single row sits at innerRadius). Each row is allocated seats
// proportional to its arc length π·r, rounded to nearest; the outermost
// row receives whatever remains so that exactly totalSeats positions
// are produced. Within a row, seats span [0, π] with an angular step of
// π/(count−1). The merged result is sorted by descending angle and
// numbered 1..totalSeats in that order.
func Generate(totalSeats, rowCount int, innerRadius, outerRadius float64) ([]SeatPosition, error) {
	if totalSeats <= 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "total seats must be positive, got %d", totalSeats)
	}
	if rowCount <= 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "row count must be positive, got %d", rowCount)
	}
	if innerRadius <= 0 || outerRadius < innerRadius {
		return nil, errors.New(errors.ErrCodeInvalidInput,
			"invalid radii: inner=%g outer=%g (need 0 < inner <= outer)", innerRadius, outerRadius)
	}

	radii := rowRadii(rowCount, innerRadius, outerRadius)
	counts := rowCounts(totalSeats, radii)

	seats := make([]SeatPosition, 0, totalSeats)
	for row, count := range counts {
		seats = append(seats, rowSeats(row, radii[row], count)...)
	}

	// Left-to-right visual order: angle descending from π toward 0.
	// Ties across rows keep inner rows first.
	sort.SliceStable(seats, func(i, j int) bool {
		return seats[i].Angle > seats[j].Angle
	})
	for i := range seats {
		seats[i].SeatNumber = i + 1
	}
	return seats, nil
}

// rowRadii interpolates rowCount radii from inner to outer inclusive.
func rowRadii(rowCount int, inner, outer float64) []float64 {
	radii := make([]float64, rowCount)
	if rowCount == 1 {
		radii[0] = inner
		return radii
	}
	step := (outer - inner) / float64(rowCount-1)
	for i := range radii {
		radii[i] = inner + float64(i)*step
	}
	return radii
}

// rowCounts distributes totalSeats across rows proportional to arc
// length. Each row is capped at the seats still unallocated, so
// rounding can never over-allocate; the last row absorbs whatever
// remains and the counts always sum to totalSeats.
func rowCounts(totalSeats int, radii []float64) []int {
	totalArc := 0.0
	for _, r := range radii {
		totalArc += math.Pi * r
	}

	counts := make([]int, len(radii))
	remaining := totalSeats
	for i, r := range radii[:len(radii)-1] {
		share := math.Pi * r / totalArc
		n := int(math.Round(float64(totalSeats) * share))
		if n > remaining {
			n = remaining
		}
		counts[i] = n
		remaining -= n
	}
	counts[len(radii)-1] = remaining
	return counts
}

// rowSeats places count seats on the arc of the given radius.
func rowSeats(row int, radius float64, count int) []SeatPosition {
	if count <= 0 {
		return nil
	}
	if count == 1 {
		return []SeatPosition{seatAt(row, radius, defaultAngle)}
	}
	step := math.Pi / float64(count-1)
	seats := make([]SeatPosition, count)
	for i := range seats {
		seats[i] = seatAt(row, radius, float64(i)*step)
	}
	return seats
}

func seatAt(row int, radius, angle float64) SeatPosition {
	return SeatPosition{
		X:     radius * math.Cos(angle),
		Y:     radius * math.Sin(angle),
		Row:   row,
		Angle: angle,
	}
}
