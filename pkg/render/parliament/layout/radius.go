package layout

import "math"

// DefaultSeatRadius is the fallback radius for seats whose candidate has
// zero or missing votes.
const DefaultSeatRadius = 4.0

// DefaultAreaDivisor is the manually tuned scale divisor for the
// area-proportional seat circles. Chosen so a typical council race
// (tens of thousands of votes) yields radii in the 10-40px range.
const DefaultAreaDivisor = 12.0

// SeatRadius returns the circle radius for a seat such that circle area
// is directly proportional to the vote count: r = sqrt(votes/(divisor·π)).
// Doubling the votes multiplies the radius by √2, not 2.
func SeatRadius(voteCount int, areaDivisor float64) float64 {
	if voteCount <= 0 || areaDivisor <= 0 {
		return DefaultSeatRadius
	}
	return math.Sqrt(float64(voteCount) / (areaDivisor * math.Pi))
}
