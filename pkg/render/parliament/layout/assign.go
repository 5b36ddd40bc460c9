package layout

import (
	"math"
	"sort"

	"github.com/ballotviz/ballotviz/pkg/election"
	"github.com/ballotviz/ballotviz/pkg/errors"
)

// AssignParties partitions the sorted seat sequence into contiguous
// party blocks. The first allocation is the center block starting at
// centerStart; the second fills leftward from centerStart−1 down to
// index 0; the third and any later allocations fill rightward from the
// end of the center block.
//
// The returned slice maps each seat index to its allocation
// (len == len(seats)). AssignParties never clamps or truncates: it
// fails with ALLOCATION_MISMATCH when the allocation counts do not sum to
// len(seats), when a block runs off either end of the seat sequence, or
// when the blocks leave a gap.
func AssignParties(seats []SeatPosition, allocations []election.PartyAllocation, centerStart int) ([]election.PartyAllocation, error) {
	if len(allocations) == 0 {
		return nil, errors.New(errors.ErrCodeAllocationMismatch, "no party allocations")
	}
	if total := election.TotalSeats(allocations); total != len(seats) {
		return nil, errors.New(errors.ErrCodeAllocationMismatch,
			"allocations sum to %d seats, layout has %d", total, len(seats))
	}

	assigned := make([]*election.PartyAllocation, len(seats))
	fill := func(alloc election.PartyAllocation, start, end int) error {
		if start < 0 || end > len(seats) {
			return errors.New(errors.ErrCodeAllocationMismatch,
				"party %s block [%d, %d) runs off the seat sequence (0..%d)",
				alloc.PartyID, start, end, len(seats))
		}
		for i := start; i < end; i++ {
			if assigned[i] != nil {
				return errors.New(errors.ErrCodeAllocationMismatch,
					"seat %d assigned to both %s and %s", i, assigned[i].PartyID, alloc.PartyID)
			}
			a := alloc
			assigned[i] = &a
		}
		return nil
	}

	center := allocations[0]
	if err := fill(center, centerStart, centerStart+center.SeatCount); err != nil {
		return nil, err
	}

	if len(allocations) > 1 {
		left := allocations[1]
		if err := fill(left, centerStart-left.SeatCount, centerStart); err != nil {
			return nil, err
		}
	}

	cursor := centerStart + center.SeatCount
	for _, alloc := range allocations[2:] {
		if err := fill(alloc, cursor, cursor+alloc.SeatCount); err != nil {
			return nil, err
		}
		cursor += alloc.SeatCount
	}

	result := make([]election.PartyAllocation, len(seats))
	for i, a := range assigned {
		if a == nil {
			return nil, errors.New(errors.ErrCodeAllocationMismatch,
				"seat %d left unassigned (blocks do not cover the sequence)", i)
		}
		result[i] = *a
	}
	return result, nil
}

// SeatBinding joins one seat to the candidate occupying it.
// Rank is the 1-based assignment order within the candidate's party.
type SeatBinding struct {
	SeatIndex     int    `json:"seat_index"`
	SeatNumber    int    `json:"seat_number"`
	PartyID       string `json:"party_id"`
	CandidateName string `json:"candidate_name"`
	VoteCount     int    `json:"vote_count"`
	Rank          int    `json:"rank"`
}

// BindCandidates maps candidates onto seats within their party's block.
// Seats inside one block are ordered by row descending, then by angular
// distance from the top center (|angle − π/2|) ascending, so outer rows
// come first and top-center seats first within a row. Candidates are taken in descending
// vote-count order (stable on input order for ties) and assigned in
// that seat order, producing their within-party Rank.
//
// Fails with ALLOCATION_MISMATCH when a party's record count differs
// from its block size.
func BindCandidates(seats []SeatPosition, assignment []election.PartyAllocation, records []election.SeatRecord) ([]SeatBinding, error) {
	if len(assignment) != len(seats) {
		return nil, errors.New(errors.ErrCodeAllocationMismatch,
			"assignment covers %d seats, layout has %d", len(assignment), len(seats))
	}

	// Seat indices per party block, in block order.
	blockOrder := []string{}
	blocks := map[string][]int{}
	for i, alloc := range assignment {
		if _, seen := blocks[alloc.PartyID]; !seen {
			blockOrder = append(blockOrder, alloc.PartyID)
		}
		blocks[alloc.PartyID] = append(blocks[alloc.PartyID], i)
	}

	_, byParty := election.ByParty(records)

	bindings := make([]SeatBinding, 0, len(seats))
	for _, partyID := range blockOrder {
		indices := blocks[partyID]
		candidates := election.RankByVotes(byParty[partyID])
		if len(candidates) != len(indices) {
			return nil, errors.New(errors.ErrCodeAllocationMismatch,
				"party %s has %d candidates for %d seats", partyID, len(candidates), len(indices))
		}

		ordered := make([]int, len(indices))
		copy(ordered, indices)
		sort.SliceStable(ordered, func(a, b int) bool {
			sa, sb := seats[ordered[a]], seats[ordered[b]]
			if sa.Row != sb.Row {
				return sa.Row > sb.Row
			}
			return math.Abs(sa.Angle-defaultAngle) < math.Abs(sb.Angle-defaultAngle)
		})

		for rank, seatIdx := range ordered {
			c := candidates[rank]
			bindings = append(bindings, SeatBinding{
				SeatIndex:     seatIdx,
				SeatNumber:    seats[seatIdx].SeatNumber,
				PartyID:       partyID,
				CandidateName: c.CandidateName,
				VoteCount:     c.VoteCount,
				Rank:          rank + 1,
			})
		}
	}

	sort.Slice(bindings, func(i, j int) bool { return bindings[i].SeatIndex < bindings[j].SeatIndex })
	return bindings, nil
}
