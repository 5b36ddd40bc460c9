// Package election defines the core data model for electoral results.
//
// The types here are plain values: records parsed from tabular sources,
// declared party seat allocations, and the fixed party-name→code mapping
// used by Taiwanese election result files. Layout engines consume these
// values and never mutate them.
package election

import (
	"sort"

	"github.com/ballotviz/ballotviz/pkg/errors"
)

// Well-known party codes.
const (
	PartyDPP = "DPP" // 民主進步黨
	PartyKMT = "KMT" // 中國國民黨
	PartyIND = "IND" // independent / 無
)

// partyCodes maps registered party names to short codes.
// Absent or "無" party fields map to IND.
var partyCodes = map[string]string{
	"民主進步黨": PartyDPP,
	"中國國民黨": PartyKMT,
}

// PartyCode returns the short code for a party name as it appears in
// result files. Unregistered names, the literal "無", and the empty
// string all map to IND.
func PartyCode(name string) string {
	if code, ok := partyCodes[name]; ok {
		return code
	}
	return PartyIND
}

// SeatRecord is one per-candidate result row. Records are immutable;
// input order is significant only as a tie-break when ranking candidates
// with equal vote counts.
type SeatRecord struct {
	PartyID       string `json:"party_id"`
	CandidateName string `json:"candidate_name"`
	VoteCount     int    `json:"vote_count"`
}

// PartyAllocation declares how many of the generated seats belong to one
// party. The allocations for a chart must exactly partition the seat
// list: their counts sum to the total seat count.
type PartyAllocation struct {
	PartyID   string `json:"party_id"`
	Color     string `json:"color"`
	SeatCount int    `json:"seat_count"`
}

// TotalSeats returns the sum of seat counts across allocations.
func TotalSeats(allocations []PartyAllocation) int {
	total := 0
	for _, a := range allocations {
		total += a.SeatCount
	}
	return total
}

// ValidateAllocations checks that every allocation has a positive seat
// count and a well-formed party code.
func ValidateAllocations(allocations []PartyAllocation) error {
	for _, a := range allocations {
		if err := errors.ValidatePartyCode(a.PartyID); err != nil {
			return err
		}
		if a.SeatCount <= 0 {
			return errors.New(errors.ErrCodeInvalidInput,
				"party %s: seat count must be positive, got %d", a.PartyID, a.SeatCount)
		}
	}
	return nil
}

// RankByVotes returns the records sorted by descending vote count.
// The sort is stable: records with equal votes keep their input order.
// The input slice is not modified.
func RankByVotes(records []SeatRecord) []SeatRecord {
	ranked := make([]SeatRecord, len(records))
	copy(ranked, records)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].VoteCount > ranked[j].VoteCount
	})
	return ranked
}

// ByParty groups records by party, preserving input order within each
// group. Group iteration order follows first appearance in the input.
func ByParty(records []SeatRecord) (order []string, groups map[string][]SeatRecord) {
	groups = make(map[string][]SeatRecord)
	for _, r := range records {
		if _, seen := groups[r.PartyID]; !seen {
			order = append(order, r.PartyID)
		}
		groups[r.PartyID] = append(groups[r.PartyID], r)
	}
	return order, groups
}

// AllocationsFromRecords derives party allocations from per-candidate
// records: one seat per record, grouped by party in first-appearance
// order. Colors are resolved through the provided lookup; parties with
// no configured color get an empty string (sinks substitute a default).
func AllocationsFromRecords(records []SeatRecord, colorFor func(partyID string) string) []PartyAllocation {
	order, groups := ByParty(records)
	allocations := make([]PartyAllocation, 0, len(order))
	for _, partyID := range order {
		color := ""
		if colorFor != nil {
			color = colorFor(partyID)
		}
		allocations = append(allocations, PartyAllocation{
			PartyID:   partyID,
			Color:     color,
			SeatCount: len(groups[partyID]),
		})
	}
	return allocations
}

// VoteTotal returns the sum of vote counts across records.
func VoteTotal(records []SeatRecord) int {
	total := 0
	for _, r := range records {
		total += r.VoteCount
	}
	return total
}
