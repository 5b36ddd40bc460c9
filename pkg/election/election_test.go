package election

import (
	"reflect"
	"testing"
)

func TestPartyCode(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"民主進步黨", PartyDPP},
		{"中國國民黨", PartyKMT},
		{"無", PartyIND},
		{"", PartyIND},
		{"某新政黨", PartyIND},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PartyCode(tt.name); got != tt.want {
				t.Errorf("PartyCode(%q) = %q, want %q", tt.name, got, tt.want)
			}
		})
	}
}

func TestRankByVotesStable(t *testing.T) {
	records := []SeatRecord{
		{PartyID: "DPP", CandidateName: "a", VoteCount: 100},
		{PartyID: "KMT", CandidateName: "b", VoteCount: 300},
		{PartyID: "DPP", CandidateName: "c", VoteCount: 300},
		{PartyID: "IND", CandidateName: "d", VoteCount: 50},
	}

	ranked := RankByVotes(records)

	wantNames := []string{"b", "c", "a", "d"}
	for i, want := range wantNames {
		if ranked[i].CandidateName != want {
			t.Errorf("ranked[%d] = %q, want %q (tie must keep input order)", i, ranked[i].CandidateName, want)
		}
	}

	// Original slice untouched
	if records[0].CandidateName != "a" {
		t.Error("RankByVotes must not mutate its input")
	}
}

func TestByParty(t *testing.T) {
	records := []SeatRecord{
		{PartyID: "DPP", CandidateName: "a"},
		{PartyID: "KMT", CandidateName: "b"},
		{PartyID: "DPP", CandidateName: "c"},
	}

	order, groups := ByParty(records)

	if !reflect.DeepEqual(order, []string{"DPP", "KMT"}) {
		t.Errorf("order = %v, want [DPP KMT]", order)
	}
	if len(groups["DPP"]) != 2 || len(groups["KMT"]) != 1 {
		t.Errorf("group sizes = %d/%d, want 2/1", len(groups["DPP"]), len(groups["KMT"]))
	}
	if groups["DPP"][1].CandidateName != "c" {
		t.Error("within-party order must follow input order")
	}
}

func TestAllocationsFromRecords(t *testing.T) {
	records := []SeatRecord{
		{PartyID: "DPP"}, {PartyID: "KMT"}, {PartyID: "DPP"}, {PartyID: "IND"},
	}
	colors := map[string]string{"DPP": "#1B9431", "KMT": "#000099"}

	allocations := AllocationsFromRecords(records, func(id string) string { return colors[id] })

	want := []PartyAllocation{
		{PartyID: "DPP", Color: "#1B9431", SeatCount: 2},
		{PartyID: "KMT", Color: "#000099", SeatCount: 1},
		{PartyID: "IND", Color: "", SeatCount: 1},
	}
	if !reflect.DeepEqual(allocations, want) {
		t.Errorf("allocations = %+v, want %+v", allocations, want)
	}
	if TotalSeats(allocations) != len(records) {
		t.Errorf("TotalSeats = %d, want %d", TotalSeats(allocations), len(records))
	}
}

func TestValidateAllocations(t *testing.T) {
	valid := []PartyAllocation{{PartyID: "DPP", SeatCount: 3}}
	if err := ValidateAllocations(valid); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	zeroCount := []PartyAllocation{{PartyID: "DPP", SeatCount: 0}}
	if err := ValidateAllocations(zeroCount); err == nil {
		t.Error("expected error for zero seat count")
	}

	badCode := []PartyAllocation{{PartyID: "dpp", SeatCount: 1}}
	if err := ValidateAllocations(badCode); err == nil {
		t.Error("expected error for lowercase party code")
	}
}

func TestVoteTotal(t *testing.T) {
	records := []SeatRecord{{VoteCount: 10}, {VoteCount: 20}, {VoteCount: 12}}
	if got := VoteTotal(records); got != 42 {
		t.Errorf("VoteTotal = %d, want 42", got)
	}
	if got := VoteTotal(nil); got != 0 {
		t.Errorf("VoteTotal(nil) = %d, want 0", got)
	}
}
