package bars

import (
	"strings"
	"testing"

	"github.com/ballotviz/ballotviz/pkg/election"
	"github.com/ballotviz/ballotviz/pkg/errors"
)

func testRecords() []election.SeatRecord {
	return []election.SeatRecord{
		{PartyID: "DPP", CandidateName: "王小明", VoteCount: 18000},
		{PartyID: "KMT", CandidateName: "李大同", VoteCount: 22000},
		{PartyID: "IND", CandidateName: "陳阿花", VoteCount: 9000},
	}
}

func TestRenderSVGStructure(t *testing.T) {
	out, err := RenderSVG(testRecords(), WithColorFor(func(id string) string {
		if id == "KMT" {
			return "#000099"
		}
		return ""
	}))
	if err != nil {
		t.Fatalf("RenderSVG: %v", err)
	}
	svg := string(out)

	for _, want := range []string{
		`class="bar"`,
		`data-party="KMT"`,
		`fill="#000099"`,
		`fill="#999999"`,
		`<title>李大同 (KMT): 22000 votes</title>`,
	} {
		if !strings.Contains(svg, want) {
			t.Errorf("SVG missing %q", want)
		}
	}

	if got := strings.Count(svg, `class="bar"`); got != 3 {
		t.Errorf("got %d bars, want 3", got)
	}

	// Longest bar first.
	if strings.Index(svg, "李大同") > strings.Index(svg, "王小明") {
		t.Error("bars not sorted by votes descending")
	}
}

func TestRenderSVGLeaderSpansFullWidth(t *testing.T) {
	out, err := RenderSVG(testRecords(), WithWidth(800))
	if err != nil {
		t.Fatalf("RenderSVG: %v", err)
	}

	// barMax = 800 - 160 - 40 = 600 for the 22000-vote leader.
	if !strings.Contains(string(out), `width="600.00"`) {
		t.Error("leader bar should span the full bar area")
	}
}

func TestRenderSVGEmpty(t *testing.T) {
	_, err := RenderSVG(nil)
	if !errors.Is(err, errors.ErrCodeEmptyDataset) {
		t.Errorf("error = %v, want EMPTY_DATASET", err)
	}
}
