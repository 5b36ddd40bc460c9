package tabular

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ballotviz/ballotviz/pkg/election"
	"github.com/ballotviz/ballotviz/pkg/errors"
)

func TestLoadMapsPartyCodes(t *testing.T) {
	in := "候選人姓名,推薦政黨,得票數\n" +
		"王小明,民主進步黨,18000\n" +
		"李大同,中國國民黨,22000\n" +
		"陳阿花,無,9000\n" +
		"林志偉,時代力量,7500\n"

	records, err := Load(strings.NewReader(in))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	want := []election.SeatRecord{
		{PartyID: "DPP", CandidateName: "王小明", VoteCount: 18000},
		{PartyID: "KMT", CandidateName: "李大同", VoteCount: 22000},
		{PartyID: "IND", CandidateName: "陳阿花", VoteCount: 9000},
		{PartyID: "IND", CandidateName: "林志偉", VoteCount: 7500},
	}
	if len(records) != len(want) {
		t.Fatalf("got %d records, want %d", len(records), len(want))
	}
	for i, w := range want {
		if records[i] != w {
			t.Errorf("record %d = %+v, want %+v", i, records[i], w)
		}
	}
}

func TestLoadWithoutPartyColumn(t *testing.T) {
	in := "候選人姓名,得票數\n王小明,18000\n"

	records, err := Load(strings.NewReader(in))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if records[0].PartyID != election.PartyIND {
		t.Errorf("party = %q, want IND when no party column exists", records[0].PartyID)
	}
}

func TestLoadStripsBOMAndThousandsSeparators(t *testing.T) {
	in := "\uFEFF候選人姓名,政黨,得票數\n王小明,民主進步黨,\"18,000\"\n"

	records, err := Load(strings.NewReader(in))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if records[0].VoteCount != 18000 {
		t.Errorf("votes = %d, want 18000", records[0].VoteCount)
	}
	if records[0].PartyID != "DPP" {
		t.Errorf("party = %q, want DPP", records[0].PartyID)
	}
}

func TestLoadInvalidInput(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"empty input", ""},
		{"missing vote column", "候選人姓名,政黨\n王小明,無\n"},
		{"missing name column", "政黨,得票數\n無,100\n"},
		{"non-integer votes", "候選人姓名,得票數\n王小明,many\n"},
		{"negative votes", "候選人姓名,得票數\n王小明,-5\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(strings.NewReader(tt.in))
			if !errors.Is(err, errors.ErrCodeInvalidFormat) {
				t.Errorf("error = %v, want INVALID_FORMAT", err)
			}
		})
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "results.csv")
	content := "候選人姓名,得票數\n王小明,18000\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	records, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if len(records) != 1 || records[0].VoteCount != 18000 {
		t.Errorf("unexpected records: %+v", records)
	}

	_, err = LoadFile(filepath.Join(dir, "missing.csv"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("error = %v, want FILE_NOT_FOUND", err)
	}
}
