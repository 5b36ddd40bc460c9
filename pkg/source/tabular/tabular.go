// Package tabular loads per-candidate election results from CSV files.
//
// Expected columns (header row required): 候選人姓名 (candidate name),
// 得票數 (vote count), and optionally 政黨 or 推薦政黨 (party name).
// Party names are folded to short codes through election.PartyCode, so
// rows with no party column, an empty field, or 無 all land on IND.
package tabular

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/ballotviz/ballotviz/pkg/election"
	"github.com/ballotviz/ballotviz/pkg/errors"
)

const (
	colCandidate = "候選人姓名"
	colVotes     = "得票數"
)

// party column header varies between result file generations.
var partyCols = []string{"推薦政黨", "政黨"}

// Load parses CSV rows into seat records, preserving row order.
// A missing candidate or vote column, a non-integer vote field, or a
// malformed row fails with INVALID_FORMAT.
func Load(r io.Reader) ([]election.SeatRecord, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, errors.New(errors.ErrCodeInvalidFormat, "empty CSV input")
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "read CSV header")
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		// Result files exported from Excel carry a UTF-8 BOM.
		cols[strings.TrimSpace(strings.TrimPrefix(name, "\uFEFF"))] = i
	}
	nameIdx, ok := cols[colCandidate]
	if !ok {
		return nil, errors.New(errors.ErrCodeInvalidFormat, "missing column %q", colCandidate)
	}
	votesIdx, ok := cols[colVotes]
	if !ok {
		return nil, errors.New(errors.ErrCodeInvalidFormat, "missing column %q", colVotes)
	}
	partyIdx := -1
	for _, c := range partyCols {
		if i, ok := cols[c]; ok {
			partyIdx = i
			break
		}
	}

	var records []election.SeatRecord
	for line := 2; ; line++ {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "read CSV row %d", line)
		}

		votes, err := strconv.Atoi(strings.ReplaceAll(strings.TrimSpace(row[votesIdx]), ",", ""))
		if err != nil {
			return nil, errors.New(errors.ErrCodeInvalidFormat,
				"row %d: vote count %q is not an integer", line, row[votesIdx])
		}
		if votes < 0 {
			return nil, errors.New(errors.ErrCodeInvalidFormat,
				"row %d: negative vote count %d", line, votes)
		}

		party := ""
		if partyIdx >= 0 && partyIdx < len(row) {
			party = strings.TrimSpace(row[partyIdx])
		}

		records = append(records, election.SeatRecord{
			PartyID:       election.PartyCode(party),
			CandidateName: strings.TrimSpace(row[nameIdx]),
			VoteCount:     votes,
		})
	}
	return records, nil
}

// LoadFile loads seat records from a CSV file on disk.
func LoadFile(path string) ([]election.SeatRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "dataset %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "open %s", path)
	}
	defer f.Close()
	return Load(f)
}
