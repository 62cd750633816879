package csvio

import (
	"fmt"
	"io"
	"strings"

	"github.com/pable/splitstats/internal/model"
)

var combinationColumns = []string{"Stat", "Subject", "Split"}

// ReadCombinationsFile reads the combinations list at path.
func ReadCombinationsFile(path string) ([]model.Combination, error) {
	f, err := openInput(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	combos, err := ReadCombinations(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return combos, nil
}

// ReadCombinations parses Stat,Subject,Split rows. A header row naming those
// columns is optional; when present columns are located by name, otherwise by
// position. Unknown stats, subjects or splits fail the read.
func ReadCombinations(r io.Reader) ([]model.Combination, error) {
	rows, err := newReader(r).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read combinations: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	pos := []int{0, 1, 2}
	first := 1
	if isCombinationHeader(rows[0]) {
		idx, err := headerIndex(rows[0], combinationColumns)
		if err != nil {
			return nil, err
		}
		pos = []int{idx["Stat"], idx["Subject"], idx["Split"]}
		first = 2
		rows = rows[1:]
	}

	combos := make([]model.Combination, 0, len(rows))
	for i, row := range rows {
		line := first + i
		get := func(col int) (string, error) {
			p := pos[col]
			if p >= len(row) || strings.TrimSpace(row[p]) == "" {
				return "", fmt.Errorf("line %d: %w: missing %s", line, ErrMalformedRow, combinationColumns[col])
			}
			return row[p], nil
		}

		var (
			c   model.Combination
			raw string
		)
		if raw, err = get(0); err != nil {
			return nil, err
		}
		if c.Stat, err = model.ParseStat(raw); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		if raw, err = get(1); err != nil {
			return nil, err
		}
		if c.Subject, err = model.ParseSubject(raw); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		if raw, err = get(2); err != nil {
			return nil, err
		}
		if c.Split, err = model.ParseSplit(raw); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		combos = append(combos, c)
	}
	return combos, nil
}

// isCombinationHeader reports whether row names the Stat column rather than
// holding a stat value.
func isCombinationHeader(row []string) bool {
	for _, f := range row {
		if strings.TrimSpace(strings.TrimPrefix(f, "\ufeff")) == "Stat" {
			return true
		}
	}
	return false
}
