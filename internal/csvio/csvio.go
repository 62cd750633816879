// Package csvio reads the raw pitch data and combinations files and writes the
// split report.
package csvio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/pable/splitstats/internal/model"
)

var (
	ErrMissingInputFile = errors.New("missing input file")
	ErrMalformedRow     = errors.New("malformed row")
)

// RecordColumns are the raw data columns the pipeline needs. Others are ignored.
var RecordColumns = []string{
	"PitcherSide", "HitterSide",
	"HitterId", "HitterTeamId", "PitcherId", "PitcherTeamId",
	"PA", "AB", "H", "TB", "BB", "HBP", "SF",
}

// ReportHeader is the header line of the output file.
var ReportHeader = []string{"SubjectId", "Stat", "Split", "Subject", "Value"}

func openInput(path string) (*os.File, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrMissingInputFile, path)
	}
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	return f, nil
}

func newReader(r io.Reader) *csv.Reader {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	return cr
}

// headerIndex maps each wanted column to its position, failing on the first missing one.
func headerIndex(header []string, want []string) (map[string]int, error) {
	idx := make(map[string]int, len(header))
	for i, h := range header {
		idx[strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))] = i
	}
	for _, w := range want {
		if _, ok := idx[w]; !ok {
			return nil, fmt.Errorf("%w: header is missing column %q", ErrMalformedRow, w)
		}
	}
	return idx, nil
}

// ReadRecordsFile reads the raw pitch data file at path.
func ReadRecordsFile(path string) ([]model.Record, error) {
	f, err := openInput(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	records, err := ReadRecords(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return records, nil
}

// ReadRecords parses a headed CSV of plate appearances. Any row missing a
// required field or carrying an invalid value fails the whole read.
func ReadRecords(r io.Reader) ([]model.Record, error) {
	cr := newReader(r)
	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("%w: empty file", ErrMalformedRow)
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	idx, err := headerIndex(header, RecordColumns)
	if err != nil {
		return nil, err
	}

	var out []model.Record
	for line := 2; ; line++ {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		rec, err := parseRecord(row, idx)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		out = append(out, rec)
	}
	return out, nil
}

func parseRecord(row []string, idx map[string]int) (model.Record, error) {
	field := func(name string) (string, error) {
		i := idx[name]
		if i >= len(row) || strings.TrimSpace(row[i]) == "" {
			return "", fmt.Errorf("%w: missing %s", ErrMalformedRow, name)
		}
		return strings.TrimSpace(row[i]), nil
	}
	side := func(name string) (model.Side, error) {
		v, err := field(name)
		if err != nil {
			return "", err
		}
		s, err := model.ParseSide(v)
		if err != nil {
			return "", fmt.Errorf("%w: %s: %v", ErrMalformedRow, name, err)
		}
		return s, nil
	}
	integer := func(name string) (int64, error) {
		v, err := field(name)
		if err != nil {
			return 0, err
		}
		n, err := parseInt(v)
		if err != nil || n < 0 {
			return 0, fmt.Errorf("%w: %s=%q is not a non-negative integer", ErrMalformedRow, name, v)
		}
		return n, nil
	}

	var (
		r    model.Record
		err  error
		ints = []struct {
			name string
			dst  *int64
		}{
			{"HitterId", &r.HitterID},
			{"HitterTeamId", &r.HitterTeamID},
			{"PitcherId", &r.PitcherID},
			{"PitcherTeamId", &r.PitcherTeamID},
		}
		counts = []struct {
			name string
			dst  *int
		}{
			{"PA", &r.PA}, {"AB", &r.AB}, {"H", &r.H}, {"TB", &r.TB},
			{"BB", &r.BB}, {"HBP", &r.HBP}, {"SF", &r.SF},
		}
	)
	if r.PitcherSide, err = side("PitcherSide"); err != nil {
		return r, err
	}
	if r.HitterSide, err = side("HitterSide"); err != nil {
		return r, err
	}
	for _, f := range ints {
		if *f.dst, err = integer(f.name); err != nil {
			return r, err
		}
	}
	for _, f := range counts {
		n, err := integer(f.name)
		if err != nil {
			return r, err
		}
		*f.dst = int(n)
	}
	return r, nil
}

// parseInt accepts plain integers and integral floats such as "12.0".
func parseInt(s string) (int64, error) {
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if f != math.Trunc(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%q is not integral", s)
	}
	return int64(f), nil
}
