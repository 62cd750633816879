package csvio

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/pable/splitstats/internal/model"
)

// FormatValue renders v in its shortest form with at least one fractional
// digit: 0.25, 0.4, 1.0.
func FormatValue(v decimal.Decimal) string {
	s := v.String()
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// WriteReport writes the header and rows as CSV. Rows are written as given;
// sorting and rounding belong to the pipeline.
func WriteReport(w io.Writer, rows []model.OutputRow) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(ReportHeader); err != nil {
		return err
	}
	for _, r := range rows {
		err := cw.Write([]string{
			strconv.FormatInt(r.SubjectID, 10),
			string(r.Stat),
			string(r.Split),
			string(r.Subject),
			FormatValue(r.Value),
		})
		if err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteReportFile writes the report to path in a single pass, creating the
// parent directory if needed.
func WriteReportFile(path string, rows []model.OutputRow) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	if err := WriteReport(f, rows); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}

// ReadReportFile reads a report previously written by WriteReportFile.
func ReadReportFile(path string) ([]model.OutputRow, error) {
	f, err := openInput(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	rows, err := ReadReport(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return rows, nil
}

// ReadReport parses a report CSV.
func ReadReport(r io.Reader) ([]model.OutputRow, error) {
	cr := newReader(r)
	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("%w: empty file", ErrMalformedRow)
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	idx, err := headerIndex(header, ReportHeader)
	if err != nil {
		return nil, err
	}

	var out []model.OutputRow
	for line := 2; ; line++ {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		if len(row) < len(header) {
			return nil, fmt.Errorf("line %d: %w: expected %d fields, got %d", line, ErrMalformedRow, len(header), len(row))
		}

		var o model.OutputRow
		if o.SubjectID, err = strconv.ParseInt(strings.TrimSpace(row[idx["SubjectId"]]), 10, 64); err != nil {
			return nil, fmt.Errorf("line %d: %w: SubjectId: %v", line, ErrMalformedRow, err)
		}
		if o.Stat, err = model.ParseStat(row[idx["Stat"]]); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		if o.Split, err = model.ParseSplit(row[idx["Split"]]); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		if o.Subject, err = model.ParseSubject(row[idx["Subject"]]); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		if o.Value, err = decimal.NewFromString(strings.TrimSpace(row[idx["Value"]])); err != nil {
			return nil, fmt.Errorf("line %d: %w: Value: %v", line, ErrMalformedRow, err)
		}
		out = append(out, o)
	}
	return out, nil
}
