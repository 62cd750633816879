package storage

import (
	"database/sql"
	"fmt"

	"github.com/pable/splitstats/internal/model"
)

// Column names are interpolated into SQL, so only these are accepted.
var (
	sideColumns = map[model.Column]string{
		model.ColumnPitcherSide: "PitcherSide",
		model.ColumnHitterSide:  "HitterSide",
	}
	subjectColumns = map[model.Subject]string{
		model.SubjectHitter:      "HitterId",
		model.SubjectHitterTeam:  "HitterTeamId",
		model.SubjectPitcher:     "PitcherId",
		model.SubjectPitcherTeam: "PitcherTeamId",
	}
)

// InsertRecords bulk-inserts plate-appearance rows in a transaction.
func (db *DB) InsertRecords(records []model.Record) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT INTO plate_appearances(
			PitcherSide, HitterSide,
			HitterId, HitterTeamId, PitcherId, PitcherTeamId,
			PA, AB, H, TB, BB, HBP, SF
		) VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, r := range records {
		_, err = stmt.Exec(
			string(r.PitcherSide), string(r.HitterSide),
			r.HitterID, r.HitterTeamID, r.PitcherID, r.PitcherTeamID,
			r.PA, r.AB, r.H, r.TB, r.BB, r.HBP, r.SF,
		)
		if err != nil {
			return fmt.Errorf("insert record %d: %w", i+1, err)
		}
	}
	return tx.Commit()
}

// CountRecords returns the number of stored plate appearances.
func (db *DB) CountRecords() (int, error) {
	var n int
	err := db.conn.QueryRow("SELECT COUNT(1) FROM plate_appearances").Scan(&n)
	return n, err
}

// SplitTotals filters, groups and prunes the stored records for crit in SQL,
// returning totals ordered by subject id.
func (db *DB) SplitTotals(crit model.Criteria, minPA int) ([]model.Totals, error) {
	sideCol, ok := sideColumns[crit.FilterColumn]
	if !ok {
		return nil, fmt.Errorf("unknown filter column %q", crit.FilterColumn)
	}
	subjCol, ok := subjectColumns[crit.SubjectColumn]
	if !ok {
		return nil, fmt.Errorf("%w: %q", model.ErrUnknownSubject, crit.SubjectColumn)
	}

	query := fmt.Sprintf(`
		SELECT %[2]s, SUM(PA), SUM(AB), SUM(H), SUM(TB), SUM(BB), SUM(HBP), SUM(SF)
		FROM plate_appearances
		WHERE %[1]s = ?
		GROUP BY %[2]s
		HAVING SUM(PA) >= ?
		ORDER BY %[2]s`, sideCol, subjCol)

	rows, err := db.conn.Query(query, string(crit.Side), minPA)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Totals
	for rows.Next() {
		var t model.Totals
		if err := rows.Scan(&t.SubjectID, &t.PA, &t.AB, &t.H, &t.TB, &t.BB, &t.HBP, &t.SF); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

// QueryRaw runs an arbitrary query and returns column names and stringified rows.
func (db *DB) QueryRaw(query string) ([]string, [][]string, error) {
	rows, err := db.conn.Query(query)
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, nil, err
	}

	var out [][]string
	for rows.Next() {
		vals := make([]sql.NullString, len(cols))
		ptrs := make([]any, len(cols))
		for i := range vals {
			ptrs[i] = &vals[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, nil, err
		}
		row := make([]string, len(cols))
		for i, v := range vals {
			if v.Valid {
				row[i] = v.String
			} else {
				row[i] = "NULL"
			}
		}
		out = append(out, row)
	}
	return cols, out, rows.Err()
}
