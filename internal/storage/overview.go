package storage

// Overview summarizes the loaded plate appearances.
type Overview struct {
	Records      int
	TotalPA      int
	Hitters      int
	Pitchers     int
	HitterTeams  int
	PitcherTeams int
}

// Matchup is the PA volume for one pitcher-hand / hitter-hand pairing.
type Matchup struct {
	PitcherSide string
	HitterSide  string
	Records     int
	PA          int
}

// QualifiedCount is the number of subjects meeting the PA floor in one column.
type QualifiedCount struct {
	Subject   string
	Subjects  int
	Qualified int
}

// GetOverview returns record, PA and distinct-subject counts.
func (db *DB) GetOverview() (Overview, error) {
	var ov Overview
	err := db.conn.QueryRow(`
		SELECT COUNT(1), COALESCE(SUM(PA), 0),
		       COUNT(DISTINCT HitterId), COUNT(DISTINCT PitcherId),
		       COUNT(DISTINCT HitterTeamId), COUNT(DISTINCT PitcherTeamId)
		FROM plate_appearances`).Scan(
		&ov.Records, &ov.TotalPA,
		&ov.Hitters, &ov.Pitchers,
		&ov.HitterTeams, &ov.PitcherTeams,
	)
	return ov, err
}

// GetMatchups returns PA volume per handedness pairing.
func (db *DB) GetMatchups() ([]Matchup, error) {
	rows, err := db.conn.Query(`
		SELECT PitcherSide, HitterSide, COUNT(1), SUM(PA)
		FROM plate_appearances
		GROUP BY PitcherSide, HitterSide
		ORDER BY PitcherSide, HitterSide`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Matchup
	for rows.Next() {
		var m Matchup
		if err := rows.Scan(&m.PitcherSide, &m.HitterSide, &m.Records, &m.PA); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

// GetQualifiedCounts returns, for each subject column, how many distinct
// subjects there are and how many reach minPA over all their plate appearances.
func (db *DB) GetQualifiedCounts(minPA int) ([]QualifiedCount, error) {
	var out []QualifiedCount
	for _, col := range []string{"HitterId", "HitterTeamId", "PitcherId", "PitcherTeamId"} {
		q := QualifiedCount{Subject: col}
		err := db.conn.QueryRow(`
			SELECT COUNT(1), COALESCE(SUM(CASE WHEN pa >= ? THEN 1 ELSE 0 END), 0)
			FROM (SELECT SUM(PA) AS pa FROM plate_appearances GROUP BY `+col+`)`, minPA).Scan(&q.Subjects, &q.Qualified)
		if err != nil {
			return nil, err
		}
		out = append(out, q)
	}
	return out, nil
}
