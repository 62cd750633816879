package model

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidSplit   = errors.New("invalid split")
	ErrUnknownStat    = errors.New("unknown stat")
	ErrUnknownSubject = errors.New("unknown subject")
	ErrInvalidSide    = errors.New("invalid side")
	// ErrSubjectMismatch is returned when a combination asks for a subject that
	// the split does not describe (e.g. a pitcher split vs RHP).
	ErrSubjectMismatch = errors.New("subject does not match split")
)

// Side is the hand a player bats or throws with.
type Side string

const (
	SideLeft  Side = "L"
	SideRight Side = "R"
)

// ParseSide accepts "L" or "R".
func ParseSide(s string) (Side, error) {
	switch Side(strings.TrimSpace(s)) {
	case SideLeft:
		return SideLeft, nil
	case SideRight:
		return SideRight, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidSide, s)
}

// Stat is one of the four derived batting statistics.
type Stat string

const (
	StatAVG Stat = "AVG"
	StatOBP Stat = "OBP"
	StatSLG Stat = "SLG"
	StatOPS Stat = "OPS"
)

// Stats lists every recognized stat.
var Stats = []Stat{StatAVG, StatOBP, StatSLG, StatOPS}

func ParseStat(s string) (Stat, error) {
	st := Stat(strings.TrimSpace(s))
	switch st {
	case StatAVG, StatOBP, StatSLG, StatOPS:
		return st, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownStat, s)
}

// Subject names the id column a report line is grouped by.
type Subject string

const (
	SubjectHitter      Subject = "HitterId"
	SubjectHitterTeam  Subject = "HitterTeamId"
	SubjectPitcher     Subject = "PitcherId"
	SubjectPitcherTeam Subject = "PitcherTeamId"
)

func ParseSubject(s string) (Subject, error) {
	sub := Subject(strings.TrimSpace(s))
	switch sub {
	case SubjectHitter, SubjectHitterTeam, SubjectPitcher, SubjectPitcherTeam:
		return sub, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownSubject, s)
}

// IsTeam reports whether the subject is a team rather than a player.
func (s Subject) IsTeam() bool {
	return strings.Contains(string(s), "Team")
}

// Split is a handedness matchup filter.
type Split string

const (
	SplitVsRHP Split = "vs RHP"
	SplitVsLHP Split = "vs LHP"
	SplitVsRHH Split = "vs RHH"
	SplitVsLHH Split = "vs LHH"
)

// Splits lists every recognized split.
var Splits = []Split{SplitVsRHP, SplitVsLHP, SplitVsRHH, SplitVsLHH}

func ParseSplit(s string) (Split, error) {
	sp := Split(strings.TrimSpace(s))
	switch sp {
	case SplitVsRHP, SplitVsLHP, SplitVsRHH, SplitVsLHH:
		return sp, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidSplit, s)
}

// Column is a side column a split filters on.
type Column string

const (
	ColumnPitcherSide Column = "PitcherSide"
	ColumnHitterSide  Column = "HitterSide"
)

// ---- Raw input ----

// Counts holds the summable counting stats of one or more plate appearances.
type Counts struct {
	PA, AB, H, TB, BB, HBP, SF int
}

// Add accumulates o into c.
func (c *Counts) Add(o Counts) {
	c.PA += o.PA
	c.AB += o.AB
	c.H += o.H
	c.TB += o.TB
	c.BB += o.BB
	c.HBP += o.HBP
	c.SF += o.SF
}

// Record is one row of the raw pitch data file.
type Record struct {
	PitcherSide   Side
	HitterSide    Side
	HitterID      int64
	HitterTeamID  int64
	PitcherID     int64
	PitcherTeamID int64
	Counts
}

// SideOf returns the value of the given side column.
func (r Record) SideOf(col Column) Side {
	if col == ColumnHitterSide {
		return r.HitterSide
	}
	return r.PitcherSide
}

// SubjectID returns the id stored in the given subject column.
func (r Record) SubjectID(s Subject) int64 {
	switch s {
	case SubjectHitterTeam:
		return r.HitterTeamID
	case SubjectPitcher:
		return r.PitcherID
	case SubjectPitcherTeam:
		return r.PitcherTeamID
	default:
		return r.HitterID
	}
}

// Combination is one requested report line.
type Combination struct {
	Stat    Stat
	Subject Subject
	Split   Split
}

func (c Combination) String() string {
	return fmt.Sprintf("%s,%s,%s", c.Stat, c.Subject, c.Split)
}

// ---- Derived ----

// Criteria tells the pipeline how to filter and group the raw records for a split.
type Criteria struct {
	FilterColumn  Column
	Side          Side
	SubjectColumn Subject
	IsTeam        bool
}

// Totals is one subject's summed counting stats.
type Totals struct {
	SubjectID int64
	Counts
}

// OutputRow is one line of the final report.
type OutputRow struct {
	SubjectID int64
	Stat      Stat
	Split     Split
	Subject   Subject
	Value     decimal.Decimal
}
