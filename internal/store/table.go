package store

import (
	"sort"

	"github.com/utakatalp/football-statistics/internal/league"
)

// Table is the in-memory team statistics store. It has a single owner and is
// not safe for concurrent use.
type Table struct {
	teams map[string]*league.TeamRecord
}

func NewTable() *Table {
	return &Table{teams: make(map[string]*league.TeamRecord)}
}

// Entry returns the mutable record for name, inserting a zero record if absent.
func (t *Table) Entry(name string) *league.TeamRecord {
	rec, ok := t.teams[name]
	if !ok {
		rec = &league.TeamRecord{}
		t.teams[name] = rec
	}

	return rec
}

// Get returns a copy of the record for name.
func (t *Table) Get(name string) (league.TeamRecord, bool) {
	rec, ok := t.teams[name]
	if !ok {
		return league.TeamRecord{}, false
	}

	return *rec, true
}

// ApplyResult records a finished match for both teams and returns the updated records.
func (t *Table) ApplyResult(r league.Result) (league.TeamRecord, league.TeamRecord) {
	home := t.Entry(r.HomeTeam)
	away := t.Entry(r.AwayTeam)
	league.Apply(home, away, r)

	return *home, *away
}

func (t *Table) Len() int {
	return len(t.teams)
}

// Names lists the known teams in name order.
func (t *Table) Names() []string {
	names := make([]string, 0, len(t.teams))
	for name := range t.teams {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}
