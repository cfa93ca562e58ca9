// internal/league/logic.go
package league

import (
	"fmt"
	"strings"
)

func (r Result) ScoreLine() string {
	return fmt.Sprintf("%s %d - %d %s",
		r.HomeTeam, r.HomeScore,
		r.AwayScore, r.AwayTeam,
	)
}

// OutcomeOf derives the outcome for a team that scored and conceded the given goals.
func OutcomeOf(scored, conceded int) Outcome {
	switch {
	case scored > conceded:
		return Win
	case scored < conceded:
		return Loss
	default:
		return Draw
	}
}

// Points awarded for the outcome.
func (o Outcome) Points() int {
	switch o {
	case Win:
		return 3
	case Draw:
		return 1
	default:
		return 0
	}
}

// Mirror returns the outcome the opponent got in the same match.
func (o Outcome) Mirror() Outcome {
	switch o {
	case Win:
		return Loss
	case Loss:
		return Win
	default:
		return Draw
	}
}

func (o Outcome) String() string {
	return string(rune(o))
}

// Push appends an outcome, evicting the oldest one once the window is full.
func (f *Form) Push(o Outcome) {
	if f.size < FormSize {
		f.slots[(f.start+f.size)%FormSize] = o
		f.size++
		return
	}
	f.slots[f.start] = o
	f.start = (f.start + 1) % FormSize
}

func (f Form) Len() int {
	return f.size
}

// Outcomes returns the window contents, oldest first.
func (f Form) Outcomes() []Outcome {
	out := make([]Outcome, 0, f.size)
	for i := 0; i < f.size; i++ {
		out = append(out, f.slots[(f.start+i)%FormSize])
	}
	return out
}

// String concatenates the outcome symbols, e.g. "WDL".
func (f Form) String() string {
	var b strings.Builder
	for _, o := range f.Outcomes() {
		b.WriteByte(byte(o))
	}
	return b.String()
}

// Record applies one match to the record and returns the outcome it produced.
func (t *TeamRecord) Record(scored, conceded int) Outcome {
	outcome := OutcomeOf(scored, conceded)

	t.Played++
	t.GoalsScored += scored
	t.GoalsConceded += conceded
	t.Points += outcome.Points()
	t.Form.Push(outcome)

	return outcome
}

// Apply updates the home and away records for a finished match.
func Apply(home, away *TeamRecord, r Result) {
	home.Record(r.HomeScore, r.AwayScore)
	away.Record(r.AwayScore, r.HomeScore)
}
