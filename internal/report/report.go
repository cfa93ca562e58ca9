// Package report renders team records as the space separated lines written to the output stream.
//
// The simplified view is printed for both teams after every result:
//
//	<team> <played> <points> <scored> <conceded>
//
// The detailed view answers statistics requests:
//
//	<team> <form> <average goals> <played> <points> <scored> <conceded>
package report

import (
	"fmt"

	"github.com/utakatalp/football-statistics/internal/errs"
	"github.com/utakatalp/football-statistics/internal/league"
)

// Lookup is the read side of the team store.
type Lookup interface {
	Get(name string) (league.TeamRecord, bool)
}

func Simplified(name string, rec league.TeamRecord) string {
	return fmt.Sprintf("%s %d %d %d %d",
		name, rec.Played, rec.Points, rec.GoalsScored, rec.GoalsConceded)
}

func Detailed(name string, rec league.TeamRecord) string {
	return fmt.Sprintf("%s %s %s %d %d %d %d",
		name, rec.Form.String(), AverageGoals(rec),
		rec.Played, rec.Points, rec.GoalsScored, rec.GoalsConceded)
}

// AverageGoals is the goals per match in the team's games, rounded half up to
// two decimals. The rounding is done on integers so values such as 1.005 are
// not skewed by binary floating point.
func AverageGoals(rec league.TeamRecord) string {
	if rec.Played <= 0 {
		return "0.00"
	}

	// Whole part and remainder are taken per goal column before scaling, so large
	// goal counts cannot overflow.
	played := rec.Played
	whole := rec.GoalsScored/played + rec.GoalsConceded/played
	rest := rec.GoalsScored%played + rec.GoalsConceded%played
	if rest >= played {
		whole++
		rest -= played
	}

	hundredths := (200*rest + played) / (2 * played)
	if hundredths == 100 {
		whole++
		hundredths = 0
	}

	return fmt.Sprintf("%d.%02d", whole, hundredths)
}

// Generator formats views for teams held in a store.
type Generator struct {
	teams Lookup
}

func NewGenerator(teams Lookup) Generator {
	return Generator{teams: teams}
}

func (g Generator) Simplified(name string) (string, error) {
	rec, found := g.teams.Get(name)
	if !found {
		return "", fmt.Errorf("%w: %s", errs.ErrUnknownTeam, name)
	}

	return Simplified(name, rec), nil
}

func (g Generator) Detailed(name string) (string, error) {
	rec, found := g.teams.Get(name)
	if !found {
		return "", fmt.Errorf("%w: %s", errs.ErrUnknownTeam, name)
	}

	return Detailed(name, rec), nil
}
