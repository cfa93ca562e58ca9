package league

// FormSize is how many recent outcomes a team's form keeps.
const FormSize = 3

// Outcome is the result of a single match from one team's point of view.
type Outcome byte

const (
	Win  Outcome = 'W'
	Draw Outcome = 'D'
	Loss Outcome = 'L'
)

// Result is a finished fixture between two teams.
type Result struct {
	HomeTeam  string
	AwayTeam  string
	HomeScore int
	AwayScore int
}

// TeamRecord holds the running statistics for one team.
type TeamRecord struct {
	Played        int
	Points        int
	GoalsScored   int
	GoalsConceded int
	Form          Form
}

// Form is a fixed size window over the most recent outcomes, oldest first.
type Form struct {
	slots [FormSize]Outcome
	start int
	size  int
}
