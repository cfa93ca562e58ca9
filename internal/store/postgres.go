package store

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	"github.com/utakatalp/football-statistics/internal/errs"
	"github.com/utakatalp/football-statistics/internal/league"
)

// Postgres mirrors the in-memory table into a teams table for the lifetime of one run.
type Postgres struct {
	DB *sql.DB
}

// TeamRow is one mirrored team as stored in Postgres.
type TeamRow struct {
	Name          string
	Played        int
	Points        int
	GoalsScored   int
	GoalsConceded int
	Form          string
}

// NewPostgres opens a Postgres connection using the given connection string.
func NewPostgres(ctx context.Context, dsn string) (*Postgres, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("%w: opening database: %w", errs.ErrDatabase, err)
	}
	// verify early
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()

		return nil, fmt.Errorf("%w: pinging database: %w", errs.ErrDatabase, err)
	}

	return &Postgres{DB: db}, nil
}

func (s *Postgres) Close() error {
	return s.DB.Close()
}

// Migrate creates the teams table if it does not exist.
func (s *Postgres) Migrate(ctx context.Context) error {
	const q = `
	CREATE TABLE IF NOT EXISTS teams (
        name           TEXT PRIMARY KEY,
        played         INT  NOT NULL DEFAULT 0,
        points         INT  NOT NULL DEFAULT 0,
        goals_scored   INT  NOT NULL DEFAULT 0,
        goals_conceded INT  NOT NULL DEFAULT 0,
        form           TEXT NOT NULL DEFAULT ''
    );`
	if _, err := s.DB.ExecContext(ctx, q); err != nil {
		return fmt.Errorf("%w: migrating: %w", errs.ErrDatabase, err)
	}

	return nil
}

// DeleteAllTeams clears rows left over from a previous run.
func (s *Postgres) DeleteAllTeams(ctx context.Context) error {
	if _, err := s.DB.ExecContext(ctx, `DELETE FROM teams;`); err != nil {
		return fmt.Errorf("%w: deleting all teams: %w", errs.ErrDatabase, err)
	}

	return nil
}

// UpdateTeams writes both records touched by a result inside one transaction.
// Rows carry absolute values, so replaying the same update is harmless.
func (s *Postgres) UpdateTeams(ctx context.Context, r league.Result, home, away league.TeamRecord) error {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: begin UpdateTeams tx: %w", errs.ErrDatabase, err)
	}
	defer func() { _ = tx.Rollback() }()

	const q = `
      INSERT INTO teams (name, played, points, goals_scored, goals_conceded, form)
      VALUES ($1, $2, $3, $4, $5, $6)
      ON CONFLICT (name) DO UPDATE SET
        played         = EXCLUDED.played,
        points         = EXCLUDED.points,
        goals_scored   = EXCLUDED.goals_scored,
        goals_conceded = EXCLUDED.goals_conceded,
        form           = EXCLUDED.form
    `
	if _, err := tx.ExecContext(ctx, q,
		r.HomeTeam, home.Played, home.Points,
		home.GoalsScored, home.GoalsConceded, home.Form.String(),
	); err != nil {
		return fmt.Errorf("%w: updating home team %s: %w", errs.ErrDatabase, r.HomeTeam, err)
	}

	if _, err := tx.ExecContext(ctx, q,
		r.AwayTeam, away.Played, away.Points,
		away.GoalsScored, away.GoalsConceded, away.Form.String(),
	); err != nil {
		return fmt.Errorf("%w: updating away team %s: %w", errs.ErrDatabase, r.AwayTeam, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: commit UpdateTeams tx: %w", errs.ErrDatabase, err)
	}

	return nil
}

func (s *Postgres) GetTeams(ctx context.Context) ([]TeamRow, error) {
	const q = `
        SELECT name, played, points, goals_scored, goals_conceded, form
        FROM teams
        ORDER BY name
    `
	rows, err := s.DB.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("%w: querying teams: %w", errs.ErrDatabase, err)
	}
	defer rows.Close()

	var teams []TeamRow
	for rows.Next() {
		var t TeamRow
		if err := rows.Scan(
			&t.Name,
			&t.Played,
			&t.Points,
			&t.GoalsScored,
			&t.GoalsConceded,
			&t.Form,
		); err != nil {
			return nil, fmt.Errorf("%w: scanning team row: %w", errs.ErrDatabase, err)
		}
		teams = append(teams, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating teams rows: %w", errs.ErrDatabase, err)
	}

	return teams, nil
}
