// Package processor routes decoded messages to the team store and the report views.
//
// A Processor handles one message at a time, in source order, and is not safe
// for concurrent use. Callers that accept messages from several goroutines must
// serialise access themselves.
package processor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/utakatalp/football-statistics/internal/errs"
	"github.com/utakatalp/football-statistics/internal/league"
	"github.com/utakatalp/football-statistics/internal/message"
	"github.com/utakatalp/football-statistics/internal/report"
	"github.com/utakatalp/football-statistics/internal/store"
)

// Source supplies raw messages in order. Read stops at the first error returned by handle.
type Source interface {
	Read(ctx context.Context, handle func(raw string) error) error
}

// Mirror receives both team records after every applied result.
type Mirror interface {
	UpdateTeams(ctx context.Context, r league.Result, home, away league.TeamRecord) error
}

type Option func(*Processor)

func WithMirror(mirror Mirror) Option {
	return func(p *Processor) {
		p.mirror = mirror
	}
}

type Processor struct {
	table   *store.Table
	reports report.Generator
	mirror  Mirror
	out     io.Writer
	stats   Statistics
}

// New creates a processor that writes report lines to out.
func New(table *store.Table, out io.Writer, opts ...Option) *Processor {
	p := &Processor{
		table:   table,
		reports: report.NewGenerator(table),
		out:     out,
		stats:   Statistics{startTime: time.Now()},
	}
	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Process decodes and dispatches one message, returning the report lines it produced.
//
// The returned error wraps errs.ErrMalformedMessage when the message was rejected
// without touching the store. Lookup misses on statistics requests and mirror
// failures are returned alongside the lines that could still be produced.
func (p *Processor) Process(ctx context.Context, raw string) ([]string, error) {
	p.stats.Messages++

	msg, errDecode := message.Decode(raw)
	if errDecode != nil {
		p.stats.Rejected++

		return nil, errDecode
	}

	switch msg.Kind {
	case message.KindResult:
		p.stats.Results++

		return p.applyResult(ctx, msg.Result)
	case message.KindGetStatistics:
		p.stats.Queries++

		return p.statistics(msg.Teams)
	default:
		p.stats.Ignored++
		slog.Debug("Ignoring message", slog.String("type", msg.Type))

		return nil, nil
	}
}

func (p *Processor) applyResult(ctx context.Context, r league.Result) ([]string, error) {
	home, away := p.table.ApplyResult(r)
	lines := []string{
		report.Simplified(r.HomeTeam, home),
		report.Simplified(r.AwayTeam, away),
	}

	if p.mirror != nil {
		if errMirror := p.mirror.UpdateTeams(ctx, r, home, away); errMirror != nil {
			return lines, fmt.Errorf("mirroring %s: %w", r.ScoreLine(), errMirror)
		}
	}

	return lines, nil
}

func (p *Processor) statistics(teams []string) ([]string, error) {
	var (
		lines   = make([]string, 0, len(teams))
		missing []error
	)

	for _, name := range teams {
		line, errLine := p.reports.Detailed(name)
		if errLine != nil {
			missing = append(missing, errLine)

			continue
		}
		lines = append(lines, line)
	}

	return lines, errors.Join(missing...)
}

// Handle processes one message and writes its report lines. Message level
// problems are logged and swallowed; only a failing output writer is returned.
func (p *Processor) Handle(ctx context.Context, raw string) error {
	lines, errProcess := p.Process(ctx, raw)
	for _, line := range lines {
		if _, errWrite := fmt.Fprintln(p.out, line); errWrite != nil {
			return fmt.Errorf("writing report: %w", errWrite)
		}
	}

	if errProcess != nil {
		LogError(errProcess)
	}

	return nil
}

// Run consumes the source until it is exhausted, the context is cancelled or
// output can no longer be written.
func (p *Processor) Run(ctx context.Context, src Source) error {
	errRead := src.Read(ctx, func(raw string) error {
		return p.Handle(ctx, raw)
	})

	p.stats.report()

	return errRead
}

// Reports exposes the read only views over the processor's store.
func (p *Processor) Reports() report.Generator {
	return p.reports
}

func (p *Processor) Statistics() Statistics {
	return p.stats
}

// LogError reports a message level failure. Rejected messages and unknown teams
// are logged at error level so that no configured level hides them.
func LogError(err error) {
	switch {
	case errors.Is(err, errs.ErrMalformedMessage):
		slog.Error("Skipping malformed message", slog.String("error", err.Error()))
	case errors.Is(err, errs.ErrDatabase):
		slog.Error("Failed to mirror result", slog.String("error", err.Error()))
	case errors.Is(err, errs.ErrUnknownTeam):
		slog.Error("No statistics for team", slog.String("error", err.Error()))
	default:
		slog.Error("Failed to process message", slog.String("error", err.Error()))
	}
}
