package processor

import (
	"log/slog"
	"time"
)

// Statistics counts what the processor has seen since it was created.
type Statistics struct {
	Messages  int
	Results   int
	Queries   int
	Ignored   int
	Rejected  int
	startTime time.Time
}

func (stat *Statistics) report() {
	slog.Info("Processed messages",
		slog.Int("messages", stat.Messages),
		slog.Int("results", stat.Results),
		slog.Int("queries", stat.Queries),
		slog.Int("ignored", stat.Ignored),
		slog.Int("rejected", stat.Rejected),
		slog.Duration("elapsed", time.Since(stat.startTime)))
}
