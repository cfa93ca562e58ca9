// Package source supplies raw messages to the processor.
package source

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/utakatalp/football-statistics/internal/errs"
)

// maxLineSize bounds a single message line. Longer lines are drained and
// skipped as malformed.
const maxLineSize = 1024 * 1024

// Lines yields every non blank line of a reader, trimmed, in order.
type Lines struct {
	r       io.Reader
	maxSize int
}

func NewLines(r io.Reader) *Lines {
	return &Lines{r: r, maxSize: maxLineSize}
}

func (l *Lines) Read(ctx context.Context, handle func(raw string) error) error {
	var (
		reader    = bufio.NewReader(l.r)
		buf       []byte
		number    int
		oversized bool
	)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		chunk, more, errRead := reader.ReadLine()
		if errRead != nil {
			if errors.Is(errRead, io.EOF) {
				return nil
			}

			return fmt.Errorf("reading lines: %w", errRead)
		}

		if !oversized {
			if len(buf)+len(chunk) > l.maxSize {
				oversized = true
				buf = buf[:0]
			} else {
				buf = append(buf, chunk...)
			}
		}

		if more {
			continue
		}

		number++

		if oversized {
			oversized = false
			err := fmt.Errorf("%w: line %d exceeds %d bytes", errs.ErrMalformedMessage, number, l.maxSize)
			slog.Error("Skipping malformed message", slog.String("error", err.Error()))

			continue
		}

		line := strings.TrimSpace(string(buf))
		buf = buf[:0]

		if line == "" {
			continue
		}

		if err := handle(line); err != nil {
			return err
		}
	}
}
