package log

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/dotse/slug"
	slogmulti "github.com/samber/slog-multi"
)

type Config struct {
	Level Level `mapstructure:"level"`
	// If set to a non-empty path, logs will also be written to the log file.
	File string `mapstructure:"file"`
}

type Level string

const (
	Debug Level = "debug"
	Info  Level = "info"
	Warn  Level = "warn"
	Error Level = "error"
)

// ToSlogLevel maps our levels to the equivalent slog level.
func ToSlogLevel(level Level) slog.Level {
	switch level {
	case Debug:
		return slog.LevelDebug
	case Info:
		return slog.LevelInfo
	case Warn:
		return slog.LevelWarn
	default:
		return slog.LevelError
	}
}

// NewLogger builds a logger writing to w, and additionally to every extra writer.
func NewLogger(level Level, w io.Writer, extra ...io.Writer) *slog.Logger {
	opts := slug.HandlerOptions{
		HandlerOptions: slog.HandlerOptions{
			Level: ToSlogLevel(level),
		},
	}

	handlers := []slog.Handler{slug.NewHandler(opts, w)}
	for _, e := range extra {
		handlers = append(handlers, slug.NewHandler(opts, e))
	}

	return slog.New(slogmulti.Fanout(handlers...))
}

// MustCreateLogger creates and configures the default global log handler. Diagnostics
// go to stderr so they never mix with the report lines on stdout. Depending on
// configuration a local log file is written as well.
//
// Returns a cleanup function which should be called on program shutdown.
//
// Panics on failure to open log file for writing.
func MustCreateLogger(conf Config) func() {
	var (
		closer = func() {}
		extra  []io.Writer
	)

	if conf.File != "" {
		logFile, errLogFile := os.Create(conf.File)
		if errLogFile != nil {
			panic(fmt.Sprintf("Failed to open logfile: %v", errLogFile))
		}

		closer = func() {
			if errClose := logFile.Close(); errClose != nil {
				panic(fmt.Sprintf("Failed to close log file: %v", errClose))
			}
		}

		extra = append(extra, logFile)
	}

	slog.SetDefault(NewLogger(conf.Level, os.Stderr, extra...))

	return closer
}

func Closer(closer io.Closer) {
	if errClose := closer.Close(); errClose != nil {
		slog.Error("Failed to close", slog.String("error", errClose.Error()))
	}
}
