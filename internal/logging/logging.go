// Package logging builds the process slog logger.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"go.uber.org/multierr"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	maxLogSizeMB  = 6
	maxLogBackups = 3
)

// Options selects the log destination and level.
type Options struct {
	Level string
	// Path enables a size-rotated log file.
	Path string
	// Tee keeps writing to the console as well as Path.
	Tee bool
	// Stdio sends console output to stderr so stdout stays free for
	// JSON-RPC framing.
	Stdio bool
}

// New returns a text logger and a closer for any file it opened.
func New(opts Options) (*slog.Logger, io.Closer) {
	var console io.Writer = os.Stdout
	if opts.Stdio {
		console = os.Stderr
	}

	out := console
	var closer io.Closer = nopCloser{}
	if opts.Path != "" {
		file := &lumberjack.Logger{
			Filename:   opts.Path,
			MaxSize:    maxLogSizeMB,
			MaxBackups: maxLogBackups,
		}
		closer = file
		out = file
		if opts.Tee {
			out = NewCombinedWriter(console, file)
		}
	}

	return slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{
		Level: ParseLevel(opts.Level),
	})), closer
}

// ParseLevel maps a level name to a slog level, defaulting to info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// CombinedWriter writes to every writer, collecting their errors.
type CombinedWriter struct {
	writers []io.Writer
}

func NewCombinedWriter(writers ...io.Writer) *CombinedWriter {
	return &CombinedWriter{writers: writers}
}

// Write reports len(p) when at least one writer took the whole payload.
func (cw *CombinedWriter) Write(p []byte) (int, error) {
	var err error
	written := 0
	for _, w := range cw.writers {
		n, werr := w.Write(p)
		if werr != nil {
			err = multierr.Append(err, werr)
			continue
		}
		if n > written {
			written = n
		}
	}
	return written, err
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
