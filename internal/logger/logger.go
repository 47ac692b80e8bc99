package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Options describes logger configuration supplied at creation time.
type Options struct {
	Level         string
	HumanReadable bool
	Writer        io.Writer
}

// Logger wraps zerolog. Every method accepts trailing key/value pairs,
// e.g. log.Debug("layout profile recomputed", "breakpoint", "tablet").
// A nil *Logger discards everything.
type Logger struct {
	base zerolog.Logger
}

// New creates a Logger writing to opts.Writer, or stderr so stdout stays
// free for command output.
func New(opts Options) (*Logger, error) {
	writer := opts.Writer
	if writer == nil {
		writer = os.Stderr
	}

	level := zerolog.InfoLevel
	if opts.Level != "" {
		parsed, err := parseLevel(opts.Level)
		if err != nil {
			return nil, err
		}
		level = parsed
	}

	output := writer
	if opts.HumanReadable {
		output = zerolog.ConsoleWriter{Out: writer, TimeFormat: time.RFC3339}
	}

	return &Logger{base: zerolog.New(output).Level(level).With().Timestamp().Logger()}, nil
}

// Nop returns a logger that discards every entry.
func Nop() *Logger {
	return &Logger{base: zerolog.Nop()}
}

func parseLevel(level string) (zerolog.Level, error) {
	return zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
}

// WithFields returns a derived logger that always writes the supplied fields.
func (l *Logger) WithFields(fields map[string]any) *Logger {
	if l == nil {
		return nil
	}
	return &Logger{base: l.base.With().Fields(fields).Logger()}
}

// With is WithFields for key/value pairs.
func (l *Logger) With(kv ...any) *Logger {
	if l == nil {
		return nil
	}
	return &Logger{base: l.base.With().Fields(kv).Logger()}
}

// SetLevel changes the minimum level in place; --verbose uses it after startup.
func (l *Logger) SetLevel(level string) error {
	if l == nil {
		return nil
	}
	parsed, err := parseLevel(level)
	if err != nil {
		return err
	}
	l.base = l.base.Level(parsed)
	return nil
}

func (l *Logger) Debug(msg string, kv ...any) {
	if l == nil {
		return
	}
	write(l.base.Debug(), nil, msg, kv)
}

func (l *Logger) Info(msg string, kv ...any) {
	if l == nil {
		return
	}
	write(l.base.Info(), nil, msg, kv)
}

func (l *Logger) Warn(msg string, kv ...any) {
	if l == nil {
		return
	}
	write(l.base.Warn(), nil, msg, kv)
}

// WarnErr records a recoverable error, such as a rejected device sample.
func (l *Logger) WarnErr(err error, msg string, kv ...any) {
	if l == nil {
		return
	}
	write(l.base.Warn(), err, msg, kv)
}

func (l *Logger) Error(err error, msg string, kv ...any) {
	if l == nil {
		return
	}
	write(l.base.Error(), err, msg, kv)
}

// write is a no-op for events below the configured level; zerolog hands back nil.
func write(event *zerolog.Event, err error, msg string, kv []any) {
	if event == nil {
		return
	}
	if err != nil {
		event = event.Err(err)
	}
	if len(kv) > 0 {
		event = event.Fields(kv)
	}
	event.Msg(msg)
}
