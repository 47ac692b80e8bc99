package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type logEntry map[string]any

func TestLoggerInfoWithFields(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "info", HumanReadable: false, Writer: buf})
	require.NoError(t, err)

	log = log.WithFields(map[string]any{"device": "iphone_15", "breakpoint": "medium"})
	log.Info("resolved layout")

	var entry logEntry
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "resolved layout", entry["message"])
	require.Equal(t, "iphone_15", entry["device"])
	require.Equal(t, "medium", entry["breakpoint"])
	require.Equal(t, "info", entry["level"])
}

func TestLoggerKeyValueFields(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "debug", Writer: buf})
	require.NoError(t, err)

	log.With("catalogue", "devices.yaml").Debug("layout profile recomputed", "breakpoint", "tablet", "width", 820.0)

	var entry logEntry
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "layout profile recomputed", entry["message"])
	require.Equal(t, "devices.yaml", entry["catalogue"])
	require.Equal(t, "tablet", entry["breakpoint"])
	require.Equal(t, 820.0, entry["width"])
	require.Equal(t, "debug", entry["level"])
}

func TestLoggerErrorCarriesCause(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Writer: buf})
	require.NoError(t, err)

	log.Error(errors.New("no such file"), "device catalogue load failed", "path", "missing.yaml")

	var entry logEntry
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "error", entry["level"])
	require.Equal(t, "no such file", entry["error"])
	require.Equal(t, "missing.yaml", entry["path"])
}

func TestLoggerDebugRespectsLevel(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "info", HumanReadable: false, Writer: buf})
	require.NoError(t, err)

	log.Debug("this should not appear")
	require.Equal(t, "", strings.TrimSpace(buf.String()))

	require.NoError(t, log.SetLevel("debug"))
	log.Debug("now visible")
	require.Contains(t, buf.String(), "now visible")
}

func TestLoggerRejectsUnknownLevel(t *testing.T) {
	t.Parallel()

	_, err := New(Options{Level: "loud"})
	require.Error(t, err)
}

func TestLoggerWarnErrIncludesContext(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "debug", HumanReadable: false, Writer: buf})
	require.NoError(t, err)

	log = log.WithFields(map[string]any{"field": "viewport_width"})
	log.WarnErr(errors.New("must be positive"), "sample rejected")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var entry logEntry
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	require.Equal(t, "sample rejected", entry["message"])
	require.Equal(t, "viewport_width", entry["field"])
	require.Equal(t, "must be positive", entry["error"])
	require.Equal(t, "warn", entry["level"])
}

func TestNilLoggerIsSafe(t *testing.T) {
	t.Parallel()

	var log *Logger
	require.NotPanics(t, func() {
		log.Info("ignored")
		log.WarnErr(errors.New("x"), "ignored", "field", "platform")
		require.Nil(t, log.WithFields(map[string]any{"a": 1}))
		require.Nil(t, log.With("a", 1))
	})
}
