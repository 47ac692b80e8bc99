package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/podium/internal/logger"
)

// executeCommand runs the root command and returns everything it printed.
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	root.SetArgs(args)
	buf := &bytes.Buffer{}
	root.SetOut(buf)
	root.SetErr(buf)
	err := root.Execute()
	return buf.String(), err
}

// captureLogs swaps the app logger for one writing JSON lines to a buffer.
func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	original := app.Logger
	t.Cleanup(func() { setAppLogger(original) })

	buf := &bytes.Buffer{}
	log, err := logger.New(logger.Options{Level: "info", Writer: buf})
	require.NoError(t, err)
	setAppLogger(log)
	return buf
}

func writeCatalogue(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "devices.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}
