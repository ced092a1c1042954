package store

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/roach88/events/internal/event"
)

// createStoreFile writes content to a fresh $HOME/.events/events.csv layout
// and returns the home directory and the file path.
func createStoreFile(t *testing.T, content string) (home, path string) {
	t.Helper()
	home = t.TempDir()
	dir := filepath.Join(home, DirName)
	require.NoError(t, os.MkdirAll(dir, 0o755))
	path = filepath.Join(dir, FileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return home, path
}

// createTestStore returns an empty store backed by an existing empty file.
func createTestStore(t *testing.T) *Store {
	t.Helper()
	_, path := createStoreFile(t, "")
	return New(path, discardLogger())
}

// captureLogger returns a logger writing text records into the returned buffer.
func captureLogger() (*slog.Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})), buf
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func ev(date, category, description string) event.Event {
	return event.New(event.MustParseDate(date), category, description)
}

const threeEvents = `date,category,description
2024-01-01,work,Kickoff
2024-06-15,,Dentist
2025-01-01,work,Planning
`
