package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/roach88/events/internal/store"
)

// SampleEvents is the three-event store used across command tests: two
// "work" events around one uncategorized event.
const SampleEvents = "date,category,description\n" +
	"2024-01-01,work,Kickoff\n" +
	"2024-06-15,,Dentist\n" +
	"2025-01-01,work,Planning\n"

// NewHome creates a temporary home directory containing
// .events/events.csv with the given content and returns the home directory
// and the store file path.
func NewHome(t testing.TB, content string) (home, path string) {
	t.Helper()

	home = t.TempDir()
	dir := filepath.Join(home, store.DirName)
	require.NoError(t, os.Mkdir(dir, 0o755))

	path = filepath.Join(dir, store.FileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return home, path
}

// ReadFile returns the content of path as a string.
func ReadFile(t testing.TB, path string) string {
	t.Helper()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}
