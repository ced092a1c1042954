package testutil

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewHome_LaysOutStore(t *testing.T) {
	home, path := NewHome(t, SampleEvents)

	assert.Equal(t, filepath.Join(home, ".events", "events.csv"), path)
	assert.Equal(t, SampleEvents, ReadFile(t, path))
}
