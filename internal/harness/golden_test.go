package harness

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommandLine(t *testing.T) {
	assert.Equal(t, "events list --today", commandLine([]string{"list", "--today"}))
	assert.Equal(t, `events delete --category ""`, commandLine([]string{"delete", "--category", ""}))
	assert.Equal(t, `events add --description "Call mom"`, commandLine([]string{"add", "--description", "Call mom"}))
}

func TestTranscript(t *testing.T) {
	result := NewResult()
	result.AddStep(StepTrace{Args: []string{"list"}, ExitCode: 0, Stdout: "No events found!\n"})
	result.AddStep(StepTrace{Args: []string{"delete"}, ExitCode: 2, Stderr: "Error [MISSING_CRITERIA]: ...\n"})

	want := "$ events list\n" +
		"No events found!\n" +
		"exit 0\n" +
		"\n" +
		"$ events delete\n" +
		"exit 2\n"
	assert.Equal(t, want, string(Transcript(result)))
}

func TestRunWithGolden_Scenarios(t *testing.T) {
	for _, name := range []string{"list_filters", "delete_before_date", "delete_or_retention"} {
		t.Run(name, func(t *testing.T) {
			scenario, err := LoadScenario(filepath.Join("testdata", "scenarios", name+".yaml"))
			require.NoError(t, err)

			result, err := RunWithGolden(t, scenario)
			require.NoError(t, err)
			assert.True(t, result.Pass, result.Errors)
		})
	}
}
