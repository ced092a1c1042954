package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/roach88/events/internal/testutil"
)

var exportStamp = time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)

type cliRun struct {
	stdout string
	stderr string
	code   int
}

// execute runs the CLI against home with the clock frozen at 2024-06-15.
func execute(t *testing.T, home string, args ...string) cliRun {
	t.Helper()

	var stdout, stderr bytes.Buffer
	opts := &RootOptions{
		Home:  home,
		Clock: testutil.NewFixedClock("2024-06-15"),
		Now:   func() time.Time { return exportStamp },
	}
	code := Execute(args, &stdout, &stderr, opts)
	return cliRun{stdout: stdout.String(), stderr: stderr.String(), code: code}
}

func assertGolden(t *testing.T, name, actual string) {
	t.Helper()
	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, name, []byte(actual))
}

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand()
	require.NotNil(t, cmd)
	assert.Equal(t, "events", cmd.Use)

	for _, name := range []string{"list", "add", "delete", "categories", "export"} {
		t.Run(name, func(t *testing.T) {
			sub, _, err := cmd.Find([]string{name})
			require.NoError(t, err)
			assert.Equal(t, name, sub.Name())
		})
	}
}

func TestGlobalFlags(t *testing.T) {
	cmd := NewRootCommand()

	verboseFlag := cmd.PersistentFlags().Lookup("verbose")
	require.NotNil(t, verboseFlag)
	assert.Equal(t, "v", verboseFlag.Shorthand)
	assert.Equal(t, "false", verboseFlag.DefValue)

	formatFlag := cmd.PersistentFlags().Lookup("format")
	require.NotNil(t, formatFlag)
	assert.Equal(t, "text", formatFlag.DefValue)

	require.NotNil(t, cmd.PersistentFlags().Lookup("store"))
}

func TestList_Text(t *testing.T) {
	home, _ := testutil.NewHome(t, testutil.SampleEvents)

	r := execute(t, home, "list")
	require.Equal(t, ExitSuccess, r.code, r.stderr)
	assertGolden(t, "list_all", r.stdout)

	r = execute(t, home, "list", "--categories", "work")
	require.Equal(t, ExitSuccess, r.code, r.stderr)
	assertGolden(t, "list_categories", r.stdout)
}

func TestList_Selections(t *testing.T) {
	home, path := testutil.NewHome(t, testutil.SampleEvents)
	dentist := "2024-06-15: Dentist -- today\n"

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"exclude", []string{"list", "--categories", "work", "--exclude"}, dentist},
		{"no category", []string{"list", "--no-category"}, dentist},
		{"today", []string{"list", "--today"}, dentist},
		{"before", []string{"list", "--before-date", "2024-06-15"}, "2024-01-01: Kickoff (work) -- 5 months 14 days ago\n"},
		{"nothing", []string{"list", "--date", "1999-01-01"}, "No events found!\n"},
		{"several categories", []string{"list", "--categories", "home,work", "--after-date", "2024-12-31"},
			"2025-01-01: Planning (work) -- in 6 months 16 days \n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := execute(t, home, tt.args...)
			require.Equal(t, ExitSuccess, r.code, r.stderr)
			assert.Equal(t, tt.want, r.stdout)
		})
	}

	assert.Equal(t, testutil.SampleEvents, testutil.ReadFile(t, path), "list never writes")
}

func TestList_JSON(t *testing.T) {
	home, _ := testutil.NewHome(t, testutil.SampleEvents)

	r := execute(t, home, "--format", "json", "list", "--categories", "work")
	require.Equal(t, ExitSuccess, r.code, r.stderr)

	var resp struct {
		Status string `json:"status"`
		Data   struct {
			Today  string `json:"today"`
			Filter string `json:"filter"`
			Count  int    `json:"count"`
			Events []struct {
				Event struct {
					Date        string `json:"date"`
					Category    string `json:"category"`
					Description string `json:"description"`
				} `json:"event"`
				Difference string `json:"difference"`
			} `json:"events"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(r.stdout), &resp))

	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, "2024-06-15", resp.Data.Today)
	assert.Equal(t, `category in ["work"]`, resp.Data.Filter)
	assert.Equal(t, 2, resp.Data.Count)
	require.Len(t, resp.Data.Events, 2)
	assert.Equal(t, "2024-01-01", resp.Data.Events[0].Event.Date)
	assert.Equal(t, "work", resp.Data.Events[0].Event.Category)
	assert.Equal(t, "5 months 14 days ago", resp.Data.Events[0].Difference)
}

func TestList_YAML(t *testing.T) {
	home, _ := testutil.NewHome(t, testutil.SampleEvents)

	r := execute(t, home, "list", "--no-category", "--format", "yaml")
	require.Equal(t, ExitSuccess, r.code, r.stderr)

	var resp struct {
		Status string `yaml:"status"`
		Data   struct {
			Count  int `yaml:"count"`
			Events []struct {
				Event struct {
					Description string `yaml:"description"`
				} `yaml:"event"`
				Difference string `yaml:"difference"`
			} `yaml:"events"`
		} `yaml:"data"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(r.stdout), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, 1, resp.Data.Count)
	assert.Equal(t, "Dentist", resp.Data.Events[0].Event.Description)
	assert.Equal(t, "today", resp.Data.Events[0].Difference)
}

func TestList_UsageErrors(t *testing.T) {
	home, _ := testutil.NewHome(t, testutil.SampleEvents)

	tests := []struct {
		name    string
		args    []string
		message string
	}{
		{"exclude without categories", []string{"list", "--exclude"}, `cannot use "--exclude" without "--categories"`},
		{"bad date", []string{"list", "--date", "2024-13-01"}, "invalid date"},
		{"unknown flag", []string{"list", "--nope"}, "unknown flag"},
		{"positional argument", []string{"list", "extra"}, "unknown command"},
		{"bad format", []string{"list", "--format", "xml"}, `invalid format "xml"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := execute(t, home, tt.args...)
			assert.Equal(t, ExitUsage, r.code)
			assert.Empty(t, r.stdout)
			assert.Contains(t, r.stderr, tt.message)
			assert.Contains(t, r.stderr, "--help' for usage.")
		})
	}
}

func TestUsageShownOnValidationError(t *testing.T) {
	home, _ := testutil.NewHome(t, testutil.SampleEvents)

	r := execute(t, home, "delete")
	assert.Equal(t, ExitUsage, r.code)
	assert.Contains(t, r.stderr, "Error [MISSING_CRITERIA]: at least one option is required\n")
	assert.Contains(t, r.stderr, "Usage:\n  events delete [flags]")
	assert.Contains(t, r.stderr, "--before-date")
	assert.Contains(t, r.stderr, "--dry-run")

	r = execute(t, home, "delete", "--format", "json")
	assert.Equal(t, ExitUsage, r.code)
	assert.NotContains(t, r.stderr, "Usage:")
}

func TestAdd(t *testing.T) {
	home, path := testutil.NewHome(t, testutil.SampleEvents)

	r := execute(t, home, "add", "--date", "2024-03-01", "--category", "home", "--description", "Plumber")
	require.Equal(t, ExitSuccess, r.code, r.stderr)
	assertGolden(t, "add", r.stdout)

	assert.Equal(t, "date,category,description\n"+
		"2024-01-01,work,Kickoff\n"+
		"2024-03-01,home,Plumber\n"+
		"2024-06-15,,Dentist\n"+
		"2025-01-01,work,Planning\n", testutil.ReadFile(t, path))
}

func TestAdd_DefaultsToToday(t *testing.T) {
	home, path := testutil.NewHome(t, "date,category,description\n")

	r := execute(t, home, "add", "--description", "Standup")
	require.Equal(t, ExitSuccess, r.code, r.stderr)
	assert.Equal(t, "Successfully added new event!\n2024-06-15: Standup -- today\n", r.stdout)
	assert.Equal(t, "date,category,description\n2024-06-15,,Standup\n", testutil.ReadFile(t, path))
}

func TestAdd_MissingDescription(t *testing.T) {
	home, path := testutil.NewHome(t, testutil.SampleEvents)

	r := execute(t, home, "add", "--category", "work")
	assert.Equal(t, ExitUsage, r.code)
	assert.Contains(t, r.stderr, `"--description" is required`)
	assert.Equal(t, testutil.SampleEvents, testutil.ReadFile(t, path))
}

func TestDelete_BeforeDate(t *testing.T) {
	home, path := testutil.NewHome(t, testutil.SampleEvents)

	r := execute(t, home, "delete", "--before-date", "2024-06-15")
	require.Equal(t, ExitSuccess, r.code, r.stderr)
	assertGolden(t, "delete_before_date", r.stdout)
	assert.Equal(t, "date,category,description\n"+
		"2024-06-15,,Dentist\n"+
		"2025-01-01,work,Planning\n", testutil.ReadFile(t, path))
}

func TestDelete_AllDryRun(t *testing.T) {
	home, path := testutil.NewHome(t, testutil.SampleEvents)

	r := execute(t, home, "delete", "--all", "--dry-run")
	require.Equal(t, ExitSuccess, r.code, r.stderr)
	assert.Equal(t, "Performing dry run...\nResult:\nNo events found!\n", r.stdout)
	assert.Equal(t, testutil.SampleEvents, testutil.ReadFile(t, path))
}

func TestDelete_EmptyCategoryDryRun(t *testing.T) {
	home, path := testutil.NewHome(t, testutil.SampleEvents)

	r := execute(t, home, "delete", "--category", "", "--dry-run")
	require.Equal(t, ExitSuccess, r.code, r.stderr)
	assertGolden(t, "delete_dry_run", r.stdout)
	assert.Equal(t, testutil.SampleEvents, testutil.ReadFile(t, path))
}

func TestDelete_All(t *testing.T) {
	home, path := testutil.NewHome(t, testutil.SampleEvents)

	r := execute(t, home, "delete", "--all")
	require.Equal(t, ExitSuccess, r.code, r.stderr)
	assert.Equal(t, "Successfully removed event(s)!\nNo events found!\n", r.stdout)
	assert.Equal(t, "date,category,description\n", testutil.ReadFile(t, path))
}

func TestDelete_NoMatches(t *testing.T) {
	home, path := testutil.NewHome(t, testutil.SampleEvents)

	r := execute(t, home, "delete", "--category", "work", "--description", "foo")
	require.Equal(t, ExitSuccess, r.code, r.stderr)
	assert.Equal(t, "No events affected!\n"+
		"2024-01-01: Kickoff (work) -- 5 months 14 days ago\n"+
		"2024-06-15: Dentist -- today\n"+
		"2025-01-01: Planning (work) -- in 6 months 16 days \n", r.stdout)
	assert.Equal(t, testutil.SampleEvents, testutil.ReadFile(t, path))
}

func TestDelete_JSON(t *testing.T) {
	home, _ := testutil.NewHome(t, testutil.SampleEvents)

	r := execute(t, home, "delete", "--date", "2024-01-01", "--format", "json")
	require.Equal(t, ExitSuccess, r.code, r.stderr)

	var resp struct {
		Data struct {
			DryRun   bool   `json:"dry_run"`
			Filter   string `json:"filter"`
			Removed  bool   `json:"removed"`
			Previous int    `json:"previous"`
			Current  int    `json:"current"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(r.stdout), &resp))
	assert.False(t, resp.Data.DryRun)
	assert.True(t, resp.Data.Removed)
	assert.Equal(t, "date != 2024-01-01", resp.Data.Filter)
	assert.Equal(t, 3, resp.Data.Previous)
	assert.Equal(t, 2, resp.Data.Current)
}

func TestDelete_UsageErrors(t *testing.T) {
	home, path := testutil.NewHome(t, testutil.SampleEvents)

	tests := []struct {
		name    string
		args    []string
		message string
	}{
		{"no options", []string{"delete"}, "at least one option is required"},
		{"dry run alone", []string{"delete", "--dry-run"}, `"--dry-run" requires at least one other option`},
		{"all with category", []string{"delete", "--all", "--category", "work"}, `cannot have other options with "--all"`},
		{"all with date", []string{"delete", "--all", "--date", "2024-01-01"}, `cannot have other options with "--all"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := execute(t, home, tt.args...)
			assert.Equal(t, ExitUsage, r.code)
			assert.Contains(t, r.stderr, tt.message)
		})
	}

	assert.Equal(t, testutil.SampleEvents, testutil.ReadFile(t, path))
}

func TestCategories(t *testing.T) {
	home, _ := testutil.NewHome(t, testutil.SampleEvents)

	r := execute(t, home, "categories")
	require.Equal(t, ExitSuccess, r.code, r.stderr)
	assert.Equal(t, "(no category)\nwork\n", r.stdout)

	empty, _ := testutil.NewHome(t, "date,category,description\n")
	r = execute(t, empty, "categories")
	require.Equal(t, ExitSuccess, r.code, r.stderr)
	assert.Equal(t, "No categories found!\n", r.stdout)
}

func TestExport_Stdout(t *testing.T) {
	home, _ := testutil.NewHome(t, testutil.SampleEvents)

	r := execute(t, home, "export", "--categories", "work")
	require.Equal(t, ExitSuccess, r.code, r.stderr)
	assert.Contains(t, r.stdout, "BEGIN:VCALENDAR")
	assert.Contains(t, r.stdout, "SUMMARY:Kickoff")
	assert.Contains(t, r.stdout, "SUMMARY:Planning")
	assert.NotContains(t, r.stdout, "Dentist")
	assert.Contains(t, r.stdout, "DTSTAMP:20240615T120000Z")
}

func TestExport_File(t *testing.T) {
	home, _ := testutil.NewHome(t, testutil.SampleEvents)
	out := filepath.Join(t.TempDir(), "events.ics")

	r := execute(t, home, "export", "--output", out)
	require.Equal(t, ExitSuccess, r.code, r.stderr)
	assert.Equal(t, "Exported 3 event(s) to "+out+"\n", r.stdout)
	assert.Contains(t, testutil.ReadFile(t, out), "SUMMARY:Dentist")
}

func TestPathErrors(t *testing.T) {
	t.Run("missing directory", func(t *testing.T) {
		home := t.TempDir()

		r := execute(t, home, "list")
		assert.Equal(t, ExitCommandError, r.code)
		assert.Contains(t, r.stderr, "Error [PATH_UNAVAILABLE]")
		assert.Contains(t, r.stderr, filepath.Join(home, ".events")+" directory does not exist, please create it")

		_, err := os.Stat(filepath.Join(home, ".events"))
		assert.True(t, os.IsNotExist(err), "directory must not be created")
	})

	t.Run("missing file", func(t *testing.T) {
		home := t.TempDir()
		require.NoError(t, os.Mkdir(filepath.Join(home, ".events"), 0o755))

		r := execute(t, home, "add", "--description", "x")
		assert.Equal(t, ExitCommandError, r.code)
		assert.Contains(t, r.stderr, "events.csv file not found")
	})

	t.Run("default home", func(t *testing.T) {
		if runtime.GOOS == "windows" || runtime.GOOS == "plan9" {
			t.Skip("home directory is not read from $HOME")
		}
		home, _ := testutil.NewHome(t, testutil.SampleEvents)
		t.Setenv("HOME", home)

		r := execute(t, "", "list", "--today")
		require.Equal(t, ExitSuccess, r.code, r.stderr)
		assert.Equal(t, "2024-06-15: Dentist -- today\n", r.stdout)
	})

	t.Run("unknown home keeps cause", func(t *testing.T) {
		if runtime.GOOS == "windows" || runtime.GOOS == "plan9" {
			t.Skip("home directory is not read from $HOME")
		}
		t.Setenv("HOME", "")

		r := execute(t, "", "list")
		assert.Equal(t, ExitCommandError, r.code)
		assert.Contains(t, r.stderr, "unable to determine user home directory: $HOME is not defined")
	})

	t.Run("json", func(t *testing.T) {
		r := execute(t, t.TempDir(), "list", "--format", "json")
		assert.Equal(t, ExitCommandError, r.code)

		var resp CLIResponse
		require.NoError(t, json.Unmarshal([]byte(r.stdout), &resp))
		assert.Equal(t, "error", resp.Status)
		require.NotNil(t, resp.Error)
		assert.Equal(t, "PATH_UNAVAILABLE", resp.Error.Code)
	})
}

func TestLoadFailure(t *testing.T) {
	home, _ := testutil.NewHome(t, "category\nwork\n")

	r := execute(t, home, "list")
	assert.Equal(t, ExitFailure, r.code)
	assert.Contains(t, r.stderr, "Error [LOAD_FAILED]")
	assert.Contains(t, r.stderr, "missing column(s) date, description")
}

func TestBadRowsAreLogged(t *testing.T) {
	home, _ := testutil.NewHome(t, testutil.SampleEvents+"someday,,Vague\n")

	r := execute(t, home, "list")
	require.Equal(t, ExitSuccess, r.code)
	assertGolden(t, "list_all", r.stdout)
	assert.Contains(t, r.stderr, "dropping row with bad date")
	assert.Contains(t, r.stderr, "date=someday")
}

func TestStoreFlag(t *testing.T) {
	_, path := testutil.NewHome(t, testutil.SampleEvents)
	emptyHome := t.TempDir()

	r := execute(t, emptyHome, "--store", path, "list", "--no-category")
	require.Equal(t, ExitSuccess, r.code, r.stderr)
	assert.Equal(t, "2024-06-15: Dentist -- today\n", r.stdout)

	r = execute(t, emptyHome, "--store", filepath.Join(emptyHome, "nope.csv"), "list")
	assert.Equal(t, ExitCommandError, r.code)
	assert.Contains(t, r.stderr, "nope.csv file not found")
}

func TestConfigFile(t *testing.T) {
	home, _ := testutil.NewHome(t, testutil.SampleEvents)
	require.NoError(t, os.WriteFile(filepath.Join(home, ".events", "config.yaml"), []byte("format: json\n"), 0o644))

	r := execute(t, home, "categories")
	require.Equal(t, ExitSuccess, r.code, r.stderr)

	var resp struct {
		Data categoriesView `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(r.stdout), &resp))
	assert.Equal(t, []string{"", "work"}, resp.Data.Categories)

	// Flags win over the file.
	r = execute(t, home, "categories", "--format", "text")
	require.Equal(t, ExitSuccess, r.code, r.stderr)
	assert.Equal(t, "(no category)\nwork\n", r.stdout)
}

func TestVerbose(t *testing.T) {
	home, _ := testutil.NewHome(t, testutil.SampleEvents)

	r := execute(t, home, "list", "--verbose", "--categories", "work")
	require.Equal(t, ExitSuccess, r.code, r.stderr)
	assertGolden(t, "list_categories", r.stdout)
	assert.Contains(t, r.stderr, "level=DEBUG")
	assert.Contains(t, r.stderr, `filter: category in ["work"]`)
}
