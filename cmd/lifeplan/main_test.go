package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lifeplan/planner/internal/config"
)

// execute runs the root command with fresh flag values and captures stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	flagFormat, flagOutputDir, flagScenario, flagAddr = "", "", "", ""
	flagDebug = false

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(append([]string{"--settings", filepath.Join(t.TempDir(), "settings.toml")}, args...))
	err := rootCmd.Execute()
	return out.String(), err
}

func TestExampleThenValidate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plan.yaml")

	out, err := execute(t, "example", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Example configuration written to "+path)

	out, err = execute(t, "validate", path)
	require.NoError(t, err)
	assert.Contains(t, out, "3 scenarios for Alex Example")
}

func TestValidate_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("profile:\n  name: x\n  age: 5\nscenarios: []\n"), 0o644))

	_, err := execute(t, "validate", path)
	assert.ErrorContains(t, err, "age must be between")
}

func TestCompare_WritesReport(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "plan.yaml")
	parser := config.NewInputParser()
	require.NoError(t, parser.SaveConfiguration(path, parser.CreateExampleConfiguration()))

	reports := filepath.Join(dir, "reports")
	out, err := execute(t, "compare", path, "--format", "csv", "--output", reports)
	require.NoError(t, err)
	assert.Contains(t, out, "Report written to "+reports)

	files, err := filepath.Glob(filepath.Join(reports, "life_projection_*.csv"))
	require.NoError(t, err)
	assert.Len(t, files, 1)
}

func TestProject_PrintsVerboseReport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plan.yaml")
	parser := config.NewInputParser()
	require.NoError(t, parser.SaveConfiguration(path, parser.CreateExampleConfiguration()))

	out, err := execute(t, "project", path, "--scenario", "Keep Renting")
	require.NoError(t, err)
	assert.Contains(t, out, "LIFE PROJECTION REPORT")
	assert.Contains(t, out, "Keep Renting")
	assert.NotContains(t, out, "Married With Kids")

	_, err = execute(t, "project", path, "--scenario", "Nope")
	assert.ErrorContains(t, err, "scenario not found")
}

func TestScenarioForm_Defaults(t *testing.T) {
	sc, err := newScenarioForm().scenario()
	require.NoError(t, err)
	want := config.DefaultScenario()
	assert.Equal(t, want.Name, sc.Name)
	assert.True(t, want.CurrentIncome.Equal(sc.CurrentIncome))
	assert.True(t, want.DownPaymentPercent.Equal(sc.DownPaymentPercent))
	assert.Equal(t, want.YearsUntilBuying, sc.YearsUntilBuying)
	assert.Equal(t, want.LocationCost, sc.LocationCost)
	require.NoError(t, config.NewInputParser().ValidateScenario(&sc))

	f := newScenarioForm()
	f.income = "lots"
	_, err = f.scenario()
	assert.Error(t, err)
}

func TestFormValidators(t *testing.T) {
	assert.NoError(t, money("12.5"))
	assert.Error(t, money("-1"))
	assert.Error(t, money("abc"))
	assert.Error(t, percentUpTo(15)("16"))
	assert.NoError(t, percentUpTo(100)("20"))
	assert.Error(t, intBetween(16, 75)("80"))
	assert.NoError(t, intBetween(0, 100)("3"))
	assert.Error(t, required("  "))
}
