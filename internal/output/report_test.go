package output_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/lifeplan/planner/internal/domain"
	"github.com/lifeplan/planner/internal/output"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedNow() time.Time { return time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC) }

func TestGenerateReport_WritesTimestampedFile(t *testing.T) {
	output.SetNowFunc(fixedNow)
	t.Cleanup(func() { output.SetNowFunc(nil) })

	dir := filepath.Join(t.TempDir(), "reports")
	path, err := output.GenerateReport(&domain.ScenarioComparison{}, "json", dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "life_projection_20250102_030405.json"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"scenarios"`)

	path, err = output.GenerateReport(&domain.ScenarioComparison{}, "csv-summary", dir)
	require.NoError(t, err)
	assert.Equal(t, ".csv", filepath.Ext(path))
}

func TestGenerateReport_All(t *testing.T) {
	output.SetNowFunc(fixedNow)
	t.Cleanup(func() { output.SetNowFunc(nil) })

	dir := t.TempDir()
	_, err := output.GenerateReport(&domain.ScenarioComparison{}, "all", dir)
	require.NoError(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	assert.ElementsMatch(t, []string{
		"life_projection_20250102_030405.txt",
		"life_projection_20250102_030405.csv",
		"life_projection_20250102_030405.html",
	}, names)
}

func TestUnknownFormatErrorIncludesSuggestions(t *testing.T) {
	_, err := output.GenerateReport(&domain.ScenarioComparison{}, "definitely-not-a-format", t.TempDir())
	require.Error(t, err)
	assert.ErrorIs(t, err, output.ErrUnsupportedFormat)
	assert.Contains(t, err.Error(), "unsupported report format")
	assert.Contains(t, err.Error(), "Try one of:")

	_, err = output.Render(&domain.ScenarioComparison{}, "pdf")
	assert.ErrorIs(t, err, output.ErrUnsupportedFormat)
}

func TestRender(t *testing.T) {
	out, err := output.Render(&domain.ScenarioComparison{Profile: domain.Profile{Name: "Sky", Age: 40}}, "console")
	require.NoError(t, err)
	assert.Contains(t, string(out), "Sky, age 40")
}
