package merge_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/Maxamed/gaza-genocide/internal/config"
	"github.com/Maxamed/gaza-genocide/internal/merge"
	"github.com/Maxamed/gaza-genocide/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeJSON(t *testing.T, path string, v any) {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0644))
}

func testConfig(dir string) *config.Config {
	return &config.Config{
		CurrentPath: filepath.Join(dir, "benchmarks.json"),
		SupplementPaths: []string{
			filepath.Join(dir, "new_bench.json"),
			filepath.Join(dir, "new_bench1.json"),
		},
		OutputPath: filepath.Join(dir, "benchmarks_merged.json"),
	}
}

func TestRunMergesAndWrites(t *testing.T) {
	dir := t.TempDir()
	cfg := testConfig(dir)

	writeJSON(t, cfg.CurrentPath, []model.Benchmark{
		{"id": "b-1", "category": "casualties"},
	})
	writeJSON(t, cfg.SupplementPaths[0], []model.Benchmark{
		{"id": "b-1", "category": "renamed"},
		{"id": "b-2", "category": "infrastructure"},
	})
	writeJSON(t, cfg.SupplementPaths[1], []model.Benchmark{
		{"id": "b-2", "category": "renamed"},
		{"id": "b-3"},
	})

	var report bytes.Buffer
	require.NoError(t, merge.RunTo(cfg, &report))

	data, err := os.ReadFile(cfg.OutputPath)
	require.NoError(t, err)

	var merged model.Collection
	require.NoError(t, json.Unmarshal(data, &merged))
	require.Len(t, merged, 3)
	assert.Equal(t, "b-1", merged[0]["id"])
	assert.Equal(t, "casualties", merged[0].Category(), "current copy wins")
	assert.Equal(t, "b-2", merged[1]["id"])
	assert.Equal(t, "infrastructure", merged[1].Category(), "first supplement wins over second")
	assert.Equal(t, "b-3", merged[2]["id"])

	out := report.String()
	assert.Contains(t, out, "Loaded benchmarks:")
	assert.Contains(t, out, cfg.CurrentPath+": 1 benchmarks")
	assert.Contains(t, out, "Skipped duplicate ID: b-1")
	assert.Contains(t, out, "Skipped duplicate ID: b-2")
	assert.Contains(t, out, "Merged dataset: 3 total benchmarks")
	assert.Contains(t, out, "Category distribution:")
	assert.Contains(t, out, "Merged file saved to: "+cfg.OutputPath)
	assert.Contains(t, out, "Total unique benchmarks: 3")
}

func TestRunMissingInputDegradesToEmpty(t *testing.T) {
	dir := t.TempDir()
	cfg := testConfig(dir)

	// No current file at all; only the supplements exist.
	writeJSON(t, cfg.SupplementPaths[0], []model.Benchmark{{"id": "b-1"}})
	writeJSON(t, cfg.SupplementPaths[1], []model.Benchmark{{"id": "b-2"}})

	var report bytes.Buffer
	require.NoError(t, merge.RunTo(cfg, &report))

	data, err := os.ReadFile(cfg.OutputPath)
	require.NoError(t, err)

	var merged model.Collection
	require.NoError(t, json.Unmarshal(data, &merged))
	assert.Len(t, merged, 2)
	assert.Contains(t, report.String(), cfg.CurrentPath+": 0 benchmarks")
}

func TestRunMalformedRecordAborts(t *testing.T) {
	dir := t.TempDir()
	cfg := testConfig(dir)

	writeJSON(t, cfg.CurrentPath, []model.Benchmark{{"name": "keyless"}})

	var report bytes.Buffer
	err := merge.RunTo(cfg, &report)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no \"id\" field")

	_, statErr := os.Stat(cfg.OutputPath)
	assert.True(t, os.IsNotExist(statErr), "no output should be written on a failed merge")
}

func TestRunUnwritableOutputFails(t *testing.T) {
	dir := t.TempDir()
	cfg := testConfig(dir)
	cfg.OutputPath = filepath.Join(dir, "missing-dir", "out.json")

	writeJSON(t, cfg.CurrentPath, []model.Benchmark{{"id": "b-1"}})
	writeJSON(t, cfg.SupplementPaths[0], []model.Benchmark{})
	writeJSON(t, cfg.SupplementPaths[1], []model.Benchmark{})

	var report bytes.Buffer
	err := merge.RunTo(cfg, &report)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to write merged dataset")
}
