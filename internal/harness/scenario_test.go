package harness

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeScenario(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadScenario_ValidYAML(t *testing.T) {
	path := writeScenario(t, "test.yaml", `
name: test_scenario
description: "Test scenario for validation"
grid:
  - [0, 1]
  - [2, 3]
assertions:
  - type: bijective
  - type: rank_at
    x: 1
    y: 0
    rank: 1
`)

	scenario, err := LoadScenario(path)
	require.NoError(t, err)

	assert.Equal(t, "test_scenario", scenario.Name)
	assert.Equal(t, "Test scenario for validation", scenario.Description)
	assert.Equal(t, [][]int64{{0, 1}, {2, 3}}, scenario.Grid)
	require.Len(t, scenario.Assertions, 2)
	assert.Equal(t, AssertRankAt, scenario.Assertions[1].Type)
	assert.Equal(t, 1, scenario.Assertions[1].X)
	require.NotNil(t, scenario.Assertions[1].Rank)
	assert.Equal(t, 1, *scenario.Assertions[1].Rank)
}

func TestLoadScenario_MissingFile(t *testing.T) {
	_, err := LoadScenario("/nonexistent/scenario.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read scenario file")

	_, err = LoadScenario("/nonexistent/scenario.cue")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read scenario file")
}

func TestLoadScenario_UnsupportedExtension(t *testing.T) {
	_, err := LoadScenario("grid.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unsupported scenario file extension ".json"`)
}

func TestLoadScenario_UnknownField(t *testing.T) {
	path := writeScenario(t, "typo.yaml", `
name: typo
description: "Misspelled assertions key"
grid:
  - [0]
assertion:
  - type: bijective
`)

	_, err := LoadScenario(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse YAML")
}

func TestLoadScenario_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name: "missing name",
			content: `
description: "x"
grid: [[0]]
assertions: [{type: bijective}]
`,
			wantErr: "name is required",
		},
		{
			name: "missing description",
			content: `
name: x
grid: [[0]]
assertions: [{type: bijective}]
`,
			wantErr: "description is required",
		},
		{
			name: "missing grid",
			content: `
name: x
description: "x"
assertions: [{type: bijective}]
`,
			wantErr: "grid is required",
		},
		{
			name: "ragged grid",
			content: `
name: x
description: "x"
grid: [[0, 1], [2]]
assertions: [{type: bijective}]
`,
			wantErr: "grid[1]: expected 2 values, got 1",
		},
		{
			name: "no assertions",
			content: `
name: x
description: "x"
grid: [[0]]
`,
			wantErr: "assertions list is required",
		},
		{
			name: "unknown assertion",
			content: `
name: x
description: "x"
grid: [[0]]
assertions: [{type: sorted}]
`,
			wantErr: `unknown assertion type "sorted"`,
		},
		{
			name: "rank_at without rank",
			content: `
name: x
description: "x"
grid: [[0]]
assertions: [{type: rank_at, x: 0, y: 0}]
`,
			wantErr: "rank is required for rank_at",
		},
		{
			name: "rank_at outside grid",
			content: `
name: x
description: "x"
grid: [[0]]
assertions: [{type: rank_at, x: 1, y: 0, rank: 0}]
`,
			wantErr: "cell (1, 0) is outside the 1x1 grid",
		},
		{
			name: "ranks wrong shape",
			content: `
name: x
description: "x"
grid: [[0, 1]]
assertions: [{type: ranks, ranks: [[0]]}]
`,
			wantErr: "ranks[0] must have 2 values, got 1",
		},
		{
			name: "anomaly_count without count",
			content: `
name: x
description: "x"
grid: [[0]]
assertions: [{type: anomaly_count, rank: 0}]
`,
			wantErr: "non-negative count is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeScenario(t, "s.yaml", tt.content)
			_, err := LoadScenario(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadCUEScenario_Valid(t *testing.T) {
	scenario, err := LoadScenario(filepath.Join("testdata", "scenarios", "rectangular.cue"))
	require.NoError(t, err)

	assert.Equal(t, "rectangular", scenario.Name)
	assert.Equal(t, [][]int64{{0, 1, 2}, {3, 4, 5}}, scenario.Grid)
	require.Len(t, scenario.Assertions, 3)
	assert.Equal(t, [][]int{{0, 1, 2}, {3, 4, 5}}, scenario.Assertions[2].Ranks)
}

func TestLoadCUEScenario_SchemaViolations(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name: "unknown field",
			content: `
name: "x"
description: "x"
grid: [[0]]
assertions: [{type: "bijective"}]
extra: true
`,
			wantErr: "invalid scenario",
		},
		{
			name: "bad assertion type",
			content: `
name: "x"
description: "x"
grid: [[0]]
assertions: [{type: "sorted"}]
`,
			wantErr: "invalid scenario",
		},
		{
			name: "non-integer value",
			content: `
name: "x"
description: "x"
grid: [[0.5]]
assertions: [{type: "bijective"}]
`,
			wantErr: "invalid scenario",
		},
		{
			name:    "syntax error",
			content: `name: "x`,
			wantErr: "failed to parse CUE",
		},
		{
			name: "ragged grid",
			content: `
name: "x"
description: "x"
grid: [[0, 1], [2]]
assertions: [{type: "bijective"}]
`,
			wantErr: "grid[1]: expected 2 values, got 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeScenario(t, "s.cue", tt.content)
			_, err := LoadScenario(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestFindScenarioFiles(t *testing.T) {
	files, err := FindScenarioFiles(filepath.Join("testdata", "scenarios"), "")
	require.NoError(t, err)

	var names []string
	for _, f := range files {
		names = append(names, filepath.Base(f))
	}
	assert.Equal(t, []string{
		"collide.yaml",
		"column_order.yaml",
		"duplicates.yaml",
		"rectangular.cue",
		"row_order.yaml",
		"unorder.yaml",
	}, names)
}

func TestFindScenarioFiles_Filter(t *testing.T) {
	files, err := FindScenarioFiles(filepath.Join("testdata", "scenarios"), "*order")
	require.NoError(t, err)
	require.Len(t, files, 3)

	_, err = FindScenarioFiles(filepath.Join("testdata", "scenarios"), "[")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid filter pattern")
}

func TestGoldenPath(t *testing.T) {
	assert.Equal(t,
		filepath.Join("testdata", "scenarios", "golden", "unorder.golden"),
		GoldenPath(filepath.Join("testdata", "scenarios", "unorder.yaml"), "unorder"))

	// The scenario name wins over the file name.
	assert.Equal(t,
		filepath.Join("testdata", "scenarios", "golden", "b.golden"),
		GoldenPath(filepath.Join("testdata", "scenarios", "a.cue"), "b"))
}
