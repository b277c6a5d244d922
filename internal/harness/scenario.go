package harness

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Scenario defines one grid and what verifying it must produce.
type Scenario struct {
	// Name uniquely identifies this scenario and names its golden file.
	Name string `yaml:"name" json:"name"`

	// Description explains what this scenario demonstrates.
	Description string `yaml:"description" json:"description"`

	// Grid is the value table, one slice per row.
	Grid [][]int64 `yaml:"grid" json:"grid"`

	// Assertions are checked against the verification report.
	Assertions []Assertion `yaml:"assertions" json:"assertions"`
}

// Assertion checks one property of a verification report.
type Assertion struct {
	// Type is one of the Assert* constants.
	Type string `yaml:"type" json:"type"`

	// X and Y address a cell (used by rank_at).
	X int `yaml:"x,omitempty" json:"x,omitempty"`
	Y int `yaml:"y,omitempty" json:"y,omitempty"`

	// Rank is the expected rank (rank_at, anomaly_count).
	Rank *int `yaml:"rank,omitempty" json:"rank,omitempty"`

	// Count is the expected occurrence count of Rank (anomaly_count).
	Count *int `yaml:"count,omitempty" json:"count,omitempty"`

	// Ranks is the expected rank grid (ranks).
	Ranks [][]int `yaml:"ranks,omitempty" json:"ranks,omitempty"`
}

// Assertion type constants.
const (
	AssertBijective    = "bijective"
	AssertAnomalous    = "anomalous"
	AssertOrdered      = "ordered"
	AssertMisordered   = "misordered"
	AssertRankAt       = "rank_at"
	AssertRanks        = "ranks"
	AssertAnomalyCount = "anomaly_count"
)

// LoadScenario reads a scenario file. The format is chosen by extension:
// .yaml and .yml are YAML, .cue is CUE.
func LoadScenario(path string) (*Scenario, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		return LoadYAMLScenario(path)
	case ".cue":
		return LoadCUEScenario(path)
	default:
		return nil, fmt.Errorf("unsupported scenario file extension %q", ext)
	}
}

// LoadYAMLScenario reads and parses a YAML scenario file.
// Returns an error if the file doesn't exist, is malformed,
// contains unknown fields (typos), or is missing required fields.
func LoadYAMLScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	// Strict field validation catches typos like "assertion:" vs "assertions:"
	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	return &scenario, nil
}

// FindScenarioFiles returns every scenario file under dir, in lexical order.
// If filter is non-empty only files whose base name (without extension)
// matches the glob are returned.
func FindScenarioFiles(dir string, filter string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if d.Name() == "golden" {
				return filepath.SkipDir
			}
			return nil
		}

		ext := filepath.Ext(path)
		if ext != ".yaml" && ext != ".yml" && ext != ".cue" {
			return nil
		}

		if filter != "" {
			name := strings.TrimSuffix(filepath.Base(path), ext)
			matched, err := filepath.Match(filter, name)
			if err != nil {
				return fmt.Errorf("invalid filter pattern: %w", err)
			}
			if !matched {
				return nil
			}
		}

		files = append(files, path)
		return nil
	})

	return files, err
}

// GoldenPath returns the golden file path for the scenario called name,
// loaded from scenarioFile: {dir}/golden/{name}.golden. It is keyed the same
// way as AssertGolden.
func GoldenPath(scenarioFile, name string) string {
	return filepath.Join(filepath.Dir(scenarioFile), "golden", name+".golden")
}

// validateScenario checks that required fields are present and valid.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}

	if s.Description == "" {
		return fmt.Errorf("description is required")
	}

	if len(s.Grid) == 0 {
		return fmt.Errorf("grid is required and must be non-empty")
	}
	width := len(s.Grid[0])
	if width == 0 {
		return fmt.Errorf("grid[0]: row must be non-empty")
	}
	for y, row := range s.Grid {
		if len(row) != width {
			return fmt.Errorf("grid[%d]: expected %d values, got %d", y, width, len(row))
		}
	}

	if len(s.Assertions) == 0 {
		return fmt.Errorf("assertions list is required and must be non-empty")
	}

	for i := range s.Assertions {
		if err := validateAssertion(i, &s.Assertions[i], width, len(s.Grid)); err != nil {
			return err
		}
	}

	return nil
}

// validateAssertion validates a single assertion based on its type.
func validateAssertion(index int, a *Assertion, width, height int) error {
	if a.Type == "" {
		return fmt.Errorf("assertions[%d]: type is required", index)
	}

	switch a.Type {
	case AssertBijective, AssertAnomalous, AssertOrdered, AssertMisordered:
	case AssertRankAt:
		if a.Rank == nil {
			return fmt.Errorf("assertions[%d]: rank is required for rank_at", index)
		}
		if a.X < 0 || a.X >= width || a.Y < 0 || a.Y >= height {
			return fmt.Errorf("assertions[%d]: cell (%d, %d) is outside the %dx%d grid", index, a.X, a.Y, width, height)
		}
	case AssertRanks:
		if len(a.Ranks) != height {
			return fmt.Errorf("assertions[%d]: ranks must have %d rows, got %d", index, height, len(a.Ranks))
		}
		for y, row := range a.Ranks {
			if len(row) != width {
				return fmt.Errorf("assertions[%d]: ranks[%d] must have %d values, got %d", index, y, width, len(row))
			}
		}
	case AssertAnomalyCount:
		if a.Rank == nil {
			return fmt.Errorf("assertions[%d]: rank is required for anomaly_count", index)
		}
		if a.Count == nil || *a.Count < 0 {
			return fmt.Errorf("assertions[%d]: non-negative count is required for anomaly_count", index)
		}
	default:
		return fmt.Errorf("assertions[%d]: unknown assertion type %q", index, a.Type)
	}

	return nil
}
