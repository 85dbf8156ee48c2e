package engine

import (
	"context"
	"fmt"

	"github.com/cratestack/cratestack/internal/model"
)

// ComparisonScenario names a settings variant to compare against others.
type ComparisonScenario struct {
	Name     string
	Settings model.SolveSettings
}

// ComparisonResult holds one scenario's solve outcome and derived statistics.
type ComparisonResult struct {
	Scenario       ComparisonScenario
	Response       model.Response
	ContainersUsed int
	UnpackedCount  int
	Score          float64
}

// CompareScenarios solves the same blocks/containers under each scenario's
// settings and returns the results in scenario order, so different
// temperatures, rotation policies, or capacity ratios can be evaluated
// side by side.
func CompareScenarios(ctx context.Context, scenarios []ComparisonScenario, blocks []model.Block, containers []model.Container) ([]ComparisonResult, error) {
	results := make([]ComparisonResult, 0, len(scenarios))
	for _, scenario := range scenarios {
		req := model.Request{Blocks: blocks, Containers: containers, Settings: scenario.Settings}
		resp, err := New(req).Solve(ctx, nil)
		if err != nil {
			return nil, fmt.Errorf("scenario %q: %w", scenario.Name, err)
		}
		used := 0
		for _, p := range resp.Packings {
			if len(p.Placements) > 0 {
				used++
			}
		}
		results = append(results, ComparisonResult{
			Scenario:       scenario,
			Response:       resp,
			ContainersUsed: used,
			UnpackedCount:  len(resp.UnpackedBlocks),
			Score:          resp.Score,
		})
	}
	return results, nil
}

// BuildDefaultScenarios generates what-if variants around a base setting:
// the opposite rotation policy, plus a greedy (zero-temperature) run when
// the base temperature is non-zero or a warmer (T=1.0) run when the base
// is greedy, mirroring the kind of side-by-side comparison
// the original cut-list optimizer offered for its algorithm/kerf choices.
func BuildDefaultScenarios(base model.SolveSettings) []ComparisonScenario {
	scenarios := []ComparisonScenario{
		{Name: "Current Settings", Settings: base},
	}

	noRotate := base
	noRotate.AllowRotate = !base.AllowRotate
	name := "Rotation Disabled"
	if noRotate.AllowRotate {
		name = "Rotation Enabled"
	}
	scenarios = append(scenarios, ComparisonScenario{Name: name, Settings: noRotate})

	if base.Temperature != 0 {
		greedy := base
		greedy.Temperature = 0
		scenarios = append(scenarios, ComparisonScenario{Name: "Greedy (T=0)", Settings: greedy})
	} else {
		warm := base
		warm.Temperature = 1.0
		scenarios = append(scenarios, ComparisonScenario{Name: "Warm (T=1.0)", Settings: warm})
	}

	return scenarios
}
