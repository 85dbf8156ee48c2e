package engine

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cratestack/cratestack/internal/model"
)

func TestBuildDefaultScenarios_TogglesRotationAndTemperature(t *testing.T) {
	base := model.DefaultSettings()
	base.AllowRotate = true
	base.Temperature = 0

	scenarios := BuildDefaultScenarios(base)
	require.Len(t, scenarios, 3)
	assert.Equal(t, "Current Settings", scenarios[0].Name)
	assert.Equal(t, !base.AllowRotate, scenarios[1].Settings.AllowRotate)
	assert.Equal(t, "Warm (T=1.0)", scenarios[2].Name)
}

func TestCompareScenarios_ReturnsOneResultPerScenario(t *testing.T) {
	blocks := []model.Block{
		model.NewBlock("a", model.NewShape(20, 20, 20), 5, true, false),
		model.NewBlock("b", model.NewShape(20, 20, 20), 5, true, false),
	}
	containers := []model.Container{model.NewContainer("c1", model.NewShape(40, 40, 40), 1000)}

	base := model.DefaultSettings()
	base.MaxIter = 10
	scenarios := []ComparisonScenario{
		{Name: "base", Settings: base},
		{Name: "no-rotate", Settings: func() model.SolveSettings { s := base; s.AllowRotate = false; return s }()},
	}

	results, err := CompareScenarios(context.Background(), scenarios, blocks, containers)
	require.NoError(t, err)
	require.Len(t, results, 2)
	for _, r := range results {
		assert.Equal(t, 1, r.ContainersUsed)
		assert.Empty(t, r.Response.UnpackedBlocks)
	}
}
