package engine

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cratestack/cratestack/internal/model"
)

func TestSolver_StripPackingSingleBlock(t *testing.T) {
	req := model.Request{
		Blocks:     []model.Block{model.NewBlock("a", model.NewShape(50, 50, 50), 10, true, false)},
		Containers: []model.Container{model.NewContainer("c1", model.NewShape(50, 50, 50), 1000)},
		Settings:   model.DefaultSettings(),
	}
	req.Settings.MaxIter = 10

	resp, err := New(req).Solve(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, resp.Packings, 1)
	assert.Len(t, resp.Packings[0].Placements, 1)
	assert.Empty(t, resp.UnpackedBlocks)
}

func TestSolver_BinPackingUsesAssignmentAndAnnealer(t *testing.T) {
	req := model.Request{
		Blocks: []model.Block{
			model.NewBlock("a", model.NewShape(80, 80, 80), 50, true, false),
			model.NewBlock("b", model.NewShape(80, 80, 80), 50, true, false),
			model.NewBlock("c", model.NewShape(80, 80, 80), 50, true, false),
		},
		Containers: []model.Container{
			model.NewContainer("c1", model.NewShape(200, 100, 100), 200),
			model.NewContainer("c2", model.NewShape(200, 100, 100), 200),
		},
		Settings: model.DefaultSettings(),
	}
	req.Settings.Mode = model.ModeBin
	req.Settings.MaxIter = 50

	resp, err := New(req).Solve(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, model.ModeBin, resp.Mode)

	placed := 0
	for _, p := range resp.Packings {
		placed += len(p.Placements)
	}
	assert.Equal(t, 3, placed+len(resp.UnpackedBlocks))
}

func TestSolver_NoContainersErrors(t *testing.T) {
	req := model.Request{Blocks: []model.Block{model.NewBlock("a", model.NewShape(1, 1, 1), 1, true, false)}, Settings: model.DefaultSettings()}
	_, err := New(req).Solve(context.Background(), nil)
	assert.Error(t, err)
}
