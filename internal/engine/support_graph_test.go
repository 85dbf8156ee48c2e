package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cratestack/cratestack/internal/model"
)

func TestValidateSupport_FloorRestingBlockIsFine(t *testing.T) {
	container := model.NewContainer("c1", model.NewShape(100, 100, 100), 1000)
	resp := model.Response{
		Packings: []model.ContainerPacking{{
			Container: container,
			Placements: []model.Placement{
				{Block: model.NewBlock("a", model.NewShape(50, 50, 50), 1, true, false), Corner: model.NewCorner(0, 0, 0)},
			},
		}},
	}
	assert.NoError(t, ValidateSupport(resp))
}

func TestValidateSupport_StackedBlockRestsOnLower(t *testing.T) {
	container := model.NewContainer("c1", model.NewShape(100, 100, 100), 1000)
	resp := model.Response{
		Packings: []model.ContainerPacking{{
			Container: container,
			Placements: []model.Placement{
				{Block: model.NewBlock("a", model.NewShape(50, 50, 50), 1, true, false), Corner: model.NewCorner(0, 0, 0)},
				{Block: model.NewBlock("b", model.NewShape(50, 50, 50), 1, true, false), Corner: model.NewCorner(0, 0, 50)},
			},
		}},
	}
	require.NoError(t, ValidateSupport(resp))
}

func TestValidateSupport_FloatingBlockFails(t *testing.T) {
	container := model.NewContainer("c1", model.NewShape(100, 100, 100), 1000)
	resp := model.Response{
		Packings: []model.ContainerPacking{{
			Container: container,
			Placements: []model.Placement{
				{Block: model.NewBlock("a", model.NewShape(50, 50, 50), 1, true, false), Corner: model.NewCorner(0, 0, 50)},
			},
		}},
	}
	assert.Error(t, ValidateSupport(resp))
}
