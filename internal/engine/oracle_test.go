package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cratestack/cratestack/internal/model"
)

func TestPlace_ExactFitSingleBlock(t *testing.T) {
	container := model.NewShape(100, 100, 100)
	walls := Walls(container, false)
	corner, err := Place(walls, model.NewShape(100, 100, 100), true, -1)
	require.NoError(t, err)
	assert.Equal(t, model.NewCorner(0, 0, 0), corner)
}

func TestPlace_TwoCubesSideBySide(t *testing.T) {
	container := model.NewShape(200, 100, 100)
	walls := Walls(container, false)

	first, err := Place(walls, model.NewShape(100, 100, 100), true, -1)
	require.NoError(t, err)
	assert.Equal(t, model.NewCorner(0, 0, 0), first)

	occupants := append(walls, Occupant{Corner: first, Shape: model.NewShape(100, 100, 100), Stackable: true})
	second, err := Place(occupants, model.NewShape(100, 100, 100), true, -1)
	require.NoError(t, err)
	assert.Equal(t, model.NewCorner(100, 0, 0), second)
}

func TestPlace_BlockTooTallIsUnpacked(t *testing.T) {
	container := model.NewShape(100, 100, 50)
	walls := Walls(container, true)
	ceilIdx := CeilingIndex(walls, true)
	_, err := Place(walls, model.NewShape(100, 100, 100), true, ceilIdx)
	assert.Error(t, err)
}

func TestPlace_UnstackableBlockBlocksStackingAbove(t *testing.T) {
	container := model.NewShape(100, 100, 200)
	walls := Walls(container, false)

	a, err := Place(walls, model.NewShape(100, 100, 50), false, -1)
	require.NoError(t, err)

	occupants := append(walls, Occupant{Corner: a, Shape: model.NewShape(100, 100, 50), Stackable: false})
	// B would have to stack directly on top of the unstackable A to fit at
	// all in this footprint; since A is not stackable, B must go elsewhere —
	// there is no elsewhere in a 100x100 footprint, so this must fail.
	_, err = Place(occupants, model.NewShape(100, 100, 50), true, -1)
	assert.Error(t, err)
}

func TestPlace_RotateUnlocksFit(t *testing.T) {
	container := model.NewShape(100, 50, 100)
	walls := Walls(container, false)
	_, err := Place(walls, model.NewShape(50, 100, 50), true, -1)
	assert.Error(t, err, "unrotated block is too wide for the container")

	rotated := model.RotateShape(model.NewShape(50, 100, 50), model.AxisHeight)
	corner, err := Place(walls, rotated, true, -1)
	require.NoError(t, err)
	assert.Equal(t, model.NewCorner(0, 0, 0), corner)
}
