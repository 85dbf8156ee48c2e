package model

import (
	"math/rand"

	"github.com/google/uuid"
)

// Block is a single cuboid cargo item to be packed.
type Block struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Shape         Shape   `json:"shape"` // current (possibly rotated) depth/width/height
	Weight        float64 `json:"weight"`
	Stackable     bool    `json:"stackable"`       // other blocks may rest on top of this one
	RightSideUp   bool    `json:"right_side_up"`   // only rotation about the vertical (height) axis is allowed
	rotatableAxes []Axis
}

// NewBlock constructs a Block, deriving its allowed rotation axes from rightSideUp:
// right-side-up blocks may only rotate about the height axis; otherwise all three.
func NewBlock(name string, shape Shape, weight float64, stackable, rightSideUp bool) Block {
	b := Block{
		ID:          uuid.New().String()[:8],
		Name:        name,
		Shape:       shape,
		Weight:      weight,
		Stackable:   stackable,
		RightSideUp: rightSideUp,
	}
	b.rotatableAxes = rotatableAxes(rightSideUp)
	return b
}

func rotatableAxes(rightSideUp bool) []Axis {
	if rightSideUp {
		return []Axis{AxisHeight}
	}
	return []Axis{AxisDepth, AxisWidth, AxisHeight}
}

// RotatableAxes returns the axes this block may be rotated about.
func (b Block) RotatableAxes() []Axis {
	if b.rotatableAxes == nil {
		return rotatableAxes(b.RightSideUp)
	}
	return b.rotatableAxes
}

// ChooseRotateAxis picks a uniformly random legal rotation axis for this block.
func (b Block) ChooseRotateAxis(rng *rand.Rand) Axis {
	axes := b.RotatableAxes()
	return axes[rng.Intn(len(axes))]
}

// Rotate returns a copy of b rotated about axis. Panics if axis is not legal
// for this block; callers must only use axes from RotatableAxes/ChooseRotateAxis.
func (b Block) Rotate(axis Axis) Block {
	if !b.canRotate(axis) {
		panic("model: illegal rotation axis for right-side-up block")
	}
	b.Shape = RotateShape(b.Shape, axis)
	return b
}

func (b Block) canRotate(axis Axis) bool {
	for _, a := range b.RotatableAxes() {
		if a == axis {
			return true
		}
	}
	return false
}

// Volume returns the block's current volume.
func (b Block) Volume() float64 { return Volume(b.Shape) }

// BaseArea returns the block's current footprint.
func (b Block) BaseArea() float64 { return BaseArea(b.Shape) }

// Copy returns a deep copy of b (Shape is a value type so a plain copy suffices,
// but rotatableAxes is re-derived to avoid accidental slice aliasing).
func (b Block) Copy() Block {
	cp := b
	cp.rotatableAxes = rotatableAxes(b.RightSideUp)
	return cp
}
