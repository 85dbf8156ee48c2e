// Package engine implements the no-fit-polytope placement oracle, the
// scoring function, the MILP-flavored initial assignment, and the
// simulated-annealing search that together solve the strip- and
// bin-packing problems.
package engine

import (
	"errors"
	"sort"

	"github.com/cratestack/cratestack/internal/model"
)

// ErrNoStackablePoint means candidate stable points exist but none respect
// the stackability rule (e.g. the block would have to rest on top of an
// unstackable block).
var ErrNoStackablePoint = errors.New("engine: no stackable point found")

// ErrNoStablePoint means no back-left-bottom-supported position exists at
// all, independent of stackability — the block does not fit.
var ErrNoStablePoint = errors.New("engine: no stable point found")

// Occupant is anything already in the container that a new block's
// placement must not overlap: a wall, or a previously placed block.
type Occupant struct {
	Corner    model.Corner
	Shape     model.Shape
	Stackable bool
}

// Walls builds the virtual wall occupants that bound a container of the
// given shape. Strip packing omits the ceiling wall (height is unbounded
// upward); bin packing includes it so the annealer packs into a closed box.
func Walls(containerShape model.Shape, includeCeiling bool) []Occupant {
	const big = model.Inf
	d, w, h := containerShape[0], containerShape[1], containerShape[2]
	walls := []Occupant{
		{Corner: model.NewCorner(-3*big, -big, -big), Shape: model.NewShape(3*big, 3*big, 3*big)},           // back
		{Corner: model.NewCorner(-big, -3*big, -big), Shape: model.NewShape(3*big, 3*big, 3*big)},            // left
		{Corner: model.NewCorner(-big, -big, -3*big), Shape: model.NewShape(3*big, 3*big, 3*big)},            // floor
		{Corner: model.NewCorner(d, -big, -big), Shape: model.NewShape(3*big, 3*big, 3*big)},                 // front
		{Corner: model.NewCorner(-big, w, -big), Shape: model.NewShape(3*big, 3*big, 3*big)},                 // right
	}
	for i := range walls {
		walls[i].Stackable = true
	}
	if includeCeiling {
		walls = append(walls, Occupant{
			Corner:    model.NewCorner(-big, -big, h),
			Shape:     model.NewShape(3*big, 3*big, 3*big),
			Stackable: true,
		})
	}
	return walls
}

// CeilingIndex returns the index of the ceiling occupant within a slice
// built by Walls(shape, true); it is always the last wall.
func CeilingIndex(occupants []Occupant, includeCeiling bool) int {
	if !includeCeiling {
		return -1
	}
	return 5
}

type axisEvent struct {
	value   float64
	occIdx  int
	closing bool
}

// axisOrdinals sorts the open/close events for one axis and returns, per
// occupant, its opening and closing ordinal index (0..2n-1) plus the
// sorted coordinate value at each ordinal, for reconstructing a real
// coordinate from a winning grid index.
func axisOrdinals(openVals, closeVals []float64) (openIdx, closeIdx []int, coords []float64) {
	n := len(openVals)
	events := make([]axisEvent, 0, 2*n)
	for i := 0; i < n; i++ {
		events = append(events, axisEvent{value: openVals[i], occIdx: i, closing: false})
		events = append(events, axisEvent{value: closeVals[i], occIdx: i, closing: true})
	}
	sort.SliceStable(events, func(i, j int) bool {
		if events[i].value != events[j].value {
			return events[i].value < events[j].value
		}
		// Closing events go first at equal coordinates so that touching
		// (face-sharing) NFP intervals leave a free slab between them.
		return events[i].closing && !events[j].closing
	})
	openIdx = make([]int, n)
	closeIdx = make([]int, n)
	coords = make([]float64, len(events))
	for pos, ev := range events {
		coords[pos] = ev.value
		if ev.closing {
			closeIdx[ev.occIdx] = pos
		} else {
			openIdx[ev.occIdx] = pos
		}
	}
	return
}

// overlapGrid builds the (2n)^3 overlap-count grid via 8-corner
// inclusion-exclusion deltas followed by a 3-axis cumulative prefix sum.
func overlapGrid(n int, xOpen, xClose, yOpen, yClose, zOpen, zClose []int) []int {
	size := 2 * n
	total := size * size * size
	grid := make([]int, total)
	idx := func(a, b, c int) int { return (a*size+b)*size + c }
	add := func(a, b, c, v int) {
		if a < size && b < size && c < size {
			grid[idx(a, b, c)] += v
		}
	}
	for i := 0; i < n; i++ {
		a0, a1 := xOpen[i], xClose[i]
		b0, b1 := yOpen[i], yClose[i]
		c0, c1 := zOpen[i], zClose[i]
		add(a0, b0, c0, 1)
		add(a1, b0, c0, -1)
		add(a0, b1, c0, -1)
		add(a0, b0, c1, -1)
		add(a1, b1, c0, 1)
		add(a1, b0, c1, 1)
		add(a0, b1, c1, 1)
		add(a1, b1, c1, -1)
	}
	// cumulative sum along x, then y, then z
	for b := 0; b < size; b++ {
		for c := 0; c < size; c++ {
			for a := 1; a < size; a++ {
				grid[idx(a, b, c)] += grid[idx(a-1, b, c)]
			}
		}
	}
	for a := 0; a < size; a++ {
		for c := 0; c < size; c++ {
			for b := 1; b < size; b++ {
				grid[idx(a, b, c)] += grid[idx(a, b-1, c)]
			}
		}
	}
	for a := 0; a < size; a++ {
		for b := 0; b < size; b++ {
			for c := 1; c < size; c++ {
				grid[idx(a, b, c)] += grid[idx(a, b, c-1)]
			}
		}
	}
	return grid
}

type stablePoint struct{ a, b, c int }

func findStablePoints(n int, grid []int) []stablePoint {
	size := 2 * n
	idx := func(a, b, c int) int { return (a*size+b)*size + c }
	var out []stablePoint
	for a := 1; a < size; a++ {
		for b := 1; b < size; b++ {
			for c := 1; c < size; c++ {
				if grid[idx(a, b, c)] == 0 &&
					grid[idx(a-1, b, c)] > 0 &&
					grid[idx(a, b-1, c)] > 0 &&
					grid[idx(a, b, c-1)] > 0 {
					out = append(out, stablePoint{a, b, c})
				}
			}
		}
	}
	return out
}

// Place runs the no-fit-polytope sweep for newShape against occupants
// (walls plus already-placed blocks) and returns the back-left-bottom
// stable corner at which it may be placed. ceilIdx is the index of the
// ceiling occupant within occupants, or -1 if there is none (strip
// packing). newStackable is whether the new block itself may have
// something placed on top of it; when it is false, the stackability
// rewrite below extends every occupant except the ceiling down to the
// bottom of the grid, so the new block cannot be placed beneath an
// existing occupant.
func Place(occupants []Occupant, newShape model.Shape, newStackable bool, ceilIdx int) (model.Corner, error) {
	n := len(occupants)
	if n == 0 {
		return model.NewCorner(0, 0, 0), nil
	}

	openVals := [3][]float64{make([]float64, n), make([]float64, n), make([]float64, n)}
	closeVals := [3][]float64{make([]float64, n), make([]float64, n), make([]float64, n)}
	for i, occ := range occupants {
		nfpCorner := occ.Corner.Sub(newShape)
		nfpShape := occ.Shape.Add(newShape)
		for axis := 0; axis < 3; axis++ {
			openVals[axis][i] = nfpCorner[axis]
			closeVals[axis][i] = nfpCorner[axis] + nfpShape[axis]
		}
	}

	xOpenIdx, xCloseIdx, xCoords := axisOrdinals(openVals[0], closeVals[0])
	yOpenIdx, yCloseIdx, yCoords := axisOrdinals(openVals[1], closeVals[1])
	zOpenIdx, zCloseIdx, zCoords := axisOrdinals(openVals[2], closeVals[2])

	size := 2 * n

	// Unconstrained grid: ignores stackability, used only to distinguish
	// "nothing fits at all" from "something fits but violates stackability".
	rawGrid := overlapGrid(n, xOpenIdx, xCloseIdx, yOpenIdx, yCloseIdx, zOpenIdx, zCloseIdx)
	rawPoints := findStablePoints(n, rawGrid)

	// Constrained grid: apply the stackability rewrite to the z ordinals.
	zOpenAdj := make([]int, n)
	zCloseAdj := make([]int, n)
	copy(zOpenAdj, zOpenIdx)
	copy(zCloseAdj, zCloseIdx)
	for i := range occupants {
		if !newStackable && i != ceilIdx {
			zOpenAdj[i] = 0
		}
		if !occupants[i].Stackable {
			zCloseAdj[i] = size - 1
		}
	}
	grid := overlapGrid(n, xOpenIdx, xCloseIdx, yOpenIdx, yCloseIdx, zOpenAdj, zCloseAdj)
	points := findStablePoints(n, grid)

	if len(points) == 0 {
		if len(rawPoints) > 0 {
			return model.InfCorner(), ErrNoStackablePoint
		}
		return model.InfCorner(), ErrNoStablePoint
	}

	sort.Slice(points, func(i, j int) bool {
		pi, pj := points[i], points[j]
		if pi.a != pj.a {
			return pi.a < pj.a
		}
		if pi.c != pj.c {
			return pi.c < pj.c
		}
		return pi.b < pj.b
	})
	best := points[0]
	return model.NewCorner(xCoords[best.a], yCoords[best.b], zCoords[best.c]), nil
}
