package engine

import (
	"context"
	"math"
	"math/rand"

	"github.com/cratestack/cratestack/internal/model"
)

// moveKind enumerates the mutations the annealer may apply to a packing state.
type moveKind int

const (
	moveSwap moveKind = iota
	moveRotate
	moveShift
)

// state is the annealer's working representation: a permutation of block
// indices (the order blocks are offered to the placement oracle) plus,
// for bin packing, which container each block is currently assigned to.
// Rotations are tracked directly on the block copies in blocks.
type state struct {
	blocks      []model.Block
	order       []int
	containerOf []int // index into containers; unused (always 0) for strip packing
}

func (s state) clone() state {
	cp := state{
		blocks:      make([]model.Block, len(s.blocks)),
		order:       make([]int, len(s.order)),
		containerOf: make([]int, len(s.containerOf)),
	}
	for i, b := range s.blocks {
		cp.blocks[i] = b.Copy()
	}
	copy(cp.order, s.order)
	copy(cp.containerOf, s.containerOf)
	return cp
}

// Annealer runs the simulated-annealing search (C5) over packing orders,
// rotations, and (for bin packing) container assignment.
type Annealer struct {
	containers     []model.Container
	settings       model.SolveSettings
	includeCeiling bool
	rng            *rand.Rand

	current  state
	opt      state
	optScore float64
}

// NewAnnealer seeds an annealer from an initial assignment (BlockContainer
// may be nil for strip packing, in which case every block goes to the
// single container at index 0).
func NewAnnealer(blocks []model.Block, containers []model.Container, blockContainer []int, settings model.SolveSettings) *Annealer {
	n := len(blocks)
	st := state{
		blocks:      make([]model.Block, n),
		order:       SortedOrder(blocks), // §4.6: unstackable-first, volume-desc, for both SP3D and BP3D
		containerOf: make([]int, n),
	}
	for i, b := range blocks {
		st.blocks[i] = b.Copy()
		if blockContainer != nil {
			st.containerOf[i] = blockContainer[i]
		}
	}
	a := &Annealer{
		containers:     containers,
		settings:       settings,
		includeCeiling: settings.Mode == model.ModeBin,
		rng:            rand.New(rand.NewSource(settings.Seed)),
		current:        st,
	}
	a.opt = st.clone()
	a.optScore = a.score(a.current)
	return a
}

// evaluate computes the per-container packings and unpacked blocks for a
// state by replaying its order/assignment/rotations through the placement
// oracle from scratch.
func (a *Annealer) evaluate(s state) ([]model.ContainerPacking, []model.Block) {
	packings := make([]model.ContainerPacking, len(a.containers))
	occupants := make([][]Occupant, len(a.containers))
	for ci, c := range a.containers {
		occupants[ci] = Walls(c.Shape, a.includeCeiling)
		packings[ci].Container = c
	}
	var unpacked []model.Block
	for _, bi := range s.order {
		blk := s.blocks[bi]
		ci := s.containerOf[bi]
		if ci < 0 || ci >= len(a.containers) {
			unpacked = append(unpacked, blk)
			continue
		}
		ceilIdx := CeilingIndex(occupants[ci], a.includeCeiling)
		corner, err := Place(occupants[ci], blk.Shape, blk.Stackable, ceilIdx)
		if err != nil {
			unpacked = append(unpacked, blk)
			continue
		}
		placement := model.Placement{Block: blk, Corner: corner, ContainerID: a.containers[ci].ID}
		packings[ci].Placements = append(packings[ci].Placements, placement)
		occupants[ci] = append(occupants[ci], Occupant{Corner: corner, Shape: blk.Shape, Stackable: blk.Stackable})
	}
	return packings, unpacked
}

func (a *Annealer) score(s state) float64 {
	packings, unpacked := a.evaluate(s)
	if a.settings.Mode == model.ModeBin {
		return BinScore(packings, len(unpacked), a.settings)
	}
	return StripScore(packings[0], len(unpacked), a.settings)
}

// Response builds the public Response for the annealer's current best (opt) state.
func (a *Annealer) Response() model.Response {
	packings, unpacked := a.evaluate(a.opt)
	return model.Response{
		Mode:           a.settings.Mode,
		Packings:       packings,
		UnpackedBlocks: unpacked,
		Score:          a.optScore,
	}
}

// OptScore returns the best score found so far.
func (a *Annealer) OptScore() float64 { return a.optScore }

// Run executes up to maxIter annealing iterations, invoking progress every
// 10 iterations if non-nil, and returns early if ctx is cancelled or (for
// strip packing) the optimum reaches the container's own height.
func (a *Annealer) Run(ctx context.Context, progress func(iter int, optScore float64)) {
	for iter := 0; iter < a.settings.MaxIter; iter++ {
		select {
		case <-ctx.Done():
			return
		default:
		}
		a.step()
		if progress != nil && iter%10 == 0 {
			progress(iter, a.optScore)
		}
		if a.settings.Mode == model.ModeStrip && len(a.containers) > 0 &&
			a.optScore <= a.containers[0].Shape[2] {
			return
		}
	}
}

// step applies one randomly chosen move, evaluates it, and accepts or
// rejects it via the Metropolis criterion, updating the best-known state
// on acceptance if it is at least as good.
func (a *Annealer) step() {
	candidate := a.current.clone()
	kind := a.pickMove()
	switch kind {
	case moveSwap:
		a.applySwap(&candidate)
	case moveRotate:
		a.applyRotate(&candidate)
	case moveShift:
		a.applyShift(&candidate)
	}

	currentScore := a.score(a.current)
	candidateScore := a.score(candidate)
	delta := candidateScore - currentScore

	accept := false
	if a.settings.Temperature == 0 {
		accept = delta <= 0
	} else {
		u := a.rng.Float64()
		if u < 1e-9 {
			u = 1e-9
		}
		if u > 1-1e-9 {
			u = 1 - 1e-9
		}
		accept = math.Log(u)*a.settings.Temperature <= -delta
	}

	if !accept {
		return
	}
	a.current = candidate
	if candidateScore <= a.optScore {
		a.opt = candidate.clone()
		a.optScore = candidateScore
	}
}

func (a *Annealer) pickMove() moveKind {
	allowRotate := a.settings.AllowRotate
	isBin := a.settings.Mode == model.ModeBin
	switch {
	case isBin:
		switch a.rng.Intn(3) {
		case 0:
			return moveSwap
		case 1:
			if allowRotate {
				return moveRotate
			}
			return moveSwap
		default:
			return moveShift
		}
	case allowRotate:
		if a.rng.Float64() < 0.5 {
			return moveSwap
		}
		return moveRotate
	default:
		return moveSwap
	}
}

func (a *Annealer) applySwap(s *state) {
	n := len(s.order)
	if n == 0 {
		return
	}
	i := a.rng.Intn(n)
	j := a.rng.Intn(n)
	s.order[i], s.order[j] = s.order[j], s.order[i]
}

func (a *Annealer) applyRotate(s *state) {
	if len(s.blocks) == 0 {
		return
	}
	bi := a.rng.Intn(len(s.blocks))
	axis := s.blocks[bi].ChooseRotateAxis(a.rng)
	s.blocks[bi] = s.blocks[bi].Rotate(axis)
}

func (a *Annealer) applyShift(s *state) {
	n := len(s.containerOf)
	if n == 0 || len(a.containers) < 2 {
		return
	}
	bi := a.rng.Intn(n)
	target := a.rng.Intn(len(a.containers) - 1)
	if target >= s.containerOf[bi] {
		target++
	}
	s.containerOf[bi] = target
}
