package engine

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/cratestack/cratestack/internal/model"
)

// ErrInitialAssignmentFailed is returned when there are no containers, or
// when the first-fit-decreasing pass cannot put some block into any
// container within the capacity ratios. A feasible assignment that
// first-fit-decreasing misses is not searched for.
var ErrInitialAssignmentFailed = errors.New("engine: initial assignment failed")

// Assignment maps each block (by index into the original request's Blocks
// slice) to a container (by index into Containers).
type Assignment struct {
	BlockContainer []int // BlockContainer[i] = container index block i is assigned to
	ContainersUsed int
}

// capacityState tracks the running volume/weight/unstackable-footprint
// totals already committed to a container, for feasibility checks.
type capacityState struct {
	volume, weight, unstackableArea float64
	used                            bool
}

func (s capacityState) fits(b model.Block, c model.Container, settings model.SolveSettings) bool {
	vCap := c.Volume() * settings.VolumeCapacityRatio
	wCap := c.WeightCapacity * settings.WeightCapacityRatio
	aCap := c.BaseArea() * settings.AreaCapacityRatio
	if s.volume+b.Volume() > vCap+1e-9 {
		return false
	}
	if s.weight+b.Weight > wCap+1e-9 {
		return false
	}
	if !b.Stackable && s.unstackableArea+b.BaseArea() > aCap+1e-9 {
		return false
	}
	return true
}

func (s capacityState) add(b model.Block) capacityState {
	s.volume += b.Volume()
	s.weight += b.Weight
	if !b.Stackable {
		s.unstackableArea += b.BaseArea()
	}
	s.used = true
	return s
}

// AssignInitial solves the initial-assignment problem: pick a container
// for every block such that the capacity ratios (§4.4) hold for each
// container and the number of containers used is minimized.
//
// The original solver poses this as a boolean MILP (pulp + CBC,
// objective minimize Σ use_j). No MILP/LP solver exists anywhere in the
// example corpus, so CrateStack uses the same capacity constraints and
// objective with a heuristic instead: a first-fit-decreasing construction
// followed by a consolidation local search bounded by the settings'
// wall-clock budget. The result is not guaranteed to use the minimum
// number of containers.
func AssignInitial(ctx context.Context, blocks []model.Block, containers []model.Container, settings model.SolveSettings) (Assignment, error) {
	n := len(blocks)
	m := len(containers)
	if n == 0 {
		return Assignment{BlockContainer: []int{}}, nil
	}
	if m == 0 {
		return Assignment{}, ErrInitialAssignmentFailed
	}

	order := SortedOrder(blocks)

	best, ok := firstFitDecreasing(order, blocks, containers, settings)
	if !ok {
		return Assignment{}, ErrInitialAssignmentFailed
	}
	bestUsed := countUsed(best, m)

	deadline := time.Now().Add(time.Duration(settings.AssignmentTimeoutSeconds) * time.Second)
	improved := improveByConsolidation(ctx, deadline, best, bestUsed, order, blocks, containers, settings)
	return Assignment{BlockContainer: improved, ContainersUsed: countUsed(improved, m)}, nil
}

// SortedOrder computes the initial block permutation the annealer starts
// from: unstackable blocks first (they most constrain placement), then
// descending volume. Both the BP3D initial-assignment heuristic and the
// annealer's starting state use this same order.
func SortedOrder(blocks []model.Block) []int {
	order := make([]int, len(blocks))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(i, j int) bool {
		bi, bj := blocks[order[i]], blocks[order[j]]
		if bi.Stackable != bj.Stackable {
			return !bi.Stackable // unstackable blocks placed first, tightest-fit first
		}
		return bi.Volume() > bj.Volume()
	})
	return order
}

// firstFitDecreasing assigns each block (largest/least-stackable first) to
// the first container it fits in, opening containers in index order.
func firstFitDecreasing(order []int, blocks []model.Block, containers []model.Container, settings model.SolveSettings) ([]int, bool) {
	states := make([]capacityState, len(containers))
	result := make([]int, len(blocks))
	for _, bi := range order {
		placed := false
		for ci := range containers {
			if states[ci].fits(blocks[bi], containers[ci], settings) {
				states[ci] = states[ci].add(blocks[bi])
				result[bi] = ci
				placed = true
				break
			}
		}
		if !placed {
			return nil, false
		}
	}
	return result, true
}

func countUsed(assignment []int, m int) int {
	seen := make([]bool, m)
	for _, c := range assignment {
		seen[c] = true
	}
	n := 0
	for _, v := range seen {
		if v {
			n++
		}
	}
	return n
}

// improveByConsolidation tries, within the time budget, to empty out the
// least-loaded used container by redistributing its blocks into the
// others — a bounded local-search stand-in for the MILP's exact
// minimize-containers-used objective. It stops once the least-loaded
// container cannot be emptied, when a single container remains in use, or
// when ctx or the wall-clock deadline ends; AssignmentGapRel only enters
// that single-container check and does not act as a relative-gap bound.
func improveByConsolidation(ctx context.Context, deadline time.Time, assignment []int, used int, order []int, blocks []model.Block, containers []model.Container, settings model.SolveSettings) []int {
	current := append([]int(nil), assignment...)
	currentUsed := used
	for {
		select {
		case <-ctx.Done():
			return current
		default:
		}
		if time.Now().After(deadline) {
			return current
		}
		victim := leastLoadedContainer(current, blocks, containers)
		if victim < 0 {
			return current
		}
		candidate := tryEmptyContainer(current, victim, order, blocks, containers, settings)
		if candidate == nil {
			return current
		}
		candidateUsed := countUsed(candidate, len(containers))
		if candidateUsed >= currentUsed {
			return current
		}
		current = candidate
		currentUsed = candidateUsed
		gap := float64(currentUsed) * settings.AssignmentGapRel
		if gap < 1 && currentUsed <= 1 {
			return current
		}
	}
}

func leastLoadedContainer(assignment []int, blocks []model.Block, containers []model.Container) int {
	loads := make([]float64, len(containers))
	counts := make([]int, len(containers))
	for bi, ci := range assignment {
		loads[ci] += blocks[bi].Volume()
		counts[ci]++
	}
	best := -1
	var bestLoad float64
	for ci, load := range loads {
		if counts[ci] == 0 {
			continue
		}
		if best == -1 || load < bestLoad {
			best = ci
			bestLoad = load
		}
	}
	return best
}

// tryEmptyContainer attempts to move every block out of container victim
// into the other containers, returning nil if infeasible.
func tryEmptyContainer(assignment []int, victim int, order []int, blocks []model.Block, containers []model.Container, settings model.SolveSettings) []int {
	candidate := append([]int(nil), assignment...)
	states := make([]capacityState, len(containers))
	for bi, ci := range candidate {
		if ci != victim {
			states[ci] = states[ci].add(blocks[bi])
		}
	}
	var toMove []int
	for _, bi := range order {
		if candidate[bi] == victim {
			toMove = append(toMove, bi)
		}
	}
	for _, bi := range toMove {
		placed := false
		for ci := range containers {
			if ci == victim {
				continue
			}
			if states[ci].fits(blocks[bi], containers[ci], settings) {
				states[ci] = states[ci].add(blocks[bi])
				candidate[bi] = ci
				placed = true
				break
			}
		}
		if !placed {
			return nil
		}
	}
	return candidate
}
