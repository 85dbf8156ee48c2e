package engine

import (
	"fmt"

	"github.com/katalvlaran/lvlath/core"
	"github.com/katalvlaran/lvlath/dfs"

	"github.com/cratestack/cratestack/internal/model"
)

const floorVertex = "__floor__"

// restsOn reports whether placement p physically rests on placement on —
// on's top face touches p's bottom face (within tolerance) and their
// footprints overlap in x/y.
func restsOn(p, on model.Placement) bool {
	const eps = 1e-6
	onTop := on.Corner[2] + on.Block.Shape[2]
	if p.Corner[2]-onTop > eps || onTop-p.Corner[2] > eps {
		return false
	}
	for i := 0; i < 2; i++ {
		pLo, pHi := p.Corner[i], p.Corner[i]+p.Block.Shape[i]
		oLo, oHi := on.Corner[i], on.Corner[i]+on.Block.Shape[i]
		if pHi <= oLo+eps || oHi <= pLo+eps {
			return false
		}
	}
	return true
}

// ValidateSupport builds the I3 support relation (block rests on floor or
// another block) as a directed graph — every block vertex points to what
// it rests on, with a virtual floor vertex as the ultimate root — and
// checks it is acyclic and every block reaches the floor. A cycle would
// mean two blocks are each propping the other up in mid-air, which the
// placement oracle's non-decreasing-z sweep should never produce; this is
// a regression check, not a correctness requirement the oracle needs help
// enforcing.
func ValidateSupport(resp model.Response) error {
	for _, packing := range resp.Packings {
		if err := validateContainerSupport(packing); err != nil {
			return fmt.Errorf("container %s: %w", packing.Container.Name, err)
		}
	}
	return nil
}

func validateContainerSupport(packing model.ContainerPacking) error {
	if len(packing.Placements) == 0 {
		return nil
	}
	g := core.NewGraph(core.WithDirected(true))
	if err := g.AddVertex(floorVertex); err != nil {
		return err
	}
	for i := range packing.Placements {
		if err := g.AddVertex(vertexName(i)); err != nil {
			return err
		}
	}
	for i, p := range packing.Placements {
		if p.Corner[2] <= 1e-6 {
			if _, err := g.AddEdge(vertexName(i), floorVertex, 1); err != nil {
				return err
			}
			continue
		}
		supported := false
		for j, other := range packing.Placements {
			if i == j {
				continue
			}
			if restsOn(p, other) {
				if _, err := g.AddEdge(vertexName(i), vertexName(j), 1); err != nil {
					return err
				}
				supported = true
			}
		}
		if !supported {
			return fmt.Errorf("block %q floats with no support", p.Block.Name)
		}
	}

	if hasCycle, cycles, err := dfs.DetectCycles(g); err != nil {
		return err
	} else if hasCycle {
		return fmt.Errorf("support relation has a cycle: %v", cycles)
	}
	if _, err := dfs.TopologicalSort(g); err != nil {
		return fmt.Errorf("support relation is not a DAG: %w", err)
	}
	return nil
}

func vertexName(i int) string { return fmt.Sprintf("block-%d", i) }
