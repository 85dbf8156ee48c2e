package engine

import (
	"context"
	"fmt"

	"github.com/cratestack/cratestack/internal/model"
)

// Solver is the façade (C6) tying the initial assignment and the annealer
// together behind a single Solve entrypoint.
type Solver struct {
	request model.Request
}

// New constructs a Solver for the given request.
func New(request model.Request) *Solver {
	return &Solver{request: request}
}

// Progress is invoked periodically during Solve with the current best score.
type Progress func(iter int, optScore float64)

// Solve runs the full pipeline: for bin packing, an initial MILP-style
// assignment (C4) followed by annealing (C5) that may still reshuffle
// blocks between containers via Shift moves; for strip packing, annealing
// directly over the single container.
func (s *Solver) Solve(ctx context.Context, progress Progress) (model.Response, error) {
	settings := s.request.Settings
	if len(s.request.Containers) == 0 {
		return model.Response{}, fmt.Errorf("engine: request has no containers")
	}

	var blockContainer []int
	if settings.Mode == model.ModeBin {
		assignment, err := AssignInitial(ctx, s.request.Blocks, s.request.Containers, settings)
		if err != nil {
			return model.Response{}, fmt.Errorf("engine: %w", err)
		}
		blockContainer = assignment.BlockContainer
	} else {
		blockContainer = make([]int, len(s.request.Blocks))
	}

	annealer := NewAnnealer(s.request.Blocks, s.request.Containers, blockContainer, settings)
	annealer.Run(ctx, progress)
	resp := annealer.Response()

	if err := ValidateSupport(resp); err != nil {
		return resp, fmt.Errorf("engine: %w", err)
	}
	return resp, nil
}
