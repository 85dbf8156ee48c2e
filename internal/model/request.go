package model

import (
	"time"

	"github.com/google/uuid"
)

// Request is the solver's input: the blocks to pack and the container(s) to pack them into.
type Request struct {
	Blocks     []Block       `json:"blocks"`
	Containers []Container   `json:"containers"` // exactly one for ModeStrip, one or more for ModeBin
	Settings   SolveSettings `json:"settings"`
}

// Placement records where a block ended up: its resolved (possibly rotated)
// shape, its back/left/bottom corner, and which container it landed in.
type Placement struct {
	Block       Block  `json:"block"`
	Corner      Corner `json:"corner"`
	ContainerID string `json:"container_id"`
}

// ContainerPacking groups the placements that landed in one container.
type ContainerPacking struct {
	Container  Container   `json:"container"`
	Placements []Placement `json:"placements"`
}

// MaxTopHeight returns the highest point (z) reached by any placement, the
// strip-packing optimization target.
func (cp ContainerPacking) MaxTopHeight() float64 {
	var maxZ float64
	for _, p := range cp.Placements {
		top := p.Corner[2] + p.Block.Shape[2]
		if top > maxZ {
			maxZ = top
		}
	}
	return maxZ
}

// MaxFrontDepth returns the deepest point (x) reached by any placement.
func (cp ContainerPacking) MaxFrontDepth() float64 {
	var maxX float64
	for _, p := range cp.Placements {
		front := p.Corner[0] + p.Block.Shape[0]
		if front > maxX {
			maxX = front
		}
	}
	return maxX
}

// UsedVolume sums the volume of every placed block.
func (cp ContainerPacking) UsedVolume() float64 {
	var v float64
	for _, p := range cp.Placements {
		v += p.Block.Volume()
	}
	return v
}

// UsedWeight sums the weight of every placed block.
func (cp ContainerPacking) UsedWeight() float64 {
	var w float64
	for _, p := range cp.Placements {
		w += p.Block.Weight
	}
	return w
}

// Response is the solver's output.
type Response struct {
	Mode           Mode               `json:"mode"`
	Packings       []ContainerPacking `json:"packings"`
	UnpackedBlocks []Block            `json:"unpacked_blocks"`
	Score          float64            `json:"score"`
}

// ContainerRemainder reports the unused capacity headroom of one used
// container relative to its MILP assignment budget — a diagnostic supplement
// the original Python project does not compute directly but which falls out
// naturally from the capacity ratios already tracked by C4.
type ContainerRemainder struct {
	ContainerID      string  `json:"container_id"`
	RemainingVolume  float64 `json:"remaining_volume"`
	RemainingWeight  float64 `json:"remaining_weight"`
	RemainingBaseArea float64 `json:"remaining_base_area"`
}

// Remainders computes a ContainerRemainder for every container that received
// at least one placement.
func (r Response) Remainders(settings SolveSettings) []ContainerRemainder {
	out := make([]ContainerRemainder, 0, len(r.Packings))
	for _, cp := range r.Packings {
		if len(cp.Placements) == 0 {
			continue
		}
		var unstackableArea float64
		for _, p := range cp.Placements {
			if !p.Block.Stackable {
				unstackableArea += p.Block.BaseArea()
			}
		}
		out = append(out, ContainerRemainder{
			ContainerID:       cp.Container.ID,
			RemainingVolume:   cp.Container.Volume()*settings.VolumeCapacityRatio - cp.UsedVolume(),
			RemainingWeight:   cp.Container.WeightCapacity*settings.WeightCapacityRatio - cp.UsedWeight(),
			RemainingBaseArea: cp.Container.BaseArea()*settings.AreaCapacityRatio - unstackableArea,
		})
	}
	return out
}

// Run records one solve invocation for persistence/export (§6.5): the full
// request (including its settings), its creation time, and optionally the
// response it produced.
type Run struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	Request   Request   `json:"request"`
	Response  *Response `json:"response,omitempty"`
}

// NewRun creates a Run with a generated ID for the given request.
func NewRun(req Request) Run {
	return Run{
		ID:        uuid.New().String(),
		CreatedAt: time.Now().UTC(),
		Request:   req,
	}
}
