package model

// Mode selects which problem variant a request solves.
type Mode string

const (
	ModeStrip Mode = "strip" // SP3D: one container, minimize packed height
	ModeBin   Mode = "bin"   // BP3D: many containers, minimize containers used then packing quality
)

// Score constants, confirmed against the original solver's
// BLOCK_UNSTACKED_PENALTY / CONTAINER_USED_PENALTY magic numbers.
const (
	DefaultUnpackedPenalty = 1e10
	DefaultUsedPenalty     = 1e5
)

// Capacity ratios bound how much of a container's volume/weight/footprint the
// initial assignment MILP (C4) may allocate, leaving headroom for packing
// inefficiency. Confirmed against the original solver's VOLUME_CAPACITY_RATIO /
// WEIGHT_CAPACITY_RATIO / AREA_CAPACITY_RATIO.
const (
	DefaultVolumeCapacityRatio = 0.7
	DefaultWeightCapacityRatio = 1.0
	DefaultAreaCapacityRatio   = 1.0
)

// SolveSettings bundles every tunable the solver needs.
type SolveSettings struct {
	Mode        Mode    `json:"mode"`
	AllowRotate bool    `json:"allow_rotate"`
	MaxIter     int     `json:"max_iter"`
	Temperature float64 `json:"temperature"` // 0 = greedy hill-climb
	Seed        int64   `json:"seed"`

	VolumeCapacityRatio float64 `json:"volume_capacity_ratio"`
	WeightCapacityRatio float64 `json:"weight_capacity_ratio"`
	AreaCapacityRatio   float64 `json:"area_capacity_ratio"`

	UnpackedPenalty float64 `json:"unpacked_penalty"`
	UsedPenalty     float64 `json:"used_penalty"`

	// AssignmentTimeout bounds the initial-assignment MILP wall clock, in seconds.
	AssignmentTimeoutSeconds int     `json:"assignment_timeout_seconds"`
	AssignmentGapRel         float64 `json:"assignment_gap_rel"`
}

// DefaultSettings returns the solver's default tunables.
func DefaultSettings() SolveSettings {
	return SolveSettings{
		Mode:                     ModeStrip,
		AllowRotate:              true,
		MaxIter:                  10000,
		Temperature:              0.0,
		Seed:                     1,
		VolumeCapacityRatio:      DefaultVolumeCapacityRatio,
		WeightCapacityRatio:      DefaultWeightCapacityRatio,
		AreaCapacityRatio:        DefaultAreaCapacityRatio,
		UnpackedPenalty:          DefaultUnpackedPenalty,
		UsedPenalty:              DefaultUsedPenalty,
		AssignmentTimeoutSeconds: 30,
		AssignmentGapRel:         0.01,
	}
}
