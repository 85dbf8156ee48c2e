package engine

import "github.com/cratestack/cratestack/internal/model"

// ScoreBreakdown decomposes a total score back into its tiers, for
// display/debugging — the tiers are scaled far enough apart (P_unpacked ≫
// P_used ≫ 1) that integer-like divmod recovers each term exactly.
type ScoreBreakdown struct {
	UnpackedCount    int
	ContainersUsed   int
	PackingRemainder float64
}

// StripScore computes the SP3D objective: unpacked blocks dominate,
// followed by the packed front-depth (or max top height, depending on
// whether the strip container tracks depth or height as its open
// dimension — CrateStack tracks top height, matching the original
// calc_score_and_corner convention).
func StripScore(packing model.ContainerPacking, unpackedCount int, settings model.SolveSettings) float64 {
	return float64(unpackedCount)*settings.UnpackedPenalty + packing.MaxTopHeight()
}

// BinScore computes the BP3D objective: unpacked blocks dominate,
// containers used is the next tier, and the sum of each used container's
// max top height is the finest-grained tier.
func BinScore(packings []model.ContainerPacking, unpackedCount int, settings model.SolveSettings) float64 {
	var containersUsed int
	var heightSum float64
	for _, p := range packings {
		if len(p.Placements) == 0 {
			continue
		}
		containersUsed++
		heightSum += p.MaxTopHeight()
	}
	return float64(unpackedCount)*settings.UnpackedPenalty +
		float64(containersUsed)*settings.UsedPenalty +
		heightSum
}

// Decompose recovers the unpacked count, containers-used count, and
// leftover packing-quality remainder from a total score, given the same
// settings used to compute it.
func Decompose(score float64, settings model.SolveSettings) ScoreBreakdown {
	unpacked := int(score / settings.UnpackedPenalty)
	rem := score - float64(unpacked)*settings.UnpackedPenalty
	used := int(rem / settings.UsedPenalty)
	rem -= float64(used) * settings.UsedPenalty
	return ScoreBreakdown{UnpackedCount: unpacked, ContainersUsed: used, PackingRemainder: rem}
}
