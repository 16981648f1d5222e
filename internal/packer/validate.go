package packer

import (
	"math"

	dec "github.com/cargopack/loadplanner/internal/decimal"
	"github.com/cargopack/loadplanner/internal/geom"
	"github.com/cargopack/loadplanner/internal/model"
)

// candidate is one (position, orientation) option under evaluation.
type candidate struct {
	box       geom.Box
	direct    []int
}

// feasible runs the full invariant set against one candidate box: unit
// containment (I1), non-overlap with committed placements (I2), floor or
// partial support of at least SupportThreshold (I5), and stacking limits
// (I3/I4/I6). Payload (GVW check)
// is the caller's responsibility since it needs the item's weight,
// already known before candidates are generated.
func (up *UnitPacker) feasible(box geom.Box, weight dec.D) (candidate, bool) {
	if !geom.Contains(box, up.Unit.Length, up.Unit.Width, up.Unit.Height) {
		return candidate{}, false
	}
	for _, p := range up.Placements {
		if geom.Overlap3D(boxOf(p), box) {
			return candidate{}, false
		}
	}

	direct := up.supporters(box)
	if dec.Cmp(box.ZMin(), dec.Zero) > 0 {
		// Above the floor: committed placements whose top face meets this
		// base must cover at least SupportThreshold of the footprint (I5).
		below := make([]geom.Box, 0, len(direct))
		for _, i := range direct {
			below = append(below, boxOf(up.Placements[i]))
		}
		frac := geom.SupportFraction(box, below)
		if dec.Cmp(frac, SupportThreshold) < 0 {
			return candidate{}, false
		}
	}

	if !up.stackingOK(box, weight, direct) {
		return candidate{}, false
	}

	return candidate{box: box, direct: direct}, true
}

// TryPlace attempts to place one item instance (already expanded to a
// single piece) into the unit, searching every orientation and candidate
// position and committing the highest-scoring feasible one. It reports
// false with a reason when no feasible placement exists.
func (up *UnitPacker) TryPlace(item model.Item) (bool, model.UnpackedReason) {
	weight := item.TotalWeight()
	if dec.Cmp(weight, up.RemainingCapacity()) > 0 {
		return false, model.ReasonGVWExceeded
	}

	orientations := geom.Orientations(item)
	positions := up.candidatePositions()

	var best *candidate
	var bestOrientation model.Triple
	bestScore := math.Inf(-1)
	anyOrientationFitsUnit := false

	for _, dims := range orientations {
		if dec.Cmp(dims.DX, up.Unit.Length) > 0 || dec.Cmp(dims.DY, up.Unit.Width) > 0 || dec.Cmp(dims.DZ, up.Unit.Height) > 0 {
			continue
		}
		anyOrientationFitsUnit = true
		for _, pos := range positions {
			box := geom.Box{Pos: pos, Dims: dims}
			cand, ok := up.feasible(box, weight)
			if !ok {
				continue
			}
			score, admissible := up.score(item, cand, weight)
			if !admissible {
				continue
			}
			if score > bestScore {
				bestScore = score
				c := cand
				best = &c
				bestOrientation = dims
			}
		}
	}

	if !anyOrientationFitsUnit {
		return false, model.ReasonItemOversized
	}
	if best == nil {
		return false, model.ReasonPlacementFailed
	}

	up.commit(item, *best, bestOrientation, weight)
	return true, ""
}
