package packer

import (
	"github.com/cargopack/loadplanner/internal/axle"
	dec "github.com/cargopack/loadplanner/internal/decimal"
	"github.com/cargopack/loadplanner/internal/model"
)

// score ranks a feasible candidate and reports whether it is admissible
// at all. Density mode (or any unit without axles) favors the lowest,
// most back-left position -- packing tight to the floor and walls, the
// same corner-filling bias the teacher's guillotine packer uses. Safe
// modes additionally gate on axle compliance (model.PackingMode.IsSafe's
// "gates placements on axle compliance"): a candidate that would put the
// unit over a regulatory limit is rejected outright, not merely
// deprioritized, and the remaining compliant candidates are ranked by
// the axle-compliance score (spec.md §4.8).
func (up *UnitPacker) score(item model.Item, cand candidate, weight dec.D) (float64, bool) {
	corner := -(dec.ToFloat64(cand.box.ZMin())*1000 + dec.ToFloat64(cand.box.YMin())*10 + dec.ToFloat64(cand.box.XMin()))

	if !up.Mode.IsSafe() || !up.Unit.IsVehicle() {
		return corner, true
	}

	trial := append(append([]model.Placement(nil), up.Placements...), model.Placement{
		Item: item, Pos: cand.box.Pos, Dims: cand.box.Dims,
	})
	points := axle.PointsFromPlacements(trial)
	state := axle.Compute(up.Unit, up.Mode, points)
	cargoWeight := dec.Add(up.CumWeight, weight)
	report := axle.CheckCompliance(up.Unit, cargoWeight, state)
	if !report.IsCompliant {
		return 0, false
	}
	return axle.ComplianceScore(up.Unit, cargoWeight, report)*1e6 + corner, true
}

// commit finalizes a chosen candidate: appends the placement, updates
// cumulative weight, and records the stacking bookkeeping.
func (up *UnitPacker) commit(item model.Item, cand candidate, dims model.Triple, weight dec.D) {
	idx := len(up.Placements)
	up.Placements = append(up.Placements, model.Placement{Item: item, Pos: cand.box.Pos, Dims: dims})
	up.CumWeight = dec.Add(up.CumWeight, weight)
	up.recordStacking(idx, cand.box, weight, cand.direct)
}
