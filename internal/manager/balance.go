package manager

import (
	"github.com/cargopack/loadplanner/internal/axle"
	dec "github.com/cargopack/loadplanner/internal/decimal"
	"github.com/cargopack/loadplanner/internal/geom"
	"github.com/cargopack/loadplanner/internal/model"
)

// maxBalancePasses bounds the mirror-swap search so balancing always
// terminates; in practice two or three passes resolve typical skew.
const maxBalancePasses = 5

// balanceTransverse reduces a vehicle's left/right load skew by mirroring
// placements across the unit's centerline (Y -> Width - Y - DY) when doing
// so lowers the absolute cargo moment about the centerline (transverseSkew),
// without moving anything in
// X or Z and without violating containment (spec.md §4.7 "transverse
// balancing"). It only runs for vehicle units in a safe packing mode;
// containers and density mode are left as placed.
func balanceTransverse(unit model.TransportUnit, mode model.PackingMode, placements []model.Placement) []model.Placement {
	if !unit.IsVehicle() || !mode.IsSafe() {
		return placements
	}

	out := append([]model.Placement(nil), placements...)
	for pass := 0; pass < maxBalancePasses; pass++ {
		moment := transverseSkew(unit, out)
		if dec.EpsEqual(moment, dec.Zero) {
			break
		}

		bestIdx := -1
		bestMoment := moment
		for i, p := range out {
			mirroredY := dec.Sub(dec.Sub(unit.Width, p.Pos.Y), p.Dims.DY)
			if dec.Cmp(mirroredY, dec.Zero) < 0 {
				continue
			}
			trial := append([]model.Placement(nil), out...)
			trial[i].Pos.Y = mirroredY
			if overlapsAny(trial, i) {
				continue
			}
			m := transverseSkew(unit, trial)
			if dec.ToFloat64(absD(m)) < dec.ToFloat64(absD(bestMoment)) {
				bestMoment = m
				bestIdx = i
			}
		}

		if bestIdx < 0 {
			break
		}
		out[bestIdx].Pos.Y = dec.Sub(dec.Sub(unit.Width, out[bestIdx].Pos.Y), out[bestIdx].Dims.DY)
	}
	return out
}

// overlapsAny reports whether placements[i] now collides with any other
// placement, which a mirror swap can introduce when the mirrored Y lands
// the box across a neighbor that was not symmetric about the centerline.
func overlapsAny(placements []model.Placement, i int) bool {
	box := geom.Box{Pos: placements[i].Pos, Dims: placements[i].Dims}
	for j, p := range placements {
		if j == i {
			continue
		}
		if geom.Overlap3D(box, geom.Box{Pos: p.Pos, Dims: p.Dims}) {
			return true
		}
	}
	return false
}

func lateralMoment(placements []model.Placement) dec.D {
	total := dec.Zero
	for _, p := range placements {
		total = dec.Add(total, dec.Mul(p.Weight(), p.Centroid().Y))
	}
	return total
}

// transverseSkew is the cargo's lateral moment about the unit's
// centerline (Width/2): zero when the cargo CG sits on the centerline,
// negative when it leans toward Y=0.
func transverseSkew(unit model.TransportUnit, placements []model.Placement) dec.D {
	total := dec.Zero
	for _, p := range placements {
		total = dec.Add(total, p.Weight())
	}
	half := dec.Div(unit.Width, dec.FromInt(2))
	return dec.Sub(lateralMoment(placements), dec.Mul(total, half))
}

func absD(d dec.D) dec.D {
	if dec.Cmp(d, dec.Zero) < 0 {
		return dec.Sub(dec.Zero, d)
	}
	return d
}

// recompute re-derives a unit's ComplianceReport after balancing has
// possibly changed placements.
func recompute(unit model.TransportUnit, mode model.PackingMode, placements []model.Placement, cargoWeight dec.D) model.ComplianceReport {
	points := axle.PointsFromPlacements(placements)
	state := axle.Compute(unit, mode, points)
	return axle.CheckCompliance(unit, cargoWeight, state)
}
