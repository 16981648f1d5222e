package axle

import (
	dec "github.com/cargopack/loadplanner/internal/decimal"
	"github.com/cargopack/loadplanner/internal/model"
)

// CargoPoint is a single placement reduced to its weight and centroid, the
// only inputs the load models need.
type CargoPoint struct {
	WeightKg dec.D
	X, Y, Z  dec.D
}

// PointsFromPlacements reduces a placement list to cargo points.
func PointsFromPlacements(placements []model.Placement) []CargoPoint {
	out := make([]CargoPoint, 0, len(placements))
	for _, p := range placements {
		c := p.Centroid()
		out = append(out, CargoPoint{WeightKg: p.Weight(), X: c.X, Y: c.Y, Z: c.Z})
	}
	return out
}

// Beam2D applies the simply-supported lever rule: the vehicle is treated
// as a beam resting on its front-most and rear-most axle, and each cargo
// point's weight splits between the two supports in inverse proportion to
// its distance from each (spec.md §4.6 "2D beam model"). The result is
// added on top of curb axle loads; intermediate axles (if any) receive no
// share from this coarse model, matching the model's stated scope: it is
// the minimal model, used for quick estimates, not the 3D models. A
// single-axle vehicle has no beam to speak of, so every cargo point's full
// weight lands on that one axle.
func Beam2D(unit model.TransportUnit, points []CargoPoint) []dec.D {
	loads := make([]dec.D, len(unit.CurbAxleLoads))
	copy(loads, unit.CurbAxleLoads)
	if len(unit.AxlePositions) == 0 {
		return loads
	}
	if len(unit.AxlePositions) == 1 {
		for _, p := range points {
			loads[0] = dec.Add(loads[0], p.WeightKg)
		}
		return loads
	}

	front := 0
	rear := len(unit.AxlePositions) - 1
	xFront := unit.AxlePositions[front]
	xRear := unit.AxlePositions[rear]
	wheelbase := dec.Sub(xRear, xFront)
	if dec.Cmp(wheelbase, dec.Zero) <= 0 {
		return loads
	}

	for _, p := range points {
		frac := dec.Div(dec.Sub(p.X, xFront), wheelbase)
		frac = dec.Max(dec.Zero, dec.Min(dec.One, frac))
		rearShare := dec.Mul(p.WeightKg, frac)
		frontShare := dec.Sub(p.WeightKg, rearShare)
		loads[front] = dec.Add(loads[front], frontShare)
		loads[rear] = dec.Add(loads[rear], rearShare)
	}
	return loads
}
