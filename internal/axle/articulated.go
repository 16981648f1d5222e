package axle

import (
	dec "github.com/cargopack/loadplanner/internal/decimal"
	"github.com/cargopack/loadplanner/internal/model"
)

// Articulated3D models a tractor-trailer: cargo sits on the trailer bed,
// whose own "beam" is supported at the kingpin (at SaddlePositionX minus
// KingpinSetback) and at the centroid of the trailer's axle group. Each
// cargo point splits between the two supports by the lever rule; the
// axle-group share is passed to Simple3D, which returns the per-axle and
// wheel loads (spec.md §4.6 "3D articulated model" / "kingpin force
// transfer").
//
// Every entry of unit.AxlePositions/CurbAxleLoads is treated as a trailer
// axle. The kingpin reaction is not distributed over tractor axles: the
// third return value is TractorCurbWeight plus the summed kingpin load,
// as one figure.
func Articulated3D(unit model.TransportUnit, points []CargoPoint) ([]dec.D, []model.WheelLoadState, dec.D) {
	kingpinX := dec.Sub(unit.SaddlePositionX, unit.KingpinSetback)

	trailerAxlePositions := unit.AxlePositions
	n := len(trailerAxlePositions)
	if n == 0 {
		return nil, nil, unit.TractorCurbWeight
	}

	// Trailer is a beam supported at the kingpin (front) and at the
	// midpoint of its own axle group (rear); cargo ahead of the kingpin
	// cannot occur in a valid placement (items are confined to the
	// trailer bed), so every point's frac lands between kingpin and the
	// trailer axle centroid.
	trailerAxleCentroid := dec.Zero
	for _, x := range trailerAxlePositions {
		trailerAxleCentroid = dec.Add(trailerAxleCentroid, x)
	}
	trailerAxleCentroid = dec.Div(trailerAxleCentroid, dec.FromInt(n))

	span := dec.Sub(trailerAxleCentroid, kingpinX)

	kingpinLoad := dec.Zero
	trailerPoints := make([]CargoPoint, 0, len(points))
	for _, p := range points {
		frac := dec.Zero
		if dec.Cmp(span, dec.Zero) > 0 {
			frac = dec.Div(dec.Sub(p.X, kingpinX), span)
			frac = dec.Max(dec.Zero, dec.Min(dec.One, frac))
		}
		kingpinShare := dec.Sub(p.WeightKg, dec.Mul(p.WeightKg, frac))
		kingpinLoad = dec.Add(kingpinLoad, kingpinShare)
		trailerPoints = append(trailerPoints, CargoPoint{
			WeightKg: dec.Sub(p.WeightKg, kingpinShare),
			X:        p.X, Y: p.Y, Z: p.Z,
		})
	}

	trailerUnit := unit
	trailerLoads, wheels := Simple3D(trailerUnit, trailerPoints)

	tractorRearLoad := dec.Add(unit.TractorCurbWeight, kingpinLoad)
	return trailerLoads, wheels, tractorRearLoad
}
