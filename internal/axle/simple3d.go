package axle

import (
	"sort"

	dec "github.com/cargopack/loadplanner/internal/decimal"
	"github.com/cargopack/loadplanner/internal/model"
)

// Simple3D generalizes Beam2D to an arbitrary number of axles: each cargo
// point's weight splits, by the lever rule, between its two nearest axles
// (by longitudinal position); a point ahead of the first axle or behind
// the last loads that axle fully (spec.md §4.6 "3D simple model"). It also
// computes the left/right wheel split per axle from each point's lateral
// offset relative to that axle's track width, modeling a simple roll
// moment rather than full suspension dynamics.
func Simple3D(unit model.TransportUnit, points []CargoPoint) ([]dec.D, []model.WheelLoadState) {
	n := len(unit.AxlePositions)
	loads := make([]dec.D, n)
	copy(loads, unit.CurbAxleLoads[:minInt(n, len(unit.CurbAxleLoads))])
	for len(loads) < n {
		loads = append(loads, dec.Zero)
	}

	// lateralMoment[i] accumulates weight*y for the points attributed to
	// axle i, used afterward to compute the per-axle CG offset.
	lateralMoment := make([]dec.D, n)
	lateralWeight := make([]dec.D, n)

	if n == 0 {
		return loads, nil
	}

	positions := unit.AxlePositions

	for _, p := range points {
		i, j, frac := nearestPair(positions, p.X)
		jShare := dec.Mul(p.WeightKg, frac)
		iShare := dec.Sub(p.WeightKg, jShare)

		loads[i] = dec.Add(loads[i], iShare)
		lateralMoment[i] = dec.Add(lateralMoment[i], dec.Mul(iShare, p.Y))
		lateralWeight[i] = dec.Add(lateralWeight[i], iShare)

		if j != i {
			loads[j] = dec.Add(loads[j], jShare)
			lateralMoment[j] = dec.Add(lateralMoment[j], dec.Mul(jShare, p.Y))
			lateralWeight[j] = dec.Add(lateralWeight[j], jShare)
		}
	}

	wheels := make([]model.WheelLoadState, n)
	half := dec.FromFloat64(0.5)
	for i := 0; i < n; i++ {
		track := unit.TrackWidthRear
		if i == 0 {
			track = unit.TrackWidthFront
		}
		var yOffset dec.D
		if dec.Cmp(lateralWeight[i], dec.Zero) != 0 {
			yOffset = dec.Div(lateralMoment[i], lateralWeight[i])
		}
		base := dec.Mul(loads[i], half)
		var transfer dec.D
		if dec.Cmp(track, dec.Zero) > 0 {
			transfer = dec.Mul(loads[i], dec.Div(yOffset, track))
		}
		wheels[i] = model.WheelLoadState{
			AxleIdx: i,
			Left:    dec.Add(base, transfer),
			Right:   dec.Sub(base, transfer),
		}
	}

	return loads, wheels
}

// nearestPair returns the indices of the two axles bracketing x (or the
// single nearest axle repeated, at either end), and the fraction of any
// point load at x that falls to the second (rearward) axle.
func nearestPair(positions []dec.D, x dec.D) (i, j int, frac dec.D) {
	n := len(positions)
	idx := sort.Search(n, func(k int) bool { return dec.Cmp(positions[k], x) >= 0 })

	if idx == 0 {
		return 0, 0, dec.Zero
	}
	if idx == n {
		return n - 1, n - 1, dec.Zero
	}
	lo, hi := idx-1, idx
	span := dec.Sub(positions[hi], positions[lo])
	if dec.Cmp(span, dec.Zero) <= 0 {
		return lo, hi, dec.FromFloat64(0.5)
	}
	f := dec.Div(dec.Sub(x, positions[lo]), span)
	f = dec.Max(dec.Zero, dec.Min(dec.One, f))
	return lo, hi, f
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
