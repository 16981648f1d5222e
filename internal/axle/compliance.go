package axle

import (
	"gonum.org/v1/gonum/stat"

	dec "github.com/cargopack/loadplanner/internal/decimal"
	"github.com/cargopack/loadplanner/internal/model"
)

// Compute runs the load model selected by mode and returns the decimal
// AxleState the caller rounds into a ComplianceReport.
func Compute(unit model.TransportUnit, mode model.PackingMode, points []CargoPoint) model.AxleState {
	var loads []dec.D
	var wheels []model.WheelLoadState

	switch mode {
	case model.PackingSafe3DArticulated:
		loads, wheels, _ = Articulated3D(unit, points)
	case model.PackingSafe3DSimple:
		loads, wheels = Simple3D(unit, points)
	default:
		loads = Beam2D(unit, points)
	}

	return model.AxleState{
		PerAxleLoad: loads,
		CGCargo:     cargoCG(points),
		WheelLoads:  wheels,
	}
}

func cargoCG(points []CargoPoint) model.Position {
	totalW := dec.Zero
	mx, my, mz := dec.Zero, dec.Zero, dec.Zero
	for _, p := range points {
		totalW = dec.Add(totalW, p.WeightKg)
		mx = dec.Add(mx, dec.Mul(p.WeightKg, p.X))
		my = dec.Add(my, dec.Mul(p.WeightKg, p.Y))
		mz = dec.Add(mz, dec.Mul(p.WeightKg, p.Z))
	}
	if dec.Cmp(totalW, dec.Zero) == 0 {
		return model.Position{}
	}
	return model.Position{X: dec.Div(mx, totalW), Y: dec.Div(my, totalW), Z: dec.Div(mz, totalW)}
}

// CheckCompliance compares a unit's computed axle state against GVW and
// regulatory per-group limits, producing the external ComplianceReport
// (spec.md §4.7, §6).
func CheckCompliance(unit model.TransportUnit, cargoWeight dec.D, state model.AxleState) model.ComplianceReport {
	report := model.ComplianceReport{
		IsCompliant: true,
		Reason:      model.ComplianceOK,
		CGCargoXYZ:  [3]float64{dec.ToFloat64(state.CGCargo.X), dec.ToFloat64(state.CGCargo.Y), dec.ToFloat64(state.CGCargo.Z)},
	}

	totalWeight := dec.Add(unit.CurbWeight(), cargoWeight)
	if dec.Cmp(totalWeight, unit.MaxWeight) > 0 {
		report.IsCompliant = false
		report.Reason = model.ComplianceGVWExceeded
	}

	groups := GroupAxles(unit)
	perAxleLimit := make([]dec.D, len(state.PerAxleLoad))
	for _, g := range groups {
		groupLoad := dec.Zero
		for _, idx := range g.Indices {
			if idx < len(state.PerAxleLoad) {
				groupLoad = dec.Add(groupLoad, state.PerAxleLoad[idx])
			}
		}
		perGroupAxleLimit := dec.Div(g.LimitKg, dec.FromInt(len(g.Indices)))
		exceeded := dec.Cmp(groupLoad, g.LimitKg) > 0
		for _, idx := range g.Indices {
			if idx < len(perAxleLimit) {
				perAxleLimit[idx] = perGroupAxleLimit
			}
		}
		if exceeded && report.IsCompliant {
			report.Reason = model.ComplianceAxleExceeded
		}
		if exceeded {
			report.IsCompliant = false
		}
	}

	for i, load := range state.PerAxleLoad {
		limit := dec.Zero
		if i < len(perAxleLimit) {
			limit = perAxleLimit[i]
		}
		dev := dec.Sub(load, limit)
		devPct := 0.0
		if dec.Cmp(limit, dec.Zero) != 0 {
			devPct = dec.ToFloat64(dec.Div(dev, limit)) * 100
		}
		report.PerAxle = append(report.PerAxle, model.AxleReport{
			LoadKg:           dec.ToFloat64(load),
			LimitKg:          dec.ToFloat64(limit),
			DeviationKg:      dec.ToFloat64(dev),
			DeviationPercent: devPct,
			Exceeded:         dec.Cmp(load, limit) > 0,
		})
	}

	for _, w := range state.WheelLoads {
		report.WheelLoads = append(report.WheelLoads, model.WheelLoad{
			AxleIdx: w.AxleIdx,
			LeftKg:  dec.ToFloat64(w.Left),
			RightKg: dec.ToFloat64(w.Right),
		})
	}

	return report
}

// ComplianceScore rewards high payload utilization and balanced axle
// loading: fill ratio (cargo weight over GVW headroom) minus a penalty for
// the variance of each axle's load-to-limit fraction, computed with
// gonum/stat.Variance. A perfectly level, fully-loaded unit scores near 1;
// a lopsided or lightly loaded one scores lower. UnitPacker's safe modes
// use this to break ties between otherwise-valid placements (spec.md §4.8).
func ComplianceScore(unit model.TransportUnit, cargoWeight dec.D, report model.ComplianceReport) float64 {
	capacity := dec.ToFloat64(unit.MaxWeight) - dec.ToFloat64(unit.CurbWeight())
	if capacity <= 0 {
		return 0
	}
	fillRatio := dec.ToFloat64(cargoWeight) / capacity
	if fillRatio > 1 {
		fillRatio = 1
	}

	if len(report.PerAxle) < 2 {
		return fillRatio
	}

	fractions := make([]float64, len(report.PerAxle))
	for i, a := range report.PerAxle {
		if a.LimitKg > 0 {
			fractions[i] = a.LoadKg / a.LimitKg
		}
	}
	variance := stat.Variance(fractions, nil)

	const balancePenalty = 0.5
	score := fillRatio - balancePenalty*variance
	if score < 0 {
		score = 0
	}
	return score
}
