// Package axle implements the load-distribution physics and regulatory
// compliance checks for vehicle units: how cargo weight and position
// translate into per-axle and per-wheel loads, and whether those loads
// stay inside statutory limits (spec.md §4.6, §4.7).
package axle

import (
	dec "github.com/cargopack/loadplanner/internal/decimal"
	"github.com/cargopack/loadplanner/internal/model"
)

// Regulatory limits in kg. These mirror common EU axle-weight limits and
// are plain exported variables rather than control flow. Nothing in this
// module loads internal/config.EngineConfig.RegulationsOverridePath into
// them; the values below are always the ones in effect.
var (
	SingleAxleLimitKg       = dec.FromFloat64(10000)
	SingleAxleDriveDualKg   = dec.FromFloat64(11500)
	TandemGroupSingleKg     = dec.FromFloat64(16000)
	TandemGroupDualKg       = dec.FromFloat64(19000)
	TridemGroupKg           = dec.FromFloat64(24000)
	// GroupingDistance is the maximum axle-to-axle spacing, in meters, for
	// two adjacent axles to be regulated as a single group rather than
	// individually (the "2.5m rule").
	GroupingDistance = dec.FromFloat64(2.5)
)

// AxleGroup is a run of adjacent axles regulated together.
type AxleGroup struct {
	Indices []int
	LimitKg dec.D
}

// GroupAxles partitions a vehicle's axles, in declared front-to-rear
// order, into regulatory groups: any run of axles each within
// GroupingDistance of its neighbor forms one group (spec.md §4.7).
func GroupAxles(unit model.TransportUnit) []AxleGroup {
	n := len(unit.AxlePositions)
	if n == 0 {
		return nil
	}

	var groups []AxleGroup
	start := 0
	for i := 1; i <= n; i++ {
		broke := i == n
		if !broke {
			gap := dec.Sub(unit.AxlePositions[i], unit.AxlePositions[i-1])
			broke = dec.Cmp(gap, GroupingDistance) > 0
		}
		if broke {
			idx := make([]int, 0, i-start)
			for j := start; j < i; j++ {
				idx = append(idx, j)
			}
			groups = append(groups, AxleGroup{Indices: idx, LimitKg: groupLimit(unit, idx)})
			start = i
		}
	}
	return groups
}

func groupLimit(unit model.TransportUnit, idx []int) dec.D {
	dual := unit.WheelType == model.WheelDual
	switch len(idx) {
	case 1:
		if dual {
			return SingleAxleDriveDualKg
		}
		return SingleAxleLimitKg
	case 2:
		if dual {
			return TandemGroupDualKg
		}
		return TandemGroupSingleKg
	default:
		return TridemGroupKg
	}
}
