// Package manager orchestrates a full pack: expanding and palletizing raw
// item templates, distributing them across a catalog of transport units
// with a greedy-plus-look-ahead placement strategy, and balancing
// transverse (left/right) axle load on vehicle units before assembling
// the external result (spec.md §4.8, §4.9).
package manager

import (
	"sort"

	dec "github.com/cargopack/loadplanner/internal/decimal"
	"github.com/cargopack/loadplanner/internal/model"
)

// sortItems orders expanded items per the request's packing priority
// (largest volume or heaviest first), with an optional base_then_top
// partition that moves items carrying no stacking restriction to the
// front so later, more constrained items land on top of them rather than
// the reverse (spec.md §4.8 step 3 / §9 open question base_then_top).
func sortItems(items []model.Item, priority model.PackingPriority, baseThenTop bool) []model.Item {
	out := append([]model.Item(nil), items...)
	key := func(it model.Item) dec.D {
		if priority == model.PriorityWeight {
			return it.TotalWeight()
		}
		return footprintVolume(it)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if baseThenTop {
			bi, bj := isGoodBase(out[i]), isGoodBase(out[j])
			if bi != bj {
				return bi
			}
		}
		return dec.Cmp(key(out[i]), key(out[j])) > 0
	})
	return out
}

// footprintVolume uses the item's default orientation volume as its
// pre-placement size key; actual orientation is chosen later by the
// packer.
func footprintVolume(it model.Item) dec.D {
	switch it.Shape {
	case model.ShapeCylinder:
		r := dec.Div(it.Cylinder.D, dec.FromFloat64(2))
		return dec.Mul(dec.Mul(dec.Mul(r, r), dec.FromFloat64(3.14159265358979)), it.Cylinder.H)
	default:
		return model.Triple{DX: it.Box.L, DY: it.Box.W, DZ: it.Box.H}.Volume()
	}
}

// isGoodBase reports whether an item carries no stacking restriction,
// making it a safe choice to place before more constrained items.
func isGoodBase(it model.Item) bool {
	c := it.Constraints
	return dec.IsPosInf(c.MaxStackHeight) && dec.IsPosInf(c.MaxStackLayers) && dec.IsPosInf(c.MaxStackLoad)
}
