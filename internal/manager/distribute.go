package manager

import (
	"context"

	"github.com/cargopack/loadplanner/internal/model"
	"github.com/cargopack/loadplanner/internal/packer"
)

// lookaheadWindow bounds how many upcoming items inform one look-ahead
// iteration (spec.md §4.8 step 4), keeping the simulation cost independent
// of total item count.
const lookaheadWindow = 12

// tentative is one candidate configuration tried by the look-ahead
// best-choice loop: either continuing an already-open unit (openIdx >= 0)
// or opening a fresh one from the catalog (openIdx == -1).
type tentative struct {
	packer  *packer.UnitPacker
	openIdx int
	placed  []int // positions within the current window that placed
}

// distribute places every item into one of a growing set of opened units.
// Single-type fleets, or any non-density packing mode, use simple greedy
// first-fit (spec.md §4.8 step 4, first branch). A heterogeneous fleet in
// density mode uses the look-ahead best-choice loop (second branch):
// each iteration tentatively continues every open unit and tentatively
// opens one unit per catalog type, greedily places as many of the next
// lookaheadWindow items as possible into each, and commits whichever
// tentative placed the most.
func distribute(ctx context.Context, items []model.Item, catalog []model.UnitSpec, mode model.PackingMode) ([]*packer.UnitPacker, []model.UnpackedItem) {
	var open []*packer.UnitPacker
	var unpacked []model.UnpackedItem

	remaining := make([]int, len(items))
	for i := range items {
		remaining[i] = i
	}

	heterogeneousDensity := len(catalog) > 1 && mode == model.PackingDensity

	for len(remaining) > 0 {
		if err := ctx.Err(); err != nil {
			for _, idx := range remaining {
				unpacked = append(unpacked, model.UnpackedItem{Item: items[idx].ToSpec(), Reason: model.ReasonPlacementFailed})
			}
			remaining = nil
			break
		}

		if !heterogeneousDensity {
			idx := remaining[0]
			it := items[idx]
			placed := false
			for _, up := range open {
				if ok, _ := up.TryPlace(it); ok {
					placed = true
					break
				}
			}
			if !placed {
				for _, c := range catalog {
					up := packer.NewUnitPacker(c.ToUnit(), mode)
					if ok, _ := up.TryPlace(it); ok {
						open = append(open, up)
						placed = true
						break
					}
				}
			}
			if !placed {
				unpacked = append(unpacked, model.UnpackedItem{Item: it.ToSpec(), Reason: noFitReason(catalog, it, mode)})
			}
			remaining = remaining[1:]
			continue
		}

		end := len(remaining)
		if end > lookaheadWindow {
			end = lookaheadWindow
		}
		window := remaining[:end]

		best := bestTentative(open, catalog, items, window, mode)
		if best == nil || len(best.placed) == 0 {
			idx := remaining[0]
			unpacked = append(unpacked, model.UnpackedItem{Item: items[idx].ToSpec(), Reason: noFitReason(catalog, items[idx], mode)})
			remaining = remaining[1:]
			continue
		}

		if best.openIdx >= 0 {
			open[best.openIdx] = best.packer
		} else {
			open = append(open, best.packer)
		}

		placedIdx := make(map[int]bool, len(best.placed))
		for _, pos := range best.placed {
			placedIdx[remaining[pos]] = true
		}
		next := remaining[:0:0]
		for _, idx := range remaining {
			if !placedIdx[idx] {
				next = append(next, idx)
			}
		}
		remaining = next
	}

	return open, unpacked
}

// bestTentative simulates every already-open unit (continued) and every
// catalog unit type (opened fresh) against the window, and returns
// whichever tentative places the most items. Ties favor continuing an
// existing unit over opening a new one, and the earliest catalog entry
// among new units, so a homogeneous run keeps reusing the same type.
func bestTentative(open []*packer.UnitPacker, catalog []model.UnitSpec, items []model.Item, window []int, mode model.PackingMode) *tentative {
	var best *tentative
	consider := func(cand *tentative) {
		if best == nil || len(cand.placed) > len(best.placed) {
			best = cand
		}
	}

	for i, up := range open {
		clone := up.Clone()
		consider(&tentative{packer: clone, openIdx: i, placed: simulate(clone, items, window)})
	}
	for _, spec := range catalog {
		trial := packer.NewUnitPacker(spec.ToUnit(), mode)
		consider(&tentative{packer: trial, openIdx: -1, placed: simulate(trial, items, window)})
	}
	return best
}

// simulate greedily tries every window item against up in order, skipping
// (not aborting on) any that fail to place, and returns the window
// positions that succeeded.
func simulate(up *packer.UnitPacker, items []model.Item, window []int) []int {
	var placed []int
	for pos, idx := range window {
		if ok, _ := up.TryPlace(items[idx]); ok {
			placed = append(placed, pos)
		}
	}
	return placed
}

// noFitReason re-derives the most informative single-item failure reason
// across the whole catalog, so a weight-driven rejection is reported as
// such rather than defaulting to "oversized" (spec.md §7: reasons must be
// retrievable without parsing strings).
func noFitReason(catalog []model.UnitSpec, it model.Item, mode model.PackingMode) model.UnpackedReason {
	reason := model.ReasonItemOversized
	for _, c := range catalog {
		trial := packer.NewUnitPacker(c.ToUnit(), mode)
		if _, r := trial.TryPlace(it); r != model.ReasonItemOversized {
			reason = r
		}
	}
	return reason
}
