package packer

import (
	"sort"

	dec "github.com/cargopack/loadplanner/internal/decimal"
	"github.com/cargopack/loadplanner/internal/model"
)

// candidatePositions returns every candidate position for the next item:
// the floor grid plus, per committed placement, all six extreme-point
// variants spec.md §4.4a calls for -- the far X edge, far Y edge, and top
// face each projected both at the placement's own offset and against the
// walls (x,0,z)/(0,y,z)/(0,0,z). This generalizes the teacher's 2D
// guillotine free-rectangle corners to three axes (spec.md §4.5). The
// grid is seeded for every item, not only the first, since extreme
// points alone don't tile the floor once items of mixed sizes are mixed
// in.
func (up *UnitPacker) candidatePositions() []model.Position {
	pts := append([]model.Position(nil), gridFallback(up.Unit, up.GridStep)...)
	for _, p := range up.Placements {
		pts = append(pts,
			model.Position{X: p.XMax(), Y: p.Pos.Y, Z: p.Pos.Z},
			model.Position{X: p.Pos.X, Y: p.YMax(), Z: p.Pos.Z},
			model.Position{X: p.Pos.X, Y: p.Pos.Y, Z: p.Top()},
			model.Position{X: p.Pos.X, Y: dec.Zero, Z: p.Pos.Z},
			model.Position{X: dec.Zero, Y: p.Pos.Y, Z: p.Pos.Z},
			model.Position{X: dec.Zero, Y: dec.Zero, Z: p.Top()},
		)
	}

	return dedupAndSort(pts)
}

// gridFallback seeds a sparse floor grid so every item has candidates
// beyond the extreme points derived from existing placements -- needed
// whenever extreme points alone don't tile the floor (heterogeneous item
// sizes), not only for the very first item in an empty unit.
func gridFallback(unit model.TransportUnit, step dec.D) []model.Position {
	if dec.Cmp(step, dec.Zero) <= 0 {
		step = DefaultGridStep
	}
	var out []model.Position
	for x := dec.Zero; dec.Cmp(x, unit.Length) < 0; x = dec.Add(x, step) {
		for y := dec.Zero; dec.Cmp(y, unit.Width) < 0; y = dec.Add(y, step) {
			out = append(out, model.Position{X: x, Y: y, Z: dec.Zero})
		}
	}
	return out
}

func dedupAndSort(pts []model.Position) []model.Position {
	seen := map[string]bool{}
	out := make([]model.Position, 0, len(pts))
	for _, p := range pts {
		key := p.X.String() + "|" + p.Y.String() + "|" + p.Z.String()
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, p)
	}
	// Lowest Z first, then lowest Y, then lowest X: favors filling the
	// floor before stacking, and the back-left corner before the aisle,
	// matching the teacher's bottom-left bias in packSheet's bestFit scan.
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if c := dec.Cmp(a.Z, b.Z); c != 0 {
			return c < 0
		}
		if c := dec.Cmp(a.Y, b.Y); c != 0 {
			return c < 0
		}
		return dec.Cmp(a.X, b.X) < 0
	})
	return out
}
