package geom

import (
	dec "github.com/cargopack/loadplanner/internal/decimal"
	"github.com/cargopack/loadplanner/internal/model"
)

// Orientations enumerates the candidate (dx,dy,dz) triples for an item,
// honoring an explicit AllowedOrientations whitelist when present
// (spec.md §4.3). No off-axis rotation is ever produced (Non-goal).
func Orientations(it model.Item) []model.Triple {
	if len(it.Constraints.AllowedOrientations) > 0 {
		return it.Constraints.AllowedOrientations
	}

	switch it.Shape {
	case model.ShapeCylinder:
		return cylinderOrientations(it)
	default:
		// ShapeBox and ShapeMetaPallet (a rigid palletized stack) both
		// enumerate as a single rectangular box.
		return boxOrientations(it)
	}
}

// boxOrientations returns the up-to-6 axis-aligned permutations of a box's
// three dimensions, stable (l,w,h) first. Permutations that repeat an
// earlier triple (cubes, items with two equal dimensions) are dropped.
func boxOrientations(it model.Item) []model.Triple {
	l, w, h := it.Box.L, it.Box.W, it.Box.H
	perms := [][3]dec.D{
		{l, w, h},
		{w, l, h},
		{l, h, w},
		{h, l, w},
		{w, h, l},
		{h, w, l},
	}
	out := make([]model.Triple, 0, 6)
	seen := map[string]bool{}
	for _, p := range perms {
		key := p[0].String() + "|" + p[1].String() + "|" + p[2].String()
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, model.Triple{DX: p[0], DY: p[1], DZ: p[2]})
	}
	return out
}

// cylinderOrientations returns vertical (axis along Z, footprint is a
// diameter-square bounding box) and horizontal (axis along X or Y, height
// becomes the diameter) candidates, ordered so OrientationDefault's
// variant comes first (vertical first when no default is set).
func cylinderOrientations(it model.Item) []model.Triple {
	d, h := it.Cylinder.D, it.Cylinder.H
	vertical := model.Triple{DX: d, DY: d, DZ: h}
	horizX := model.Triple{DX: h, DY: d, DZ: d}
	horizY := model.Triple{DX: d, DY: h, DZ: d}

	switch it.OrientationDefault {
	case model.OrientationHorizontal:
		return []model.Triple{horizX, horizY, vertical}
	default:
		return []model.Triple{vertical, horizX, horizY}
	}
}
