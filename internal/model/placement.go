package model

import dec "github.com/cargopack/loadplanner/internal/decimal"

// Position is a 3D point in decimal form, the lower-front-left corner of
// a placement.
type Position struct {
	X, Y, Z dec.D
}

// Placement is a committed (item, orientation, position) triple inside one
// unit (spec.md §3). Dims is the concrete (dx,dy,dz) after orientation.
type Placement struct {
	Item Item
	Pos  Position
	Dims Triple
}

// Top returns the Z coordinate of this placement's top face.
func (p Placement) Top() dec.D { return dec.Add(p.Pos.Z, p.Dims.DZ) }

// XMax, YMax return the far edges on X and Y.
func (p Placement) XMax() dec.D { return dec.Add(p.Pos.X, p.Dims.DX) }
func (p Placement) YMax() dec.D { return dec.Add(p.Pos.Y, p.Dims.DY) }

// Weight returns the placed item's total weight (single piece post-expansion).
func (p Placement) Weight() dec.D { return p.Item.TotalWeight() }

// Centroid returns the placement's geometric center, used by the axle
// cargo-CG calculation (spec.md §4.6).
func (p Placement) Centroid() Position {
	half := dec.FromFloat64(0.5)
	return Position{
		X: dec.Add(p.Pos.X, dec.Mul(p.Dims.DX, half)),
		Y: dec.Add(p.Pos.Y, dec.Mul(p.Dims.DY, half)),
		Z: dec.Add(p.Pos.Z, dec.Mul(p.Dims.DZ, half)),
	}
}

// PlacementView is the public, float64-rounded external view of a
// Placement (spec.md §6 UnitResult.placements).
type PlacementView struct {
	ItemName string  `json:"item_name"`
	Position [3]float64 `json:"position_xyz"`
	Dims     [3]float64 `json:"dims_xyz"`
	WeightKg float64 `json:"weight"`
}

// ToView renders a Placement to its external, float64 form.
func (p Placement) ToView() PlacementView {
	return PlacementView{
		ItemName: p.Item.Name,
		Position: [3]float64{dec.ToFloat64(p.Pos.X), dec.ToFloat64(p.Pos.Y), dec.ToFloat64(p.Pos.Z)},
		Dims:     [3]float64{dec.ToFloat64(p.Dims.DX), dec.ToFloat64(p.Dims.DY), dec.ToFloat64(p.Dims.DZ)},
		WeightKg: dec.ToFloat64(p.Weight()),
	}
}
