package model

import dec "github.com/cargopack/loadplanner/internal/decimal"

// ShapeKind tags which shape variant an Item carries. Go-native sum type
// in place of the heterogeneous attribute maps a dynamic-language source
// would use (see DESIGN.md).
type ShapeKind int

const (
	ShapeBox ShapeKind = iota
	ShapeCylinder
	ShapeMetaPallet
)

func (k ShapeKind) String() string {
	switch k {
	case ShapeBox:
		return "box"
	case ShapeCylinder:
		return "cylinder"
	case ShapeMetaPallet:
		return "meta_pallet"
	default:
		return "unknown"
	}
}

// BoxDims is a rectangular box's native (length, width, height).
type BoxDims struct {
	L, W, H dec.D
}

// CylinderDims is a cylinder's native (diameter, height).
type CylinderDims struct {
	D, H dec.D
}

// OrientationHint is the caller-declared default orientation for a
// cylinder (drums stand vertical by default, rolls lie horizontal).
type OrientationHint int

const (
	OrientationNone OrientationHint = iota
	OrientationVertical
	OrientationHorizontal
)

// Triple is a concrete (dx, dy, dz) after orientation is applied.
type Triple struct {
	DX, DY, DZ dec.D
}

func (t Triple) Volume() dec.D {
	return dec.Mul(dec.Mul(t.DX, t.DY), t.DZ)
}
