package model

import (
	dec "github.com/cargopack/loadplanner/internal/decimal"
	"github.com/google/uuid"
)

// PalletPackingMode selects how cylinders are laid out on a pallet layer.
type PalletPackingMode int

const (
	PalletPackingAutomatic PalletPackingMode = iota
	PalletPackingGrid
	PalletPackingStaggered
)

// Constraints is the stacking/orientation contract declared per item,
// exactly spec.md §3's Constraints record.
type Constraints struct {
	// AllowedOrientations, if non-nil, is a closed whitelist that overrides
	// default orientation enumeration (spec.md §4.3).
	AllowedOrientations []Triple

	// MaxStackHeight is meters above the stack base; dec.PosInf when unset.
	MaxStackHeight dec.D
	// MaxStackLayers is a layer count; dec.PosInf when unset.
	MaxStackLayers dec.D
	// MaxStackLoad is kg resting on the base item; dec.PosInf when unset.
	MaxStackLoad dec.D

	OnPallet          bool
	Pallet            *PalletSpec
	PalletPackingMode PalletPackingMode
}

// DefaultConstraints returns a Constraints value with every optional limit
// set to "no limit" per spec.md §7's local-recovery rule.
func DefaultConstraints() Constraints {
	return Constraints{
		MaxStackHeight: dec.PosInf,
		MaxStackLayers: dec.PosInf,
		MaxStackLoad:   dec.PosInf,
	}
}

// MetaPalletPayload rides only on the ShapeMetaPallet variant: the inner
// items, the computed layer layout, and the layer count, carried purely
// for external renderers (spec.md §3).
type MetaPalletPayload struct {
	Pallet      PalletSpec
	InnerItem   Item
	InnerPieces int
	PerLayer    int
	Layers      int
}

// Item is the tagged-union cargo record. Shape selects which of Box /
// Cylinder / MetaPallet is populated.
type Item struct {
	ID       string
	Name     string
	ColorTag string

	Shape    ShapeKind
	Box      BoxDims
	Cylinder CylinderDims

	PieceWeightKg dec.D
	PieceCount    int

	OrientationDefault OrientationHint

	Constraints Constraints

	MetaPallet *MetaPalletPayload
}

// NewID returns a short uuid, matching the teacher's id convention
// (model.NewPart: uuid.New().String()[:8]).
func NewID() string {
	return uuid.New().String()[:8]
}

// TotalWeight returns PieceWeightKg * PieceCount.
func (it Item) TotalWeight() dec.D {
	return dec.Mul(it.PieceWeightKg, dec.FromInt(it.PieceCount))
}

// Expand duplicates a raw item template into PieceCount single-piece
// instances, each with its own ID (spec.md §3 "Lifecycle": pre-pack
// expansion).
func (it Item) Expand() []Item {
	out := make([]Item, 0, it.PieceCount)
	for i := 0; i < it.PieceCount; i++ {
		cp := it
		cp.ID = NewID()
		cp.PieceCount = 1
		out = append(out, cp)
	}
	return out
}
