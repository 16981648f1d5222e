// Package cargopack is the engine's external facade: one entry point that
// takes a PackRequest and returns a PackResult, leaving every internal
// package (decimal, geom, palletizer, axle, packer, manager) unexported
// from the caller's perspective (spec.md §6 External Interfaces).
package cargopack

import (
	"context"

	"github.com/cargopack/loadplanner/internal/manager"
	"github.com/cargopack/loadplanner/internal/model"
)

// Re-exported input/output types so callers never import internal/model
// directly.
type (
	ItemSpec        = model.ItemSpec
	ShapeSpec       = model.ShapeSpec
	ConstraintsSpec = model.ConstraintsSpec
	PalletSpecView  = model.PalletSpecView
	UnitSpec        = model.UnitSpec
	PackRequest     = model.PackRequest
	PackResult      = model.PackResult
	UnitResult      = model.UnitResult
	PlacementView   = model.PlacementView
	ComplianceReport = model.ComplianceReport
	UnpackedItem    = model.UnpackedItem

	ShapeKind         = model.ShapeKind
	UnitKind          = model.UnitKind
	OrientationHint   = model.OrientationHint
	PalletPackingMode = model.PalletPackingMode
	PackingMode       = model.PackingMode
	PackingPriority   = model.PackingPriority
	UnpackedReason    = model.UnpackedReason
	WheelType         = model.WheelType
)

const (
	ShapeBox        = model.ShapeBox
	ShapeCylinder   = model.ShapeCylinder
	ShapeMetaPallet = model.ShapeMetaPallet

	UnitContainer   = model.UnitContainer
	UnitVehicle     = model.UnitVehicle
	UnitArticulated = model.UnitArticulated

	PackingDensity           = model.PackingDensity
	PackingSafe2D            = model.PackingSafe2D
	PackingSafe3DSimple      = model.PackingSafe3DSimple
	PackingSafe3DArticulated = model.PackingSafe3DArticulated

	PriorityVolume = model.PriorityVolume
	PriorityWeight = model.PriorityWeight
)

// Pack runs a full packing request: item expansion and palletization,
// multi-unit distribution, and (for vehicles) axle-compliance scoring and
// transverse balancing. ctx is checked cooperatively between items; it
// does not parallelize any part of the search (spec.md §5 Concurrency &
// Resource Model: placement is fully deterministic and single-threaded).
func Pack(ctx context.Context, req PackRequest) (PackResult, error) {
	return manager.Pack(ctx, req)
}
