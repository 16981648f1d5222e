// Package packer implements the single-unit placement search: given a
// transport unit and a stream of items, it finds a position and
// orientation for each that keeps every geometric, payload, and stacking
// invariant intact, optionally scored against axle compliance for the
// "safe" packing modes (spec.md §4.5, §4.8).
package packer

import (
	dec "github.com/cargopack/loadplanner/internal/decimal"
	"github.com/cargopack/loadplanner/internal/model"
)

// DefaultGridStep is the spacing of the floor grid of candidate positions
// that is seeded for every item, alongside the extreme points.
var DefaultGridStep = dec.FromFloat64(0.1)

// SupportThreshold is the minimum footprint overlap fraction, > 0, that
// counts as support (spec.md §3 invariant I5: the union of supporters
// projected onto XY need only overlap the candidate's footprint on a
// positive-area patch, not cover it fully). Left near zero rather than
// exactly zero so floating comparisons never admit a footprint that
// merely touches along an edge.
var SupportThreshold = dec.Eps

// UnitPacker holds one transport unit's committed placements and the
// bookkeeping needed to validate the next one in O(placements) rather
// than re-deriving the whole support graph each time.
type UnitPacker struct {
	Unit     model.TransportUnit
	Mode     model.PackingMode
	GridStep dec.D

	Placements []model.Placement
	CumWeight  dec.D

	depth     []int
	ancestors [][]int
	loadAbove map[int]dec.D
	heightAbove map[int]dec.D
	layersAbove map[int]int
}

// NewUnitPacker starts an empty packer for the given unit.
func NewUnitPacker(unit model.TransportUnit, mode model.PackingMode) *UnitPacker {
	return &UnitPacker{
		Unit:        unit,
		Mode:        mode,
		GridStep:    DefaultGridStep,
		CumWeight:   dec.Zero,
		loadAbove:   map[int]dec.D{},
		heightAbove: map[int]dec.D{},
		layersAbove: map[int]int{},
	}
}

// Clone performs a value-semantics deep copy suitable for the look-ahead
// multi-unit algorithm, which must try several candidate units from the
// same starting state without mutating the original (spec.md §4.8).
func (up *UnitPacker) Clone() *UnitPacker {
	cp := &UnitPacker{
		Unit:        up.Unit,
		Mode:        up.Mode,
		GridStep:    up.GridStep,
		CumWeight:   up.CumWeight,
		Placements:  append([]model.Placement(nil), up.Placements...),
		depth:       append([]int(nil), up.depth...),
		loadAbove:   make(map[int]dec.D, len(up.loadAbove)),
		heightAbove: make(map[int]dec.D, len(up.heightAbove)),
		layersAbove: make(map[int]int, len(up.layersAbove)),
	}
	cp.ancestors = make([][]int, len(up.ancestors))
	for i, a := range up.ancestors {
		cp.ancestors[i] = append([]int(nil), a...)
	}
	for k, v := range up.loadAbove {
		cp.loadAbove[k] = v
	}
	for k, v := range up.heightAbove {
		cp.heightAbove[k] = v
	}
	for k, v := range up.layersAbove {
		cp.layersAbove[k] = v
	}
	return cp
}

// RemainingCapacity returns the unit's weight budget left before
// MaxWeight is hit (payload cap for containers; for vehicles, GVW minus
// the unit's curb weight).
func (up *UnitPacker) RemainingCapacity() dec.D {
	limit := up.Unit.MaxWeight
	if up.Unit.IsVehicle() {
		limit = dec.Sub(up.Unit.MaxWeight, up.Unit.CurbWeight())
	}
	return dec.Sub(limit, up.CumWeight)
}
