// Package geom implements the axis-aligned 3D placement primitives: per
// shape orientation enumeration, containment, overlap, and stacking
// support checks. It generalizes the teacher's 2D guillotine geometry
// (rotation candidates, bounding-box fit) to three axes with no off-axis
// rotation (spec.md §4.3 Non-goals).
package geom

import (
	dec "github.com/cargopack/loadplanner/internal/decimal"
	"github.com/cargopack/loadplanner/internal/model"
)

// Box is an axis-aligned cuboid anchored at its lower-front-left corner.
type Box struct {
	Pos  model.Position
	Dims model.Triple
}

func (b Box) XMin() dec.D { return b.Pos.X }
func (b Box) XMax() dec.D { return dec.Add(b.Pos.X, b.Dims.DX) }
func (b Box) YMin() dec.D { return b.Pos.Y }
func (b Box) YMax() dec.D { return dec.Add(b.Pos.Y, b.Dims.DY) }
func (b Box) ZMin() dec.D { return b.Pos.Z }
func (b Box) ZMax() dec.D { return dec.Add(b.Pos.Z, b.Dims.DZ) }

// Contains reports whether b fits entirely within the unit interior
// [0,L]x[0,W]x[0,H], within epsilon tolerance (spec.md §3 invariant I1).
func Contains(b Box, length, width, height dec.D) bool {
	if dec.Cmp(b.XMin(), dec.Zero) < 0 || dec.Cmp(b.YMin(), dec.Zero) < 0 || dec.Cmp(b.ZMin(), dec.Zero) < 0 {
		return false
	}
	if !dec.EpsLTE(b.XMax(), length) {
		return false
	}
	if !dec.EpsLTE(b.YMax(), width) {
		return false
	}
	if !dec.EpsLTE(b.ZMax(), height) {
		return false
	}
	return true
}

// Overlap3D reports whether two boxes share positive interior volume.
// Boxes that merely touch along a shared face are not considered
// overlapping (spec.md §3 invariant I2).
func Overlap3D(a, b Box) bool {
	if dec.EpsGTE(a.XMin(), b.XMax()) || dec.EpsGTE(b.XMin(), a.XMax()) {
		return false
	}
	if dec.EpsGTE(a.YMin(), b.YMax()) || dec.EpsGTE(b.YMin(), a.YMax()) {
		return false
	}
	if dec.EpsGTE(a.ZMin(), b.ZMax()) || dec.EpsGTE(b.ZMin(), a.ZMax()) {
		return false
	}
	return true
}

// footprintOverlap reports whether a and b overlap when projected onto the
// XY plane, ignoring Z. Used by the support computation.
func footprintOverlap(a, b Box) bool {
	if dec.EpsGTE(a.XMin(), b.XMax()) || dec.EpsGTE(b.XMin(), a.XMax()) {
		return false
	}
	if dec.EpsGTE(a.YMin(), b.YMax()) || dec.EpsGTE(b.YMin(), a.YMax()) {
		return false
	}
	return true
}

// SupportFraction returns the fraction, in [0,1], of b's footprint area
// that rests atop placements whose top face touches b's base, restricted
// to those given in `below` (candidates already filtered to Top() ≈
// b.ZMin()). The overlap areas of all boxes in `below` are summed (capped
// at the full footprint), so support may come from several items at once.
// The packer compares the result against its support threshold.
func SupportFraction(b Box, below []Box) dec.D {
	footprint := dec.Mul(b.Dims.DX, b.Dims.DY)
	if dec.EpsEqual(footprint, dec.Zero) {
		return dec.One
	}

	covered := dec.Zero
	for _, other := range below {
		if !footprintOverlap(b, other) {
			continue
		}
		xOverlap := dec.Sub(minD(b.XMax(), other.XMax()), maxD(b.XMin(), other.XMin()))
		yOverlap := dec.Sub(minD(b.YMax(), other.YMax()), maxD(b.YMin(), other.YMin()))
		if dec.Cmp(xOverlap, dec.Zero) <= 0 || dec.Cmp(yOverlap, dec.Zero) <= 0 {
			continue
		}
		covered = dec.Add(covered, dec.Mul(xOverlap, yOverlap))
	}
	if dec.Cmp(covered, footprint) > 0 {
		covered = footprint
	}
	return dec.Div(covered, footprint)
}

func minD(a, b dec.D) dec.D {
	if dec.Cmp(a, b) <= 0 {
		return a
	}
	return b
}

func maxD(a, b dec.D) dec.D {
	if dec.Cmp(a, b) >= 0 {
		return a
	}
	return b
}
