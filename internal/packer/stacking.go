package packer

import (
	dec "github.com/cargopack/loadplanner/internal/decimal"
	"github.com/cargopack/loadplanner/internal/geom"
	"github.com/cargopack/loadplanner/internal/model"
)

// supporters returns the indices of committed placements whose top face
// touches z and whose XY footprint overlaps the candidate footprint.
func (up *UnitPacker) supporters(candidate geom.Box) []int {
	var idx []int
	for i, p := range up.Placements {
		pb := boxOf(p)
		if !dec.EpsEqual(pb.ZMax(), candidate.ZMin()) {
			continue
		}
		if !footprintOverlaps(pb, candidate) {
			continue
		}
		idx = append(idx, i)
	}
	return idx
}

func footprintOverlaps(a, b geom.Box) bool {
	if dec.EpsGTE(a.XMin(), b.XMax()) || dec.EpsGTE(b.XMin(), a.XMax()) {
		return false
	}
	if dec.EpsGTE(a.YMin(), b.YMax()) || dec.EpsGTE(b.YMin(), a.YMax()) {
		return false
	}
	return true
}

func boxOf(p model.Placement) geom.Box {
	return geom.Box{Pos: p.Pos, Dims: p.Dims}
}

// ancestorSet unions the direct supporter indices with each supporter's
// own ancestor set, so the full transitive chain down to the floor is
// known in one pass.
func (up *UnitPacker) ancestorSet(direct []int) []int {
	seen := map[int]bool{}
	for _, i := range direct {
		seen[i] = true
		for _, a := range up.ancestors[i] {
			seen[a] = true
		}
	}
	out := make([]int, 0, len(seen))
	for i := range seen {
		out = append(out, i)
	}
	return out
}

// basesOf returns the distinct floor-resting placements (depth 0) reachable
// from the given direct supporters. Per the glossary, a stack's base is the
// floor-resting placement, and its constraints alone govern the whole
// stack above it -- intermediate items' own MaxStack* fields are not
// enforced.
func (up *UnitPacker) basesOf(direct []int) []int {
	seen := map[int]bool{}
	var out []int
	add := func(i int) {
		if !seen[i] {
			seen[i] = true
			out = append(out, i)
		}
	}
	for _, d := range direct {
		if up.depth[d] == 0 {
			add(d)
			continue
		}
		for _, a := range up.ancestors[d] {
			if up.depth[a] == 0 {
				add(a)
			}
		}
	}
	return out
}

// stackingOK checks the candidate placement against the MaxStackHeight /
// MaxStackLayers / MaxStackLoad of each base it could rest on (spec.md §3
// invariants I3/I4/I6), accounting for height/weight already resting on
// that base from other branches of the stack. A candidate can reach more
// than one base when it straddles two separate stacks; it passes as soon
// as one base's chain accepts it (OR across chains), matching spec.md
// §4.5's "the candidate passes if at least one supporter chain accepts it".
func (up *UnitPacker) stackingOK(candidate geom.Box, weight dec.D, direct []int) bool {
	if len(direct) == 0 {
		return true // resting on the unit floor, no supporter constraints apply
	}

	newDepth := 0
	for _, i := range direct {
		if up.depth[i]+1 > newDepth {
			newDepth = up.depth[i] + 1
		}
	}

	bases := up.basesOf(direct)
	if len(bases) == 0 {
		return true
	}

	for _, b := range bases {
		base := up.Placements[b]
		c := base.Item.Constraints

		height := dec.Sub(candidate.ZMax(), base.Top())
		if existing, ok := up.heightAbove[b]; ok && dec.Cmp(existing, height) > 0 {
			height = existing
		}
		if !dec.IsPosInf(c.MaxStackHeight) && dec.Cmp(height, c.MaxStackHeight) > 0 {
			continue
		}

		load := dec.Add(up.loadAbove[b], weight)
		if !dec.IsPosInf(c.MaxStackLoad) && dec.Cmp(load, c.MaxStackLoad) > 0 {
			continue
		}

		layers := newDepth - up.depth[b]
		if existing, ok := up.layersAbove[b]; ok && existing > layers {
			layers = existing
		}
		// MaxStackLayers counts the base itself as one layer.
		if !dec.IsPosInf(c.MaxStackLayers) && dec.FromInt(layers+1).GreaterThan(c.MaxStackLayers) {
			continue
		}

		return true // this base's chain accepts the candidate
	}
	return false
}

// recordStacking updates the bookkeeping maps after a placement commits.
// Only base (floor-resting) placements accumulate load/height/layers
// bookkeeping, since only a base's constraints are ever checked.
func (up *UnitPacker) recordStacking(idx int, candidate geom.Box, weight dec.D, direct []int) {
	depth := 0
	for _, i := range direct {
		if up.depth[i]+1 > depth {
			depth = up.depth[i] + 1
		}
	}
	up.depth = append(up.depth, depth)
	up.ancestors = append(up.ancestors, up.ancestorSet(direct))

	for _, b := range up.basesOf(direct) {
		height := dec.Sub(candidate.ZMax(), up.Placements[b].Top())
		if existing, ok := up.heightAbove[b]; !ok || dec.Cmp(height, existing) > 0 {
			up.heightAbove[b] = height
		}
		up.loadAbove[b] = dec.Add(up.loadAbove[b], weight)
		layers := depth - up.depth[b]
		if existing, ok := up.layersAbove[b]; !ok || layers > existing {
			up.layersAbove[b] = layers
		}
	}
}
