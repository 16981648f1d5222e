// Package palletizer groups loose items that declare on_pallet onto
// physical pallet bases, producing rigid ShapeMetaPallet items the unit
// packer then places as ordinary boxes. Layer math follows the teacher's
// per-sheet nesting approach (internal/engine/optimizer.go packSheet):
// compute how many units fit per layer, then how many layers fit in the
// allowed stack height, and split the remainder across full and partial
// pallets.
package palletizer

import (
	dec "github.com/cargopack/loadplanner/internal/decimal"
	"github.com/cargopack/loadplanner/internal/geom"
	"github.com/cargopack/loadplanner/internal/model"
)

// Palletize converts a raw item template flagged on_pallet into one or
// more MetaPallet items, each a single rigid box-shaped Item ready for
// the unit packer. Non-palletized items pass through Expand() unchanged
// and are not touched by this package.
func Palletize(it model.Item) []model.Item {
	if !it.Constraints.OnPallet || it.Constraints.Pallet == nil {
		return it.Expand()
	}
	pallet := *it.Constraints.Pallet

	perLayer, _, _ := layerFootprint(it, pallet)
	if perLayer <= 0 {
		// Nothing of this item fits even a single unit on the pallet deck;
		// fall back to loose placement so the caller can still try to
		// place pieces directly (spec.md §4.2 "per_pallet <= 0 fallback").
		return it.Expand()
	}

	layerHeight := itemHeight(it)
	maxLayersByHeight := int(dec.ToFloat64(dec.Floor(dec.Div(pallet.CargoHeight, layerHeight))))
	if maxLayersByHeight < 1 {
		maxLayersByHeight = 1
	}

	maxLayersByStackConstraint := maxLayersByHeight
	if !dec.IsPosInf(it.Constraints.MaxStackLayers) {
		n := int(dec.ToFloat64(it.Constraints.MaxStackLayers))
		if n < maxLayersByStackConstraint {
			maxLayersByStackConstraint = n
		}
	}
	layers := maxLayersByStackConstraint
	if layers < 1 {
		layers = 1
	}

	itemsByGeometry := perLayer * layers
	if itemsByGeometry < 1 {
		itemsByGeometry = perLayer
	}

	// spec.md §4.2: items_by_weight = floor((pallet.max_weight - pallet.self_weight) / item.weight),
	// per_pallet = min(items_by_geometry, items_by_weight).
	perPallet := itemsByGeometry
	if dec.Cmp(it.PieceWeightKg, dec.Zero) > 0 {
		budget := dec.Sub(pallet.MaxWeight, pallet.SelfWeight)
		itemsByWeight := int(dec.ToFloat64(dec.Floor(dec.Div(budget, it.PieceWeightKg))))
		if itemsByWeight < perPallet {
			perPallet = itemsByWeight
		}
	}
	if perPallet < 1 {
		perPallet = 1
	}

	total := it.PieceCount
	remaining := total
	var out []model.Item
	for remaining > 0 {
		count := perPallet
		if count > remaining {
			count = remaining
		}
		usedLayers := (count + perLayer - 1) / perLayer
		height := dec.Mul(layerHeight, dec.FromInt(usedLayers))
		if dec.Cmp(height, pallet.CargoHeight) > 0 {
			height = pallet.CargoHeight
		}

		meta := model.Item{
			ID:                 model.NewID(),
			Name:               it.Name + " (pallet)",
			Shape:              model.ShapeMetaPallet,
			Box:                model.BoxDims{L: pallet.Length, W: pallet.Width, H: dec.Add(pallet.Depth, height)},
			PieceWeightKg:      dec.Add(dec.Mul(it.PieceWeightKg, dec.FromInt(count)), pallet.SelfWeight),
			PieceCount:         1,
			OrientationDefault: model.OrientationNone,
			Constraints:        model.DefaultConstraints(),
			MetaPallet: &model.MetaPalletPayload{
				Pallet:      pallet,
				InnerItem:   it,
				InnerPieces: count,
				PerLayer:    perLayer,
				Layers:      usedLayers,
			},
		}
		out = append(out, meta)
		remaining -= count
	}

	return out
}

// layerFootprint computes how many copies of the item's base footprint
// fit on one pallet layer, choosing the denser of grid and hex-staggered
// layouts for cylinders per the pallet's packing mode.
func layerFootprint(it model.Item, pallet model.PalletSpec) (perLayer int, itemL, itemW dec.D) {
	switch it.Shape {
	case model.ShapeCylinder:
		d := it.Cylinder.D
		switch it.Constraints.PalletPackingMode {
		case model.PalletPackingGrid:
			n, _, _ := geom.CircleLayoutGrid(pallet.Length, pallet.Width, d)
			return n, d, d
		case model.PalletPackingStaggered:
			return geom.CircleLayoutHexLength(pallet.Length, pallet.Width, d), d, d
		default:
			return geom.CircleLayoutBest(pallet.Length, pallet.Width, d), d, d
		}
	default:
		l, w := it.Box.L, it.Box.W
		n, _, _ := geom.RectLayout(pallet.Length, pallet.Width, l, w)
		// Also try the item rotated 90 degrees in the plane and keep
		// whichever admits more per layer (spec.md §4.3 allows in-plane
		// swap of length/width, unlike the Non-goal off-axis rotation).
		nRot, _, _ := geom.RectLayout(pallet.Length, pallet.Width, w, l)
		if nRot > n {
			return nRot, w, l
		}
		return n, l, w
	}
}

// itemHeight returns the item's vertical extent as it will sit on a
// pallet layer (cylinders default to standing on end unless declared
// horizontal).
func itemHeight(it model.Item) dec.D {
	if it.Shape == model.ShapeCylinder {
		if it.OrientationDefault == model.OrientationHorizontal {
			return it.Cylinder.D
		}
		return it.Cylinder.H
	}
	return it.Box.H
}
