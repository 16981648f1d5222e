package palletizer

import (
	"testing"

	dec "github.com/cargopack/loadplanner/internal/decimal"
	"github.com/cargopack/loadplanner/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func boxItem(count int, l, w, h, weight float64, pallet *model.PalletSpec) model.Item {
	c := model.DefaultConstraints()
	if pallet != nil {
		c.OnPallet = true
		c.Pallet = pallet
	}
	return model.Item{
		ID:            model.NewID(),
		Name:          "crate",
		Shape:         model.ShapeBox,
		Box:           model.BoxDims{L: dec.FromFloat64(l), W: dec.FromFloat64(w), H: dec.FromFloat64(h)},
		PieceWeightKg: dec.FromFloat64(weight),
		PieceCount:    count,
		Constraints:   c,
	}
}

func testPallet() model.PalletSpec {
	return model.PalletSpec{
		Length:      dec.FromFloat64(1.2),
		Width:       dec.FromFloat64(1.0),
		CargoHeight: dec.FromFloat64(1.5),
		Depth:       dec.FromFloat64(0.14),
		MaxWeight:   dec.FromFloat64(1000),
		SelfWeight:  dec.FromFloat64(25),
	}
}

func TestPalletizeGroupsIntoMetaPallet(t *testing.T) {
	p := testPallet()
	it := boxItem(24, 0.3, 0.2, 0.2, 5, &p)

	out := Palletize(it)
	require.NotEmpty(t, out)
	for _, m := range out {
		assert.Equal(t, model.ShapeMetaPallet, m.Shape)
		require.NotNil(t, m.MetaPallet)
		assert.LessOrEqual(t, m.MetaPallet.InnerPieces, m.MetaPallet.PerLayer*m.MetaPallet.Layers)
	}
}

func TestPalletizeConservesPieceCount(t *testing.T) {
	p := testPallet()
	it := boxItem(37, 0.3, 0.2, 0.2, 5, &p)

	out := Palletize(it)
	total := 0
	for _, m := range out {
		total += m.MetaPallet.InnerPieces
	}
	assert.Equal(t, 37, total)
}

func TestPalletizeRespectsPalletMaxWeight(t *testing.T) {
	p := testPallet()
	p.MaxWeight = dec.FromFloat64(100)
	it := boxItem(100, 0.3, 0.2, 0.2, 5, &p)

	out := Palletize(it)
	for _, m := range out {
		assert.True(t, dec.Cmp(m.PieceWeightKg, p.MaxWeight) <= 0, "pallet %s exceeds max weight", m.Name)
	}
}

func TestPalletizeFallsBackWhenItemDoesNotFitDeck(t *testing.T) {
	p := testPallet()
	it := boxItem(2, 2.0, 2.0, 0.2, 5, &p) // larger than the pallet deck
	out := Palletize(it)
	for _, m := range out {
		assert.Equal(t, model.ShapeBox, m.Shape, "oversized item should fall back to loose placement")
	}
	assert.Len(t, out, 2)
}

func TestPalletizeNonPalletPassesThrough(t *testing.T) {
	it := boxItem(3, 0.3, 0.2, 0.2, 5, nil)
	out := Palletize(it)
	assert.Len(t, out, 3)
	for _, m := range out {
		assert.Equal(t, model.ShapeBox, m.Shape)
	}
}

func TestPalletizeCylinderUsesBestLayout(t *testing.T) {
	p := testPallet()
	c := model.DefaultConstraints()
	c.OnPallet = true
	c.Pallet = &p
	it := model.Item{
		ID:            model.NewID(),
		Name:          "drum",
		Shape:         model.ShapeCylinder,
		Cylinder:      model.CylinderDims{D: dec.FromFloat64(0.3), H: dec.FromFloat64(0.6)},
		PieceWeightKg: dec.FromFloat64(15),
		PieceCount:    10,
		Constraints:   c,
	}
	out := Palletize(it)
	require.NotEmpty(t, out)
	total := 0
	for _, m := range out {
		total += m.MetaPallet.InnerPieces
	}
	assert.Equal(t, 10, total)
}
