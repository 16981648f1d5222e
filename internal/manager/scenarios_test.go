package manager

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cargopack/loadplanner/internal/model"
)

// S1-S6 verbatim from spec.md §8's concrete scenarios, used as literal
// table tests rather than property-based random inputs.

func TestScenarioS1SingleContainerIdenticalBoxes(t *testing.T) {
	req := model.PackRequest{
		Items: []model.ItemSpec{
			{Name: "crate", Shape: model.ShapeSpec{Kind: model.ShapeBox, L: 1.0, W: 1.0, H: 1.0}, PieceWeightKg: 50, PieceCount: 20},
		},
		UnitCatalog: []model.UnitSpec{
			{Kind: model.UnitContainer, Name: "20ft", Length: 5.898, Width: 2.352, Height: 2.393, MaxWeight: 28200},
		},
		PackingMode: model.PackingDensity,
	}

	result, err := Pack(context.Background(), req)
	require.NoError(t, err)
	require.Empty(t, result.Unpacked)
	require.Len(t, result.Units, 1)
	assert.Len(t, result.Units[0].Placements, 20)
	assert.InDelta(t, 1000.0, result.Units[0].CargoWeight, 1e-6)

	// 5x2x2 lattice: X in {0,1,2,3,4}, Y in {0,1}, Z in {0,1}.
	seen := map[[3]float64]bool{}
	for _, p := range result.Units[0].Placements {
		seen[p.Position] = true
		assert.Less(t, p.Position[0], 5.0)
		assert.Less(t, p.Position[1], 2.0)
		assert.Less(t, p.Position[2], 2.0)
	}
	assert.Len(t, seen, 20, "all 20 positions must be distinct lattice cells")
}

func TestScenarioS2StackingLimit(t *testing.T) {
	maxLayers := 3
	req := model.PackRequest{
		Items: []model.ItemSpec{
			{
				Name: "A", Shape: model.ShapeSpec{Kind: model.ShapeBox, L: 1, W: 1, H: 0.5},
				PieceWeightKg: 40, PieceCount: 10,
				Constraints: model.ConstraintsSpec{MaxStackLayers: &maxLayers},
			},
			{Name: "B", Shape: model.ShapeSpec{Kind: model.ShapeBox, L: 1, W: 1, H: 0.5}, PieceWeightKg: 30, PieceCount: 10},
		},
		UnitCatalog: []model.UnitSpec{
			{Kind: model.UnitContainer, Name: "20ft", Length: 5.898, Width: 2.352, Height: 2.393, MaxWeight: 28200},
		},
		PackingMode: model.PackingDensity,
	}

	result, err := Pack(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, result.Units, 1)

	// For every A placement, the stack it bases is at most 3 layers tall
	// counting the A piece itself, so at most 2 placements sit above it.
	for _, base := range result.Units[0].Placements {
		if base.ItemName != "A" {
			continue
		}
		layersAbove := 0
		for _, p := range result.Units[0].Placements {
			if p.Position[2] > base.Position[2]+1e-9 &&
				p.Position[0] < base.Position[0]+base.Dims[0] && p.Position[0]+p.Dims[0] > base.Position[0] &&
				p.Position[1] < base.Position[1]+base.Dims[1] && p.Position[1]+p.Dims[1] > base.Position[1] {
				layersAbove++
			}
		}
		assert.LessOrEqual(t, layersAbove, maxLayers-1, "no more than %d layers may sit above an A piece", maxLayers-1)
	}
}

func TestScenarioS3PalletGrouping(t *testing.T) {
	req := model.PackRequest{
		Items: []model.ItemSpec{
			{
				Name: "crate", Shape: model.ShapeSpec{Kind: model.ShapeBox, L: 0.4, W: 0.3, H: 0.3},
				PieceWeightKg: 5, PieceCount: 50, OnPallet: true,
				PalletRef: &model.PalletSpecView{Length: 1.2, Width: 0.8, CargoHeight: 1.0, Depth: 0.14, MaxWeight: 1500, SelfWeight: 20},
			},
		},
		UnitCatalog: []model.UnitSpec{
			{Kind: model.UnitContainer, Name: "big-box", Length: 10, Width: 10, Height: 10, MaxWeight: 100000},
		},
		PackingMode: model.PackingDensity,
	}

	result, err := Pack(context.Background(), req)
	require.NoError(t, err)
	require.Empty(t, result.Unpacked)

	var weights []float64
	for _, u := range result.Units {
		for _, p := range u.Placements {
			weights = append(weights, p.WeightKg)
		}
	}
	require.Len(t, weights, 3, "two full pallets of 24 plus one partial of 2")

	counts := map[float64]int{}
	for _, w := range weights {
		counts[w]++
	}
	assert.Equal(t, 2, counts[140.0], "two pallets at 20 + 24*5 = 140 kg")
	assert.Equal(t, 1, counts[30.0], "one partial pallet at 20 + 2*5 = 30 kg")
}

// fiveAxleArticulated builds a concrete 5-axle articulated fixture, since
// spec.md names the scenario's unit class ("40 t 5-axle catalog") without
// giving literal axle positions. Axles are grouped as a front dual tandem
// (indices 0,1, 2 m apart) and a rear tridem (indices 2,3,4, 1.5 m apart),
// each group far enough from its neighbor (>2.5 m) to regulate separately.
// The curb/GVW numbers are chosen so the 5000 kg payload cap sits well
// inside both groups' spare capacity (19000-6400=12600 and 24000-9600=14400)
// no matter how Beam2D's lever rule splits cargo between the front and rear
// axle, so compliance here does not depend on the packer's exact placement
// order.
func fiveAxleArticulated(name string) model.UnitSpec {
	return model.UnitSpec{
		Kind: model.UnitArticulated, Name: name,
		Length: 13.6, Width: 2.48, Height: 2.7, MaxWeight: 21000,
		Axles:           5,
		AxlePositions:   []float64{1.0, 3.0, 7.0, 8.5, 10.0},
		CurbAxleLoads:   []float64{3200, 3200, 3200, 3200, 3200},
		WheelType:       model.WheelDual,
		TrackWidthFront: 2.0, TrackWidthRear: 1.85,
		SaddlePositionX:   4.6,
		SaddleHeight:      1.1,
		KingpinSetback:    0.3,
		TractorCurbWeight: 8000,
		TrailerCurbWeight: 8000,
	}
}

func TestScenarioS4AxleComplianceSafe2D(t *testing.T) {
	req := model.PackRequest{
		Items: []model.ItemSpec{
			{Name: "box", Shape: model.ShapeSpec{Kind: model.ShapeBox, L: 1, W: 1, H: 1}, PieceWeightKg: 500, PieceCount: 8},
		},
		UnitCatalog: []model.UnitSpec{fiveAxleArticulated("artic-40t")},
		PackingMode: model.PackingSafe2D,
	}

	result, err := Pack(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, result.Units, 1)
	require.Empty(t, result.Unpacked)
	assert.True(t, result.Units[0].Compliance.IsCompliant)
	assert.Equal(t, model.ComplianceOK, result.Units[0].Compliance.Reason)

	total := 0.0
	for _, a := range result.Units[0].Compliance.PerAxle {
		total += a.LoadKg
		assert.False(t, a.Exceeded)
	}
	assert.InDelta(t, 16000+4000, total, 1.0, "per-axle loads sum to curb + cargo weight")
}

func TestScenarioS5OverWeight(t *testing.T) {
	req := model.PackRequest{
		Items: []model.ItemSpec{
			{Name: "box", Shape: model.ShapeSpec{Kind: model.ShapeBox, L: 1, W: 1, H: 1}, PieceWeightKg: 500, PieceCount: 100},
		},
		UnitCatalog: []model.UnitSpec{fiveAxleArticulated("artic-40t")},
		PackingMode: model.PackingSafe2D,
	}

	result, err := Pack(context.Background(), req)
	require.NoError(t, err)
	require.NotEmpty(t, result.Unpacked, "50000 kg of cargo must overflow a 21000 kg GVW unit with a 5000 kg payload cap")

	foundGVWReason := false
	for _, u := range result.Unpacked {
		if u.Reason == model.ReasonGVWExceeded {
			foundGVWReason = true
		}
	}
	assert.True(t, foundGVWReason)

	for _, u := range result.Units {
		assert.True(t, u.Compliance.IsCompliant, "committed placements must remain compliant even though some items overflowed")
	}
}

func TestScenarioS6LookaheadHeterogeneousFleet(t *testing.T) {
	req := model.PackRequest{
		Items: []model.ItemSpec{
			{Name: "crate", Shape: model.ShapeSpec{Kind: model.ShapeBox, L: 2.0, W: 2.0, H: 2.0}, PieceWeightKg: 500, PieceCount: 100},
		},
		UnitCatalog: []model.UnitSpec{
			{Kind: model.UnitContainer, Name: "20ft", Length: 5.898, Width: 2.352, Height: 2.393, MaxWeight: 28200},
			{Kind: model.UnitContainer, Name: "40ft", Length: 12.032, Width: 2.352, Height: 2.393, MaxWeight: 28600},
		},
		PackingMode: model.PackingDensity,
	}

	result, err := Pack(context.Background(), req)
	require.NoError(t, err)
	require.NotEmpty(t, result.Units)

	for _, u := range result.Units {
		assert.Equal(t, "40ft", u.Unit.Name, "look-ahead must prefer 40ft containers over 20ft despite catalog order")
	}
}
