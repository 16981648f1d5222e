package axle

import (
	"testing"

	dec "github.com/cargopack/loadplanner/internal/decimal"
	"github.com/cargopack/loadplanner/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func straightTruck() model.TransportUnit {
	return model.TransportUnit{
		Name:            "rigid-2-axle",
		Kind:            model.UnitVehicle,
		Length:          dec.FromFloat64(8),
		Width:           dec.FromFloat64(2.4),
		Height:          dec.FromFloat64(2.6),
		MaxWeight:       dec.FromFloat64(18000),
		Axles:           2,
		AxlePositions:   []dec.D{dec.FromFloat64(1.5), dec.FromFloat64(6.5)},
		CurbAxleLoads:   []dec.D{dec.FromFloat64(3000), dec.FromFloat64(2000)},
		WheelType:       model.WheelDual,
		TrackWidthFront: dec.FromFloat64(2.0),
		TrackWidthRear:  dec.FromFloat64(1.8),
	}
}

func TestBeam2DMidpointSplitsEvenly(t *testing.T) {
	unit := straightTruck()
	points := []CargoPoint{{WeightKg: dec.FromFloat64(1000), X: dec.FromFloat64(4), Y: dec.Zero, Z: dec.Zero}}
	loads := Beam2D(unit, points)
	require.Len(t, loads, 2)
	assert.InDelta(t, 3500, dec.ToFloat64(loads[0]), 1)
	assert.InDelta(t, 2500, dec.ToFloat64(loads[1]), 1)
}

func TestBeam2DConservesWeight(t *testing.T) {
	unit := straightTruck()
	points := []CargoPoint{
		{WeightKg: dec.FromFloat64(1000), X: dec.FromFloat64(2), Y: dec.Zero, Z: dec.Zero},
		{WeightKg: dec.FromFloat64(500), X: dec.FromFloat64(5), Y: dec.Zero, Z: dec.Zero},
	}
	loads := Beam2D(unit, points)
	total := dec.Add(loads[0], loads[1])
	expected := dec.FromFloat64(3000 + 2000 + 1000 + 500)
	assert.True(t, dec.EpsEqual(total, expected), "got %s want %s", total.String(), expected.String())
}

func TestSimple3DConservesWeightAcrossMultipleAxles(t *testing.T) {
	unit := straightTruck()
	unit.Axles = 3
	unit.AxlePositions = []dec.D{dec.FromFloat64(1.5), dec.FromFloat64(4.5), dec.FromFloat64(7.5)}
	unit.CurbAxleLoads = []dec.D{dec.FromFloat64(2000), dec.FromFloat64(1500), dec.FromFloat64(1500)}

	points := []CargoPoint{
		{WeightKg: dec.FromFloat64(1000), X: dec.FromFloat64(3), Y: dec.FromFloat64(0.2), Z: dec.Zero},
		{WeightKg: dec.FromFloat64(800), X: dec.FromFloat64(6), Y: dec.FromFloat64(-0.1), Z: dec.Zero},
	}
	loads, wheels := Simple3D(unit, points)
	require.Len(t, loads, 3)
	require.Len(t, wheels, 3)

	total := dec.Zero
	for _, l := range loads {
		total = dec.Add(total, l)
	}
	expected := dec.FromFloat64(2000 + 1500 + 1500 + 1000 + 800)
	assert.True(t, dec.EpsEqual(total, expected), "got %s want %s", total.String(), expected.String())

	for i, w := range wheels {
		sum := dec.Add(w.Left, w.Right)
		assert.True(t, dec.EpsEqual(sum, loads[i]), "axle %d wheel split must sum to axle load", i)
	}
}

func TestGroupAxlesTandem(t *testing.T) {
	unit := straightTruck()
	unit.Axles = 2
	unit.AxlePositions = []dec.D{dec.FromFloat64(5.0), dec.FromFloat64(6.2)}
	groups := GroupAxles(unit)
	require.Len(t, groups, 1)
	assert.Equal(t, []int{0, 1}, groups[0].Indices)
}

func TestGroupAxlesSeparatesDistantAxles(t *testing.T) {
	unit := straightTruck()
	groups := GroupAxles(unit)
	require.Len(t, groups, 2)
}

func TestCheckComplianceFlagsGVWExceeded(t *testing.T) {
	unit := straightTruck()
	unit.MaxWeight = dec.FromFloat64(4000)
	state := Compute(unit, model.PackingSafe2D, []CargoPoint{{WeightKg: dec.FromFloat64(3000), X: dec.FromFloat64(4)}})
	report := CheckCompliance(unit, dec.FromFloat64(3000), state)
	assert.False(t, report.IsCompliant)
	assert.Equal(t, model.ComplianceGVWExceeded, report.Reason)
}

func TestCheckComplianceOKWithinLimits(t *testing.T) {
	unit := straightTruck()
	state := Compute(unit, model.PackingSafe2D, []CargoPoint{{WeightKg: dec.FromFloat64(500), X: dec.FromFloat64(4)}})
	report := CheckCompliance(unit, dec.FromFloat64(500), state)
	assert.True(t, report.IsCompliant)
}

func TestComplianceScoreHigherForBalancedLoad(t *testing.T) {
	unit := straightTruck()
	balanced := model.ComplianceReport{PerAxle: []model.AxleReport{{LoadKg: 5000, LimitKg: 10000}, {LoadKg: 5000, LimitKg: 10000}}}
	lopsided := model.ComplianceReport{PerAxle: []model.AxleReport{{LoadKg: 9000, LimitKg: 10000}, {LoadKg: 1000, LimitKg: 10000}}}

	sBalanced := ComplianceScore(unit, dec.FromFloat64(5000), balanced)
	sLopsided := ComplianceScore(unit, dec.FromFloat64(5000), lopsided)
	assert.Greater(t, sBalanced, sLopsided)
}

func TestArticulated3DTransfersWeightToKingpin(t *testing.T) {
	unit := model.TransportUnit{
		Name:              "tractor-trailer",
		Kind:              model.UnitArticulated,
		Length:            dec.FromFloat64(13.6),
		Width:             dec.FromFloat64(2.48),
		Height:            dec.FromFloat64(2.7),
		MaxWeight:         dec.FromFloat64(34000),
		Axles:             3,
		AxlePositions:     []dec.D{dec.FromFloat64(10), dec.FromFloat64(11.3), dec.FromFloat64(12.6)},
		CurbAxleLoads:     []dec.D{dec.FromFloat64(1800), dec.FromFloat64(1800), dec.FromFloat64(1800)},
		WheelType:         model.WheelDual,
		TrackWidthFront:   dec.FromFloat64(2.0),
		TrackWidthRear:    dec.FromFloat64(1.8),
		SaddlePositionX:   dec.FromFloat64(1.8),
		KingpinSetback:    dec.FromFloat64(0.3),
		TractorCurbWeight: dec.FromFloat64(7200),
		TrailerCurbWeight: dec.FromFloat64(6500),
	}
	points := []CargoPoint{{WeightKg: dec.FromFloat64(10000), X: dec.FromFloat64(3), Y: dec.Zero, Z: dec.Zero}}
	trailerLoads, _, tractorRear := Articulated3D(unit, points)

	trailerTotal := dec.Zero
	for _, l := range trailerLoads {
		trailerTotal = dec.Add(trailerTotal, l)
	}
	assert.Greater(t, dec.ToFloat64(tractorRear), dec.ToFloat64(unit.TractorCurbWeight), "cargo near the kingpin should load the tractor")
	assert.Less(t, dec.ToFloat64(trailerTotal)-5400, 10000.0, "sanity: trailer share should not exceed total cargo plus curb")
}
