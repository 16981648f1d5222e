package cargopack

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPackEndToEnd(t *testing.T) {
	req := PackRequest{
		Items: []ItemSpec{
			{Name: "box", Shape: ShapeSpec{Kind: ShapeBox, L: 1, W: 1, H: 1}, PieceWeightKg: 50, PieceCount: 10},
		},
		UnitCatalog: []UnitSpec{
			{Kind: UnitContainer, Name: "20ft", Length: 6, Width: 2.4, Height: 2.4, MaxWeight: 20000},
		},
		PackingPriority: PriorityVolume,
		PackingMode:     PackingDensity,
	}

	result, err := Pack(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, result.Units, 1)
	assert.Len(t, result.Units[0].Placements, 10)
	assert.Empty(t, result.Unpacked)
}

func TestPackValidatesInput(t *testing.T) {
	_, err := Pack(context.Background(), PackRequest{})
	assert.Error(t, err)
}
