package geom

import dec "github.com/cargopack/loadplanner/internal/decimal"

// RectLayout returns how many itemL x itemW rectangles tile a
// areaL x areaW rectangle in a pure grid (no rotation mixing), and the
// per-axis counts.
func RectLayout(areaL, areaW, itemL, itemW dec.D) (perLayer, countL, countW int) {
	if dec.Cmp(itemL, dec.Zero) <= 0 || dec.Cmp(itemW, dec.Zero) <= 0 {
		return 0, 0, 0
	}
	countL = int(dec.ToFloat64(dec.Floor(dec.Div(areaL, itemL))))
	countW = int(dec.ToFloat64(dec.Floor(dec.Div(areaW, itemW))))
	if countL < 0 {
		countL = 0
	}
	if countW < 0 {
		countW = 0
	}
	return countL * countW, countL, countW
}

// CircleLayoutGrid tiles circular footprints of the given diameter on a
// simple square grid.
func CircleLayoutGrid(areaL, areaW, diameter dec.D) (perLayer, countL, countW int) {
	return RectLayout(areaL, areaW, diameter, diameter)
}

// circleLayoutHex computes a staggered (hexagonal) packing of circles of
// the given diameter within areaL x areaW. Rows are offset by half a
// diameter and spaced at diameter * sqrt(3)/2, the standard closest-packing
// row pitch. Odd rows hold one circle fewer when the half-diameter offset
// leaves no room, so the result can be below the square grid's count (a
// 5x5 area with diameter 1 gives 23 here against 25 for the grid).
func circleLayoutHex(areaL, areaW, diameter dec.D) int {
	if dec.Cmp(diameter, dec.Zero) <= 0 {
		return 0
	}
	rowPitch := dec.Mul(diameter, dec.Sqrt(dec.FromFloat64(0.75)))
	rows := int(dec.ToFloat64(dec.Floor(dec.Div(dec.Sub(areaW, diameter), rowPitch)))) + 1
	if rows < 1 {
		rows = 0
	}
	total := 0
	half := dec.FromFloat64(0.5)
	for r := 0; r < rows; r++ {
		rowWidth := areaL
		if r%2 == 1 {
			rowWidth = dec.Sub(areaL, dec.Mul(diameter, half))
		}
		count := int(dec.ToFloat64(dec.Floor(dec.Div(rowWidth, diameter))))
		if count < 0 {
			count = 0
		}
		total += count
	}
	return total
}

// CircleLayoutHexLength staggers rows along the length axis (rows run
// across width).
func CircleLayoutHexLength(areaL, areaW, diameter dec.D) int {
	return circleLayoutHex(areaW, areaL, diameter)
}

// CircleLayoutHexWidth staggers rows along the width axis (rows run
// across length).
func CircleLayoutHexWidth(areaL, areaW, diameter dec.D) int {
	return circleLayoutHex(areaL, areaW, diameter)
}

// CircleLayoutBest evaluates the grid and both hex-staggered candidates
// and returns whichever admits the most circles (spec.md §4.2's "choose
// the denser of grid/staggered packing").
func CircleLayoutBest(areaL, areaW, diameter dec.D) int {
	grid, _, _ := CircleLayoutGrid(areaL, areaW, diameter)
	hexL := CircleLayoutHexLength(areaL, areaW, diameter)
	hexW := CircleLayoutHexWidth(areaL, areaW, diameter)
	best := grid
	if hexL > best {
		best = hexL
	}
	if hexW > best {
		best = hexW
	}
	return best
}
