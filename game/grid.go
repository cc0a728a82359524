package game

import "slices"

// --- Spatial Hash Grid for Collision Detection ---

// SpatialGrid is a uniform grid over an area of the mode's plane. Entries
// are container indices, so a query can be replayed in container order.
// Positions outside the area are clamped into the edge cells.
type SpatialGrid struct {
	CellSize   float64
	GridWidth  int
	GridHeight int
	Cells      [][]int

	plane     Plane
	originU   float64
	originV   float64
	maxRadius float64
}

// NewSpatialGrid creates a grid covering area on plane.
// cellSize should be roughly 2x the largest object radius.
func NewSpatialGrid(area Bounds, plane Plane, cellSize float64) *SpatialGrid {
	minU, minV := planar(plane, area.Min)
	maxU, maxV := planar(plane, area.Max)

	gridWidth := int((maxU-minU)/cellSize) + 1
	gridHeight := int((maxV-minV)/cellSize) + 1

	cells := make([][]int, gridWidth*gridHeight)
	for i := range cells {
		cells[i] = make([]int, 0, 4) // Pre-allocate small capacity
	}

	return &SpatialGrid{
		CellSize:   cellSize,
		GridWidth:  gridWidth,
		GridHeight: gridHeight,
		Cells:      cells,
		plane:      plane,
		originU:    minU,
		originV:    minV,
	}
}

func planar(plane Plane, p Vec) (u, v float64) {
	if plane == PlaneXZ {
		return p.X, p.Z
	}
	return p.X, p.Y
}

// cell returns clamped cell coordinates for planar coordinates u, v.
func (sg *SpatialGrid) cell(u, v float64) (cx, cy int) {
	cx = int((u - sg.originU) / sg.CellSize)
	cy = int((v - sg.originV) / sg.CellSize)
	cx = max(0, min(sg.GridWidth-1, cx))
	cy = max(0, min(sg.GridHeight-1, cy))
	return cx, cy
}

// Clear removes all entries. Call before repopulating each tick.
func (sg *SpatialGrid) Clear() {
	for i := range sg.Cells {
		sg.Cells[i] = sg.Cells[i][:0] // Keep capacity, reset length
	}
	sg.maxRadius = 0
}

// Insert records container index idx for an entity at p with radius r.
func (sg *SpatialGrid) Insert(p Vec, r float64, idx int) {
	cx, cy := sg.cell(planar(sg.plane, p))
	i := cy*sg.GridWidth + cx
	sg.Cells[i] = append(sg.Cells[i], idx)
	sg.maxRadius = max(sg.maxRadius, r)
}

// Candidates appends to buf, in ascending index order, every index whose
// entity could be within reach of p. reach should be the querying entity's
// radius; the largest inserted radius is added automatically.
func (sg *SpatialGrid) Candidates(p Vec, reach float64, buf []int) []int {
	buf = buf[:0]
	u, v := planar(sg.plane, p)
	r := reach + sg.maxRadius

	x0, y0 := sg.cell(u-r, v-r)
	x1, y1 := sg.cell(u+r, v+r)
	for cy := y0; cy <= y1; cy++ {
		for cx := x0; cx <= x1; cx++ {
			buf = append(buf, sg.Cells[cy*sg.GridWidth+cx]...)
		}
	}

	slices.Sort(buf)
	return buf
}
