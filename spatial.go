package main

import "slices"

const (
	SpatialCellSize = 64.0 // roughly the size of a mid-HP enemy
	spatialMargin   = 128.0
)

// SpatialGrid is a broad-phase grid over the playfield plus a margin on every
// side. Positions outside are clamped into the border cells, so queries stay
// conservative. It stores enemy indices only.
type SpatialGrid struct {
	cols, rows int
	cells      [][]int
}

// NewSpatialGrid sizes a grid for a width x height playfield
func NewSpatialGrid(width, height float64) *SpatialGrid {
	cols := int((width+2*spatialMargin)/SpatialCellSize) + 1
	rows := int((height+2*spatialMargin)/SpatialCellSize) + 1
	return &SpatialGrid{
		cols:  cols,
		rows:  rows,
		cells: make([][]int, cols*rows),
	}
}

// Clear resets all cells (keeps allocated capacity)
func (g *SpatialGrid) Clear() {
	for i := range g.cells {
		g.cells[i] = g.cells[i][:0]
	}
}

func clampCell(v float64, n int) int {
	c := int((v + spatialMargin) / SpatialCellSize)
	return min(max(c, 0), n-1)
}

func (g *SpatialGrid) span(x, y, radius float64) (minCX, maxCX, minCY, maxCY int) {
	minCX = clampCell(x-radius, g.cols)
	maxCX = clampCell(x+radius, g.cols)
	minCY = clampCell(y-radius, g.rows)
	maxCY = clampCell(y+radius, g.rows)
	return
}

// Insert adds an index to every cell the circle's bounding box touches
func (g *SpatialGrid) Insert(x, y, radius float64, idx int) {
	minCX, maxCX, minCY, maxCY := g.span(x, y, radius)
	for cy := minCY; cy <= maxCY; cy++ {
		for cx := minCX; cx <= maxCX; cx++ {
			cell := cy*g.cols + cx
			g.cells[cell] = append(g.cells[cell], idx)
		}
	}
}

// QueryBuf appends the sorted, de-duplicated indices of every entity whose
// cells overlap the given box to buf[:0]
func (g *SpatialGrid) QueryBuf(x, y, radius float64, buf []int) []int {
	buf = buf[:0]
	minCX, maxCX, minCY, maxCY := g.span(x, y, radius)
	for cy := minCY; cy <= maxCY; cy++ {
		for cx := minCX; cx <= maxCX; cx++ {
			buf = append(buf, g.cells[cy*g.cols+cx]...)
		}
	}
	slices.Sort(buf)
	return slices.Compact(buf)
}

// Query is QueryBuf with a fresh slice
func (g *SpatialGrid) Query(x, y, radius float64) []int {
	return g.QueryBuf(x, y, radius, nil)
}
