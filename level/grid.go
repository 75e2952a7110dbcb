package level

import (
	"image/color"
	"math"
)

type Cell int

const (
	Cell_Empty Cell = iota
	Cell_Wall
	Cell_Door
)

type CellColor = color.RGBA

var (
	CellColor_Empty = color.RGBA{200, 200, 200, 255}
	CellColor_Wall  = color.RGBA{50, 50, 50, 255}
	CellColor_Door  = color.RGBA{0, 255, 0, 255}
)

const (
	// Size is the edge length of the square grid, in cells.
	Size = 16
	// CellSize is the edge length of one cell in world units.
	CellSize = 64

	Tex_Wall    = 1
	Tex_Floor   = 2
	Tex_Ceiling = 3
	Tex_Door    = 4
)

// Grid is the maze cell layout plus the floor and ceiling texture ids of every cell.
// Rows are indexed first: cells[y][x].
type Grid struct {
	cells   [][]Cell
	floor   [][]int
	ceiling [][]int
}

func NewGrid(width, height int) *Grid {
	g := &Grid{
		cells:   make([][]Cell, height),
		floor:   make([][]int, height),
		ceiling: make([][]int, height),
	}
	for y := 0; y < height; y++ {
		g.cells[y] = make([]Cell, width)
		g.floor[y] = make([]int, width)
		g.ceiling[y] = make([]int, width)
		for x := 0; x < width; x++ {
			g.cells[y][x] = Cell_Wall
			g.floor[y][x] = Tex_Floor
			g.ceiling[y][x] = Tex_Ceiling
		}
	}
	return g
}

func (g *Grid) Width() int {
	if len(g.cells) == 0 {
		return 0
	}
	return len(g.cells[0])
}

func (g *Grid) Height() int { return len(g.cells) }

func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && y < len(g.cells) && x < len(g.cells[y])
}

// At returns the cell code at x, y. Cells outside the grid read as Cell_Wall.
func (g *Grid) At(x, y int) Cell {
	if !g.InBounds(x, y) {
		return Cell_Wall
	}
	return g.cells[y][x]
}

func (g *Grid) Set(x, y int, c Cell) {
	if g.InBounds(x, y) {
		g.cells[y][x] = c
	}
}

// Fill sets every cell to c.
func (g *Grid) Fill(c Cell) {
	for y := range g.cells {
		for x := range g.cells[y] {
			g.cells[y][x] = c
		}
	}
}

// FloorAt returns the floor texture id for the cell, or the default floor outside the grid.
func (g *Grid) FloorAt(x, y int) int {
	if !g.InBounds(x, y) {
		return Tex_Floor
	}
	return g.floor[y][x]
}

// CeilingAt returns the ceiling texture id for the cell, or the default ceiling outside the grid.
func (g *Grid) CeilingAt(x, y int) int {
	if !g.InBounds(x, y) {
		return Tex_Ceiling
	}
	return g.ceiling[y][x]
}

func (g *Grid) SetFloor(x, y, tex int) {
	if g.InBounds(x, y) {
		g.floor[y][x] = tex
	}
}

func (g *Grid) SetCeiling(x, y, tex int) {
	if g.InBounds(x, y) {
		g.ceiling[y][x] = tex
	}
}

// IsSolid reports whether rays stop at the cell.
func (g *Grid) IsSolid(x, y int) bool {
	c := g.At(x, y)
	return c == Cell_Wall || c == Cell_Door
}

// CellAt converts world coordinates to cell indices.
func CellAt(worldX, worldY float64) (int, int) {
	return int(math.Floor(worldX / CellSize)), int(math.Floor(worldY / CellSize))
}

// CellCenter returns the world coordinates of the centre of cell x, y.
func CellCenter(x, y int) (float64, float64) {
	return float64(x*CellSize) + CellSize/2, float64(y*CellSize) + CellSize/2
}

// Color returns the minimap color for the cell code.
func (c Cell) Color() CellColor {
	switch c {
	case Cell_Wall:
		return CellColor_Wall
	case Cell_Door:
		return CellColor_Door
	default:
		return CellColor_Empty
	}
}

func (c Cell) String() string {
	switch c {
	case Cell_Empty:
		return "empty"
	case Cell_Wall:
		return "wall"
	case Cell_Door:
		return "door"
	}
	return "unknown"
}
