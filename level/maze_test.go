package level

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// floodFill counts open interior cells reachable from start through N/E/S/W steps.
func floodFill(g *Grid, start Point) int {
	seen := map[Point]bool{start: true}
	queue := []Point{start}
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		for _, d := range []Point{{0, 1}, {0, -1}, {1, 0}, {-1, 0}} {
			n := Point{X: c.X + d.X, Y: c.Y + d.Y}
			if n.X <= 0 || n.Y <= 0 || n.X >= g.Width()-1 || n.Y >= g.Height()-1 {
				continue
			}
			if g.At(n.X, n.Y) == Cell_Empty && !seen[n] {
				seen[n] = true
				queue = append(queue, n)
			}
		}
	}
	return len(seen)
}

func openInterior(g *Grid) (cells, edges int) {
	for y := 1; y < g.Height()-1; y++ {
		for x := 1; x < g.Width()-1; x++ {
			if g.At(x, y) != Cell_Empty {
				continue
			}
			cells++
			if g.At(x+1, y) == Cell_Empty && x+1 < g.Width()-1 {
				edges++
			}
			if g.At(x, y+1) == Cell_Empty && y+1 < g.Height()-1 {
				edges++
			}
		}
	}
	return cells, edges
}

func TestGenerateMaze_SpanningTree(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		g := NewGrid(Size, Size)
		GenerateMaze(g, rand.New(rand.NewSource(seed)))

		cells, edges := openInterior(g)
		require.Equal(t, cells, floodFill(g, Spawn), "seed %d: unreachable open cells", seed)
		// a connected graph with V-1 edges has no cycles
		assert.Equal(t, cells-1, edges, "seed %d: maze has a cycle", seed)
	}
}

func TestGenerateMaze_VisitsEveryOddCell(t *testing.T) {
	g := NewGrid(Size, Size)
	GenerateMaze(g, rand.New(rand.NewSource(7)))

	visited := 0
	for y := 1; y < Size-1; y += 2 {
		for x := 1; x < Size-1; x += 2 {
			if g.At(x, y) == Cell_Empty {
				visited++
			}
		}
	}
	assert.Equal(t, InteriorOddCells(Size, Size), visited)
}

func TestGenerateMaze_BorderStaysWall(t *testing.T) {
	g := NewGrid(Size, Size)
	GenerateMaze(g, rand.New(rand.NewSource(3)))

	for i := 0; i < Size; i++ {
		assert.Equal(t, Cell_Wall, g.At(i, 0))
		assert.Equal(t, Cell_Wall, g.At(i, Size-1))
		assert.Equal(t, Cell_Wall, g.At(0, i))
		assert.Equal(t, Cell_Wall, g.At(Size-1, i))
	}
}

func TestGenerateMaze_SameSeedSameLayout(t *testing.T) {
	a := NewGrid(Size, Size)
	b := NewGrid(Size, Size)
	GenerateMaze(a, rand.New(rand.NewSource(42)))
	GenerateMaze(b, rand.New(rand.NewSource(42)))

	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			require.Equal(t, a.At(x, y), b.At(x, y), "cell (%d,%d)", x, y)
		}
	}
}

func TestGenerateMaze_OddSizedGrid(t *testing.T) {
	g := NewGrid(21, 11)
	GenerateMaze(g, rand.New(rand.NewSource(5)))

	cells, edges := openInterior(g)
	assert.Equal(t, cells, floodFill(g, Spawn))
	assert.Equal(t, cells-1, edges)
}
