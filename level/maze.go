package level

import (
	"math/rand"

	"github.com/zyedidia/generic/stack"
)

type Point struct {
	X, Y int
}

// Spawn is the cell the player starts in and the root of every carved maze.
var Spawn = Point{X: 1, Y: 1}

// two-cell steps: carving always lands on odd coordinates
var carveDirections = [4]Point{{0, 2}, {0, -2}, {2, 0}, {-2, 0}}

// GenerateMaze carves a perfect maze into g with a randomized depth-first backtracker.
// Every odd interior cell ends up reachable from Spawn by exactly one path.
func GenerateMaze(g *Grid, rng *rand.Rand) {
	g.Fill(Cell_Wall)

	w, h := g.Width(), g.Height()
	g.Set(Spawn.X, Spawn.Y, Cell_Empty)

	// depth never exceeds the number of odd interior cells
	cells := stack.New[Point]()
	cells.Push(Spawn)

	dirs := carveDirections
	for cells.Size() > 0 {
		cur := cells.Peek()

		rng.Shuffle(len(dirs), func(i, j int) { dirs[i], dirs[j] = dirs[j], dirs[i] })

		carved := false
		for _, d := range dirs {
			nx, ny := cur.X+d.X, cur.Y+d.Y
			if nx <= 0 || nx >= w-1 || ny <= 0 || ny >= h-1 {
				continue
			}
			if g.At(nx, ny) != Cell_Wall {
				continue
			}

			g.Set(cur.X+d.X/2, cur.Y+d.Y/2, Cell_Empty)
			g.Set(nx, ny, Cell_Empty)
			cells.Push(Point{X: nx, Y: ny})
			carved = true
			break
		}

		if !carved {
			cells.Pop()
		}
	}
}

// InteriorOddCells returns how many cells the carver can visit on a w x h grid.
func InteriorOddCells(w, h int) int {
	return ((w - 1) / 2) * ((h - 1) / 2)
}
