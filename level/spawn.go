package level

import (
	"math/rand"

	"github.com/zyedidia/generic/mapset"
)

// PickupCells chooses up to n distinct open interior cells, never the spawn cell.
// Cells are drawn at random; if the random draws run dry the interior is scanned
// row by row for the remaining picks. Fewer than n cells are returned only when the
// grid does not have enough open cells.
func PickupCells(g *Grid, rng *rand.Rand, n int) []Point {
	w, h := g.Width(), g.Height()
	if n <= 0 || w < 3 || h < 3 {
		return nil
	}

	taken := mapset.New[Point]()
	picks := make([]Point, 0, n)
	usable := func(p Point) bool {
		return p != Spawn && g.At(p.X, p.Y) == Cell_Empty && !taken.Has(p)
	}

	maxAttempts := 4 * w * h
	for attempt := 0; attempt < maxAttempts && len(picks) < n; attempt++ {
		p := Point{X: rng.Intn(w-2) + 1, Y: rng.Intn(h-2) + 1}
		if usable(p) {
			taken.Put(p)
			picks = append(picks, p)
		}
	}

	for y := 1; y < h-1 && len(picks) < n; y++ {
		for x := 1; x < w-1 && len(picks) < n; x++ {
			p := Point{X: x, Y: y}
			if usable(p) {
				taken.Put(p)
				picks = append(picks, p)
			}
		}
	}

	return picks
}

// Generate builds a fresh size x size level: a carved maze with one exit door.
func Generate(size int, rng *rand.Rand) (*Grid, Point) {
	g := NewGrid(size, size)
	GenerateMaze(g, rng)
	door, _ := PlaceDoor(g, rng)
	return g, door
}
