package level

import "math/rand"

type Border int

const (
	Border_Top Border = iota
	Border_Bottom
	Border_Left
	Border_Right
)

// MaxDoorAttempts bounds the random door picks before falling back to a border scan.
func MaxDoorAttempts(g *Grid) int {
	return 4 * (g.Width() + g.Height())
}

// PlaceDoor marks one border cell of g as the exit door. The cell must not be the spawn
// and its neighbour on the inside of the border must be open. Random picks are tried
// first; once MaxDoorAttempts is spent the border is scanned in order. It reports false only
// when no border cell qualifies, in which case g is left untouched.
func PlaceDoor(g *Grid, rng *rand.Rand) (Point, bool) {
	w, h := g.Width(), g.Height()
	if w < 3 || h < 3 {
		return Point{}, false
	}

	for attempt := 0; attempt < MaxDoorAttempts(g); attempt++ {
		edge := Border(rng.Intn(4))
		var p Point
		switch edge {
		case Border_Top:
			p = Point{X: rng.Intn(w-2) + 1, Y: 0}
		case Border_Bottom:
			p = Point{X: rng.Intn(w-2) + 1, Y: h - 1}
		case Border_Left:
			p = Point{X: 0, Y: rng.Intn(h-2) + 1}
		default:
			p = Point{X: w - 1, Y: rng.Intn(h-2) + 1}
		}

		if validDoor(g, p, edge) {
			g.Set(p.X, p.Y, Cell_Door)
			return p, true
		}
	}

	for _, edge := range []Border{Border_Top, Border_Bottom, Border_Left, Border_Right} {
		for _, p := range borderCells(w, h, edge) {
			if validDoor(g, p, edge) {
				g.Set(p.X, p.Y, Cell_Door)
				return p, true
			}
		}
	}

	return Point{}, false
}

// Inward returns the interior neighbour of border cell p on the given edge.
func Inward(p Point, edge Border, w, h int) Point {
	switch edge {
	case Border_Top:
		return Point{X: p.X, Y: 1}
	case Border_Bottom:
		return Point{X: p.X, Y: h - 2}
	case Border_Left:
		return Point{X: 1, Y: p.Y}
	default:
		return Point{X: w - 2, Y: p.Y}
	}
}

// BorderOf reports which edge p lies on, skipping corners.
func BorderOf(p Point, w, h int) (Border, bool) {
	corner := (p.X == 0 || p.X == w-1) && (p.Y == 0 || p.Y == h-1)
	switch {
	case corner:
		return 0, false
	case p.Y == 0:
		return Border_Top, true
	case p.Y == h-1:
		return Border_Bottom, true
	case p.X == 0:
		return Border_Left, true
	case p.X == w-1:
		return Border_Right, true
	}
	return 0, false
}

func validDoor(g *Grid, p Point, edge Border) bool {
	if p == Spawn {
		return false
	}
	in := Inward(p, edge, g.Width(), g.Height())
	return g.At(in.X, in.Y) == Cell_Empty
}

func borderCells(w, h int, edge Border) []Point {
	var cells []Point
	switch edge {
	case Border_Top, Border_Bottom:
		y := 0
		if edge == Border_Bottom {
			y = h - 1
		}
		for x := 1; x < w-1; x++ {
			cells = append(cells, Point{X: x, Y: y})
		}
	default:
		x := 0
		if edge == Border_Right {
			x = w - 1
		}
		for y := 1; y < h-1; y++ {
			cells = append(cells, Point{X: x, Y: y})
		}
	}
	return cells
}
