package model

import (
	"image/color"

	"github.com/harbdog/raycaster-go/geom"
)

const (
	// MaxPickups is the capacity of the pickup collection.
	MaxPickups = 5
	// PickupRadius is how close the player must get to collect a pickup.
	PickupRadius = 20.0
)

var PickupMapColor = color.RGBA{255, 214, 0, 255}

// Pickup is a collectible key placed in the maze.
type Pickup struct {
	Position geom.Vector2
	Active   bool
}

func NewPickup(x, y float64) Pickup {
	return Pickup{Position: geom.Vector2{X: x, Y: y}, Active: true}
}

// Pickups is the fixed-capacity key collection; slots past the keys required stay inactive.
type Pickups [MaxPickups]Pickup

// Collect deactivates every active pickup within PickupRadius of x, y and
// returns how many were taken.
func (ps *Pickups) Collect(x, y float64) int {
	taken := 0
	for i := range ps {
		p := &ps[i]
		if !p.Active {
			continue
		}
		if geom.Distance(x, y, p.Position.X, p.Position.Y) < PickupRadius {
			p.Active = false
			taken++
		}
	}
	return taken
}

func (ps *Pickups) ActiveCount() int {
	n := 0
	for _, p := range ps {
		if p.Active {
			n++
		}
	}
	return n
}
