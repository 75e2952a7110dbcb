package model

import (
	"image/color"
	"math"

	"github.com/harbdog/raycaster-go/geom"
)

const (
	Pi2 = 2 * math.Pi

	// PlayerWalkSpeed is the distance covered per tick, in world units.
	PlayerWalkSpeed = 3.0
	// PlayerRotateSpeed is the heading change per tick, in radians.
	PlayerRotateSpeed = 0.05
)

var PlayerMapColor = color.RGBA{0, 255, 255, 255}

// Player is the viewer's pose in world units. Angle is kept in [0, 2π) and Dir is
// always the unit vector for Angle.
type Player struct {
	Position *geom.Vector2
	Angle    float64
	Dir      *geom.Vector2
	Moved    bool
}

func NewPlayer(x, y, angle float64) *Player {
	p := &Player{
		Position: &geom.Vector2{X: x, Y: y},
	}
	p.SetAngle(angle)
	return p
}

// SetAngle sets the heading, wrapping it into [0, 2π), and refreshes Dir.
func (p *Player) SetAngle(angle float64) {
	p.Angle = NormalizeAngle(angle)
	p.Dir = &geom.Vector2{X: math.Cos(p.Angle), Y: math.Sin(p.Angle)}
}

// Rotate turns the heading by delta radians.
func (p *Player) Rotate(delta float64) {
	p.SetAngle(p.Angle + delta)
	p.Moved = true
}

// Ahead returns the point dist units along the heading (negative dist walks backwards).
func (p *Player) Ahead(dist float64) (float64, float64) {
	line := geom.LineFromAngle(p.Position.X, p.Position.Y, p.Angle, dist)
	return line.X2, line.Y2
}

func (p *Player) MoveTo(x, y float64) {
	p.Position = &geom.Vector2{X: x, Y: y}
	p.Moved = true
}

// NormalizeAngle wraps an angle into [0, 2π).
func NormalizeAngle(a float64) float64 {
	a = math.Mod(a, Pi2)
	if a < 0 {
		a += Pi2
	}
	if a >= Pi2 {
		a = 0
	}
	return a
}

// SignedAngle wraps an angle into [-π, π].
func SignedAngle(a float64) float64 {
	a = math.Mod(a, Pi2)
	if a > math.Pi {
		a -= Pi2
	} else if a < -math.Pi {
		a += Pi2
	}
	return a
}
