package engine

import (
	"image"
	"image/color"
	"math"

	"minotaur/level"
	"minotaur/model"
)

// MinSpriteDistance culls sprites the viewer is standing on.
const MinSpriteDistance = 1.0

var KeyColor = color.RGBA{255, 214, 0, 255}

// SpriteProjection is where a billboard lands on screen.
type SpriteProjection struct {
	// Rect is the full billboard square, before clipping to the screen.
	Rect image.Rectangle
	// Depth is the straight-line distance compared against the depth buffer.
	Depth float64
	Size  float64
}

// ProjectSprite places a billboard at world position x, y for the given pose. It
// reports false when the sprite is outside the field of view or too close to draw.
func (c *Camera) ProjectSprite(pose Pose, x, y float64) (SpriteProjection, bool) {
	spx := x - pose.X
	spy := y - pose.Y

	rel := model.SignedAngle(math.Atan2(spy, spx) - pose.Angle)
	if rel < -c.fovAngle/2 || rel > c.fovAngle/2 {
		return SpriteProjection{}, false
	}

	dist := math.Hypot(spx, spy)
	if dist < MinSpriteDistance {
		return SpriteProjection{}, false
	}

	size := level.CellSize * float64(c.h) / dist
	if size > float64(c.h) {
		size = float64(c.h)
	}

	// same angle-to-column scale as the ray fan
	screenX := c.w/2 + int(rel/c.step*float64(c.band))
	half := int(size / 2)
	rect := image.Rect(screenX-half, c.h/2-half, screenX+half, c.h/2+half)

	return SpriteProjection{Rect: rect, Depth: dist, Size: size}, true
}

// DrawPickups paints every active pickup as a key billboard, skipping columns where
// the depth buffer records a nearer wall.
func (c *Camera) DrawPickups(frame *Frame, pose Pose, pickups []model.Pickup, depth DepthBuffer) {
	for i := range pickups {
		if !pickups[i].Active {
			continue
		}
		c.DrawSprite(frame, pose, pickups[i].Position.X, pickups[i].Position.Y, depth)
	}
}

// DrawSprite paints one key billboard and returns the number of pixels written.
func (c *Camera) DrawSprite(frame *Frame, pose Pose, x, y float64, depth DepthBuffer) int {
	proj, ok := c.ProjectSprite(pose, x, y)
	if !ok || proj.Size <= 0 {
		return 0
	}

	clip := proj.Rect.Intersect(frame.Bounds())
	drawn := 0
	for sx := clip.Min.X; sx < clip.Max.X; sx++ {
		if depth.Occludes(sx, proj.Depth) {
			continue
		}
		nx := float64(sx-proj.Rect.Min.X) / proj.Size
		for sy := clip.Min.Y; sy < clip.Max.Y; sy++ {
			ny := float64(sy-proj.Rect.Min.Y) / proj.Size
			if KeyShape(nx, ny) {
				frame.Set(sx, sy, KeyColor)
				drawn++
			}
		}
	}
	return drawn
}

// KeyShape reports whether the billboard-local point nx, ny (both in [0, 1]) is part
// of the key silhouette.
func KeyShape(nx, ny float64) bool {
	const (
		headX, headY = 0.5, 0.25
		headRadius   = 0.15
		holeRadius   = 0.06
	)

	draw := false

	headDist := math.Hypot(nx-headX, ny-headY)
	if headDist < headRadius {
		draw = true
	}
	if headDist < holeRadius {
		draw = false
	}

	// shaft
	if nx > 0.43 && nx < 0.57 && ny > 0.35 && ny < 0.75 {
		draw = true
	}

	// teeth
	if nx > 0.43 && nx < 0.50 && ny > 0.70 && ny < 0.78 {
		draw = true
	}
	if nx > 0.43 && nx < 0.50 && ny > 0.82 && ny < 0.90 {
		draw = true
	}

	return draw
}
