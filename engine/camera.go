package engine

import (
	"image/color"
	"math"

	"github.com/harbdog/raycaster-go/geom"

	"minotaur/level"
	"minotaur/model"
)

// -- camera

const (
	// RayCount is the number of rays cast per frame.
	RayCount = 128
	// NoHit is the distance reported by a grid-line search that found no wall.
	NoHit = 1e6

	shadeVertical   = 1.0
	shadeHorizontal = 0.7

	// rays closer than this to a grid axis skip that axis search
	degenerateEpsilon = 1e-6
	// pulls a ray start just across a grid line so it indexes the cell beyond it
	lineNudge = 0.0001
	// smallest distance used for projection, keeps wall height finite against a wall face
	minProjectDist = 1e-3
)

var Backdrop = color.RGBA{51, 51, 51, 255}

// Pose is the viewer position in world units and heading in radians.
type Pose struct {
	X, Y  float64
	Angle float64
}

func PoseOf(p *model.Player) Pose {
	return Pose{X: p.Position.X, Y: p.Position.Y, Angle: p.Angle}
}

// Hit is the result of one grid-line search.
type Hit struct {
	X, Y     float64
	Dist     float64
	Cell     level.Cell
	Vertical bool
}

// Camera projects the grid into a frame with a fan of RayCount rays, each one filling
// a band of equal-width screen columns.
type Camera struct {
	w, h     int
	band     int
	fovAngle float64
	step     float64
	tex      Textures
}

func NewCamera(width, height int, tex Textures) *Camera {
	c := &Camera{
		w:   width,
		h:   height,
		tex: tex,
	}
	c.band = width / RayCount
	if c.band < 1 {
		c.band = 1
	}
	c.SetFovAngle(60)
	return c
}

func (c *Camera) SetFovAngle(fovDegrees float64) {
	c.fovAngle = radians(fovDegrees)
	c.step = c.fovAngle / RayCount
}

func (c *Camera) FovRadians() float64 { return c.fovAngle }

// RayStep is the angle between neighbouring rays.
func (c *Camera) RayStep() float64 { return c.step }

// BandWidth is the number of screen columns filled by each ray.
func (c *Camera) BandWidth() int { return c.band }

func (c *Camera) SetTextures(tex Textures) { c.tex = tex }

// RayAngle returns the direction of ray r for a viewer facing heading.
func (c *Camera) RayAngle(heading float64, r int) float64 {
	return model.NormalizeAngle(heading - c.fovAngle/2 + float64(r)*c.step)
}

// MaxDepth bounds both grid-line searches: a ray can cross at most one grid line per
// row (or column) of the map before leaving it.
func MaxDepth(grid *level.Grid) int {
	if grid.Width() > grid.Height() {
		return grid.Width()
	}
	return grid.Height()
}

// Render casts every ray for pose, draws walls, floor and ceiling into frame and
// records the corrected wall distance of each column in depth.
func (c *Camera) Render(frame *Frame, pose Pose, grid *level.Grid, depth DepthBuffer) {
	frame.Clear(Backdrop)

	for r := 0; r < RayCount; r++ {
		ra := c.RayAngle(pose.Angle, r)
		hit := c.Cast(pose.X, pose.Y, ra, grid)

		// fisheye correction
		dist := hit.Dist * math.Cos(model.NormalizeAngle(pose.Angle-ra))

		x0 := r * c.band
		depth.Band(x0, c.band, dist)
		c.castLevel(frame, pose, ra, x0, hit, dist, grid)
	}
}

// Cast runs both grid-line searches for a ray at angle ra and returns the nearer hit.
func (c *Camera) Cast(px, py, ra float64, grid *level.Grid) Hit {
	maxDepth := MaxDepth(grid)
	h := castHorizontal(px, py, ra, grid, maxDepth)
	v := castVertical(px, py, ra, grid, maxDepth)
	if v.Dist < h.Dist {
		return v
	}
	return h
}

// castHorizontal walks the ray across horizontal grid lines.
func castHorizontal(px, py, ra float64, grid *level.Grid, maxDepth int) Hit {
	hit := Hit{Dist: NoHit}
	if math.Abs(math.Sin(ra)) < degenerateEpsilon {
		return hit
	}

	aTan := -1 / math.Tan(ra)
	var rx, ry, xo, yo float64
	if math.Sin(ra) < 0 {
		ry = math.Floor(py/level.CellSize)*level.CellSize - lineNudge
		yo = -level.CellSize
	} else {
		ry = math.Floor(py/level.CellSize)*level.CellSize + level.CellSize
		yo = level.CellSize
	}
	rx = (py-ry)*aTan + px
	xo = -yo * aTan

	for dof := 0; dof < maxDepth; dof++ {
		mx, my := level.CellAt(rx, ry)
		if grid.InBounds(mx, my) && grid.IsSolid(mx, my) {
			hit.X, hit.Y = rx, ry
			hit.Dist = geom.Distance(px, py, rx, ry)
			hit.Cell = grid.At(mx, my)
			return hit
		}
		rx += xo
		ry += yo
	}
	return hit
}

// castVertical walks the ray across vertical grid lines.
func castVertical(px, py, ra float64, grid *level.Grid, maxDepth int) Hit {
	hit := Hit{Dist: NoHit, Vertical: true}
	if math.Abs(math.Cos(ra)) < degenerateEpsilon {
		return hit
	}

	nTan := -math.Tan(ra)
	var rx, ry, xo, yo float64
	if math.Cos(ra) < 0 {
		rx = math.Floor(px/level.CellSize)*level.CellSize - lineNudge
		xo = -level.CellSize
	} else {
		rx = math.Floor(px/level.CellSize)*level.CellSize + level.CellSize
		xo = level.CellSize
	}
	ry = (px-rx)*nTan + py
	yo = -xo * nTan

	for dof := 0; dof < maxDepth; dof++ {
		mx, my := level.CellAt(rx, ry)
		if grid.InBounds(mx, my) && grid.IsSolid(mx, my) {
			hit.X, hit.Y = rx, ry
			hit.Dist = geom.Distance(px, py, rx, ry)
			hit.Cell = grid.At(mx, my)
			return hit
		}
		rx += xo
		ry += yo
	}
	return hit
}

// castLevel draws the ceiling, wall and floor of one ray band.
func (c *Camera) castLevel(frame *Frame, pose Pose, ra float64, x0 int, hit Hit, dist float64, grid *level.Grid) {
	h := float64(c.h)
	horizon := h / 2

	projDist := math.Max(dist, minProjectDist)
	lineH := level.CellSize * h / projDist
	texStep := float64(TexSize) / lineH
	texOff := 0.0
	if lineH > h {
		texOff = (lineH - h) / 2
		lineH = h
	}
	lineOff := horizon - lineH/2
	top := int(lineOff)
	bottom := int(lineOff + lineH)

	// cosine of the ray's offset from the heading, shared by every floor and ceiling row
	caFix := math.Cos(pose.Angle - ra)
	sinRa, cosRa := math.Sin(ra), math.Cos(ra)

	for y := 0; y < top; y++ {
		dy := horizon - float64(y)
		if math.Abs(dy) < 1e-6 {
			continue
		}
		rowDist := level.CellSize * h / (dy * 2 * caFix)
		wx := pose.X + cosRa*rowDist
		wy := pose.Y + sinRa*rowDist
		cx, cy := level.CellAt(wx, wy)
		if px, ok := sampleWorld(c.tex.Lookup(grid.CeilingAt(cx, cy)), wx, wy); ok {
			c.fillBand(frame, x0, y, px)
		}
	}

	wallTex := c.tex.Lookup(level.Tex_Wall)
	if hit.Cell == level.Cell_Door {
		wallTex = c.tex.Lookup(level.Tex_Door)
	}
	if wallTex != nil && hit.Dist < NoHit {
		shade := shadeHorizontal
		texX := posMod(int(math.Floor(hit.X)), wallTex.Width)
		if hit.Vertical {
			shade = shadeVertical
			texX = posMod(int(math.Floor(hit.Y)), wallTex.Width)
		}

		for y := top; y < bottom; y++ {
			texY := int((float64(y-top) + texOff) * texStep * float64(wallTex.Height) / TexSize)
			if texY < 0 {
				texY = 0
			}
			if texY >= wallTex.Height {
				texY = wallTex.Height - 1
			}
			if px, ok := wallTex.At(texX, texY); ok {
				c.fillBand(frame, x0, y, Shade(px, shade))
			}
		}
	}

	for y := bottom; y < c.h; y++ {
		dy := float64(y) - horizon
		if math.Abs(dy) < 1e-6 {
			continue
		}
		rowDist := level.CellSize * h / (dy * 2 * caFix)
		wx := pose.X + cosRa*rowDist
		wy := pose.Y + sinRa*rowDist
		cx, cy := level.CellAt(wx, wy)
		if px, ok := sampleWorld(c.tex.Lookup(grid.FloorAt(cx, cy)), wx, wy); ok {
			c.fillBand(frame, x0, y, px)
		}
	}
}

func (c *Camera) fillBand(frame *Frame, x0, y int, px color.RGBA) {
	for x := x0; x < x0+c.band; x++ {
		frame.Set(x, y, px)
	}
}

// sampleWorld tiles tex across world space, one texel per world unit.
func sampleWorld(tex *Texture, wx, wy float64) (color.RGBA, bool) {
	if tex == nil || tex.Width == 0 || tex.Height == 0 {
		return color.RGBA{}, false
	}
	if math.IsInf(wx, 0) || math.IsNaN(wx) || math.IsInf(wy, 0) || math.IsNaN(wy) {
		return color.RGBA{}, false
	}
	return tex.At(posMod(int(math.Floor(wx)), tex.Width), posMod(int(math.Floor(wy)), tex.Height))
}

func posMod(a, m int) int {
	if m <= 0 {
		return 0
	}
	a %= m
	if a < 0 {
		a += m
	}
	return a
}

func radians(degrees float64) float64 {
	return degrees * math.Pi / 180
}
