package engine

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"minotaur/level"
	"minotaur/model"
)

func TestKeyShape(t *testing.T) {
	assert.True(t, KeyShape(0.5, 0.15), "head ring")
	assert.False(t, KeyShape(0.5, 0.25), "hole")
	assert.True(t, KeyShape(0.5, 0.5), "shaft")
	assert.True(t, KeyShape(0.45, 0.85), "lower tooth")
	assert.False(t, KeyShape(0.1, 0.1))
	assert.False(t, KeyShape(0.9, 0.9))
}

func TestProjectSprite(t *testing.T) {
	c := newTestCamera()
	pose := Pose{X: 96, Y: 96, Angle: 0}

	proj, ok := c.ProjectSprite(pose, 96+128, 96)
	require.True(t, ok)
	assert.InDelta(t, 128, proj.Depth, 1e-9)
	assert.InDelta(t, 256, proj.Size, 1e-9)
	assert.Equal(t, ScreenWidth/2, (proj.Rect.Min.X+proj.Rect.Max.X)/2)

	_, ok = c.ProjectSprite(pose, 96-128, 96)
	assert.False(t, ok, "behind the viewer")

	_, ok = c.ProjectSprite(pose, 96.5, 96)
	assert.False(t, ok, "too close")

	// off-axis size follows the straight-line distance
	rel := 25 * math.Pi / 180
	proj, ok = c.ProjectSprite(pose, 96+200*math.Cos(rel), 96+200*math.Sin(rel))
	require.True(t, ok)
	assert.InDelta(t, 200, proj.Depth, 1e-9)
	assert.InDelta(t, level.CellSize*ScreenHeight/200.0, proj.Size, 1e-9)

	// 45 degrees off-axis is outside the ±30 degree field of view
	_, ok = c.ProjectSprite(pose, 96+100, 96+100)
	assert.False(t, ok)
}

func TestProjectSprite_CapsSize(t *testing.T) {
	c := newTestCamera()
	proj, ok := c.ProjectSprite(Pose{X: 96, Y: 96}, 96+10, 96)
	require.True(t, ok)
	assert.Equal(t, float64(ScreenHeight), proj.Size)
}

func TestDrawSprite_VisibleInOpenRoom(t *testing.T) {
	c := newTestCamera()
	frame := NewFrame(ScreenWidth, ScreenHeight)
	depth := NewDepthBuffer(ScreenWidth)
	pose := Pose{X: 96, Y: 96, Angle: 0}

	c.Render(frame, pose, openRoom(), depth)
	drawn := c.DrawSprite(frame, pose, 96+200, 96, depth)

	assert.Greater(t, drawn, 0)
}

func TestDrawSprite_OccludedByWall(t *testing.T) {
	g := openRoom()
	// wall column between viewer and key
	for y := 1; y < level.Size-1; y++ {
		g.Set(3, y, level.Cell_Wall)
	}

	c := newTestCamera()
	frame := NewFrame(ScreenWidth, ScreenHeight)
	depth := NewDepthBuffer(ScreenWidth)
	pose := Pose{X: 96, Y: 96, Angle: 0}

	c.Render(frame, pose, g, depth)
	assert.Equal(t, 0, c.DrawSprite(frame, pose, 5*level.CellSize+32, 96, depth))
}

func TestDrawSprite_NeverPaintsOccludedColumns(t *testing.T) {
	g := openRoom()
	// a pillar covering part of the key
	g.Set(4, 1, level.Cell_Wall)

	c := newTestCamera()
	pose := Pose{X: 96, Y: 96 + 20, Angle: 0}
	key := [2]float64{6*level.CellSize + 32, 96}

	frame := NewFrame(ScreenWidth, ScreenHeight)
	depth := NewDepthBuffer(ScreenWidth)
	c.Render(frame, pose, g, depth)
	before := append([]byte(nil), frame.Pix...)

	_, ok := c.ProjectSprite(pose, key[0], key[1])
	require.True(t, ok)
	c.DrawSprite(frame, pose, key[0], key[1], depth)
	dist := math.Hypot(key[0]-pose.X, key[1]-pose.Y)

	for x := 0; x < ScreenWidth; x++ {
		for y := 0; y < ScreenHeight; y++ {
			i := (y*ScreenWidth + x) * 4
			if frame.Pix[i] != before[i] || frame.Pix[i+1] != before[i+1] || frame.Pix[i+2] != before[i+2] {
				require.Less(t, dist, depth[x], "key painted over wall at column %d", x)
			}
		}
	}
}

func TestDrawSprite_HiddenNearWallOffAxis(t *testing.T) {
	c := newTestCamera()
	frame := NewFrame(ScreenWidth, ScreenHeight)
	depth := NewDepthBuffer(ScreenWidth)
	pose := Pose{X: 96, Y: 96, Angle: 0}
	c.Render(frame, pose, openRoom(), depth)

	// 25 degrees off-axis, 40 units in front of the east wall face at x=960: the
	// corrected wall depth there is 864 while the key is about 909 away
	rel := 25 * math.Pi / 180
	kx := 960.0 - 40
	ky := pose.Y + (kx-pose.X)*math.Tan(rel)
	dist := math.Hypot(kx-pose.X, ky-pose.Y)
	require.Greater(t, dist, 864.0)

	proj, ok := c.ProjectSprite(pose, kx, ky)
	require.True(t, ok)
	for x := proj.Rect.Min.X; x < proj.Rect.Max.X; x++ {
		if x >= 0 && x < ScreenWidth {
			require.InDelta(t, 864, depth[x], 1e-6, "column %d", x)
		}
	}

	assert.Equal(t, 0, c.DrawSprite(frame, pose, kx, ky, depth))
}

func TestDrawPickups_SkipsInactive(t *testing.T) {
	c := newTestCamera()
	frame := NewFrame(ScreenWidth, ScreenHeight)
	depth := NewDepthBuffer(ScreenWidth)
	pose := Pose{X: 96, Y: 96, Angle: 0}
	c.Render(frame, pose, openRoom(), depth)
	before := append([]byte(nil), frame.Pix...)

	var ps model.Pickups
	ps[0] = model.NewPickup(96+200, 96)
	ps[0].Active = false
	c.DrawPickups(frame, pose, ps[:], depth)

	assert.Equal(t, before, frame.Pix)
}

func TestSpriteColumnMatchesRayFan(t *testing.T) {
	c := newTestCamera()
	pose := Pose{X: 96, Y: 96, Angle: 0}

	// a key straight down ray r's centre line lands in ray r's band
	r := 80
	ra := c.RayAngle(pose.Angle, r) + c.RayStep()/2
	x, y := pose.X+300*math.Cos(ra), pose.Y+300*math.Sin(ra)
	proj, ok := c.ProjectSprite(pose, x, y)
	require.True(t, ok)

	centre := (proj.Rect.Min.X + proj.Rect.Max.X) / 2
	assert.Equal(t, r, centre/c.BandWidth())
}
