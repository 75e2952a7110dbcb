package main

import (
	"image"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"minotaur/level"
	"minotaur/model"
	"minotaur/session"
)

// -- minimap

const (
	minimapScale  = 8
	minimapMargin = 10
)

// Minimap caches the static cell layer and redraws it only when the maze changes.
type Minimap struct {
	grid *level.Grid
	base *ebiten.Image
}

func (m *Minimap) generateStatic(g *level.Grid) {
	m.grid = g
	m.base = ebiten.NewImage(g.Width()*minimapScale, g.Height()*minimapScale)
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			vector.DrawFilledRect(m.base, float32(x*minimapScale), float32(y*minimapScale), minimapScale, minimapScale, g.At(x, y).Color(), false)
		}
	}
}

func (m *Minimap) Draw(screen *ebiten.Image, s *session.Session) {
	if m.grid != s.Grid {
		m.generateStatic(s.Grid)
	}

	originX := float32(screen.Bounds().Dx() - m.base.Bounds().Dx() - minimapMargin)
	originY := float32(minimapMargin)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(originX), float64(originY))
	screen.DrawImage(m.base, op)

	toMap := func(wx, wy float64) (float32, float32) {
		return originX + float32(wx/level.CellSize*minimapScale), originY + float32(wy/level.CellSize*minimapScale)
	}

	for _, p := range s.Pickups {
		if !p.Active {
			continue
		}
		px, py := toMap(p.Position.X, p.Position.Y)
		vector.DrawFilledCircle(screen, px, py, minimapScale/3, model.PickupMapColor, false)
	}

	m.drawPlayer(screen, toMap, s.Player)
}

func (m *Minimap) drawPlayer(screen *ebiten.Image, toMap func(float64, float64) (float32, float32), p *model.Player) {
	px, py := toMap(p.Position.X, p.Position.Y)
	size := float32(minimapScale)

	corner := func(offset float64) (float32, float32) {
		return px + size*float32(math.Cos(p.Angle+offset)), py + size*float32(math.Sin(p.Angle+offset))
	}
	x1, y1 := corner(0)
	x2, y2 := corner(2.5)
	x3, y3 := corner(-2.5)

	c := model.PlayerMapColor
	r, g, b := float32(c.R)/255, float32(c.G)/255, float32(c.B)/255
	vertices := []ebiten.Vertex{
		{DstX: x1, DstY: y1, SrcX: 1, SrcY: 1, ColorR: r, ColorG: g, ColorB: b, ColorA: 1},
		{DstX: x2, DstY: y2, SrcX: 1, SrcY: 1, ColorR: r, ColorG: g, ColorB: b, ColorA: 1},
		{DstX: x3, DstY: y3, SrcX: 1, SrcY: 1, ColorR: r, ColorG: g, ColorB: b, ColorA: 1},
	}
	screen.DrawTriangles(vertices, []uint16{0, 1, 2}, whiteSubImage, nil)
}

var whiteSubImage = func() *ebiten.Image {
	img := ebiten.NewImage(3, 3)
	img.Fill(hudTextColor)
	return img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
}()
