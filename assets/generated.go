package assets

import (
	"image/color"

	"minotaur/engine"
	"minotaur/level"
	"minotaur/session"
)

var (
	brickColor    = color.RGBA{150, 62, 45, 255}
	mortarColor   = color.RGBA{92, 88, 84, 255}
	floorDark     = color.RGBA{70, 60, 50, 255}
	floorLight    = color.RGBA{92, 80, 64, 255}
	ceilingColor  = color.RGBA{40, 40, 62, 255}
	ceilingSeam   = color.RGBA{56, 56, 84, 255}
	doorWood      = color.RGBA{122, 80, 32, 255}
	doorGrain     = color.RGBA{96, 60, 22, 255}
	doorIron      = color.RGBA{60, 60, 64, 255}
	panelColor    = color.RGBA{20, 16, 30, 255}
	titleTop      = color.RGBA{14, 10, 24, 255}
	titleBottom   = color.RGBA{48, 30, 62, 255}
	winBorder     = color.RGBA{0, 200, 120, 255}
	transparentPx = color.RGBA{255, 255, 255, 255}
)

// GeneratedTexture draws a stand-in for texture id. Unknown ids get a flat grey.
func GeneratedTexture(id int) *engine.Texture {
	t := engine.NewTexture(engine.TexSize, engine.TexSize)
	for y := 0; y < t.Height; y++ {
		for x := 0; x < t.Width; x++ {
			t.Set(x, y, texel(id, x, y))
		}
	}
	return t
}

func texel(id, x, y int) color.RGBA {
	switch id {
	case level.Tex_Wall:
		row := y / 8
		shift := 0
		if row%2 == 1 {
			shift = 8
		}
		if y%8 == 0 || (x+shift)%16 == 0 {
			return mortarColor
		}
		return brickColor
	case level.Tex_Floor:
		if (x/8+y/8)%2 == 0 {
			return floorDark
		}
		return floorLight
	case level.Tex_Ceiling:
		if x%16 == 0 || y%16 == 0 {
			return ceilingSeam
		}
		return ceilingColor
	case level.Tex_Door:
		if y == 5 || y == 6 || y == 25 || y == 26 {
			return doorIron
		}
		if x%8 == 0 {
			return doorGrain
		}
		return doorWood
	}
	return color.RGBA{128, 128, 128, 255}
}

// GeneratedScreen draws a stand-in for a static screen. The start screen is opaque;
// the others are a framed panel over white so the maze shows around them.
func GeneratedScreen(s session.Screen) *engine.Texture {
	t := engine.NewTexture(engine.ScreenWidth, engine.ScreenHeight)

	switch s {
	case session.Screen_Start:
		for y := 0; y < t.Height; y++ {
			c := lerp(titleTop, titleBottom, float64(y)/float64(t.Height-1))
			for x := 0; x < t.Width; x++ {
				if x%level.CellSize == 0 || y%level.CellSize == 0 {
					t.Set(x, y, engine.Shade(c, 1.4))
					continue
				}
				t.Set(x, y, c)
			}
		}
	case session.Screen_Won:
		panel(t, winBorder)
	default:
		panel(t, engine.KeyColor)
	}
	return t
}

func panel(t *engine.Texture, border color.RGBA) {
	const edge = 4
	x0, y0 := t.Width/5, t.Height/3
	x1, y1 := t.Width-x0, t.Height-y0

	for y := 0; y < t.Height; y++ {
		for x := 0; x < t.Width; x++ {
			switch {
			case x < x0 || x >= x1 || y < y0 || y >= y1:
				t.Set(x, y, transparentPx)
			case x < x0+edge || x >= x1-edge || y < y0+edge || y >= y1-edge:
				t.Set(x, y, border)
			default:
				t.Set(x, y, panelColor)
			}
		}
	}
}

func lerp(a, b color.RGBA, f float64) color.RGBA {
	mix := func(p, q uint8) uint8 {
		return uint8(float64(p) + (float64(q)-float64(p))*f)
	}
	return color.RGBA{mix(a.R, b.R), mix(a.G, b.G), mix(a.B, b.B), 255}
}
