package engine

import (
	"image"
	"image/color"
)

const (
	ScreenWidth  = 1024
	ScreenHeight = 512
)

// Frame is the software raster the scene is drawn into. Pixels are stored as RGBA with
// alpha always opaque so the buffer can be uploaded to the window as is.
type Frame struct {
	Pix    []byte
	width  int
	height int
}

func NewFrame(width, height int) *Frame {
	return &Frame{
		Pix:    make([]byte, width*height*4),
		width:  width,
		height: height,
	}
}

func (f *Frame) Width() int  { return f.width }
func (f *Frame) Height() int { return f.height }

func (f *Frame) Bounds() image.Rectangle {
	return image.Rect(0, 0, f.width, f.height)
}

// Set writes one pixel. Writes outside the frame are dropped.
func (f *Frame) Set(x, y int, c color.RGBA) {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return
	}
	i := (y*f.width + x) * 4
	f.Pix[i] = c.R
	f.Pix[i+1] = c.G
	f.Pix[i+2] = c.B
	f.Pix[i+3] = 255
}

// At reads one pixel; outside the frame it returns transparent black.
func (f *Frame) At(x, y int) color.RGBA {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return color.RGBA{}
	}
	i := (y*f.width + x) * 4
	return color.RGBA{f.Pix[i], f.Pix[i+1], f.Pix[i+2], f.Pix[i+3]}
}

// FillRect paints the rectangle at x, y clipped to the frame.
func (f *Frame) FillRect(x, y, width, height int, c color.RGBA) {
	for dy := y; dy < y+height; dy++ {
		for dx := x; dx < x+width; dx++ {
			f.Set(dx, dy, c)
		}
	}
}

func (f *Frame) Clear(c color.RGBA) {
	f.FillRect(0, 0, f.width, f.height, c)
}

// BlitScreen copies a full-screen texture into the frame, skipping pure white pixels.
func (f *Frame) BlitScreen(src *Texture) {
	if src == nil {
		return
	}
	for y := 0; y < src.Height && y < f.height; y++ {
		for x := 0; x < src.Width && x < f.width; x++ {
			c, ok := src.At(x, y)
			if !ok || isWhite(c) {
				continue
			}
			f.Set(x, y, c)
		}
	}
}

func isWhite(c color.RGBA) bool {
	return c.R == 255 && c.G == 255 && c.B == 255
}

// Shade scales the color channels by factor.
func Shade(c color.RGBA, factor float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * factor),
		G: uint8(float64(c.G) * factor),
		B: uint8(float64(c.B) * factor),
		A: c.A,
	}
}
