package engine

import (
	"fmt"
	"image"
	"image/color"
)

const (
	// TexSize is the edge length of in-world wall, floor and ceiling textures.
	TexSize = 32
	// Channels is the number of bytes per texel (RGB).
	Channels = 3
)

// Texture is a decoded RGB pixel buffer.
type Texture struct {
	Width    int
	Height   int
	Channels int
	Pix      []byte
}

func NewTexture(width, height int) *Texture {
	return &Texture{
		Width:    width,
		Height:   height,
		Channels: Channels,
		Pix:      make([]byte, width*height*Channels),
	}
}

// TextureFromImage converts any image into an RGB texture of the same size.
func TextureFromImage(img image.Image) *Texture {
	b := img.Bounds()
	t := NewTexture(b.Dx(), b.Dy())
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			c := color.RGBAModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.RGBA)
			t.Set(x, y, c)
		}
	}
	return t
}

// Validate checks that the buffer matches its declared dimensions.
func (t *Texture) Validate(width, height int) error {
	if t.Width != width || t.Height != height {
		return fmt.Errorf("texture is %dx%d, want %dx%d", t.Width, t.Height, width, height)
	}
	if t.Channels != Channels {
		return fmt.Errorf("texture has %d channels, want %d", t.Channels, Channels)
	}
	if len(t.Pix) != width*height*Channels {
		return fmt.Errorf("texture buffer holds %d bytes, want %d", len(t.Pix), width*height*Channels)
	}
	return nil
}

// At returns the texel at x, y. ok is false when the index falls outside the buffer
// or the buffer is not RGB.
func (t *Texture) At(x, y int) (c color.RGBA, ok bool) {
	if t.Channels != Channels || x < 0 || y < 0 || x >= t.Width || y >= t.Height {
		return color.RGBA{}, false
	}
	i := (y*t.Width + x) * Channels
	if i+2 >= len(t.Pix) {
		return color.RGBA{}, false
	}
	return color.RGBA{t.Pix[i], t.Pix[i+1], t.Pix[i+2], 255}, true
}

func (t *Texture) Set(x, y int, c color.RGBA) {
	if t.Channels != Channels || x < 0 || y < 0 || x >= t.Width || y >= t.Height {
		return
	}
	i := (y*t.Width + x) * Channels
	if i+2 >= len(t.Pix) {
		return
	}
	t.Pix[i] = c.R
	t.Pix[i+1] = c.G
	t.Pix[i+2] = c.B
}

// Textures maps texture ids to buffers.
type Textures map[int]*Texture

// Lookup returns the texture for id, or nil.
func (ts Textures) Lookup(id int) *Texture {
	if ts == nil {
		return nil
	}
	return ts[id]
}
