package engine

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrameSetClips(t *testing.T) {
	f := NewFrame(4, 2)
	f.Set(-1, 0, color.RGBA{1, 2, 3, 255})
	f.Set(4, 0, color.RGBA{1, 2, 3, 255})
	f.Set(0, 2, color.RGBA{1, 2, 3, 255})
	f.Set(3, 1, color.RGBA{1, 2, 3, 0})

	assert.Equal(t, color.RGBA{1, 2, 3, 255}, f.At(3, 1))
	assert.Equal(t, color.RGBA{}, f.At(9, 9))
}

func TestBlitScreenSkipsWhite(t *testing.T) {
	src := NewTexture(2, 1)
	src.Set(0, 0, color.RGBA{255, 255, 255, 255})
	src.Set(1, 0, color.RGBA{10, 20, 30, 255})

	f := NewFrame(2, 1)
	f.Clear(color.RGBA{5, 5, 5, 255})
	f.BlitScreen(src)

	assert.Equal(t, color.RGBA{5, 5, 5, 255}, f.At(0, 0))
	assert.Equal(t, color.RGBA{10, 20, 30, 255}, f.At(1, 0))
}

func TestTextureBounds(t *testing.T) {
	tex := NewTexture(TexSize, TexSize)
	_, ok := tex.At(TexSize, 0)
	assert.False(t, ok)
	_, ok = tex.At(0, -1)
	assert.False(t, ok)
	assert.NoError(t, tex.Validate(TexSize, TexSize))
	assert.Error(t, tex.Validate(64, 64))
}

func TestTextureRejectsOtherChannelCounts(t *testing.T) {
	// an RGBA buffer that skipped Validate
	tex := &Texture{Width: 2, Height: 1, Channels: 4, Pix: []byte{1, 2, 3, 255, 10, 20, 30, 255}}
	assert.Error(t, tex.Validate(2, 1))

	_, ok := tex.At(1, 0)
	assert.False(t, ok)

	tex.Set(0, 0, color.RGBA{9, 9, 9, 255})
	assert.Equal(t, []byte{1, 2, 3, 255, 10, 20, 30, 255}, tex.Pix)

	gray := &Texture{Width: 3, Height: 1, Channels: 1, Pix: []byte{7, 8, 9}}
	_, ok = gray.At(0, 0)
	assert.False(t, ok)
}

func TestDepthBuffer(t *testing.T) {
	d := NewDepthBuffer(16)
	d.Band(8, 8, 42)
	d.Band(12, 8, 7)

	assert.Equal(t, 42.0, d[8])
	assert.Equal(t, 7.0, d[15])
	assert.True(t, d.Occludes(9, 42))
	assert.False(t, d.Occludes(9, 41.9))
	assert.True(t, d.Occludes(-1, 0))
}
