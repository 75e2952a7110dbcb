package main

import (
	"fmt"
	"image/color"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/golang/freetype/truetype"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"

	"minotaur/engine"
	"minotaur/session"
)

// -- hud

const (
	hudFontSize     = 20
	captionFontSize = 34
	hudPadding      = 16

	// how long the key counter glows after a pickup, in seconds
	pulseDuration = 0.6
)

var hudTextColor = color.RGBA{255, 255, 255, 255}

func loadFace(size float64) (font.Face, error) {
	tt, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	return truetype.NewFace(tt, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	}), nil
}

// HUD draws the key counter and hint while playing, and the captions over the static screens.
type HUD struct {
	play    *ebitenui.UI
	overlay *ebitenui.UI

	keys   *widget.Text
	hint   *widget.Text
	title  *widget.Text
	prompt *widget.Text

	pulse       *gween.Tween
	lastKeys    int
	lastEpisode int
}

func NewHUD() (*HUD, error) {
	small, err := loadFace(hudFontSize)
	if err != nil {
		return nil, err
	}
	large, err := loadFace(captionFontSize)
	if err != nil {
		return nil, err
	}

	h := &HUD{
		keys:   widget.NewText(widget.TextOpts.Text("", small, hudTextColor)),
		hint:   widget.NewText(widget.TextOpts.Text("", small, hudTextColor)),
		title:  widget.NewText(widget.TextOpts.Text("", large, engine.KeyColor), widget.TextOpts.Position(widget.TextPositionCenter, widget.TextPositionCenter)),
		prompt: widget.NewText(widget.TextOpts.Text("", small, hudTextColor), widget.TextOpts.Position(widget.TextPositionCenter, widget.TextPositionCenter)),
	}

	status := column(widget.AnchorLayoutPositionStart, widget.AnchorLayoutPositionStart)
	status.AddChild(h.keys)
	status.AddChild(h.hint)
	h.play = &ebitenui.UI{Container: anchored(status)}

	caption := column(widget.AnchorLayoutPositionCenter, widget.AnchorLayoutPositionCenter)
	caption.AddChild(h.title)
	caption.AddChild(h.prompt)
	h.overlay = &ebitenui.UI{Container: anchored(caption)}

	return h, nil
}

func column(horizontal, vertical widget.AnchorLayoutPosition) *widget.Container {
	return widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(8),
		)),
		widget.ContainerOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
			HorizontalPosition: horizontal,
			VerticalPosition:   vertical,
		})),
	)
}

func anchored(child *widget.Container) *widget.Container {
	root := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout(
		widget.AnchorLayoutOpts.Padding(widget.NewInsetsSimple(hudPadding)),
	)))
	root.AddChild(child)
	return root
}

// Update refreshes the labels from v and advances the pickup pulse by one tick.
func (h *HUD) Update(v session.View) {
	if v.Episode != h.lastEpisode {
		h.lastEpisode = v.Episode
		h.lastKeys = 0
		h.pulse = nil
	}
	if v.KeysCollected > h.lastKeys {
		h.pulse = gween.New(1, 0, pulseDuration, ease.OutQuad)
	}
	h.lastKeys = v.KeysCollected

	h.keys.Label = v.KeysLabel()
	h.keys.Color = hudTextColor
	if h.pulse != nil {
		glow, done := h.pulse.Update(1 / float32(ebiten.TPS()))
		h.keys.Color = mix(hudTextColor, engine.KeyColor, float64(glow))
		if done {
			h.pulse = nil
		}
	}
	h.hint.Label = v.HintLabel()
	h.title.Label, h.prompt.Label = v.Caption()

	if v.Screen == session.Screen_Playing {
		h.play.Update()
	} else {
		h.overlay.Update()
	}
}

func (h *HUD) Draw(screen *ebiten.Image, s session.Screen) {
	if s == session.Screen_Playing {
		h.play.Draw(screen)
		return
	}
	h.overlay.Draw(screen)
}

func mix(a, b color.RGBA, f float64) color.RGBA {
	lerp := func(p, q uint8) uint8 {
		return uint8(float64(p) + (float64(q)-float64(p))*f)
	}
	return color.RGBA{lerp(a.R, b.R), lerp(a.G, b.G), lerp(a.B, b.B), 255}
}
