package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"minotaur/session"
)

var (
	rotateLeftKeys  = []ebiten.Key{ebiten.KeyA, ebiten.KeyArrowLeft}
	rotateRightKeys = []ebiten.Key{ebiten.KeyD, ebiten.KeyArrowRight}
	forwardKeys     = []ebiten.Key{ebiten.KeyW, ebiten.KeyArrowUp}
	backKeys        = []ebiten.Key{ebiten.KeyS, ebiten.KeyArrowDown}
)

// handleInput polls the keyboard for one tick. It returns true when the player asked to quit.
func (g *Game) handleInput() bool {
	// if escape, exit game
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return true
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		g.showMinimap = !g.showMinimap
	}

	if g.session.Screen() != session.Screen_Playing {
		if advancePressed() {
			g.session.Advance()
			g.dirty = true
		}
		return false
	}

	in := session.Intent{
		RotateLeft:  anyPressed(rotateLeftKeys),
		RotateRight: anyPressed(rotateRightKeys),
		Forward:     anyPressed(forwardKeys),
		Back:        anyPressed(backKeys),
	}
	if g.session.Tick(in) {
		g.dirty = true
	}
	return false
}

func anyPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

// advancePressed reports a newly pressed key other than the ones bound to toggles.
func advancePressed() bool {
	for _, k := range inpututil.AppendJustPressedKeys(nil) {
		if k != ebiten.KeyTab && k != ebiten.KeyEscape {
			return true
		}
	}
	return false
}
