package main

import (
	"fmt"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	log "github.com/sirupsen/logrus"

	"minotaur/assets"
	"minotaur/config"
	"minotaur/engine"
	"minotaur/session"
)

// -- game

const ticksPerSecond = 60

// Game adapts the session to ebiten: input in Update, the software frame and overlays in Draw.
type Game struct {
	cfg *config.Config

	session *session.Session
	camera  *engine.Camera
	assets  *assets.Library

	// the software raster and the ebiten image it is uploaded to
	frame *engine.Frame
	scene *ebiten.Image

	hud     *HUD
	minimap *Minimap

	showMinimap bool
	dirty       bool
}

func NewGame(cfg *config.Config) (*Game, error) {
	seed := cfg.SeedOrNow()
	log.WithField("seed", seed).Info("initializing game")

	lib := assets.Load(cfg.Assets.Dir)

	hud, err := NewHUD()
	if err != nil {
		return nil, fmt.Errorf("build hud: %w", err)
	}

	g := &Game{
		cfg:         cfg,
		session:     session.New(rand.New(rand.NewSource(seed))),
		camera:      engine.NewCamera(engine.ScreenWidth, engine.ScreenHeight, lib.Textures),
		assets:      lib,
		frame:       engine.NewFrame(engine.ScreenWidth, engine.ScreenHeight),
		scene:       ebiten.NewImage(engine.ScreenWidth, engine.ScreenHeight),
		hud:         hud,
		minimap:     &Minimap{},
		showMinimap: cfg.Debug.Minimap,
		dirty:       true,
	}
	return g, nil
}

// Run opens the window and blocks until the game quits.
func (g *Game) Run() error {
	scale := g.cfg.Window.Scale
	ebiten.SetWindowTitle(g.cfg.Window.Title)
	ebiten.SetWindowSize(int(engine.ScreenWidth*scale), int(engine.ScreenHeight*scale))
	ebiten.SetFullscreen(g.cfg.Window.Fullscreen)
	ebiten.SetTPS(ticksPerSecond)

	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("run game: %w", err)
	}
	log.Info("game closed")
	return nil
}

// Layout takes the outside size (e.g., the window size) and returns the (logical) screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return engine.ScreenWidth, engine.ScreenHeight
}

// Update is called every tick (1/60 [s]).
func (g *Game) Update() error {
	if g.handleInput() {
		return ebiten.Termination
	}
	g.hud.Update(g.session.View())
	return nil
}

// Draw re-renders the software frame only when something changed since the last one.
func (g *Game) Draw(screen *ebiten.Image) {
	current := g.session.Screen()

	if g.dirty || g.session.Player.Moved {
		g.compose(current)
		g.scene.WritePixels(g.frame.Pix)
		g.session.Player.Moved = false
		g.dirty = false
	}
	screen.DrawImage(g.scene, nil)

	if current == session.Screen_Playing && g.showMinimap {
		g.minimap.Draw(screen, g.session)
	}
	g.hud.Draw(screen, current)

	if g.cfg.Debug.FPS {
		fps := fmt.Sprintf("FPS: %0.2f\nTPS: %0.2f", ebiten.ActualFPS(), ebiten.ActualTPS())
		ebitenutil.DebugPrintAt(screen, fps, 10, engine.ScreenHeight-40)
	}
}

// compose fills the frame for the given screen. The start screen covers everything;
// the others are drawn over the scene from the player's current pose.
func (g *Game) compose(current session.Screen) {
	if current == session.Screen_Start {
		g.frame.Clear(engine.Backdrop)
	} else {
		g.session.Render(g.camera, g.frame)
	}
	g.frame.BlitScreen(g.assets.Screen(current))
}
