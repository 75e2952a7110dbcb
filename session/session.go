package session

import (
	"math/rand"

	log "github.com/sirupsen/logrus"

	"minotaur/engine"
	"minotaur/level"
	"minotaur/model"
)

// Session owns everything that belongs to one running game: the current maze, the
// player, key progress, the pickups and the per-column depth buffer. A new episode
// replaces the maze and progress together.
type Session struct {
	Grid     *level.Grid
	Door     level.Point
	Player   *model.Player
	Progress *model.Progress
	Pickups  model.Pickups
	Depth    engine.DepthBuffer

	screen  Screen
	episode int
	rng     *rand.Rand
}

func New(rng *rand.Rand) *Session {
	s := &Session{
		Depth: engine.NewDepthBuffer(engine.ScreenWidth),
		rng:   rng,
	}
	s.Reset()
	return s
}

// Reset starts a new episode: fresh maze and door, player back on the spawn cell,
// new key count and key positions. The screen is left as is.
func (s *Session) Reset() {
	grid, door := level.Generate(level.Size, s.rng)
	s.start(grid, door)
}

// start places keys and the player on a freshly built grid and swaps the episode in.
// When the grid has room for fewer keys than drawn, only those are required; with
// no room at all the door starts unlocked.
func (s *Session) start(grid *level.Grid, door level.Point) {
	keysRequired := s.rng.Intn(model.MaxPickups) + 1
	cells := level.PickupCells(grid, s.rng, keysRequired)

	var pickups model.Pickups
	for i, c := range cells {
		x, y := level.CellCenter(c.X, c.Y)
		pickups[i] = model.NewPickup(x, y)
	}

	progress := model.NewProgress(keysRequired)
	switch {
	case len(cells) == 0:
		log.WithField("wanted", keysRequired).Warn("no room for keys, exit starts unlocked")
		progress.KeysRequired = 0
		progress.ExitUnlocked = true
	case len(cells) < keysRequired:
		log.WithFields(log.Fields{"wanted": keysRequired, "placed": len(cells)}).Warn("not enough room for every key")
		progress = model.NewProgress(len(cells))
	}

	spawnX, spawnY := level.CellCenter(level.Spawn.X, level.Spawn.Y)
	player := model.NewPlayer(spawnX, spawnY, 0)
	player.Moved = true

	s.Grid, s.Door = grid, door
	s.Player = player
	s.Progress = progress
	s.Pickups = pickups
	s.episode++

	log.WithFields(log.Fields{
		"episode":      s.episode,
		"door":         door,
		"keysRequired": progress.KeysRequired,
	}).Info("new maze generated")
}

func (s *Session) Screen() Screen { return s.screen }

func (s *Session) Episode() int { return s.episode }

// Advance applies the advance signal to the screen state. Leaving the win screen
// starts a new episode.
func (s *Session) Advance() Screen {
	next, ok := s.screen.Next()
	if !ok {
		return s.screen
	}

	if s.screen == Screen_Won {
		s.Reset()
	}

	log.WithFields(log.Fields{"from": s.screen, "to": next}).Debug("screen transition")
	s.screen = next
	return s.screen
}

// Render draws the scene for the current player pose: walls, floor and ceiling first,
// then the keys against the freshly written depth buffer.
func (s *Session) Render(cam *engine.Camera, frame *engine.Frame) {
	pose := engine.PoseOf(s.Player)
	cam.Render(frame, pose, s.Grid, s.Depth)
	cam.DrawPickups(frame, pose, s.Pickups[:], s.Depth)
}
