package session

import (
	log "github.com/sirupsen/logrus"

	"minotaur/model"
)

// Intent is the set of movement keys held during a tick.
type Intent struct {
	RotateLeft  bool
	RotateRight bool
	Forward     bool
	Back        bool
}

// Tick advances the player by one tick of input. Moves into blocked cells are
// dropped whole. It returns whether anything visible changed.
func (s *Session) Tick(in Intent) bool {
	if s.screen != Screen_Playing {
		return false
	}

	p := s.Player
	changed := false

	if in.RotateLeft {
		p.Rotate(-model.PlayerRotateSpeed)
		changed = true
	}
	if in.RotateRight {
		p.Rotate(model.PlayerRotateSpeed)
		changed = true
	}

	if in.Forward || in.Back {
		step := 0.0
		if in.Forward {
			step += model.PlayerWalkSpeed
		}
		if in.Back {
			step -= model.PlayerWalkSpeed
		}

		newX, newY := p.Ahead(step)
		if !s.IsBlocked(newX, newY) {
			p.MoveTo(newX, newY)
		}
		changed = true
	}

	if taken := s.Pickups.Collect(p.Position.X, p.Position.Y); taken > 0 {
		s.Progress.AddKeys(taken)
		changed = true
		log.WithFields(log.Fields{
			"collected": s.Progress.KeysCollected,
			"required":  s.Progress.KeysRequired,
		}).Info("key collected")
	}

	if s.Progress.ExitTouched() {
		if s.Progress.HasAllKeys() {
			s.screen = Screen_Won
			changed = true
			log.WithField("episode", s.episode).Info("maze escaped")
		} else {
			// the door only opens with every key, so this is a stale flag
			s.Progress.ClearExit()
		}
	}

	return changed
}
