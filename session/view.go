package session

import (
	"github.com/jinzhu/copier"
	"github.com/leonelquinteros/gotext"
	log "github.com/sirupsen/logrus"
)

// View is a read-only snapshot of what the HUD shows.
type View struct {
	Screen        Screen
	Episode       int
	KeysCollected int
	KeysRequired  int
	ExitUnlocked  bool
}

func (s *Session) View() View {
	v := View{Screen: s.screen, Episode: s.episode}
	if err := copier.Copy(&v, s.Progress); err != nil {
		log.WithError(err).Warn("copy progress into view")
	}
	return v
}

func (v View) KeysLabel() string {
	return gotext.Get("Keys: %d / %d", v.KeysCollected, v.KeysRequired)
}

func (v View) HintLabel() string {
	if v.ExitUnlocked {
		return gotext.Get("EXIT IS OPEN! PRESS W TO ESCAPE.")
	}
	return gotext.Get("FIND THE KEYS TO ESCAPE (W, A, S, D)")
}

// Caption returns the title and prompt shown over a static screen.
func (v View) Caption() (string, string) {
	switch v.Screen {
	case Screen_Start:
		return gotext.Get("MINOTAUR"), gotext.Get("Press any key to begin")
	case Screen_Intro:
		return gotext.Get("Collect every key, then find the door."), gotext.Get("Press any key to enter the maze")
	case Screen_Won:
		return gotext.Get("YOU ESCAPED!"), gotext.Get("Press any key to play again")
	}
	return "", ""
}
