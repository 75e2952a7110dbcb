package session

// Screen is the top-level state of the game.
type Screen int

const (
	Screen_Start Screen = iota
	Screen_Intro
	Screen_Playing
	Screen_Won
)

// screenTransitions maps a screen to the one the advance signal leads to. Playing has
// no entry: only the exit door leaves it.
var screenTransitions = map[Screen]Screen{
	Screen_Start: Screen_Intro,
	Screen_Intro: Screen_Playing,
	Screen_Won:   Screen_Start,
}

func (s Screen) String() string {
	switch s {
	case Screen_Start:
		return "start"
	case Screen_Intro:
		return "intro"
	case Screen_Playing:
		return "playing"
	case Screen_Won:
		return "won"
	}
	return "unknown"
}

// Next returns the screen reached from s by the advance signal, and whether s reacts
// to it at all.
func (s Screen) Next() (Screen, bool) {
	next, ok := screenTransitions[s]
	return next, ok
}
