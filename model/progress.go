package model

// Progress tracks key collection and the exit for one episode.
type Progress struct {
	KeysCollected int
	KeysRequired  int
	ExitUnlocked  bool

	// set by the collision check when the player steps onto an unlocked door
	exitTouched bool
}

func NewProgress(keysRequired int) *Progress {
	if keysRequired < 1 {
		keysRequired = 1
	}
	if keysRequired > MaxPickups {
		keysRequired = MaxPickups
	}
	return &Progress{KeysRequired: keysRequired}
}

// HasAllKeys reports whether the door may be opened.
func (p *Progress) HasAllKeys() bool {
	return p.KeysCollected >= p.KeysRequired
}

// AddKeys records n collected keys and refreshes ExitUnlocked.
func (p *Progress) AddKeys(n int) {
	p.KeysCollected += n
	p.ExitUnlocked = p.HasAllKeys()
}

func (p *Progress) TouchExit()        { p.exitTouched = true }
func (p *Progress) ClearExit()        { p.exitTouched = false }
func (p *Progress) ExitTouched() bool { return p.exitTouched }
