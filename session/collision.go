package session

import "minotaur/level"

// -- collision

// IsBlocked reports whether the world position x, y may not be entered. Positions
// outside the grid and walls always block. The door blocks until every key is
// collected; once it lets the player through it marks the exit as touched.
func (s *Session) IsBlocked(x, y float64) bool {
	cx, cy := level.CellAt(x, y)
	if !s.Grid.InBounds(cx, cy) {
		return true
	}

	switch s.Grid.At(cx, cy) {
	case level.Cell_Wall:
		return true
	case level.Cell_Door:
		if !s.Progress.HasAllKeys() {
			return true
		}
		s.Progress.TouchExit()
		return false
	}
	return false
}
