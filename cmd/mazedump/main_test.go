package main

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/gookit/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"minotaur/level"
	"minotaur/session"
)

func TestDump(t *testing.T) {
	prev := color.Disable()
	defer func() { color.Enable = prev }()

	s := session.New(rand.New(rand.NewSource(8)))
	var out strings.Builder
	require.NoError(t, dump(&out, s, 8))

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	require.Len(t, lines, level.Size+1)
	assert.True(t, strings.HasPrefix(lines[0], "seed 8  episode 1"))

	rows := lines[1:]
	for _, row := range rows {
		assert.Equal(t, level.Size*2, len([]rune(row)))
	}
	assert.Equal(t, glyphSpawn, string([]rune(rows[level.Spawn.Y])[level.Spawn.X*2:level.Spawn.X*2+2]))

	door := string([]rune(rows[s.Door.Y])[s.Door.X*2 : s.Door.X*2+2])
	assert.Equal(t, glyphDoor, door)

	assert.Equal(t, s.Progress.KeysRequired, strings.Count(out.String(), glyphKey))
}
