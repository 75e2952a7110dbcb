// Command mazedump prints the maze, door, spawn and keys the game would build for a seed.
package main

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/gookit/color"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/pflag"

	"minotaur/level"
	"minotaur/session"
)

var (
	colorWall   = color.Style{color.FgGray}
	colorDoor   = color.Style{color.FgGreen, color.OpBold}
	colorSpawn  = color.Style{color.FgCyan, color.OpBold}
	colorKey    = color.Style{color.FgYellow, color.OpBold}
	colorSubtle = color.Style{color.FgGray, color.OpBold}
)

const (
	glyphWall  = "██"
	glyphEmpty = "  "
	glyphDoor  = "[]"
	glyphSpawn = "@@"
	glyphKey   = "k "
)

func main() {
	fs := pflag.NewFlagSet(os.Args[0], pflag.ContinueOnError)
	seed := fs.Int64("seed", 0, "maze seed, 0 for a random one")
	episode := fs.Int("episode", 1, "which episode of the seed to print")
	plain := fs.Bool("plain", false, "print without colours")

	if err := fs.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		log.WithError(err).Fatal("parse flags")
	}
	if *episode < 1 {
		log.Fatalf("episode must be at least 1, got %d", *episode)
	}
	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	log.SetLevel(log.WarnLevel)
	if *plain {
		color.Disable()
	}

	s := session.New(rand.New(rand.NewSource(*seed)))
	for s.Episode() < *episode {
		s.Reset()
	}

	if err := dump(os.Stdout, s, *seed); err != nil {
		log.WithError(err).Fatal("write maze")
	}
}

func dump(w io.Writer, s *session.Session, seed int64) error {
	keys := map[level.Point]bool{}
	for _, p := range s.Pickups {
		if p.Active {
			x, y := level.CellAt(p.Position.X, p.Position.Y)
			keys[level.Point{X: x, Y: y}] = true
		}
	}

	var b strings.Builder
	for y := 0; y < s.Grid.Height(); y++ {
		for x := 0; x < s.Grid.Width(); x++ {
			b.WriteString(glyph(s, keys, level.Point{X: x, Y: y}))
		}
		b.WriteByte('\n')
	}

	header := fmt.Sprintf("seed %d  episode %d  door %d,%d  keys %d\n",
		seed, s.Episode(), s.Door.X, s.Door.Y, s.Progress.KeysRequired)
	if _, err := io.WriteString(w, colorSubtle.Sprint(header)); err != nil {
		return err
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func glyph(s *session.Session, keys map[level.Point]bool, p level.Point) string {
	switch {
	case p == level.Spawn:
		return colorSpawn.Sprint(glyphSpawn)
	case keys[p]:
		return colorKey.Sprint(glyphKey)
	}

	switch s.Grid.At(p.X, p.Y) {
	case level.Cell_Wall:
		return colorWall.Sprint(glyphWall)
	case level.Cell_Door:
		return colorDoor.Sprint(glyphDoor)
	}
	return glyphEmpty
}
