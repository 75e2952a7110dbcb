package assets

import (
	"errors"
	"fmt"
	"image"
	_ "image/png"
	"io/fs"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"
	_ "golang.org/x/image/bmp"
	xdraw "golang.org/x/image/draw"

	"minotaur/engine"
	"minotaur/level"
	"minotaur/session"
)

// TextureNames maps texture ids to their file names (without extension) in the asset dir.
var TextureNames = map[int]string{
	level.Tex_Wall:    "wall",
	level.Tex_Floor:   "floor",
	level.Tex_Ceiling: "ceiling",
	level.Tex_Door:    "door",
}

// ScreenNames maps the static screens to their file names.
var ScreenNames = map[session.Screen]string{
	session.Screen_Start: "start",
	session.Screen_Intro: "intro",
	session.Screen_Won:   "win",
}

var extensions = []string{".png", ".bmp"}

// Library holds every pixel buffer the game draws from.
type Library struct {
	Textures engine.Textures
	Screens  map[session.Screen]*engine.Texture
}

// Screen returns the static image for s, or nil when s has none.
func (l *Library) Screen(s session.Screen) *engine.Texture {
	return l.Screens[s]
}

// Load reads textures and screens from dir. Any asset that is missing or unreadable is
// replaced with a generated one, so the returned library is always complete.
func Load(dir string) *Library {
	lib := &Library{
		Textures: engine.Textures{},
		Screens:  map[session.Screen]*engine.Texture{},
	}

	for id, name := range TextureNames {
		t, err := loadTexture(dir, name, engine.TexSize, engine.TexSize)
		if err != nil {
			log.WithError(err).WithField("texture", name).Warn("using generated texture")
			t = GeneratedTexture(id)
		}
		lib.Textures[id] = t
	}

	for screen, name := range ScreenNames {
		t, err := loadTexture(dir, name, engine.ScreenWidth, engine.ScreenHeight)
		if err != nil {
			log.WithError(err).WithField("screen", name).Warn("using generated screen")
			t = GeneratedScreen(screen)
		}
		lib.Screens[screen] = t
	}

	return lib
}

func loadTexture(dir, name string, width, height int) (*engine.Texture, error) {
	img, path, err := decodeAsset(dir, name)
	if err != nil {
		return nil, err
	}

	if b := img.Bounds(); b.Dx() != width || b.Dy() != height {
		log.WithFields(log.Fields{
			"file": path,
			"from": fmt.Sprintf("%dx%d", b.Dx(), b.Dy()),
			"to":   fmt.Sprintf("%dx%d", width, height),
		}).Debug("scaling asset")
		img = scale(img, width, height)
	}

	t := engine.TextureFromImage(img)
	if err := t.Validate(width, height); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// decodeAsset opens the first of name.png, name.bmp found in dir.
func decodeAsset(dir, name string) (image.Image, string, error) {
	for _, ext := range extensions {
		path := filepath.Join(dir, name+ext)
		f, err := os.Open(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, path, fmt.Errorf("open %s: %w", path, err)
		}

		img, _, err := image.Decode(f)
		f.Close()
		if err != nil {
			return nil, path, fmt.Errorf("decode %s: %w", path, err)
		}
		return img, path, nil
	}
	return nil, "", fmt.Errorf("%s: %w", filepath.Join(dir, name), fs.ErrNotExist)
}

func scale(src image.Image, width, height int) image.Image {
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	return dst
}
