package render

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/golang/freetype/truetype"
	"github.com/sirupsen/logrus"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// DefaultFontsDir is where the device image installs the four faces.
const DefaultFontsDir = "/usr/share/wallclock/fonts"

// Candidate filenames per family, tried in order. Bold weights first to
// match the original's 700-weight time line.
var fontFileCandidates = map[string][]string{
	"JetBrains Mono": {"JetBrainsMono-Bold.ttf", "JetBrainsMono-Regular.ttf"},
	"Geist":          {"Geist-Bold.ttf", "Geist-Regular.ttf"},
	"Inter":          {"Inter-Bold.ttf", "Inter-Regular.ttf"},
	"Noto Serif JP":  {"NotoSerifJP-Bold.ttf", "NotoSerifJP-Regular.ttf"},
}

type faceKey struct {
	family string
	size   int
}

// FontLibrary parses each family once and caches faces per (family, size).
// A family whose file is missing or unparseable degrades to the built-in
// bitmap face; the clock keeps ticking on a bare system.
type FontLibrary struct {
	dir string
	log *logrus.Entry

	mu     sync.Mutex
	parsed map[string]*truetype.Font
	faces  map[faceKey]font.Face
}

func NewFontLibrary(dir string) *FontLibrary {
	if dir == "" {
		dir = DefaultFontsDir
	}
	return &FontLibrary{
		dir:    dir,
		log:    logrus.WithField("component", "fonts"),
		parsed: make(map[string]*truetype.Font),
		faces:  make(map[faceKey]font.Face),
	}
}

// Face returns a face for family at sizePx. Never nil.
func (lib *FontLibrary) Face(family string, sizePx int) font.Face {
	if sizePx <= 0 {
		sizePx = 48
	}
	lib.mu.Lock()
	defer lib.mu.Unlock()

	key := faceKey{family: family, size: sizePx}
	if face, ok := lib.faces[key]; ok {
		return face
	}

	face := lib.newFaceLocked(family, sizePx)
	lib.faces[key] = face
	return face
}

func (lib *FontLibrary) newFaceLocked(family string, sizePx int) font.Face {
	fnt, ok := lib.parsed[family]
	if !ok {
		fnt = lib.parseFamily(family)
		lib.parsed[family] = fnt
	}
	if fnt == nil {
		return basicfont.Face7x13
	}
	return truetype.NewFace(fnt, &truetype.Options{
		Size:    float64(sizePx),
		DPI:     72, // 1pt == 1px so Size is the pixel height
		Hinting: font.HintingFull,
	})
}

func (lib *FontLibrary) parseFamily(family string) *truetype.Font {
	names := fontFileCandidates[family]
	if len(names) == 0 {
		names = fontFileCandidates["JetBrains Mono"]
	}
	for _, name := range names {
		path := filepath.Join(lib.dir, name)
		raw, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		fnt, err := truetype.Parse(raw)
		if err != nil {
			lib.log.WithError(err).Errorf("font parse failed: %s", path)
			continue
		}
		lib.log.Infof("loaded %q from %s", family, name)
		return fnt
	}
	lib.log.Warnf("no font file for %q under %s, using bitmap fallback", family, lib.dir)
	return nil
}
