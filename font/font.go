package font

import (
	"math"
	"sync"

	"fortio.org/log"
	"github.com/adrg/sysfont"
	"github.com/fogleman/gg"
	fnt "golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

var (
	fontCache = map[FontKey]FontItem{}
	cacheLock sync.Mutex
)

type FontKey struct {
	Family string
	Size   float64
}

type FontItem struct {
	Font  fnt.Face
	Label string
}

// GetFont returns a face for the installed font that best matches family.
// When family is empty or nothing can be loaded it falls back to the
// built-in 7x13 bitmap face.
func GetFont(family string, size float64) FontItem {
	key := FontKey{Family: family, Size: size}
	cacheLock.Lock()
	defer cacheLock.Unlock()
	if item, exists := fontCache[key]; exists {
		return item
	}

	item := FontItem{Font: basicfont.Face7x13, Label: "basicfont 7x13"}
	if family != "" {
		if match := sysfont.NewFinder(nil).Match(family); match != nil {
			face, err := gg.LoadFontFace(match.Filename, size)
			if err != nil {
				log.Warnf("Could not load font %s (%s): %v", match.Name, match.Filename, err)
			} else {
				log.Debugf("Loading font: %s at size %g", match.Name, size)
				item = FontItem{Font: face, Label: match.Name}
			}
		} else {
			log.Warnf("No installed font matches %q, using %s", family, item.Label)
		}
	}
	fontCache[key] = item
	return item
}

func Measure(font fnt.Face, text string) float64 {
	return math.Ceil(float64(fnt.MeasureString(font, text)) / 64.0)
}

func Ascent(font fnt.Face) float64 {
	return float64(font.Metrics().Ascent) / 64.0
}

func Linespace(font fnt.Face) float64 {
	return math.Ceil(float64(font.Metrics().Height) / 64.0)
}
