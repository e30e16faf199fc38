package render

import (
	"os"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

type logger interface {
	Infof(component string, format string, args ...interface{})
	Errorf(component string, format string, args ...interface{})
}

// LoadFace returns a usable glyph face unconditionally: the preferred TTF
// at path first, the embedded Go Regular face when that fails, and the
// fixed 7x13 bitmap face as a last resort. Load failures are logged, never
// propagated.
func LoadFace(path string, points float64, log logger) font.Face {
	if raw, err := os.ReadFile(path); err != nil {
		if log != nil {
			log.Errorf("font", "read %s failed: %v", path, err)
		}
	} else if parsed, err := truetype.Parse(raw); err != nil {
		if log != nil {
			log.Errorf("font", "parse %s failed: %v", path, err)
		}
	} else {
		if log != nil {
			log.Infof("font", "loaded %s at %gpt", path, points)
		}
		return truetype.NewFace(parsed, &truetype.Options{Size: points, DPI: 72, Hinting: font.HintingFull})
	}

	if parsed, err := opentype.Parse(goregular.TTF); err == nil {
		if face, err := opentype.NewFace(parsed, &opentype.FaceOptions{Size: points, DPI: 72, Hinting: font.HintingFull}); err == nil {
			if log != nil {
				log.Infof("font", "using embedded Go Regular at %gpt", points)
			}
			return face
		}
	}

	if log != nil {
		log.Errorf("font", "embedded face unavailable, using basicfont")
	}
	return basicfont.Face7x13
}
