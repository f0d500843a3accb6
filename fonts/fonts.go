package fonts

import (
	"fmt"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
)

type FontName string

const (
	Regular FontName = "regular"
	Title   FontName = "title"
	Small   FontName = "small"
)

func (f FontName) Get() font.Face {
	return getFont(f)
}

var (
	fonts = map[FontName]font.Face{}
)

// LoadDefaults parses the bundled Go Regular font at the sizes the HUD uses.
// If parsing fails every name falls back to the fixed 7x13 face.
func LoadDefaults() error {
	fontData, err := truetype.Parse(goregular.TTF)
	if err != nil {
		for _, name := range []FontName{Regular, Title, Small} {
			fonts[name] = basicfont.Face7x13
		}
		return fmt.Errorf("parse go regular: %w", err)
	}
	LoadFontWithSize(Regular, fontData, 14)
	LoadFontWithSize(Title, fontData, 32)
	LoadFontWithSize(Small, fontData, 11)
	return nil
}

func LoadFontWithSize(name FontName, fontData *truetype.Font, size float64) {
	fonts[name] = truetype.NewFace(fontData, &truetype.Options{Size: size})
}

func getFont(name FontName) font.Face {
	f, ok := fonts[name]
	if !ok {
		panic(fmt.Sprintf("Font %s not found", name))
	}
	return f
}
