package fonts

import (
	"bytes"
	"fmt"

	"github.com/golang/freetype/truetype"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

type FontName string

const (
	Regular FontName = "regular"
	Small   FontName = "small"
	Large   FontName = "large"
	Title   FontName = "title"
)

func (f FontName) Get() font.Face {
	return getFont(f)
}

var (
	fonts = map[FontName]font.Face{}

	uiSource *text.GoTextFaceSource
)

func LoadFont(name FontName, ttf []byte) {
	LoadFontWithSize(name, ttf, 10)
}

func LoadFontWithSize(name FontName, ttf []byte, size float64) {
	fontData, err := truetype.Parse(ttf)
	if err != nil {
		panic(fmt.Sprintf("Font %s could not be parsed: %v", name, err))
	}
	fonts[name] = truetype.NewFace(fontData, &truetype.Options{Size: size})
}

// LoadDefaults registers the bundled Go Regular face at every size the game
// draws with.
func LoadDefaults(small, regular, large, title float64) {
	LoadFontWithSize(Small, goregular.TTF, small)
	LoadFontWithSize(Regular, goregular.TTF, regular)
	LoadFontWithSize(Large, goregular.TTF, large)
	LoadFontWithSize(Title, goregular.TTF, title)
}

// UIFace returns a text/v2 face of the given size for ebitenui widgets.
func UIFace(size float64) text.Face {
	if uiSource == nil {
		src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
		if err != nil {
			panic(fmt.Sprintf("UI font could not be loaded: %v", err))
		}
		uiSource = src
	}
	return &text.GoTextFace{Source: uiSource, Size: size}
}

func getFont(name FontName) font.Face {
	f, ok := fonts[name]
	if !ok {
		panic(fmt.Sprintf("Font %s not found", name))
	}
	return f
}
