// Package assets loads and caches the textures the game draws.
package assets

import (
	"errors"
	"fmt"
	"image"
	_ "image/png"
	"io/fs"
	"os"

	"github.com/automoto/dasher/shared/dashconfig"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

var ErrTextureNotLoaded = errors.New("texture not loaded")

// TextureLoader decodes textures from a file system once and keeps them
// for the lifetime of the process.
type TextureLoader struct {
	fsys       fs.FS
	cache      map[string]*ebiten.Image
	frameCache map[frameKey]*ebiten.Image
}

type frameKey struct {
	path string
	rect image.Rectangle
}

func NewTextureLoader(fsys fs.FS) *TextureLoader {
	return &TextureLoader{
		fsys:       fsys,
		cache:      make(map[string]*ebiten.Image),
		frameCache: make(map[frameKey]*ebiten.Image),
	}
}

// Load returns the texture at path, decoding it on first use.
func (l *TextureLoader) Load(path string) (*ebiten.Image, error) {
	if img, ok := l.cache[path]; ok {
		return img, nil
	}

	f, err := l.fsys.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open texture %s: %w", path, err)
	}
	defer f.Close()

	img, _, err := ebitenutil.NewImageFromReader(f)
	if err != nil {
		return nil, fmt.Errorf("decode texture %s: %w", path, err)
	}

	l.cache[path] = img
	return img, nil
}

// LoadVariant loads every texture the variant draws and reports their sizes.
func (l *TextureLoader) LoadVariant(v dashconfig.Variant) (dashconfig.TextureSizes, error) {
	sizes := dashconfig.TextureSizes{Layers: map[string]dashconfig.Size{}}

	for _, path := range v.Textures() {
		img, err := l.Load(path)
		if err != nil {
			return dashconfig.TextureSizes{}, err
		}
		size := dashconfig.Size{Width: img.Bounds().Dx(), Height: img.Bounds().Dy()}

		switch path {
		case dashconfig.CharacterTexture:
			sizes.Character = size
		case dashconfig.ObstacleTexture:
			sizes.Obstacle = size
		default:
			sizes.Layers[path] = size
		}
	}
	return sizes, nil
}

// Texture returns an already loaded texture.
func (l *TextureLoader) Texture(path string) (*ebiten.Image, error) {
	img, ok := l.cache[path]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrTextureNotLoaded, path)
	}
	return img, nil
}

// Frame returns a cached sub-image of a loaded texture. This prevents
// creating a new *ebiten.Image for the same frame every draw.
func (l *TextureLoader) Frame(path string, src image.Rectangle) *ebiten.Image {
	key := frameKey{path: path, rect: src}
	if img, ok := l.frameCache[key]; ok {
		return img
	}

	tex, ok := l.cache[path]
	if !ok {
		return nil
	}
	img := tex.SubImage(src).(*ebiten.Image)
	l.frameCache[key] = img
	return img
}

var loader *TextureLoader

// Init points the shared loader at the texture root directory.
func Init(root string) {
	loader = NewTextureLoader(os.DirFS(root))
}

// Loader returns the shared loader, rooted at the working directory unless
// Init was called.
func Loader() *TextureLoader {
	if loader == nil {
		Init(".")
	}
	return loader
}
