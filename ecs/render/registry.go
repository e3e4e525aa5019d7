package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

var images = map[string]*ebiten.Image{}

// RegisterImage stores an image by key.
func RegisterImage(key string, img *ebiten.Image) {
	if key == "" || img == nil {
		return
	}
	images[key] = img
}

// GetImage returns a cached image by key.
func GetImage(key string) *ebiten.Image {
	if key == "" {
		return nil
	}
	return images[key]
}

// solidImage returns a cached size x size image filled with c, creating it
// on first use.
func solidImage(key string, size int, c color.Color) *ebiten.Image {
	if img := GetImage(key); img != nil {
		return img
	}
	img := ebiten.NewImage(size, size)
	img.Fill(c)
	RegisterImage(key, img)
	return img
}
