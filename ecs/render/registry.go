// Package render caches the images entities draw with. Brick appearance is
// resolved by type id through the palette prefab; ids the palette does not
// know render with a debug fallback color.
package render

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/brickbreaker/common"
	"github.com/milk9111/brickbreaker/prefabs"
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

// Reset drops every cached image. Called when the palette prefab reloads.
func Reset() {
	images = map[string]*ebiten.Image{}
}

// BrickImage resolves the tile image for a brick type id.
func BrickImage(code int, spec prefabs.BrickSetSpec) *ebiten.Image {
	key := fmt.Sprintf("brick:%d", code)
	if img := GetImage(key); img != nil {
		return img
	}

	hex, ok := spec.Palette[code]
	if !ok {
		hex = spec.Default
	}
	img := ebiten.NewImage(common.TileSize, common.TileSize)
	img.Fill(parseHexColor(hex))
	RegisterImage(key, img)
	return img
}

// BallImage builds the ball sprite as a filled square of the ball color;
// the physics circle is smaller than the tile so the corners read as round
// enough at this scale.
func BallImage(spec prefabs.BallSpec) *ebiten.Image {
	if img := GetImage("ball"); img != nil {
		return img
	}
	size := int(spec.Radius * 2)
	if size <= 0 {
		size = 16
	}
	img := ebiten.NewImage(size, size)
	img.Fill(parseHexColor(spec.Color))
	RegisterImage("ball", img)
	return img
}

// PaddleImage builds the paddle sprite.
func PaddleImage(spec prefabs.PaddleSpec) *ebiten.Image {
	if img := GetImage("paddle"); img != nil {
		return img
	}
	w, h := int(spec.Width), int(spec.Height)
	if w <= 0 {
		w = 96
	}
	if h <= 0 {
		h = 16
	}
	img := ebiten.NewImage(w, h)
	img.Fill(parseHexColor(spec.Color))
	RegisterImage("paddle", img)
	return img
}

// parseHexColor parses "#rrggbb". A failed parse yields the magenta debug
// color so missing palette entries are visible in-game.
func parseHexColor(s string) color.RGBA {
	var r, g, b uint8 = 0xff, 0x00, 0xff
	if len(s) == 7 && s[0] == '#' {
		var ri, gi, bi uint32
		if _, err := fmt.Sscanf(s[1:], "%02x%02x%02x", &ri, &gi, &bi); err == nil {
			r = uint8(ri)
			g = uint8(gi)
			b = uint8(bi)
		}
	}
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}
