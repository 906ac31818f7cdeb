package texture

import (
	"errors"
	"fmt"
	"image"

	"golang.org/x/image/draw"

	"raycaster/world"
)

// ErrUnknownTexture is returned when a texture id has no loaded texture.
var ErrUnknownTexture = errors.New("unknown texture id")

// Texture is an RGB image, 3 bytes per texel, rows top to bottom.
type Texture struct {
	Width  int
	Height int
	Pix    []byte
}

// FromImage converts any decoded image to an RGB texture. Alpha is dropped.
func FromImage(img image.Image) *Texture {
	b := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)

	t := &Texture{
		Width:  b.Dx(),
		Height: b.Dy(),
		Pix:    make([]byte, 3*b.Dx()*b.Dy()),
	}
	for i, j := 0, 0; i < len(rgba.Pix); i, j = i+4, j+3 {
		copy(t.Pix[j:j+3], rgba.Pix[i:i+3])
	}
	return t
}

// Image returns the texture as an opaque RGBA image.
func (t *Texture) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, t.Width, t.Height))
	for i, j := 0, 0; j < len(t.Pix); i, j = i+4, j+3 {
		copy(img.Pix[i:i+3], t.Pix[j:j+3])
		img.Pix[i+3] = 0xff
	}
	return img
}

// Resize returns a copy of the texture scaled to w by h texels with
// nearest-neighbour sampling.
func (t *Texture) Resize(w, h int) *Texture {
	if w == t.Width && h == t.Height {
		return t
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), t.Image(), image.Rect(0, 0, t.Width, t.Height), draw.Src, nil)
	return FromImage(dst)
}

// At returns the texel at (x, y). Coordinates must be in range.
func (t *Texture) At(x, y int) (r, g, b byte) {
	i := 3 * (y*t.Width + x)
	return t.Pix[i], t.Pix[i+1], t.Pix[i+2]
}

// Set is the list of textures addressed by map texture ids.
type Set []*Texture

// At returns the texture for id.
func (s Set) At(id world.TexID) (*Texture, error) {
	if int(id) >= len(s) || s[id] == nil {
		return nil, fmt.Errorf("%w: %d (have %d)", ErrUnknownTexture, id, len(s))
	}
	return s[id], nil
}
