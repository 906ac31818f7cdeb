package world

import (
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/png"
	"io"

	_ "golang.org/x/image/bmp"
)

// EmptyColor marks an open cell in an image level.
var EmptyColor = color.RGBA{255, 255, 255, 255}

// Palette maps wall colours of an image level to texture ids: a pixel of
// Palette[i] is a wall with texture i.
var Palette = [MaxTextures]color.RGBA{
	{0, 0, 0, 255},
	{128, 0, 0, 255},
	{0, 128, 0, 255},
	{128, 128, 0, 255},
	{0, 0, 128, 255},
	{128, 0, 128, 255},
	{0, 128, 128, 255},
	{128, 128, 128, 255},
	{64, 64, 64, 255},
	{255, 0, 0, 255},
	{0, 255, 0, 255},
	{255, 255, 0, 255},
	{0, 0, 255, 255},
	{255, 0, 255, 255},
	{0, 255, 255, 255},
	{192, 192, 192, 255},
}

func cellForColor(c color.Color) (Cell, bool) {
	rgba := color.RGBAModel.Convert(c).(color.RGBA)
	if rgba == EmptyColor {
		return Empty, true
	}
	for i, p := range Palette {
		if rgba == p {
			return WallCell(TexID(i)), true
		}
	}
	return Empty, false
}

// ReadImage decodes a level drawn as an image, one pixel per cell. White
// pixels are empty cells, Palette colours are walls. Any other colour is a
// parse error reported with its 1-based pixel row and column.
func ReadImage(r io.Reader) (*Map, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decode level image: %w", err)
	}

	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width == 0 || height == 0 {
		return nil, &ReadError{Kind: fmt.Errorf("%w: empty %s image", ErrParse, format)}
	}

	cells := make([]Cell, 0, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c, ok := cellForColor(img.At(bounds.Min.X+x, bounds.Min.Y+y))
			if !ok {
				return nil, &ReadError{Line: y + 1, Col: x + 1, Kind: ErrParse}
			}
			cells = append(cells, c)
		}
	}

	return New(width, height, cells)
}
