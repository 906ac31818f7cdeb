package texture

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"io"
	"log"
	"os"
	"path/filepath"
	"testing"
)

func checker(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if (x+y)%2 == 0 {
				img.Set(x, y, color.NRGBA{200, 10, 30, 255})
			} else {
				img.Set(x, y, color.NRGBA{5, 60, 250, 255})
			}
		}
	}
	return img
}

func writePNG(t *testing.T, dir, name string, img image.Image) string {
	t.Helper()
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestFromImage(t *testing.T) {
	tex := FromImage(checker(3, 2))
	if tex.Width != 3 || tex.Height != 2 || len(tex.Pix) != 18 {
		t.Fatalf("Expected 3x2 RGB texture, got %dx%d with %d bytes", tex.Width, tex.Height, len(tex.Pix))
	}

	tests := []struct {
		x, y    int
		r, g, b byte
	}{
		{0, 0, 200, 10, 30},
		{1, 0, 5, 60, 250},
		{2, 1, 5, 60, 250},
		{1, 1, 200, 10, 30},
	}
	for _, tt := range tests {
		r, g, b := tex.At(tt.x, tt.y)
		if r != tt.r || g != tt.g || b != tt.b {
			t.Errorf("Texel (%d,%d): expected %d,%d,%d got %d,%d,%d", tt.x, tt.y, tt.r, tt.g, tt.b, r, g, b)
		}
	}
}

func TestFromImageOffsetBounds(t *testing.T) {
	sub := checker(4, 4).SubImage(image.Rect(1, 1, 3, 3))
	tex := FromImage(sub)
	if tex.Width != 2 || tex.Height != 2 {
		t.Fatalf("Expected 2x2, got %dx%d", tex.Width, tex.Height)
	}
	// (1,1) of the source is at the origin of the texture
	if r, _, _ := tex.At(0, 0); r != 200 {
		t.Errorf("Expected red texel at origin, got r=%d", r)
	}
}

func TestResize(t *testing.T) {
	src := FromImage(checker(2, 2))
	big := src.Resize(4, 4)
	if big.Width != 4 || big.Height != 4 {
		t.Fatalf("Expected 4x4, got %dx%d", big.Width, big.Height)
	}
	// every source texel becomes a 2x2 block
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			wr, wg, wb := src.At(x/2, y/2)
			r, g, b := big.At(x, y)
			if r != wr || g != wg || b != wb {
				t.Errorf("Texel (%d,%d): expected %d,%d,%d got %d,%d,%d", x, y, wr, wg, wb, r, g, b)
			}
		}
	}

	if same := src.Resize(2, 2); same != src {
		t.Error("Expected resize to the same size to return the texture unchanged")
	}
}

func TestSetAt(t *testing.T) {
	s := Set{FromImage(checker(1, 1))}
	if _, err := s.At(0); err != nil {
		t.Errorf("Unexpected error: %v", err)
	}
	if _, err := s.At(1); !errors.Is(err, ErrUnknownTexture) {
		t.Errorf("Expected ErrUnknownTexture, got %v", err)
	}
}

func TestLoadSet(t *testing.T) {
	dir := t.TempDir()
	logger := log.New(io.Discard, "", 0)
	a := writePNG(t, dir, "a.png", checker(8, 8))
	b := writePNG(t, dir, "b.png", checker(16, 4))

	set, err := LoadSet([]string{a, b}, 0, logger)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(set) != 2 || set[1].Width != 16 || set[1].Height != 4 {
		t.Fatalf("Expected native sizes, got %d textures", len(set))
	}

	set, err = LoadSet([]string{a, b}, 4, logger)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	for i, tex := range set {
		if tex.Width != 4 || tex.Height != 4 {
			t.Errorf("Texture %d: expected 4x4, got %dx%d", i, tex.Width, tex.Height)
		}
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	missing := filepath.Join(dir, "missing.png")
	_, err := Load(missing)
	var le *LoadError
	if !errors.As(err, &le) || le.Path != missing || !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Expected LoadError for missing file, got %v", err)
	}

	garbage := filepath.Join(dir, "garbage.png")
	if err := os.WriteFile(garbage, []byte("not an image"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(garbage); !errors.Is(err, image.ErrFormat) {
		t.Errorf("Expected image.ErrFormat, got %v", err)
	}

	paths := make([]string, 17)
	if _, err := LoadSet(paths, 0, log.New(io.Discard, "", 0)); err == nil {
		t.Error("Expected error for more than 16 textures")
	}
}
