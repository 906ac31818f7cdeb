package texture

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"log"
	"os"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"raycaster/world"
)

// LoadError is returned when a texture file cannot be opened or decoded.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load texture %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Load decodes the image at path into a texture.
func Load(path string) (*Texture, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	t := FromImage(img)
	if t.Width == 0 || t.Height == 0 {
		return nil, &LoadError{Path: path, Err: errors.New("empty image")}
	}
	return t, nil
}

// LoadSet loads the textures in order, so paths[i] gets texture id i. A size
// above zero resamples every texture to size by size texels.
func LoadSet(paths []string, size int, logger *log.Logger) (Set, error) {
	if len(paths) > world.MaxTextures {
		return nil, fmt.Errorf("%d textures given, at most %d can be addressed", len(paths), world.MaxTextures)
	}

	set := make(Set, 0, len(paths))
	for _, path := range paths {
		logger.Printf("loading texture at %s", path)

		t, err := Load(path)
		if err != nil {
			return nil, err
		}
		if size > 0 {
			t = t.Resize(size, size)
		}
		set = append(set, t)
	}
	return set, nil
}
