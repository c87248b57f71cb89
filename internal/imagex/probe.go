// Package imagex inspects local image files for on-screen previews.
package imagex

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/dmitrijs2005/checklist/internal/client/models"
	"github.com/google/uuid"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// ErrNotImage is returned for files no registered decoder recognises.
var ErrNotImage = errors.New("not a supported image")

// Probe reads just enough of the file at path to learn its format and
// dimensions. The returned preview gets a fresh LocalID.
func Probe(path string) (*models.ImagePreview, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open image: %w", err)
	}
	defer f.Close()

	st, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat image: %w", err)
	}
	if st.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", ErrNotImage, path)
	}

	cfg, format, err := image.DecodeConfig(f)
	if err != nil {
		if errors.Is(err, image.ErrFormat) {
			return nil, fmt.Errorf("%w: %s", ErrNotImage, path)
		}
		return nil, fmt.Errorf("decode image header: %w", err)
	}

	return &models.ImagePreview{
		LocalID: uuid.NewString(),
		Path:    path,
		Format:  format,
		Width:   cfg.Width,
		Height:  cfg.Height,
		Size:    st.Size(),
	}, nil
}
