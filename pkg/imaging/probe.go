// Package imaging probes image files for their intrinsic dimensions.
// Pickers feed the result into the packer so thumbnails keep their
// source aspect ratio; only the header is decoded, never pixel data.
package imaging

import (
	"fmt"
	"image"
	"os"

	// Registered decoders for the preview formats pickers produce.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// Dimensions is the probed intrinsic size of an image file.
type Dimensions struct {
	Width  float64
	Height float64
	Format string
}

// Probe reads the header of the image at path and returns its
// dimensions. The file's pixel data is not decoded.
func Probe(path string) (Dimensions, error) {
	f, err := os.Open(path)
	if err != nil {
		return Dimensions{}, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	cfg, format, err := image.DecodeConfig(f)
	if err != nil {
		return Dimensions{}, fmt.Errorf("failed to probe %s: %w", path, err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return Dimensions{}, fmt.Errorf("image %s has degenerate size %dx%d", path, cfg.Width, cfg.Height)
	}

	return Dimensions{
		Width:  float64(cfg.Width),
		Height: float64(cfg.Height),
		Format: format,
	}, nil
}
