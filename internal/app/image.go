package app

import (
	"fmt"
	"image"
	"log/slog"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/anthonynsimon/bild/transform"

	// Formats beyond the stdlib png/jpeg/gif that imgio registers.
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"curveswarm/internal/config"
)

// LoadImage opens the image at path and scales it down so its long edge
// is at most maxSize pixels. Smaller images are left alone; maxSize <= 0
// disables scaling.
func LoadImage(path string, maxSize int) (image.Image, error) {
	img, err := imgio.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open image: %w", err)
	}
	return fitImage(img, maxSize), nil
}

func fitImage(img image.Image, maxSize int) image.Image {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	long := max(w, h)
	if maxSize <= 0 || long <= maxSize {
		return img
	}
	scale := float64(maxSize) / float64(long)
	nw := max(1, int(float64(w)*scale+0.5))
	nh := max(1, int(float64(h)*scale+0.5))
	return transform.Resize(img, nw, nh, transform.Linear)
}

// loadSettingsImage loads the configured image, if any. Failures are
// logged and answer nil so the rotation simply skips the image step.
func loadSettingsImage(s config.Settings, log *slog.Logger) image.Image {
	if s.ImagePath == "" {
		return nil
	}
	img, err := LoadImage(s.ImagePath, s.ImageMaxSize)
	if err != nil {
		log.Warn("image generator disabled", "path", s.ImagePath, "err", err)
		return nil
	}
	b := img.Bounds()
	log.Info("image loaded", "path", s.ImagePath, "width", b.Dx(), "height", b.Dy())
	return img
}
