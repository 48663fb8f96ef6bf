package integrations

import (
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"

	"golang.org/x/image/draw"
)

// Cover bounds roughly match a 300 dpi A-series page.
const (
	coverMaxWidth  = 1600
	coverMaxHeight = 2400
)

// FitCover scales a cover image down to fit within the given bounds,
// preserving aspect ratio. Returns the input path unchanged when the image
// already fits; otherwise writes a resized copy to a temp file and returns
// its path. The caller removes the temp file when done.
func FitCover(path string, maxWidth, maxHeight int) (string, error) {
	if !isImageFile(path) {
		return "", fmt.Errorf("unsupported cover format: %s", filepath.Ext(path))
	}

	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open cover: %w", err)
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return "", fmt.Errorf("failed to decode cover: %w", err)
	}

	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width <= maxWidth && height <= maxHeight {
		return path, nil
	}

	newWidth, newHeight := fitDimensions(width, height, maxWidth, maxHeight)
	dst := image.NewRGBA(image.Rect(0, 0, newWidth, newHeight))
	// CatmullRom for high-quality downscaling
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)

	ext := ".jpg"
	if format == "png" {
		ext = ".png"
	}
	out, err := os.CreateTemp("", "naskah-cover-*"+ext)
	if err != nil {
		return "", fmt.Errorf("failed to create temp cover: %w", err)
	}
	defer out.Close()

	if format == "png" {
		err = png.Encode(out, dst)
	} else {
		err = jpeg.Encode(out, dst, &jpeg.Options{Quality: 90})
	}
	if err != nil {
		os.Remove(out.Name())
		return "", fmt.Errorf("failed to encode cover: %w", err)
	}

	return out.Name(), nil
}

// fitDimensions scales (width, height) to fit within (maxWidth, maxHeight)
// while maintaining aspect ratio.
func fitDimensions(width, height, maxWidth, maxHeight int) (int, int) {
	widthScale := float64(maxWidth) / float64(width)
	heightScale := float64(maxHeight) / float64(height)

	scale := widthScale
	if heightScale < widthScale {
		scale = heightScale
	}

	newWidth := int(float64(width) * scale)
	newHeight := int(float64(height) * scale)
	if newWidth < 1 {
		newWidth = 1
	}
	if newHeight < 1 {
		newHeight = 1
	}
	return newWidth, newHeight
}
