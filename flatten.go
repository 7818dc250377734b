package swf2pdf

import (
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"os"
)

// Flatten composes img over an opaque background using the image's own
// alpha channel as the compositing mask. The result is fully opaque:
// opaque input pixels come through unchanged, fully transparent pixels take
// the background color.
//
// Embedding opaque rasters in the document is faster and more portable than
// carrying alpha through to the PDF writer.
func Flatten(img image.Image, bg Background) *image.RGBA {
	bounds := img.Bounds()
	out := image.NewRGBA(bounds)
	draw.Draw(out, bounds, image.NewUniform(bg.color()), image.Point{}, draw.Src)
	draw.Draw(out, bounds, img, bounds.Min, draw.Over)
	return out
}

// writePNG writes img to path, creating or truncating the file.
func writePNG(path string, img image.Image) error {
	f, err := os.Create(path) // #nosec G304 -- output path derives from the scanned directory
	if err != nil {
		return fmt.Errorf("%w: %v", ErrWriteImage, err)
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return fmt.Errorf("%w: %v", ErrWriteImage, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteImage, err)
	}
	return nil
}
