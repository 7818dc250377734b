package swf2pdf

import (
	"context"
	"fmt"
	"image"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

// SVGRasterizer abstracts SVG rendering to allow different backends.
// Implementations return an image that may carry alpha; the batch loop
// flattens it before writing.
type SVGRasterizer interface {
	Rasterize(ctx context.Context, path string, width, height int) (image.Image, error)
	Close() error
}

// Compile-time interface checks.
var (
	_ SVGRasterizer = (*oksvgRasterizer)(nil)
	_ SVGRasterizer = (*chromeRasterizer)(nil)
)

// oksvgRasterizer renders SVG files in process with oksvg and rasterx.
type oksvgRasterizer struct{}

func newOksvgRasterizer() *oksvgRasterizer {
	return &oksvgRasterizer{}
}

// Rasterize parses the SVG at path and draws it into a width x height RGBA
// buffer. Malformed input is reported as ErrRender.
func (o *oksvgRasterizer) Rasterize(ctx context.Context, path string, width, height int) (image.Image, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	icon, err := oksvg.ReadIcon(path, oksvg.WarnErrorMode)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRender, err)
	}
	icon.SetTarget(0, 0, float64(width), float64(height))

	rgba := image.NewRGBA(image.Rect(0, 0, width, height))
	scanner := rasterx.NewScannerGV(width, height, rgba, rgba.Bounds())
	icon.Draw(rasterx.NewDasher(width, height, scanner), 1)
	return rgba, nil
}

// Close is a no-op; the in-process rasterizer holds no resources.
func (o *oksvgRasterizer) Close() error { return nil }
