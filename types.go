package swf2pdf

import (
	"fmt"
	"image/color"
	"io"
	"strconv"
	"strings"
	"time"
)

// Source format constants.
const (
	SourceSWF = "swf"
	SourceSVG = "svg"
)

// DefaultSourceFormat is used when no source format is specified.
const DefaultSourceFormat = SourceSVG

// DefaultImageFormat is the only raster format swfrender emits, so the
// intermediate format is pinned to it.
const DefaultImageFormat = "png"

// SVG renderer backend names.
const (
	SVGRendererOksvg  = "oksvg"
	SVGRendererChrome = "chrome"
)

// Default raster dimensions in pixels (A4 at roughly 300 dpi).
const (
	DefaultPageWidth  = 2480
	DefaultPageHeight = 3508
)

// PageSize holds target raster dimensions in pixels. Document pages reuse
// the same numbers in points, so one pixel maps to exactly one point and
// images are never scaled onto pages.
type PageSize struct {
	Width  int
	Height int
}

// DefaultPageSize returns the built-in A4-at-300dpi dimensions.
func DefaultPageSize() PageSize {
	return PageSize{Width: DefaultPageWidth, Height: DefaultPageHeight}
}

// Validate checks that both dimensions are positive.
func (p PageSize) Validate() error {
	if p.Width <= 0 || p.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidPageSize, p.Width, p.Height)
	}
	return nil
}

// Background is the opaque color semi-transparent rasters are flattened
// onto. It never affects images without transparency.
type Background struct {
	R, G, B uint8
}

// DefaultBackground returns opaque white.
func DefaultBackground() Background {
	return Background{R: 255, G: 255, B: 255}
}

// ParseBackground parses a dot-separated RGB triple such as "255.255.255".
// Each component must be an integer in [0, 255].
func ParseBackground(s string) (Background, error) {
	parts := strings.Split(s, ".")
	if len(parts) != 3 {
		return Background{}, fmt.Errorf("%w: %q (want R.G.B)", ErrInvalidBackground, s)
	}
	var c [3]uint8
	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil {
			return Background{}, fmt.Errorf("%w: %q is not an integer", ErrInvalidBackground, part)
		}
		if n < 0 || n > 255 {
			return Background{}, fmt.Errorf("%w: %d out of range [0, 255]", ErrInvalidBackground, n)
		}
		c[i] = uint8(n)
	}
	return Background{R: c[0], G: c[1], B: c[2]}, nil
}

// color returns the background as an opaque RGBA value.
func (b Background) color() color.RGBA {
	return color.RGBA{R: b.R, G: b.G, B: b.B, A: 255}
}

// Mode selects which pipeline stages run.
type Mode int

// Pipeline modes. The numeric values match the CLI's --mode flag.
const (
	ModeImages Mode = 1 // generate rasters only
	ModePDF    Mode = 2 // assemble PDF from existing rasters only
	ModeBoth   Mode = 3 // generate rasters, then assemble PDF
)

// Valid reports whether m names a known pipeline mode.
func (m Mode) Valid() bool {
	switch m {
	case ModeImages, ModePDF, ModeBoth:
		return true
	}
	return false
}

// ValidSourceFormat reports whether s is a supported source format.
func ValidSourceFormat(s string) bool {
	switch s {
	case SourceSWF, SourceSVG:
		return true
	}
	return false
}

// Input contains the parameters for one pipeline run. Zero-valued fields
// fall back to defaults: current directory, ModeBoth, DefaultPageSize,
// svg sources, png rasters, white background.
type Input struct {
	Dir          string      // working directory (default ".")
	Mode         Mode        // pipeline mode (default ModeBoth)
	Page         PageSize    // raster and page dimensions in pixels
	SourceFormat string      // "swf" or "svg"
	ImageFormat  string      // intermediate raster extension (pinned to png)
	Background   *Background // flattening color (nil = opaque white)
}

// Option configures a Service.
type Option func(*Service)

// serviceConfig holds internal configuration for Service.
type serviceConfig struct {
	timeout     time.Duration
	rendererBin string
	svgRenderer string
}

// defaultTimeout bounds a single Chrome render when no timeout is specified.
const defaultTimeout = 30 * time.Second

// WithTimeout sets the per-item rendering timeout for the Chrome backend.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("swf2pdf: WithTimeout duration must be positive")
	}
	return func(s *Service) {
		s.cfg.timeout = d
	}
}

// WithRendererBin overrides the swfrender binary path.
func WithRendererBin(path string) Option {
	return func(s *Service) {
		s.cfg.rendererBin = path
	}
}

// WithSVGRenderer selects the SVG backend by name ("oksvg" or "chrome").
// Unknown names are rejected by Service.Run.
func WithSVGRenderer(name string) Option {
	return func(s *Service) {
		s.cfg.svgRenderer = name
	}
}

// WithSVGRasterizer injects a custom SVG rasterizer (e.g., a fake in tests).
func WithSVGRasterizer(r SVGRasterizer) Option {
	return func(s *Service) {
		s.svg = r
	}
}

// WithRunner injects a custom command runner for the external SWF renderer.
func WithRunner(r CommandRunner) Option {
	return func(s *Service) {
		s.runner = r
	}
}

// WithProgress redirects progress output (default os.Stderr).
// Use io.Discard to silence it.
func WithProgress(w io.Writer) Option {
	return func(s *Service) {
		s.progress = w
	}
}
