package swf2pdf

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Service orchestrates the two-stage conversion pipeline.
type Service struct {
	cfg      serviceConfig
	runner   CommandRunner
	swf      *swfRasterizer
	svg      SVGRasterizer
	progress io.Writer
}

// New creates a Service with default configuration.
// Use options to customize behavior (e.g., WithTimeout, WithRendererBin).
func New(opts ...Option) *Service {
	s := &Service{
		cfg:      serviceConfig{timeout: defaultTimeout},
		progress: os.Stderr,
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.runner == nil {
		s.runner = &ExecRunner{}
	}
	s.swf = newSWFRasterizer(s.runner, s.cfg.rendererBin)

	// Create SVG rasterizer if not injected (e.g., by tests)
	if s.svg == nil {
		switch s.cfg.svgRenderer {
		case SVGRendererChrome:
			s.svg = newChromeRasterizer(s.cfg.timeout)
		default:
			s.svg = newOksvgRasterizer()
		}
	}

	return s
}

// Close releases rasterizer resources (headless Chrome, when used).
func (s *Service) Close() error {
	if s.svg != nil {
		return s.svg.Close()
	}
	return nil
}

// Run executes one pipeline invocation according to in.Mode. An unknown
// mode is reported on the progress writer and falls back to ModeBoth.
// Item-level conversion failures never surface here; only configuration,
// directory, and export errors do.
func (s *Service) Run(ctx context.Context, in Input) error {
	if err := s.validate(in); err != nil {
		return err
	}
	s.normalize(&in)

	if in.Mode == 0 {
		in.Mode = ModeBoth
	} else if !in.Mode.Valid() {
		fmt.Fprintf(s.progress, "Unknown mode %d, generating images and PDF.\n", in.Mode)
		in.Mode = ModeBoth
	}

	switch in.Mode {
	case ModeImages:
		_, err := s.GenerateImages(ctx, in)
		return err
	case ModePDF:
		return s.buildAndExport(ctx, in)
	default: // ModeBoth
		if _, err := s.GenerateImages(ctx, in); err != nil {
			return err
		}
		return s.buildAndExport(ctx, in)
	}
}

// buildAndExport runs stage 2 and writes the document next to its images.
// A nil document (no images found) is a silent no-op.
func (s *Service) buildAndExport(ctx context.Context, in Input) error {
	doc, err := s.BuildPDF(ctx, in)
	if err != nil {
		return err
	}
	if doc == nil {
		return nil
	}
	return doc.Export(ExportPath(in.Dir))
}

// ExportPath derives the document path from the directory's last component:
// converting /scans/chapter1 yields /scans/chapter1/chapter1.pdf.
func ExportPath(dir string) string {
	abs, err := filepath.Abs(dir)
	if err != nil {
		abs = dir
	}
	return filepath.Join(dir, filepath.Base(abs)+".pdf")
}

// validate rejects inputs no stage can act on. Defaults are filled later by
// normalize, so only explicitly wrong values fail here.
func (s *Service) validate(in Input) error {
	if in.Page != (PageSize{}) {
		if err := in.Page.Validate(); err != nil {
			return err
		}
	}
	if in.SourceFormat != "" && !ValidSourceFormat(in.SourceFormat) {
		return fmt.Errorf("%w: %q", ErrUnknownSourceFormat, in.SourceFormat)
	}
	if s.cfg.svgRenderer != "" &&
		s.cfg.svgRenderer != SVGRendererOksvg && s.cfg.svgRenderer != SVGRendererChrome {
		return fmt.Errorf("%w: %q", ErrUnknownSVGRenderer, s.cfg.svgRenderer)
	}
	return nil
}

// normalize fills zero-valued Input fields with defaults. Idempotent; both
// stages call it so they also work when invoked directly.
func (s *Service) normalize(in *Input) {
	if in.Dir == "" {
		in.Dir = "."
	}
	if in.Page == (PageSize{}) {
		in.Page = DefaultPageSize()
	}
	if in.SourceFormat == "" {
		in.SourceFormat = DefaultSourceFormat
	}
	if in.ImageFormat == "" {
		in.ImageFormat = DefaultImageFormat
	}
	if in.Background == nil {
		bg := DefaultBackground()
		in.Background = &bg
	}
}
