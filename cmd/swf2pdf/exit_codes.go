package main

import (
	"errors"
	"os"

	swf2pdf "github.com/alnah/go-swf2pdf"
	"github.com/alnah/go-swf2pdf/internal/config"
)

// Exit codes for the swf2pdf CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
// Item-level conversion failures do not affect the exit status; the pipeline
// favors batch throughput over strict failure signaling.
const (
	ExitSuccess  = 0 // Successful run (individual items may still have failed)
	ExitGeneral  = 1 // General/unexpected error
	ExitUsage    = 2 // Invalid flags, config, or validation
	ExitIO       = 3 // File not found, permission denied, write failures
	ExitRenderer = 4 // Rasterizer or document-builder errors
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Renderer errors (exit 4)
	if errors.Is(err, swf2pdf.ErrRender) ||
		errors.Is(err, swf2pdf.ErrBrowserConnect) ||
		errors.Is(err, swf2pdf.ErrPageCreate) ||
		errors.Is(err, swf2pdf.ErrPageLoad) ||
		errors.Is(err, swf2pdf.ErrBuildPDF) {
		return ExitRenderer
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, swf2pdf.ErrWriteImage) ||
		errors.Is(err, swf2pdf.ErrExportPDF) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, swf2pdf.ErrInvalidPageSize) ||
		errors.Is(err, swf2pdf.ErrInvalidBackground) ||
		errors.Is(err, swf2pdf.ErrUnknownSourceFormat) ||
		errors.Is(err, swf2pdf.ErrUnknownSVGRenderer) {
		return ExitUsage
	}

	return ExitGeneral
}
