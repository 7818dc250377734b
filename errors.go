package swf2pdf

import "errors"

// Sentinel errors for library operations.
var (
	ErrInvalidPageSize     = errors.New("invalid page size")
	ErrInvalidBackground   = errors.New("invalid background color")
	ErrUnknownSourceFormat = errors.New("unsupported source format")
	ErrUnknownSVGRenderer  = errors.New("unsupported svg renderer")

	// Rasterization errors. Per-item conversion failures wrap ErrRender and
	// are recovered inside the batch loop.
	ErrRender     = errors.New("rasterization failed")
	ErrWriteImage = errors.New("failed to write image file")

	// Chrome backend errors.
	ErrBrowserConnect = errors.New("failed to connect to browser")
	ErrPageCreate     = errors.New("failed to create browser page")
	ErrPageLoad       = errors.New("failed to load page")

	// Document errors.
	ErrBuildPDF  = errors.New("PDF assembly failed")
	ErrExportPDF = errors.New("failed to write PDF file")
)
