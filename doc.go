// Package swf2pdf batch-converts SWF or SVG files in a directory into raster
// images, then assembles the rasters into a single paginated PDF.
//
// # Quick Start
//
// Create a service, run the pipeline over the current directory, and close
// when done:
//
//	svc := swf2pdf.New()
//	defer svc.Close()
//
//	err := svc.Run(ctx, swf2pdf.Input{
//	    Dir:          ".",
//	    Mode:         swf2pdf.ModeBoth,
//	    SourceFormat: swf2pdf.SourceSVG,
//	})
//
// # Pipeline
//
// The pipeline runs in two stages coupled only through the filesystem:
//
//  1. Image generation: every matching source file is rasterized to a
//     sibling PNG at the target size, with transparency flattened over an
//     opaque background. SWF files go through the external swfrender
//     binary; SVG files are rendered in process via oksvg (or in headless
//     Chrome with WithSVGRasterizer).
//  2. PDF assembly: every raster in the directory becomes one page sized
//     exactly to the raster's pixel dimensions (one pixel per point), with
//     the image placed at the page origin. The document is written as
//     <directory-name>.pdf.
//
// Input files are processed shortest-stem first, then lexicographically, so
// frame2 sorts before frame10.
//
// A single file failing to convert does not abort the batch; the failure is
// reported in the returned BatchResult and the run continues.
//
// # Configuration
//
// Use functional options to customize the service:
//
//	svc := swf2pdf.New(
//	    swf2pdf.WithTimeout(2*time.Minute),
//	    swf2pdf.WithRendererBin("/usr/local/bin/swfrender"),
//	    swf2pdf.WithProgress(os.Stdout),
//	)
//
// # External Requirements
//
// SWF conversion requires the swfrender binary (swftools) on PATH or via
// WithRendererBin. The Chrome SVG backend requires Chrome/Chromium; go-rod
// downloads a managed Chromium on first run. Set ROD_NO_SANDBOX=1 in
// containers and ROD_BROWSER_BIN to point at a custom binary.
package swf2pdf
