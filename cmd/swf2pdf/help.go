package main

import (
	"fmt"
	"io"
)

// printUsage prints the usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: swf2pdf [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert SWF or SVG files in the current directory to raster images,")
	fmt.Fprintln(w, "then assemble the images into a single PDF named after the directory.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Pipeline:")
	fmt.Fprintln(w, "      --mode <n>              1 = images only, 2 = PDF from existing images,")
	fmt.Fprintln(w, "                              3 = images and PDF (default)")
	fmt.Fprintln(w, "      --x_size <n>            Image and page width in pixels (default 2480)")
	fmt.Fprintln(w, "      --y_size <n>            Image and page height in pixels (default 3508)")
	fmt.Fprintln(w, "      --source_format <s>     swf or svg (default svg)")
	fmt.Fprintln(w, "      --image_format <s>      Intermediate raster format (pinned to png)")
	fmt.Fprintln(w, "      --background_color <s>  Flattening color as R.G.B (default 255.255.255)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Renderers:")
	fmt.Fprintln(w, "      --svg-renderer <s>      SVG backend: oksvg (default) or chrome")
	fmt.Fprintln(w, "      --renderer-bin <path>   swfrender binary (default: swfrender on PATH)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "General:")
	fmt.Fprintln(w, "  -c, --config <name>         Config file name or path")
	fmt.Fprintln(w, "  -q, --quiet                 Suppress progress output")
	fmt.Fprintln(w, "  -v, --verbose               Show detailed output")
	fmt.Fprintln(w, "      --version               Show version and exit")
	fmt.Fprintln(w, "  -h, --help                  Show this help")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  SWF2PDF_RENDERER_BIN        Overrides --renderer-bin")
	fmt.Fprintln(w, "  SWF2PDF_SVG_RENDERER        Overrides --svg-renderer")
	fmt.Fprintln(w, "  ROD_BROWSER_BIN             Chrome binary for the chrome backend")
}
