package main

import (
	"fmt"
	"os"

	flag "github.com/spf13/pflag"
)

// cliFlags holds all flags for the tool. The underscore flag names are the
// tool's established interface; the newer flags use the usual kebab style.
type cliFlags struct {
	mode            int
	xSize           int
	ySize           int
	imageFormat     string
	sourceFormat    string
	backgroundColor string

	svgRenderer string
	rendererBin string
	config      string
	quiet       bool
	verbose     bool
	version     bool
	help        bool
}

// parseFlags parses os.Args-style arguments. The returned FlagSet lets
// callers distinguish explicitly set flags from defaults via Changed.
func parseFlags(args []string) (*cliFlags, *flag.FlagSet, error) {
	fs := flag.NewFlagSet("swf2pdf", flag.ContinueOnError)
	f := &cliFlags{}

	fs.IntVar(&f.mode, "mode", 0,
		"1 - Generate images only, 2 - Generate PDF from existing images, 3 - Generate images and PDF")
	fs.IntVar(&f.xSize, "x_size", 0, "X size of images and pdf in pixels")
	fs.IntVar(&f.ySize, "y_size", 0, "Y size of images and pdf in pixels")
	fs.StringVar(&f.imageFormat, "image_format", "", "png|jpeg")
	fs.StringVar(&f.sourceFormat, "source_format", "", "swf|svg")
	fs.StringVar(&f.backgroundColor, "background_color", "", "dot-separated RGB triple, e.g. 255.255.255")

	fs.StringVar(&f.svgRenderer, "svg-renderer", "", "SVG backend: oksvg or chrome")
	fs.StringVar(&f.rendererBin, "renderer-bin", "", "path to the swfrender binary")
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "suppress progress output")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed output")
	fs.BoolVar(&f.version, "version", false, "show version and exit")
	fs.BoolVarP(&f.help, "help", "h", false, "show help and exit")

	fs.Usage = func() { printUsage(os.Stderr) }

	if err := fs.Parse(args[1:]); err != nil {
		return nil, nil, err
	}
	if len(fs.Args()) > 0 {
		return nil, nil, fmt.Errorf("unexpected argument: %q", fs.Args()[0])
	}

	return f, fs, nil
}
