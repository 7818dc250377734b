package main

import (
	"context"
	"fmt"
	"io"

	flag "github.com/spf13/pflag"

	swf2pdf "github.com/alnah/go-swf2pdf"
	"github.com/alnah/go-swf2pdf/internal/config"
)

// runParams is the fully resolved configuration for one invocation, after
// merging flags, environment, and config file (in that order of precedence).
type runParams struct {
	input       swf2pdf.Input
	svgRenderer string
	rendererBin string
	quiet       bool
}

// resolveParams merges CLI flags, environment variables, and the optional
// config file into runParams. Flags win over env, env wins over config.
func resolveParams(flags *cliFlags, fs *flag.FlagSet, env *Environment) (*runParams, error) {
	cfg := config.DefaultConfig()
	if flags.config != "" {
		loaded, err := config.LoadConfig(flags.config)
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
		cfg = loaded
	}

	p := &runParams{quiet: flags.quiet}

	// Mode: 0 means unset; the library defaults it to both. An out-of-range
	// value is passed through so the library can warn and fall back.
	p.input.Mode = swf2pdf.Mode(flags.mode)
	if !fs.Changed("mode") && cfg.Mode != 0 {
		p.input.Mode = swf2pdf.Mode(cfg.Mode)
	}

	// Page size: flag, then config, then built-in default.
	p.input.Page = swf2pdf.PageSize{Width: flags.xSize, Height: flags.ySize}
	if !fs.Changed("x_size") && cfg.Page.Width != 0 {
		p.input.Page.Width = cfg.Page.Width
	}
	if !fs.Changed("y_size") && cfg.Page.Height != 0 {
		p.input.Page.Height = cfg.Page.Height
	}
	if p.input.Page.Width == 0 {
		p.input.Page.Width = swf2pdf.DefaultPageWidth
	}
	if p.input.Page.Height == 0 {
		p.input.Page.Height = swf2pdf.DefaultPageHeight
	}
	if err := p.input.Page.Validate(); err != nil {
		return nil, err
	}

	// Image format is accepted but pinned to png: swfrender emits nothing else.
	if fs.Changed("image_format") && flags.imageFormat != swf2pdf.DefaultImageFormat {
		fmt.Fprintln(env.Stderr, "Due to swftools currently only supporting png, image format is reset to png.")
	}
	p.input.ImageFormat = swf2pdf.DefaultImageFormat

	// Source format: invalid values warn and fall back to the default.
	sourceFormat := flags.sourceFormat
	if sourceFormat == "" {
		sourceFormat = cfg.SourceFormat
	}
	if sourceFormat != "" && !swf2pdf.ValidSourceFormat(sourceFormat) {
		fmt.Fprintf(env.Stderr, "Only swf or svg is supported, trying %s as default.\n",
			swf2pdf.DefaultSourceFormat)
		sourceFormat = swf2pdf.DefaultSourceFormat
	}
	p.input.SourceFormat = sourceFormat

	// Background color: must be an integer triple in [0, 255].
	background := flags.backgroundColor
	if background == "" {
		background = cfg.Background
	}
	if background != "" {
		bg, err := swf2pdf.ParseBackground(background)
		if err != nil {
			return nil, err
		}
		p.input.Background = &bg
	}

	p.svgRenderer = firstNonEmpty(flags.svgRenderer, env.Getenv(envSVGRenderer), cfg.SVGRenderer)
	p.rendererBin = firstNonEmpty(flags.rendererBin, env.Getenv(envRendererBin), cfg.RendererBin)

	return p, nil
}

// run executes the pipeline in the current working directory.
func run(flags *cliFlags, fs *flag.FlagSet, env *Environment) error {
	p, err := resolveParams(flags, fs, env)
	if err != nil {
		return err
	}

	dir, err := env.Getwd()
	if err != nil {
		return fmt.Errorf("resolving working directory: %w", err)
	}
	p.input.Dir = dir

	progress := env.Stderr
	if p.quiet {
		progress = io.Discard
	}

	opts := []swf2pdf.Option{swf2pdf.WithProgress(progress)}
	if p.svgRenderer != "" {
		opts = append(opts, swf2pdf.WithSVGRenderer(p.svgRenderer))
	}
	if p.rendererBin != "" {
		opts = append(opts, swf2pdf.WithRendererBin(p.rendererBin))
	}

	svc := swf2pdf.New(opts...)
	defer svc.Close()

	return svc.Run(context.Background(), p.input)
}

// firstNonEmpty returns the first non-empty string.
func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
