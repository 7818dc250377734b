package main

import (
	"io"
	"os"
)

// Environment variable names recognized by the CLI.
const (
	envRendererBin = "SWF2PDF_RENDERER_BIN"
	envSVGRenderer = "SWF2PDF_SVG_RENDERER"
)

// Environment holds injectable dependencies for testability.
type Environment struct {
	Stdout io.Writer
	Stderr io.Writer
	Getenv func(string) string
	Getwd  func() (string, error)
}

// DefaultEnv returns the production environment.
func DefaultEnv() *Environment {
	return &Environment{
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Getenv: os.Getenv,
		Getwd:  os.Getwd,
	}
}
