// Package config loads optional YAML defaults for the conversion pipeline.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-swf2pdf/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
)

// Config holds file-based defaults for the pipeline. The zero value for a
// field means "use the built-in default"; CLI flags always win over config.
type Config struct {
	Mode         int        `yaml:"mode"`         // 1=images, 2=pdf, 3=both
	Page         PageConfig `yaml:"page"`         // raster/page dimensions in pixels
	SourceFormat string     `yaml:"sourceFormat"` // "swf" or "svg"
	ImageFormat  string     `yaml:"imageFormat"`  // pinned to "png"
	Background   string     `yaml:"background"`   // dot-separated RGB, e.g. "255.255.255"
	SVGRenderer  string     `yaml:"svgRenderer"`  // "oksvg" or "chrome"
	RendererBin  string     `yaml:"rendererBin"`  // swfrender binary path
}

// PageConfig defines raster dimensions.
type PageConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// DefaultConfig returns a neutral configuration; every field defers to the
// library's built-in defaults.
func DefaultConfig() *Config {
	return &Config{}
}

// Validate checks value ranges for fields the config does set.
func (c *Config) Validate() error {
	if c.Mode < 0 || c.Mode > 3 {
		return fmt.Errorf("mode: must be 1, 2, or 3, got %d", c.Mode)
	}
	if c.Page.Width < 0 || c.Page.Height < 0 {
		return fmt.Errorf("page: dimensions must be positive, got %dx%d", c.Page.Width, c.Page.Height)
	}
	if c.SourceFormat != "" {
		switch strings.ToLower(c.SourceFormat) {
		case "swf", "svg":
		default:
			return fmt.Errorf("sourceFormat: must be swf or svg, got %q", c.SourceFormat)
		}
	}
	if c.SVGRenderer != "" {
		switch strings.ToLower(c.SVGRenderer) {
		case "oksvg", "chrome":
		default:
			return fmt.Errorf("svgRenderer: must be oksvg or chrome, got %q", c.SVGRenderer)
		}
	}
	return nil
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if isFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// isFilePath returns true if the string looks like a file path.
func isFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, ~/.config/go-swf2pdf/
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		localPath := name + ext
		if fileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	home, err := os.UserHomeDir()
	if err == nil {
		for _, ext := range extensions {
			homePath := filepath.Join(home, ".config", "go-swf2pdf", name+ext)
			if fileExists(homePath) {
				return homePath, nil
			}
			triedPaths = append(triedPaths, homePath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}

// fileExists returns true if the path exists and is a regular file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
