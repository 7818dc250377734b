package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	flag "github.com/spf13/pflag"

	swf2pdf "github.com/alnah/go-swf2pdf"
)

func testEnv() (*Environment, *bytes.Buffer) {
	var stderr bytes.Buffer
	return &Environment{
		Stdout: &bytes.Buffer{},
		Stderr: &stderr,
		Getenv: func(string) string { return "" },
		Getwd:  os.Getwd,
	}, &stderr
}

func mustParse(t *testing.T, args ...string) (*cliFlags, *flag.FlagSet) {
	t.Helper()
	flags, fs, err := parseFlags(append([]string{"swf2pdf"}, args...))
	if err != nil {
		t.Fatalf("parseFlags(%v) error = %v", args, err)
	}
	return flags, fs
}

func TestResolveParams(t *testing.T) {
	t.Run("built-in defaults", func(t *testing.T) {
		env, _ := testEnv()
		flags, fs := mustParse(t)

		p, err := resolveParams(flags, fs, env)
		if err != nil {
			t.Fatalf("resolveParams() error = %v", err)
		}
		if p.input.Page != swf2pdf.DefaultPageSize() {
			t.Errorf("Page = %+v, want defaults", p.input.Page)
		}
		if p.input.ImageFormat != swf2pdf.DefaultImageFormat {
			t.Errorf("ImageFormat = %q, want png", p.input.ImageFormat)
		}
		if p.input.SourceFormat != "" {
			t.Errorf("SourceFormat = %q, want empty (library default applies)", p.input.SourceFormat)
		}
		if p.input.Background != nil {
			t.Errorf("Background = %v, want nil (library default applies)", p.input.Background)
		}
	})

	t.Run("single size flag keeps the other dimension's default", func(t *testing.T) {
		env, _ := testEnv()
		flags, fs := mustParse(t, "--x_size", "1190")

		p, err := resolveParams(flags, fs, env)
		if err != nil {
			t.Fatalf("resolveParams() error = %v", err)
		}
		if p.input.Page.Width != 1190 || p.input.Page.Height != swf2pdf.DefaultPageHeight {
			t.Errorf("Page = %+v, want 1190x%d", p.input.Page, swf2pdf.DefaultPageHeight)
		}
	})

	t.Run("flags win over config", func(t *testing.T) {
		dir := t.TempDir()
		cfgPath := filepath.Join(dir, "cfg.yaml")
		content := "mode: 1\npage:\n  width: 100\n  height: 200\nsourceFormat: \"swf\"\n"
		if err := os.WriteFile(cfgPath, []byte(content), 0o600); err != nil {
			t.Fatalf("setup: %v", err)
		}

		env, _ := testEnv()
		flags, fs := mustParse(t, "--config", cfgPath, "--mode", "2", "--x_size", "640")

		p, err := resolveParams(flags, fs, env)
		if err != nil {
			t.Fatalf("resolveParams() error = %v", err)
		}
		if p.input.Mode != swf2pdf.ModePDF {
			t.Errorf("Mode = %d, want 2 (flag wins)", p.input.Mode)
		}
		if p.input.Page.Width != 640 {
			t.Errorf("Width = %d, want 640 (flag wins)", p.input.Page.Width)
		}
		if p.input.Page.Height != 200 {
			t.Errorf("Height = %d, want 200 (config fills unset flag)", p.input.Page.Height)
		}
		if p.input.SourceFormat != "swf" {
			t.Errorf("SourceFormat = %q, want swf from config", p.input.SourceFormat)
		}
	})

	t.Run("invalid source format warns and falls back", func(t *testing.T) {
		env, stderr := testEnv()
		flags, fs := mustParse(t, "--source_format", "gif")

		p, err := resolveParams(flags, fs, env)
		if err != nil {
			t.Fatalf("resolveParams() error = %v", err)
		}
		if p.input.SourceFormat != swf2pdf.DefaultSourceFormat {
			t.Errorf("SourceFormat = %q, want fallback %q", p.input.SourceFormat, swf2pdf.DefaultSourceFormat)
		}
		if !strings.Contains(stderr.String(), "Only swf or svg is supported") {
			t.Errorf("stderr missing warning:\n%s", stderr.String())
		}
	})

	t.Run("image format is pinned to png with a notice", func(t *testing.T) {
		env, stderr := testEnv()
		flags, fs := mustParse(t, "--image_format", "jpeg")

		p, err := resolveParams(flags, fs, env)
		if err != nil {
			t.Fatalf("resolveParams() error = %v", err)
		}
		if p.input.ImageFormat != "png" {
			t.Errorf("ImageFormat = %q, want png", p.input.ImageFormat)
		}
		if !strings.Contains(stderr.String(), "image format is reset to png") {
			t.Errorf("stderr missing notice:\n%s", stderr.String())
		}
	})

	t.Run("invalid background color is an error", func(t *testing.T) {
		env, _ := testEnv()
		flags, fs := mustParse(t, "--background_color", "red.green.blue")

		_, err := resolveParams(flags, fs, env)
		if !errors.Is(err, swf2pdf.ErrInvalidBackground) {
			t.Errorf("error = %v, want ErrInvalidBackground", err)
		}
	})

	t.Run("valid background color parses", func(t *testing.T) {
		env, _ := testEnv()
		flags, fs := mustParse(t, "--background_color", "10.20.30")

		p, err := resolveParams(flags, fs, env)
		if err != nil {
			t.Fatalf("resolveParams() error = %v", err)
		}
		if p.input.Background == nil || *p.input.Background != (swf2pdf.Background{R: 10, G: 20, B: 30}) {
			t.Errorf("Background = %v, want 10.20.30", p.input.Background)
		}
	})

	t.Run("environment overrides config but not flags", func(t *testing.T) {
		env, _ := testEnv()
		env.Getenv = func(key string) string {
			if key == envRendererBin {
				return "/env/swfrender"
			}
			return ""
		}

		flags, fs := mustParse(t)
		p, err := resolveParams(flags, fs, env)
		if err != nil {
			t.Fatalf("resolveParams() error = %v", err)
		}
		if p.rendererBin != "/env/swfrender" {
			t.Errorf("rendererBin = %q, want env value", p.rendererBin)
		}

		flags, fs = mustParse(t, "--renderer-bin", "/flag/swfrender")
		p, err = resolveParams(flags, fs, env)
		if err != nil {
			t.Fatalf("resolveParams() error = %v", err)
		}
		if p.rendererBin != "/flag/swfrender" {
			t.Errorf("rendererBin = %q, want flag value", p.rendererBin)
		}
	})

	t.Run("missing config file is an error", func(t *testing.T) {
		env, _ := testEnv()
		flags, fs := mustParse(t, "--config", filepath.Join(t.TempDir(), "nope.yaml"))

		if _, err := resolveParams(flags, fs, env); err == nil {
			t.Error("resolveParams() error = nil, want config error")
		}
	})
}
