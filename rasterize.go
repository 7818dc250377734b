package swf2pdf

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os/exec"
	"strconv"
	"strings"
)

// CommandRunner abstracts command execution to enable testing without real
// subprocesses.
type CommandRunner interface {
	Run(name string, args ...string) (stdout string, stderr string, err error)
}

// ExecRunner implements CommandRunner using os/exec.
type ExecRunner struct{}

func (r *ExecRunner) Run(name string, args ...string) (string, string, error) {
	cmd := exec.Command(name, args...)

	var stdout bytes.Buffer
	cmd.Stdout = &stdout

	stderrPipe, err := cmd.StderrPipe()
	if err != nil {
		return "", "", fmt.Errorf("creating stderr pipe: %w", err)
	}

	if err := cmd.Start(); err != nil {
		return "", "", fmt.Errorf("starting command: %w", err)
	}

	stderrContent, err := io.ReadAll(stderrPipe)
	if err != nil {
		return "", "", fmt.Errorf("reading stderr: %w", err)
	}

	err = cmd.Wait()
	return stdout.String(), string(stderrContent), err
}

// defaultRendererBin is the swftools rasterizer looked up on PATH.
const defaultRendererBin = "swfrender"

// swfRasterizer converts one SWF file by invoking the external swfrender
// binary, which writes the output file itself. Exit code 0 means success.
type swfRasterizer struct {
	runner CommandRunner
	bin    string
}

func newSWFRasterizer(runner CommandRunner, bin string) *swfRasterizer {
	if bin == "" {
		bin = defaultRendererBin
	}
	return &swfRasterizer{runner: runner, bin: bin}
}

// Rasterize renders src to an opaque raster file at outPath with explicit
// width and height flags. A non-zero exit status is reported as ErrRender;
// the caller treats it as a single-item failure.
func (r *swfRasterizer) Rasterize(ctx context.Context, src Source, outPath string, size PageSize) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	_, stderr, err := r.runner.Run(r.bin, src.Path,
		"-X", strconv.Itoa(size.Width),
		"-Y", strconv.Itoa(size.Height),
		"-o", outPath)
	if err != nil {
		msg := strings.TrimSpace(stderr)
		if msg != "" {
			return fmt.Errorf("%w: %s: %v", ErrRender, msg, err)
		}
		return fmt.Errorf("%w: %v", ErrRender, err)
	}
	return nil
}
