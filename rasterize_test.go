package swf2pdf

import (
	"context"
	"errors"
	"strings"
	"testing"
)

// fakeRunner records invocations and returns canned results.
type fakeRunner struct {
	calls   [][]string
	stderr  string
	err     error
	onRun   func(name string, args []string)
	perCall map[string]error // keyed by input path (first arg), overrides err
}

func (r *fakeRunner) Run(name string, args ...string) (string, string, error) {
	r.calls = append(r.calls, append([]string{name}, args...))
	if r.onRun != nil {
		r.onRun(name, args)
	}
	if r.perCall != nil && len(args) > 0 {
		if err, ok := r.perCall[args[0]]; ok {
			return "", r.stderr, err
		}
		return "", "", nil
	}
	return "", r.stderr, r.err
}

func TestSWFRasterizer(t *testing.T) {
	t.Run("invokes renderer with size and output flags", func(t *testing.T) {
		runner := &fakeRunner{}
		r := newSWFRasterizer(runner, "")

		src := Source{Path: "frame1.swf", Stem: "frame1"}
		err := r.Rasterize(context.Background(), src, "frame1.png", PageSize{Width: 2480, Height: 3508})
		if err != nil {
			t.Fatalf("Rasterize() error = %v", err)
		}

		if len(runner.calls) != 1 {
			t.Fatalf("calls = %d, want 1", len(runner.calls))
		}
		want := []string{"swfrender", "frame1.swf", "-X", "2480", "-Y", "3508", "-o", "frame1.png"}
		got := runner.calls[0]
		if len(got) != len(want) {
			t.Fatalf("args = %v, want %v", got, want)
		}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("args[%d] = %q, want %q", i, got[i], want[i])
			}
		}
	})

	t.Run("custom binary path", func(t *testing.T) {
		runner := &fakeRunner{}
		r := newSWFRasterizer(runner, "/opt/swftools/swfrender")

		_ = r.Rasterize(context.Background(), Source{Path: "a.swf"}, "a.png", PageSize{1, 1})
		if runner.calls[0][0] != "/opt/swftools/swfrender" {
			t.Errorf("binary = %q, want custom path", runner.calls[0][0])
		}
	})

	t.Run("non-zero exit maps to ErrRender with stderr", func(t *testing.T) {
		runner := &fakeRunner{stderr: "broken tag\n", err: errors.New("exit status 1")}
		r := newSWFRasterizer(runner, "")

		err := r.Rasterize(context.Background(), Source{Path: "bad.swf"}, "bad.png", PageSize{10, 10})
		if !errors.Is(err, ErrRender) {
			t.Fatalf("error = %v, want ErrRender", err)
		}
		if !strings.Contains(err.Error(), "broken tag") {
			t.Errorf("error %q does not include renderer stderr", err)
		}
	})

	t.Run("cancelled context stops before invoking", func(t *testing.T) {
		runner := &fakeRunner{}
		r := newSWFRasterizer(runner, "")

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		err := r.Rasterize(ctx, Source{Path: "a.swf"}, "a.png", PageSize{1, 1})
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("error = %v, want context.Canceled", err)
		}
		if len(runner.calls) != 0 {
			t.Errorf("calls = %d, want 0", len(runner.calls))
		}
	})
}
