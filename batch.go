package swf2pdf

import (
	"context"
	"fmt"
	"time"

	"github.com/alnah/go-swf2pdf/internal/fileutil"
)

// ItemResult records the outcome of one conversion attempt.
type ItemResult struct {
	Stem    string
	Output  string // derived output filename
	Err     error  // nil on success
	Elapsed time.Duration
}

// BatchResult aggregates one image-generation run. It is returned to the
// caller for observability and is never persisted.
type BatchResult struct {
	Items []ItemResult
}

// Failed returns how many items did not convert.
func (b *BatchResult) Failed() int {
	n := 0
	for _, item := range b.Items {
		if item.Err != nil {
			n++
		}
	}
	return n
}

// GenerateImages converts every source file matching in.SourceFormat under
// in.Dir into a sibling raster, sequentially in sorted order. Each item gets
// a progress line with 1-based position, total, output name, item seconds
// and cumulative minutes. A failing item is logged and counted but does not
// abort the batch.
func (s *Service) GenerateImages(ctx context.Context, in Input) (*BatchResult, error) {
	s.normalize(&in)
	start := time.Now()
	fmt.Fprintf(s.progress, "\n* Generating images *\n")

	sources, err := Collect(in.Dir, in.SourceFormat)
	if err != nil {
		return nil, err
	}
	if len(sources) == 0 {
		fmt.Fprintf(s.progress, "No %s files were found.\n", in.SourceFormat)
		return &BatchResult{}, nil
	}

	result := &BatchResult{Items: make([]ItemResult, 0, len(sources))}
	for i, src := range sources {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		itemStart := time.Now()
		outName := src.Stem + "." + in.ImageFormat
		convErr := s.rasterize(ctx, src, fileutil.SiblingWithExt(src.Path, in.ImageFormat), in)
		elapsed := time.Since(itemStart)

		result.Items = append(result.Items, ItemResult{
			Stem:    src.Stem,
			Output:  outName,
			Err:     convErr,
			Elapsed: elapsed,
		})

		verb := "created"
		if convErr != nil {
			verb = "could not be created"
			fmt.Fprintln(s.progress, convErr)
		}
		fmt.Fprintf(s.progress, "%04d/%04d: %s %s. %03.1fs %6dm\n",
			i+1, len(sources), outName, verb,
			elapsed.Seconds(), int(time.Since(start).Minutes()))
	}
	return result, nil
}

// rasterize converts one source file according to its format.
func (s *Service) rasterize(ctx context.Context, src Source, outPath string, in Input) error {
	switch in.SourceFormat {
	case SourceSWF:
		return s.swf.Rasterize(ctx, src, outPath, in.Page)
	case SourceSVG:
		img, err := s.svg.Rasterize(ctx, src.Path, in.Page.Width, in.Page.Height)
		if err != nil {
			return err
		}
		return writePNG(outPath, Flatten(img, *in.Background))
	default:
		return fmt.Errorf("%w: %q", ErrUnknownSourceFormat, in.SourceFormat)
	}
}
