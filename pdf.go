package swf2pdf

import (
	"context"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"
)

// Document wraps the in-memory PDF being assembled. It is built entirely in
// memory; Export performs the single disk write.
type Document struct {
	pdf   *fpdf.Fpdf
	pages int
}

// PageCount returns the number of pages added so far.
func (d *Document) PageCount() int { return d.pages }

// PageSize returns the page dimensions in points.
func (d *Document) PageSize() (width, height float64) {
	w, h := d.pdf.GetPageSize()
	return w, h
}

// Export writes the document to path.
func (d *Document) Export(path string) error {
	if err := d.pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("%w: %v", ErrExportPDF, err)
	}
	return nil
}

// BuildPDF collects every raster matching in.ImageFormat under in.Dir, in
// the same order stage 1 produced them, and appends one page per image. The
// page size is in.Page in point units, equal to the raster's pixel
// dimensions, and the image is placed at the origin so it fills the page
// with no margin and no scaling.
//
// Returns (nil, nil) when no images exist; exporting a nil document is the
// caller's no-op.
func (s *Service) BuildPDF(ctx context.Context, in Input) (*Document, error) {
	s.normalize(&in)
	start := time.Now()
	fmt.Fprintf(s.progress, "\n* Generating pdf from images *\n")

	images, err := Collect(in.Dir, in.ImageFormat)
	if err != nil {
		return nil, err
	}
	if len(images) == 0 {
		fmt.Fprintln(s.progress, "No images were found.")
		return nil, nil
	}

	pdf := fpdf.NewCustom(&fpdf.InitType{
		UnitStr: "pt",
		Size: fpdf.SizeType{
			Wd: float64(in.Page.Width),
			Ht: float64(in.Page.Height),
		},
	})
	doc := &Document{pdf: pdf}

	for i, img := range images {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		itemStart := time.Now()
		pdf.AddPage()
		pdf.ImageOptions(img.Path, 0, 0,
			float64(in.Page.Width), float64(in.Page.Height),
			false, fpdf.ImageOptions{ImageType: in.ImageFormat}, 0, "")
		doc.pages++

		fmt.Fprintf(s.progress, "%d/%d: %s.%s %.1fs %dm\n",
			i+1, len(images), img.Stem, in.ImageFormat,
			time.Since(itemStart).Seconds(), int(time.Since(start).Minutes()))
	}

	if err := pdf.Error(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBuildPDF, err)
	}
	return doc, nil
}
