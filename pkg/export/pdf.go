package export

import (
	"context"
	"fmt"
	"image"
	"os"
	"path/filepath"

	"codeberg.org/go-pdf/fpdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/matzehuels/tagtile/pkg/errors"
	"github.com/matzehuels/tagtile/pkg/grid"
	tio "github.com/matzehuels/tagtile/pkg/io"
	"github.com/matzehuels/tagtile/pkg/observability"
)

// PDFOption configures PDF rendering.
type PDFOption func(*pdfRenderer)

type pdfRenderer struct {
	tempDir string
	cleanup bool
	verify  bool
}

// WithTempDir sets the directory for the per-page rasters (default: the
// current working directory).
func WithTempDir(dir string) PDFOption {
	return func(r *pdfRenderer) { r.tempDir = dir }
}

// WithCleanup removes the per-page rasters once the document is written.
func WithCleanup() PDFOption {
	return func(r *pdfRenderer) { r.cleanup = true }
}

// WithVerify re-reads the written document and checks its page count.
func WithVerify() PDFOption {
	return func(r *pdfRenderer) { r.verify = true }
}

// PDFResult describes a written document.
type PDFResult struct {
	Path  string
	Pages int
	// TempFiles lists the per-page rasters, row-major. They no longer exist
	// when WithCleanup was given.
	TempFiles []string
}

// PagePath returns the file name of the raster for page (row, col).
func PagePath(dir string, row, col int) string {
	return filepath.Join(dir, fmt.Sprintf("temp_part_%d_%d.png", row, col))
}

// RenderPDF slices canvas along g and writes one page per slice to path.
// The canvas must be exactly g.CanvasSize().
func RenderPDF(ctx context.Context, canvas *image.NRGBA, g grid.Grid, path string, opts ...PDFOption) (PDFResult, error) {
	r := pdfRenderer{}
	for _, opt := range opts {
		opt(&r)
	}

	res := PDFResult{Path: path}
	w, h := g.CanvasSize()
	if b := canvas.Bounds(); b.Dx() != w || b.Dy() != h {
		return res, errors.New(errors.ErrCodeInvalidArgument,
			"canvas is %dx%d, grid %dx%d needs %dx%d", b.Dx(), b.Dy(), g.Cols, g.Rows, w, h)
	}

	if r.cleanup {
		defer func() {
			for _, f := range res.TempFiles {
				os.Remove(f)
			}
		}()
	}

	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           fpdf.SizeType{Wd: g.Page.WidthPt, Ht: g.Page.HeightPt},
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetCreator("tagtile", false)

	for row := 0; row < g.Rows; row++ {
		for col := 0; col < g.Cols; col++ {
			if err := ctx.Err(); err != nil {
				return res, err
			}

			part := PagePath(r.tempDir, row, col)
			page := canvas.SubImage(g.PageRect(row, col))
			if err := tio.ExportPNG(page, part, g.Page.DPI); err != nil {
				return res, fmt.Errorf("page %d,%d: %w", row, col, err)
			}
			res.TempFiles = append(res.TempFiles, part)
			observability.Export().OnPageWritten(ctx, row, col, part)

			pdf.AddPage()
			pdf.ImageOptions(part, 0, 0, g.Page.WidthPt, g.Page.HeightPt, false,
				fpdf.ImageOptions{ImageType: "PNG"}, 0, "")
		}
	}

	if err := pdf.OutputFileAndClose(path); err != nil {
		return res, errors.Wrap(errors.ErrCodeIO, err, "write %s", path)
	}
	res.Pages = g.Pages()

	if r.verify {
		n, err := PageCount(path)
		if err != nil {
			return res, err
		}
		if n != g.Pages() {
			return res, errors.New(errors.ErrCodeInternal,
				"%s has %d pages, want %d", path, n, g.Pages())
		}
		res.Pages = n
	}

	observability.Export().OnArtifactWritten(ctx, string(FormatPDF), path, res.Pages)
	return res, nil
}

// PageCount returns the number of pages of the PDF at path.
func PageCount(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, errors.Wrap(errors.ErrCodeIO, err, "open %s", path)
	}
	defer f.Close()

	pctx, err := api.ReadValidateAndOptimize(f, model.NewDefaultConfiguration())
	if err != nil {
		return 0, errors.Wrap(errors.ErrCodeIO, err, "read %s", path)
	}
	if err := pctx.EnsurePageCount(); err != nil {
		return 0, errors.Wrap(errors.ErrCodeIO, err, "count pages of %s", path)
	}
	return pctx.PageCount, nil
}
