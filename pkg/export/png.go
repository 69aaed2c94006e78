package export

import (
	"context"
	"image"

	tio "github.com/matzehuels/tagtile/pkg/io"
	"github.com/matzehuels/tagtile/pkg/observability"
	"github.com/matzehuels/tagtile/pkg/raster"
)

// PNGResult describes a written PNG.
type PNGResult struct {
	Path string
	// Bounds is the written region in canvas coordinates.
	Bounds image.Rectangle
}

// RenderPNG crops canvas to its non-white content and writes it to path with
// dpi embedded. An entirely white canvas is written uncropped.
func RenderPNG(ctx context.Context, canvas *image.NRGBA, path string, dpi int) (PNGResult, error) {
	out, bounds := canvas, canvas.Bounds()
	if r, ok := raster.NonWhiteBounds(canvas); ok {
		out, bounds = raster.Crop(canvas, r), r
	}

	if err := tio.ExportPNG(out, path, dpi); err != nil {
		return PNGResult{}, err
	}
	observability.Export().OnArtifactWritten(ctx, string(FormatPNG), path, 1)
	return PNGResult{Path: path, Bounds: bounds}, nil
}
