// Package canvas composes the source graphic onto the full print canvas.
//
// The canvas covers every page of a [grid.Grid]. The source is scaled by a
// single factor so that its longer side matches the canvas's shorter side,
// which keeps the graphic square-ish on a non-square canvas and leaves white
// margins on the longer axis. Scaling is nearest-neighbor.
package canvas

import (
	"image"

	"github.com/matzehuels/tagtile/pkg/errors"
	"github.com/matzehuels/tagtile/pkg/grid"
	"github.com/matzehuels/tagtile/pkg/raster"
)

// Scale returns the uniform factor that fits a w×h source inside the
// shorter side of a targetW×targetH canvas.
func Scale(w, h, targetW, targetH int) float64 {
	return float64(min(targetW, targetH)) / float64(max(w, h))
}

// Compose returns a new opaque white canvas sized to g with src scaled and
// centered on it. Pixels are replaced, not blended, so the source's hole
// stays transparent on the canvas.
func Compose(src *image.NRGBA, g grid.Grid) (*image.NRGBA, error) {
	sw, sh := src.Bounds().Dx(), src.Bounds().Dy()
	if sw == 0 || sh == 0 {
		return nil, errors.New(errors.ErrCodeInvalidArgument, "source image is empty")
	}

	tw, th := g.CanvasSize()
	scale := Scale(sw, sh, tw, th)
	nw, nh := int(float64(sw)*scale), int(float64(sh)*scale)
	if nw < 1 || nh < 1 {
		return nil, errors.New(errors.ErrCodeInvalidArgument,
			"source %dx%d scales to an empty %dx%d image on a %dx%d canvas", sw, sh, nw, nh, tw, th)
	}

	resized := raster.Resize(src, nw, nh)
	out := raster.NewCanvas(tw, th)
	raster.Paste(out, resized, image.Pt((tw-nw)/2, (th-nh)/2))
	return out, nil
}
