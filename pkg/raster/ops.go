package raster

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	xdraw "golang.org/x/image/draw"
)

// White is the opaque background of every canvas.
var White = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}

// NewCanvas allocates an opaque white raster of the given size.
func NewCanvas(width, height int) *image.NRGBA {
	return imaging.New(width, height, White)
}

// Resize returns a nearest-neighbor resampled copy of src. The copy's bounds
// start at the origin.
func Resize(src image.Image, width, height int) *image.NRGBA {
	return imaging.Resize(src, width, height, imaging.NearestNeighbor)
}

// Paste copies src onto dst with its top-left corner at pt, replacing the
// destination pixels. Parts of src outside dst are clipped.
func Paste(dst *image.NRGBA, src image.Image, pt image.Point) {
	sb := src.Bounds()
	r := image.Rectangle{Min: pt, Max: pt.Add(sb.Size())}
	xdraw.Draw(dst, r, src, sb.Min, xdraw.Src)
}

// Crop returns a copy of the region r of img.
func Crop(img image.Image, r image.Rectangle) *image.NRGBA {
	return imaging.Crop(img, r)
}
