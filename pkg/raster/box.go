package raster

import (
	"fmt"
	"image"

	"github.com/matzehuels/tagtile/pkg/errors"
)

// Box is a square region (X0,Y0)-(X1,Y1) with exclusive upper bounds.
type Box struct {
	X0, Y0, X1, Y1 int
}

// Side returns the edge length of the box.
func (b Box) Side() int { return b.X1 - b.X0 }

// Min returns the top-left corner.
func (b Box) Min() image.Point { return image.Pt(b.X0, b.Y0) }

// Rect converts the box to an image.Rectangle.
func (b Box) Rect() image.Rectangle { return image.Rect(b.X0, b.Y0, b.X1, b.Y1) }

func (b Box) String() string {
	return fmt.Sprintf("(%d,%d,%d,%d)", b.X0, b.Y0, b.X1, b.Y1)
}

// FindHole locates the transparent square of img. Every pixel whose alpha is
// below 0xff counts as transparent. The box is centered on the midpoint of
// the transparent extent, and its side is the smaller of the two extents
// rounded down to an even number.
//
// FindHole returns a NO_TRANSPARENT_REGION error when img is fully opaque.
func FindHole(img *image.NRGBA) (Box, error) {
	b := img.Bounds()
	minX, minY := b.Max.X, b.Max.Y
	maxX, maxY := b.Min.X-1, b.Min.Y-1

	for y := b.Min.Y; y < b.Max.Y; y++ {
		off := img.PixOffset(b.Min.X, y)
		row := img.Pix[off : off+4*b.Dx()]
		for i := 3; i < len(row); i += 4 {
			if row[i] == 0xff {
				continue
			}
			x := b.Min.X + i/4
			if x < minX {
				minX = x
			}
			if x > maxX {
				maxX = x
			}
			if y < minY {
				minY = y
			}
			maxY = y
		}
	}

	if maxX < minX {
		return Box{}, errors.New(errors.ErrCodeNoTransparentRegion,
			"no transparent area found in %dx%d raster", b.Dx(), b.Dy())
	}

	side := min(maxX-minX, maxY-minY)
	cx, cy := (minX+maxX)/2, (minY+maxY)/2
	half := side / 2
	return Box{X0: cx - half, Y0: cy - half, X1: cx + half, Y1: cy + half}, nil
}

// NonWhiteBounds returns the tight bounding box of every pixel whose red,
// green or blue channel is below 0xff. Alpha is ignored. The second result
// is false when the raster is entirely white.
func NonWhiteBounds(img *image.NRGBA) (image.Rectangle, bool) {
	b := img.Bounds()
	minX, minY := b.Max.X, b.Max.Y
	maxX, maxY := b.Min.X-1, b.Min.Y-1

	for y := b.Min.Y; y < b.Max.Y; y++ {
		off := img.PixOffset(b.Min.X, y)
		row := img.Pix[off : off+4*b.Dx()]
		for i := 0; i < len(row); i += 4 {
			if row[i] == 0xff && row[i+1] == 0xff && row[i+2] == 0xff {
				continue
			}
			x := b.Min.X + i/4
			if x < minX {
				minX = x
			}
			if x > maxX {
				maxX = x
			}
			if y < minY {
				minY = y
			}
			maxY = y
		}
	}

	if maxX < minX {
		return image.Rectangle{}, false
	}
	return image.Rect(minX, minY, maxX+1, maxY+1), true
}
