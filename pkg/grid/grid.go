package grid

import (
	"image"

	"github.com/matzehuels/tagtile/pkg/errors"
)

// Grid is a cols×rows arrangement of identical pages.
type Grid struct {
	Cols int
	Rows int
	Page PageSize
}

// Plan chooses the factorization of pageCount into cols×rows that minimizes
// the skew between total width and total height. Divisor pairs are tried in
// ascending column order and ties keep the earlier pair.
func Plan(pageCount int, page PageSize) (Grid, error) {
	candidates, err := Candidates(pageCount, page)
	if err != nil {
		return Grid{}, err
	}
	best := candidates[0]
	for _, c := range candidates[1:] {
		if c.Skew() < best.Skew() {
			best = c
		}
	}
	return best, nil
}

// Candidates returns every cols×rows factorization of pageCount in ascending
// column order.
func Candidates(pageCount int, page PageSize) ([]Grid, error) {
	if err := errors.ValidatePageCount(pageCount); err != nil {
		return nil, err
	}
	var out []Grid
	for cols := 1; cols <= pageCount; cols++ {
		if pageCount%cols != 0 {
			continue
		}
		out = append(out, Grid{Cols: cols, Rows: pageCount / cols, Page: page})
	}
	return out, nil
}

// Skew is the absolute difference between total width and total height in
// pixels. Zero means the layout is exactly square.
func (g Grid) Skew() int {
	w, h := g.CanvasSize()
	if w < h {
		return h - w
	}
	return w - h
}

// Pages returns the number of pages in the grid.
func (g Grid) Pages() int { return g.Cols * g.Rows }

// CanvasSize returns the pixel size of the full composed canvas.
func (g Grid) CanvasSize() (width, height int) {
	return g.Cols * g.Page.Width, g.Rows * g.Page.Height
}

// PageRect returns the canvas region printed on the page at (row, col).
func (g Grid) PageRect(row, col int) image.Rectangle {
	x0, y0 := col*g.Page.Width, row*g.Page.Height
	return image.Rect(x0, y0, x0+g.Page.Width, y0+g.Page.Height)
}
