package tile

import (
	"image"

	"github.com/matzehuels/tagtile/pkg/errors"
	"github.com/matzehuels/tagtile/pkg/raster"
)

// DefaultMaxDepth caps the nesting depth. Sixty-four halvings exceed any
// raster that fits in memory.
const DefaultMaxDepth = 64

// Option configures a Tiler.
type Option func(*Tiler)

// WithMaxDepth caps the number of nested copies.
func WithMaxDepth(n int) Option {
	return func(t *Tiler) { t.maxDepth = n }
}

// WithLevelHook registers fn to be called once per nested copy, outermost
// first, with the nesting depth (1 for the copy pasted into the base) and
// the copy's side length.
func WithLevelHook(fn func(depth, side int)) Option {
	return func(t *Tiler) { t.onLevel = fn }
}

// Stats describes one Draw call.
type Stats struct {
	// Levels is the number of nested copies pasted.
	Levels int
	// Sides holds the side length of each pasted copy, outermost first.
	Sides []int
}

// Tiler embeds a source graphic into its own hole.
type Tiler struct {
	src      *image.NRGBA
	minSize  int
	maxDepth int
	onLevel  func(depth, side int)
}

// New creates a Tiler that recurses until the hole side is at most minSize.
// The source is never modified.
func New(src *image.NRGBA, minSize int, opts ...Option) *Tiler {
	t := &Tiler{src: src, minSize: minSize, maxDepth: DefaultMaxDepth}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Draw fills the hole of base with nested copies of the source, modifying
// base in place. It fails with NO_TRANSPARENT_REGION when base has no hole.
func (t *Tiler) Draw(base *image.NRGBA) (Stats, error) {
	var st Stats
	box, err := raster.FindHole(base)
	if err != nil {
		return st, err
	}
	err = t.fill(base, box, 0, &st)
	return st, err
}

// fill pastes a copy of the source into box of base, first recursing into
// the copy's own hole.
func (t *Tiler) fill(base *image.NRGBA, box raster.Box, depth int, st *Stats) error {
	side := box.Side()
	if side <= t.minSize || side < 1 || depth >= t.maxDepth {
		return nil
	}

	small := raster.Resize(t.src, side, side)
	st.Levels++
	st.Sides = append(st.Sides, side)
	if t.onLevel != nil {
		t.onLevel(depth+1, side)
	}

	inner, err := raster.FindHole(small)
	switch {
	case err == nil:
		if err := t.fill(small, inner, depth+1, st); err != nil {
			return err
		}
	case errors.Is(err, errors.ErrCodeNoTransparentRegion):
		// The hole vanished at this scale; paste the copy as it is.
	default:
		return err
	}

	raster.Paste(base, small, box.Min())
	return nil
}
