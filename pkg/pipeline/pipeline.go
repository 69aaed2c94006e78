// Package pipeline provides the export pipeline for tagtile.
//
// This package implements the complete plan → compose → tile → export
// pipeline behind the CLI. Callers describe a run with [Options] and hand it
// to a [Runner].
//
// # Architecture
//
// The pipeline consists of five stages, run strictly in order:
//
//  1. Plan: Factor the page count into the grid closest to square
//  2. Import: Decode the source graphic
//  3. Compose: Scale the graphic onto a white canvas sized to the grid
//  4. Tile: Fill the graphic's hole with nested copies of itself
//  5. Export: Write a multi-page PDF or a cropped PNG
//
// # Usage
//
//	runner := pipeline.NewRunner(logger)
//	opts := pipeline.DefaultOptions()
//	opts.Input, opts.Output = "tag.png", "tag.pdf"
//	opts.Pages = 6
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.Path, result.Pages)
package pipeline

import (
	"image"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/tagtile/pkg/errors"
	"github.com/matzehuels/tagtile/pkg/export"
	"github.com/matzehuels/tagtile/pkg/grid"
	"github.com/matzehuels/tagtile/pkg/tile"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and Library Callers
// =============================================================================

const (
	// DefaultPages is the number of pages the canvas is split into.
	DefaultPages = 4

	// DefaultMinSize is the hole side in pixels at which recursion stops.
	DefaultMinSize = 32

	// DefaultDPI is the raster resolution of every page.
	DefaultDPI = 300

	// DefaultPaper is the page format.
	DefaultPaper = grid.DefaultPaper
)

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for one export run. Start from
// [DefaultOptions]: Pages and DPI must be positive, and a MinSize of zero
// recurses until the hole can no longer be resolved. An empty Paper and a
// zero MaxDepth select DefaultPaper and tile.DefaultMaxDepth.
type Options struct {
	Input  string `json:"input"`
	Output string `json:"output"`

	// Format is "pdf" or "png". Empty selects by the extension of Output.
	Format string `json:"format,omitempty"`

	Pages   int    `json:"pages,omitempty"`
	MinSize int    `json:"min_size,omitempty"`
	DPI     int    `json:"dpi,omitempty"`
	Paper   string `json:"paper,omitempty"`

	// MaxDepth caps the nesting depth of the tiler (default tile.DefaultMaxDepth).
	MaxDepth int `json:"max_depth,omitempty"`

	// TempDir receives the per-page rasters of a PDF export. Empty means the
	// current working directory.
	TempDir   string `json:"temp_dir,omitempty"`
	CleanTemp bool   `json:"clean_temp,omitempty"`
	Verify    bool   `json:"verify,omitempty"` // Re-read the PDF and check its page count

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
	format    export.Format
	page      grid.PageSize
}

// DefaultOptions returns Options populated with the default page count,
// recursion floor, resolution and paper. Input and Output are left empty.
func DefaultOptions() Options {
	return Options{
		Pages:    DefaultPages,
		MinSize:  DefaultMinSize,
		DPI:      DefaultDPI,
		Paper:    DefaultPaper,
		MaxDepth: tile.DefaultMaxDepth,
	}
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Grid is the chosen page arrangement.
	Grid grid.Grid

	// Format is the written format.
	Format export.Format

	// Path is the written file.
	Path string

	// Pages is the page count of a PDF, or 1 for a PNG.
	Pages int

	// CanvasWidth and CanvasHeight are the size of the composed canvas.
	CanvasWidth  int
	CanvasHeight int

	// Tile describes the nested copies drawn into the canvas.
	Tile tile.Stats

	// TempFiles lists the per-page rasters of a PDF export.
	TempFiles []string

	// Bounds is the canvas region written to a PNG.
	Bounds image.Rectangle

	// Stats contains timing information.
	Stats Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	PlanTime    time.Duration
	ImportTime  time.Duration
	ComposeTime time.Duration
	TileTime    time.Duration
	ExportTime  time.Duration
}

// Total returns the summed duration of all stages.
func (s Stats) Total() time.Duration {
	return s.PlanTime + s.ImportTime + s.ComposeTime + s.TileTime + s.ExportTime
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks required fields and applies defaults.
// The output format is resolved here so that an unsupported format fails
// before any file is touched. This method is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.Input == "" {
		return errors.New(errors.ErrCodeInvalidArgument, "input path is required")
	}
	if o.Output == "" {
		return errors.New(errors.ErrCodeInvalidArgument, "output path is required")
	}

	f, err := export.ResolveFormat(false, false, o.Format, o.Output)
	if err != nil {
		return err
	}
	o.format = f
	o.Format = string(f)

	if o.Paper == "" {
		o.Paper = DefaultPaper
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}

	if err := errors.ValidatePageCount(o.Pages); err != nil {
		return err
	}
	if err := errors.ValidateDPI(o.DPI); err != nil {
		return err
	}
	depth, err := tileLimits(o.MinSize, o.MaxDepth)
	if err != nil {
		return err
	}
	o.MaxDepth = depth
	page, err := grid.Paper(o.Paper, o.DPI)
	if err != nil {
		return err
	}
	o.page = page

	o.validated = true
	return nil
}

// tileLimits checks the recursion floor and depth cap of the tiler and
// returns the effective depth cap.
func tileLimits(minSize, maxDepth int) (int, error) {
	if err := errors.ValidateMinSize(minSize); err != nil {
		return 0, err
	}
	switch {
	case maxDepth < 0:
		return 0, errors.New(errors.ErrCodeInvalidArgument, "max depth must not be negative, got %d", maxDepth)
	case maxDepth == 0:
		return tile.DefaultMaxDepth, nil
	}
	return maxDepth, nil
}

// OutputFormat returns the resolved format. It is empty until
// ValidateAndSetDefaults succeeds.
func (o *Options) OutputFormat() export.Format {
	return o.format
}

// PageSize returns the resolved page. It is zero until
// ValidateAndSetDefaults succeeds.
func (o *Options) PageSize() grid.PageSize {
	return o.page
}
