package pipeline

import (
	"context"
	"fmt"
	"image"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/tagtile/pkg/canvas"
	"github.com/matzehuels/tagtile/pkg/errors"
	"github.com/matzehuels/tagtile/pkg/export"
	"github.com/matzehuels/tagtile/pkg/grid"
	tio "github.com/matzehuels/tagtile/pkg/io"
	"github.com/matzehuels/tagtile/pkg/observability"
	"github.com/matzehuels/tagtile/pkg/tile"
)

// Runner encapsulates pipeline execution.
//
// The Runner is stateless except for the logger; it doesn't store results.
// Multiple goroutines can safely use the same Runner with different options.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner. If logger is nil, log.Default() is used.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// Execute runs the complete plan → import → compose → tile → export pipeline.
// The context is checked between stages and between exported pages.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	logger := opts.Logger

	result := &Result{Format: opts.OutputFormat()}

	// Stage 1: Plan
	var err error
	result.Stats.PlanTime, err = r.stage(ctx, observability.StagePlan, func() error {
		result.Grid, err = grid.Plan(opts.Pages, opts.PageSize())
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("plan: %w", err)
	}
	result.CanvasWidth, result.CanvasHeight = result.Grid.CanvasSize()
	logger.Info("planned page grid",
		"cols", result.Grid.Cols,
		"rows", result.Grid.Rows,
		"paper", result.Grid.Page.Name,
		"canvas", fmt.Sprintf("%dx%d", result.CanvasWidth, result.CanvasHeight))

	// Stage 2: Import
	var src *image.NRGBA
	result.Stats.ImportTime, err = r.stage(ctx, observability.StageImport, func() error {
		src, err = tio.ImportImage(opts.Input)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("import: %w", err)
	}
	logger.Debug("imported source",
		"path", opts.Input,
		"size", fmt.Sprintf("%dx%d", src.Bounds().Dx(), src.Bounds().Dy()),
		"duration", result.Stats.ImportTime)

	// Stage 3: Compose
	var base *image.NRGBA
	result.Stats.ComposeTime, err = r.stage(ctx, observability.StageCompose, func() error {
		base, err = canvas.Compose(src, result.Grid)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("compose: %w", err)
	}
	logger.Debug("composed canvas", "duration", result.Stats.ComposeTime)

	// Stage 4: Tile
	result.Stats.TileTime, err = r.stage(ctx, observability.StageTile, func() error {
		result.Tile, err = r.Tile(ctx, src, base, opts)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("tile: %w", err)
	}
	logger.Info("tiled canvas",
		"levels", result.Tile.Levels,
		"duration", result.Stats.TileTime)

	// Stage 5: Export
	result.Stats.ExportTime, err = r.stage(ctx, observability.StageExport, func() error {
		return r.export(ctx, base, opts, result)
	})
	if err != nil {
		return nil, fmt.Errorf("export: %w", err)
	}
	logger.Info("exported output",
		"format", result.Format,
		"path", result.Path,
		"pages", result.Pages,
		"duration", result.Stats.ExportTime)

	return result, nil
}

// Tile draws nested copies of src into the hole of base. Only MinSize,
// MaxDepth and Logger of opts are consulted, so opts need not have been
// validated.
func (r *Runner) Tile(ctx context.Context, src, base *image.NRGBA, opts Options) (tile.Stats, error) {
	r.applyLogger(&opts)
	depth, err := tileLimits(opts.MinSize, opts.MaxDepth)
	if err != nil {
		return tile.Stats{}, err
	}
	hooks := observability.Pipeline()
	t := tile.New(src, opts.MinSize,
		tile.WithMaxDepth(depth),
		tile.WithLevelHook(func(depth, side int) {
			opts.Logger.Debug("nested copy", "depth", depth, "side", side)
			hooks.OnTileLevel(ctx, depth, side)
		}))
	return t.Draw(base)
}

// export writes base in the format resolved by ValidateAndSetDefaults and
// records the artifact on res.
func (r *Runner) export(ctx context.Context, base *image.NRGBA, opts Options, res *Result) error {
	switch opts.OutputFormat() {
	case export.FormatPDF:
		pdfOpts := []export.PDFOption{export.WithTempDir(opts.TempDir)}
		if opts.CleanTemp {
			pdfOpts = append(pdfOpts, export.WithCleanup())
		}
		if opts.Verify {
			pdfOpts = append(pdfOpts, export.WithVerify())
		}
		out, err := export.RenderPDF(ctx, base, res.Grid, opts.Output, pdfOpts...)
		if err != nil {
			return err
		}
		res.Path, res.Pages, res.TempFiles = out.Path, out.Pages, out.TempFiles
		res.Bounds = base.Bounds()
	case export.FormatPNG:
		out, err := export.RenderPNG(ctx, base, opts.Output, opts.DPI)
		if err != nil {
			return err
		}
		res.Path, res.Pages, res.Bounds = out.Path, 1, out.Bounds
	default:
		return errors.New(errors.ErrCodeInternal, "output format not resolved for %s", opts.Output)
	}
	return nil
}

// stage runs fn as the named pipeline stage, reporting it to the registered
// hooks. It returns without running fn when ctx is already done.
func (r *Runner) stage(ctx context.Context, name string, fn func() error) (time.Duration, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	hooks := observability.Pipeline()
	hooks.OnStageStart(ctx, name)
	start := time.Now()
	err := fn()
	elapsed := time.Since(start)
	hooks.OnStageComplete(ctx, name, elapsed, err)
	return elapsed, err
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
