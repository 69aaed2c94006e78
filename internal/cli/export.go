package cli

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/tagtile/pkg/config"
	"github.com/matzehuels/tagtile/pkg/export"
	"github.com/matzehuels/tagtile/pkg/grid"
	"github.com/matzehuels/tagtile/pkg/observability"
	"github.com/matzehuels/tagtile/pkg/pipeline"
)

// exportOpts holds the command-line flags for the export command.
type exportOpts struct {
	png       bool   // force PNG output
	pdf       bool   // force PDF output
	format    string // explicit output format
	pages     int    // number of pages to split the canvas into
	minSize   int    // hole side at which recursion stops
	dpi       int    // raster resolution
	paper     string // page format
	tempDir   string // directory for per-page rasters
	cleanTemp bool   // remove per-page rasters after writing the PDF
	verify    bool   // re-read the PDF and check its page count
}

// exportCommand creates the root command that tiles and exports a graphic.
func (c *CLI) exportCommand() *cobra.Command {
	opts := exportOpts{
		pages:   pipeline.DefaultPages,
		minSize: pipeline.DefaultMinSize,
		dpi:     pipeline.DefaultDPI,
		paper:   pipeline.DefaultPaper,
	}

	cmd := &cobra.Command{
		Use:   appName + " <input> <output>",
		Short: "Tile a graphic into its own transparent hole",
		Long: `tagtile turns a graphic with a transparent square hole, such as a fiducial
tag, into a self-similar graphic: the graphic is drawn again inside its own
hole, recursively, until the hole is no larger than --min-size pixels.

The result is written as a multi-page PDF whose pages can be printed and
assembled, or as a single PNG cropped to its content. The output kind is
taken from --png, --pdf, --format or the output extension, in that order.

Defaults may be set in a TOML config file; flags given on the command line
always win.`,
		Example: `  tagtile tag.png tag.pdf
  tagtile tag.png tag.pdf --num-a4 6 --dpi 600
  tagtile tag.png out --png --min-size 16`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runExport(cmd, args[0], args[1], opts)
		},
	}

	cmd.Flags().BoolVar(&opts.png, "png", false, "write a cropped PNG (wins over --pdf)")
	cmd.Flags().BoolVar(&opts.pdf, "pdf", false, "write a multi-page PDF")
	cmd.Flags().StringVarP(&opts.format, config.FlagFormat, "f", "", "output format: pdf, png (default: by output extension)")
	cmd.Flags().IntVarP(&opts.pages, config.FlagPages, "n", opts.pages, "number of pages to split the canvas into")
	cmd.Flags().IntVar(&opts.minSize, config.FlagMinSize, opts.minSize, "stop recursing once the hole is at most this many pixels")
	cmd.Flags().IntVar(&opts.dpi, config.FlagDPI, opts.dpi, "raster resolution in dots per inch")
	cmd.Flags().StringVar(&opts.paper, config.FlagPaper, opts.paper, "page format: "+paperList())
	cmd.Flags().StringVar(&opts.tempDir, config.FlagTempDir, "", "directory for per-page rasters (default: current directory)")
	cmd.Flags().BoolVar(&opts.cleanTemp, config.FlagCleanTemp, false, "remove per-page rasters after writing the PDF")
	cmd.Flags().BoolVar(&opts.verify, "verify", false, "re-read the PDF and check its page count")

	return cmd
}

// runExport merges config and flags, runs the pipeline and reports the result.
func (c *CLI) runExport(cmd *cobra.Command, input, output string, opts exportOpts) error {
	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}

	popts := pipeline.Options{
		Input:     input,
		Output:    output,
		Format:    opts.format,
		Pages:     opts.pages,
		MinSize:   opts.minSize,
		DPI:       opts.dpi,
		Paper:     opts.paper,
		TempDir:   opts.tempDir,
		CleanTemp: opts.cleanTemp,
		Verify:    opts.verify,
	}
	flags := cmd.Flags()
	cfg.Apply(&popts, func(name string) bool {
		if name == config.FlagFormat && (opts.png || opts.pdf) {
			return true
		}
		return flags.Changed(name)
	})

	format, err := export.ResolveFormat(opts.png, opts.pdf, popts.Format, output)
	if err != nil {
		return err
	}
	popts.Format = string(format)

	result, err := c.execute(cmd.Context(), cmd.ErrOrStderr(), popts)
	if err != nil {
		return err
	}

	printExportResult(cmd.OutOrStdout(), result, !popts.CleanTemp)
	return nil
}

// execute runs the pipeline behind a spinner.
func (c *CLI) execute(ctx context.Context, spinnerOut io.Writer, opts pipeline.Options) (*pipeline.Result, error) {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	spinner := newSpinner(ctx, spinnerOut, fmt.Sprintf("Tiling %s...", filepath.Base(opts.Input)))
	prev := observability.Pipeline()
	observability.SetPipelineHooks(spinnerHooks{PipelineHooks: prev, spinner: spinner})
	defer observability.SetPipelineHooks(prev)

	spinner.Start()
	result, err := c.newRunner().Execute(ctx, opts)
	if err != nil {
		spinner.StopWithError(spinnerOut, "Export failed")
		return nil, err
	}
	spinner.Stop()

	prog.done("exported "+filepath.Base(result.Path),
		"format", result.Format,
		"pages", result.Pages,
		"levels", result.Tile.Levels)
	return result, nil
}

// spinnerHooks shows each started stage on a spinner and forwards every
// event to the embedded hooks.
type spinnerHooks struct {
	observability.PipelineHooks
	spinner *Spinner
}

func (h spinnerHooks) OnStageStart(ctx context.Context, stage string) {
	h.spinner.SetStage(stage)
	h.PipelineHooks.OnStageStart(ctx, stage)
}

// printExportResult prints the confirmation line and a short summary.
// Page rasters are listed when keptTemp is set.
func printExportResult(w io.Writer, r *pipeline.Result, keptTemp bool) {
	fmt.Fprintln(w, StyleSuccess.Render("Exported to "+r.Path))
	printKeyValue(w, "Grid", fmt.Sprintf("%d×%d %s pages", r.Grid.Cols, r.Grid.Rows, r.Grid.Page.Name))
	printKeyValue(w, "Canvas", fmt.Sprintf("%d×%d px at %d dpi", r.CanvasWidth, r.CanvasHeight, r.Grid.Page.DPI))
	printKeyValue(w, "Levels", StyleNumber.Render(fmt.Sprint(r.Tile.Levels)))
	if r.Format == export.FormatPDF {
		printKeyValue(w, "Pages", StyleNumber.Render(fmt.Sprint(r.Pages)))
		if keptTemp && len(r.TempFiles) > 0 {
			printDetail(w, "page rasters:")
			for _, f := range r.TempFiles {
				printFile(w, f)
			}
		}
	}
}

// paperList joins the supported paper names for help text.
func paperList() string {
	return strings.Join(grid.PaperNames(), ", ")
}
