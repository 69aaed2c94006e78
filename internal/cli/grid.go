package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/matzehuels/tagtile/pkg/config"
	"github.com/matzehuels/tagtile/pkg/grid"
	"github.com/matzehuels/tagtile/pkg/pipeline"
)

// gridCommand creates the grid command that lists the page arrangements a
// page count allows.
func (c *CLI) gridCommand() *cobra.Command {
	var (
		pages = pipeline.DefaultPages
		dpi   = pipeline.DefaultDPI
		paper = pipeline.DefaultPaper
	)

	cmd := &cobra.Command{
		Use:   "grid",
		Short: "Show the page grids for a page count",
		Long: `Show every cols×rows arrangement of the given page count with its canvas
size and skew, the difference between total width and height in pixels.
The arrangement marked as chosen is the one an export uses.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			opts := pipeline.Options{Pages: pages, DPI: dpi, Paper: paper}
			cfg.Apply(&opts, cmd.Flags().Changed)

			page, err := grid.Paper(opts.Paper, opts.DPI)
			if err != nil {
				return err
			}
			candidates, err := grid.Candidates(opts.Pages, page)
			if err != nil {
				return err
			}
			chosen, err := grid.Plan(opts.Pages, page)
			if err != nil {
				return err
			}

			loggerFromContext(cmd.Context()).Debug("planned grid",
				"pages", opts.Pages, "candidates", len(candidates))
			printGrids(cmd.OutOrStdout(), page, candidates, chosen)
			return nil
		},
	}

	cmd.Flags().IntVarP(&pages, config.FlagPages, "n", pages, "number of pages")
	cmd.Flags().IntVar(&dpi, config.FlagDPI, dpi, "raster resolution in dots per inch")
	cmd.Flags().StringVar(&paper, config.FlagPaper, paper, "page format: "+paperList())

	return cmd
}

// printGrids prints the candidate table and the chosen grid.
func printGrids(w io.Writer, page grid.PageSize, candidates []grid.Grid, chosen grid.Grid) {
	fmt.Fprintln(w, StyleTitle.Render(fmt.Sprintf("%d pages of %s at %d dpi (%d×%d px)",
		chosen.Pages(), page.Name, page.DPI, page.Width, page.Height)))

	rows := make([][]string, len(candidates))
	chosenRow := -1
	for i, g := range candidates {
		mark := ""
		if g.Cols == chosen.Cols && g.Rows == chosen.Rows {
			mark, chosenRow = iconChosen, i
		}
		cw, ch := g.CanvasSize()
		rows[i] = []string{
			mark,
			fmt.Sprint(g.Cols),
			fmt.Sprint(g.Rows),
			fmt.Sprintf("%d×%d", cw, ch),
			fmt.Sprint(g.Skew()),
		}
	}
	fmt.Fprintln(w, renderTable([]string{"", "Cols", "Rows", "Canvas", "Skew"}, rows, chosenRow))
	printSuccess(w, "chosen: %d×%d", chosen.Cols, chosen.Rows)
}
