// Package pkg provides the core libraries for tagtile.
//
// # Overview
//
// tagtile turns a graphic with a single transparent square hole, typically a
// fiducial tag, into a self-similar graphic: the graphic is drawn again
// inside its own hole, at shrinking scale, until the hole reaches a minimum
// size. The pkg directory is organized by pipeline stage:
//
//  1. [grid] - Page sizes and the cols×rows plan for a page count
//  2. [canvas] - Scaling the source onto a white canvas sized to the grid
//  3. [raster] - Hole detection and pixel operations
//  4. [tile] - Recursive drawing into the hole
//  5. [export] - Multi-page PDF and cropped PNG output
//  6. [pipeline] - Orchestration (plan → import → compose → tile → export)
//
// Supporting packages: [io] (decode and DPI-tagged PNG encode), [config]
// (TOML defaults), [errors] (coded errors), [observability] (hooks) and
// [buildinfo].
//
// # Architecture
//
// The typical data flow through tagtile:
//
//	Source PNG/JPEG/WebP
//	         ↓
//	    [io] package (decode to NRGBA)
//	         ↓
//	    [grid] + [canvas] packages (plan pages, compose canvas)
//	         ↓
//	    [tile] package (fill the hole recursively)
//	         ↓
//	    [export] package (PDF pages or cropped PNG)
//
// # Quick Start
//
// Tile a graphic and write a four-page A4 PDF:
//
//	import (
//	    "context"
//	    "github.com/matzehuels/tagtile/pkg/canvas"
//	    "github.com/matzehuels/tagtile/pkg/export"
//	    "github.com/matzehuels/tagtile/pkg/grid"
//	    "github.com/matzehuels/tagtile/pkg/io"
//	    "github.com/matzehuels/tagtile/pkg/tile"
//	)
//
//	src, _ := io.ImportImage("tag.png")
//	g, _ := grid.Plan(4, grid.A4(300))
//	base, _ := canvas.Compose(src, g)
//	stats, _ := tile.New(src, 32).Draw(base)
//	res, _ := export.RenderPDF(context.Background(), base, g, "tag.pdf")
//	fmt.Println(stats.Levels, res.Pages)
//
// Or let the [pipeline] Runner drive every stage with logging and timing.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...          # All tests
//	go test ./pkg/tile/...     # Specific package
//
// [grid]: https://pkg.go.dev/github.com/matzehuels/tagtile/pkg/grid
// [canvas]: https://pkg.go.dev/github.com/matzehuels/tagtile/pkg/canvas
// [raster]: https://pkg.go.dev/github.com/matzehuels/tagtile/pkg/raster
// [tile]: https://pkg.go.dev/github.com/matzehuels/tagtile/pkg/tile
// [export]: https://pkg.go.dev/github.com/matzehuels/tagtile/pkg/export
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/tagtile/pkg/pipeline
// [io]: https://pkg.go.dev/github.com/matzehuels/tagtile/pkg/io
// [config]: https://pkg.go.dev/github.com/matzehuels/tagtile/pkg/config
// [errors]: https://pkg.go.dev/github.com/matzehuels/tagtile/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/tagtile/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/tagtile/pkg/buildinfo
package pkg
