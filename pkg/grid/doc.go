// Package grid plans how a composed canvas is split across printed pages.
//
// # Overview
//
// A print run of N pages can be laid out as any cols×rows factorization of N.
// [Plan] walks every divisor pair in ascending column order and keeps the one
// whose overall layout is closest to square, measured as the absolute
// difference between the total width and total height in pixels:
//
//	skew = |cols*pageWidth - rows*pageHeight|
//
// Ties keep the first pair found. Four A4 pages at 300 dpi therefore become
// a 2×2 grid (skew 2054 px) rather than 1×4 (11548 px) or 4×1 (6413 px).
//
// # Page Sizes
//
// [PageSize] pairs a named paper format with its size in PDF points and in
// pixels at a resolution. Pixel sizes truncate, so A4 at 300 dpi is
// 2480×3507 pixels:
//
//	page, err := grid.Paper("a4", 300)
//	g, err := grid.Plan(4, page)
//	w, h := g.CanvasSize() // 4960×7014
package grid
