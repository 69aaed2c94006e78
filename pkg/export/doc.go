// Package export writes a tiled canvas to disk.
//
// Two formats are supported:
//
//   - [FormatPDF]: the canvas is sliced along its page grid. Each slice is
//     written as a temporary PNG and placed full-bleed on its own page of a
//     document whose page size matches the grid's paper. The pages are laid
//     out row-major so they can be printed and assembled in order.
//   - [FormatPNG]: the canvas is cropped to the bounding box of its non-white
//     pixels and written as a single PNG.
//
// Both formats embed the requested resolution in the rasters they write.
package export
