// Package raster holds the pixel-level primitives shared by the composer,
// the tiler and the exporter.
//
// All rasters are [image.NRGBA]: straight (non-premultiplied) alpha, so the
// alpha byte of a pixel can be compared against 0xff directly, and the RGB
// bytes of a transparent pixel keep whatever the source stored there.
//
// # Holes
//
// [FindHole] scans the alpha channel for every pixel that is not fully
// opaque and returns the largest square centered on the extent of those
// pixels. The scan is repeated for every raster it is asked about; callers
// never carry a box from one raster to another.
//
// # Resampling and Pasting
//
// [Resize] is nearest-neighbor so that hard-edged graphics stay hard-edged.
// [Paste] replaces destination pixels, alpha included, rather than blending:
// a pasted copy's own hole stays transparent on the canvas.
package raster
