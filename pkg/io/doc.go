// Package io reads source rasters and writes PNG rasters with resolution
// metadata.
//
// # Import
//
// [ImportImage] opens a file and decodes it with [ReadImage]. PNG, JPEG and
// GIF are recognized through the standard library, BMP and TIFF through
// golang.org/x/image (registered by the imaging package) and WebP through
// golang.org/x/image/webp. Every image is converted to [image.NRGBA] so the
// rest of the pipeline can read alpha bytes directly.
//
// # Export
//
// [WritePNG] encodes a raster as PNG and embeds a pHYs chunk recording the
// resolution in pixels per metre, which is how print tools learn the DPI of
// a PNG. [ReadDPI] recovers that value:
//
//	if err := io.ExportPNG(img, "tag.png", 300); err != nil {
//	    log.Fatal(err)
//	}
package io
