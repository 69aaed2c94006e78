// Package tile draws a graphic inside its own transparent hole, recursively.
//
// # Algorithm
//
// [Tiler.Draw] works on a base raster that contains a hole:
//
//  1. Locate the hole of the base raster with [raster.FindHole].
//  2. Stop if the hole's side is at most the minimum size.
//  3. Resize the original source to side×side.
//  4. Recurse on that copy. A copy too small to still show a hole ends the
//     recursion and is used as it is.
//  5. Paste the copy into the base raster at the hole's top-left corner.
//
// Every level scans its own raster for the hole instead of scaling the
// parent's coordinates, so rounding in one resize cannot drift into the next
// level. The cost is one full alpha scan per level; the number of levels is
// logarithmic in the ratio of canvas size to minimum size.
//
// A NO_TRANSPARENT_REGION error is only ever returned for the top-level base
// raster.
//
// # Example
//
//	t := tile.New(src, 32)
//	stats, err := t.Draw(canvas)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(stats.Levels, "nested copies")
package tile
