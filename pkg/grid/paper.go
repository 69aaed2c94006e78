package grid

import (
	"sort"
	"strings"

	"github.com/matzehuels/tagtile/pkg/errors"
)

// DefaultPaper is the paper format used when none is requested.
const DefaultPaper = "a4"

const pointsPerInch = 72.0

// mm converts millimetres to PDF points.
func mm(v float64) float64 { return v * pointsPerInch / 25.4 }

// papers maps lowercase paper names to portrait width and height in points.
var papers = map[string][2]float64{
	"a3":     {mm(297), mm(420)},
	"a4":     {mm(210), mm(297)},
	"a5":     {mm(148), mm(210)},
	"letter": {8.5 * pointsPerInch, 11 * pointsPerInch},
	"legal":  {8.5 * pointsPerInch, 14 * pointsPerInch},
}

// PageSize is a fixed output page, in points for the document and in pixels
// for the raster slice that fills it.
type PageSize struct {
	Name     string  // lowercase paper name, e.g. "a4"
	WidthPt  float64 // page width in PDF points
	HeightPt float64 // page height in PDF points
	DPI      int     // raster resolution
	Width    int     // page width in pixels at DPI
	Height   int     // page height in pixels at DPI
}

// Paper returns the named paper format at the given resolution.
// Names are case-insensitive. Unknown names and non-positive DPI values
// yield an INVALID_ARGUMENT error.
func Paper(name string, dpi int) (PageSize, error) {
	if err := errors.ValidateDPI(dpi); err != nil {
		return PageSize{}, err
	}
	key := strings.ToLower(strings.TrimSpace(name))
	dims, ok := papers[key]
	if !ok {
		return PageSize{}, errors.New(errors.ErrCodeInvalidArgument,
			"unknown paper %q (must be one of: %s)", name, strings.Join(PaperNames(), ", "))
	}
	return PageSize{
		Name:     key,
		WidthPt:  dims[0],
		HeightPt: dims[1],
		DPI:      dpi,
		Width:    int(dims[0] / pointsPerInch * float64(dpi)),
		Height:   int(dims[1] / pointsPerInch * float64(dpi)),
	}, nil
}

// A4 returns an A4 page at the given resolution. It panics on an invalid DPI
// and is intended for constants and tests.
func A4(dpi int) PageSize {
	p, err := Paper("a4", dpi)
	if err != nil {
		panic(err)
	}
	return p
}

// PaperNames lists the supported paper names in sorted order.
func PaperNames() []string {
	names := make([]string, 0, len(papers))
	for name := range papers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
