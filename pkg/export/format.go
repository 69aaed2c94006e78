package export

import (
	"path/filepath"
	"strings"

	"github.com/matzehuels/tagtile/pkg/errors"
)

// Format is an output file format.
type Format string

const (
	FormatPDF Format = "pdf"
	FormatPNG Format = "png"
)

// Formats lists the supported formats.
var Formats = []Format{FormatPDF, FormatPNG}

// ParseFormat parses a case-insensitive format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatPDF, FormatPNG:
		return f, nil
	}
	return "", errors.New(errors.ErrCodeUnsupportedFormat,
		"unsupported format %q (supported: pdf, png)", s)
}

// ResolveFormat picks the output format. The png and pdf switches win in
// that order, then an explicit format name, then the extension of output:
// ".pdf" selects PDF and anything else PNG.
func ResolveFormat(png, pdf bool, explicit, output string) (Format, error) {
	switch {
	case png:
		return FormatPNG, nil
	case pdf:
		return FormatPDF, nil
	case explicit != "":
		return ParseFormat(explicit)
	}
	if strings.EqualFold(filepath.Ext(output), ".pdf") {
		return FormatPDF, nil
	}
	return FormatPNG, nil
}
