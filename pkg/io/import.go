package io

import (
	"fmt"
	"image"
	"io"
	"os"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp"

	"github.com/matzehuels/tagtile/pkg/errors"
)

// ReadImage decodes any registered raster format from r and returns it as
// NRGBA with bounds starting at the origin. ReadImage does not close r.
func ReadImage(r io.Reader) (*image.NRGBA, error) {
	img, err := imaging.Decode(r)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeIO, err, "decode image")
	}
	return imaging.Clone(img), nil
}

// ImportImage reads and decodes the raster file at path.
func ImportImage(path string) (*image.NRGBA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeIO, err, "open %s", path)
	}
	defer f.Close()

	img, err := ReadImage(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return img, nil
}
