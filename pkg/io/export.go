package io

import (
	"bytes"
	"encoding/binary"
	"hash/crc32"
	"image"
	"image/png"
	"io"
	"os"

	"github.com/disintegration/imaging"

	"github.com/matzehuels/tagtile/pkg/errors"
)

const metresPerInch = 0.0254

var pngSignature = []byte("\x89PNG\r\n\x1a\n")

// pHYs unit specifier for pixels per metre.
const unitMetre = 1

// WritePNG encodes img as PNG to w with a pHYs chunk for dpi. A dpi of zero
// or less omits the chunk.
func WritePNG(w io.Writer, img image.Image, dpi int) error {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG, imaging.PNGCompressionLevel(png.DefaultCompression)); err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "encode png")
	}

	data := buf.Bytes()
	if dpi > 0 {
		var err error
		if data, err = withPHYs(data, dpi); err != nil {
			return err
		}
	}

	if _, err := w.Write(data); err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "write png")
	}
	return nil
}

// ExportPNG writes img to a PNG file at path. See [WritePNG]. On failure
// the partially written file is removed.
func ExportPNG(img image.Image, path string, dpi int) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "create %s", path)
	}
	if err := WritePNG(f, img, dpi); err != nil {
		f.Close()
		os.Remove(path)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return errors.Wrap(errors.ErrCodeIO, err, "close %s", path)
	}
	return nil
}

// ReadDPI returns the resolution stored in the pHYs chunk of a PNG stream.
// The second result is false when the stream has no pHYs chunk in metres.
func ReadDPI(r io.Reader) (int, bool, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return 0, false, errors.Wrap(errors.ErrCodeIO, err, "read png")
	}
	if !bytes.HasPrefix(data, pngSignature) {
		return 0, false, errors.New(errors.ErrCodeIO, "not a png stream")
	}

	for p := len(pngSignature); p+8 <= len(data); {
		n := int(binary.BigEndian.Uint32(data[p:]))
		typ := string(data[p+4 : p+8])
		if p+12+n > len(data) {
			break
		}
		if typ == "pHYs" && n == 9 {
			body := data[p+8 : p+8+n]
			if body[8] != unitMetre {
				return 0, false, nil
			}
			ppm := binary.BigEndian.Uint32(body)
			return int(float64(ppm)*metresPerInch + 0.5), true, nil
		}
		if typ == "IDAT" || typ == "IEND" {
			break
		}
		p += 12 + n
	}
	return 0, false, nil
}

// withPHYs inserts a pHYs chunk directly after IHDR. PNG decoders only
// honour pHYs ahead of the first IDAT.
func withPHYs(data []byte, dpi int) ([]byte, error) {
	ihdrEnd := len(pngSignature) + 8 + 13 + 4
	if len(data) < ihdrEnd || string(data[len(pngSignature)+4:len(pngSignature)+8]) != "IHDR" {
		return nil, errors.New(errors.ErrCodeInternal, "encoded png has no leading IHDR chunk")
	}

	ppm := uint32(float64(dpi)/metresPerInch + 0.5)
	chunk := make([]byte, 0, 21)
	chunk = binary.BigEndian.AppendUint32(chunk, 9)
	chunk = append(chunk, "pHYs"...)
	chunk = binary.BigEndian.AppendUint32(chunk, ppm)
	chunk = binary.BigEndian.AppendUint32(chunk, ppm)
	chunk = append(chunk, unitMetre)
	chunk = binary.BigEndian.AppendUint32(chunk, crc32.ChecksumIEEE(chunk[4:]))

	out := make([]byte, 0, len(data)+len(chunk))
	out = append(out, data[:ihdrEnd]...)
	out = append(out, chunk...)
	return append(out, data[ihdrEnd:]...), nil
}
