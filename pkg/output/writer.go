package output

import (
	"errors"
	"fmt"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/spakin/netpbm"
)

// ErrUnsupportedFormat is returned for output paths with an unknown extension
var ErrUnsupportedFormat = errors.New("unsupported output format")

// Format identifies an image encoding
type Format string

const (
	FormatPPM    Format = "ppm" // plain-text P3
	FormatRawPPM Format = "pnm" // binary P6
	FormatPNG    Format = "png"
	FormatEXR    Format = "exr" // linear half-float HDR
)

// FormatFromPath picks the encoding from a file name. A trailing ".gz" requests
// gzip compression of the encoded image.
func FormatFromPath(path string) (format Format, compressed bool, err error) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".gz" {
		compressed = true
		ext = strings.ToLower(filepath.Ext(strings.TrimSuffix(path, filepath.Ext(path))))
	}

	switch Format(strings.TrimPrefix(ext, ".")) {
	case FormatPPM:
		format = FormatPPM
	case FormatRawPPM:
		format = FormatRawPPM
	case FormatPNG:
		format = FormatPNG
	case FormatEXR:
		if compressed {
			return "", false, fmt.Errorf("%w: exr cannot be gzip wrapped", ErrUnsupportedFormat)
		}
		format = FormatEXR
	default:
		return "", false, fmt.Errorf("%w: %q", ErrUnsupportedFormat, path)
	}
	return format, compressed, nil
}

// Encode writes the frame to w in the given 8-bit format
func Encode(w io.Writer, frame *Frame, format Format) error {
	switch format {
	case FormatPPM:
		return WritePPM(w, frame, true)
	case FormatRawPPM:
		return WritePPM(w, frame, false)
	case FormatPNG:
		return WritePNG(w, frame)
	default:
		return fmt.Errorf("%w: %s cannot be streamed", ErrUnsupportedFormat, format)
	}
}

// WritePPM writes the gamma-corrected frame as a PPM image with maximum value 255
func WritePPM(w io.Writer, frame *Frame, plain bool) error {
	err := netpbm.Encode(w, frame.Image(), &netpbm.EncodeOptions{
		Format:   netpbm.PPM,
		MaxValue: 255,
		Plain:    plain,
	})
	if err != nil {
		return fmt.Errorf("failed to encode ppm: %w", err)
	}
	return nil
}

// WritePNG writes the gamma-corrected frame as a PNG image
func WritePNG(w io.Writer, frame *Frame) error {
	if err := png.Encode(w, frame.Image()); err != nil {
		return fmt.Errorf("failed to encode png: %w", err)
	}
	return nil
}

// Save writes the frame to path, choosing the format from its extension
func Save(path string, frame *Frame) (err error) {
	format, compressed, err := FormatFromPath(path)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	if format == FormatEXR {
		return WriteEXR(path, frame)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() {
		if cerr := file.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("failed to close output file: %w", cerr)
		}
	}()

	if !compressed {
		return Encode(file, frame, format)
	}

	zw := gzip.NewWriter(file)
	if err := Encode(zw, frame, format); err != nil {
		zw.Close()
		return err
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("failed to finish gzip stream: %w", err)
	}
	return nil
}
