// Package preprocess prepares images for recognition: grayscale
// conversion, denoising, adaptive binarization, deskew, and upscaling.
// These are thin calls into image-processing primitives; recognition
// quality tuning beyond the fixed stage order is out of scope.
package preprocess

import (
	"bytes"
	"fmt"
	"image"
	"image/png"

	// Register decoders for the formats callers commonly upload.
	_ "image/gif"
	_ "image/jpeg"
)

// Options selects which preprocessing stages run. Stages always execute in
// a fixed order: grayscale, denoise, threshold, deskew, resize.
type Options struct {
	// Grayscale converts the image to 8-bit grayscale.
	Grayscale bool

	// Denoise applies a 3x3 median filter to suppress speckle noise.
	Denoise bool

	// Threshold binarizes the image with Otsu's method.
	Threshold bool

	// Deskew estimates the dominant text skew and rotates it away.
	Deskew bool

	// Resize upscales the image 2x, which helps recognition of small type.
	Resize bool
}

// DefaultOptions enables grayscale, denoise, and threshold. Deskew and
// resize are off: both are slow and only pay off on skewed or low-DPI
// scans.
func DefaultOptions() Options {
	return Options{
		Grayscale: true,
		Denoise:   true,
		Threshold: true,
	}
}

// Apply runs the enabled stages over img in the fixed stage order and
// returns the processed image. With all stages disabled the input is
// returned unchanged.
func Apply(img image.Image, opts Options) image.Image {
	if opts.Grayscale {
		img = Grayscale(img)
	}
	if opts.Denoise {
		img = Denoise(img)
	}
	if opts.Threshold {
		img = Threshold(img)
	}
	if opts.Deskew {
		img = Deskew(img)
	}
	if opts.Resize {
		img = Resize(img, 2.0)
	}
	return img
}

// Decode decodes an encoded image (PNG, JPEG, GIF).
func Decode(data []byte) (image.Image, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	return img, nil
}

// EncodePNG encodes an image as PNG for handoff to the recognition engine.
func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}
	return buf.Bytes(), nil
}
