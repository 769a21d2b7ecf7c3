//go:build ocr

// Package ocr invokes the Tesseract recognition engine and adapts its
// word-level output into the token stream the reconstruction pipeline
// consumes.
//
// This implementation wraps Tesseract via gosseract and requires Tesseract
// to be installed on the system. On macOS, install via:
//
//	brew install tesseract
//
// On Ubuntu/Debian:
//
//	apt-get install tesseract-ocr
package ocr

import (
	"fmt"
	"strconv"

	"github.com/otiai10/gosseract/v2"

	"github.com/scantext/scantext/model"
)

// Client wraps Tesseract and implements Engine.
type Client struct {
	client *gosseract.Client
}

// New creates a new OCR client. The client should be closed when no longer
// needed to release resources.
func New() (*Client, error) {
	client := gosseract.NewClient()
	return &Client{client: client}, nil
}

// Close releases OCR resources.
func (c *Client) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

// Recognize runs Tesseract on the encoded image (PNG, TIFF, JPEG, etc.)
// with the given language and profile, and returns word tokens with pixel
// bounding boxes and 0-100 confidences, in Tesseract's raster order.
func (c *Client) Recognize(image []byte, language string, profile Profile) ([]model.Token, error) {
	if err := c.client.SetImageFromBytes(image); err != nil {
		return nil, fmt.Errorf("failed to set image: %w", err)
	}
	if language != "" {
		if err := c.client.SetLanguage(language); err != nil {
			return nil, fmt.Errorf("failed to set language %q: %w", language, err)
		}
	}

	settings := profile.Settings()
	if err := c.client.SetPageSegMode(gosseract.PageSegMode(settings.PSM)); err != nil {
		return nil, fmt.Errorf("failed to set page segmentation mode %d: %w", settings.PSM, err)
	}
	for name, value := range settings.Variables {
		if err := c.client.SetVariable(gosseract.SettableVariable(name), value); err != nil {
			return nil, fmt.Errorf("failed to set variable %s: %w", name, err)
		}
	}

	boxes, err := c.client.GetBoundingBoxes(gosseract.RIL_WORD)
	if err != nil {
		return nil, fmt.Errorf("OCR failed: %w", err)
	}

	tokens := make([]model.Token, 0, len(boxes))
	for _, b := range boxes {
		tokens = append(tokens, model.Token{
			Text:       b.Word,
			Confidence: b.Confidence,
			X:          b.Box.Min.X,
			Y:          b.Box.Min.Y,
			Width:      b.Box.Dx(),
			Height:     b.Box.Dy(),
		})
	}
	return tokens, nil
}

// SetDPI sets the source resolution hint for images that carry no DPI
// metadata.
func (c *Client) SetDPI(dpi int) error {
	return c.client.SetVariable("user_defined_dpi", strconv.Itoa(dpi))
}

// AvailableLanguages returns the languages the installed Tesseract can
// recognize.
func (c *Client) AvailableLanguages() ([]string, error) {
	return gosseract.GetAvailableLanguages()
}
