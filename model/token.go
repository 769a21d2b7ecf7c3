// Package model defines the shared data types for OCR token
// reconstruction: recognized tokens, pixel-space bounding boxes, and the
// result shapes consumed by downstream collaborators.
package model

import (
	"fmt"
	"math"
)

// Token is a single recognized text fragment produced by the recognition
// engine. Coordinates are pixels with the origin at the top-left of the
// image; Y increases downward. Confidence is on the engine's 0-100 scale.
//
// Tokens are immutable inputs: the reconstruction pipeline never modifies
// them, and independent calls may share a token slice freely.
type Token struct {
	// Text is the recognized fragment. It may be empty or whitespace-only;
	// such tokens never contribute to assembled lines.
	Text string

	// Confidence is the engine-reported certainty (0-100).
	Confidence float64

	// X, Y are the top-left corner of the token's bounding box in pixels.
	X, Y int

	// Width, Height are the bounding box dimensions in pixels.
	Width, Height int
}

// Box returns the token's bounding box.
func (t Token) Box() Box {
	return Box{X: t.X, Y: t.Y, Width: t.Width, Height: t.Height}
}

// Validate reports whether the token is well-formed: non-negative geometry
// and a real confidence value. A malformed token fails the entire
// extraction call; there is no per-token recovery.
func (t Token) Validate() error {
	if t.X < 0 || t.Y < 0 || t.Width < 0 || t.Height < 0 {
		return fmt.Errorf("malformed token %q: negative geometry (x=%d y=%d w=%d h=%d)",
			t.Text, t.X, t.Y, t.Width, t.Height)
	}
	if math.IsNaN(t.Confidence) || math.IsInf(t.Confidence, 0) {
		return fmt.Errorf("malformed token %q: confidence is not a finite number", t.Text)
	}
	return nil
}

// Box is an axis-aligned rectangle in image pixel coordinates, origin
// top-left, Y increasing downward.
type Box struct {
	X      int // Left
	Y      int // Top
	Width  int
	Height int
}

// Left returns the left edge X coordinate.
func (b Box) Left() int {
	return b.X
}

// Right returns the right edge X coordinate.
func (b Box) Right() int {
	return b.X + b.Width
}

// Top returns the top edge Y coordinate.
func (b Box) Top() int {
	return b.Y
}

// Bottom returns the bottom edge Y coordinate.
func (b Box) Bottom() int {
	return b.Y + b.Height
}

// Union returns the smallest box covering both b and other.
func (b Box) Union(other Box) Box {
	left := b.Left()
	if other.Left() < left {
		left = other.Left()
	}
	top := b.Top()
	if other.Top() < top {
		top = other.Top()
	}
	right := b.Right()
	if other.Right() > right {
		right = other.Right()
	}
	bottom := b.Bottom()
	if other.Bottom() > bottom {
		bottom = other.Bottom()
	}
	return Box{X: left, Y: top, Width: right - left, Height: bottom - top}
}

// Word pairs a recognized word with its confidence and position. It is the
// row type returned by the boxed-words operation used for visualization
// overlays.
type Word struct {
	Text       string
	Confidence float64
	Box        Box
}
