package scantext

import (
	"github.com/scantext/scantext/layout"
	"github.com/scantext/scantext/ocr"
	"github.com/scantext/scantext/preprocess"
)

// defaultThreshold is the confidence cutoff applied when the caller sets
// none. Tokens must score strictly above it to be included.
const defaultThreshold = 60.0

// ExtractOptions holds configuration for an extraction call.
type ExtractOptions struct {
	// Engine invocation
	language  string
	profile   ocr.Profile
	threshold float64

	// Image preparation
	preprocess     preprocess.Options
	skipPreprocess bool

	// Reconstruction
	line         layout.LineConfig
	document     layout.DocumentConfig
	documentMode bool
}

// defaultOptions returns the default extraction options.
func defaultOptions() ExtractOptions {
	return ExtractOptions{
		language:   "eng",
		profile:    ocr.ProfileDefault,
		threshold:  defaultThreshold,
		preprocess: preprocess.DefaultOptions(),
		line:       layout.DefaultLineConfig(),
		document:   layout.DefaultDocumentConfig(),
	}
}

// clone creates a copy of ExtractOptions. All fields are value types, so a
// shallow copy suffices.
func (o ExtractOptions) clone() ExtractOptions {
	return o
}
