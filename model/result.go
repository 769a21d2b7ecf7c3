package model

// ExtractionResult is the structured output of a single extraction call.
// Downstream consumers must check Success before reading Text or Lines;
// Success with empty Text means "no text detected", which is distinct from
// failure.
//
// ConfidenceScores and BoundingBoxes are parallel, index-aligned slices:
// entry i in both describes the same token. Confidence is the arithmetic
// mean of ConfidenceScores, or 0 when no tokens survived filtering.
type ExtractionResult struct {
	// Text is the reconstructed document text with paragraph breaks.
	Text string

	// Lines are the assembled text lines in reading order.
	Lines []string

	// Confidence is the mean confidence of all included tokens (0-100).
	Confidence float64

	// ConfidenceScores holds the per-token confidences, in token order.
	ConfidenceScores []float64

	// BoundingBoxes holds the per-token boxes, parallel to ConfidenceScores.
	BoundingBoxes []Box

	// Language is the language code the engine was invoked with.
	Language string

	// Profile is the recognition profile name the engine was invoked with.
	Profile string

	// Success reports whether extraction completed. When false, Error
	// describes the fault and every other field is empty or zero.
	Success bool

	// Error is the failure description when Success is false.
	Error string

	// ParagraphCount is the number of paragraphs in Text. Populated only by
	// the paragraph-optimized extraction; zero otherwise.
	ParagraphCount int

	// AvgParagraphWords is the mean word count per paragraph. Populated only
	// by the paragraph-optimized extraction; zero otherwise.
	AvgParagraphWords float64
}

// FailedResult builds the uniform failure shape: Success false, the error
// message set, and all content fields empty. Language and profile are
// echoed so callers can tell which invocation failed.
func FailedResult(language, profile, errMsg string) *ExtractionResult {
	return &ExtractionResult{
		Lines:            []string{},
		ConfidenceScores: []float64{},
		BoundingBoxes:    []Box{},
		Language:         language,
		Profile:          profile,
		Success:          false,
		Error:            errMsg,
	}
}

// StructuredData holds regex-recognized entities grouped by category.
// Within each category matches appear in order of first occurrence with
// duplicates preserved. Categories are independent: the same substring may
// appear in more than one (digit groups inside a phone number also match
// the numbers category).
type StructuredData struct {
	Emails       []string
	PhoneNumbers []string
	URLs         []string
	Numbers      []string
	Dates        []string
}

// TextStatistics holds summary counters for a piece of text.
type TextStatistics struct {
	// Characters is the rune count with every space character removed.
	Characters int

	// Words is the count of whitespace-delimited tokens.
	Words int

	// Sentences is the count of non-blank segments between periods.
	Sentences int

	// Paragraphs is the count of non-blank segments between line breaks.
	Paragraphs int
}
