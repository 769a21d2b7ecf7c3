// Package scantext reconstructs human-readable text from the flat token
// stream produced by an optical-character-recognition engine: text lines,
// paragraphs, summary statistics, and regex-recognized structured entities
// (emails, phone numbers, URLs, numbers, dates).
//
// Basic usage, recognizing an image end to end (requires the "ocr" build
// tag and an installed Tesseract):
//
//	result := scantext.FromImage(data).Language("eng").Extract()
//	if !result.Success {
//	    // handle result.Error
//	}
//	fmt.Println(result.Text)
//
// The pipeline can also be driven from an already-recognized token stream,
// which needs no engine at all:
//
//	result := scantext.FromTokens(tokens).Threshold(60).Extract()
//
// Entity extraction and statistics consume the reconstructed text
// independently:
//
//	data := text.ExtractEntities(result.Text)
//	stats := text.Stats(result.Text)
//
// Extraction never returns an error or panics across the package boundary:
// every fault is folded into an ExtractionResult with Success set to false
// and Error describing the cause. A failed extraction is final for that
// call; there is no retry.
package scantext

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	words := scantext.Must(scantext.FromTokens(tokens).Words())
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
