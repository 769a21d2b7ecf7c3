package layout

import "github.com/scantext/scantext/model"

// FilterTokens returns the subsequence of tokens whose confidence is
// strictly greater than threshold, in the original order. The comparison is
// strict on purpose: a threshold of 0 still excludes tokens reported at
// exactly 0, which is how the engine marks non-text detections.
func FilterTokens(tokens []model.Token, threshold float64) []model.Token {
	filtered := make([]model.Token, 0, len(tokens))
	for _, tok := range tokens {
		if tok.Confidence > threshold {
			filtered = append(filtered, tok)
		}
	}
	return filtered
}
