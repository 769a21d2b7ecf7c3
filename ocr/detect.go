package ocr

import (
	"strings"

	"github.com/scantext/scantext/model"
)

// detectionCandidates are the languages probed by DetectLanguage, ordered
// by how commonly they appear in scanned material.
var detectionCandidates = []string{
	"eng", "fra", "deu", "spa", "ita", "por", "rus", "chi_sim", "jpn", "kor",
}

// detectionFloor is the minimum mean confidence a candidate must reach
// before its language wins over the English fallback.
const detectionFloor = 30.0

// DetectLanguage probes the image with each candidate language and keeps
// the one whose recognition scored the highest mean token confidence.
// Candidates that fail to recognize are skipped. When no candidate clears
// the confidence floor, English is returned as the fallback.
func DetectLanguage(engine Engine, image []byte) string {
	best := ""
	bestConfidence := 0.0

	for _, lang := range detectionCandidates {
		tokens, err := engine.Recognize(image, lang, ProfileDefault)
		if err != nil {
			continue
		}
		if conf := meanTokenConfidence(tokens); conf > bestConfidence {
			bestConfidence = conf
			best = lang
		}
	}

	if bestConfidence > detectionFloor {
		return best
	}
	return "eng"
}

// meanTokenConfidence averages the confidence of tokens that carry actual
// text and a positive confidence, mirroring what a zero-threshold
// extraction would report.
func meanTokenConfidence(tokens []model.Token) float64 {
	var sum float64
	n := 0
	for _, tok := range tokens {
		if tok.Confidence > 0 && strings.TrimSpace(tok.Text) != "" {
			sum += tok.Confidence
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}
