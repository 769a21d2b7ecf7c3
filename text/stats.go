package text

import (
	"strings"
	"unicode/utf8"

	"github.com/scantext/scantext/model"
)

// Stats computes summary statistics for text. Characters counts runes with
// every space character removed (other whitespace still counts); sentences
// and paragraphs count the non-blank segments between periods and line
// breaks respectively. Empty input yields all zeros.
func Stats(text string) model.TextStatistics {
	if text == "" {
		return model.TextStatistics{}
	}

	return model.TextStatistics{
		Characters: utf8.RuneCountInString(strings.ReplaceAll(text, " ", "")),
		Words:      len(strings.Fields(text)),
		Sentences:  countNonBlank(strings.Split(text, ".")),
		Paragraphs: countNonBlank(strings.Split(text, "\n")),
	}
}

// countNonBlank counts segments that contain something other than
// whitespace.
func countNonBlank(segments []string) int {
	n := 0
	for _, seg := range segments {
		if strings.TrimSpace(seg) != "" {
			n++
		}
	}
	return n
}
