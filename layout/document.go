package layout

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// DocumentConfig holds configuration for the document-heuristic paragraph
// formatter.
type DocumentConfig struct {
	// ShortLineLength is the length (in runes) below which a line closes
	// the current paragraph (default: 50).
	ShortLineLength int

	// MaxShortWords is the word count at or below which a period-terminated
	// line counts as a very short sentence (default: 3).
	MaxShortWords int
}

// DefaultDocumentConfig returns the default document formatting
// configuration.
func DefaultDocumentConfig() DocumentConfig {
	return DocumentConfig{
		ShortLineLength: 50,
		MaxShortWords:   3,
	}
}

// excessBreaks matches runs of three or more line breaks. Collapsing the
// whole run in one pass keeps the cleanup idempotent.
var excessBreaks = regexp.MustCompile(`\n{3,}`)

// DocumentFormatter re-segments already-joined text into paragraphs using
// line-content heuristics. It is used for long-document extraction, where
// the per-line paragraphs of the simple joiner read poorly.
//
// The formatter is a single-state accumulator: each cleaned line is added
// to the current paragraph, and the paragraph closes when the line looks
// like an ending (short line, sentence-final punctuation, all-caps heading,
// or a very short period-terminated sentence) and the paragraph already
// held earlier lines. A break-looking line that opens a fresh paragraph
// does not close it by itself; it waits for a following line. Downstream
// consumers depend on this exact segmentation, quirks included.
type DocumentFormatter struct {
	config DocumentConfig
}

// NewDocumentFormatter creates a document formatter with default
// configuration.
func NewDocumentFormatter() *DocumentFormatter {
	return &DocumentFormatter{
		config: DefaultDocumentConfig(),
	}
}

// NewDocumentFormatterWithConfig creates a document formatter with custom
// configuration.
func NewDocumentFormatterWithConfig(config DocumentConfig) *DocumentFormatter {
	return &DocumentFormatter{
		config: config,
	}
}

// Format rebuilds the paragraph structure of text. Lines are split on
// single line breaks, trimmed, and internally collapsed to single spaces;
// lines that become empty are dropped. The surviving lines are grouped by
// the closing heuristic, joined by double line breaks, and the result has
// runs of three or more line breaks collapsed to two and surrounding
// whitespace trimmed.
func (f *DocumentFormatter) Format(text string) string {
	if text == "" {
		return text
	}

	var cleaned []string
	for _, line := range strings.Split(text, "\n") {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		cleaned = append(cleaned, strings.Join(fields, " "))
	}

	var paragraphs []string
	var current []string

	for _, line := range cleaned {
		if f.closesParagraph(line) && len(current) > 0 {
			current = append(current, line)
			paragraphs = append(paragraphs, strings.Join(current, " "))
			current = nil
		} else {
			current = append(current, line)
		}
	}

	if len(current) > 0 {
		paragraphs = append(paragraphs, strings.Join(current, " "))
	}

	result := strings.Join(paragraphs, "\n\n")
	result = CollapseBreaks(result)
	return strings.TrimSpace(result)
}

// closesParagraph reports whether a line looks like a paragraph ending.
func (f *DocumentFormatter) closesParagraph(line string) bool {
	if utf8.RuneCountInString(line) < f.config.ShortLineLength {
		return true
	}
	if strings.HasSuffix(line, ".") || strings.HasSuffix(line, "!") || strings.HasSuffix(line, "?") {
		return true
	}
	if isAllUpper(line) {
		return true
	}
	// Very short period-terminated sentence.
	if len(strings.Fields(line)) <= f.config.MaxShortWords && strings.HasSuffix(line, ".") {
		return true
	}
	return false
}

// isAllUpper reports whether the line is entirely uppercase: it contains at
// least one cased character and none of them are lowercase.
func isAllUpper(s string) bool {
	hasUpper := false
	for _, r := range s {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsUpper(r) {
			hasUpper = true
		}
	}
	return hasUpper
}

// CollapseBreaks reduces any run of three or more consecutive line breaks
// to exactly two. Applying it twice yields the same result as applying it
// once.
func CollapseBreaks(s string) string {
	return excessBreaks.ReplaceAllString(s, "\n\n")
}
