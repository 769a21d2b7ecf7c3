package text

import (
	"regexp"

	"github.com/scantext/scantext/model"
)

// Entity category patterns. Each pass scans the full input independently,
// so a digit group may surface in more than one category (a phone number's
// groups also match as numbers); that overlap is part of the contract.
var (
	emailPattern  = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Z|a-z]{2,}\b`)
	phonePattern  = regexp.MustCompile(`(\+\d{1,3}[-.\s]?)?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`)
	urlPattern    = regexp.MustCompile(`http[s]?://(?:[a-zA-Z]|[0-9]|[$-_@.&+]|[!*\(\),]|(?:%[0-9a-fA-F][0-9a-fA-F]))+`)
	numberPattern = regexp.MustCompile(`\b\d+(?:\.\d+)?\b`)
	datePattern   = regexp.MustCompile(`\b\d{1,2}[/-]\d{1,2}[/-]\d{2,4}\b`)
)

// ExtractEntities scans text for structured entities: emails, phone
// numbers, URLs, numbers, and dates. Matches are returned per category in
// order of first occurrence, duplicates preserved, in their originally
// matched form (phone numbers keep whatever separators appeared in the
// text). The URL pattern is deliberately permissive and may carry trailing
// punctuation; no structural validation is performed.
func ExtractEntities(text string) model.StructuredData {
	return model.StructuredData{
		Emails:       findAll(emailPattern, text),
		PhoneNumbers: findAll(phonePattern, text),
		URLs:         findAll(urlPattern, text),
		Numbers:      findAll(numberPattern, text),
		Dates:        findAll(datePattern, text),
	}
}

// findAll returns all matches of re in text, or an empty (non-nil) slice.
func findAll(re *regexp.Regexp, text string) []string {
	matches := re.FindAllString(text, -1)
	if matches == nil {
		return []string{}
	}
	return matches
}
