package text

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Clean normalizes reconstructed text with the default pipeline:
// whitespace collapse, artifact substitution, and sentence capitalization,
// in that order.
//
// The substitution stage is destructive: it rewrites every digit 0 and 1
// on the assumption they are misrecognized letters, which corrupts genuine
// numeric content. Callers that need digits intact should compose the
// stages themselves and leave SubstituteArtifacts out.
func Clean(s string) string {
	if s == "" {
		return ""
	}
	s = CollapseWhitespace(s)
	s = SubstituteArtifacts(s)
	s = CapitalizeSentences(s)
	return s
}

// CollapseWhitespace reduces every run of whitespace, newlines included, to
// a single space and trims the ends. Paragraph boundaries do not survive
// this stage.
func CollapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// artifactSubstitutions are the fixed recognition-artifact rewrites, in
// application order. Pipe to capital I, zero to capital O, one to
// lowercase l: shapes engines commonly confuse in print fonts.
var artifactSubstitutions = [][2]string{
	{"|", "I"},
	{"0", "O"},
	{"1", "l"},
}

// SubstituteArtifacts applies the fixed character substitutions over the
// whole string. The rewrite is irreversible.
func SubstituteArtifacts(s string) string {
	for _, sub := range artifactSubstitutions {
		s = strings.ReplaceAll(s, sub[0], sub[1])
	}
	return s
}

// CapitalizeSentences upper-cases the first character of each sentence,
// where sentences are the fragments around the literal separator ". ".
// Only the first character changes case; the rest of the fragment is left
// untouched. Fragments that are empty or whitespace-only are dropped
// before rejoining.
func CapitalizeSentences(s string) string {
	fragments := strings.Split(s, ". ")
	kept := make([]string, 0, len(fragments))
	for _, frag := range fragments {
		if strings.TrimSpace(frag) == "" {
			continue
		}
		kept = append(kept, upperFirst(frag))
	}
	return strings.Join(kept, ". ")
}

// upperFirst upper-cases the first rune of s.
func upperFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError && size <= 1 {
		return s
	}
	upper := unicode.ToUpper(r)
	if upper == r {
		return s
	}
	return string(upper) + s[size:]
}
