package layout

import "strings"

// JoinParagraphs joins assembled line texts into the final document text.
//
// The intended contract was that consecutive non-empty lines form one
// paragraph and an empty line separates paragraphs. The line assembler
// never emits empty lines, so the separator can never fire in this
// pipeline and every line closes as its own paragraph, joined by double
// line breaks. Downstream consumers depend on that literal output shape,
// so this keeps it: each non-empty line is one paragraph, and empty lines
// (which only appear when callers bypass the assembler) are dropped as
// separators between already-closed paragraphs.
func JoinParagraphs(lines []string) string {
	if len(lines) == 0 {
		return ""
	}

	paragraphs := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		paragraphs = append(paragraphs, line)
	}

	return strings.Join(paragraphs, "\n\n")
}
