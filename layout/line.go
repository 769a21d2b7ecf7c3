package layout

import (
	"strings"

	"github.com/scantext/scantext/model"
)

// Line is a group of tokens sharing a vertical band, rendered as their
// trimmed texts joined by single spaces in arrival order. Lines exist only
// during assembly; downstream consumers see their rendered text.
type Line struct {
	// Text is the space-joined rendering of the line's tokens.
	Text string

	// Tokens are the contributing tokens in arrival order.
	Tokens []model.Token

	// Box is the union of the token bounding boxes.
	Box model.Box
}

// LineConfig holds configuration for line assembly.
type LineConfig struct {
	// HeightTolerance is the Y-distance threshold for starting a new line,
	// as a fraction of the current line's reference height (default: 0.5).
	HeightTolerance float64
}

// DefaultLineConfig returns the default line assembly configuration.
func DefaultLineConfig() LineConfig {
	return LineConfig{
		HeightTolerance: 0.5,
	}
}

// LineAssembler groups filtered tokens into lines with a single forward
// pass. A token joins the current line when its Y position is within the
// tolerance band of the line's reference Y; otherwise the current line is
// closed and the token opens a new one with itself as the new reference.
// Membership depends only on the immediately preceding line's reference,
// never on global reclustering.
type LineAssembler struct {
	config LineConfig
}

// NewLineAssembler creates a line assembler with default configuration.
func NewLineAssembler() *LineAssembler {
	return &LineAssembler{
		config: DefaultLineConfig(),
	}
}

// NewLineAssemblerWithConfig creates a line assembler with custom
// configuration.
func NewLineAssemblerWithConfig(config LineConfig) *LineAssembler {
	return &LineAssembler{
		config: config,
	}
}

// Assemble clusters tokens into lines. Input must already be in raster
// order (see the package comment). Tokens whose text is empty or
// whitespace-only after trimming are skipped entirely: they open no line
// and contribute no confidence or box.
func (a *LineAssembler) Assemble(tokens []model.Token) []Line {
	var lines []Line

	var current []model.Token
	var texts []string
	var lineY, lineH int

	for _, tok := range tokens {
		text := strings.TrimSpace(tok.Text)
		if text == "" {
			continue
		}

		if len(current) == 0 {
			// First token opens the line and sets the reference band.
			lineY = tok.Y
			lineH = tok.Height
			current = append(current, tok)
			texts = append(texts, text)
			continue
		}

		if exceedsBand(tok.Y, lineY, lineH, a.config.HeightTolerance) {
			lines = append(lines, buildLine(texts, current))
			current = []model.Token{tok}
			texts = []string{text}
			lineY = tok.Y
			lineH = tok.Height
		} else {
			current = append(current, tok)
			texts = append(texts, text)
		}
	}

	if len(current) > 0 {
		lines = append(lines, buildLine(texts, current))
	}

	return lines
}

// exceedsBand reports whether y falls outside the current line's vertical
// band: abs(y - lineY) > lineH * tolerance.
func exceedsBand(y, lineY, lineH int, tolerance float64) bool {
	diff := y - lineY
	if diff < 0 {
		diff = -diff
	}
	return float64(diff) > float64(lineH)*tolerance
}

// buildLine renders the accumulated texts and computes the covering box.
func buildLine(texts []string, tokens []model.Token) Line {
	box := tokens[0].Box()
	for _, tok := range tokens[1:] {
		box = box.Union(tok.Box())
	}
	return Line{
		Text:   strings.Join(texts, " "),
		Tokens: tokens,
		Box:    box,
	}
}

// LineTexts returns the rendered text of each line, in order.
func LineTexts(lines []Line) []string {
	texts := make([]string, len(lines))
	for i, line := range lines {
		texts[i] = line.Text
	}
	return texts
}
