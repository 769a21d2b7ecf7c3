package scantext

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/scantext/scantext/model"
	"github.com/scantext/scantext/ocr"
)

// fakeEngine returns canned tokens or a canned error, standing in for the
// Tesseract client.
type fakeEngine struct {
	tokens   []model.Token
	err      error
	language string
	profile  ocr.Profile
}

func (f *fakeEngine) Recognize(image []byte, language string, profile ocr.Profile) ([]model.Token, error) {
	f.language = language
	f.profile = profile
	if f.err != nil {
		return nil, f.err
	}
	return f.tokens, nil
}

// sampleTokens is the canonical two-line token stream: "Hello World" on one
// band, "Foo" on the next.
func sampleTokens() []model.Token {
	return []model.Token{
		{Text: "Hello", Confidence: 70, X: 0, Y: 10, Width: 40, Height: 20},
		{Text: "World", Confidence: 70, X: 45, Y: 10, Width: 40, Height: 20},
		{Text: "Foo", Confidence: 70, X: 0, Y: 40, Width: 30, Height: 20},
	}
}

func TestExtract_FromTokens(t *testing.T) {
	result := FromTokens(sampleTokens()).Threshold(0).Extract()

	if !result.Success {
		t.Fatalf("Expected success, got error: %s", result.Error)
	}
	if result.Text != "Hello World\n\nFoo" {
		t.Errorf("Expected 'Hello World\\n\\nFoo', got %q", result.Text)
	}
	if len(result.Lines) != 2 || result.Lines[0] != "Hello World" || result.Lines[1] != "Foo" {
		t.Errorf("Unexpected lines: %v", result.Lines)
	}
	if result.Confidence != 70 {
		t.Errorf("Expected confidence 70, got %v", result.Confidence)
	}
}

func TestExtract_ScoresAndBoxesParallel(t *testing.T) {
	result := FromTokens(sampleTokens()).Threshold(0).Extract()

	if len(result.ConfidenceScores) != len(result.BoundingBoxes) {
		t.Fatalf("Scores and boxes must be parallel: %d vs %d",
			len(result.ConfidenceScores), len(result.BoundingBoxes))
	}
	if len(result.ConfidenceScores) != 3 {
		t.Errorf("Expected 3 entries, got %d", len(result.ConfidenceScores))
	}
	if result.BoundingBoxes[2].Y != 40 {
		t.Errorf("Expected third box from 'Foo', got %+v", result.BoundingBoxes[2])
	}
}

func TestExtract_ThresholdApplies(t *testing.T) {
	tokens := sampleTokens()
	tokens[1].Confidence = 50 // "World" drops below the cutoff

	result := FromTokens(tokens).Threshold(60).Extract()

	if !result.Success {
		t.Fatalf("Expected success, got error: %s", result.Error)
	}
	if result.Text != "Hello\n\nFoo" {
		t.Errorf("Expected 'Hello\\n\\nFoo', got %q", result.Text)
	}
	if len(result.ConfidenceScores) != 2 {
		t.Errorf("Expected 2 scores after filtering, got %d", len(result.ConfidenceScores))
	}
}

func TestExtract_EmptyIsSuccessNotFailure(t *testing.T) {
	result := FromTokens(nil).Extract()

	if !result.Success {
		t.Fatalf("Zero tokens is not a fault, got error: %s", result.Error)
	}
	if result.Text != "" {
		t.Errorf("Expected empty text, got %q", result.Text)
	}
	if result.Confidence != 0 {
		t.Errorf("Expected zero confidence, got %v", result.Confidence)
	}
	if len(result.ConfidenceScores) != 0 || len(result.BoundingBoxes) != 0 {
		t.Errorf("Expected empty scores and boxes, got %+v", result)
	}
}

func TestExtract_AllTokensFilteredIsSuccess(t *testing.T) {
	tokens := []model.Token{{Text: "faint", Confidence: 5, Width: 10, Height: 10}}

	result := FromTokens(tokens).Threshold(60).Extract()

	if !result.Success {
		t.Fatalf("Expected success, got error: %s", result.Error)
	}
	if result.Text != "" || result.Confidence != 0 {
		t.Errorf("Expected empty successful result, got %+v", result)
	}
}

func TestExtract_MalformedTokenFailsWholeCall(t *testing.T) {
	tokens := append(sampleTokens(), model.Token{Text: "bad", Confidence: math.NaN()})

	result := FromTokens(tokens).Extract()

	if result.Success {
		t.Fatal("Expected failure for malformed token")
	}
	if !strings.Contains(result.Error, "malformed token") {
		t.Errorf("Expected malformed token error, got %q", result.Error)
	}
	if result.Text != "" || len(result.Lines) != 0 {
		t.Errorf("Expected empty content on failure, got %+v", result)
	}
}

func TestExtract_EngineErrorBecomesFailedResult(t *testing.T) {
	engine := &fakeEngine{err: errors.New("tesseract exploded")}

	result := FromImage([]byte("irrelevant")).SkipPreprocess().WithEngine(engine).Extract()

	if result.Success {
		t.Fatal("Expected failure when the engine errors")
	}
	if !strings.Contains(result.Error, "tesseract exploded") {
		t.Errorf("Expected engine error surfaced, got %q", result.Error)
	}
	if result.Language != "eng" || result.Profile != "default" {
		t.Errorf("Expected invocation echo on failure, got %q/%q", result.Language, result.Profile)
	}
}

func TestExtract_UndecodableImageBecomesFailedResult(t *testing.T) {
	result := FromImage([]byte("not an image")).WithEngine(&fakeEngine{}).Extract()

	if result.Success {
		t.Fatal("Expected failure for an undecodable image")
	}
	if !strings.Contains(result.Error, "decode") {
		t.Errorf("Expected decode error, got %q", result.Error)
	}
}

func TestExtract_LanguageNormalized(t *testing.T) {
	engine := &fakeEngine{tokens: sampleTokens()}

	result := FromImage([]byte("img")).SkipPreprocess().WithEngine(engine).Language("en-US").Extract()

	if !result.Success {
		t.Fatalf("Expected success, got error: %s", result.Error)
	}
	if engine.language != "eng" {
		t.Errorf("Expected engine to see 'eng', got %q", engine.language)
	}
	if result.Language != "eng" {
		t.Errorf("Expected result language 'eng', got %q", result.Language)
	}
}

func TestExtractDocument_UsesDocumentProfile(t *testing.T) {
	engine := &fakeEngine{tokens: sampleTokens()}

	result := FromImage([]byte("img")).SkipPreprocess().WithEngine(engine).ExtractDocument()

	if !result.Success {
		t.Fatalf("Expected success, got error: %s", result.Error)
	}
	if engine.profile != ocr.ProfileDocument {
		t.Errorf("Expected document profile, got %q", engine.profile)
	}
	if result.Profile != "document" {
		t.Errorf("Expected result profile 'document', got %q", result.Profile)
	}
}

func TestExtractDocument_ReformatsParagraphs(t *testing.T) {
	// Both lines look like endings; the document heuristic merges them into
	// one paragraph where the simple joiner would keep them apart.
	tokens := []model.Token{
		{Text: "Short.", Confidence: 70, Y: 10, Width: 40, Height: 20},
		{Text: "Another short one.", Confidence: 70, Y: 40, Width: 40, Height: 20},
	}

	simple := FromTokens(tokens).Extract()
	document := FromTokens(tokens).ExtractDocument()

	if simple.Text != "Short.\n\nAnother short one." {
		t.Errorf("Unexpected simple text: %q", simple.Text)
	}
	if document.Text != "Short. Another short one." {
		t.Errorf("Unexpected document text: %q", document.Text)
	}
}

func TestExtractParagraphs_Metadata(t *testing.T) {
	tokens := []model.Token{
		{Text: "Short.", Confidence: 70, Y: 10, Width: 40, Height: 20},
		{Text: "Another short one.", Confidence: 70, Y: 40, Width: 40, Height: 20},
	}

	result := FromTokens(tokens).ExtractParagraphs()

	if !result.Success {
		t.Fatalf("Expected success, got error: %s", result.Error)
	}
	if result.ParagraphCount != 1 {
		t.Errorf("Expected 1 paragraph, got %d", result.ParagraphCount)
	}
	if result.AvgParagraphWords != 4 {
		t.Errorf("Expected 4 words per paragraph, got %v", result.AvgParagraphWords)
	}
}

func TestExtract_PlainExtractHasNoParagraphMetadata(t *testing.T) {
	result := FromTokens(sampleTokens()).Extract()

	if result.ParagraphCount != 0 || result.AvgParagraphWords != 0 {
		t.Errorf("Expected zero paragraph metadata, got %d/%v",
			result.ParagraphCount, result.AvgParagraphWords)
	}
}

func TestWords(t *testing.T) {
	tokens := []model.Token{
		{Text: " Hello ", Confidence: 70, X: 1, Y: 2, Width: 3, Height: 4},
		{Text: "  ", Confidence: 90},
		{Text: "zero", Confidence: 0},
		{Text: "World", Confidence: 55, X: 5, Y: 6, Width: 7, Height: 8},
	}

	words, err := FromTokens(tokens).Words()
	if err != nil {
		t.Fatalf("Words failed: %v", err)
	}

	if len(words) != 2 {
		t.Fatalf("Expected 2 words, got %d", len(words))
	}
	if words[0].Text != "Hello" || words[0].Box.X != 1 {
		t.Errorf("Unexpected first word: %+v", words[0])
	}
	if words[1].Text != "World" || words[1].Confidence != 55 {
		t.Errorf("Unexpected second word: %+v", words[1])
	}
}

func TestWords_EngineErrorPropagates(t *testing.T) {
	engine := &fakeEngine{err: errors.New("no engine")}

	if _, err := FromImage([]byte("img")).SkipPreprocess().WithEngine(engine).Words(); err == nil {
		t.Error("Expected error from Words when the engine fails")
	}
}

func TestExtractor_ChainsAreIndependent(t *testing.T) {
	base := FromTokens(sampleTokens())
	strict := base.Threshold(99)
	loose := base.Threshold(0)

	if r := strict.Extract(); r.Text != "" {
		t.Errorf("Strict chain should filter everything, got %q", r.Text)
	}
	if r := loose.Extract(); r.Text == "" {
		t.Error("Loose chain should keep everything")
	}
	// The base chain still carries the default threshold.
	if r := base.Extract(); r.Text == "" {
		t.Error("Base chain should be unaffected by forked chains")
	}
}

func TestMust(t *testing.T) {
	if got := Must(42, nil); got != 42 {
		t.Errorf("Expected 42, got %d", got)
	}

	defer func() {
		if recover() == nil {
			t.Error("Expected panic for non-nil error")
		}
	}()
	Must(0, errors.New("boom"))
}
