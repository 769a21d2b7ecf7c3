package scantext

import (
	"fmt"
	"strings"

	"github.com/scantext/scantext/layout"
	"github.com/scantext/scantext/model"
	"github.com/scantext/scantext/ocr"
	"github.com/scantext/scantext/preprocess"
)

// Extractor provides a fluent interface for reconstructing text from an
// image or a pre-recognized token stream. Each configuration method
// returns a new Extractor instance, making chains safe to fork and reuse.
// An Extractor holds no shared mutable state; independent extractions may
// run concurrently.
type Extractor struct {
	// Source: exactly one of image or tokens is consulted.
	image     []byte
	tokens    []model.Token
	hasTokens bool

	// Engine handle. Nil means construct the default Tesseract client for
	// the call. Injected explicitly rather than held as a global.
	engine ocr.Engine

	options ExtractOptions
}

// FromImage creates an Extractor that recognizes the encoded image (PNG,
// JPEG, GIF) with the configured engine, then reconstructs its text.
func FromImage(data []byte) *Extractor {
	return &Extractor{
		image:   data,
		options: defaultOptions(),
	}
}

// FromTokens creates an Extractor over an already-recognized token stream.
// No engine is invoked; the tokens must be in raster order, as emitted by
// the recognition engine.
func FromTokens(tokens []model.Token) *Extractor {
	return &Extractor{
		tokens:    tokens,
		hasTokens: true,
		options:   defaultOptions(),
	}
}

// clone creates a copy of the Extractor with copied options.
func (e *Extractor) clone() *Extractor {
	newExt := *e
	newExt.options = e.options.clone()
	return &newExt
}

// Language sets the recognition language. Both Tesseract codes ("eng") and
// BCP-47 tags ("en", "en-US") are accepted; tags are normalized before the
// engine sees them. Default is "eng".
func (e *Extractor) Language(code string) *Extractor {
	newExt := e.clone()
	newExt.options.language = code
	return newExt
}

// Profile sets the recognition profile. Default is ocr.ProfileDefault.
func (e *Extractor) Profile(profile ocr.Profile) *Extractor {
	newExt := e.clone()
	newExt.options.profile = profile
	return newExt
}

// Threshold sets the confidence cutoff (0-100). Tokens must score strictly
// above it to be included; a threshold of 0 still excludes tokens at
// exactly 0. Default is 60.
func (e *Extractor) Threshold(threshold float64) *Extractor {
	newExt := e.clone()
	newExt.options.threshold = threshold
	return newExt
}

// Preprocess sets the image preparation stages run before recognition.
// Default is preprocess.DefaultOptions.
func (e *Extractor) Preprocess(opts preprocess.Options) *Extractor {
	newExt := e.clone()
	newExt.options.preprocess = opts
	newExt.options.skipPreprocess = false
	return newExt
}

// SkipPreprocess hands the image to the engine exactly as provided.
func (e *Extractor) SkipPreprocess() *Extractor {
	newExt := e.clone()
	newExt.options.skipPreprocess = true
	return newExt
}

// WithEngine injects the recognition engine handle used by terminal
// operations. Useful for pooled or stub engines and for tests.
func (e *Extractor) WithEngine(engine ocr.Engine) *Extractor {
	newExt := e.clone()
	newExt.engine = engine
	return newExt
}

// DocumentMode switches to the document recognition profile and re-segments
// the reconstructed text with the document paragraph heuristic, which reads
// better on long multi-paragraph pages.
func (e *Extractor) DocumentMode() *Extractor {
	newExt := e.clone()
	newExt.options.profile = ocr.ProfileDocument
	newExt.options.documentMode = true
	return newExt
}

// LineConfig overrides the line assembly configuration.
func (e *Extractor) LineConfig(config layout.LineConfig) *Extractor {
	newExt := e.clone()
	newExt.options.line = config
	return newExt
}

// DocumentConfig overrides the document paragraph heuristic configuration.
func (e *Extractor) DocumentConfig(config layout.DocumentConfig) *Extractor {
	newExt := e.clone()
	newExt.options.document = config
	return newExt
}

// Extract runs the full reconstruction pipeline: recognition (unless
// tokens were supplied), confidence filtering, line assembly, and
// paragraph joining. Faults of any kind are returned as a failed result;
// zero surviving tokens is not a fault and yields a successful result with
// empty text.
func (e *Extractor) Extract() *model.ExtractionResult {
	return e.extract(e.options.documentMode, false)
}

// ExtractDocument is Extract with DocumentMode applied: the document
// recognition profile plus heuristic paragraph re-segmentation.
func (e *Extractor) ExtractDocument() *model.ExtractionResult {
	return e.DocumentMode().Extract()
}

// ExtractParagraphs is ExtractDocument plus paragraph metadata: the result
// carries ParagraphCount and AvgParagraphWords for the reconstructed text.
func (e *Extractor) ExtractParagraphs() *model.ExtractionResult {
	return e.DocumentMode().extract(true, true)
}

// Words recognizes the image and returns every detected word with its
// confidence and bounding box, for visualization overlays. Unlike Extract,
// no line or paragraph reconstruction happens and the confidence cutoff is
// fixed at strictly-above-zero.
func (e *Extractor) Words() ([]model.Word, error) {
	language := ocr.NormalizeLanguage(e.options.language)
	tokens, err := e.sourceTokens(language, e.options.profile)
	if err != nil {
		return nil, err
	}

	words := make([]model.Word, 0, len(tokens))
	for _, tok := range tokens {
		if tok.Confidence <= 0 {
			continue
		}
		text := strings.TrimSpace(tok.Text)
		if text == "" {
			continue
		}
		words = append(words, model.Word{
			Text:       text,
			Confidence: tok.Confidence,
			Box:        tok.Box(),
		})
	}
	return words, nil
}

// extract is the outer extraction boundary. Engine errors, malformed
// tokens, and panics are all converted into the failed-result shape here;
// nothing propagates to the caller.
func (e *Extractor) extract(documentMode, paragraphStats bool) (result *model.ExtractionResult) {
	language := ocr.NormalizeLanguage(e.options.language)
	profile := string(e.options.profile)

	defer func() {
		if r := recover(); r != nil {
			result = model.FailedResult(language, profile, fmt.Sprintf("extraction failed: %v", r))
		}
	}()

	tokens, err := e.sourceTokens(language, e.options.profile)
	if err != nil {
		return model.FailedResult(language, profile, err.Error())
	}
	for _, tok := range tokens {
		if err := tok.Validate(); err != nil {
			return model.FailedResult(language, profile, err.Error())
		}
	}

	filtered := layout.FilterTokens(tokens, e.options.threshold)
	lines := layout.NewLineAssemblerWithConfig(e.options.line).Assemble(filtered)

	// Per-token scores and boxes, index-aligned, in arrival order.
	scores := make([]float64, 0, len(filtered))
	boxes := make([]model.Box, 0, len(filtered))
	for _, line := range lines {
		for _, tok := range line.Tokens {
			scores = append(scores, tok.Confidence)
			boxes = append(boxes, tok.Box())
		}
	}

	lineTexts := layout.LineTexts(lines)
	fullText := layout.JoinParagraphs(lineTexts)
	if documentMode {
		fullText = layout.NewDocumentFormatterWithConfig(e.options.document).Format(fullText)
	}

	result = &model.ExtractionResult{
		Text:             fullText,
		Lines:            lineTexts,
		Confidence:       meanScore(scores),
		ConfidenceScores: scores,
		BoundingBoxes:    boxes,
		Language:         language,
		Profile:          profile,
		Success:          true,
	}

	if paragraphStats {
		result.ParagraphCount, result.AvgParagraphWords = paragraphMetadata(fullText)
	}
	return result
}

// sourceTokens yields the token stream: the supplied tokens, or the result
// of preprocessing and recognizing the image.
func (e *Extractor) sourceTokens(language string, profile ocr.Profile) ([]model.Token, error) {
	if e.hasTokens {
		return e.tokens, nil
	}

	data := e.image
	if !e.options.skipPreprocess {
		img, err := preprocess.Decode(data)
		if err != nil {
			return nil, err
		}
		processed := preprocess.Apply(img, e.options.preprocess)
		data, err = preprocess.EncodePNG(processed)
		if err != nil {
			return nil, err
		}
	}

	engine := e.engine
	if engine == nil {
		client, err := ocr.New()
		if err != nil {
			return nil, err
		}
		defer client.Close()
		engine = client
	}
	return engine.Recognize(data, language, profile)
}

// meanScore returns the arithmetic mean, or 0 for an empty slice.
func meanScore(scores []float64) float64 {
	if len(scores) == 0 {
		return 0
	}
	sum := 0.0
	for _, s := range scores {
		sum += s
	}
	return sum / float64(len(scores))
}

// paragraphMetadata counts the paragraphs of text and their mean word
// count.
func paragraphMetadata(text string) (count int, avgWords float64) {
	var totalWords int
	for _, para := range strings.Split(text, "\n\n") {
		if strings.TrimSpace(para) == "" {
			continue
		}
		count++
		totalWords += len(strings.Fields(para))
	}
	if count == 0 {
		return 0, 0
	}
	return count, float64(totalWords) / float64(count)
}
