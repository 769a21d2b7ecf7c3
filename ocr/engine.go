package ocr

import (
	"sort"

	"github.com/scantext/scantext/model"
)

// Engine is the recognition-engine contract: one image in, one ordered
// token stream out. The call is synchronous and opaque; any engine-side
// fault surfaces as the returned error. Tokens are expected in raster
// order (left-to-right within a line, top-to-bottom across lines), which
// is what Tesseract emits for word-level iteration.
type Engine interface {
	Recognize(image []byte, language string, profile Profile) ([]model.Token, error)
}

// Settings are the engine-level knobs a recognition profile maps to: a
// page segmentation mode and a set of engine variables.
type Settings struct {
	// PSM is the Tesseract page segmentation mode.
	PSM int

	// Variables are engine variables applied before recognition
	// (e.g. preserve_interword_spaces, tessedit_char_whitelist).
	Variables map[string]string
}

// Profile names a recognition preset. Each profile maps to a fixed set of
// engine settings; unknown profile names fall back to the default preset.
type Profile string

// Recognition profiles.
const (
	ProfileDefault        Profile = "default"
	ProfileParagraphs     Profile = "paragraphs"
	ProfileLongParagraphs Profile = "long_paragraphs"
	ProfileDocument       Profile = "document"
	ProfileSingleLine     Profile = "single_line"
	ProfileSingleWord     Profile = "single_word"
	ProfileSingleChar     Profile = "single_char"
	ProfileSparseText     Profile = "sparse_text"
	ProfileSparseTextOSD  Profile = "sparse_text_osd"
	ProfileRawLine        Profile = "raw_line"
	ProfileUniformBlock   Profile = "uniform_block"
	ProfileNumbersOnly    Profile = "numbers_only"
	ProfileLettersOnly    Profile = "letters_only"
	ProfileLongText       Profile = "long_text"
	ProfileAcademic       Profile = "academic"
	ProfileNewspaper      Profile = "newspaper"
	ProfileHandwritten    Profile = "handwritten"
)

const (
	lettersWhitelist = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"
	digitsWhitelist  = "0123456789"
)

// preserveSpaces keeps inter-word spacing intact, which helps the line
// assembler on dense document pages.
var preserveSpaces = map[string]string{"preserve_interword_spaces": "1"}

var profileSettings = map[Profile]Settings{
	ProfileDefault:        {PSM: 6},
	ProfileParagraphs:     {PSM: 6, Variables: preserveSpaces},
	ProfileLongParagraphs: {PSM: 6, Variables: preserveSpaces},
	ProfileDocument:       {PSM: 6, Variables: preserveSpaces},
	ProfileSingleLine:     {PSM: 7},
	ProfileSingleWord:     {PSM: 8},
	ProfileSingleChar:     {PSM: 10},
	ProfileSparseText:     {PSM: 11},
	ProfileSparseTextOSD:  {PSM: 12},
	ProfileRawLine:        {PSM: 13},
	ProfileUniformBlock:   {PSM: 6, Variables: map[string]string{"tessedit_char_whitelist": digitsWhitelist + lettersWhitelist}},
	ProfileNumbersOnly:    {PSM: 6, Variables: map[string]string{"tessedit_char_whitelist": digitsWhitelist}},
	ProfileLettersOnly:    {PSM: 6, Variables: map[string]string{"tessedit_char_whitelist": lettersWhitelist}},
	ProfileLongText:       {PSM: 6, Variables: preserveSpaces},
	ProfileAcademic:       {PSM: 6, Variables: preserveSpaces},
	ProfileNewspaper:      {PSM: 6, Variables: preserveSpaces},
	ProfileHandwritten:    {PSM: 6, Variables: preserveSpaces},
}

// Settings returns the engine settings for the profile. Unknown profiles
// use the default preset.
func (p Profile) Settings() Settings {
	if s, ok := profileSettings[p]; ok {
		return s
	}
	return profileSettings[ProfileDefault]
}

// Known reports whether p names a defined profile.
func (p Profile) Known() bool {
	_, ok := profileSettings[p]
	return ok
}

// Profiles returns all defined profile names, sorted.
func Profiles() []Profile {
	profiles := make([]Profile, 0, len(profileSettings))
	for p := range profileSettings {
		profiles = append(profiles, p)
	}
	sort.Slice(profiles, func(i, j int) bool { return profiles[i] < profiles[j] })
	return profiles
}
