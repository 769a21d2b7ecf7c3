package ocr

import (
	"sort"

	"golang.org/x/text/language"
)

// supportedLanguages maps Tesseract traineddata codes to human-readable
// names. It covers the standard traineddata set; the installed Tesseract
// may have fewer packs available (see Client.AvailableLanguages).
var supportedLanguages = map[string]string{
	"afr":          "Afrikaans",
	"amh":          "Amharic",
	"ara":          "Arabic",
	"asm":          "Assamese",
	"aze":          "Azerbaijani",
	"aze_cyrl":     "Azerbaijani (Cyrillic)",
	"bel":          "Belarusian",
	"ben":          "Bengali",
	"bod":          "Tibetan",
	"bos":          "Bosnian",
	"bre":          "Breton",
	"bul":          "Bulgarian",
	"cat":          "Catalan",
	"ceb":          "Cebuano",
	"ces":          "Czech",
	"chi_sim":      "Chinese (Simplified)",
	"chi_sim_vert": "Chinese (Simplified, Vertical)",
	"chi_tra":      "Chinese (Traditional)",
	"chi_tra_vert": "Chinese (Traditional, Vertical)",
	"chr":          "Cherokee",
	"cos":          "Corsican",
	"cym":          "Welsh",
	"dan":          "Danish",
	"deu":          "German",
	"div":          "Dhivehi",
	"dzo":          "Dzongkha",
	"ell":          "Greek",
	"eng":          "English",
	"enm":          "English (Middle)",
	"epo":          "Esperanto",
	"equ":          "Math/Equation",
	"est":          "Estonian",
	"eus":          "Basque",
	"fao":          "Faroese",
	"fas":          "Persian",
	"fil":          "Filipino",
	"fin":          "Finnish",
	"fra":          "French",
	"frk":          "German (Frankish)",
	"frm":          "French (Middle)",
	"fry":          "Frisian",
	"gla":          "Scottish Gaelic",
	"gle":          "Irish",
	"glg":          "Galician",
	"grc":          "Greek (Ancient)",
	"guj":          "Gujarati",
	"hat":          "Haitian Creole",
	"heb":          "Hebrew",
	"hin":          "Hindi",
	"hrv":          "Croatian",
	"hun":          "Hungarian",
	"hye":          "Armenian",
	"iku":          "Inuktitut",
	"ind":          "Indonesian",
	"isl":          "Icelandic",
	"ita":          "Italian",
	"ita_old":      "Italian (Old)",
	"jav":          "Javanese",
	"jpn":          "Japanese",
	"jpn_vert":     "Japanese (Vertical)",
	"kan":          "Kannada",
	"kat":          "Georgian",
	"kat_old":      "Georgian (Old)",
	"kaz":          "Kazakh",
	"khm":          "Khmer",
	"kir":          "Kyrgyz",
	"kmr":          "Kurdish (Kurmanji)",
	"kor":          "Korean",
	"kor_vert":     "Korean (Vertical)",
	"lao":          "Lao",
	"lat":          "Latin",
	"lav":          "Latvian",
	"lit":          "Lithuanian",
	"ltz":          "Luxembourgish",
	"mal":          "Malayalam",
	"mar":          "Marathi",
	"mkd":          "Macedonian",
	"mlt":          "Maltese",
	"mon":          "Mongolian",
	"mri":          "Maori",
	"msa":          "Malay",
	"mya":          "Burmese",
	"nep":          "Nepali",
	"nld":          "Dutch",
	"nor":          "Norwegian",
	"oci":          "Occitan",
	"osd":          "Orientation and Script Detection",
	"pan":          "Punjabi",
	"pol":          "Polish",
	"por":          "Portuguese",
	"pus":          "Pashto",
	"que":          "Quechua",
	"ron":          "Romanian",
	"rus":          "Russian",
	"san":          "Sanskrit",
	"sin":          "Sinhala",
	"slk":          "Slovak",
	"slv":          "Slovenian",
	"snd":          "Sindhi",
	"spa":          "Spanish",
	"spa_old":      "Spanish (Old)",
	"sqi":          "Albanian",
	"srp":          "Serbian",
	"srp_latn":     "Serbian (Latin)",
	"sun":          "Sundanese",
	"swa":          "Swahili",
	"swe":          "Swedish",
	"syr":          "Syriac",
	"tam":          "Tamil",
	"tat":          "Tatar",
	"tel":          "Telugu",
	"tgk":          "Tajik",
	"tha":          "Thai",
	"tir":          "Tigrinya",
	"ton":          "Tongan",
	"tur":          "Turkish",
	"uig":          "Uyghur",
	"ukr":          "Ukrainian",
	"urd":          "Urdu",
	"uzb":          "Uzbek",
	"uzb_cyrl":     "Uzbek (Cyrillic)",
	"vie":          "Vietnamese",
	"yid":          "Yiddish",
	"yor":          "Yoruba",
}

// Languages returns all supported Tesseract language codes, sorted.
func Languages() []string {
	codes := make([]string, 0, len(supportedLanguages))
	for code := range supportedLanguages {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// ValidateLanguage reports whether code names a supported language.
func ValidateLanguage(code string) bool {
	_, ok := supportedLanguages[code]
	return ok
}

// LanguageName returns the human-readable name for a language code, or the
// code itself when unknown.
func LanguageName(code string) string {
	if name, ok := supportedLanguages[code]; ok {
		return name
	}
	return code
}

// NormalizeLanguage maps a caller-supplied language hint to a Tesseract
// code. Codes already in the supported table pass through; otherwise the
// hint is parsed as a BCP-47 tag and its ISO 639-3 base is tried, so "en"
// and "en-US" both resolve to "eng". Hints that resolve to nothing come
// back unchanged for the engine to reject.
func NormalizeLanguage(code string) string {
	if code == "" {
		return code
	}
	if _, ok := supportedLanguages[code]; ok {
		return code
	}

	tag, err := language.Parse(code)
	if err != nil {
		return code
	}
	base, conf := tag.Base()
	if conf == language.No {
		return code
	}
	if iso3 := base.ISO3(); ValidateLanguage(iso3) {
		return iso3
	}
	return code
}
