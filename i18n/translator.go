package i18n

import "strings"

// Translator retrieves localized messages for Issue codes.
// data provides optional metadata to embed in the message (for example,
// "property" or "scheme").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

var dictionaries = map[string]map[string]string{
	"en": {
		"generic":               "{message}",
		"io":                    "i/o error",
		"parse_error":           "cannot parse URL {value}",
		"invalid_scheme":        "invalid URL scheme '{scheme}'. Must be one of 'http'|'https'",
		"invalid_secure_scheme": "invalid URL scheme '{scheme}'. URL must start with 'https://'",
		"invalid_extension":     "invalid image extension '{extension}'. Only png|jpg|jpeg|gif|webp images are allowed",
		"incomplete_dimensions": "incomplete dimensions: missing '{dimension}', values for both 'width' and 'height' are required",
		"required":              "required property '{property}' missing",
		"invalid_format":        "invalid date/time '{value}'",
		"locale_empty":          "locale must not be empty",
		"locale_length":         "locale must have exactly 5 characters, got {length}",
		"locale_format":         "locale '{value}' is not in language_TERRITORY form",
		"locale_language":       "unknown ISO 639-1 language code '{language}'",
		"locale_country":        "unknown ISO 3166 country code '{country}'",
	},
	"ja": {
		"generic":               "{message}",
		"io":                    "入出力エラー",
		"parse_error":           "URL を解析できません: {value}",
		"invalid_scheme":        "URL スキーム '{scheme}' は不正です（http または https のみ）",
		"invalid_secure_scheme": "URL スキーム '{scheme}' は不正です（https のみ）",
		"invalid_extension":     "画像拡張子 '{extension}' は許可されていません",
		"incomplete_dimensions": "寸法が不完全です: '{dimension}' がありません",
		"required":              "必須プロパティ '{property}' が不足しています",
		"invalid_format":        "日時 '{value}' の形式が不正です",
		"locale_empty":          "ロケールが空です",
		"locale_length":         "ロケールは 5 文字である必要があります（{length} 文字）",
		"locale_format":         "ロケール '{value}' は language_TERRITORY 形式ではありません",
		"locale_language":       "不明な ISO 639-1 言語コード '{language}'",
		"locale_country":        "不明な ISO 3166 国コード '{country}'",
	},
}

func (t dictTranslator) Message(code string, data map[string]string) string {
	dict, ok := dictionaries[t.lang]
	if !ok {
		dict = dictionaries["en"]
	}
	tmpl, ok := dict[code]
	if !ok {
		return code
	}
	return expand(tmpl, data)
}

// expand substitutes {key} placeholders; unknown keys are left as-is.
func expand(tmpl string, data map[string]string) string {
	if len(data) == 0 || !strings.Contains(tmpl, "{") {
		return tmpl
	}
	pairs := make([]string, 0, len(data)*2)
	for k, v := range data {
		pairs = append(pairs, "{"+k+"}", v)
	}
	return strings.NewReplacer(pairs...).Replace(tmpl)
}

var currentTranslator Translator = dictTranslator{lang: "en"}

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) {
	if lang != "ja" {
		lang = "en"
	}
	currentTranslator = dictTranslator{lang: lang}
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version).
func SetTranslator(tr Translator) {
	if tr == nil {
		currentTranslator = dictTranslator{lang: "en"}
		return
	}
	currentTranslator = tr
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string { return currentTranslator.Message(code, data) }
