package ogp

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/language"
)

var localeRE = regexp.MustCompile(`^[a-zA-Z]{2}_[a-zA-Z]{2}$`)

// notAssigned holds the ISO 3166 codes that the region table still parses
// but that name no current country: exceptional and transitional
// reservations, withdrawn codes and UN-only groupings.
var notAssigned = map[string]struct{}{
	"AC": {}, "AN": {}, "BU": {}, "CP": {}, "CS": {}, "DD": {}, "DG": {},
	"EA": {}, "EU": {}, "EZ": {}, "FX": {}, "IC": {}, "NT": {}, "SU": {},
	"TA": {}, "TP": {}, "UK": {}, "UN": {}, "YU": {}, "ZR": {},
}

// ValidateLocale checks a language_TERRITORY locale such as "en_US".
//
// Layers run in order and the first failure decides the code: empty, length
// (exactly 5 characters), shape, ISO 639-1 language, ISO 3166 country. The
// country must be an officially assigned code as written: aliases such as UK
// (canonically GB) and reserved codes such as EU or UN are rejected.
func ValidateLocale(locale string) error {
	if locale == "" {
		return newIssue("/", CodeLocaleEmpty, nil)
	}
	if n := utf8.RuneCountInString(locale); n != 5 {
		return newIssue("/", CodeLocaleLength, nil, "length", strconv.Itoa(n))
	}
	if !localeRE.MatchString(locale) {
		return newIssue("/", CodeLocaleFormat, nil, "value", locale)
	}
	lang, country := locale[:2], locale[3:]
	if _, err := language.ParseBase(lang); err != nil {
		return newIssue("/", CodeLocaleLanguage, err, "language", lang)
	}
	r, err := language.ParseRegion(country)
	if err != nil {
		return newIssue("/", CodeLocaleCountry, err, "country", country)
	}
	cc := strings.ToUpper(country)
	if _, bad := notAssigned[cc]; bad || r.String() != cc || !r.IsCountry() || r.IsPrivateUse() {
		return newIssue("/", CodeLocaleCountry, nil, "country", country)
	}
	return nil
}
