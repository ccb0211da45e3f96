package models

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// LanguageCode is an ISO 639-1 code from the set of supported content languages.
type LanguageCode string

const (
	LanguageEnglish    LanguageCode = "en"
	LanguageSpanish    LanguageCode = "es"
	LanguageFrench     LanguageCode = "fr"
	LanguagePortuguese LanguageCode = "pt"
	LanguageGerman     LanguageCode = "de"
	LanguageItalian    LanguageCode = "it"
	LanguageChinese    LanguageCode = "zh"
	LanguageJapanese   LanguageCode = "ja"
	LanguageKorean     LanguageCode = "ko"
	LanguageArabic     LanguageCode = "ar"
	LanguageRussian    LanguageCode = "ru"
	LanguageHindi      LanguageCode = "hi"
)

// SupportedLanguages lists every language a translation may be stored in.
var SupportedLanguages = []LanguageCode{
	LanguageEnglish, LanguageSpanish, LanguageFrench, LanguagePortuguese,
	LanguageGerman, LanguageItalian, LanguageChinese, LanguageJapanese,
	LanguageKorean, LanguageArabic, LanguageRussian, LanguageHindi,
}

// Language is the API projection of a supported language.
type Language struct {
	Code       LanguageCode `json:"code" example:"es"`
	Name       string       `json:"name" example:"Spanish"`
	NativeName string       `json:"native_name" example:"español"`
}

func (c LanguageCode) IsValid() bool {
	for _, l := range SupportedLanguages {
		if l == c {
			return true
		}
	}
	return false
}

func (c LanguageCode) String() string {
	return string(c)
}

// DisplayName returns the English name of the language (e.g. "Spanish").
func (c LanguageCode) DisplayName() string {
	tag, err := language.Parse(string(c))
	if err != nil {
		return string(c)
	}
	return display.English.Tags().Name(tag)
}

// NativeName returns the name of the language in that language (e.g. "español").
func (c LanguageCode) NativeName() string {
	tag, err := language.Parse(string(c))
	if err != nil {
		return string(c)
	}
	return display.Self.Name(tag)
}

// ParseLanguageCode normalizes BCP 47 style input ("EN", "pt_BR", "zh-Hant")
// to a supported base language code.
func ParseLanguageCode(s string) (LanguageCode, error) {
	s = strings.TrimSpace(strings.ReplaceAll(s, "_", "-"))
	if s == "" {
		return "", fmt.Errorf("language code is required")
	}

	tag, err := language.Parse(s)
	if err != nil {
		return "", fmt.Errorf("invalid language code %q: %w", s, err)
	}

	base, _ := tag.Base()
	code := LanguageCode(base.String())
	if !code.IsValid() {
		return "", fmt.Errorf("unsupported language code %q", s)
	}
	return code, nil
}

// Languages returns the API projection of every supported language.
func Languages() []Language {
	languages := make([]Language, 0, len(SupportedLanguages))
	for _, code := range SupportedLanguages {
		languages = append(languages, Language{
			Code:       code,
			Name:       code.DisplayName(),
			NativeName: code.NativeName(),
		})
	}
	return languages
}
