package translation

import "faq-backend/internal/models"

// Resolve returns the translation for lang, falling back to the first one.
// ok is false only when translations is empty.
func Resolve[T Localized](translations []T, lang models.LanguageCode) (t T, ok bool) {
	if len(translations) == 0 {
		return t, false
	}
	for _, candidate := range translations {
		if candidate.TranslationLang() == lang {
			return candidate, true
		}
	}
	return translations[0], true
}
