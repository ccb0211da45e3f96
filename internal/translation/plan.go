// Package translation keeps a parent entity's per-language translation rows
// in sync with a submitted set, one stored row per language.
package translation

import "faq-backend/internal/models"

// Localized is anything carrying a language code.
type Localized interface {
	TranslationLang() models.LanguageCode
}

// Stored is a persisted translation row.
type Stored interface {
	Localized
	TranslationID() string
}

// PlannedUpdate overwrites the localized fields of an existing row.
type PlannedUpdate[S Localized] struct {
	ID    string
	Input S
}

// Plan is the set of writes that brings the stored rows in line with a submission.
type Plan[R Stored, S Localized] struct {
	Creates []S
	Updates []PlannedUpdate[S]
	Deletes []R
}

func (p Plan[R, S]) Empty() bool {
	return len(p.Creates) == 0 && len(p.Updates) == 0 && len(p.Deletes) == 0
}

// Dedupe keeps the first submission for each language, preserving order.
func Dedupe[S Localized](submitted []S) []S {
	seen := make(map[models.LanguageCode]struct{}, len(submitted))
	unique := make([]S, 0, len(submitted))
	for _, s := range submitted {
		lang := s.TranslationLang()
		if _, ok := seen[lang]; ok {
			continue
		}
		seen[lang] = struct{}{}
		unique = append(unique, s)
	}
	return unique
}

// NewPlan diffs existing rows against a submission. The first existing row
// for a language, in the order given, is canonical: it is the one updated
// and the only one of that language that survives.
func NewPlan[R Stored, S Localized](existing []R, submitted []S) Plan[R, S] {
	unique := Dedupe(submitted)

	canonical := make(map[models.LanguageCode]R, len(existing))
	for _, rec := range existing {
		if _, ok := canonical[rec.TranslationLang()]; !ok {
			canonical[rec.TranslationLang()] = rec
		}
	}

	var plan Plan[R, S]
	keep := make(map[models.LanguageCode]struct{}, len(unique))
	for _, s := range unique {
		lang := s.TranslationLang()
		keep[lang] = struct{}{}
		if rec, ok := canonical[lang]; ok {
			plan.Updates = append(plan.Updates, PlannedUpdate[S]{ID: rec.TranslationID(), Input: s})
		} else {
			plan.Creates = append(plan.Creates, s)
		}
	}

	for _, rec := range existing {
		lang := rec.TranslationLang()
		if _, ok := keep[lang]; !ok {
			plan.Deletes = append(plan.Deletes, rec)
			continue
		}
		if rec.TranslationID() != canonical[lang].TranslationID() {
			plan.Deletes = append(plan.Deletes, rec)
		}
	}

	return plan
}
