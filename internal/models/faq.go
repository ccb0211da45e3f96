package models

import "time"

type FAQ struct {
	ID           string           `gorm:"primaryKey;type:varchar(36)" json:"id" example:"5f1d7a0c-2b8e-4c55-8d7e-0e4b1c6a7f22"`
	CategoryID   string           `gorm:"type:varchar(36);index;not null" json:"category_id"`
	Category     *FAQCategory     `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Tags         StringList       `gorm:"type:jsonb" json:"tags"`
	Status       Status           `gorm:"type:varchar(16);index;not null;default:ACTIVE" json:"status" example:"ACTIVE"`
	Order        int              `gorm:"column:sort_order;index;not null;default:0" json:"order" example:"0"`
	Translations []FAQTranslation `gorm:"foreignKey:FAQID" json:"translations,omitempty"`
	Translation  *FAQTranslation  `gorm:"-" json:"translation,omitempty"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
}

func (FAQ) TableName() string {
	return "faqs"
}

type FAQTranslation struct {
	ID        string       `gorm:"primaryKey;type:varchar(36)" json:"id"`
	FAQID     string       `gorm:"column:faq_id;type:varchar(36);index;not null" json:"faq_id"`
	Lang      LanguageCode `gorm:"type:varchar(8);index;not null" json:"lang" example:"en"`
	Question  string       `gorm:"type:text;not null" json:"question" example:"How do I reset my password?"`
	Answer    string       `gorm:"type:text;not null" json:"answer" example:"Use the Forgot password link on the sign-in page."`
	CreatedAt time.Time    `gorm:"index" json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}

func (FAQTranslation) TableName() string {
	return "faq_translations"
}

func (t FAQTranslation) TranslationID() string         { return t.ID }
func (t FAQTranslation) TranslationLang() LanguageCode { return t.Lang }

// FAQTranslationInput is a submitted FAQ translation.
type FAQTranslationInput struct {
	Lang     LanguageCode `json:"lang" example:"en"`
	Question string       `json:"question" example:"How do I reset my password?"`
	Answer   string       `json:"answer" example:"Use the Forgot password link on the sign-in page."`
}

func (t FAQTranslationInput) TranslationLang() LanguageCode { return t.Lang }

// FAQFilter narrows FAQ listings.
type FAQFilter struct {
	CategoryID string
	Status     Status
	Query      string
	Lang       LanguageCode
	Page       int
	Limit      int
}

const (
	DefaultPageLimit = 20
	MaxPageLimit     = 100
)

// Paginated returns f with page and limit defaulted and clamped to the
// values the listing is actually run with.
func (f FAQFilter) Paginated() FAQFilter {
	if f.Page < 1 {
		f.Page = 1
	}
	switch {
	case f.Limit < 1:
		f.Limit = DefaultPageLimit
	case f.Limit > MaxPageLimit:
		f.Limit = MaxPageLimit
	}
	return f
}

// FAQInput is an FAQ save request. Order is only applied on update, and only when set.
type FAQInput struct {
	CategoryID   string                `json:"category_id"`
	Tags         []string              `json:"tags"`
	Status       Status                `json:"status" example:"ACTIVE"`
	Order        *int                  `json:"order,omitempty"`
	Translations []FAQTranslationInput `json:"translations"`
}
