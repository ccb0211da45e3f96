package models

import "time"

type FAQCategory struct {
	ID           string                   `gorm:"primaryKey;type:varchar(36)" json:"id" example:"0b7e6c1e-5c43-4f0e-9a38-6d3c1c2f9d11"`
	LogoData     *FileData                `gorm:"type:jsonb" json:"logo_data,omitempty"`
	Status       Status                   `gorm:"type:varchar(16);index;not null;default:ACTIVE" json:"status" example:"ACTIVE"`
	Order        int                      `gorm:"column:sort_order;index;not null;default:0" json:"order" example:"0"`
	Translations []FAQCategoryTranslation `gorm:"foreignKey:CategoryID" json:"translations,omitempty"`
	FAQs         []FAQ                    `gorm:"foreignKey:CategoryID" json:"faqs,omitempty"`
	Translation  *FAQCategoryTranslation  `gorm:"-" json:"translation,omitempty"`
	CreatedAt    time.Time                `json:"created_at"`
	UpdatedAt    time.Time                `json:"updated_at"`
}

func (FAQCategory) TableName() string {
	return "faq_categories"
}

type FAQCategoryTranslation struct {
	ID          string       `gorm:"primaryKey;type:varchar(36)" json:"id"`
	CategoryID  string       `gorm:"type:varchar(36);index;not null" json:"category_id"`
	Lang        LanguageCode `gorm:"type:varchar(8);index;not null" json:"lang" example:"en"`
	Name        string       `gorm:"not null" json:"name" example:"Billing"`
	Description *string      `gorm:"type:text" json:"description,omitempty" example:"Payments, invoices and refunds"`
	CreatedAt   time.Time    `gorm:"index" json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

func (FAQCategoryTranslation) TableName() string {
	return "faq_category_translations"
}

func (t FAQCategoryTranslation) TranslationID() string         { return t.ID }
func (t FAQCategoryTranslation) TranslationLang() LanguageCode { return t.Lang }

// FAQCategoryTranslationInput is a submitted category translation.
type FAQCategoryTranslationInput struct {
	Lang        LanguageCode `json:"lang" example:"en"`
	Name        string       `json:"name" example:"Billing"`
	Description *string      `json:"description,omitempty" example:"Payments, invoices and refunds"`
}

func (t FAQCategoryTranslationInput) TranslationLang() LanguageCode { return t.Lang }

// StatusCounts is the number of categories per status.
type StatusCounts struct {
	All      int64 `json:"all" example:"12"`
	Active   int64 `json:"ACTIVE" example:"9"`
	Inactive int64 `json:"INACTIVE" example:"2"`
	Archived int64 `json:"ARCHIVED" example:"1"`
}

// FAQCategoryInput is a category save request.
type FAQCategoryInput struct {
	LogoData     *FileData                     `json:"logo_data,omitempty"`
	Status       Status                        `json:"status" example:"ACTIVE"`
	Translations []FAQCategoryTranslationInput `json:"translations"`
}
