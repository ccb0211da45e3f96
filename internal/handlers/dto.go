package handlers

import (
	"faq-backend/internal/models"
	"faq-backend/internal/translation"
)

// CategoryRequest is the body of category create and update calls.
type CategoryRequest struct {
	LogoData     *models.FileData                     `json:"logo_data,omitempty"`
	Status       models.Status                        `json:"status" example:"ACTIVE"`
	Translations []models.FAQCategoryTranslationInput `json:"translations"`
}

func (r CategoryRequest) toInput() models.FAQCategoryInput {
	return models.FAQCategoryInput{
		LogoData:     r.LogoData,
		Status:       r.Status,
		Translations: r.Translations,
	}
}

// FAQRequest is the body of FAQ create and update calls.
type FAQRequest struct {
	CategoryID   string                       `json:"category_id" example:"0b7e6c1e-5c43-4f0e-9a38-6d3c1c2f9d11"`
	Tags         []string                     `json:"tags"`
	Status       models.Status                `json:"status" example:"ACTIVE"`
	Order        *int                         `json:"order,omitempty"`
	Translations []models.FAQTranslationInput `json:"translations"`
}

func (r FAQRequest) toInput() models.FAQInput {
	return models.FAQInput{
		CategoryID:   r.CategoryID,
		Tags:         r.Tags,
		Status:       r.Status,
		Order:        r.Order,
		Translations: r.Translations,
	}
}

type OrderRequest struct {
	Order *int `json:"order" example:"3"`
}

// ReconcileFailure is returned in data when some translation writes failed.
type ReconcileFailure struct {
	ParentID       string                `json:"parent_id"`
	Failed         []translation.Outcome `json:"failed"`
	DeletesSkipped bool                  `json:"deletes_skipped"`
}
