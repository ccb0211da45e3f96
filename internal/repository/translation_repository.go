package repository

import (
	"context"

	"faq-backend/internal/database"
	"faq-backend/internal/models"
	"faq-backend/internal/translation"

	"gorm.io/gorm/clause"
)

// CategoryTranslationRepository is the translation collection of FAQ categories.
type CategoryTranslationRepository = translation.Store[models.FAQCategoryTranslation, models.FAQCategoryTranslationInput]

// FAQTranslationRepository is the translation collection of FAQs.
type FAQTranslationRepository = translation.Store[models.FAQTranslation, models.FAQTranslationInput]

type categoryTranslationRepository struct {
	base
}

func NewCategoryTranslationRepository(db *database.Database) CategoryTranslationRepository {
	return &categoryTranslationRepository{base: newBase(db)}
}

func (r *categoryTranslationRepository) List(ctx context.Context, categoryID string) ([]models.FAQCategoryTranslation, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var rows []models.FAQCategoryTranslation
	err := orderedTranslations(r.db.WithContext(ctx)).
		Where("category_id = ?", categoryID).
		Find(&rows).Error
	return rows, err
}

func (r *categoryTranslationRepository) Create(ctx context.Context, categoryID string, in models.FAQCategoryTranslationInput) (models.FAQCategoryTranslation, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	row := models.FAQCategoryTranslation{
		CategoryID:  categoryID,
		Lang:        in.Lang,
		Name:        in.Name,
		Description: in.Description,
	}
	err := r.db.WithContext(ctx).Create(&row).Error
	return row, err
}

// Update overwrites the localized fields only; the language never changes.
func (r *categoryTranslationRepository) Update(ctx context.Context, id string, in models.FAQCategoryTranslationInput) (models.FAQCategoryTranslation, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	row := models.FAQCategoryTranslation{ID: id}
	result := r.db.WithContext(ctx).Model(&row).
		Clauses(clause.Returning{}).
		Updates(map[string]interface{}{
			"name":        in.Name,
			"description": in.Description,
		})
	if result.Error != nil {
		return row, result.Error
	}
	if result.RowsAffected == 0 {
		return row, ErrNotFound
	}
	return row, nil
}

func (r *categoryTranslationRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Delete(&models.FAQCategoryTranslation{}, "id = ?", id).Error
}

type faqTranslationRepository struct {
	base
}

func NewFAQTranslationRepository(db *database.Database) FAQTranslationRepository {
	return &faqTranslationRepository{base: newBase(db)}
}

func (r *faqTranslationRepository) List(ctx context.Context, faqID string) ([]models.FAQTranslation, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var rows []models.FAQTranslation
	err := orderedTranslations(r.db.WithContext(ctx)).
		Where("faq_id = ?", faqID).
		Find(&rows).Error
	return rows, err
}

func (r *faqTranslationRepository) Create(ctx context.Context, faqID string, in models.FAQTranslationInput) (models.FAQTranslation, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	row := models.FAQTranslation{
		FAQID:    faqID,
		Lang:     in.Lang,
		Question: in.Question,
		Answer:   in.Answer,
	}
	err := r.db.WithContext(ctx).Create(&row).Error
	return row, err
}

func (r *faqTranslationRepository) Update(ctx context.Context, id string, in models.FAQTranslationInput) (models.FAQTranslation, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	row := models.FAQTranslation{ID: id}
	result := r.db.WithContext(ctx).Model(&row).
		Clauses(clause.Returning{}).
		Updates(map[string]interface{}{
			"question": in.Question,
			"answer":   in.Answer,
		})
	if result.Error != nil {
		return row, result.Error
	}
	if result.RowsAffected == 0 {
		return row, ErrNotFound
	}
	return row, nil
}

func (r *faqTranslationRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Delete(&models.FAQTranslation{}, "id = ?", id).Error
}
