package repository

import (
	"context"

	"faq-backend/internal/database"
	"faq-backend/internal/models"

	"gorm.io/gorm"
)

type FAQRepository interface {
	Create(ctx context.Context, faq *models.FAQ) error
	Update(ctx context.Context, faq *models.FAQ, withOrder bool) error
	UpdateOrder(ctx context.Context, id string, order int) (*models.FAQ, error)
	Delete(ctx context.Context, id string) error
	FindByID(ctx context.Context, id string) (*models.FAQ, error)
	FindAll(ctx context.Context, filter models.FAQFilter) ([]models.FAQ, int64, error)
	MaxOrder(ctx context.Context, categoryID string) (int, error)
}

type faqRepository struct {
	base
}

func NewFAQRepository(db *database.Database) FAQRepository {
	return &faqRepository{base: newBase(db)}
}

func (r *faqRepository) Create(ctx context.Context, faq *models.FAQ) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Omit("Translations", "Category").Create(faq).Error
}

func (r *faqRepository) Update(ctx context.Context, faq *models.FAQ, withOrder bool) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	fields := map[string]interface{}{
		"category_id": faq.CategoryID,
		"tags":        faq.Tags,
		"status":      faq.Status,
	}
	if withOrder {
		fields["sort_order"] = faq.Order
	}

	result := r.db.WithContext(ctx).Model(&models.FAQ{ID: faq.ID}).Updates(fields)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *faqRepository) UpdateOrder(ctx context.Context, id string, order int) (*models.FAQ, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	result := r.db.WithContext(ctx).Model(&models.FAQ{ID: id}).Update("sort_order", order)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrNotFound
	}

	var faq models.FAQ
	if err := r.db.WithContext(ctx).First(&faq, "id = ?", id).Error; err != nil {
		return nil, notFound(err)
	}
	return &faq, nil
}

func (r *faqRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("faq_id = ?", id).Delete(&models.FAQTranslation{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.FAQ{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

func (r *faqRepository) FindByID(ctx context.Context, id string) (*models.FAQ, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var faq models.FAQ
	err := r.db.WithContext(ctx).
		Preload("Translations", orderedTranslations).
		First(&faq, "id = ?", id).Error
	if err != nil {
		return nil, notFound(err)
	}
	return &faq, nil
}

// FindAll lists FAQs matching filter. Query matches question or answer of
// any translation, or only of the filter's language when one is set.
func (r *faqRepository) FindAll(ctx context.Context, filter models.FAQFilter) ([]models.FAQ, int64, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	query := r.db.WithContext(ctx).Model(&models.FAQ{})

	if filter.CategoryID != "" {
		query = query.Where("category_id = ?", filter.CategoryID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Query != "" {
		pattern := containsPattern(filter.Query)
		matches := r.db.WithContext(ctx).Model(&models.FAQTranslation{}).
			Select("faq_id").
			Where(`question ILIKE ? ESCAPE '\' OR answer ILIKE ? ESCAPE '\'`, pattern, pattern)
		if filter.Lang != "" {
			matches = matches.Where("lang = ?", filter.Lang)
		}
		query = query.Where("id IN (?)", matches)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var faqs []models.FAQ
	offset := (filter.Page - 1) * filter.Limit
	err := query.
		Preload("Translations", orderedTranslations).
		Order("sort_order ASC, created_at ASC").
		Offset(offset).Limit(filter.Limit).
		Find(&faqs).Error
	if err != nil {
		return nil, 0, err
	}

	return faqs, total, nil
}

// MaxOrder returns the highest sort order within a category, or -1 when it has no FAQs.
func (r *faqRepository) MaxOrder(ctx context.Context, categoryID string) (int, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var maxOrder int
	err := r.db.WithContext(ctx).Model(&models.FAQ{}).
		Select("COALESCE(MAX(sort_order), -1)").
		Where("category_id = ?", categoryID).
		Scan(&maxOrder).Error
	return maxOrder, err
}
