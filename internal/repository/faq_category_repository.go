package repository

import (
	"context"

	"faq-backend/internal/database"
	"faq-backend/internal/models"

	"gorm.io/gorm"
)

type FAQCategoryRepository interface {
	Create(ctx context.Context, category *models.FAQCategory) error
	Update(ctx context.Context, category *models.FAQCategory) error
	UpdateOrder(ctx context.Context, id string, order int) (*models.FAQCategory, error)
	Delete(ctx context.Context, id string) error
	FindByID(ctx context.Context, id string) (*models.FAQCategory, error)
	FindAll(ctx context.Context, status models.Status) ([]models.FAQCategory, error)
	MaxOrder(ctx context.Context) (int, error)
	CountByStatus(ctx context.Context) (*models.StatusCounts, error)
}

type faqCategoryRepository struct {
	base
}

func NewFAQCategoryRepository(db *database.Database) FAQCategoryRepository {
	return &faqCategoryRepository{base: newBase(db)}
}

func (r *faqCategoryRepository) Create(ctx context.Context, category *models.FAQCategory) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Omit("Translations", "FAQs").Create(category).Error
}

// Update writes the status and, when set, the logo. Order and translations
// have their own write paths.
func (r *faqCategoryRepository) Update(ctx context.Context, category *models.FAQCategory) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	fields := map[string]interface{}{"status": category.Status}
	if category.LogoData != nil {
		fields["logo_data"] = category.LogoData
	}

	result := r.db.WithContext(ctx).Model(&models.FAQCategory{ID: category.ID}).Updates(fields)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *faqCategoryRepository) UpdateOrder(ctx context.Context, id string, order int) (*models.FAQCategory, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	result := r.db.WithContext(ctx).Model(&models.FAQCategory{ID: id}).Update("sort_order", order)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrNotFound
	}

	var category models.FAQCategory
	if err := r.db.WithContext(ctx).First(&category, "id = ?", id).Error; err != nil {
		return nil, notFound(err)
	}
	return &category, nil
}

// Delete removes the category together with its FAQs and every translation
// owned by either.
func (r *faqCategoryRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		faqIDs := tx.Model(&models.FAQ{}).Select("id").Where("category_id = ?", id)
		if err := tx.Where("faq_id IN (?)", faqIDs).Delete(&models.FAQTranslation{}).Error; err != nil {
			return err
		}
		if err := tx.Where("category_id = ?", id).Delete(&models.FAQ{}).Error; err != nil {
			return err
		}
		if err := tx.Where("category_id = ?", id).Delete(&models.FAQCategoryTranslation{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.FAQCategory{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

func (r *faqCategoryRepository) FindByID(ctx context.Context, id string) (*models.FAQCategory, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var category models.FAQCategory
	err := r.db.WithContext(ctx).
		Preload("Translations", orderedTranslations).
		First(&category, "id = ?", id).Error
	if err != nil {
		return nil, notFound(err)
	}
	return &category, nil
}

func (r *faqCategoryRepository) FindAll(ctx context.Context, status models.Status) ([]models.FAQCategory, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	query := r.db.WithContext(ctx).Model(&models.FAQCategory{})
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var categories []models.FAQCategory
	err := query.
		Preload("Translations", orderedTranslations).
		Preload("FAQs", func(db *gorm.DB) *gorm.DB { return db.Order("sort_order ASC") }).
		Preload("FAQs.Translations", orderedTranslations).
		Order("sort_order ASC, created_at ASC").
		Find(&categories).Error
	return categories, err
}

// MaxOrder returns the highest sort order in use, or -1 when there are no categories.
func (r *faqCategoryRepository) MaxOrder(ctx context.Context) (int, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var maxOrder int
	err := r.db.WithContext(ctx).Model(&models.FAQCategory{}).
		Select("COALESCE(MAX(sort_order), -1)").
		Scan(&maxOrder).Error
	return maxOrder, err
}

func (r *faqCategoryRepository) CountByStatus(ctx context.Context) (*models.StatusCounts, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	type statusCount struct {
		Status models.Status
		Count  int64
	}

	var rows []statusCount
	if err := r.db.WithContext(ctx).Model(&models.FAQCategory{}).
		Select("status, COUNT(*) as count").
		Group("status").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	counts := &models.StatusCounts{}
	for _, row := range rows {
		counts.All += row.Count
		switch row.Status {
		case models.StatusActive:
			counts.Active = row.Count
		case models.StatusInactive:
			counts.Inactive = row.Count
		case models.StatusArchived:
			counts.Archived = row.Count
		}
	}
	return counts, nil
}
