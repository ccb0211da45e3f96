package services

import (
	"context"
	"fmt"
	"strings"

	"faq-backend/internal/config"
	"faq-backend/internal/models"
	"faq-backend/internal/repository"
	"faq-backend/internal/translation"

	"github.com/sirupsen/logrus"
)

type FAQCategoryService interface {
	CreateCategory(ctx context.Context, input models.FAQCategoryInput) (*models.FAQCategory, error)
	UpdateCategory(ctx context.Context, id string, input models.FAQCategoryInput) (*models.FAQCategory, error)
	UpdateCategoryOrder(ctx context.Context, id string, order int) (*models.FAQCategory, error)
	DeleteCategory(ctx context.Context, id string) error

	GetCategory(ctx context.Context, id string, lang models.LanguageCode) (*models.FAQCategory, error)
	ListCategories(ctx context.Context, status string, lang models.LanguageCode) ([]models.FAQCategory, error)
	CountByStatus(ctx context.Context) (*models.StatusCounts, error)
	GetAuditTrail(ctx context.Context, id string) ([]models.AuditLog, error)
}

type faqCategoryService struct {
	repo         repository.FAQCategoryRepository
	translations repository.CategoryTranslationRepository
	translator   *translation.Reconciler[models.FAQCategoryTranslation, models.FAQCategoryTranslationInput]
	storage      ObjectStorage
	audit        auditor
	logger       *logrus.Logger
}

// NewFAQCategoryService wires the category store and its translation
// collection. storage may be nil, in which case replaced logos are kept.
func NewFAQCategoryService(
	repo repository.FAQCategoryRepository,
	translations repository.CategoryTranslationRepository,
	auditRepo repository.AuditLogRepository,
	storage ObjectStorage,
	cfg *config.Config,
	logger *logrus.Logger,
) FAQCategoryService {
	return &faqCategoryService{
		repo:         repo,
		translations: translations,
		translator:   translation.NewReconciler("faq_category", translations, cfg.Reconcile.Concurrency, logger),
		storage:      storage,
		audit:        auditor{repo: auditRepo, logger: logger},
		logger:       logger,
	}
}

func (s *faqCategoryService) CreateCategory(ctx context.Context, input models.FAQCategoryInput) (*models.FAQCategory, error) {
	if err := normalizeCategoryInput(&input); err != nil {
		return nil, err
	}
	if input.Status == "" {
		input.Status = models.StatusActive
	}

	maxOrder, err := s.repo.MaxOrder(ctx)
	if err != nil {
		s.logger.WithError(err).Error("Error creating FAQ category")
		return nil, fmt.Errorf("failed to read category order: %w", err)
	}

	category := &models.FAQCategory{
		LogoData: input.LogoData,
		Status:   input.Status,
		Order:    maxOrder + 1,
	}
	if err := s.repo.Create(ctx, category); err != nil {
		s.logger.WithError(err).Error("Error creating FAQ category")
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	if err := s.saveTranslations(ctx, category, input.Translations); err != nil {
		return nil, err
	}

	s.audit.record(ctx, auditableCategory, category.ID, models.AuditCreate, nil, category)
	return category, nil
}

func (s *faqCategoryService) UpdateCategory(ctx context.Context, id string, input models.FAQCategoryInput) (*models.FAQCategory, error) {
	if err := normalizeCategoryInput(&input); err != nil {
		return nil, err
	}

	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	before := *existing

	category := existing
	if input.Status != "" {
		category.Status = input.Status
	}
	replacedLogo := ""
	if input.LogoData != nil {
		if existing.LogoData != nil && existing.LogoData.ID != "" && existing.LogoData.ID != input.LogoData.ID {
			replacedLogo = existing.LogoData.ID
		}
		category.LogoData = input.LogoData
	}

	if err := s.repo.Update(ctx, category); err != nil {
		s.logger.WithError(err).WithField("id", id).Error("Error updating FAQ category")
		return nil, fmt.Errorf("failed to update category: %w", err)
	}

	if replacedLogo != "" {
		s.deleteLogo(ctx, replacedLogo)
	}

	if err := s.saveTranslations(ctx, category, input.Translations); err != nil {
		return nil, err
	}

	s.audit.record(ctx, auditableCategory, id, models.AuditUpdate, before, category)
	return category, nil
}

// saveTranslations reconciles the category's stored translations with
// submitted and attaches the resulting set to category.
func (s *faqCategoryService) saveTranslations(ctx context.Context, category *models.FAQCategory, submitted []models.FAQCategoryTranslationInput) error {
	if _, err := s.translator.Reconcile(ctx, category.ID, submitted); err != nil {
		s.logger.WithError(err).WithField("id", category.ID).Error("Error saving FAQ category translations")
		return err
	}

	stored, err := s.translations.List(ctx, category.ID)
	if err != nil {
		s.logger.WithError(err).WithField("id", category.ID).Warn("Failed to reload FAQ category translations")
		category.Translations = nil
		return nil
	}
	category.Translations = stored
	return nil
}

func (s *faqCategoryService) UpdateCategoryOrder(ctx context.Context, id string, order int) (*models.FAQCategory, error) {
	if order < 0 {
		return nil, validationError("order must not be negative")
	}

	category, err := s.repo.UpdateOrder(ctx, id, order)
	if err != nil {
		s.logger.WithError(err).WithField("id", id).Error("Failed to update category order")
		return nil, err
	}

	s.audit.record(ctx, auditableCategory, id, models.AuditUpdate, nil, map[string]int{"order": order})
	return category, nil
}

func (s *faqCategoryService) DeleteCategory(ctx context.Context, id string) error {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.WithError(err).WithField("id", id).Error("Error deleting FAQ category")
		return fmt.Errorf("failed to delete category: %w", err)
	}

	if existing.LogoData != nil && existing.LogoData.ID != "" {
		s.deleteLogo(ctx, existing.LogoData.ID)
	}

	s.audit.record(ctx, auditableCategory, id, models.AuditDelete, existing, nil)
	return nil
}

func (s *faqCategoryService) deleteLogo(ctx context.Context, objectPath string) {
	if s.storage == nil {
		return
	}
	if err := s.storage.DeleteFile(ctx, objectPath); err != nil {
		s.logger.WithError(err).WithField("objectPath", objectPath).Warn("Failed to delete old logo from storage")
	}
}

func (s *faqCategoryService) GetCategory(ctx context.Context, id string, lang models.LanguageCode) (*models.FAQCategory, error) {
	category, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resolveCategory(category, lang)
	return category, nil
}

// ListCategories lists categories with the given status; "" or "all" lists every category.
func (s *faqCategoryService) ListCategories(ctx context.Context, status string, lang models.LanguageCode) ([]models.FAQCategory, error) {
	filter, err := parseStatusFilter(status)
	if err != nil {
		return nil, err
	}

	categories, err := s.repo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	for i := range categories {
		resolveCategory(&categories[i], lang)
	}
	return categories, nil
}

func (s *faqCategoryService) CountByStatus(ctx context.Context) (*models.StatusCounts, error) {
	return s.repo.CountByStatus(ctx)
}

func (s *faqCategoryService) GetAuditTrail(ctx context.Context, id string) ([]models.AuditLog, error) {
	return s.audit.trail(ctx, auditableCategory, id)
}

func normalizeCategoryInput(input *models.FAQCategoryInput) error {
	if input.Status != "" && !input.Status.IsValid() {
		return validationError("invalid status %q", input.Status)
	}
	for i := range input.Translations {
		t := &input.Translations[i]
		lang, err := models.ParseLanguageCode(string(t.Lang))
		if err != nil {
			return validationError("translation %d: %v", i, err)
		}
		t.Lang = lang
		if strings.TrimSpace(t.Name) == "" {
			return validationError("translation %d (%s): name is required", i, lang)
		}
	}
	return nil
}

func parseStatusFilter(status string) (models.Status, error) {
	if status == "" || strings.EqualFold(status, "all") {
		return "", nil
	}
	s := models.Status(strings.ToUpper(status))
	if !s.IsValid() {
		return "", validationError("invalid status %q", status)
	}
	return s, nil
}

// resolveCategory picks the display translation of the category and of its FAQs.
func resolveCategory(category *models.FAQCategory, lang models.LanguageCode) {
	if lang == "" {
		return
	}
	if t, ok := translation.Resolve(category.Translations, lang); ok {
		category.Translation = &t
	}
	for i := range category.FAQs {
		resolveFAQ(&category.FAQs[i], lang)
	}
}
