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

type FAQService interface {
	CreateFAQ(ctx context.Context, input models.FAQInput) (*models.FAQ, error)
	UpdateFAQ(ctx context.Context, id string, input models.FAQInput) (*models.FAQ, error)
	UpdateFAQOrder(ctx context.Context, id string, order int) (*models.FAQ, error)
	DeleteFAQ(ctx context.Context, id string) error

	GetFAQ(ctx context.Context, id string, lang models.LanguageCode) (*models.FAQ, error)
	ListFAQs(ctx context.Context, filter models.FAQFilter) ([]models.FAQ, int64, error)
	GetAuditTrail(ctx context.Context, id string) ([]models.AuditLog, error)
}

type faqService struct {
	repo         repository.FAQRepository
	categoryRepo repository.FAQCategoryRepository
	translations repository.FAQTranslationRepository
	translator   *translation.Reconciler[models.FAQTranslation, models.FAQTranslationInput]
	audit        auditor
	logger       *logrus.Logger
}

func NewFAQService(
	repo repository.FAQRepository,
	categoryRepo repository.FAQCategoryRepository,
	translations repository.FAQTranslationRepository,
	auditRepo repository.AuditLogRepository,
	cfg *config.Config,
	logger *logrus.Logger,
) FAQService {
	return &faqService{
		repo:         repo,
		categoryRepo: categoryRepo,
		translations: translations,
		translator:   translation.NewReconciler("faq", translations, cfg.Reconcile.Concurrency, logger),
		audit:        auditor{repo: auditRepo, logger: logger},
		logger:       logger,
	}
}

func (s *faqService) CreateFAQ(ctx context.Context, input models.FAQInput) (*models.FAQ, error) {
	if err := normalizeFAQInput(&input); err != nil {
		return nil, err
	}
	if input.Status == "" {
		input.Status = models.StatusActive
	}
	if err := s.ensureCategory(ctx, input.CategoryID); err != nil {
		return nil, err
	}

	maxOrder, err := s.repo.MaxOrder(ctx, input.CategoryID)
	if err != nil {
		s.logger.WithError(err).Error("Error creating FAQ")
		return nil, fmt.Errorf("failed to read FAQ order: %w", err)
	}

	faq := &models.FAQ{
		CategoryID: input.CategoryID,
		Tags:       models.StringList(input.Tags),
		Status:     input.Status,
		Order:      maxOrder + 1,
	}
	if err := s.repo.Create(ctx, faq); err != nil {
		s.logger.WithError(err).Error("Error creating FAQ")
		return nil, fmt.Errorf("failed to create FAQ: %w", err)
	}

	if err := s.saveTranslations(ctx, faq, input.Translations); err != nil {
		return nil, err
	}

	s.audit.record(ctx, auditableFAQ, faq.ID, models.AuditCreate, nil, faq)
	return faq, nil
}

func (s *faqService) UpdateFAQ(ctx context.Context, id string, input models.FAQInput) (*models.FAQ, error) {
	if err := normalizeFAQInput(&input); err != nil {
		return nil, err
	}

	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	before := *existing

	if input.CategoryID != existing.CategoryID {
		if err := s.ensureCategory(ctx, input.CategoryID); err != nil {
			return nil, err
		}
	}

	faq := existing
	faq.CategoryID = input.CategoryID
	faq.Tags = models.StringList(input.Tags)
	if input.Status != "" {
		faq.Status = input.Status
	}
	if input.Order != nil {
		faq.Order = *input.Order
	}

	if err := s.repo.Update(ctx, faq, input.Order != nil); err != nil {
		s.logger.WithError(err).WithField("id", id).Error("Error updating FAQ")
		return nil, fmt.Errorf("failed to update FAQ: %w", err)
	}

	if err := s.saveTranslations(ctx, faq, input.Translations); err != nil {
		return nil, err
	}

	s.audit.record(ctx, auditableFAQ, id, models.AuditUpdate, before, faq)
	return faq, nil
}

func (s *faqService) saveTranslations(ctx context.Context, faq *models.FAQ, submitted []models.FAQTranslationInput) error {
	if _, err := s.translator.Reconcile(ctx, faq.ID, submitted); err != nil {
		s.logger.WithError(err).WithField("id", faq.ID).Error("Error saving FAQ translations")
		return err
	}

	stored, err := s.translations.List(ctx, faq.ID)
	if err != nil {
		s.logger.WithError(err).WithField("id", faq.ID).Warn("Failed to reload FAQ translations")
		faq.Translations = nil
		return nil
	}
	faq.Translations = stored
	return nil
}

func (s *faqService) ensureCategory(ctx context.Context, categoryID string) error {
	if _, err := s.categoryRepo.FindByID(ctx, categoryID); err != nil {
		return fmt.Errorf("category %s: %w", categoryID, err)
	}
	return nil
}

func (s *faqService) UpdateFAQOrder(ctx context.Context, id string, order int) (*models.FAQ, error) {
	if order < 0 {
		return nil, validationError("order must not be negative")
	}

	faq, err := s.repo.UpdateOrder(ctx, id, order)
	if err != nil {
		s.logger.WithError(err).WithField("id", id).Error("Failed to update FAQ order")
		return nil, err
	}

	s.audit.record(ctx, auditableFAQ, id, models.AuditUpdate, nil, map[string]int{"order": order})
	return faq, nil
}

func (s *faqService) DeleteFAQ(ctx context.Context, id string) error {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.WithError(err).WithField("id", id).Error("Error deleting FAQ")
		return fmt.Errorf("failed to delete FAQ: %w", err)
	}

	s.audit.record(ctx, auditableFAQ, id, models.AuditDelete, existing, nil)
	return nil
}

func (s *faqService) GetFAQ(ctx context.Context, id string, lang models.LanguageCode) (*models.FAQ, error) {
	faq, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resolveFAQ(faq, lang)
	return faq, nil
}

func (s *faqService) ListFAQs(ctx context.Context, filter models.FAQFilter) ([]models.FAQ, int64, error) {
	filter = filter.Paginated()
	if filter.Status != "" && !filter.Status.IsValid() {
		return nil, 0, validationError("invalid status %q", filter.Status)
	}
	filter.Query = strings.TrimSpace(filter.Query)

	faqs, total, err := s.repo.FindAll(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	for i := range faqs {
		resolveFAQ(&faqs[i], filter.Lang)
	}
	return faqs, total, nil
}

func (s *faqService) GetAuditTrail(ctx context.Context, id string) ([]models.AuditLog, error) {
	return s.audit.trail(ctx, auditableFAQ, id)
}

func normalizeFAQInput(input *models.FAQInput) error {
	input.CategoryID = strings.TrimSpace(input.CategoryID)
	if input.CategoryID == "" {
		return validationError("category_id is required")
	}
	if input.Status != "" && !input.Status.IsValid() {
		return validationError("invalid status %q", input.Status)
	}
	if input.Order != nil && *input.Order < 0 {
		return validationError("order must not be negative")
	}
	if input.Tags == nil {
		input.Tags = []string{}
	}
	for i := range input.Translations {
		t := &input.Translations[i]
		lang, err := models.ParseLanguageCode(string(t.Lang))
		if err != nil {
			return validationError("translation %d: %v", i, err)
		}
		t.Lang = lang
		if strings.TrimSpace(t.Question) == "" || strings.TrimSpace(t.Answer) == "" {
			return validationError("translation %d (%s): question and answer are required", i, lang)
		}
	}
	return nil
}

func resolveFAQ(faq *models.FAQ, lang models.LanguageCode) {
	if lang == "" {
		return
	}
	if t, ok := translation.Resolve(faq.Translations, lang); ok {
		faq.Translation = &t
	}
}
