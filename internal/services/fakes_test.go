package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"sync"

	"faq-backend/internal/config"
	"faq-backend/internal/models"
	"faq-backend/internal/repository"

	"github.com/sirupsen/logrus"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func testConfig() *config.Config {
	return &config.Config{Reconcile: config.ReconcileConfig{Concurrency: 4}}
}

type fakeCategoryRepo struct {
	mu         sync.Mutex
	categories map[string]*models.FAQCategory
	seq        int
	updateErr  error
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{categories: map[string]*models.FAQCategory{}}
}

func (r *fakeCategoryRepo) Create(ctx context.Context, c *models.FAQCategory) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	c.ID = fmt.Sprintf("cat-%d", r.seq)
	cp := *c
	r.categories[c.ID] = &cp
	return nil
}

func (r *fakeCategoryRepo) Update(ctx context.Context, c *models.FAQCategory) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.updateErr != nil {
		return r.updateErr
	}
	stored, ok := r.categories[c.ID]
	if !ok {
		return repository.ErrNotFound
	}
	stored.Status = c.Status
	if c.LogoData != nil {
		stored.LogoData = c.LogoData
	}
	return nil
}

func (r *fakeCategoryRepo) UpdateOrder(ctx context.Context, id string, order int) (*models.FAQCategory, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.categories[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	stored.Order = order
	cp := *stored
	return &cp, nil
}

func (r *fakeCategoryRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.categories[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.categories, id)
	return nil
}

func (r *fakeCategoryRepo) FindByID(ctx context.Context, id string) (*models.FAQCategory, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.categories[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *stored
	return &cp, nil
}

func (r *fakeCategoryRepo) FindAll(ctx context.Context, status models.Status) ([]models.FAQCategory, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.FAQCategory
	for _, c := range r.categories {
		if status == "" || c.Status == status {
			out = append(out, *c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out, nil
}

func (r *fakeCategoryRepo) MaxOrder(ctx context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	max := -1
	for _, c := range r.categories {
		if c.Order > max {
			max = c.Order
		}
	}
	return max, nil
}

func (r *fakeCategoryRepo) CountByStatus(ctx context.Context) (*models.StatusCounts, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	counts := &models.StatusCounts{}
	for _, c := range r.categories {
		counts.All++
		switch c.Status {
		case models.StatusActive:
			counts.Active++
		case models.StatusInactive:
			counts.Inactive++
		case models.StatusArchived:
			counts.Archived++
		}
	}
	return counts, nil
}

type fakeFAQRepo struct {
	mu        sync.Mutex
	faqs      map[string]*models.FAQ
	seq       int
	updateErr error
}

func newFakeFAQRepo() *fakeFAQRepo {
	return &fakeFAQRepo{faqs: map[string]*models.FAQ{}}
}

func (r *fakeFAQRepo) Create(ctx context.Context, f *models.FAQ) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	f.ID = fmt.Sprintf("faq-%d", r.seq)
	cp := *f
	r.faqs[f.ID] = &cp
	return nil
}

func (r *fakeFAQRepo) Update(ctx context.Context, f *models.FAQ, withOrder bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.updateErr != nil {
		return r.updateErr
	}
	stored, ok := r.faqs[f.ID]
	if !ok {
		return repository.ErrNotFound
	}
	stored.CategoryID = f.CategoryID
	stored.Tags = f.Tags
	stored.Status = f.Status
	if withOrder {
		stored.Order = f.Order
	}
	return nil
}

func (r *fakeFAQRepo) UpdateOrder(ctx context.Context, id string, order int) (*models.FAQ, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.faqs[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	stored.Order = order
	cp := *stored
	return &cp, nil
}

func (r *fakeFAQRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.faqs[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.faqs, id)
	return nil
}

func (r *fakeFAQRepo) FindByID(ctx context.Context, id string) (*models.FAQ, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.faqs[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *stored
	return &cp, nil
}

func (r *fakeFAQRepo) FindAll(ctx context.Context, filter models.FAQFilter) ([]models.FAQ, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.FAQ
	for _, f := range r.faqs {
		if filter.CategoryID != "" && f.CategoryID != filter.CategoryID {
			continue
		}
		out = append(out, *f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	total := int64(len(out))
	start := (filter.Page - 1) * filter.Limit
	if start > len(out) {
		start = len(out)
	}
	end := start + filter.Limit
	if end > len(out) {
		end = len(out)
	}
	return out[start:end], total, nil
}

func (r *fakeFAQRepo) MaxOrder(ctx context.Context, categoryID string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	max := -1
	for _, f := range r.faqs {
		if f.CategoryID == categoryID && f.Order > max {
			max = f.Order
		}
	}
	return max, nil
}

// fakeTranslations is an in-memory translation collection keyed by parent.
type fakeTranslations[R any, S any] struct {
	mu      sync.Mutex
	rows    []R
	seq     int
	parent  func(R) string
	id      func(R) string
	build   func(id, parentID string, in S) R
	apply   func(r R, in S) R
	failErr error
	calls   int
}

func (f *fakeTranslations[R, S]) List(ctx context.Context, parentID string) ([]R, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	var out []R
	for _, r := range f.rows {
		if f.parent(r) == parentID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeTranslations[R, S]) Create(ctx context.Context, parentID string, in S) (R, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.failErr != nil {
		var zero R
		return zero, f.failErr
	}
	f.seq++
	r := f.build(fmt.Sprintf("tr-%d", f.seq), parentID, in)
	f.rows = append(f.rows, r)
	return r, nil
}

func (f *fakeTranslations[R, S]) Update(ctx context.Context, id string, in S) (R, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	for i, r := range f.rows {
		if f.id(r) == id {
			f.rows[i] = f.apply(r, in)
			return f.rows[i], nil
		}
	}
	var zero R
	return zero, repository.ErrNotFound
}

func (f *fakeTranslations[R, S]) Delete(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	for i, r := range f.rows {
		if f.id(r) == id {
			f.rows = append(f.rows[:i], f.rows[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

func newFakeCategoryTranslations(rows ...models.FAQCategoryTranslation) *fakeTranslations[models.FAQCategoryTranslation, models.FAQCategoryTranslationInput] {
	return &fakeTranslations[models.FAQCategoryTranslation, models.FAQCategoryTranslationInput]{
		rows:   rows,
		parent: func(r models.FAQCategoryTranslation) string { return r.CategoryID },
		id:     func(r models.FAQCategoryTranslation) string { return r.ID },
		build: func(id, parentID string, in models.FAQCategoryTranslationInput) models.FAQCategoryTranslation {
			return models.FAQCategoryTranslation{ID: id, CategoryID: parentID, Lang: in.Lang, Name: in.Name, Description: in.Description}
		},
		apply: func(r models.FAQCategoryTranslation, in models.FAQCategoryTranslationInput) models.FAQCategoryTranslation {
			r.Name, r.Description = in.Name, in.Description
			return r
		},
	}
}

func newFakeFAQTranslations(rows ...models.FAQTranslation) *fakeTranslations[models.FAQTranslation, models.FAQTranslationInput] {
	return &fakeTranslations[models.FAQTranslation, models.FAQTranslationInput]{
		rows:   rows,
		parent: func(r models.FAQTranslation) string { return r.FAQID },
		id:     func(r models.FAQTranslation) string { return r.ID },
		build: func(id, parentID string, in models.FAQTranslationInput) models.FAQTranslation {
			return models.FAQTranslation{ID: id, FAQID: parentID, Lang: in.Lang, Question: in.Question, Answer: in.Answer}
		},
		apply: func(r models.FAQTranslation, in models.FAQTranslationInput) models.FAQTranslation {
			r.Question, r.Answer = in.Question, in.Answer
			return r
		},
	}
}

type fakeAuditRepo struct {
	mu      sync.Mutex
	entries []models.AuditLog
	err     error
}

func (r *fakeAuditRepo) Create(ctx context.Context, entry *models.AuditLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	r.entries = append(r.entries, *entry)
	return nil
}

func (r *fakeAuditRepo) FindByAuditable(ctx context.Context, auditableType, auditableID string, limit int) ([]models.AuditLog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.AuditLog
	for _, e := range r.entries {
		if e.AuditableType == auditableType && e.AuditableID == auditableID {
			out = append(out, e)
		}
	}
	return out, nil
}

type fakeStorage struct {
	deleted []string
	err     error
}

func (s *fakeStorage) DeleteFile(ctx context.Context, objectPath string) error {
	s.deleted = append(s.deleted, objectPath)
	return s.err
}

var errBackend = errors.New("backend unavailable")
