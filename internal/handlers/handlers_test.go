package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"faq-backend/internal/models"
	"faq-backend/internal/services"
	"faq-backend/internal/translation"
	"faq-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

type stubCategoryService struct {
	services.FAQCategoryService
	err       error
	gotInput  models.FAQCategoryInput
	gotStatus string
	gotLang   models.LanguageCode
	gotActor  services.Actor
	gotOrder  int
}

func (s *stubCategoryService) CreateCategory(ctx context.Context, input models.FAQCategoryInput) (*models.FAQCategory, error) {
	s.gotInput = input
	s.gotActor = services.ActorFromContext(ctx)
	if s.err != nil {
		return nil, s.err
	}
	return &models.FAQCategory{ID: "cat-1", Status: models.StatusActive}, nil
}

func (s *stubCategoryService) UpdateCategory(ctx context.Context, id string, input models.FAQCategoryInput) (*models.FAQCategory, error) {
	s.gotInput = input
	if s.err != nil {
		return nil, s.err
	}
	return &models.FAQCategory{ID: id}, nil
}

func (s *stubCategoryService) UpdateCategoryOrder(ctx context.Context, id string, order int) (*models.FAQCategory, error) {
	s.gotOrder = order
	return &models.FAQCategory{ID: id, Order: order}, s.err
}

func (s *stubCategoryService) GetCategory(ctx context.Context, id string, lang models.LanguageCode) (*models.FAQCategory, error) {
	s.gotLang = lang
	if s.err != nil {
		return nil, s.err
	}
	return &models.FAQCategory{ID: id}, nil
}

func (s *stubCategoryService) ListCategories(ctx context.Context, status string, lang models.LanguageCode) ([]models.FAQCategory, error) {
	s.gotStatus, s.gotLang = status, lang
	return []models.FAQCategory{{ID: "cat-1"}}, s.err
}

type stubFAQService struct {
	services.FAQService
	gotFilter models.FAQFilter
	total     int64
}

func (s *stubFAQService) ListFAQs(ctx context.Context, filter models.FAQFilter) ([]models.FAQ, int64, error) {
	s.gotFilter = filter
	return []models.FAQ{{ID: "faq-1"}}, s.total, nil
}

type stubPresigner struct {
	err error
}

func (p stubPresigner) GeneratePresignedURL(ctx context.Context, filename, contentType string) (*models.UploadTicket, error) {
	if p.err != nil {
		return nil, p.err
	}
	return &models.UploadTicket{PresignedURL: "http://minio/put", File: models.FileData{ID: "assets/" + filename}}, nil
}

func newApp(categories services.FAQCategoryService, faqs services.FAQService, presigner Presigner) *fiber.App {
	app := fiber.New()
	ch := NewFAQCategoryHandler(categories, testLogger())
	fh := NewFAQHandler(faqs, testLogger())
	uh := NewUploadHandler(presigner, testLogger())

	app.Use(func(c *fiber.Ctx) error {
		c.SetUserContext(services.WithActor(c.UserContext(), services.Actor{UserID: "alice"}))
		return c.Next()
	})
	app.Get("/languages", ListLanguages)
	app.Get("/faq-categories", ch.ListCategories)
	app.Get("/faq-categories/:id", ch.GetCategory)
	app.Post("/faq-categories", ch.CreateCategory)
	app.Put("/faq-categories/:id", ch.UpdateCategory)
	app.Patch("/faq-categories/:id/order", ch.UpdateCategoryOrder)
	app.Get("/faqs", fh.ListFAQs)
	app.Get("/upload/presign", uh.GetPresignedURL)
	return app
}

func do(t *testing.T, app *fiber.App, method, target string, body interface{}) (int, utils.StandardResponse, []byte) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	resp, err := app.Test(req)
	require.NoError(t, err)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var envelope utils.StandardResponse
	require.NoError(t, json.Unmarshal(raw, &envelope))
	return resp.StatusCode, envelope, raw
}

func TestCreateCategory_PassesBodyAndActor(t *testing.T) {
	svc := &stubCategoryService{}
	app := newApp(svc, &stubFAQService{}, stubPresigner{})

	status, envelope, _ := do(t, app, http.MethodPost, "/faq-categories", CategoryRequest{
		Translations: []models.FAQCategoryTranslationInput{{Lang: "en", Name: "Billing"}},
	})

	assert.Equal(t, fiber.StatusCreated, status)
	assert.Equal(t, "success", envelope.Status)
	require.Len(t, svc.gotInput.Translations, 1)
	assert.Equal(t, "Billing", svc.gotInput.Translations[0].Name)
	assert.Equal(t, "alice", svc.gotActor.UserID)
}

func TestCategoryHandler_ErrorMapping(t *testing.T) {
	report := &translation.Report{
		ParentID: "cat-1",
		Outcomes: []translation.Outcome{
			{Lang: "en", Operation: translation.OpUpdate, RecordID: "t1"},
			{Lang: "es", Operation: translation.OpCreate, Err: errors.New("connection reset")},
		},
		DeletesSkipped: true,
	}

	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"validation", fmt.Errorf("%w: name is required", services.ErrValidation), fiber.StatusBadRequest},
		{"not found", services.ErrNotFound, fiber.StatusNotFound},
		{"reconcile", &translation.ReconcileError{Report: report}, fiber.StatusInternalServerError},
		{"other", errors.New("database down"), fiber.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newApp(&stubCategoryService{err: tt.err}, &stubFAQService{}, stubPresigner{})

			status, envelope, _ := do(t, app, http.MethodPut, "/faq-categories/cat-1", CategoryRequest{})
			assert.Equal(t, tt.status, status)
			assert.Equal(t, tt.status, envelope.Code)
		})
	}
}

func TestCategoryHandler_ReconcileFailureListsFailedLanguages(t *testing.T) {
	report := &translation.Report{
		ParentID: "cat-1",
		Outcomes: []translation.Outcome{
			{Lang: "en", Operation: translation.OpUpdate, RecordID: "t1"},
			{Lang: "es", Operation: translation.OpCreate, Err: errors.New("connection reset")},
		},
		DeletesSkipped: true,
	}
	app := newApp(&stubCategoryService{err: &translation.ReconcileError{Report: report}}, &stubFAQService{}, stubPresigner{})

	_, _, raw := do(t, app, http.MethodPut, "/faq-categories/cat-1", CategoryRequest{})

	var body struct {
		Data ReconcileFailure `json:"data"`
	}
	require.NoError(t, json.Unmarshal(raw, &body))
	assert.Equal(t, "cat-1", body.Data.ParentID)
	assert.True(t, body.Data.DeletesSkipped)
	require.Len(t, body.Data.Failed, 1)
	assert.Equal(t, models.LanguageCode("es"), body.Data.Failed[0].Lang)
}

func TestCategoryHandler_LanguageQuery(t *testing.T) {
	svc := &stubCategoryService{}
	app := newApp(svc, &stubFAQService{}, stubPresigner{})

	status, _, _ := do(t, app, http.MethodGet, "/faq-categories?status=archived&lang=pt-BR", nil)
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "archived", svc.gotStatus)
	assert.Equal(t, models.LanguageCode("pt"), svc.gotLang)

	status, _, _ = do(t, app, http.MethodGet, "/faq-categories/cat-1?lang=klingon", nil)
	assert.Equal(t, fiber.StatusBadRequest, status)
}

func TestCategoryHandler_MissingTranslationRowIsAWriteFailure(t *testing.T) {
	report := &translation.Report{
		ParentID: "cat-1",
		Outcomes: []translation.Outcome{
			{Lang: "en", Operation: translation.OpUpdate, RecordID: "t1", Err: services.ErrNotFound},
		},
	}
	app := newApp(&stubCategoryService{err: &translation.ReconcileError{Report: report}}, &stubFAQService{}, stubPresigner{})

	status, _, raw := do(t, app, http.MethodPut, "/faq-categories/cat-1", CategoryRequest{})
	assert.Equal(t, fiber.StatusInternalServerError, status)

	var body struct {
		Message string           `json:"message"`
		Data    ReconcileFailure `json:"data"`
	}
	require.NoError(t, json.Unmarshal(raw, &body))
	assert.Equal(t, "Failed to save translations", body.Message)
	require.Len(t, body.Data.Failed, 1)
	assert.Equal(t, translation.OpUpdate, body.Data.Failed[0].Operation)
	assert.Equal(t, "t1", body.Data.Failed[0].RecordID)
}

func TestUpdateCategoryOrder_RequiresOrder(t *testing.T) {
	svc := &stubCategoryService{}
	app := newApp(svc, &stubFAQService{}, stubPresigner{})

	status, _, _ := do(t, app, http.MethodPatch, "/faq-categories/cat-1/order", map[string]int{"order": 2})
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, 2, svc.gotOrder)

	status, _, _ = do(t, app, http.MethodPatch, "/faq-categories/cat-1/order", map[string]string{})
	assert.Equal(t, fiber.StatusBadRequest, status)
}

func TestListFAQs_FilterAndMeta(t *testing.T) {
	svc := &stubFAQService{total: 45}
	app := newApp(&stubCategoryService{}, svc, stubPresigner{})

	status, envelope, _ := do(t, app, http.MethodGet, "/faqs?category_id=cat-1&status=active&query=refund&lang=es&page=2&limit=20", nil)
	require.Equal(t, fiber.StatusOK, status)

	assert.Equal(t, models.FAQFilter{
		CategoryID: "cat-1",
		Status:     models.StatusActive,
		Query:      "refund",
		Lang:       "es",
		Page:       2,
		Limit:      20,
	}, svc.gotFilter)

	meta, ok := envelope.Meta.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, float64(3), meta["total_pages"])
	assert.Equal(t, true, meta["has_next"])
}

func TestListLanguages(t *testing.T) {
	app := newApp(&stubCategoryService{}, &stubFAQService{}, stubPresigner{})

	status, envelope, _ := do(t, app, http.MethodGet, "/languages", nil)
	assert.Equal(t, fiber.StatusOK, status)
	languages, ok := envelope.Data.([]interface{})
	require.True(t, ok)
	assert.Len(t, languages, len(models.SupportedLanguages))
}

func TestGetPresignedURL(t *testing.T) {
	app := newApp(&stubCategoryService{}, &stubFAQService{}, stubPresigner{})

	status, _, _ := do(t, app, http.MethodGet, "/upload/presign", nil)
	assert.Equal(t, fiber.StatusBadRequest, status)

	status, envelope, _ := do(t, app, http.MethodGet, "/upload/presign?filename=logo.png", nil)
	assert.Equal(t, fiber.StatusOK, status)
	data, ok := envelope.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "http://minio/put", data["presigned_url"])

	app = newApp(&stubCategoryService{}, &stubFAQService{}, stubPresigner{err: fmt.Errorf("%w: not an image", services.ErrValidation)})
	status, _, _ = do(t, app, http.MethodGet, "/upload/presign?filename=doc.pdf&contentType=application/pdf", nil)
	assert.Equal(t, fiber.StatusBadRequest, status)
}

func TestListFAQs_MetaUsesEffectivePagination(t *testing.T) {
	svc := &stubFAQService{total: 250}
	app := newApp(&stubCategoryService{}, svc, stubPresigner{})

	status, envelope, _ := do(t, app, http.MethodGet, "/faqs?page=0&limit=500", nil)
	require.Equal(t, fiber.StatusOK, status)

	meta, ok := envelope.Meta.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, float64(1), meta["page"])
	assert.Equal(t, float64(models.MaxPageLimit), meta["limit"])
	assert.Equal(t, float64(3), meta["total_pages"])
}
