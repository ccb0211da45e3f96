package services

import (
	"context"
	"testing"

	"faq-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type faqFixture struct {
	categories   *fakeCategoryRepo
	repo         *fakeFAQRepo
	translations *fakeTranslations[models.FAQTranslation, models.FAQTranslationInput]
	audit        *fakeAuditRepo
	service      FAQService
}

func newFAQFixture(rows ...models.FAQTranslation) *faqFixture {
	f := &faqFixture{
		categories:   newFakeCategoryRepo(),
		repo:         newFakeFAQRepo(),
		translations: newFakeFAQTranslations(rows...),
		audit:        &fakeAuditRepo{},
	}
	f.categories.categories["cat-1"] = &models.FAQCategory{ID: "cat-1"}
	f.categories.categories["cat-2"] = &models.FAQCategory{ID: "cat-2"}
	f.service = NewFAQService(f.repo, f.categories, f.translations, f.audit, testConfig(), testLogger())
	return f
}

func TestCreateFAQ_OrderIsPerCategory(t *testing.T) {
	f := newFAQFixture()
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		faq, err := f.service.CreateFAQ(ctx, models.FAQInput{CategoryID: "cat-1"})
		require.NoError(t, err)
		assert.Equal(t, i, faq.Order)
	}

	other, err := f.service.CreateFAQ(ctx, models.FAQInput{
		CategoryID: "cat-2",
		Tags:       []string{"login"},
		Translations: []models.FAQTranslationInput{
			{Lang: "en", Question: "How do I sign in?", Answer: "With your email."},
			{Lang: "en", Question: "dropped", Answer: "dropped"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 0, other.Order)
	assert.Equal(t, models.StringList{"login"}, other.Tags)
	require.Len(t, other.Translations, 1)
	assert.Equal(t, "How do I sign in?", other.Translations[0].Question)
}

func TestCreateFAQ_StoresSubmittedTextAsIs(t *testing.T) {
	f := newFAQFixture()

	faq, err := f.service.CreateFAQ(context.Background(), models.FAQInput{
		CategoryID: "cat-1",
		Translations: []models.FAQTranslationInput{
			{Lang: "de", Question: "  Wie?  ", Answer: "Schritt 1\nSchritt 2\n"},
		},
	})
	require.NoError(t, err)
	require.Len(t, faq.Translations, 1)
	assert.Equal(t, "  Wie?  ", faq.Translations[0].Question)
	assert.Equal(t, "Schritt 1\nSchritt 2\n", faq.Translations[0].Answer)
}

func TestCreateFAQ_UnknownCategory(t *testing.T) {
	f := newFAQFixture()

	_, err := f.service.CreateFAQ(context.Background(), models.FAQInput{CategoryID: "nope"})
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Empty(t, f.repo.faqs)
}

func TestCreateFAQ_Validation(t *testing.T) {
	f := newFAQFixture()
	ctx := context.Background()

	_, err := f.service.CreateFAQ(ctx, models.FAQInput{})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = f.service.CreateFAQ(ctx, models.FAQInput{
		CategoryID:   "cat-1",
		Translations: []models.FAQTranslationInput{{Lang: "en", Question: "Q"}},
	})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestUpdateFAQ_KeepsOrderUnlessGiven(t *testing.T) {
	f := newFAQFixture(
		models.FAQTranslation{ID: "t-en", FAQID: "faq-1", Lang: "en", Question: "Old?", Answer: "Old."},
		models.FAQTranslation{ID: "t-hi", FAQID: "faq-1", Lang: "hi", Question: "?", Answer: "."},
	)
	f.repo.faqs["faq-1"] = &models.FAQ{ID: "faq-1", CategoryID: "cat-1", Order: 3, Status: models.StatusActive}

	faq, err := f.service.UpdateFAQ(context.Background(), "faq-1", models.FAQInput{
		CategoryID:   "cat-2",
		Status:       models.StatusInactive,
		Translations: []models.FAQTranslationInput{{Lang: "en", Question: "New?", Answer: "New."}},
	})
	require.NoError(t, err)
	assert.Equal(t, 3, f.repo.faqs["faq-1"].Order)
	assert.Equal(t, "cat-2", f.repo.faqs["faq-1"].CategoryID)
	assert.Equal(t, models.StatusInactive, f.repo.faqs["faq-1"].Status)
	require.Len(t, faq.Translations, 1)
	assert.Equal(t, "t-en", faq.Translations[0].ID)
	assert.Equal(t, "New.", faq.Translations[0].Answer)

	order := 0
	_, err = f.service.UpdateFAQ(context.Background(), "faq-1", models.FAQInput{
		CategoryID:   "cat-2",
		Order:        &order,
		Translations: []models.FAQTranslationInput{{Lang: "en", Question: "New?", Answer: "New."}},
	})
	require.NoError(t, err)
	assert.Equal(t, 0, f.repo.faqs["faq-1"].Order)

	trail, err := f.service.GetAuditTrail(context.Background(), "faq-1")
	require.NoError(t, err)
	assert.Len(t, trail, 2)
}

func TestUpdateFAQ_ParentSaveFailureSkipsReconcile(t *testing.T) {
	f := newFAQFixture(
		models.FAQTranslation{ID: "t-en", FAQID: "faq-1", Lang: "en", Question: "Q?", Answer: "A."},
	)
	f.repo.faqs["faq-1"] = &models.FAQ{ID: "faq-1", CategoryID: "cat-1"}
	f.repo.updateErr = errBackend

	_, err := f.service.UpdateFAQ(context.Background(), "faq-1", models.FAQInput{
		CategoryID:   "cat-1",
		Translations: []models.FAQTranslationInput{{Lang: "it", Question: "Domanda?", Answer: "Risposta."}},
	})
	require.ErrorIs(t, err, errBackend)
	assert.Zero(t, f.translations.calls)
	assert.Len(t, f.translations.rows, 1)
	assert.Empty(t, f.audit.entries)
}

func TestUpdateFAQ_MovingToUnknownCategory(t *testing.T) {
	f := newFAQFixture()
	f.repo.faqs["faq-1"] = &models.FAQ{ID: "faq-1", CategoryID: "cat-1"}

	_, err := f.service.UpdateFAQ(context.Background(), "faq-1", models.FAQInput{CategoryID: "gone"})
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, "cat-1", f.repo.faqs["faq-1"].CategoryID)
}

func TestListFAQs_PaginationDefaultsAndLanguage(t *testing.T) {
	f := newFAQFixture()
	for i := 0; i < 25; i++ {
		id := "f" + string(rune('a'+i))
		f.repo.faqs[id] = &models.FAQ{ID: id, CategoryID: "cat-1", Order: i, Translations: []models.FAQTranslation{
			{Lang: "es", Question: "¿Qué?"}, {Lang: "ko", Question: "무엇?"},
		}}
	}

	faqs, total, err := f.service.ListFAQs(context.Background(), models.FAQFilter{Lang: "ko"})
	require.NoError(t, err)
	assert.Equal(t, int64(25), total)
	require.Len(t, faqs, 20)
	assert.Equal(t, "무엇?", faqs[0].Translation.Question)

	faqs, _, err = f.service.ListFAQs(context.Background(), models.FAQFilter{Page: 2, Limit: 500})
	require.NoError(t, err)
	assert.Empty(t, faqs)

	_, _, err = f.service.ListFAQs(context.Background(), models.FAQFilter{Status: "GONE"})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestDeleteFAQ(t *testing.T) {
	f := newFAQFixture()
	f.repo.faqs["faq-1"] = &models.FAQ{ID: "faq-1", CategoryID: "cat-1"}

	require.NoError(t, f.service.DeleteFAQ(context.Background(), "faq-1"))
	assert.ErrorIs(t, f.service.DeleteFAQ(context.Background(), "faq-1"), ErrNotFound)
}

func TestUpdateFAQOrder(t *testing.T) {
	f := newFAQFixture()
	f.repo.faqs["faq-1"] = &models.FAQ{ID: "faq-1", CategoryID: "cat-1"}

	faq, err := f.service.UpdateFAQOrder(context.Background(), "faq-1", 4)
	require.NoError(t, err)
	assert.Equal(t, 4, faq.Order)
}
