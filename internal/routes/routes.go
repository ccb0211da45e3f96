package routes

import (
	"faq-backend/internal/handlers"
	"faq-backend/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type Handlers struct {
	Categories *handlers.FAQCategoryHandler
	FAQs       *handlers.FAQHandler
	Upload     *handlers.UploadHandler
}

func Setup(app *fiber.App, h Handlers, auth *middleware.Auth) {
	// API versioning
	api := app.Group("/api")
	v1 := api.Group("/v1")

	read := auth.APIKey()
	write := auth.UserToken()

	v1.Get("/languages", read, handlers.ListLanguages)

	// Category routes; translations are saved with the category
	categories := v1.Group("/faq-categories")
	{
		categories.Get("/", read, h.Categories.ListCategories)
		categories.Get("/counts", read, h.Categories.CountCategories)
		categories.Get("/:id", read, h.Categories.GetCategory)
		categories.Post("/", write, h.Categories.CreateCategory)
		categories.Put("/:id", write, h.Categories.UpdateCategory)
		categories.Patch("/:id/order", write, h.Categories.UpdateCategoryOrder)
		categories.Delete("/:id", write, h.Categories.DeleteCategory)
		categories.Get("/:id/audit", write, h.Categories.GetCategoryAudit)
	}

	faqs := v1.Group("/faqs")
	{
		faqs.Get("/", read, h.FAQs.ListFAQs)
		faqs.Get("/:id", read, h.FAQs.GetFAQ)
		faqs.Post("/", write, h.FAQs.CreateFAQ)
		faqs.Put("/:id", write, h.FAQs.UpdateFAQ)
		faqs.Patch("/:id/order", write, h.FAQs.UpdateFAQOrder)
		faqs.Delete("/:id", write, h.FAQs.DeleteFAQ)
		faqs.Get("/:id/audit", write, h.FAQs.GetFAQAudit)
	}

	upload := v1.Group("/upload")
	{
		upload.Get("/presign", write, h.Upload.GetPresignedURL)
	}
}
