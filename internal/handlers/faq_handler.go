package handlers

import (
	"strings"

	"faq-backend/internal/models"
	"faq-backend/internal/services"
	"faq-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type FAQHandler struct {
	service services.FAQService
	logger  *logrus.Logger
}

func NewFAQHandler(service services.FAQService, logger *logrus.Logger) *FAQHandler {
	return &FAQHandler{
		service: service,
		logger:  logger,
	}
}

// ListFAQs godoc
// @Summary List FAQs
// @Description List FAQs with pagination, filtered by category and status, searched across translations
// @Tags faqs
// @Produce json
// @Param category_id query string false "Category ID"
// @Param status query string false "Status (ACTIVE, INACTIVE, ARCHIVED)"
// @Param query query string false "Search in questions and answers"
// @Param lang query string false "Display language; also restricts the search"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(20)
// @Success 200 {object} utils.StandardResponse{data=[]models.FAQ,meta=utils.PaginationMeta}
// @Failure 400 {object} utils.StandardResponse
// @Security ApiKeyAuth
// @Router /faqs [get]
func (h *FAQHandler) ListFAQs(c *fiber.Ctx) error {
	lang, err := langQuery(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error())
	}

	filter := models.FAQFilter{
		CategoryID: c.Query("category_id"),
		Status:     models.Status(strings.ToUpper(c.Query("status"))),
		Query:      c.Query("query"),
		Lang:       lang,
		Page:       c.QueryInt("page", 1),
		Limit:      c.QueryInt("limit", 20),
	}

	faqs, total, err := h.service.ListFAQs(c.UserContext(), filter)
	if err != nil {
		return respondError(c, h.logger, err, "FAQ not found", "Failed to retrieve FAQs")
	}

	page := filter.Paginated()
	meta := utils.CreatePaginationMeta(page.Page, page.Limit, total)
	return utils.SuccessWithMetaResponse(c, fiber.StatusOK, "FAQs retrieved successfully", faqs, meta)
}

// GetFAQ godoc
// @Summary Get FAQ by ID
// @Tags faqs
// @Produce json
// @Param id path string true "FAQ ID"
// @Param lang query string false "Display language"
// @Success 200 {object} utils.StandardResponse{data=models.FAQ}
// @Failure 400 {object} utils.StandardResponse
// @Failure 404 {object} utils.StandardResponse
// @Security ApiKeyAuth
// @Router /faqs/{id} [get]
func (h *FAQHandler) GetFAQ(c *fiber.Ctx) error {
	lang, err := langQuery(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error())
	}

	faq, err := h.service.GetFAQ(c.UserContext(), c.Params("id"), lang)
	if err != nil {
		return respondError(c, h.logger, err, "FAQ not found", "Failed to retrieve FAQ")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "FAQ retrieved successfully", faq)
}

// CreateFAQ godoc
// @Summary Create an FAQ
// @Description Create an FAQ at the end of its category together with its translations
// @Tags faqs
// @Accept json
// @Produce json
// @Param faq body FAQRequest true "FAQ"
// @Success 201 {object} utils.StandardResponse{data=models.FAQ}
// @Failure 400 {object} utils.StandardResponse
// @Failure 404 {object} utils.StandardResponse
// @Failure 500 {object} utils.StandardResponse{data=ReconcileFailure}
// @Security BearerAuth
// @Router /faqs [post]
func (h *FAQHandler) CreateFAQ(c *fiber.Ctx) error {
	var req FAQRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	faq, err := h.service.CreateFAQ(c.UserContext(), req.toInput())
	if err != nil {
		return respondError(c, h.logger, err, "Category not found", "Failed to create FAQ")
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, "FAQ created successfully", faq)
}

// UpdateFAQ godoc
// @Summary Update an FAQ
// @Description Update an FAQ and replace its translation set with the submitted one
// @Tags faqs
// @Accept json
// @Produce json
// @Param id path string true "FAQ ID"
// @Param faq body FAQRequest true "FAQ"
// @Success 200 {object} utils.StandardResponse{data=models.FAQ}
// @Failure 400 {object} utils.StandardResponse
// @Failure 404 {object} utils.StandardResponse
// @Failure 500 {object} utils.StandardResponse{data=ReconcileFailure}
// @Security BearerAuth
// @Router /faqs/{id} [put]
func (h *FAQHandler) UpdateFAQ(c *fiber.Ctx) error {
	var req FAQRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	faq, err := h.service.UpdateFAQ(c.UserContext(), c.Params("id"), req.toInput())
	if err != nil {
		return respondError(c, h.logger, err, "FAQ not found", "Failed to update FAQ")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "FAQ updated successfully", faq)
}

// UpdateFAQOrder godoc
// @Summary Move an FAQ within its category
// @Tags faqs
// @Accept json
// @Produce json
// @Param id path string true "FAQ ID"
// @Param order body OrderRequest true "New position"
// @Success 200 {object} utils.StandardResponse{data=models.FAQ}
// @Failure 400 {object} utils.StandardResponse
// @Failure 404 {object} utils.StandardResponse
// @Security BearerAuth
// @Router /faqs/{id}/order [patch]
func (h *FAQHandler) UpdateFAQOrder(c *fiber.Ctx) error {
	order, ok := orderBody(c)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "order is required")
	}

	faq, err := h.service.UpdateFAQOrder(c.UserContext(), c.Params("id"), order)
	if err != nil {
		return respondError(c, h.logger, err, "FAQ not found", "Failed to update FAQ order")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "FAQ order updated successfully", faq)
}

// DeleteFAQ godoc
// @Summary Delete an FAQ
// @Tags faqs
// @Produce json
// @Param id path string true "FAQ ID"
// @Success 200 {object} utils.StandardResponse
// @Failure 404 {object} utils.StandardResponse
// @Security BearerAuth
// @Router /faqs/{id} [delete]
func (h *FAQHandler) DeleteFAQ(c *fiber.Ctx) error {
	if err := h.service.DeleteFAQ(c.UserContext(), c.Params("id")); err != nil {
		return respondError(c, h.logger, err, "FAQ not found", "Failed to delete FAQ")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "FAQ deleted successfully", nil)
}

// GetFAQAudit godoc
// @Summary Audit trail of an FAQ
// @Tags faqs
// @Produce json
// @Param id path string true "FAQ ID"
// @Success 200 {object} utils.StandardResponse{data=[]models.AuditLog}
// @Security BearerAuth
// @Router /faqs/{id}/audit [get]
func (h *FAQHandler) GetFAQAudit(c *fiber.Ctx) error {
	trail, err := h.service.GetAuditTrail(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, h.logger, err, "FAQ not found", "Failed to retrieve audit trail")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Audit trail retrieved successfully", trail)
}
