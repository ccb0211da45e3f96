package handlers

import (
	"faq-backend/internal/services"
	"faq-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type FAQCategoryHandler struct {
	service services.FAQCategoryService
	logger  *logrus.Logger
}

func NewFAQCategoryHandler(service services.FAQCategoryService, logger *logrus.Logger) *FAQCategoryHandler {
	return &FAQCategoryHandler{
		service: service,
		logger:  logger,
	}
}

// ListCategories godoc
// @Summary List FAQ categories
// @Description List categories ordered by position, optionally filtered by status and resolved to a display language
// @Tags faq-categories
// @Produce json
// @Param status query string false "Status filter (all, ACTIVE, INACTIVE, ARCHIVED)" default(all)
// @Param lang query string false "Display language"
// @Success 200 {object} utils.StandardResponse{data=[]models.FAQCategory}
// @Failure 400 {object} utils.StandardResponse
// @Failure 401 {object} utils.StandardResponse
// @Security ApiKeyAuth
// @Router /faq-categories [get]
func (h *FAQCategoryHandler) ListCategories(c *fiber.Ctx) error {
	lang, err := langQuery(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error())
	}

	categories, err := h.service.ListCategories(c.UserContext(), c.Query("status", "all"), lang)
	if err != nil {
		return respondError(c, h.logger, err, "Category not found", "Failed to retrieve categories")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Categories retrieved successfully", categories)
}

// CountCategories godoc
// @Summary Count FAQ categories by status
// @Tags faq-categories
// @Produce json
// @Success 200 {object} utils.StandardResponse{data=models.StatusCounts}
// @Failure 401 {object} utils.StandardResponse
// @Security ApiKeyAuth
// @Router /faq-categories/counts [get]
func (h *FAQCategoryHandler) CountCategories(c *fiber.Ctx) error {
	counts, err := h.service.CountByStatus(c.UserContext())
	if err != nil {
		return respondError(c, h.logger, err, "Category not found", "Failed to count categories")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Category counts retrieved successfully", counts)
}

// GetCategory godoc
// @Summary Get FAQ category by ID
// @Tags faq-categories
// @Produce json
// @Param id path string true "Category ID"
// @Param lang query string false "Display language"
// @Success 200 {object} utils.StandardResponse{data=models.FAQCategory}
// @Failure 400 {object} utils.StandardResponse
// @Failure 404 {object} utils.StandardResponse
// @Security ApiKeyAuth
// @Router /faq-categories/{id} [get]
func (h *FAQCategoryHandler) GetCategory(c *fiber.Ctx) error {
	lang, err := langQuery(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error())
	}

	category, err := h.service.GetCategory(c.UserContext(), c.Params("id"), lang)
	if err != nil {
		return respondError(c, h.logger, err, "Category not found", "Failed to retrieve category")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Category retrieved successfully", category)
}

// CreateCategory godoc
// @Summary Create an FAQ category
// @Description Create a category at the end of the ordering together with its translations
// @Tags faq-categories
// @Accept json
// @Produce json
// @Param category body CategoryRequest true "Category"
// @Success 201 {object} utils.StandardResponse{data=models.FAQCategory}
// @Failure 400 {object} utils.StandardResponse
// @Failure 500 {object} utils.StandardResponse{data=ReconcileFailure}
// @Security BearerAuth
// @Router /faq-categories [post]
func (h *FAQCategoryHandler) CreateCategory(c *fiber.Ctx) error {
	var req CategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	category, err := h.service.CreateCategory(c.UserContext(), req.toInput())
	if err != nil {
		return respondError(c, h.logger, err, "Category not found", "Failed to create category")
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, "Category created successfully", category)
}

// UpdateCategory godoc
// @Summary Update an FAQ category
// @Description Update status and logo, and replace the translation set with the submitted one
// @Tags faq-categories
// @Accept json
// @Produce json
// @Param id path string true "Category ID"
// @Param category body CategoryRequest true "Category"
// @Success 200 {object} utils.StandardResponse{data=models.FAQCategory}
// @Failure 400 {object} utils.StandardResponse
// @Failure 404 {object} utils.StandardResponse
// @Failure 500 {object} utils.StandardResponse{data=ReconcileFailure}
// @Security BearerAuth
// @Router /faq-categories/{id} [put]
func (h *FAQCategoryHandler) UpdateCategory(c *fiber.Ctx) error {
	var req CategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	category, err := h.service.UpdateCategory(c.UserContext(), c.Params("id"), req.toInput())
	if err != nil {
		return respondError(c, h.logger, err, "Category not found", "Failed to update category")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Category updated successfully", category)
}

// UpdateCategoryOrder godoc
// @Summary Move an FAQ category
// @Tags faq-categories
// @Accept json
// @Produce json
// @Param id path string true "Category ID"
// @Param order body OrderRequest true "New position"
// @Success 200 {object} utils.StandardResponse{data=models.FAQCategory}
// @Failure 400 {object} utils.StandardResponse
// @Failure 404 {object} utils.StandardResponse
// @Security BearerAuth
// @Router /faq-categories/{id}/order [patch]
func (h *FAQCategoryHandler) UpdateCategoryOrder(c *fiber.Ctx) error {
	order, ok := orderBody(c)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "order is required")
	}

	category, err := h.service.UpdateCategoryOrder(c.UserContext(), c.Params("id"), order)
	if err != nil {
		return respondError(c, h.logger, err, "Category not found", "Failed to update category order")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Category order updated successfully", category)
}

// DeleteCategory godoc
// @Summary Delete an FAQ category
// @Description Delete a category with its translations, FAQs and logo
// @Tags faq-categories
// @Produce json
// @Param id path string true "Category ID"
// @Success 200 {object} utils.StandardResponse
// @Failure 404 {object} utils.StandardResponse
// @Security BearerAuth
// @Router /faq-categories/{id} [delete]
func (h *FAQCategoryHandler) DeleteCategory(c *fiber.Ctx) error {
	if err := h.service.DeleteCategory(c.UserContext(), c.Params("id")); err != nil {
		return respondError(c, h.logger, err, "Category not found", "Failed to delete category")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Category deleted successfully", nil)
}

// GetCategoryAudit godoc
// @Summary Audit trail of an FAQ category
// @Tags faq-categories
// @Produce json
// @Param id path string true "Category ID"
// @Success 200 {object} utils.StandardResponse{data=[]models.AuditLog}
// @Security BearerAuth
// @Router /faq-categories/{id}/audit [get]
func (h *FAQCategoryHandler) GetCategoryAudit(c *fiber.Ctx) error {
	trail, err := h.service.GetAuditTrail(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, h.logger, err, "Category not found", "Failed to retrieve audit trail")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Audit trail retrieved successfully", trail)
}
