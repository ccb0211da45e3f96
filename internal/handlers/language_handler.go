package handlers

import (
	"faq-backend/internal/models"
	"faq-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
)

// ListLanguages godoc
// @Summary List supported languages
// @Tags languages
// @Produce json
// @Success 200 {object} utils.StandardResponse{data=[]models.Language}
// @Security ApiKeyAuth
// @Router /languages [get]
func ListLanguages(c *fiber.Ctx) error {
	return utils.SuccessResponse(c, fiber.StatusOK, "Languages retrieved successfully", models.Languages())
}
