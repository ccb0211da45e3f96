package handlers

import (
	"errors"
	"strings"

	"faq-backend/internal/models"
	"faq-backend/internal/services"
	"faq-backend/internal/translation"
	"faq-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// respondError maps service errors onto the response envelope.
func respondError(c *fiber.Ctx, logger *logrus.Logger, err error, notFound, failed string) error {
	var rerr *translation.ReconcileError

	// Failed translation writes wrap store errors, so they are matched first.
	switch {
	case errors.As(err, &rerr):
		return utils.ErrorWithDataResponse(c, fiber.StatusInternalServerError, "Failed to save translations", ReconcileFailure{
			ParentID:       rerr.Report.ParentID,
			Failed:         rerr.Report.Failed(),
			DeletesSkipped: rerr.Report.DeletesSkipped,
		})
	case errors.Is(err, services.ErrValidation):
		return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrNotFound):
		return utils.ErrorResponse(c, fiber.StatusNotFound, notFound)
	}

	logger.WithError(err).WithFields(logrus.Fields{
		"method": c.Method(),
		"path":   c.Path(),
	}).Error(failed)
	return utils.ErrorResponse(c, fiber.StatusInternalServerError, failed)
}

// langQuery reads the optional ?lang= display language.
func langQuery(c *fiber.Ctx) (models.LanguageCode, error) {
	raw := strings.TrimSpace(c.Query("lang"))
	if raw == "" {
		return "", nil
	}
	return models.ParseLanguageCode(raw)
}

func orderBody(c *fiber.Ctx) (int, bool) {
	var req OrderRequest
	if err := c.BodyParser(&req); err != nil || req.Order == nil {
		return 0, false
	}
	return *req.Order, true
}
