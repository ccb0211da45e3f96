package handlers

import (
	"context"

	"faq-backend/internal/models"
	"faq-backend/internal/services"
	"faq-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// Presigner issues upload URLs for category logos.
type Presigner interface {
	GeneratePresignedURL(ctx context.Context, filename, contentType string) (*models.UploadTicket, error)
}

var _ Presigner = (*services.MinIOService)(nil)

type UploadHandler struct {
	presigner Presigner
	logger    *logrus.Logger
}

func NewUploadHandler(presigner Presigner, logger *logrus.Logger) *UploadHandler {
	return &UploadHandler{
		presigner: presigner,
		logger:    logger,
	}
}

// GetPresignedURL godoc
// @Summary Get presigned URL for a category logo upload
// @Description Generate a presigned PUT URL; the returned file data is sent back as logo_data on category save
// @Tags upload
// @Produce json
// @Param filename query string true "Filename"
// @Param contentType query string false "Content Type" default(image/png)
// @Success 200 {object} utils.StandardResponse{data=models.UploadTicket}
// @Failure 400 {object} utils.StandardResponse
// @Failure 500 {object} utils.StandardResponse
// @Security BearerAuth
// @Router /upload/presign [get]
func (h *UploadHandler) GetPresignedURL(c *fiber.Ctx) error {
	filename := c.Query("filename")
	if filename == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "filename is required")
	}

	ticket, err := h.presigner.GeneratePresignedURL(c.UserContext(), filename, c.Query("contentType", "image/png"))
	if err != nil {
		return respondError(c, h.logger, err, "Not found", "Failed to generate presigned URL")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Presigned URL generated successfully", ticket)
}
