package repository

import (
	"context"

	"faq-backend/internal/database"
	"faq-backend/internal/models"
)

type AuditLogRepository interface {
	Create(ctx context.Context, entry *models.AuditLog) error
	FindByAuditable(ctx context.Context, auditableType, auditableID string, limit int) ([]models.AuditLog, error)
}

type auditLogRepository struct {
	base
}

func NewAuditLogRepository(db *database.Database) AuditLogRepository {
	return &auditLogRepository{base: newBase(db)}
}

func (r *auditLogRepository) Create(ctx context.Context, entry *models.AuditLog) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *auditLogRepository) FindByAuditable(ctx context.Context, auditableType, auditableID string, limit int) ([]models.AuditLog, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var entries []models.AuditLog
	err := r.db.WithContext(ctx).
		Where("auditable_type = ? AND auditable_id = ?", auditableType, auditableID).
		Order("created_at DESC").
		Limit(limit).
		Find(&entries).Error
	return entries, err
}
