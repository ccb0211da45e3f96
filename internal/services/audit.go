package services

import (
	"context"

	"faq-backend/internal/models"
	"faq-backend/internal/repository"

	"github.com/sirupsen/logrus"
)

const (
	auditableCategory = "FAQCategory"
	auditableFAQ      = "FAQ"
	auditTrailLimit   = 50
)

type actorKey struct{}

// Actor identifies who performed a write.
type Actor struct {
	UserID        string
	RemoteAddress string
}

func WithActor(ctx context.Context, actor Actor) context.Context {
	return context.WithValue(ctx, actorKey{}, actor)
}

func ActorFromContext(ctx context.Context) Actor {
	actor, _ := ctx.Value(actorKey{}).(Actor)
	return actor
}

type auditor struct {
	repo   repository.AuditLogRepository
	logger *logrus.Logger
}

// record stores an audit entry. Failures are logged and never fail the write
// being audited.
func (a auditor) record(ctx context.Context, auditableType, id string, action models.AuditAction, oldValues, newValues interface{}) {
	if a.repo == nil {
		return
	}

	actor := ActorFromContext(ctx)
	entry := &models.AuditLog{
		AuditableID:   id,
		AuditableType: auditableType,
		Action:        action,
		UserID:        actor.UserID,
		RemoteAddress: actor.RemoteAddress,
		OldValues:     models.NewJSON(oldValues),
		NewValues:     models.NewJSON(newValues),
	}
	if err := a.repo.Create(ctx, entry); err != nil {
		a.logger.WithError(err).WithFields(logrus.Fields{
			"auditable_type": auditableType,
			"auditable_id":   id,
			"action":         action,
		}).Warn("Failed to write audit log")
	}
}

func (a auditor) trail(ctx context.Context, auditableType, id string) ([]models.AuditLog, error) {
	if a.repo == nil {
		return []models.AuditLog{}, nil
	}
	return a.repo.FindByAuditable(ctx, auditableType, id, auditTrailLimit)
}
