package models

import "time"

type AuditAction string

const (
	AuditCreate AuditAction = "CREATE"
	AuditUpdate AuditAction = "UPDATE"
	AuditDelete AuditAction = "DELETE"
)

type AuditLog struct {
	ID            string      `gorm:"primaryKey;type:varchar(36)" json:"id"`
	AuditableID   string      `gorm:"type:varchar(36);index;not null" json:"auditable_id"`
	AuditableType string      `gorm:"type:varchar(64);index;not null" json:"auditable_type" example:"FAQCategory"`
	Action        AuditAction `gorm:"type:varchar(16);not null" json:"action" example:"UPDATE"`
	UserID        string      `json:"user_id,omitempty"`
	RemoteAddress string      `json:"remote_address,omitempty"`
	OldValues     JSON        `gorm:"type:jsonb" json:"old_values,omitempty" swaggertype:"object"`
	NewValues     JSON        `gorm:"type:jsonb" json:"new_values,omitempty" swaggertype:"object"`
	CreatedAt     time.Time   `gorm:"index" json:"created_at"`
}

func (AuditLog) TableName() string {
	return "audit_logs"
}
