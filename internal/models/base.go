package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func newID(id *string) {
	if *id == "" {
		*id = uuid.NewString()
	}
}

func (c *FAQCategory) BeforeCreate(tx *gorm.DB) error {
	newID(&c.ID)
	return nil
}

func (t *FAQCategoryTranslation) BeforeCreate(tx *gorm.DB) error {
	newID(&t.ID)
	return nil
}

func (f *FAQ) BeforeCreate(tx *gorm.DB) error {
	newID(&f.ID)
	return nil
}

func (t *FAQTranslation) BeforeCreate(tx *gorm.DB) error {
	newID(&t.ID)
	return nil
}

func (a *AuditLog) BeforeCreate(tx *gorm.DB) error {
	newID(&a.ID)
	return nil
}
