package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"faq-backend/internal/database"

	"gorm.io/gorm"
)

var ErrNotFound = errors.New("record not found")

type base struct {
	db      *database.Database
	timeout time.Duration
}

func newBase(db *database.Database) base {
	return base{
		db:      db,
		timeout: db.GetQueryTimeout(),
	}
}

func (r base) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, r.timeout)
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

func orderedTranslations(db *gorm.DB) *gorm.DB {
	return db.Order("created_at ASC, id ASC")
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern matches term literally anywhere in a LIKE/ILIKE ... ESCAPE '\' operand.
func containsPattern(term string) string {
	return "%" + likeEscaper.Replace(term) + "%"
}
