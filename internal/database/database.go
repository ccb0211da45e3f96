package database

import (
	"context"
	"fmt"
	"time"

	"faq-backend/internal/config"
	"faq-backend/internal/models"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type Database struct {
	*gorm.DB
	config config.DatabaseConfig
}

// Connect opens the PostgreSQL pool and migrates the content schema.
func Connect(cfg config.DatabaseConfig, log *logrus.Logger) (*Database, error) {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC connect_timeout=10",
		cfg.Host, cfg.User, cfg.Password, cfg.DBName, cfg.Port, cfg.SSLMode)

	gormLogLevel := logger.Silent
	if log.IsLevelEnabled(logrus.DebugLevel) {
		gormLogLevel = logger.Warn
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(gormLogLevel),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
		DisableForeignKeyConstraintWhenMigrating: true,
		PrepareStmt:                              true,
	})
	if err != nil {
		log.WithError(err).Error("Failed to connect to database")
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := sqlDB.PingContext(ctx); err != nil {
		log.WithError(err).WithField("host", cfg.Host).Error("Failed to ping database")
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	sqlDB.SetConnMaxIdleTime(2 * time.Minute)

	log.WithFields(logrus.Fields{
		"host":     cfg.Host,
		"database": cfg.DBName,
	}).Info("Database connection established")

	if err := migrate(db, log); err != nil {
		return nil, fmt.Errorf("failed to run auto migration: %w", err)
	}

	return &Database{DB: db, config: cfg}, nil
}

func (d *Database) WithContext(ctx context.Context) *gorm.DB {
	return d.DB.WithContext(ctx)
}

func (d *Database) GetQueryTimeout() time.Duration {
	return d.config.QueryTimeout
}

func (d *Database) HealthCheck() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	return sqlDB.PingContext(ctx)
}

func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// translationIndexes speed up the per-parent, per-language lookups done on
// every save. They are not unique: rows left over from concurrent saves are
// cleaned up by the next save instead of failing it.
var translationIndexes = []string{
	"CREATE INDEX IF NOT EXISTS idx_faq_category_translations_parent_lang ON faq_category_translations (category_id, lang)",
	"CREATE INDEX IF NOT EXISTS idx_faq_translations_parent_lang ON faq_translations (faq_id, lang)",
}

func migrate(db *gorm.DB, log *logrus.Logger) error {
	log.Info("Running auto migration...")

	if err := db.AutoMigrate(
		&models.FAQCategory{},
		&models.FAQCategoryTranslation{},
		&models.FAQ{},
		&models.FAQTranslation{},
		&models.AuditLog{},
	); err != nil {
		log.WithError(err).Error("Failed to run auto migration")
		return err
	}

	for _, stmt := range translationIndexes {
		if err := db.Exec(stmt).Error; err != nil {
			log.WithError(err).Error("Failed to create translation index")
			return err
		}
	}

	log.Info("Auto migration completed successfully")
	return nil
}
