package infra

import (
	"fmt"

	"github.com/madouyatt95/laserpark/internal/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase establishes a GORM connection backed by pgx, runs AutoMigrate to
// create / update all tables, then applies the idempotent SQL patches that
// AutoMigrate cannot express.
func NewDatabase(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)

	if err := RunMigrations(db); err != nil {
		return nil, err
	}

	return db, nil
}

// RunMigrations creates or updates the schema. Also used by integration tests
// against a disposable database.
func RunMigrations(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&model.Park{},
		&model.User{},
		&model.Category{},
		&model.Activity{},
		&model.Expense{},
		&model.StockItem{},
		&model.StockMovement{},
		&model.DailyClosure{},
		&model.AuditLogEntry{},
		&model.TeamMember{},
		&model.Shift{},
		&model.QuickShortcut{},
	); err != nil {
		return fmt.Errorf("AutoMigrate: %w", err)
	}
	return applySchemaPatches(db)
}

// applySchemaPatches runs idempotent DDL that AutoMigrate cannot fully handle.
// Each statement uses IF NOT EXISTS semantics so re-running is safe.
func applySchemaPatches(db *gorm.DB) error {
	patches := []struct{ descr, sql string }{
		// One closure per (park, date). AutoMigrate creates this composite
		// unique index from the model tags on fresh databases; this guard
		// covers schemas created before the index was declared.
		{"unique closure per park and date", `
DO $$ BEGIN
  IF NOT EXISTS (SELECT 1 FROM pg_indexes WHERE indexname = 'idx_closures_park_date') THEN
    CREATE UNIQUE INDEX idx_closures_park_date
        ON daily_closures (park_id, closure_date);
  END IF;
END $$`},
		// Partial index for the dominant listing query: active activities of
		// one park within a day window.
		{"active activities per park and date", `
DO $$ BEGIN
  IF NOT EXISTS (SELECT 1 FROM pg_indexes WHERE indexname = 'idx_activities_park_date_active') THEN
    CREATE INDEX idx_activities_park_date_active
        ON activities (park_id, activity_date)
        WHERE status = 'active';
  END IF;
END $$`},
		// Audit pruning walks (park_id, created_at DESC).
		{"audit log park/created index", `
DO $$ BEGIN
  IF NOT EXISTS (SELECT 1 FROM pg_indexes WHERE indexname = 'idx_audit_logs_park_created') THEN
    CREATE INDEX idx_audit_logs_park_created
        ON audit_logs (park_id, created_at DESC);
  END IF;
END $$`},
	}

	for _, p := range patches {
		if err := db.Exec(p.sql).Error; err != nil {
			return fmt.Errorf("patch %q: %w", p.descr, err)
		}
	}
	return nil
}
