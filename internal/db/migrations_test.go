package db

import (
	"path/filepath"
	"testing"

	"gorm.io/gorm"
)

func openTestDB(t *testing.T) (*gorm.DB, string) {
	t.Helper()

	databasePath := filepath.Join(t.TempDir(), "medtrack-test.db")
	database, err := OpenSQLite(databasePath)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() {
		sqlDB, err := database.DB()
		if err == nil {
			_ = sqlDB.Close()
		}
	})
	return database, databasePath
}

func tableExists(t *testing.T, database *gorm.DB, name string) bool {
	t.Helper()

	var count int64
	err := database.Raw("SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = ?", name).Scan(&count).Error
	if err != nil {
		t.Fatalf("query sqlite_master: %v", err)
	}
	return count > 0
}

func TestOpenSQLiteAppliesAllMigrations(t *testing.T) {
	database, _ := openTestDB(t)

	for _, table := range []string{"schema_migrations", "users", "medicines", "acknowledgment_logs"} {
		if !tableExists(t, database, table) {
			t.Errorf("expected table %q after migration", table)
		}
	}

	var applied int64
	if err := database.Raw("SELECT COUNT(*) FROM schema_migrations").Scan(&applied).Error; err != nil {
		t.Fatalf("count schema_migrations: %v", err)
	}
	if applied < 3 {
		t.Fatalf("expected at least 3 applied migrations, got %d", applied)
	}
}

func TestMigrationsAreIdempotentAcrossReopens(t *testing.T) {
	database, databasePath := openTestDB(t)

	var firstRun int64
	if err := database.Raw("SELECT COUNT(*) FROM schema_migrations").Scan(&firstRun).Error; err != nil {
		t.Fatalf("count schema_migrations: %v", err)
	}
	sqlDB, err := database.DB()
	if err != nil {
		t.Fatalf("unwrap sql db: %v", err)
	}
	if err := sqlDB.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	reopened, err := OpenSQLite(databasePath)
	if err != nil {
		t.Fatalf("reopen sqlite: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := reopened.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	var secondRun int64
	if err := reopened.Raw("SELECT COUNT(*) FROM schema_migrations").Scan(&secondRun).Error; err != nil {
		t.Fatalf("count schema_migrations after reopen: %v", err)
	}
	if secondRun != firstRun {
		t.Fatalf("reopen must not re-apply migrations: %d vs %d", firstRun, secondRun)
	}
}
