package db

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const (
	// Lock contention is expected around signup bursts; wait instead of
	// failing with SQLITE_BUSY.
	sqliteBusyTimeout = 5 * time.Second

	slowQueryThreshold = 200 * time.Millisecond
)

// OpenSQLite opens the database file, creating its directory if needed, and
// brings the schema up to date before returning the handle.
func OpenSQLite(dbPath string) (*gorm.DB, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	dsn := fmt.Sprintf("%s?_foreign_keys=on&_busy_timeout=%d", dbPath, sqliteBusyTimeout.Milliseconds())
	database, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: newDatabaseLogger(),
	})
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	if err := applyEmbeddedMigrations(database); err != nil {
		return nil, fmt.Errorf("apply embedded migrations: %w", err)
	}

	return database, nil
}

// newDatabaseLogger keeps query logging quiet: only slow queries and errors,
// and record-not-found is an expected outcome for lookup repositories.
func newDatabaseLogger() gormlogger.Interface {
	return gormlogger.New(
		log.New(os.Stderr, "db: ", log.LstdFlags),
		gormlogger.Config{
			SlowThreshold:             slowQueryThreshold,
			LogLevel:                  gormlogger.Warn,
			IgnoreRecordNotFoundError: true,
		},
	)
}
