// Package database opens the GORM connection shared by the store-backed
// modules and classifies driver errors.
package database

import (
	"errors"
	"fmt"
	"strings"

	"github.com/example/jwt-posts-demo/config"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"

	pgUniqueViolation = "23505"
	sqliteUniqueText  = "UNIQUE constraint failed"
	sqliteMemory      = ":memory:"
)

// ErrEmptyURL is returned when no database URL is configured.
var ErrEmptyURL = errors.New("database url is empty")

// Open connects to the database described by cfg.URL.
// postgres:// and postgresql:// URLs use the Postgres driver; sqlite://path,
// a bare file path, or :memory: use SQLite.
func Open(cfg config.Database) (*gorm.DB, error) {
	dialector, err := Dialector(cfg.URL)
	if err != nil {
		return nil, err
	}

	logLevel := logger.Silent
	if cfg.Logging {
		logLevel = logger.Info
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         logger.Default.LogMode(logLevel),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return db, nil
}

// Dialector returns the GORM dialector for the given URL.
func Dialector(url string) (gorm.Dialector, error) {
	if url == "" {
		return nil, ErrEmptyURL
	}
	switch Driver(url) {
	case DriverPostgres:
		return postgres.Open(url), nil
	default:
		return sqlite.Open(sqliteDSN(strings.TrimPrefix(url, "sqlite://"))), nil
	}
}

// sqliteDSN maps :memory: to a uniquely named shared-cache database so every
// pooled connection of one *gorm.DB sees the same schema and rows. Separate
// Open calls still get separate databases.
func sqliteDSN(path string) string {
	if path != sqliteMemory {
		return path
	}
	return fmt.Sprintf("file:mem-%s?mode=memory&cache=shared", uuid.NewString())
}

// Driver reports which driver a URL selects.
func Driver(url string) string {
	if strings.HasPrefix(url, "postgres://") || strings.HasPrefix(url, "postgresql://") {
		return DriverPostgres
	}
	return DriverSQLite
}

// IsDuplicateKey reports whether err is a unique constraint violation.
func IsDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolation
	}
	return strings.Contains(err.Error(), sqliteUniqueText)
}

// Close releases the underlying connection pool.
func Close(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql.DB: %w", err)
	}
	if err := sqlDB.Close(); err != nil {
		return fmt.Errorf("failed to close database: %w", err)
	}
	return nil
}
