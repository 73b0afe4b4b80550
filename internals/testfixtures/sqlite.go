// Package testfixtures opens throwaway SQLite stores and apps for tests.
package testfixtures

import (
	"path/filepath"
	"testing"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"hrms_backend/internals/configs"
	database "hrms_backend/internals/databases"
	routes "hrms_backend/internals/route"
)

// Config returns a sqlite config pointing into a fresh temp dir.
func Config(tb testing.TB) configs.Config {
	tb.Helper()
	return configs.Config{
		Port:             "0",
		DBDriver:         configs.DriverSQLite,
		DBName:           filepath.Join(tb.TempDir(), "hrms.db"),
		DBLogLevel:       gormLogger.Silent,
		CorsAllowOrigins: "*",
	}
}

// NewDB opens and migrates a temp-file SQLite store, closed on cleanup.
func NewDB(tb testing.TB) *gorm.DB {
	tb.Helper()
	return openDB(tb, Config(tb))
}

func openDB(tb testing.TB, cfg configs.Config) *gorm.DB {
	tb.Helper()

	db, err := database.Open(cfg)
	if err != nil {
		tb.Fatalf("failed to open storage: %v", err)
	}
	tb.Cleanup(func() { _ = database.Close(db) })

	if err := database.Migrate(db); err != nil {
		tb.Fatalf("failed to migrate storage: %v", err)
	}
	return db
}

// NewApp builds the full HTTP app over a fresh store.
func NewApp(tb testing.TB) (*fiber.App, *gorm.DB) {
	tb.Helper()
	cfg := Config(tb)
	db := openDB(tb, cfg)
	return routes.NewApp(db, cfg), db
}
