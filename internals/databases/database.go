package database

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"hrms_backend/internals/configs"
)

// Dialector picks the GORM driver for cfg.DBDriver.
func Dialector(cfg configs.Config) (gorm.Dialector, error) {
	dsn := cfg.DSN()
	switch cfg.DBDriver {
	case configs.DriverPostgres, "postgresql", "":
		return postgres.New(postgres.Config{
			DSN:                  dsn,
			PreferSimpleProtocol: true,
		}), nil
	case configs.DriverMySQL:
		return mysql.Open(dsn), nil
	case configs.DriverSQLite:
		return sqlite.Open(dsn), nil
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}
}

// Open returns a store handle; callers own it and must Close it.
func Open(cfg configs.Config) (*gorm.DB, error) {
	dialector, err := Dialector(cfg)
	if err != nil {
		return nil, err
	}

	log.Printf("[INFO] Connecting to %s...", cfg.DBDriver)
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         configs.NewGormLogger(cfg.DBLogLevel),
		TranslateError: true,
		// autoCreateTime stamps in UTC
		NowFunc: func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", cfg.DBDriver, err)
	}
	if cfg.DBDriver == configs.DriverSQLite {
		// single writer; avoids SQLITE_BUSY between pooled connections
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.SetMaxOpenConns(1)
		}
		return db, nil
	}
	TunePool(db)
	return db, nil
}

func TunePool(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Printf("[WARN] pool tune err: %v", err)
		return
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}

func Ping(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
