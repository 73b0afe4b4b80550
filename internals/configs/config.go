package configs

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
	"gorm.io/gorm/utils"
)

const (
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
	DriverSQLite   = "sqlite"
)

type Config struct {
	Port string

	DBDriver   string
	DBURL      string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string
	DBLogLevel gormLogger.LogLevel

	CorsAllowOrigins string
	RateLimitMax     int

	SeedEmployeesFile string
}

// =======================
// ENV LOADER
// =======================
func LoadEnv() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("[INFO] .env file not found, using system environment")
	} else {
		log.Println("[INFO] .env file loaded")
	}

	cfg := Config{
		Port:              GetEnv("PORT", "8000"),
		DBDriver:          strings.ToLower(GetEnv("DB_DRIVER", DriverPostgres)),
		DBURL:             GetEnv("DATABASE_URL"),
		DBHost:            GetEnv("DB_HOST", "localhost"),
		DBPort:            GetEnv("DB_PORT"),
		DBUser:            GetEnv("DB_USER"),
		DBPassword:        GetEnv("DB_PASSWORD"),
		DBName:            GetEnv("DB_NAME", "hrms"),
		DBSSLMode:         GetEnv("DB_SSLMODE", "disable"),
		DBLogLevel:        ParseLogLevel(GetEnv("DB_LOG_LEVEL", "warn")),
		CorsAllowOrigins:  GetEnv("CORS_ALLOW_ORIGINS", "*"),
		RateLimitMax:      getEnvInt("RATE_LIMIT_MAX", 100),
		SeedEmployeesFile: GetEnv("SEED_EMPLOYEES_FILE"),
	}

	if cfg.DBURL == "" && cfg.DBDriver != DriverSQLite && cfg.DBUser == "" {
		log.Println("[WARN] DB_USER is not set")
	}
	return cfg
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if (!exists || value == "") && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}

func getEnvInt(key string, def int) int {
	v := strings.TrimSpace(GetEnv(key))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("[WARN] %s=%q is not a number, using %d", key, v, def)
		return def
	}
	return n
}

// DSN returns DATABASE_URL when set, otherwise a DSN assembled for the configured driver.
// For sqlite, DB_NAME is the database file path.
func (c Config) DSN() string {
	if c.DBURL != "" {
		return c.DBURL
	}
	switch c.DBDriver {
	case DriverMySQL:
		port := c.DBPort
		if port == "" {
			port = "3306"
		}
		return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
			c.DBUser, c.DBPassword, c.DBHost, port, c.DBName)
	case DriverSQLite:
		return c.DBName + "?_pragma=foreign_keys(1)"
	default:
		port := c.DBPort
		if port == "" {
			port = "5432"
		}
		return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=hrms",
			c.DBUser, c.DBPassword, c.DBHost, port, c.DBName, c.DBSSLMode)
	}
}

func ParseLogLevel(s string) gormLogger.LogLevel {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "silent":
		return gormLogger.Silent
	case "error":
		return gormLogger.Error
	case "info":
		return gormLogger.Info
	default:
		return gormLogger.Warn
	}
}

// =======================
// GORM LOGGER CUSTOM
// =======================
type GormLogger struct {
	SlowThreshold time.Duration
	LogLevel      gormLogger.LogLevel
}

func NewGormLogger(level gormLogger.LogLevel) gormLogger.Interface {
	return &GormLogger{
		SlowThreshold: 200 * time.Millisecond,
		LogLevel:      level,
	}
}

func (l *GormLogger) LogMode(level gormLogger.LogLevel) gormLogger.Interface {
	cp := *l
	cp.LogLevel = level
	return &cp
}

func (l *GormLogger) Info(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= gormLogger.Info {
		log.Printf("[INFO] "+msg, data...)
	}
}

func (l *GormLogger) Warn(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= gormLogger.Warn {
		log.Printf("[WARN] "+msg, data...)
	}
}

func (l *GormLogger) Error(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= gormLogger.Error {
		log.Printf("[ERROR] "+msg, data...)
	}
}

func (l *GormLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.LogLevel <= gormLogger.Silent {
		return
	}
	elapsed := time.Since(begin)
	file := utils.FileWithLineNum()

	switch {
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound) && l.LogLevel >= gormLogger.Error:
		sql, rows := fc()
		log.Printf("[ERROR] %s | %v | %s | %d rows | %s", file, err, elapsed, rows, sql)
	case elapsed > l.SlowThreshold && l.LogLevel >= gormLogger.Warn:
		sql, rows := fc()
		log.Printf("[SLOW SQL] %s | %s | %d rows | %s", file, elapsed, rows, sql)
	case l.LogLevel >= gormLogger.Info:
		sql, rows := fc()
		log.Printf("[QUERY] %s | %s | %d rows | %s", file, elapsed, rows, sql)
	}
}
