package helper

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"

	// sqlite extended result codes
	sqliteConstraintPrimaryKey = 1555
	sqliteConstraintUnique     = 2067
	sqliteConstraintForeignKey = 787
)

// IsUniqueViolation reports whether err comes from a unique index/constraint.
// The GORM sentinel needs TranslateError; the driver checks cover handles opened without it.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	if pgCode(err) == pgUniqueViolation {
		return true
	}
	code := sqliteCode(err)
	return code == sqliteConstraintUnique || code == sqliteConstraintPrimaryKey
}

// IsForeignKeyViolation reports whether err is a broken FK reference.
func IsForeignKeyViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}
	return pgCode(err) == pgForeignKeyViolation || sqliteCode(err) == sqliteConstraintForeignKey
}

func pgCode(err error) string {
	// pgx
	var pgxErr *pgconn.PgError
	if errors.As(err, &pgxErr) {
		return pgxErr.Code
	}
	// lib/pq
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code)
	}
	return ""
}

// sqliteCode reads the result code off errors from the pure-Go sqlite driver.
func sqliteCode(err error) int {
	var coded interface{ Code() int }
	if errors.As(err, &coded) {
		return coded.Code()
	}
	return 0
}
