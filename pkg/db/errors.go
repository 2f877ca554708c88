package db

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	pkgerrors "github.com/angelmondragon/cornerstore-backend/pkg/errors"
)

const pgForeignKeyViolation = "23503"

// IsNotFound reports whether err is GORM's record-not-found sentinel.
func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

// IsForeignKeyViolation reports whether err was raised by a foreign key constraint,
// on Postgres (SQLSTATE 23503) or SQLite.
func IsForeignKeyViolation(err error) bool {
	if err == nil {
		return false
	}
	if pg, ok := pkgerrors.PGDiagnostics(err); ok {
		return pg.Code == pgForeignKeyViolation
	}
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}
	return strings.Contains(err.Error(), "FOREIGN KEY constraint failed")
}
