package dao

import (
	"errors"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func InitTables(db *gorm.DB) error {
	return db.AutoMigrate(
		&Candidate{},
		&Activity{},
		&ActivityCandidate{},
		&Vote{},
		&Administrator{},
		&AdminApplication{},
		&AdminLog{},
	)
}

// isUniqueViolation classifies constraint errors across drivers: postgres
// reports a pgconn.PgError, other drivers go through gorm's TranslateError.
func isUniqueViolation(err error, constraint string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
		return constraint == "" || strings.Contains(pgErr.Message, constraint)
	}

	return errors.Is(err, gorm.ErrDuplicatedKey)
}
