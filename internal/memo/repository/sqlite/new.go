package sqlite

import (
	"database/sql"
	"fmt"

	"voice-memos/internal/memo/repository"
	"voice-memos/pkg/log"
)

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// New creates a new SQLite-backed Repository for the memo domain.
func New(db *sql.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("memo/repository/sqlite: db is required")
	}
	return &implRepository{db: db, l: l}
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("memo/repository/sqlite.%s", method)
}
