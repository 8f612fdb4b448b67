// package languagerepository contains the PostgreSQL implementation of
// the language repository
package languagerepository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/jmoiron/sqlx"

	"gitlab.com/cjudge-2025.net/internal/core/ports/primary"
	"gitlab.com/cjudge-2025.net/internal/core/ports/secondary"
	"gitlab.com/cjudge-2025.net/internal/static/errs"
)

var _ secondary.LanguageRepository = (*LanguageRepository)(nil)

// LanguageRepository implements the LanguageRepository interface with PostgreSQL
type LanguageRepository struct {
	db     *sqlx.DB
	logger primary.Logger
}

// NewLanguageRepository creates a new PostgreSQL language repository
func NewLanguageRepository(db *sqlx.DB, logger primary.Logger) *LanguageRepository {
	return &LanguageRepository{
		db:     db,
		logger: logger,
	}
}

// GetName retrieves the human-readable language name for a language ID
func (r *LanguageRepository) GetName(ctx context.Context, languageID uuid.UUID) (string, error) {
	query := `SELECT name FROM languages WHERE id = $1`

	var name string
	err := r.db.QueryRowContext(ctx, query, languageID).Scan(&name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", fmt.Errorf("%w: %s", errs.LanguageNotFound, languageID)
		}
		r.logger.Error("Failed to get language", "error", err)
		return "", fmt.Errorf("failed to get language: %w", err)
	}

	return name, nil
}
