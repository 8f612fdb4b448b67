package secondary

import (
	"context"

	"github.com/google/uuid"
)

type LanguageRepository interface {
	// GetName retrieves the human-readable language name for a language ID
	GetName(ctx context.Context, languageID uuid.UUID) (string, error)
}
