package secondary

import (
	"context"

	"github.com/google/uuid"

	"gitlab.com/cjudge-2025.net/internal/domain"
)

type TestCaseRepository interface {
	// GetByProblem retrieves a problem's test cases in definition order
	GetByProblem(ctx context.Context, problemID uuid.UUID) ([]*domain.TestCase, error)
}
