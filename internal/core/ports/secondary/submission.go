package secondary

import (
	"context"

	"github.com/google/uuid"

	"gitlab.com/cjudge-2025.net/internal/domain"
)

type SubmissionRepository interface {
	// Create persists a new submission row
	Create(ctx context.Context, submission *domain.Submission) error

	// UpdateVerdict writes the terminal verdict and metrics onto an existing row
	UpdateVerdict(ctx context.Context, submissionID uuid.UUID, verdict domain.Verdict, executionTime, memoryUsed float64) error

	// Get retrieves a submission by ID
	Get(ctx context.Context, submissionID uuid.UUID) (*domain.Submission, error)
}
