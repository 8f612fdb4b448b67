package submission

import (
	"context"

	"github.com/google/uuid"

	"gitlab.com/cjudge-2025.net/internal/domain"
)

// ISubmissionService owns the submission record's state transitions:
// created in Processing, judged, then mutated exactly once to a terminal
// verdict.
type ISubmissionService interface {
	// Submit judges code against a problem's test cases and persists the outcome
	Submit(ctx context.Context, userID, problemID, languageID uuid.UUID, code string) (*domain.SubmissionResult, error)

	// Get retrieves a stored submission by ID
	Get(ctx context.Context, submissionID uuid.UUID) (*domain.Submission, error)
}
