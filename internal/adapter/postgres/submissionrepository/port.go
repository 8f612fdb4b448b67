// package submissionrepository contains the PostgreSQL implementation of
// the submission repository
package submissionrepository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/jmoiron/sqlx"

	"gitlab.com/cjudge-2025.net/internal/core/ports/primary"
	"gitlab.com/cjudge-2025.net/internal/core/ports/secondary"
	"gitlab.com/cjudge-2025.net/internal/domain"
	"gitlab.com/cjudge-2025.net/internal/static/errs"
)

var _ secondary.SubmissionRepository = (*SubmissionRepository)(nil)

// SubmissionRepository implements the SubmissionRepository interface with PostgreSQL
type SubmissionRepository struct {
	db     *sqlx.DB
	logger primary.Logger
}

// NewSubmissionRepository creates a new PostgreSQL submission repository
func NewSubmissionRepository(db *sqlx.DB, logger primary.Logger) *SubmissionRepository {
	return &SubmissionRepository{
		db:     db,
		logger: logger,
	}
}

// Create persists a new submission row
func (r *SubmissionRepository) Create(ctx context.Context, submission *domain.Submission) error {
	query := `
		INSERT INTO submissions (
			id, user_id, problem_id, language_id, code, verdict,
			execution_time, memory_used, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.db.ExecContext(
		ctx,
		query,
		submission.ID,
		submission.UserID,
		submission.ProblemID,
		submission.LanguageID,
		submission.Code,
		submission.Verdict,
		submission.ExecutionTime,
		submission.MemoryUsed,
		submission.CreatedAt,
	)

	if err != nil {
		r.logger.Error("Failed to create submission", "error", err)
		return fmt.Errorf("failed to create submission: %w", err)
	}

	return nil
}

// UpdateVerdict writes the terminal verdict and metrics onto an existing row
func (r *SubmissionRepository) UpdateVerdict(ctx context.Context, submissionID uuid.UUID, verdict domain.Verdict, executionTime, memoryUsed float64) error {
	query := `
		UPDATE submissions
		SET verdict = $2, execution_time = $3, memory_used = $4
		WHERE id = $1
	`

	result, err := r.db.ExecContext(ctx, query, submissionID, verdict, executionTime, memoryUsed)
	if err != nil {
		r.logger.Error("Failed to update submission", "error", err)
		return fmt.Errorf("failed to update submission: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read update result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: %s", errs.SubmissionNotFound, submissionID)
	}

	return nil
}

// Get retrieves a submission from PostgreSQL by ID
func (r *SubmissionRepository) Get(ctx context.Context, submissionID uuid.UUID) (*domain.Submission, error) {
	query := `
		SELECT id, user_id, problem_id, language_id, code, verdict,
			   execution_time, memory_used, created_at
		FROM submissions
		WHERE id = $1
	`

	var submission domain.Submission
	var executionTime, memoryUsed sql.NullFloat64

	err := r.db.QueryRowContext(ctx, query, submissionID).Scan(
		&submission.ID,
		&submission.UserID,
		&submission.ProblemID,
		&submission.LanguageID,
		&submission.Code,
		&submission.Verdict,
		&executionTime,
		&memoryUsed,
		&submission.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", errs.SubmissionNotFound, submissionID)
		}
		r.logger.Error("Failed to get submission", "error", err)
		return nil, fmt.Errorf("failed to get submission: %w", err)
	}

	if executionTime.Valid {
		submission.ExecutionTime = &executionTime.Float64
	}
	if memoryUsed.Valid {
		submission.MemoryUsed = &memoryUsed.Float64
	}

	return &submission, nil
}
