// package testcaserepository contains the PostgreSQL implementation of
// the test-case repository
package testcaserepository

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/jmoiron/sqlx"

	"gitlab.com/cjudge-2025.net/internal/core/ports/primary"
	"gitlab.com/cjudge-2025.net/internal/core/ports/secondary"
	"gitlab.com/cjudge-2025.net/internal/domain"
)

var _ secondary.TestCaseRepository = (*TestCaseRepository)(nil)

// TestCaseRepository implements the TestCaseRepository interface with PostgreSQL
type TestCaseRepository struct {
	db     *sqlx.DB
	logger primary.Logger
}

// NewTestCaseRepository creates a new PostgreSQL test-case repository
func NewTestCaseRepository(db *sqlx.DB, logger primary.Logger) *TestCaseRepository {
	return &TestCaseRepository{
		db:     db,
		logger: logger,
	}
}

// GetByProblem retrieves a problem's test cases in definition order.
// Public cases are not privileged in ordering; the evaluator reasons
// about tests by position.
func (r *TestCaseRepository) GetByProblem(ctx context.Context, problemID uuid.UUID) ([]*domain.TestCase, error) {
	query := `
		SELECT id, problem_id, input, expected_output, is_public, position
		FROM test_cases
		WHERE problem_id = $1
		ORDER BY position ASC
	`

	rows, err := r.db.QueryContext(ctx, query, problemID)
	if err != nil {
		r.logger.Error("Failed to query test cases", "error", err)
		return nil, fmt.Errorf("failed to query test cases: %w", err)
	}
	defer rows.Close()

	var testCases []*domain.TestCase
	for rows.Next() {
		var testCase domain.TestCase
		if err := rows.Scan(
			&testCase.ID,
			&testCase.ProblemID,
			&testCase.Input,
			&testCase.ExpectedOutput,
			&testCase.IsPublic,
			&testCase.Position,
		); err != nil {
			r.logger.Error("Failed to scan test case", "error", err)
			return nil, fmt.Errorf("failed to scan test case: %w", err)
		}
		testCases = append(testCases, &testCase)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate test cases: %w", err)
	}

	return testCases, nil
}
