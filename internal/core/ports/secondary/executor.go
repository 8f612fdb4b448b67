package secondary

import (
	"context"

	"gitlab.com/cjudge-2025.net/internal/domain"
)

// SandboxClient wraps the external untrusted-code execution service.
// RunBatch preserves ordering: result i corresponds to stdins[i], and the
// returned slice always has the same length as stdins. Entries the
// service never finished within the poll ceiling keep a non-terminal
// status; callers must treat those as failures.
type SandboxClient interface {
	// RunOne executes source once against a single stdin
	RunOne(ctx context.Context, sourceCode string, languageID int, stdin string) (*domain.ExecutionResult, error)

	// RunBatch executes source against every stdin as one sandbox batch
	RunBatch(ctx context.Context, sourceCode string, languageID int, stdins []string) ([]domain.ExecutionResult, error)
}
