package judge

import (
	"context"

	"gitlab.com/cjudge-2025.net/internal/domain"
)

// IJudgeService coordinates judging a submission against its test cases
// and running ad-hoc custom-input executions.
type IJudgeService interface {
	// Judge runs code against every test case and derives one verdict
	Judge(ctx context.Context, code, languageName string, testCases []*domain.TestCase) (*domain.JudgeOutcome, error)

	// RunCustom executes code once against caller-supplied stdin
	RunCustom(ctx context.Context, code, languageName, stdin string) (*domain.RunResult, error)
}
