package judge

import (
	"context"
	"fmt"

	"gitlab.com/cjudge-2025.net/internal/config"
	"gitlab.com/cjudge-2025.net/internal/core/ports/primary"
	"gitlab.com/cjudge-2025.net/internal/core/ports/secondary"
	"gitlab.com/cjudge-2025.net/internal/core/services/language"
	"gitlab.com/cjudge-2025.net/internal/domain"
	"gitlab.com/cjudge-2025.net/internal/static/errs"
)

var _ IJudgeService = (*JudgeService)(nil)

// JudgeService implements the IJudgeService interface. It owns no state
// across invocations; concurrent Judge calls need no locking.
type JudgeService struct {
	sandbox secondary.SandboxClient
	limits  Limits
	logger  primary.Logger
}

// NewJudgeService creates a new judge service
func NewJudgeService(sandbox secondary.SandboxClient, judgeCfg *config.JudgeConfig, logger primary.Logger) *JudgeService {
	return &JudgeService{
		sandbox: sandbox,
		limits: Limits{
			TimeLimitSec:  judgeCfg.TimeLimitSec,
			MemoryLimitKB: judgeCfg.MemoryLimitKB,
		},
		logger: logger,
	}
}

// Judge runs one submission against every test case as a single sandbox
// batch and evaluates the results in test-case order.
func (s *JudgeService) Judge(ctx context.Context, code, languageName string, testCases []*domain.TestCase) (*domain.JudgeOutcome, error) {
	if len(testCases) == 0 {
		return nil, errs.NoTestCases
	}

	languageID, err := language.Resolve(languageName)
	if err != nil {
		return nil, err
	}

	stdins := make([]string, len(testCases))
	for i, testCase := range testCases {
		stdins[i] = testCase.Input
	}

	results, err := s.sandbox.RunBatch(ctx, code, languageID, stdins)
	if err != nil {
		s.logger.Error("Batch execution failed", "language", languageName, "tests", len(testCases), "error", err)
		return nil, fmt.Errorf("failed to run batch: %w", err)
	}

	outcome, err := Evaluate(results, testCases, s.limits)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Judged submission",
		"language", languageName,
		"tests", len(testCases),
		"verdict", outcome.Verdict)

	return outcome, nil
}

// RunCustom executes code once against caller-supplied stdin, for
// interactive custom-input testing.
func (s *JudgeService) RunCustom(ctx context.Context, code, languageName, stdin string) (*domain.RunResult, error) {
	languageID, err := language.Resolve(languageName)
	if err != nil {
		return nil, err
	}

	result, err := s.sandbox.RunOne(ctx, code, languageID, stdin)
	if err != nil {
		s.logger.Error("Execution failed", "language", languageName, "error", err)
		return nil, fmt.Errorf("failed to run code: %w", err)
	}

	run := &domain.RunResult{
		Success:       result.Status == domain.StatusAccepted,
		Output:        result.Stdout,
		ExecutionTime: result.Time * 1000,
		MemoryUsed:    result.Memory,
	}
	if !run.Success {
		run.Error = executionError(result)
	}

	return run, nil
}

// executionError picks the most specific diagnostic the sandbox produced
func executionError(result *domain.ExecutionResult) string {
	switch {
	case result.CompileOutput != "":
		return result.CompileOutput
	case result.Stderr != "":
		return result.Stderr
	case result.Message != "":
		return result.Message
	default:
		return result.Status.String()
	}
}
