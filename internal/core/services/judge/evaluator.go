package judge

import (
	"strings"

	"gitlab.com/cjudge-2025.net/internal/domain"
	"gitlab.com/cjudge-2025.net/internal/static/errs"
)

// Limits are the resource ceilings applied on top of the sandbox's own
// enforcement. A run the sandbox reports as successful still fails when
// it exceeds them.
type Limits struct {
	TimeLimitSec  float64
	MemoryLimitKB float64
}

// Evaluate derives one verdict from ordered per-test execution results.
// Pure function: first failing test wins, comparison is trim-then-exact,
// and metrics are the arithmetic mean over the tests that passed.
// Results the sandbox never finished (non-terminal status after the poll
// ceiling) count as runtime failures, never as passes.
func Evaluate(results []domain.ExecutionResult, testCases []*domain.TestCase, limits Limits) (*domain.JudgeOutcome, error) {
	if len(testCases) == 0 {
		return nil, errs.NoTestCases
	}

	outcome := &domain.JudgeOutcome{Verdict: domain.VerdictAccepted}

	var totalTime, totalMemory float64
	passed := 0

	for i, testCase := range testCases {
		// A missing entry means the batch never produced a result for
		// this test; treat it like an unfinished run.
		result := domain.ExecutionResult{Status: domain.StatusInQueue}
		if i < len(results) {
			result = results[i]
		}

		verdict := failureVerdict(result, limits)
		if verdict == "" {
			actual := strings.TrimSpace(result.Stdout)
			expected := strings.TrimSpace(testCase.ExpectedOutput)
			if actual != expected {
				verdict = domain.VerdictWrongAnswer
			}
		}

		if verdict != "" {
			outcome.Verdict = verdict
			outcome.FailedTest = &domain.FailedTest{
				Index:          i,
				Input:          testCase.Input,
				ExpectedOutput: testCase.ExpectedOutput,
				ActualOutput:   result.Stdout,
				Stderr:         result.Stderr,
				CompileOutput:  result.CompileOutput,
				IsPublic:       testCase.IsPublic,
			}
			break
		}

		totalTime += result.Time
		totalMemory += result.Memory
		passed++
	}

	if passed > 0 {
		outcome.ExecutionTime = totalTime / float64(passed)
		outcome.MemoryUsed = totalMemory / float64(passed)
	}

	return outcome, nil
}

// failureVerdict returns the verdict implied by the execution status and
// resource ceilings alone, or "" when output comparison should decide.
func failureVerdict(result domain.ExecutionResult, limits Limits) domain.Verdict {
	if !result.Status.IsTerminal() {
		return domain.VerdictRuntimeError
	}
	if result.Status != domain.StatusAccepted {
		return result.Status.Verdict()
	}
	if limits.TimeLimitSec > 0 && result.Time > limits.TimeLimitSec {
		return domain.VerdictTimeLimitExceeded
	}
	if limits.MemoryLimitKB > 0 && result.Memory > limits.MemoryLimitKB {
		return domain.VerdictMemoryLimitExceeded
	}
	return ""
}
