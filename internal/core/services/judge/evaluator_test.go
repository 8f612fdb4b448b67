package judge_test

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"github.com/google/uuid"

	"gitlab.com/cjudge-2025.net/internal/core/services/judge"
	"gitlab.com/cjudge-2025.net/internal/domain"
	"gitlab.com/cjudge-2025.net/internal/static/errs"
)

var testLimits = judge.Limits{TimeLimitSec: 2, MemoryLimitKB: 256000}

func testCase(expected string, public bool) *domain.TestCase {
	return &domain.TestCase{
		ID:             uuid.New(),
		ProblemID:      uuid.New(),
		Input:          "in:" + expected,
		ExpectedOutput: expected,
		IsPublic:       public,
	}
}

func passing(stdout string, seconds, memoryKB float64) domain.ExecutionResult {
	return domain.ExecutionResult{
		Status: domain.StatusAccepted,
		Stdout: stdout,
		Time:   seconds,
		Memory: memoryKB,
	}
}

func TestEvaluateAllPassing(t *testing.T) {
	t.Parallel()
	cases := []*domain.TestCase{testCase("4", true), testCase("9", false), testCase("16", false)}
	results := []domain.ExecutionResult{
		passing("4", 0.01, 900),
		passing("9", 0.02, 1000),
		passing("16", 0.015, 1100),
	}

	outcome, err := judge.Evaluate(results, cases, testLimits)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if outcome.Verdict != domain.VerdictAccepted {
		t.Fatalf("expected Accepted, got %q", outcome.Verdict)
	}
	if outcome.FailedTest != nil {
		t.Fatalf("expected no failed test, got index %d", outcome.FailedTest.Index)
	}
	if math.Abs(outcome.ExecutionTime-0.015) > 1e-9 {
		t.Fatalf("expected mean time 0.015, got %v", outcome.ExecutionTime)
	}
	if math.Abs(outcome.MemoryUsed-1000) > 1e-9 {
		t.Fatalf("expected mean memory 1000, got %v", outcome.MemoryUsed)
	}
}

func TestEvaluateWrongAnswerEvidence(t *testing.T) {
	t.Parallel()
	cases := []*domain.TestCase{testCase("4", true), testCase("9", true), testCase("16", true)}
	results := []domain.ExecutionResult{
		passing("4", 0.01, 900),
		passing("10", 0.02, 1000),
		passing("16", 0.015, 1100),
	}

	outcome, err := judge.Evaluate(results, cases, testLimits)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if outcome.Verdict != domain.VerdictWrongAnswer {
		t.Fatalf("expected Wrong Answer, got %q", outcome.Verdict)
	}
	failed := outcome.FailedTest
	if failed == nil {
		t.Fatal("expected failure evidence")
	}
	if failed.Index != 1 {
		t.Fatalf("expected failing index 1, got %d", failed.Index)
	}
	if failed.ActualOutput != "10" || failed.ExpectedOutput != "9" {
		t.Fatalf("unexpected evidence: actual %q expected %q", failed.ActualOutput, failed.ExpectedOutput)
	}
}

func TestEvaluateFirstFailureWins(t *testing.T) {
	t.Parallel()
	cases := []*domain.TestCase{testCase("1", true), testCase("2", true), testCase("3", true)}
	results := []domain.ExecutionResult{
		passing("1", 0.01, 900),
		passing("wrong", 0.01, 900),
		{Status: domain.StatusTimeLimit},
	}

	outcome, err := judge.Evaluate(results, cases, testLimits)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if outcome.Verdict != domain.VerdictWrongAnswer {
		t.Fatalf("expected Wrong Answer from test 1, got %q", outcome.Verdict)
	}

	// A later result changing must not change the verdict
	results[2] = passing("3", 0.01, 900)
	again, err := judge.Evaluate(results, cases, testLimits)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if again.Verdict != domain.VerdictWrongAnswer || again.FailedTest.Index != 1 {
		t.Fatalf("verdict changed with a later test: %q index %d", again.Verdict, again.FailedTest.Index)
	}
}

func TestEvaluateCompileError(t *testing.T) {
	t.Parallel()
	cases := []*domain.TestCase{testCase("4", true), testCase("9", true)}
	results := []domain.ExecutionResult{
		{Status: domain.StatusCompileError, CompileOutput: "main.c:1: expected ';'"},
		{Status: domain.StatusCompileError, CompileOutput: "main.c:1: expected ';'"},
	}

	outcome, err := judge.Evaluate(results, cases, testLimits)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if outcome.Verdict != domain.VerdictCompilationError {
		t.Fatalf("expected Compilation Error, got %q", outcome.Verdict)
	}
	if outcome.FailedTest.Index != 0 {
		t.Fatalf("expected failing index 0, got %d", outcome.FailedTest.Index)
	}
	if outcome.FailedTest.CompileOutput == "" {
		t.Fatal("expected compile diagnostic in evidence")
	}
}

func TestEvaluateTrimsBeforeComparing(t *testing.T) {
	t.Parallel()
	cases := []*domain.TestCase{testCase("42", true)}

	outcome, err := judge.Evaluate([]domain.ExecutionResult{passing("42\n", 0.01, 900)}, cases, testLimits)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if outcome.Verdict != domain.VerdictAccepted {
		t.Fatalf("trailing newline should not fail comparison, got %q", outcome.Verdict)
	}

	internal := []*domain.TestCase{testCase("a b", true)}
	outcome, err = judge.Evaluate([]domain.ExecutionResult{passing("ab", 0.01, 900)}, internal, testLimits)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if outcome.Verdict != domain.VerdictWrongAnswer {
		t.Fatalf("internal whitespace must stay significant, got %q", outcome.Verdict)
	}
}

func TestEvaluateNoTestCases(t *testing.T) {
	t.Parallel()
	if _, err := judge.Evaluate(nil, nil, testLimits); !errors.Is(err, errs.NoTestCases) {
		t.Fatalf("expected NoTestCases error, got %v", err)
	}
}

func TestEvaluateUnresolvedEntriesFail(t *testing.T) {
	t.Parallel()
	cases := []*domain.TestCase{
		testCase("1", true), testCase("2", true), testCase("3", true),
		testCase("4", true), testCase("5", true),
	}
	results := []domain.ExecutionResult{
		passing("1", 0.01, 900),
		passing("2", 0.01, 900),
		{Status: domain.StatusRunning},
		{Status: domain.StatusInQueue},
		passing("5", 0.01, 900),
	}

	outcome, err := judge.Evaluate(results, cases, testLimits)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if outcome.Verdict != domain.VerdictRuntimeError {
		t.Fatalf("expected Runtime Error for unresolved entry, got %q", outcome.Verdict)
	}
	if outcome.FailedTest.Index != 2 {
		t.Fatalf("expected first unresolved index 2, got %d", outcome.FailedTest.Index)
	}
}

func TestEvaluateMissingResultsFail(t *testing.T) {
	t.Parallel()
	cases := []*domain.TestCase{testCase("1", true), testCase("2", true)}
	results := []domain.ExecutionResult{passing("1", 0.01, 900)}

	outcome, err := judge.Evaluate(results, cases, testLimits)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if outcome.Verdict != domain.VerdictRuntimeError || outcome.FailedTest.Index != 1 {
		t.Fatalf("expected Runtime Error at index 1, got %q index %v", outcome.Verdict, outcome.FailedTest)
	}
}

func TestEvaluateSandboxLimitStatuses(t *testing.T) {
	t.Parallel()
	cases := []*domain.TestCase{testCase("1", true)}

	outcome, err := judge.Evaluate([]domain.ExecutionResult{{Status: domain.StatusTimeLimit}}, cases, testLimits)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if outcome.Verdict != domain.VerdictTimeLimitExceeded {
		t.Fatalf("expected Time Limit Exceeded, got %q", outcome.Verdict)
	}

	outcome, err = judge.Evaluate([]domain.ExecutionResult{{Status: domain.StatusRuntimeError, Stderr: "segfault"}}, cases, testLimits)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if outcome.Verdict != domain.VerdictRuntimeError {
		t.Fatalf("expected Runtime Error, got %q", outcome.Verdict)
	}
	if outcome.FailedTest.Stderr != "segfault" {
		t.Fatalf("expected stderr in evidence, got %q", outcome.FailedTest.Stderr)
	}
}

func TestEvaluateResourceCeilings(t *testing.T) {
	t.Parallel()
	cases := []*domain.TestCase{testCase("1", true)}

	outcome, err := judge.Evaluate([]domain.ExecutionResult{passing("1", 3.0, 900)}, cases, testLimits)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if outcome.Verdict != domain.VerdictTimeLimitExceeded {
		t.Fatalf("expected Time Limit Exceeded over ceiling, got %q", outcome.Verdict)
	}

	outcome, err = judge.Evaluate([]domain.ExecutionResult{passing("1", 0.01, 300000)}, cases, testLimits)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if outcome.Verdict != domain.VerdictMemoryLimitExceeded {
		t.Fatalf("expected Memory Limit Exceeded over ceiling, got %q", outcome.Verdict)
	}
}

func TestEvaluateHiddenTestKeepsVisibilityFlag(t *testing.T) {
	t.Parallel()
	cases := []*domain.TestCase{testCase("secret", false)}

	outcome, err := judge.Evaluate([]domain.ExecutionResult{passing("leak", 0.01, 900)}, cases, testLimits)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if outcome.FailedTest == nil || outcome.FailedTest.IsPublic {
		t.Fatalf("expected hidden evidence flag, got %+v", outcome.FailedTest)
	}
}

func TestEvaluateIsIdempotent(t *testing.T) {
	t.Parallel()
	cases := []*domain.TestCase{testCase("4", true), testCase("9", true)}
	results := []domain.ExecutionResult{passing("4", 0.01, 900), passing("wrong", 0.02, 1000)}

	first, err := judge.Evaluate(results, cases, testLimits)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := judge.Evaluate(results, cases, testLimits)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("evaluate is not idempotent: %+v vs %+v", first, second)
	}
}
