package submission

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"gitlab.com/cjudge-2025.net/internal/core/ports/primary"
	"gitlab.com/cjudge-2025.net/internal/core/ports/secondary"
	"gitlab.com/cjudge-2025.net/internal/core/services/judge"
	"gitlab.com/cjudge-2025.net/internal/domain"
	"gitlab.com/cjudge-2025.net/internal/static/errs"
)

var _ ISubmissionService = (*SubmissionService)(nil)

// SubmissionService implements the ISubmissionService interface
type SubmissionService struct {
	submissionRepo secondary.SubmissionRepository
	testCaseRepo   secondary.TestCaseRepository
	languageRepo   secondary.LanguageRepository
	judgeService   judge.IJudgeService
	logger         primary.Logger
}

// NewSubmissionService creates a new submission service
func NewSubmissionService(
	submissionRepo secondary.SubmissionRepository,
	testCaseRepo secondary.TestCaseRepository,
	languageRepo secondary.LanguageRepository,
	judgeService judge.IJudgeService,
	logger primary.Logger,
) *SubmissionService {
	return &SubmissionService{
		submissionRepo: submissionRepo,
		testCaseRepo:   testCaseRepo,
		languageRepo:   languageRepo,
		judgeService:   judgeService,
		logger:         logger,
	}
}

// Submit judges one submission. Validation failures (unknown language,
// no test cases) are detected before any row is created or any sandbox
// round trip is spent. A created row is never left in Processing: a
// judging failure terminal-marks it as Runtime Error before the error is
// returned.
func (s *SubmissionService) Submit(ctx context.Context, userID, problemID, languageID uuid.UUID, code string) (*domain.SubmissionResult, error) {
	languageName, err := s.languageRepo.GetName(ctx, languageID)
	if err != nil {
		s.logger.Error("Failed to resolve language", "languageId", languageID, "error", err)
		return nil, fmt.Errorf("failed to resolve language: %w", err)
	}

	testCases, err := s.testCaseRepo.GetByProblem(ctx, problemID)
	if err != nil {
		s.logger.Error("Failed to load test cases", "problemId", problemID, "error", err)
		return nil, fmt.Errorf("failed to load test cases: %w", err)
	}
	if len(testCases) == 0 {
		return nil, fmt.Errorf("%w: problem %s", errs.NoTestCases, problemID)
	}

	record := domain.NewSubmission(userID, problemID, languageID, code)
	if err := s.submissionRepo.Create(ctx, record); err != nil {
		s.logger.Error("Failed to create submission", "submissionId", record.ID, "error", err)
		return nil, fmt.Errorf("failed to create submission: %w", err)
	}

	s.logger.Info("Created submission",
		"submissionId", record.ID,
		"userId", userID,
		"problemId", problemID,
		"tests", len(testCases))

	outcome, err := s.judgeService.Judge(ctx, code, languageName, testCases)
	if err != nil {
		s.failSubmission(ctx, record)
		return nil, err
	}

	if err := s.submissionRepo.UpdateVerdict(ctx, record.ID, outcome.Verdict, outcome.ExecutionTime, outcome.MemoryUsed); err != nil {
		s.logger.Error("Failed to update submission verdict", "submissionId", record.ID, "error", err)
		return nil, fmt.Errorf("failed to update submission: %w", err)
	}

	record.Verdict = outcome.Verdict
	record.ExecutionTime = &outcome.ExecutionTime
	record.MemoryUsed = &outcome.MemoryUsed

	s.logger.Info("Submission judged",
		"submissionId", record.ID,
		"verdict", outcome.Verdict,
		"executionTime", outcome.ExecutionTime,
		"memoryUsed", outcome.MemoryUsed)

	return &domain.SubmissionResult{
		Submission: record,
		FailedTest: outcome.FailedTest,
	}, nil
}

// Get retrieves a stored submission by ID
func (s *SubmissionService) Get(ctx context.Context, submissionID uuid.UUID) (*domain.Submission, error) {
	record, err := s.submissionRepo.Get(ctx, submissionID)
	if err != nil {
		s.logger.Error("Failed to get submission", "submissionId", submissionID, "error", err)
		return nil, err
	}
	return record, nil
}

// failSubmission terminal-marks a row after a judging failure so that
// infrastructure faults never leave a submission stuck in Processing.
func (s *SubmissionService) failSubmission(ctx context.Context, record *domain.Submission) {
	if err := s.submissionRepo.UpdateVerdict(ctx, record.ID, domain.VerdictRuntimeError, 0, 0); err != nil {
		s.logger.Error("Failed to mark submission as failed", "submissionId", record.ID, "error", err)
	}
}
