package submissions

import (
	"time"

	"github.com/google/uuid"
)

// CreateSubmissionRequest represents a request to judge a submission
type CreateSubmissionRequest struct {
	ProblemID  string `json:"problemId"`
	LanguageID string `json:"languageId"`
	Code       string `json:"code"`
}

// SubmitResponse represents the outcome of judging a submission
type SubmitResponse struct {
	SubmissionID  uuid.UUID       `json:"submissionId"`
	Verdict       string          `json:"verdict"`
	ExecutionTime float64         `json:"executionTime"`
	MemoryUsed    float64         `json:"memoryUsed"`
	Success       bool            `json:"success"`
	FailedTest    *FailedTestView `json:"failedTest,omitempty"`
}

// FailedTestView is the evidence for the first failing test case
type FailedTestView struct {
	Index          int    `json:"index"`
	Input          string `json:"input"`
	ExpectedOutput string `json:"expectedOutput"`
	ActualOutput   string `json:"actualOutput"`
	Stderr         string `json:"stderr"`
	CompileOutput  string `json:"compileOutput,omitempty"`
	IsPublic       bool   `json:"isPublic"`
}

// SubmissionView represents a stored submission record
type SubmissionView struct {
	SubmissionID  uuid.UUID `json:"submissionId"`
	UserID        uuid.UUID `json:"userId"`
	ProblemID     uuid.UUID `json:"problemId"`
	LanguageID    uuid.UUID `json:"languageId"`
	Verdict       string    `json:"verdict"`
	ExecutionTime float64   `json:"executionTime"`
	MemoryUsed    float64   `json:"memoryUsed"`
	CreatedAt     time.Time `json:"createdAt"`
}
