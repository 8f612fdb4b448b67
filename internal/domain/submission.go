package domain

import (
	"time"

	"github.com/google/uuid"
)

// Submission represents one judging attempt. A row is created in
// Processing state before the sandbox is contacted and mutated exactly
// once afterwards, to a terminal verdict.
type Submission struct {
	ID            uuid.UUID `db:"id"`
	UserID        uuid.UUID `db:"user_id"`
	ProblemID     uuid.UUID `db:"problem_id"`
	LanguageID    uuid.UUID `db:"language_id"`
	Code          string    `db:"code"`
	Verdict       Verdict   `db:"verdict"`
	ExecutionTime *float64  `db:"execution_time"`
	MemoryUsed    *float64  `db:"memory_used"`
	CreatedAt     time.Time `db:"created_at"`
}

// NewSubmission creates a new submission in Processing state
func NewSubmission(userID, problemID, languageID uuid.UUID, code string) *Submission {
	return &Submission{
		ID:         uuid.New(),
		UserID:     userID,
		ProblemID:  problemID,
		LanguageID: languageID,
		Code:       code,
		Verdict:    VerdictProcessing,
		CreatedAt:  time.Now(),
	}
}

type SubmissionsTable struct {
	ID            string
	UserID        string
	ProblemID     string
	LanguageID    string
	Code          string
	Verdict       string
	ExecutionTime string
	MemoryUsed    string
	CreatedAt     string
}

func GetSubmissionTable() SubmissionsTable {
	return SubmissionsTable{
		ID:            "id",
		UserID:        "user_id",
		ProblemID:     "problem_id",
		LanguageID:    "language_id",
		Code:          "code",
		Verdict:       "verdict",
		ExecutionTime: "execution_time",
		MemoryUsed:    "memory_used",
		CreatedAt:     "created_at",
	}
}

func (SubmissionsTable) TableName() string {
	return "submissions"
}

// SubmissionResult is what the lifecycle manager hands back to its
// caller: the persisted record plus failure evidence, which is returned
// for display but never stored on the row.
type SubmissionResult struct {
	Submission *Submission
	FailedTest *FailedTest
}
