package domain

import "github.com/google/uuid"

// TestCase represents one (input, expected output) pair of a problem.
// Public test cases may be shown to users; hidden ones are judged but
// their contents never leave the service in failure evidence.
type TestCase struct {
	ID             uuid.UUID `db:"id"`
	ProblemID      uuid.UUID `db:"problem_id"`
	Input          string    `db:"input"`
	ExpectedOutput string    `db:"expected_output"`
	IsPublic       bool      `db:"is_public"`
	Position       int       `db:"position"`
}

type TestCasesTable struct {
	ID             string
	ProblemID      string
	Input          string
	ExpectedOutput string
	IsPublic       string
	Position       string
}

func GetTestCaseTable() TestCasesTable {
	return TestCasesTable{
		ID:             "id",
		ProblemID:      "problem_id",
		Input:          "input",
		ExpectedOutput: "expected_output",
		IsPublic:       "is_public",
		Position:       "position",
	}
}

func (TestCasesTable) TableName() string {
	return "test_cases"
}
