package domain

// ExecutionResult is the outcome of running a submission against one
// stdin inside the execution service. It is transient: produced by the
// execution client, consumed by the evaluator, then discarded except
// for the result tied to the first failing test.
type ExecutionResult struct {
	Status        ExecutionStatus
	Stdout        string
	Stderr        string
	CompileOutput string
	Message       string
	Time          float64 // wall-clock seconds
	Memory        float64 // kilobytes
}

// FailedTest carries the evidence for the first failing test case
type FailedTest struct {
	Index          int
	Input          string
	ExpectedOutput string
	ActualOutput   string
	Stderr         string
	CompileOutput  string
	IsPublic       bool
}

// JudgeOutcome is the evaluator's result for one submission: a terminal
// verdict, metrics averaged over the tests that passed comparison, and
// evidence when the verdict is not Accepted.
type JudgeOutcome struct {
	Verdict       Verdict
	ExecutionTime float64 // seconds
	MemoryUsed    float64 // kilobytes
	FailedTest    *FailedTest
}

// RunResult is the outcome of one ad-hoc custom-input execution
type RunResult struct {
	Success       bool
	Output        string
	Error         string
	ExecutionTime float64 // milliseconds
	MemoryUsed    float64 // kilobytes
}
