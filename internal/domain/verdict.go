package domain

// Verdict is the final categorical judgment of a submission
type Verdict string

const (
	VerdictProcessing          Verdict = "Processing"
	VerdictAccepted            Verdict = "Accepted"
	VerdictWrongAnswer         Verdict = "Wrong Answer"
	VerdictTimeLimitExceeded   Verdict = "Time Limit Exceeded"
	VerdictMemoryLimitExceeded Verdict = "Memory Limit Exceeded"
	VerdictRuntimeError        Verdict = "Runtime Error"
	VerdictCompilationError    Verdict = "Compilation Error"
)

// IsTerminal reports whether the verdict ends a submission's lifecycle
func (v Verdict) IsTerminal() bool {
	return v != VerdictProcessing && v != ""
}

// ExecutionStatus is the closed set of states the execution service can
// report for one run. Raw sandbox status codes are translated into this
// set in exactly one place, the execution client adapter.
type ExecutionStatus int

const (
	StatusInQueue ExecutionStatus = iota + 1
	StatusRunning
	StatusAccepted
	StatusWrongAnswer
	StatusTimeLimit
	StatusMemoryLimit
	StatusCompileError
	StatusRuntimeError
	StatusInternalError
)

// IsTerminal reports whether no further polling is needed for this status
func (s ExecutionStatus) IsTerminal() bool {
	return s != StatusInQueue && s != StatusRunning
}

func (s ExecutionStatus) String() string {
	switch s {
	case StatusInQueue:
		return "In Queue"
	case StatusRunning:
		return "Processing"
	case StatusAccepted:
		return "Accepted"
	case StatusWrongAnswer:
		return "Wrong Answer"
	case StatusTimeLimit:
		return "Time Limit Exceeded"
	case StatusMemoryLimit:
		return "Memory Limit Exceeded"
	case StatusCompileError:
		return "Compilation Error"
	case StatusRuntimeError:
		return "Runtime Error"
	case StatusInternalError:
		return "Internal Error"
	default:
		return "Unknown"
	}
}

// Verdict maps a terminal execution status to the submission verdict it
// implies. Non-terminal statuses (a run the sandbox never finished within
// the poll ceiling) count as runtime failures, never as passes.
func (s ExecutionStatus) Verdict() Verdict {
	switch s {
	case StatusAccepted:
		return VerdictAccepted
	case StatusWrongAnswer:
		return VerdictWrongAnswer
	case StatusTimeLimit:
		return VerdictTimeLimitExceeded
	case StatusMemoryLimit:
		return VerdictMemoryLimitExceeded
	case StatusCompileError:
		return VerdictCompilationError
	default:
		return VerdictRuntimeError
	}
}
