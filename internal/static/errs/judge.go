package errs

import "errors"

var (
	UnsupportedLanguage = errors.New("unsupported language")
	NoTestCases         = errors.New("problem has no test cases")
	ExecutorUnavailable = errors.New("execution service unavailable")
	PollTimeout         = errors.New("timed out waiting for execution result")
	LanguageNotFound    = errors.New("language not found")
	SubmissionNotFound  = errors.New("submission not found")
	InternalError       = errors.New("internal error")
)
