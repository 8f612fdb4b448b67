package submissions

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"gitlab.com/cjudge-2025.net/internal/core/ports/primary"
	"gitlab.com/cjudge-2025.net/internal/core/services/submission"
	"gitlab.com/cjudge-2025.net/internal/domain"
	"gitlab.com/cjudge-2025.net/internal/handlers"
	"gitlab.com/cjudge-2025.net/internal/handlers/response"
	"gitlab.com/cjudge-2025.net/internal/static/errs"
)

// SubmissionHandler handles submission API requests
type SubmissionHandler struct {
	submissionService submission.ISubmissionService
	logger            primary.Logger
}

// NewSubmissionHandler creates a new submission handler
func NewSubmissionHandler(submissionService submission.ISubmissionService, logger primary.Logger) *SubmissionHandler {
	return &SubmissionHandler{
		submissionService: submissionService,
		logger:            logger,
	}
}

// RegisterRoutes registers the API routes for SubmissionHandler
func (h *SubmissionHandler) RegisterRoutes(router *mux.Router, mw *handlers.MiddlewareProvider) {
	router.Handle("/api/submissions", mw.JWTMiddleware(http.HandlerFunc(h.CreateSubmission))).Methods("POST")
	router.Handle("/api/submissions/{submissionId}", mw.JWTMiddleware(http.HandlerFunc(h.GetSubmission))).Methods("GET")
}

// CreateSubmission handles "judge this code" requests
func (h *SubmissionHandler) CreateSubmission(w http.ResponseWriter, r *http.Request) {
	userIDStr, ok := handlers.UserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		http.Error(w, "Invalid user ID", http.StatusUnauthorized)
		return
	}

	var req CreateSubmissionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("Failed to decode request", "error", err)
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}

	problemID, err := uuid.Parse(req.ProblemID)
	if err != nil {
		http.Error(w, "Invalid problem ID", http.StatusBadRequest)
		return
	}
	languageID, err := uuid.Parse(req.LanguageID)
	if err != nil {
		http.Error(w, "Invalid language ID", http.StatusBadRequest)
		return
	}
	if req.Code == "" {
		http.Error(w, "Code is required", http.StatusBadRequest)
		return
	}

	result, err := h.submissionService.Submit(r.Context(), userID, problemID, languageID, req.Code)
	if err != nil {
		h.writeSubmitError(w, err)
		return
	}

	response.WriteSuccess(w, toSubmitResponse(result))
}

// GetSubmission handles submission retrieval requests
func (h *SubmissionHandler) GetSubmission(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	submissionIDStr := vars["submissionId"]

	submissionID, err := uuid.Parse(submissionIDStr)
	if err != nil {
		http.Error(w, "Invalid submission ID", http.StatusBadRequest)
		return
	}

	record, err := h.submissionService.Get(r.Context(), submissionID)
	if err != nil {
		if errors.Is(err, errs.SubmissionNotFound) {
			http.Error(w, "Submission not found", http.StatusNotFound)
			return
		}
		h.logger.Error("Failed to get submission", "error", err)
		http.Error(w, "Failed to get submission", http.StatusInternalServerError)
		return
	}

	response.WriteSuccess(w, toSubmissionView(record))
}

// writeSubmitError distinguishes caller errors and infrastructure faults
// from judged verdicts, so "the judge is down" never reads as "your code
// is wrong".
func (h *SubmissionHandler) writeSubmitError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, errs.UnsupportedLanguage), errors.Is(err, errs.LanguageNotFound):
		response.WriteError(w, response.ErrorMessage{
			Message:    "Unsupported language",
			StatusCode: http.StatusBadRequest,
		})
	case errors.Is(err, errs.NoTestCases):
		response.WriteError(w, response.ErrorMessage{
			Message:    "No test cases found for this problem",
			StatusCode: http.StatusUnprocessableEntity,
		})
	case errors.Is(err, errs.ExecutorUnavailable), errors.Is(err, errs.PollTimeout):
		response.WriteError(w, response.ErrorMessage{
			Message:    "Execution service unavailable, please retry",
			StatusCode: http.StatusServiceUnavailable,
		})
	default:
		h.logger.Error("Failed to judge submission", "error", err)
		response.WriteError(w, response.ErrorMessage{
			Message:    "Failed to judge submission",
			StatusCode: http.StatusInternalServerError,
		})
	}
}

func toSubmitResponse(result *domain.SubmissionResult) SubmitResponse {
	record := result.Submission
	resp := SubmitResponse{
		SubmissionID: record.ID,
		Verdict:      string(record.Verdict),
		Success:      record.Verdict == domain.VerdictAccepted,
	}
	if record.ExecutionTime != nil {
		resp.ExecutionTime = *record.ExecutionTime
	}
	if record.MemoryUsed != nil {
		resp.MemoryUsed = *record.MemoryUsed
	}
	if result.FailedTest != nil {
		resp.FailedTest = toFailedTestView(result.FailedTest)
	}
	return resp
}

// toFailedTestView redacts hidden-test contents: the test's existence,
// index and diagnostics survive, its data does not.
func toFailedTestView(failed *domain.FailedTest) *FailedTestView {
	view := &FailedTestView{
		Index:         failed.Index,
		Stderr:        failed.Stderr,
		CompileOutput: failed.CompileOutput,
		IsPublic:      failed.IsPublic,
	}
	if failed.IsPublic {
		view.Input = failed.Input
		view.ExpectedOutput = failed.ExpectedOutput
		view.ActualOutput = failed.ActualOutput
	}
	return view
}

func toSubmissionView(record *domain.Submission) SubmissionView {
	view := SubmissionView{
		SubmissionID: record.ID,
		UserID:       record.UserID,
		ProblemID:    record.ProblemID,
		LanguageID:   record.LanguageID,
		Verdict:      string(record.Verdict),
		CreatedAt:    record.CreatedAt,
	}
	if record.ExecutionTime != nil {
		view.ExecutionTime = *record.ExecutionTime
	}
	if record.MemoryUsed != nil {
		view.MemoryUsed = *record.MemoryUsed
	}
	return view
}
