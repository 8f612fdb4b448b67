package executions

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"gitlab.com/cjudge-2025.net/internal/core/ports/primary"
	"gitlab.com/cjudge-2025.net/internal/core/services/judge"
	"gitlab.com/cjudge-2025.net/internal/handlers"
	"gitlab.com/cjudge-2025.net/internal/handlers/response"
	"gitlab.com/cjudge-2025.net/internal/static/errs"
)

// ExecutionHandler handles ad-hoc custom-input execution requests
type ExecutionHandler struct {
	judgeService judge.IJudgeService
	logger       primary.Logger
}

// NewExecutionHandler creates a new execution handler
func NewExecutionHandler(judgeService judge.IJudgeService, logger primary.Logger) *ExecutionHandler {
	return &ExecutionHandler{
		judgeService: judgeService,
		logger:       logger,
	}
}

// RegisterRoutes registers the API routes for ExecutionHandler
func (h *ExecutionHandler) RegisterRoutes(router *mux.Router, mw *handlers.MiddlewareProvider) {
	router.Handle("/api/executions", mw.JWTMiddleware(http.HandlerFunc(h.RunCode))).Methods("POST")
}

// RunRequest represents a request to run code against custom input
type RunRequest struct {
	Code     string `json:"code"`
	Language string `json:"language"`
	Input    string `json:"input"`
}

// RunResponse represents the outcome of one ad-hoc execution
type RunResponse struct {
	Success       bool    `json:"success"`
	Output        string  `json:"output"`
	Error         string  `json:"error,omitempty"`
	ExecutionTime float64 `json:"executionTime"`
	MemoryUsed    float64 `json:"memoryUsed"`
}

// RunCode handles custom-input execution requests
func (h *ExecutionHandler) RunCode(w http.ResponseWriter, r *http.Request) {
	var req RunRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("Failed to decode request", "error", err)
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}

	if req.Code == "" || req.Language == "" {
		http.Error(w, "Code and language are required", http.StatusBadRequest)
		return
	}

	result, err := h.judgeService.RunCustom(r.Context(), req.Code, req.Language, req.Input)
	if err != nil {
		switch {
		case errors.Is(err, errs.UnsupportedLanguage):
			response.WriteError(w, response.ErrorMessage{
				Message:    "Unsupported language",
				StatusCode: http.StatusBadRequest,
			})
		case errors.Is(err, errs.ExecutorUnavailable), errors.Is(err, errs.PollTimeout):
			response.WriteError(w, response.ErrorMessage{
				Message:    "Execution service unavailable, please retry",
				StatusCode: http.StatusServiceUnavailable,
			})
		default:
			h.logger.Error("Failed to run code", "error", err)
			response.WriteError(w, response.ErrorMessage{
				Message:    "Failed to run code",
				StatusCode: http.StatusInternalServerError,
			})
		}
		return
	}

	response.WriteSuccess(w, RunResponse{
		Success:       result.Success,
		Output:        result.Output,
		Error:         result.Error,
		ExecutionTime: result.ExecutionTime,
		MemoryUsed:    result.MemoryUsed,
	})
}
