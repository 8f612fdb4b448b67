package submissions_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"

	"gitlab.com/cjudge-2025.net/internal/domain"
	"gitlab.com/cjudge-2025.net/internal/handlers"
	"gitlab.com/cjudge-2025.net/internal/handlers/submissions"
	"gitlab.com/cjudge-2025.net/internal/static/errs"
)

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}
func (noopLogger) Debug(string, ...interface{}) {}
func (noopLogger) Warn(string, ...interface{})  {}

type fakeSubmissionService struct {
	result *domain.SubmissionResult
	stored *domain.Submission
	err    error
}

func (f *fakeSubmissionService) Submit(context.Context, uuid.UUID, uuid.UUID, uuid.UUID, string) (*domain.SubmissionResult, error) {
	return f.result, f.err
}

func (f *fakeSubmissionService) Get(_ context.Context, id uuid.UUID) (*domain.Submission, error) {
	if f.stored == nil || f.stored.ID != id {
		return nil, fmt.Errorf("%w: %s", errs.SubmissionNotFound, id)
	}
	return f.stored, nil
}

func postSubmission(t *testing.T, svc *fakeSubmissionService) *httptest.ResponseRecorder {
	t.Helper()
	handler := submissions.NewSubmissionHandler(svc, noopLogger{})

	body, err := json.Marshal(map[string]string{
		"problemId":  uuid.NewString(),
		"languageId": uuid.NewString(),
		"code":       "print(1)",
	})
	if err != nil {
		t.Fatalf("marshal request: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/submissions", bytes.NewReader(body))
	req = req.WithContext(handlers.WithUserID(req.Context(), uuid.NewString()))

	recorder := httptest.NewRecorder()
	handler.CreateSubmission(recorder, req)
	return recorder
}

func TestCreateSubmissionRedactsHiddenTestData(t *testing.T) {
	t.Parallel()
	svc := &fakeSubmissionService{result: &domain.SubmissionResult{
		Submission: &domain.Submission{ID: uuid.New(), Verdict: domain.VerdictWrongAnswer},
		FailedTest: &domain.FailedTest{
			Index:          3,
			Input:          "secret input",
			ExpectedOutput: "secret expected",
			ActualOutput:   "secret actual",
			Stderr:         "exit status 1",
			IsPublic:       false,
		},
	}}

	recorder := postSubmission(t, svc)
	if recorder.Code != http.StatusOK {
		t.Fatalf("unexpected status %d: %s", recorder.Code, recorder.Body.String())
	}

	var resp submissions.SubmitResponse
	if err := json.Unmarshal(recorder.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	failed := resp.FailedTest
	if failed == nil {
		t.Fatal("expected failure evidence in response")
	}
	if failed.Input != "" || failed.ExpectedOutput != "" || failed.ActualOutput != "" {
		t.Fatalf("hidden test data leaked: %+v", failed)
	}
	if failed.Index != 3 || failed.Stderr != "exit status 1" {
		t.Fatalf("diagnostics must survive redaction: %+v", failed)
	}
}

func TestCreateSubmissionKeepsPublicTestData(t *testing.T) {
	t.Parallel()
	svc := &fakeSubmissionService{result: &domain.SubmissionResult{
		Submission: &domain.Submission{ID: uuid.New(), Verdict: domain.VerdictWrongAnswer},
		FailedTest: &domain.FailedTest{
			Index:          0,
			Input:          "2",
			ExpectedOutput: "4",
			ActualOutput:   "5",
			IsPublic:       true,
		},
	}}

	recorder := postSubmission(t, svc)

	var resp submissions.SubmitResponse
	if err := json.Unmarshal(recorder.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	failed := resp.FailedTest
	if failed == nil || failed.Input != "2" || failed.ExpectedOutput != "4" || failed.ActualOutput != "5" {
		t.Fatalf("public test data must be visible: %+v", failed)
	}
}

func TestCreateSubmissionErrorStatusMapping(t *testing.T) {
	t.Parallel()
	for name, tc := range map[string]struct {
		err  error
		want int
	}{
		"unsupported language": {errs.UnsupportedLanguage, http.StatusBadRequest},
		"unknown language id":  {errs.LanguageNotFound, http.StatusBadRequest},
		"no test cases":        {errs.NoTestCases, http.StatusUnprocessableEntity},
		"executor down":        {fmt.Errorf("failed to run batch: %w", errs.ExecutorUnavailable), http.StatusServiceUnavailable},
		"poll timeout":         {errs.PollTimeout, http.StatusServiceUnavailable},
		"unexpected":           {errors.New("disk on fire"), http.StatusInternalServerError},
	} {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			recorder := postSubmission(t, &fakeSubmissionService{err: tc.err})
			if recorder.Code != tc.want {
				t.Fatalf("expected status %d, got %d: %s", tc.want, recorder.Code, recorder.Body.String())
			}
		})
	}
}

func TestCreateSubmissionRejectsBadInput(t *testing.T) {
	t.Parallel()
	handler := submissions.NewSubmissionHandler(&fakeSubmissionService{}, noopLogger{})

	for name, body := range map[string]string{
		"malformed problem id": `{"problemId":"not-a-uuid","languageId":"` + uuid.NewString() + `","code":"x"}`,
		"empty code":           `{"problemId":"` + uuid.NewString() + `","languageId":"` + uuid.NewString() + `","code":""}`,
	} {
		body := body
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			req := httptest.NewRequest(http.MethodPost, "/api/submissions", bytes.NewReader([]byte(body)))
			req = req.WithContext(handlers.WithUserID(req.Context(), uuid.NewString()))

			recorder := httptest.NewRecorder()
			handler.CreateSubmission(recorder, req)
			if recorder.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", recorder.Code)
			}
		})
	}
}

func TestCreateSubmissionRequiresAuthenticatedUser(t *testing.T) {
	t.Parallel()
	handler := submissions.NewSubmissionHandler(&fakeSubmissionService{}, noopLogger{})

	req := httptest.NewRequest(http.MethodPost, "/api/submissions", bytes.NewReader([]byte(`{}`)))
	recorder := httptest.NewRecorder()
	handler.CreateSubmission(recorder, req)
	if recorder.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", recorder.Code)
	}
}
