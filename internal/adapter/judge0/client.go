// package judge0 is the HTTP adapter for a judge0-compatible execution
// service. Raw wire statuses are translated into the closed
// domain.ExecutionStatus set here and nowhere else.
package judge0

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"gitlab.com/cjudge-2025.net/internal/config"
	"gitlab.com/cjudge-2025.net/internal/core/ports/primary"
	"gitlab.com/cjudge-2025.net/internal/core/ports/secondary"
	"gitlab.com/cjudge-2025.net/internal/domain"
	"gitlab.com/cjudge-2025.net/internal/static/errs"
)

// singleRunPollCap bounds ad-hoc runs that the caller did not bound via
// context. Batch runs use the much tighter configured ceiling instead.
const singleRunPollCap = 120

var _ secondary.SandboxClient = (*Client)(nil)

// Client implements the SandboxClient interface against the judge0 API
type Client struct {
	cfg        *config.ExecutorConfig
	httpClient *http.Client
	logger     primary.Logger
}

// NewClient creates a new execution client
func NewClient(cfg *config.ExecutorConfig, httpClient *http.Client, logger primary.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &Client{
		cfg:        cfg,
		httpClient: httpClient,
		logger:     logger,
	}
}

type submissionPayload struct {
	SourceCode string `json:"source_code"`
	LanguageID int    `json:"language_id"`
	Stdin      string `json:"stdin"`
}

type batchCreateRequest struct {
	Submissions []submissionPayload `json:"submissions"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

type rawStatus struct {
	ID          int    `json:"id"`
	Description string `json:"description"`
}

type rawResult struct {
	Token         string    `json:"token"`
	Status        rawStatus `json:"status"`
	Stdout        *string   `json:"stdout"`
	Stderr        *string   `json:"stderr"`
	CompileOutput *string   `json:"compile_output"`
	Message       *string   `json:"message"`
	Time          *string   `json:"time"`
	Memory        *float64  `json:"memory"`
}

type batchPollResponse struct {
	Submissions []rawResult `json:"submissions"`
}

// RunOne submits one execution and polls until the service reports a
// terminal status, the context is cancelled, or the hard attempt cap is
// reached.
func (c *Client) RunOne(ctx context.Context, sourceCode string, languageID int, stdin string) (*domain.ExecutionResult, error) {
	payload := submissionPayload{
		SourceCode: sourceCode,
		LanguageID: languageID,
		Stdin:      stdin,
	}

	var created tokenResponse
	if err := c.post(ctx, "/submissions?base64_encoded=false&wait=false", payload, &created); err != nil {
		return nil, err
	}
	if created.Token == "" {
		return nil, fmt.Errorf("%w: no token in create response", errs.ExecutorUnavailable)
	}

	c.logger.Debug("Created execution", "token", created.Token)

	for attempt := 0; attempt < singleRunPollCap; attempt++ {
		if err := c.sleep(ctx); err != nil {
			return nil, err
		}

		var raw rawResult
		path := fmt.Sprintf("/submissions/%s?base64_encoded=false", created.Token)
		if err := c.get(ctx, path, &raw); err != nil {
			return nil, err
		}

		result := toDomain(raw)
		if result.Status.IsTerminal() {
			return &result, nil
		}
	}

	return nil, fmt.Errorf("%w: token %s", errs.PollTimeout, created.Token)
}

// RunBatch submits every stdin variant as one batch creation call, then
// polls the whole batch as a unit until no member remains non-terminal
// or the configured attempt ceiling is exhausted. On exhaustion the
// partial results are returned without error; unresolved entries keep
// their non-terminal status.
func (c *Client) RunBatch(ctx context.Context, sourceCode string, languageID int, stdins []string) ([]domain.ExecutionResult, error) {
	submissions := make([]submissionPayload, len(stdins))
	for i, stdin := range stdins {
		submissions[i] = submissionPayload{
			SourceCode: sourceCode,
			LanguageID: languageID,
			Stdin:      stdin,
		}
	}

	var created []tokenResponse
	if err := c.post(ctx, "/submissions/batch?base64_encoded=false", batchCreateRequest{Submissions: submissions}, &created); err != nil {
		return nil, err
	}
	if len(created) != len(stdins) {
		return nil, fmt.Errorf("%w: batch create returned %d tokens for %d submissions",
			errs.ExecutorUnavailable, len(created), len(stdins))
	}

	tokens := make([]string, len(created))
	for i, item := range created {
		tokens[i] = item.Token
	}

	c.logger.Debug("Created execution batch", "tokens", strings.Join(tokens, ","))

	// Every entry starts out queued so the slice keeps its shape even
	// when the poll ceiling is exhausted before the first response.
	results := make([]domain.ExecutionResult, len(tokens))
	for i := range results {
		results[i] = domain.ExecutionResult{Status: domain.StatusInQueue}
	}

	path := fmt.Sprintf("/submissions/batch?tokens=%s&base64_encoded=false", strings.Join(tokens, ","))

	for attempt := 0; attempt < c.cfg.MaxPollAttempts; attempt++ {
		var polled batchPollResponse
		if err := c.get(ctx, path, &polled); err != nil {
			return nil, err
		}

		stillRunning := false
		for i, raw := range polled.Submissions {
			if i >= len(results) {
				break
			}
			results[i] = toDomain(raw)
			if !results[i].Status.IsTerminal() {
				stillRunning = true
			}
		}

		if !stillRunning && len(polled.Submissions) == len(results) {
			return results, nil
		}

		if err := c.sleep(ctx); err != nil {
			return nil, err
		}
	}

	c.logger.Warn("Batch poll ceiling exhausted, returning partial results",
		"attempts", c.cfg.MaxPollAttempts, "batchSize", len(tokens))

	return results, nil
}

func (c *Client) post(ctx context.Context, path string, body, out interface{}) error {
	encoded, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.Host+path, bytes.NewReader(encoded))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req, out)
}

func (c *Client) get(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.Host+path, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out interface{}) error {
	req.Header.Set("X-RapidAPI-Key", c.cfg.APIKey)
	req.Header.Set("X-RapidAPI-Host", hostHeader(c.cfg.Host))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Execution service request failed", "url", req.URL.Path, "error", err)
		return fmt.Errorf("%w: %v", errs.ExecutorUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		c.logger.Error("Execution service returned error",
			"url", req.URL.Path, "status", resp.StatusCode, "body", string(body))
		return fmt.Errorf("%w: status %d", errs.ExecutorUnavailable, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", errs.ExecutorUnavailable, err)
	}

	return nil
}

// sleep waits one poll interval, aborting early on context cancellation
func (c *Client) sleep(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(c.cfg.PollInterval):
		return nil
	}
}

// toDomain translates one raw judge0 result into the closed domain shape
func toDomain(raw rawResult) domain.ExecutionResult {
	result := domain.ExecutionResult{
		Status: mapStatus(raw.Status.ID),
	}
	if raw.Stdout != nil {
		result.Stdout = *raw.Stdout
	}
	if raw.Stderr != nil {
		result.Stderr = *raw.Stderr
	}
	if raw.CompileOutput != nil {
		result.CompileOutput = *raw.CompileOutput
	}
	if raw.Message != nil {
		result.Message = *raw.Message
	}
	if raw.Time != nil {
		if seconds, err := strconv.ParseFloat(*raw.Time, 64); err == nil {
			result.Time = seconds
		}
	}
	if raw.Memory != nil {
		result.Memory = *raw.Memory
	}
	return result
}

// mapStatus translates judge0 status ids:
// 1 In Queue, 2 Processing, 3 Accepted, 4 Wrong Answer,
// 5 Time Limit Exceeded, 6 Compilation Error, 7-12 runtime error
// variants, 13 Internal Error, 14 Exec Format Error.
func mapStatus(id int) domain.ExecutionStatus {
	switch {
	case id == 1:
		return domain.StatusInQueue
	case id == 2:
		return domain.StatusRunning
	case id == 3:
		return domain.StatusAccepted
	case id == 4:
		return domain.StatusWrongAnswer
	case id == 5:
		return domain.StatusTimeLimit
	case id == 6:
		return domain.StatusCompileError
	case id >= 7 && id <= 12:
		return domain.StatusRuntimeError
	default:
		return domain.StatusInternalError
	}
}

func hostHeader(host string) string {
	host = strings.TrimPrefix(host, "https://")
	host = strings.TrimPrefix(host, "http://")
	return host
}
