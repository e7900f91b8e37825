// Package restv3 implements the genie.Adapter capability against the v3
// REST API of a Genie-style job orchestration service.
package restv3

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"genieclient/internal/logger"
	"genieclient/internal/observability"
	"genieclient/pkg/genie"
)

// genieLogPath is where the service keeps the job-system log inside a job's
// output directory.
const genieLogPath = "genie/logs/genie.log"

// Adapter talks to the v3 REST API. All calls are blocking round-trips on
// the calling goroutine; there are no retries.
type Adapter struct {
	baseURL    string
	token      string
	httpClient *http.Client
	logger     *slog.Logger
	tracer     trace.Tracer
}

var _ genie.Adapter = (*Adapter)(nil)

// Option configures an Adapter.
type Option func(*Adapter)

// WithHTTPClient sets a custom HTTP client, e.g. to change the request
// timeout.
func WithHTTPClient(hc *http.Client) Option {
	return func(a *Adapter) {
		a.httpClient = hc
	}
}

// WithLogger sets the logger used for per-request debug logging.
func WithLogger(l *slog.Logger) Option {
	return func(a *Adapter) {
		a.logger = l
	}
}

// New creates an adapter for the service at baseURL, authenticating with the
// given bearer token.
func New(baseURL, token string, opts ...Option) *Adapter {
	a := &Adapter{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: slog.Default(),
		tracer: otel.Tracer("genieclient/adapters/restv3"),
	}
	for _, o := range opts {
		o(a)
	}
	return a
}

// APIError represents an error response from the service.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("genie API error (%d): %s", e.StatusCode, e.Message)
}

// JobInfo fetches job metadata, optionally limited to one section.
func (a *Adapter) JobInfo(ctx context.Context, jobID string, section genie.Section) (map[string]any, error) {
	u := a.jobURL(jobID)
	if section != genie.SectionAll {
		u += "?section=" + url.QueryEscape(string(section))
	}
	var out map[string]any
	if err := a.getJSON(ctx, "job_info", u, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// JobStatus fetches the job's current status.
func (a *Adapter) JobStatus(ctx context.Context, jobID string) (string, error) {
	var out struct {
		Status string `json:"status"`
	}
	if err := a.getJSON(ctx, "job_status", a.jobURL(jobID, "status"), &out); err != nil {
		return "", err
	}
	return out.Status, nil
}

// GenieLog fetches the job-system log as full text.
func (a *Adapter) GenieLog(ctx context.Context, jobID string) (string, error) {
	return a.fetchText(ctx, "genie_log", a.outputURL(jobID, genieLogPath))
}

// GenieLogReader streams the job-system log line by line.
func (a *Adapter) GenieLogReader(ctx context.Context, jobID string) (genie.LogReader, error) {
	return a.fetchLines(ctx, "genie_log", a.outputURL(jobID, genieLogPath))
}

// JobLog fetches a named log by path relative to the job's output directory.
func (a *Adapter) JobLog(ctx context.Context, jobID, logPath string) (string, error) {
	return a.fetchText(ctx, "job_log", a.outputURL(jobID, strings.TrimPrefix(logPath, "/")))
}

// JobLogReader streams a named log line by line.
func (a *Adapter) JobLogReader(ctx context.Context, jobID, logPath string) (genie.LogReader, error) {
	return a.fetchLines(ctx, "job_log", a.outputURL(jobID, strings.TrimPrefix(logPath, "/")))
}

// Stdout fetches the job's stdout as full text.
func (a *Adapter) Stdout(ctx context.Context, jobID string) (string, error) {
	return a.fetchText(ctx, "stdout", a.outputURL(jobID, "stdout"))
}

// StdoutReader streams the job's stdout line by line.
func (a *Adapter) StdoutReader(ctx context.Context, jobID string) (genie.LogReader, error) {
	return a.fetchLines(ctx, "stdout", a.outputURL(jobID, "stdout"))
}

// Stderr fetches the job's stderr as full text.
func (a *Adapter) Stderr(ctx context.Context, jobID string) (string, error) {
	return a.fetchText(ctx, "stderr", a.outputURL(jobID, "stderr"))
}

// StderrReader streams the job's stderr line by line.
func (a *Adapter) StderrReader(ctx context.Context, jobID string) (genie.LogReader, error) {
	return a.fetchLines(ctx, "stderr", a.outputURL(jobID, "stderr"))
}

// KillByURI issues a DELETE against an explicit kill URI.
func (a *Adapter) KillByURI(ctx context.Context, killURI string) (*genie.KillResponse, error) {
	return a.kill(ctx, killURI)
}

// KillByID issues a DELETE for the given job ID.
func (a *Adapter) KillByID(ctx context.Context, jobID string) (*genie.KillResponse, error) {
	return a.kill(ctx, a.jobURL(jobID))
}

func (a *Adapter) jobURL(jobID string, parts ...string) string {
	u := a.baseURL + "/api/v3/jobs/" + url.PathEscape(jobID)
	for _, p := range parts {
		u += "/" + p
	}
	return u
}

func (a *Adapter) outputURL(jobID, relPath string) string {
	return a.jobURL(jobID, "output", relPath)
}

// do executes one round-trip with tracing, metrics, and request-ID logging.
// The caller owns the response body.
func (a *Adapter) do(ctx context.Context, op, method, rawURL string) (*http.Response, error) {
	ctx, span := a.tracer.Start(ctx, "genie."+op, trace.WithAttributes(
		attribute.String("http.request.method", method),
		attribute.String("url.full", rawURL),
	))
	defer span.End()

	reqID := uuid.NewString()
	ctx = logger.WithRequestID(ctx, reqID)

	req, err := http.NewRequestWithContext(ctx, method, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+a.token)
	req.Header.Set("X-Request-ID", reqID)

	start := time.Now()
	resp, err := a.httpClient.Do(req)
	elapsed := time.Since(start)
	if err != nil {
		observability.ObserveAdapterRequest(op, 0, elapsed)
		span.RecordError(err)
		return nil, fmt.Errorf("request failed: %w", err)
	}

	observability.ObserveAdapterRequest(op, resp.StatusCode, elapsed)
	span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))
	logger.FromContext(ctx, a.logger).Debug("genie request",
		"op", op,
		"method", method,
		"url", rawURL,
		"status", resp.StatusCode,
		"duration_ms", elapsed.Milliseconds(),
	)
	return resp, nil
}

func (a *Adapter) getJSON(ctx context.Context, op, rawURL string, out any) error {
	resp, err := a.do(ctx, op, http.MethodGet, rawURL)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return newAPIError(resp)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}
	return nil
}

func (a *Adapter) fetchText(ctx context.Context, op, rawURL string) (string, error) {
	resp, err := a.do(ctx, op, http.MethodGet, rawURL)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", newAPIError(resp)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}
	return string(body), nil
}

func (a *Adapter) fetchLines(ctx context.Context, op, rawURL string) (genie.LogReader, error) {
	resp, err := a.do(ctx, op, http.MethodGet, rawURL)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		defer resp.Body.Close()
		return nil, newAPIError(resp)
	}
	return genie.NewLineReader(resp.Body), nil
}

func (a *Adapter) kill(ctx context.Context, rawURL string) (*genie.KillResponse, error) {
	resp, err := a.do(ctx, "kill", http.MethodDelete, rawURL)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode >= http.StatusBadRequest {
		return nil, &APIError{StatusCode: resp.StatusCode, Message: string(body)}
	}
	return &genie.KillResponse{StatusCode: resp.StatusCode, Body: body}, nil
}

func newAPIError(resp *http.Response) *APIError {
	body, _ := io.ReadAll(resp.Body)
	msg := strings.TrimSpace(string(body))
	if msg == "" {
		msg = http.StatusText(resp.StatusCode)
	}
	return &APIError{StatusCode: resp.StatusCode, Message: msg}
}
