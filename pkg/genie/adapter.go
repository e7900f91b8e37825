package genie

import (
	"context"
	"fmt"
)

// Adapter is the capability that performs all remote communication with the
// job orchestration service. RunningJob holds a shared reference to one and
// never manages its lifecycle.
//
// Implementations do not retry; failures propagate to the caller verbatim.
type Adapter interface {
	// JobInfo fetches job metadata. An empty section fetches everything.
	JobInfo(ctx context.Context, jobID string, section Section) (map[string]any, error)

	// JobStatus fetches the job's current status string.
	JobStatus(ctx context.Context, jobID string) (string, error)

	// GenieLog fetches the job-system log as full text.
	GenieLog(ctx context.Context, jobID string) (string, error)

	// GenieLogReader streams the job-system log line by line.
	GenieLogReader(ctx context.Context, jobID string) (LogReader, error)

	// JobLog fetches a named log, by path relative to the job's output
	// directory, as full text.
	JobLog(ctx context.Context, jobID, logPath string) (string, error)

	// JobLogReader streams a named log line by line.
	JobLogReader(ctx context.Context, jobID, logPath string) (LogReader, error)

	// Stdout fetches the job's stdout as full text.
	Stdout(ctx context.Context, jobID string) (string, error)

	// StdoutReader streams the job's stdout line by line.
	StdoutReader(ctx context.Context, jobID string) (LogReader, error)

	// Stderr fetches the job's stderr as full text.
	Stderr(ctx context.Context, jobID string) (string, error)

	// StderrReader streams the job's stderr line by line.
	StderrReader(ctx context.Context, jobID string) (LogReader, error)

	// KillByURI issues a kill request against an explicit kill URI.
	KillByURI(ctx context.Context, killURI string) (*KillResponse, error)

	// KillByID issues a kill request for the given job ID.
	KillByID(ctx context.Context, jobID string) (*KillResponse, error)
}

// KillResponse carries the service's uninterpreted response to a kill
// request. RunningJob hands it back to the caller as-is.
type KillResponse struct {
	StatusCode int
	Body       []byte
}

// FieldNotFoundError is returned by RunningJob.Field for fields that are not
// present in the handle's cache.
type FieldNotFoundError struct {
	Field string
}

func (e *FieldNotFoundError) Error() string {
	return fmt.Sprintf("job info has no field %q", e.Field)
}
