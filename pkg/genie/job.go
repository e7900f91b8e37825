package genie

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
)

// RunningJob is a handle to one remote job, identified by an opaque ID.
//
// Field accessors are lazy: each consults the local cache and only calls the
// Adapter when the field is missing or stale per its freshness rule. Once a
// job is observed outside the running statuses it is treated as permanently
// terminal; its status is never re-fetched and its system log and stderr are
// memoized on first read.
type RunningJob struct {
	id      string
	adapter Adapter
	info    map[string]any

	// status is the last-known canonical (uppercase) status and is the
	// single source of truth for re-fetch gating. info["status"] is kept
	// in sync whenever this field is written, never the other way around.
	status string

	cachedGenieLog *string
	cachedStderr   *string

	// progress receives the dots printed while Wait polls. Nil disables
	// progress output entirely.
	progress io.Writer
}

// Option configures a RunningJob at construction.
type Option func(*RunningJob)

// WithInfo seeds the handle's cache with fields the caller already has,
// avoiding a first remote call. If the mapping carries a status, it becomes
// the handle's last-known status.
func WithInfo(info map[string]any) Option {
	return func(rj *RunningJob) {
		for k, v := range info {
			rj.info[k] = v
		}
	}
}

// WithProgressStream directs Wait's progress output to w.
func WithProgressStream(w io.Writer) Option {
	return func(rj *RunningJob) {
		rj.progress = w
	}
}

// WithoutProgress disables Wait's progress output.
func WithoutProgress() Option {
	return func(rj *RunningJob) {
		rj.progress = nil
	}
}

// NewRunningJob returns a handle for the job identified by jobID. The
// adapter is shared, not owned. Progress output defaults to stdout.
func NewRunningJob(jobID string, adapter Adapter, opts ...Option) *RunningJob {
	rj := &RunningJob{
		id:       jobID,
		adapter:  adapter,
		info:     make(map[string]any),
		progress: os.Stdout,
	}
	for _, o := range opts {
		o(rj)
	}
	if s, ok := rj.info["status"].(string); ok && s != "" {
		rj.status = strings.ToUpper(s)
	}
	return rj
}

// ID returns the job's ID, fixed at construction.
func (rj *RunningJob) ID() string { return rj.id }

func (rj *RunningJob) String() string {
	return fmt.Sprintf("RunningJob(%q)", rj.id)
}

// updateInfo fetches the given info section and merges it into the cache,
// remote values winning. An invalid section is a programming error.
func (rj *RunningJob) updateInfo(ctx context.Context, section Section) error {
	if !section.valid() {
		panic(fmt.Sprintf("genie: invalid info section %q", section))
	}
	data, err := rj.adapter.JobInfo(ctx, rj.id, section)
	if err != nil {
		return err
	}
	for k, v := range data {
		rj.info[k] = v
	}
	return nil
}

// Update forces an unconditional refresh of all job metadata.
func (rj *RunningJob) Update(ctx context.Context) error {
	return rj.updateInfo(ctx, SectionAll)
}

// Info returns a snapshot copy of the handle's cached metadata.
func (rj *RunningJob) Info() map[string]any {
	out := make(map[string]any, len(rj.info))
	for k, v := range rj.info {
		out[k] = v
	}
	return out
}

// Field returns the cached value of a field that has no dedicated accessor.
// It never triggers a remote call; an uncached field yields a
// *FieldNotFoundError.
func (rj *RunningJob) Field(name string) (any, error) {
	if v, ok := rj.info[name]; ok {
		return v, nil
	}
	return nil, &FieldNotFoundError{Field: name}
}

// Status returns the job's canonical uppercase status. The status is
// re-fetched while unknown or running; once a terminal status is observed it
// is trusted forever.
func (rj *RunningJob) Status(ctx context.Context) (string, error) {
	if rj.status == "" || IsRunningStatus(rj.status) {
		s, err := rj.adapter.JobStatus(ctx, rj.id)
		if err != nil {
			return "", err
		}
		rj.status = strings.ToUpper(s)
		rj.info["status"] = rj.status
	}
	return rj.status, nil
}

// IsDone reports whether the job has reached a terminal status.
func (rj *RunningJob) IsDone(ctx context.Context) (bool, error) {
	status, err := rj.Status(ctx)
	if err != nil {
		return false, err
	}
	return !IsRunningStatus(status), nil
}

// IsSuccessful reports whether the job finished with status SUCCEEDED.
func (rj *RunningJob) IsSuccessful(ctx context.Context) (bool, error) {
	status, err := rj.Status(ctx)
	if err != nil {
		return false, err
	}
	return status == StatusSucceeded, nil
}

// ClusterName returns the name of the cluster the job executes on.
func (rj *RunningJob) ClusterName(ctx context.Context) (string, error) {
	return rj.stringField(ctx, fieldSpec{key: "cluster_name", section: SectionCluster})
}

// CommandArgs returns the job's command line arguments.
func (rj *RunningJob) CommandArgs(ctx context.Context) (string, error) {
	return rj.stringField(ctx, fieldSpec{key: "command_args", section: SectionJob})
}

// Description returns the job's description.
func (rj *RunningJob) Description(ctx context.Context) (string, error) {
	return rj.stringField(ctx, fieldSpec{key: "description", section: SectionJob})
}

// FileDependencies returns the file dependencies of the job's submission.
func (rj *RunningJob) FileDependencies(ctx context.Context) ([]string, error) {
	return rj.stringSliceField(ctx, fieldSpec{key: "file_dependencies", section: SectionRequest})
}

// JobName returns the job's name.
func (rj *RunningJob) JobName(ctx context.Context) (string, error) {
	return rj.stringField(ctx, fieldSpec{key: "name", section: SectionJob})
}

// JobLink returns the service's browser link for the job.
func (rj *RunningJob) JobLink(ctx context.Context) (string, error) {
	return rj.stringField(ctx, fieldSpec{key: "job_link", section: SectionJob})
}

// JSONLink returns the service's API link for the job.
func (rj *RunningJob) JSONLink(ctx context.Context) (string, error) {
	return rj.stringField(ctx, fieldSpec{key: "json_link", section: SectionJob})
}

// KillURI returns the URI a kill request should be sent to.
func (rj *RunningJob) KillURI(ctx context.Context) (string, error) {
	return rj.stringField(ctx, fieldSpec{key: "kill_uri", section: SectionJob})
}

// OutputURI returns the URI of the job's output directory.
func (rj *RunningJob) OutputURI(ctx context.Context) (string, error) {
	return rj.stringField(ctx, fieldSpec{key: "output_uri", section: SectionJob})
}

// RequestData returns the raw job submission request.
func (rj *RunningJob) RequestData(ctx context.Context) (map[string]any, error) {
	return rj.mapField(ctx, fieldSpec{key: "request_data", section: SectionRequest})
}

// Tags returns the job's tags.
func (rj *RunningJob) Tags(ctx context.Context) ([]string, error) {
	return rj.stringSliceField(ctx, fieldSpec{key: "tags", section: SectionJob})
}

// Username returns the user the job executes as.
func (rj *RunningJob) Username(ctx context.Context) (string, error) {
	return rj.stringField(ctx, fieldSpec{key: "user", section: SectionJob})
}

// StatusMsg returns the job's status message. Running jobs' messages change
// without notice, so the field is re-fetched as long as the job is running.
func (rj *RunningJob) StatusMsg(ctx context.Context) (string, error) {
	return rj.stringField(ctx, fieldSpec{key: "status_msg", section: SectionJob, volatile: true})
}

// JobType derives the job's type from its command name. Any command with
// "hive" in the name reports HIVE; everything else reports the command name
// uppercased.
func (rj *RunningJob) JobType(ctx context.Context) (string, error) {
	if _, ok := rj.info["command_name"]; !ok {
		if err := rj.updateInfo(ctx, SectionCommand); err != nil {
			return "", err
		}
	}
	name, _ := rj.info["command_name"].(string)
	if strings.Contains(strings.ToLower(name), "hive") {
		return "HIVE", nil
	}
	return strings.ToUpper(name), nil
}

// StartTime returns the job's start time in epoch milliseconds.
func (rj *RunningJob) StartTime(ctx context.Context) (int64, error) {
	if v, ok := rj.info["started"]; !ok || v == nil {
		if err := rj.updateInfo(ctx, SectionJob); err != nil {
			return 0, err
		}
	}
	return rj.timeField("started")
}

// FinishTime returns the job's finish time in epoch milliseconds. A job that
// has not finished yields the epoch start.
func (rj *RunningJob) FinishTime(ctx context.Context) (int64, error) {
	status, err := rj.Status(ctx)
	if err != nil {
		return 0, err
	}
	if _, ok := rj.info["finished"]; !ok || IsRunningStatus(status) {
		if err := rj.updateInfo(ctx, SectionJob); err != nil {
			return 0, err
		}
	}
	return rj.timeField("finished")
}

// UpdateTime returns the job's last update time in epoch milliseconds.
func (rj *RunningJob) UpdateTime(ctx context.Context) (int64, error) {
	status, err := rj.Status(ctx)
	if err != nil {
		return 0, err
	}
	if _, ok := rj.info["updated"]; !ok || IsRunningStatus(status) {
		if err := rj.updateInfo(ctx, SectionJob); err != nil {
			return 0, err
		}
	}
	return rj.timeField("updated")
}

// Duration returns finish time minus start time in milliseconds. While the
// job is still running the finish time has not been set, so the result is
// negative; callers should read a negative duration as "still running".
func (rj *RunningJob) Duration(ctx context.Context) (int64, error) {
	finish, err := rj.FinishTime(ctx)
	if err != nil {
		return 0, err
	}
	start, err := rj.StartTime(ctx)
	if err != nil {
		return 0, err
	}
	return finish - start, nil
}

// GenieLog returns the job-system log as full text. Once the job is
// terminal the log is fetched once and memoized; while it runs, every call
// reads live from the service.
func (rj *RunningJob) GenieLog(ctx context.Context) (string, error) {
	done, err := rj.IsDone(ctx)
	if err != nil {
		return "", err
	}
	if !done {
		return rj.adapter.GenieLog(ctx, rj.id)
	}
	if err := rj.memoizeGenieLog(ctx); err != nil {
		return "", err
	}
	return *rj.cachedGenieLog, nil
}

// GenieLogLines returns the job-system log as a single-pass line reader,
// with the same caching behavior as GenieLog.
func (rj *RunningJob) GenieLogLines(ctx context.Context) (LogReader, error) {
	done, err := rj.IsDone(ctx)
	if err != nil {
		return nil, err
	}
	if !done {
		return rj.adapter.GenieLogReader(ctx, rj.id)
	}
	if err := rj.memoizeGenieLog(ctx); err != nil {
		return nil, err
	}
	return newStringLogReader(strings.Split(*rj.cachedGenieLog, "\n")), nil
}

func (rj *RunningJob) memoizeGenieLog(ctx context.Context) error {
	if rj.cachedGenieLog != nil {
		return nil
	}
	text, err := rj.adapter.GenieLog(ctx, rj.id)
	if err != nil {
		return err
	}
	rj.cachedGenieLog = &text
	return nil
}

// Stderr returns the job's stderr as full text, memoized once the job is
// terminal, live while it runs.
func (rj *RunningJob) Stderr(ctx context.Context) (string, error) {
	done, err := rj.IsDone(ctx)
	if err != nil {
		return "", err
	}
	if !done {
		return rj.adapter.Stderr(ctx, rj.id)
	}
	if err := rj.memoizeStderr(ctx); err != nil {
		return "", err
	}
	return *rj.cachedStderr, nil
}

// StderrLines returns the job's stderr as a single-pass line reader, with
// the same caching behavior as Stderr.
func (rj *RunningJob) StderrLines(ctx context.Context) (LogReader, error) {
	done, err := rj.IsDone(ctx)
	if err != nil {
		return nil, err
	}
	if !done {
		return rj.adapter.StderrReader(ctx, rj.id)
	}
	if err := rj.memoizeStderr(ctx); err != nil {
		return nil, err
	}
	return newStringLogReader(strings.Split(*rj.cachedStderr, "\n")), nil
}

func (rj *RunningJob) memoizeStderr(ctx context.Context) error {
	if rj.cachedStderr != nil {
		return nil
	}
	text, err := rj.adapter.Stderr(ctx, rj.id)
	if err != nil {
		return err
	}
	rj.cachedStderr = &text
	return nil
}

// Stdout returns the job's stdout as full text. Stdout is never memoized:
// every call reads live from the service, terminal job or not.
func (rj *RunningJob) Stdout(ctx context.Context) (string, error) {
	return rj.adapter.Stdout(ctx, rj.id)
}

// StdoutLines returns the job's stdout as a single-pass line reader, always
// read live from the service.
func (rj *RunningJob) StdoutLines(ctx context.Context) (LogReader, error) {
	return rj.adapter.StdoutReader(ctx, rj.id)
}

// Log returns a named log, by path relative to the job's output directory,
// as full text. Named logs are always read live.
func (rj *RunningJob) Log(ctx context.Context, logPath string) (string, error) {
	return rj.adapter.JobLog(ctx, rj.id, logPath)
}

// LogLines returns a named log as a single-pass line reader.
func (rj *RunningJob) LogLines(ctx context.Context, logPath string) (LogReader, error) {
	return rj.adapter.JobLogReader(ctx, rj.id, logPath)
}

// StdoutURL returns the URL of the job's stdout file, derived from the
// output URI.
func (rj *RunningJob) StdoutURL(ctx context.Context) (string, error) {
	uri, err := rj.OutputURI(ctx)
	if err != nil {
		return "", err
	}
	return strings.Replace(uri, "/output/", "/file/", 1) + "/stdout", nil
}

// Kill requests that the service stop the job. If a kill URI is already
// cached it is used as-is, without forcing a refresh; otherwise the kill is
// issued by job ID. The response is returned uninterpreted.
func (rj *RunningJob) Kill(ctx context.Context) (*KillResponse, error) {
	if uri, ok := rj.info["kill_uri"].(string); ok && uri != "" {
		return rj.adapter.KillByURI(ctx, uri)
	}
	return rj.adapter.KillByID(ctx, rj.id)
}
