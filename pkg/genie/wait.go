package genie

import (
	"context"
	"io"
	"strings"
	"time"
)

// DefaultPollInterval is how long Wait sleeps between status polls when no
// interval is configured.
const DefaultPollInterval = 10 * time.Second

// WaitOptions configures RunningJob.Wait. The zero value polls every
// DefaultPollInterval until the job leaves the running statuses, printing
// progress dots.
type WaitOptions struct {
	// PollInterval is the sleep between status polls. Zero or negative
	// means DefaultPollInterval.
	PollInterval time.Duration

	// Quiet suppresses progress output.
	Quiet bool

	// UntilRunning stops the wait as soon as the job reaches RUNNING,
	// rather than waiting for a terminal status.
	UntilRunning bool
}

// Wait blocks until the job's status leaves the wait's stop set, polling the
// service at a fixed interval. Every status poll is live; the handle's
// cached status is not consulted or updated. There is no timeout and no
// iteration cap: Wait returns only when the service reports a qualifying
// status, an Adapter call fails, or ctx is canceled.
//
// It returns the handle itself, so calls can be chained.
func (rj *RunningJob) Wait(ctx context.Context, opts WaitOptions) (*RunningJob, error) {
	interval := opts.PollInterval
	if interval <= 0 {
		interval = DefaultPollInterval
	}

	stop := map[string]bool{StatusInit: true}
	if !opts.UntilRunning {
		stop[StatusRunning] = true
	}

	for i := 0; ; i++ {
		status, err := rj.adapter.JobStatus(ctx, rj.id)
		if err != nil {
			return nil, err
		}
		if !stop[strings.ToUpper(status)] {
			break
		}
		if i%3 == 0 && !opts.Quiet {
			rj.writeProgress(".")
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(interval):
		}
	}

	if !opts.Quiet {
		rj.writeProgress("\n")
	}
	return rj, nil
}

// writeProgress emits progress output, best effort.
func (rj *RunningJob) writeProgress(s string) {
	if rj.progress == nil {
		return
	}
	io.WriteString(rj.progress, s)
}
