// Package genie provides a client-side handle for jobs running on a
// Genie-style job orchestration service.
//
// The central type is RunningJob: a lazy, cached view of a single remote
// job. Accessors consult a local field cache first and only call out to the
// service (through an Adapter) when a field is missing or its freshness
// rules say the cached value can no longer be trusted. A RunningJob is not
// safe for concurrent use; callers sharing one across goroutines must
// serialize access themselves.
package genie

import (
	"fmt"
	"strings"
)

// Canonical job statuses reported by the service. The service may report
// other values; anything outside the running set is treated as terminal.
const (
	StatusInit      = "INIT"
	StatusRunning   = "RUNNING"
	StatusSucceeded = "SUCCEEDED"
	StatusFailed    = "FAILED"
	StatusKilled    = "KILLED"
)

// IsRunningStatus reports whether status means the job has not yet reached
// a final outcome. Matching is case-insensitive; unknown statuses are
// considered terminal.
func IsRunningStatus(status string) bool {
	switch strings.ToUpper(status) {
	case StatusInit, StatusRunning:
		return true
	}
	return false
}

// Section names a subset of job metadata that can be fetched independently
// to limit remote call cost. SectionAll fetches everything.
type Section string

const (
	SectionAll          Section = ""
	SectionApplications Section = "applications"
	SectionCluster      Section = "cluster"
	SectionCommand      Section = "command"
	SectionExecution    Section = "execution"
	SectionJob          Section = "job"
	SectionRequest      Section = "request"
)

// ParseSection validates a user-supplied section name.
func ParseSection(s string) (Section, error) {
	sec := Section(strings.ToLower(s))
	if !sec.valid() {
		return "", fmt.Errorf("unknown info section %q", s)
	}
	return sec, nil
}

func (s Section) valid() bool {
	switch s {
	case SectionAll, SectionApplications, SectionCluster, SectionCommand,
		SectionExecution, SectionJob, SectionRequest:
		return true
	}
	return false
}
