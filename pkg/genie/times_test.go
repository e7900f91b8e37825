package genie

import (
	"context"
	"testing"
)

func TestEpochMillis(t *testing.T) {
	cases := []struct {
		in   string
		want int64
	}{
		{"1970-01-01T00:00:00Z", 0},
		{"1970-01-01T00:00:01Z", 1000},
		// Millisecond fractions parse via the millisecond-aware layout but
		// convert at whole-second resolution.
		{"2020-01-01T00:00:00.500Z", 1577836800000},
		{"2014-07-18T14:00:00.000Z", 1405692000000},
	}
	for _, tc := range cases {
		got, err := epochMillis(tc.in)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", tc.in, err)
		}
		if got != tc.want {
			t.Errorf("%s: expected %d, got %d", tc.in, tc.want, got)
		}
	}
}

func TestEpochMillisMalformed(t *testing.T) {
	if _, err := epochMillis("yesterday"); err == nil {
		t.Errorf("expected parse error for malformed timestamp")
	}
}

func TestStartTimeRefreshesWhenMissing(t *testing.T) {
	fake := &fakeAdapter{
		infoBySection: map[Section]map[string]any{
			SectionJob: {"started": "1970-01-01T00:00:02Z"},
		},
	}
	rj := NewRunningJob("job-1", fake)

	got, err := rj.StartTime(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 2000 {
		t.Errorf("expected 2000, got %d", got)
	}
	if fake.infoCalls != 1 || fake.sections[0] != SectionJob {
		t.Errorf("expected one job section refresh")
	}
}

func TestStartTimeMissingMeansEpochStart(t *testing.T) {
	fake := &fakeAdapter{}
	rj := NewRunningJob("job-1", fake)

	got, err := rj.StartTime(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 0 {
		t.Errorf("expected epoch start for a missing timestamp, got %d", got)
	}
}

func TestFinishTimeRefreshesWhileRunning(t *testing.T) {
	fake := &fakeAdapter{
		statuses: []string{StatusRunning},
		infoBySection: map[Section]map[string]any{
			SectionJob: {"finished": "1970-01-01T00:00:03Z"},
		},
	}
	rj := NewRunningJob("job-1", fake)
	ctx := context.Background()

	if _, err := rj.FinishTime(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := rj.FinishTime(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// The field is cached but the job is running, so each access refreshes.
	if fake.infoCalls != 2 {
		t.Errorf("expected a refresh per access while running, got %d", fake.infoCalls)
	}
}

func TestFinishTimeCachedOnceTerminal(t *testing.T) {
	fake := &fakeAdapter{
		statuses: []string{StatusSucceeded},
		infoBySection: map[Section]map[string]any{
			SectionJob: {"finished": "1970-01-01T00:00:03Z"},
		},
	}
	rj := NewRunningJob("job-1", fake)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		got, err := rj.FinishTime(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != 3000 {
			t.Errorf("expected 3000, got %d", got)
		}
	}
	if fake.infoCalls != 1 {
		t.Errorf("expected a single refresh for a terminal job, got %d", fake.infoCalls)
	}
}
