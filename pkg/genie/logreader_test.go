package genie

import (
	"io"
	"strings"
	"testing"
)

func TestStringLogReader(t *testing.T) {
	r := newStringLogReader([]string{"one", "two", "three"})

	var lines []string
	for r.Next() {
		lines = append(lines, r.Text())
	}
	if len(lines) != 3 || lines[0] != "one" || lines[2] != "three" {
		t.Errorf("unexpected lines: %v", lines)
	}
	if r.Next() {
		t.Errorf("a log reader is single-pass; Next must stay false once exhausted")
	}
	if err := r.Err(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestLineReaderStreams(t *testing.T) {
	rc := io.NopCloser(strings.NewReader("alpha\nbeta\ngamma\n"))
	r := NewLineReader(rc)
	defer r.Close()

	var lines []string
	for r.Next() {
		lines = append(lines, r.Text())
	}
	if err := r.Err(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(lines) != 3 || lines[1] != "beta" {
		t.Errorf("unexpected lines: %v", lines)
	}
}

func TestLineReaderCloseIsIdempotent(t *testing.T) {
	r := NewLineReader(io.NopCloser(strings.NewReader("x")))
	if err := r.Close(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := r.Close(); err != nil {
		t.Fatalf("second close should be a no-op: %v", err)
	}
	if r.Next() {
		t.Errorf("closed reader must not yield lines")
	}
}
