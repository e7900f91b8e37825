package genie

import (
	"bufio"
	"io"
)

// LogReader is a pull-based, single-pass reader over log lines, in the
// manner of bufio.Scanner:
//
//	for r.Next() {
//	    fmt.Println(r.Text())
//	}
//	if err := r.Err(); err != nil { ... }
//
// A LogReader cannot be rewound; to re-read a log, request a new reader.
type LogReader interface {
	// Next advances to the next line, returning false when the log is
	// exhausted or a read error occurred.
	Next() bool

	// Text returns the current line, without its trailing newline.
	Text() string

	// Err returns the first error encountered while reading, if any.
	Err() error

	// Close releases the underlying stream. Safe to call more than once.
	Close() error
}

// NewLineReader returns a LogReader that streams lines from rc. The stream
// is closed automatically once exhausted.
func NewLineReader(rc io.ReadCloser) LogReader {
	sc := bufio.NewScanner(rc)
	sc.Buffer(make([]byte, 64*1024), 1024*1024)
	return &lineReader{rc: rc, sc: sc}
}

type lineReader struct {
	rc     io.ReadCloser
	sc     *bufio.Scanner
	text   string
	closed bool
}

func (r *lineReader) Next() bool {
	if r.closed {
		return false
	}
	if r.sc.Scan() {
		r.text = r.sc.Text()
		return true
	}
	r.Close()
	return false
}

func (r *lineReader) Text() string { return r.text }

func (r *lineReader) Err() error { return r.sc.Err() }

func (r *lineReader) Close() error {
	if r.closed {
		return nil
	}
	r.closed = true
	return r.rc.Close()
}

// stringLogReader serves lines from an already-memoized blob.
type stringLogReader struct {
	lines []string
	i     int
}

func newStringLogReader(lines []string) *stringLogReader {
	return &stringLogReader{lines: lines, i: -1}
}

func (r *stringLogReader) Next() bool {
	if r.i+1 >= len(r.lines) {
		return false
	}
	r.i++
	return true
}

func (r *stringLogReader) Text() string {
	if r.i < 0 || r.i >= len(r.lines) {
		return ""
	}
	return r.lines[r.i]
}

func (r *stringLogReader) Err() error { return nil }

func (r *stringLogReader) Close() error { return nil }
