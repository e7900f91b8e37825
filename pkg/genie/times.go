package genie

import (
	"fmt"
	"regexp"
	"time"
)

// The service reports timestamps as ISO-8601 UTC strings, with or without a
// millisecond fraction.
const (
	timeLayoutMillis  = "2006-01-02T15:04:05.000Z"
	timeLayoutSeconds = "2006-01-02T15:04:05Z"
)

var millisFraction = regexp.MustCompile(`\.\d\d\dZ`)

// epochMillis converts a service timestamp to epoch milliseconds, at whole
// second resolution.
func epochMillis(value string) (int64, error) {
	layout := timeLayoutSeconds
	if millisFraction.MatchString(value) {
		layout = timeLayoutMillis
	}
	t, err := time.Parse(layout, value)
	if err != nil {
		return 0, err
	}
	return t.Unix() * 1000, nil
}

// timeField converts the cached timestamp under key to epoch milliseconds.
// A missing or null timestamp means the epoch start.
func (rj *RunningJob) timeField(key string) (int64, error) {
	v, ok := rj.info[key]
	if !ok || v == nil {
		return 0, nil
	}
	s, ok := v.(string)
	if !ok {
		return 0, fmt.Errorf("job info field %q: unexpected timestamp type %T", key, v)
	}
	return epochMillis(s)
}
