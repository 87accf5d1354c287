package timeutil

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const day = 24 * time.Hour

// ParseDuration accepts Go durations plus whole days ("30d") and weeks ("2w").
func ParseDuration(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, errors.New("empty duration string")
	}
	if d, err := time.ParseDuration(s); err == nil {
		return d, nil
	}
	if len(s) < 2 {
		return 0, fmt.Errorf("invalid duration format: %s", s)
	}

	n, err := strconv.ParseInt(s[:len(s)-1], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid duration number: %s", s[:len(s)-1])
	}
	switch s[len(s)-1] {
	case 'd':
		return time.Duration(n) * day, nil
	case 'w':
		return time.Duration(n) * 7 * day, nil
	default:
		return 0, fmt.Errorf("unknown duration unit: %s", s[len(s)-1:])
	}
}

// ParseWindow turns a signed offset such as "-365d" or "+1w" into the
// interval between now and now+offset, earliest bound first.
func ParseWindow(s string, now time.Time) (time.Time, time.Time, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "-") && !strings.HasPrefix(s, "+") {
		return time.Time{}, time.Time{}, fmt.Errorf("window must start with + or -: %s", s)
	}
	d, err := ParseDuration(s[1:])
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if s[0] == '-' {
		return now.Add(-d), now, nil
	}
	return now, now.Add(d), nil
}

type Int63ner interface {
	Int63n(n int64) int64
}

// RandomBetween returns an instant in [from, to), truncated to the second.
func RandomBetween(r Int63ner, from, to time.Time) time.Time {
	span := to.Sub(from)
	if span <= 0 {
		return from.Truncate(time.Second)
	}
	return from.Add(time.Duration(r.Int63n(int64(span)))).Truncate(time.Second)
}
