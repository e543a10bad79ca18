package util

import (
	"fmt"
	"strings"
	"time"
)

const (
	DateFormat = "2006-01-02"
)

// ParseISOTime parses an ISO-8601 timestamp. Both full RFC 3339 values and bare dates
// (interpreted as midnight UTC) are accepted.
func ParseISOTime(str string) (time.Time, error) {
	str = strings.TrimSpace(str)
	if t, err := time.Parse(time.RFC3339Nano, str); err == nil {
		return t, nil
	}
	if t, err := time.Parse(DateFormat, str); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("util: %q is not an ISO-8601 date", str)
}

// ParseOptionalISOTime is ParseISOTime for optional query parameters: an empty string yields nil.
func ParseOptionalISOTime(str string) (*time.Time, error) {
	if strings.TrimSpace(str) == "" {
		return nil, nil
	}
	t, err := ParseISOTime(str)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
