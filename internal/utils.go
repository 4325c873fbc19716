package internal

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// RemovePassword masks the password of a user:password@host URI so it can be
// logged or shown in error messages.
func RemovePassword(uri string) string {
	start := strings.Index(uri, "://")
	if start < 0 {
		start = 0
	} else {
		start += 3
	}
	authority := uri[start:]
	if slash := strings.Index(authority, "/"); slash >= 0 {
		authority = authority[:slash]
	}
	at := strings.LastIndex(authority, "@")
	if at < 0 {
		return uri
	}
	colon := strings.Index(authority[:at], ":")
	if colon < 0 {
		return uri
	}
	return uri[:start+colon+1] + "****" + uri[start+at:]
}

// Duration parses a duration that may carry a leading day count ("1d2h") or
// be a bare number of seconds ("1.5").
func Duration(s string) (time.Duration, error) {
	if s == "" {
		return 0, nil
	}
	if v, err := strconv.ParseFloat(s, 64); err == nil {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, fmt.Errorf("invalid duration %q", s)
		}
		return time.Duration(v * float64(time.Second)), nil
	}
	var days time.Duration
	rest := s
	if i := strings.Index(rest, "d"); i > 0 {
		n, err := strconv.Atoi(rest[:i])
		if err != nil {
			return 0, fmt.Errorf("invalid duration %q", s)
		}
		days, rest = time.Duration(n)*24*time.Hour, rest[i+1:]
		if rest == "" {
			return days, nil
		}
	}
	d, err := time.ParseDuration(rest)
	if err != nil {
		return 0, fmt.Errorf("invalid duration %q", s)
	}
	return days + d, nil
}
