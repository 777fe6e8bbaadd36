package utils

import (
	"net/http"
	"strconv"
)

// ParseLimit reads the limit query parameter, falling back to def when the
// parameter is absent or not a positive integer.
func ParseLimit(r *http.Request, def int64) int64 {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return def
	}
	limit, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || limit < 1 {
		return def
	}
	return limit
}

// Truncate caps a string for diagnostic output.
func Truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
