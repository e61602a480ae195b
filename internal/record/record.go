// Package record converts domain entities to and from the line-oriented
// file format: one entity per line, fields joined by '|' in a fixed order.
// The format has no escaping, so free-text fields are sanitized on encode
// and a line that cannot be split into its minimum field count decodes to
// ok=false and is skipped by callers.
package record

import (
	"strconv"
	"strings"
	"time"
)

const (
	// Delimiter separates fields within a line. It is stripped from
	// free-text fields on encode since the format cannot escape it.
	Delimiter = "|"

	dateLayout     = "2006-01-02"
	dateTimeLayout = "2006-01-02T15:04:05"
)

// sanitize makes a free-text value safe to embed in a record line.
// Delimiters and newlines are replaced with spaces; the original text is
// lost, which is accepted in exchange for keeping the format trivial.
func sanitize(s string) string {
	s = strings.ReplaceAll(s, Delimiter, " ")
	s = strings.ReplaceAll(s, "\n", " ")
	return strings.ReplaceAll(s, "\r", " ")
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(dateLayout)
}

func formatDateTime(t time.Time) string {
	if t.IsZero() {
		return time.Now().Format(dateTimeLayout)
	}
	return t.Format(dateTimeLayout)
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// parseDateOr falls back to def on an empty or malformed value so that a
// single bad field does not discard the whole record.
func parseDateOr(s string, def time.Time) time.Time {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return def
	}
	return t
}

func parseDateTimeOr(s string, def time.Time) time.Time {
	t, err := time.Parse(dateTimeLayout, s)
	if err != nil {
		return def
	}
	return t
}

func parseFloatOr(s string, def float64) float64 {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return def
	}
	return f
}

func parseIntOr(s string, def int) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}
