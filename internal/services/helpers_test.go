package services

import (
	"testing"
	"time"
)

// mustParseDate parses a YYYY-MM-DD date for fixtures.
func mustParseDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		t.Fatalf("failed to parse date %q: %v", s, err)
	}
	return d
}
