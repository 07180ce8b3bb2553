package service

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/hashicorp/go-hclog"

	"swipescoop/internal/platform/clock"
)

func TestTodayUsesConfiguredLocation(t *testing.T) {
	t.Parallel()
	// 23:30 UTC on Jan 1 is already Jan 2 in UTC+2.
	instant := time.Date(2025, 1, 1, 23, 30, 0, 0, time.UTC)
	east := NewDayClock(clock.Fixed(instant), time.FixedZone("UTC+2", 2*3600), nil)
	if got := east.Today(); got != "2025-01-02" {
		t.Fatalf("expected 2025-01-02, got %s", got)
	}
	utc := NewDayClock(clock.Fixed(instant), time.UTC, nil)
	if got := utc.Today(); got != "2025-01-01" {
		t.Fatalf("expected 2025-01-01, got %s", got)
	}
}

func TestTodayFallsBackToEpochAndLogs(t *testing.T) {
	t.Parallel()
	buf := &bytes.Buffer{}
	logger := hclog.New(&hclog.LoggerOptions{Output: buf, Level: hclog.Warn})
	c := NewDayClock(clock.Fixed(time.Time{}), time.UTC, logger)
	if got := c.Today(); got != "1970-01-01" {
		t.Fatalf("expected epoch day, got %s", got)
	}
	if !strings.Contains(buf.String(), "wall clock unavailable") {
		t.Fatalf("degraded mode not logged: %q", buf.String())
	}
}
