package services

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestComputeUptime(t *testing.T) {
	now := time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)
	f := newFake(0, 0)
	f.bootTime = now.Add(-(2*24*time.Hour + 3*time.Hour + 7*time.Minute))

	info, err := NewUptimeReporter(f, func() time.Time { return now }).ComputeUptime(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !info.BootTime.Equal(f.bootTime) {
		t.Errorf("BootTime = %v", info.BootTime)
	}
	d, h, m := info.Decompose()
	if d != 2 || h != 3 || m != 7 {
		t.Errorf("decomposed to %d/%d/%d", d, h, m)
	}
}

func TestComputeUptimeFutureBootIsNotClamped(t *testing.T) {
	now := time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)
	f := newFake(0, 0)
	f.bootTime = now.Add(5 * time.Minute)

	info, err := NewUptimeReporter(f, func() time.Time { return now }).ComputeUptime(context.Background())
	if err != nil {
		t.Fatalf("clock skew must not fail: %v", err)
	}
	if info.Elapsed != -5*time.Minute {
		t.Errorf("Elapsed = %v, want -5m", info.Elapsed)
	}
}

func TestComputeUptimeProviderError(t *testing.T) {
	f := newFake(0, 0)
	f.bootErr = errProviderDown

	_, err := NewUptimeReporter(f, nil).ComputeUptime(context.Background())
	var ce *CollectError
	if !errors.As(err, &ce) || ce.Metric != "uptime" {
		t.Fatalf("expected uptime CollectError, got %v", err)
	}
}
