package services

import (
	"context"
	"time"

	"vmhealth/internal/models"
)

// UptimeReporter computes time since boot. It never alerts.
type UptimeReporter struct {
	provider MetricsProvider
	now      func() time.Time
}

// NewUptimeReporter creates a reporter; now defaults to time.Now
func NewUptimeReporter(provider MetricsProvider, now func() time.Time) *UptimeReporter {
	if now == nil {
		now = time.Now
	}
	return &UptimeReporter{provider: provider, now: now}
}

// ComputeUptime returns boot time and elapsed duration. A boot time in the
// future gives a negative Elapsed, which is passed through unchanged.
func (u *UptimeReporter) ComputeUptime(ctx context.Context) (models.UptimeInfo, error) {
	bootTime, err := u.provider.BootTime(ctx)
	if err != nil {
		return models.UptimeInfo{}, &CollectError{Metric: "uptime", Err: err}
	}

	return models.UptimeInfo{
		BootTime: bootTime,
		Elapsed:  u.now().Sub(bootTime),
	}, nil
}
