package services

import (
	"context"
	"time"

	"vmhealth/internal/models"
)

// MetricsProvider supplies instantaneous host readings.
// DiskUsage must return an error matching ErrAccessDenied when the mount
// point cannot be read due to privileges.
type MetricsProvider interface {
	CPU(ctx context.Context) (models.CPUMetric, error)
	Memory(ctx context.Context) (models.MemoryMetric, error)
	Partitions(ctx context.Context) ([]models.Partition, error)
	DiskUsage(ctx context.Context, mountPoint string) (models.DiskUsage, error)
	BootTime(ctx context.Context) (time.Time, error)
	Host(ctx context.Context) (models.HostInfo, error)
}

// ProcessLister is implemented by providers that can list running processes
type ProcessLister interface {
	Processes(ctx context.Context) ([]models.ProcessStatus, error)
}
