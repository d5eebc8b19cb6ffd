package services

import (
	"context"
	"errors"

	"vmhealth/internal/logger"
	"vmhealth/internal/models"

	"golang.org/x/sync/errgroup"
)

// DefaultDiskWorkers bounds concurrent disk usage reads
const DefaultDiskWorkers = 4

// Evaluator compares provider readings against a ThresholdPolicy.
// It holds no mutable state, so its methods can run in any order or concurrently.
type Evaluator struct {
	provider MetricsProvider
	policy   models.ThresholdPolicy
	workers  int
	logger   *logger.Logger
}

// NewEvaluator creates an evaluator. workers <= 0 uses DefaultDiskWorkers.
func NewEvaluator(provider MetricsProvider, policy models.ThresholdPolicy, workers int, log *logger.Logger) *Evaluator {
	if workers <= 0 {
		workers = DefaultDiskWorkers
	}
	if log == nil {
		log = logger.DefaultLogger()
	}
	return &Evaluator{
		provider: provider,
		policy:   policy,
		workers:  workers,
		logger:   log,
	}
}

// Policy returns the thresholds in use
func (e *Evaluator) Policy() models.ThresholdPolicy {
	return e.policy
}

// EvaluateCPU samples CPU usage and flags it when above the CPU limit
func (e *Evaluator) EvaluateCPU(ctx context.Context) (models.CPUResult, error) {
	metric, err := e.provider.CPU(ctx)
	if err != nil {
		return models.CPUResult{}, &CollectError{Metric: "CPU", Err: err}
	}

	return models.CPUResult{
		Metric: metric,
		Alert:  models.Exceeds(e.policy.CPULimit, metric.UsagePercent),
	}, nil
}

// EvaluateMemory flags memory when the provider's percent is above the limit.
// The percent is never recomputed from the byte counts.
func (e *Evaluator) EvaluateMemory(ctx context.Context) (models.MemoryResult, error) {
	metric, err := e.provider.Memory(ctx)
	if err != nil {
		return models.MemoryResult{}, &CollectError{Metric: "memory", Err: err}
	}

	return models.MemoryResult{
		Metric: metric,
		Alert:  models.Exceeds(e.policy.MemoryLimit, metric.UsagePercent),
	}, nil
}

// EvaluateDisk reads usage of every mounted partition. Partitions that cannot
// be read are left out; the others are still evaluated. The aggregate alert is
// raised when any included partition is above the disk limit.
func (e *Evaluator) EvaluateDisk(ctx context.Context) (models.DiskResult, error) {
	partitions, err := e.provider.Partitions(ctx)
	if err != nil {
		return models.DiskResult{}, &CollectError{Metric: "disk", Err: err}
	}

	// one slot per partition keeps enumeration order regardless of which read finishes first
	slots := make([]*models.PartitionResult, len(partitions))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.workers)
	done := make(chan error, 1)
	// usage reads may hang on a stuck mount, so the caller waits on ctx as well
	go func() {
		for i, partition := range partitions {
			if gctx.Err() != nil {
				break
			}
			e.readPartition(gctx, g, slots, i, partition)
		}
		done <- g.Wait()
	}()

	select {
	case <-ctx.Done():
		return models.DiskResult{}, ctx.Err()
	case err := <-done:
		if err != nil {
			return models.DiskResult{}, err
		}
	}

	result := models.DiskResult{
		Metric: models.DiskMetric{Partitions: []models.PartitionResult{}},
	}
	for _, slot := range slots {
		if slot == nil {
			continue
		}
		result.Metric.Partitions = append(result.Metric.Partitions, *slot)
		if slot.Alert {
			result.Alert = true
		}
	}
	return result, nil
}

// readPartition schedules one usage read that fills slots[i] on success
func (e *Evaluator) readPartition(gctx context.Context, g *errgroup.Group, slots []*models.PartitionResult, i int, partition models.Partition) {
	g.Go(func() error {
		usage, err := e.provider.DiskUsage(gctx, partition.MountPoint)
		if err != nil {
			if ctxErr := gctx.Err(); ctxErr != nil {
				return ctxErr
			}
			if errors.Is(err, ErrAccessDenied) {
				e.logger.Debug("Skipping inaccessible partition", "mount", partition.MountPoint, "err", err)
			} else {
				e.logger.Warn("Could not get disk usage", "mount", partition.MountPoint, "err", err)
			}
			return nil
		}

		metric := models.PartitionMetric{
			Device:       partition.Device,
			MountPoint:   partition.MountPoint,
			Fstype:       partition.Fstype,
			TotalBytes:   usage.TotalBytes,
			UsedBytes:    usage.UsedBytes,
			FreeBytes:    usage.FreeBytes,
			UsagePercent: usage.UsagePercent,
		}
		slots[i] = &models.PartitionResult{
			Metric: metric,
			Alert:  models.Exceeds(e.policy.DiskLimit, metric.UsagePercent),
		}
		return nil
	})
}
