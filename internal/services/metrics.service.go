package services

import (
	"context"
	"fmt"
	"time"

	"vmhealth/internal/models"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/disk"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"
	"github.com/shirou/gopsutil/v3/process"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DefaultSampleInterval is how long CPU usage is measured for
const DefaultSampleInterval = time.Second

// GopsutilProvider reads metrics from the local host through gopsutil
type GopsutilProvider struct {
	sampleInterval time.Duration
	allPartitions  bool
}

// NewGopsutilProvider creates a provider. A non-positive interval falls back
// to DefaultSampleInterval; allPartitions also lists pseudo filesystems.
func NewGopsutilProvider(sampleInterval time.Duration, allPartitions bool) *GopsutilProvider {
	if sampleInterval <= 0 {
		sampleInterval = DefaultSampleInterval
	}
	return &GopsutilProvider{
		sampleInterval: sampleInterval,
		allPartitions:  allPartitions,
	}
}

// CPU blocks for the sample interval and returns overall usage
func (p *GopsutilProvider) CPU(ctx context.Context) (models.CPUMetric, error) {
	percentage, err := cpu.PercentWithContext(ctx, p.sampleInterval, false)
	if err != nil {
		return models.CPUMetric{}, err
	}
	if len(percentage) == 0 {
		return models.CPUMetric{}, fmt.Errorf("no cpu sample returned")
	}

	coreCount, err := cpu.CountsWithContext(ctx, true)
	if err != nil {
		return models.CPUMetric{}, fmt.Errorf("core count: %w", err)
	}

	return models.CPUMetric{
		UsagePercent: percentage[0],
		CoreCount:    coreCount,
	}, nil
}

// Memory returns virtual memory usage
func (p *GopsutilProvider) Memory(ctx context.Context) (models.MemoryMetric, error) {
	virtualMemory, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return models.MemoryMetric{}, err
	}

	return models.MemoryMetric{
		TotalBytes:     virtualMemory.Total,
		UsedBytes:      virtualMemory.Used,
		AvailableBytes: virtualMemory.Available,
		UsagePercent:   virtualMemory.UsedPercent,
	}, nil
}

// Partitions lists mounted partitions in the order the OS reports them
func (p *GopsutilProvider) Partitions(ctx context.Context) ([]models.Partition, error) {
	partitions, err := disk.PartitionsWithContext(ctx, p.allPartitions)
	if err != nil {
		return nil, err
	}

	result := make([]models.Partition, 0, len(partitions))
	for _, partition := range partitions {
		result = append(result, models.Partition{
			Device:     partition.Device,
			MountPoint: partition.Mountpoint,
			Fstype:     partition.Fstype,
		})
	}
	return result, nil
}

// DiskUsage returns usage for a mount point
func (p *GopsutilProvider) DiskUsage(ctx context.Context, mountPoint string) (models.DiskUsage, error) {
	usage, err := disk.UsageWithContext(ctx, mountPoint)
	if err != nil {
		return models.DiskUsage{}, classifyUsageError(mountPoint, err)
	}

	return models.DiskUsage{
		TotalBytes:   usage.Total,
		UsedBytes:    usage.Used,
		FreeBytes:    usage.Free,
		UsagePercent: usage.UsedPercent,
	}, nil
}

// BootTime returns when the system was booted
func (p *GopsutilProvider) BootTime(ctx context.Context) (time.Time, error) {
	secs, err := host.BootTimeWithContext(ctx)
	if err != nil {
		return time.Time{}, err
	}
	return time.Unix(int64(secs), 0), nil
}

// Host returns hostname, OS family and kernel release
func (p *GopsutilProvider) Host(ctx context.Context) (models.HostInfo, error) {
	info, err := host.InfoWithContext(ctx)
	if err != nil {
		return models.HostInfo{}, err
	}

	return models.HostInfo{
		Hostname: info.Hostname,
		OS:       cases.Title(language.English).String(info.OS),
		Release:  info.KernelVersion,
	}, nil
}

// Processes lists running processes. Processes that vanish or cannot be
// inspected while listing are skipped.
func (p *GopsutilProvider) Processes(ctx context.Context) ([]models.ProcessStatus, error) {
	procs, err := process.ProcessesWithContext(ctx)
	if err != nil {
		return nil, err
	}

	var statuses []models.ProcessStatus
	seenPIDs := make(map[int32]bool)

	for _, proc := range procs {
		if seenPIDs[proc.Pid] {
			continue
		}
		seenPIDs[proc.Pid] = true

		name, err := proc.NameWithContext(ctx)
		if err != nil {
			continue
		}

		cpuPercent, err := proc.CPUPercentWithContext(ctx)
		if err != nil {
			cpuPercent = 0
		}

		memPercent, err := proc.MemoryPercentWithContext(ctx)
		if err != nil {
			memPercent = 0
		}

		status, err := proc.StatusWithContext(ctx)
		if err != nil || len(status) == 0 {
			status = []string{"unknown"}
		}

		statuses = append(statuses, models.ProcessStatus{
			PID:        proc.Pid,
			Name:       name,
			CPUPercent: cpuPercent,
			MemPercent: memPercent,
			Status:     mapProcessState(status[0]),
		})
	}

	return statuses, nil
}
