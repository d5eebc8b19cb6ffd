package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync/atomic"
	"time"

	"vmhealth/internal/logger"
	"vmhealth/internal/models"
)

// fakeProvider returns canned readings. usage maps mount point to its reading;
// usageErr maps mount point to a failure.
type fakeProvider struct {
	host      models.HostInfo
	cpu       models.CPUMetric
	memory    models.MemoryMetric
	parts     []models.Partition
	usage     map[string]models.DiskUsage
	usageErr  map[string]error
	bootTime  time.Time
	processes []models.ProcessStatus

	cpuErr, memErr, partsErr, bootErr, hostErr, procErr error

	// onCall runs at the start of every provider method with the method name
	onCall func(method string)

	// usageBlock, when set, makes DiskUsage wait on it regardless of ctx
	usageBlock chan struct{}

	usageCalls atomic.Int32
}

func (f *fakeProvider) called(method string) {
	if f.onCall != nil {
		f.onCall(method)
	}
}

func (f *fakeProvider) CPU(ctx context.Context) (models.CPUMetric, error) {
	f.called("CPU")
	if err := ctx.Err(); err != nil {
		return models.CPUMetric{}, err
	}
	return f.cpu, f.cpuErr
}

func (f *fakeProvider) Memory(ctx context.Context) (models.MemoryMetric, error) {
	f.called("Memory")
	return f.memory, f.memErr
}

func (f *fakeProvider) Partitions(ctx context.Context) ([]models.Partition, error) {
	f.called("Partitions")
	return f.parts, f.partsErr
}

func (f *fakeProvider) DiskUsage(ctx context.Context, mountPoint string) (models.DiskUsage, error) {
	f.usageCalls.Add(1)
	f.called("DiskUsage")
	if f.usageBlock != nil {
		<-f.usageBlock
	}
	if err, ok := f.usageErr[mountPoint]; ok {
		return models.DiskUsage{}, err
	}
	u, ok := f.usage[mountPoint]
	if !ok {
		return models.DiskUsage{}, fmt.Errorf("no such mount %s", mountPoint)
	}
	return u, nil
}

func (f *fakeProvider) BootTime(ctx context.Context) (time.Time, error) {
	f.called("BootTime")
	return f.bootTime, f.bootErr
}

func (f *fakeProvider) Host(ctx context.Context) (models.HostInfo, error) {
	f.called("Host")
	return f.host, f.hostErr
}

func (f *fakeProvider) Processes(ctx context.Context) ([]models.ProcessStatus, error) {
	return f.processes, f.procErr
}

var errDenied = fmt.Errorf("/secret: %w", ErrAccessDenied)

var errProviderDown = errors.New("provider unreachable")

func quietLogger() *logger.Logger {
	return logger.NewLogger(io.Discard, "error", "text")
}

// newFake builds a provider with one partition per percent, mounted at /mN
func newFake(cpu, memory float64, diskPercents ...float64) *fakeProvider {
	f := &fakeProvider{
		host:     models.HostInfo{Hostname: "vm-01", OS: "Linux", Release: "6.1.0"},
		cpu:      models.CPUMetric{UsagePercent: cpu, CoreCount: 4},
		memory:   models.MemoryMetric{TotalBytes: 8 * 1024 * 1024 * 1024, UsedBytes: 4 * 1024 * 1024 * 1024, AvailableBytes: 3 * 1024 * 1024 * 1024, UsagePercent: memory},
		usage:    map[string]models.DiskUsage{},
		usageErr: map[string]error{},
	}
	for i, p := range diskPercents {
		mount := fmt.Sprintf("/m%d", i)
		f.parts = append(f.parts, models.Partition{Device: fmt.Sprintf("/dev/sd%c1", 'a'+i), MountPoint: mount, Fstype: "ext4"})
		f.usage[mount] = models.DiskUsage{TotalBytes: 100, UsedBytes: uint64(p), FreeBytes: 100 - uint64(p), UsagePercent: p}
	}
	return f
}
