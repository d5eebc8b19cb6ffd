package services

import (
	"context"
	"time"

	"vmhealth/internal/logger"
	"vmhealth/internal/models"
)

// HealthCheck drives one collect → evaluate → aggregate pass
type HealthCheck struct {
	provider  MetricsProvider
	evaluator *Evaluator
	uptime    *UptimeReporter
	now       func() time.Time
	topN      int
	logger    *logger.Logger
}

// HealthCheckOptions configures a HealthCheck
type HealthCheckOptions struct {
	Policy      models.ThresholdPolicy
	DiskWorkers int
	// TopProcesses > 0 appends the heaviest processes to the report
	TopProcesses int
	Now          func() time.Time
	Logger       *logger.Logger
}

// NewHealthCheck wires the evaluator and uptime reporter around a provider
func NewHealthCheck(provider MetricsProvider, opts HealthCheckOptions) *HealthCheck {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Logger == nil {
		opts.Logger = logger.DefaultLogger()
	}
	return &HealthCheck{
		provider:  provider,
		evaluator: NewEvaluator(provider, opts.Policy, opts.DiskWorkers, opts.Logger),
		uptime:    NewUptimeReporter(provider, opts.Now),
		now:       opts.Now,
		topN:      opts.TopProcesses,
		logger:    opts.Logger,
	}
}

// Run performs the whole check. Any provider failure aborts the run and no
// report is returned; threshold breaches are reported, not returned as errors.
// Cancellation is checked after every step, so an interrupt never yields a report.
func (h *HealthCheck) Run(ctx context.Context) (*models.SystemHealthReport, error) {
	scanTime := h.now()

	hostInfo, err := h.provider.Host(ctx)
	if err != nil {
		return nil, &CollectError{Metric: "host", Err: err}
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	h.logger.Debug("Evaluating CPU")
	cpuResult, err := h.evaluator.EvaluateCPU(ctx)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	h.logger.Debug("Evaluating memory")
	memResult, err := h.evaluator.EvaluateMemory(ctx)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	h.logger.Debug("Evaluating disk")
	diskResult, err := h.evaluator.EvaluateDisk(ctx)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	uptime, err := h.uptime.ComputeUptime(ctx)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	report := BuildReport(cpuResult, memResult, diskResult)
	report.Host = hostInfo
	report.ScanTime = scanTime
	report.Thresholds = h.evaluator.Policy()
	report.Uptime = uptime

	if h.topN > 0 {
		if lister, ok := h.provider.(ProcessLister); ok {
			top, err := TopProcesses(ctx, lister, h.topN)
			if err != nil {
				if ctx.Err() != nil {
					return nil, ctx.Err()
				}
				h.logger.Warn("Could not list processes", "err", err)
			} else {
				report.TopProcesses = top
			}
		}
	}

	h.logger.Debug("Health check complete", "overall_ok", report.OverallOK, "issues", len(report.Issues))
	return report, nil
}
