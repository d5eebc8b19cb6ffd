package controllers

import (
	"os"
	"time"

	"vmhealth/internal/logger"
	"vmhealth/internal/models"
	"vmhealth/internal/renderers"
	"vmhealth/internal/services"

	"github.com/mattn/go-isatty"
	"github.com/urfave/cli/v2"
)

// Flag names shared with the routes package
const (
	FlagCPUThreshold    = "cpu-threshold"
	FlagMemoryThreshold = "memory-threshold"
	FlagDiskThreshold   = "disk-threshold"
	FlagFormat          = "format"
	FlagNoColor         = "no-color"
	FlagInterval        = "interval"
	FlagAllPartitions   = "all-partitions"
	FlagWorkers         = "workers"
	FlagTop             = "top"
	FlagSave            = "save"
	FlagNoPrompt        = "no-prompt"
	FlagOutputDir       = "output-dir"
	FlagLogLevel        = "log-level"
)

// NewProvider builds the metrics provider for a run
var NewProvider = func(sampleInterval time.Duration, allPartitions bool) services.MetricsProvider {
	return services.NewGopsutilProvider(sampleInterval, allPartitions)
}

// Now is the clock used for scan time and uptime
var Now = time.Now

// StdinIsTerminal reports whether the save prompt can be shown
var StdinIsTerminal = func() bool {
	fd := os.Stdin.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// RunCheck runs one health check and prints the report
func RunCheck(c *cli.Context) error {
	policy, err := models.NewThresholdPolicy(
		c.Float64(FlagCPUThreshold),
		c.Float64(FlagMemoryThreshold),
		c.Float64(FlagDiskThreshold),
	)
	if err != nil {
		return err
	}

	format := c.String(FlagFormat)
	renderer, err := renderers.New(format, !c.Bool(FlagNoColor))
	if err != nil {
		return err
	}

	log := logger.NewLogger(c.App.ErrWriter, c.String(FlagLogLevel), "text")
	logger.SetDefaultLogger(log)

	check := services.NewHealthCheck(
		NewProvider(c.Duration(FlagInterval), c.Bool(FlagAllPartitions)),
		services.HealthCheckOptions{
			Policy:       policy,
			DiskWorkers:  c.Int(FlagWorkers),
			TopProcesses: c.Int(FlagTop),
			Now:          Now,
			Logger:       log,
		},
	)

	report, err := check.Run(c.Context)
	if err != nil {
		return err
	}

	// an interrupt that lands after the last collection step still suppresses the report
	if err := c.Context.Err(); err != nil {
		return err
	}

	if err := renderer.Render(c.App.Writer, report); err != nil {
		return err
	}

	save := c.Bool(FlagSave)
	ask := !save && !c.Bool(FlagNoPrompt) && format == renderers.FormatText && StdinIsTerminal()
	if !save && !ask {
		return nil
	}

	_, err = SaveReport(c.Context, report, SaveOptions{
		Ask: ask,
		In:  c.App.Reader,
		Out: c.App.Writer,
		Dir: c.String(FlagOutputDir),
		Now: report.ScanTime,
	})
	return err
}
