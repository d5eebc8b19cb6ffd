package routes

import (
	"fmt"
	"strings"

	"vmhealth/internal/controllers"
	"vmhealth/internal/models"
	"vmhealth/internal/renderers"
	"vmhealth/internal/services"

	"github.com/urfave/cli/v2"
)

// RegisterCheckRoutes installs the health check as the app's default action
func RegisterCheckRoutes(app *cli.App) {
	app.Flags = append(app.Flags, checkFlags()...)
	app.Action = controllers.RunCheck
}

func checkFlags() []cli.Flag {
	return []cli.Flag{
		&cli.Float64Flag{
			Name:  controllers.FlagCPUThreshold,
			Value: models.DefaultCPULimit,
			Usage: "alert when CPU usage exceeds this percent",
		},
		&cli.Float64Flag{
			Name:  controllers.FlagMemoryThreshold,
			Value: models.DefaultMemoryLimit,
			Usage: "alert when memory usage exceeds this percent",
		},
		&cli.Float64Flag{
			Name:  controllers.FlagDiskThreshold,
			Value: models.DefaultDiskLimit,
			Usage: "alert when any partition's usage exceeds this percent",
		},
		&cli.StringFlag{
			Name:    controllers.FlagFormat,
			Aliases: []string{"f"},
			Value:   renderers.FormatText,
			Usage:   fmt.Sprintf("report format (%s)", strings.Join(renderers.Formats, ", ")),
		},
		&cli.BoolFlag{
			Name:  controllers.FlagNoColor,
			Usage: "disable colored text output",
		},
		&cli.DurationFlag{
			Name:  controllers.FlagInterval,
			Value: services.DefaultSampleInterval,
			Usage: "CPU sampling interval",
		},
		&cli.BoolFlag{
			Name:  controllers.FlagAllPartitions,
			Usage: "include pseudo and virtual filesystems",
		},
		&cli.IntFlag{
			Name:  controllers.FlagWorkers,
			Value: services.DefaultDiskWorkers,
			Usage: "concurrent partition usage reads",
		},
		&cli.IntFlag{
			Name:  controllers.FlagTop,
			Value: 0,
			Usage: "append the N heaviest processes to the report (0 = off)",
		},
		&cli.BoolFlag{
			Name:  controllers.FlagSave,
			Usage: "save a plain-text copy of the report without asking",
		},
		&cli.BoolFlag{
			Name:  controllers.FlagNoPrompt,
			Usage: "never ask whether to save the report",
		},
		&cli.StringFlag{
			Name:  controllers.FlagOutputDir,
			Value: ".",
			Usage: "directory for saved reports",
		},
		&cli.StringFlag{
			Name:  controllers.FlagLogLevel,
			Value: "warn",
			Usage: "log level (debug, info, warn, error)",
		},
	}
}
