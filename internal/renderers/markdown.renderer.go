package renderers

import (
	"fmt"
	"io"
	"strings"

	"vmhealth/internal/models"

	"github.com/dustin/go-humanize"
)

// MarkdownRenderer produces a ticket-friendly markdown report
type MarkdownRenderer struct{}

func (m *MarkdownRenderer) Render(w io.Writer, report *models.SystemHealthReport) error {
	var sb strings.Builder

	sb.WriteString("# VM Health Check Report\n\n")
	sb.WriteString(fmt.Sprintf("- **Hostname:** %s\n", report.Host.Hostname))
	sb.WriteString(fmt.Sprintf("- **OS:** %s %s\n", report.Host.OS, report.Host.Release))
	sb.WriteString(fmt.Sprintf("- **Scan Time:** %s\n\n", report.ScanTime.Format(timeLayout)))

	sb.WriteString("## CPU\n\n")
	sb.WriteString(fmt.Sprintf("- **Usage:** %.1f%% (limit %s%%)\n", report.CPU.Metric.UsagePercent, formatLimit(report.Thresholds.CPULimit)))
	sb.WriteString(fmt.Sprintf("- **Cores:** %d\n", report.CPU.Metric.CoreCount))
	sb.WriteString(fmt.Sprintf("- **Status:** %s\n\n", mdStatus(report.CPU.Alert)))

	mem := report.Memory.Metric
	sb.WriteString("## Memory\n\n")
	sb.WriteString(fmt.Sprintf("- **Total:** %s\n", humanize.IBytes(mem.TotalBytes)))
	sb.WriteString(fmt.Sprintf("- **Used:** %s\n", humanize.IBytes(mem.UsedBytes)))
	sb.WriteString(fmt.Sprintf("- **Available:** %s\n", humanize.IBytes(mem.AvailableBytes)))
	sb.WriteString(fmt.Sprintf("- **Usage:** %.1f%% (limit %s%%)\n", mem.UsagePercent, formatLimit(report.Thresholds.MemoryLimit)))
	sb.WriteString(fmt.Sprintf("- **Status:** %s\n\n", mdStatus(report.Memory.Alert)))

	sb.WriteString("## Disk\n\n")
	if len(report.Disk.Metric.Partitions) == 0 {
		sb.WriteString("No accessible partitions.\n\n")
	} else {
		sb.WriteString(fmt.Sprintf("Limit: %s%%\n\n", formatLimit(report.Thresholds.DiskLimit)))
		sb.WriteString("| Device | Mount | Total | Used | Free | Usage | Status |\n")
		sb.WriteString("|--------|-------|-------|------|------|-------|--------|\n")
		for _, p := range report.Disk.Metric.Partitions {
			sb.WriteString(fmt.Sprintf("| %s | %s | %s | %s | %s | %.1f%% | %s |\n",
				p.Metric.Device, p.Metric.MountPoint,
				humanize.IBytes(p.Metric.TotalBytes), humanize.IBytes(p.Metric.UsedBytes), humanize.IBytes(p.Metric.FreeBytes),
				p.Metric.UsagePercent, mdStatus(p.Alert)))
		}
		sb.WriteString("\n")
	}

	sb.WriteString("## Uptime\n\n")
	sb.WriteString(fmt.Sprintf("- **Boot Time:** %s\n", report.Uptime.BootTime.Format(timeLayout)))
	sb.WriteString(fmt.Sprintf("- **Uptime:** %s\n\n", uptimeText(report.Uptime)))

	sb.WriteString("## Summary\n\n")
	if report.OverallOK {
		sb.WriteString("All systems normal - No issues detected\n")
	} else {
		sb.WriteString("**Issues detected:**\n\n")
		for _, issue := range report.Issues {
			sb.WriteString(fmt.Sprintf("- %s\n", issue))
		}
		if report.Recommendation != "" {
			sb.WriteString(fmt.Sprintf("\n**Recommendation:** %s\n", report.Recommendation))
		}
	}

	if len(report.TopProcesses) > 0 {
		sb.WriteString("\n## Top Processes\n\n")
		sb.WriteString("| PID | Name | CPU% | MEM% | Status |\n")
		sb.WriteString("|-----|------|------|------|--------|\n")
		for _, p := range report.TopProcesses {
			sb.WriteString(fmt.Sprintf("| %d | %s | %.1f | %.1f | %s |\n", p.PID, p.Name, p.CPUPercent, p.MemPercent, p.Status))
		}
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

func mdStatus(alert bool) string {
	if alert {
		return "**ALERT**"
	}
	return "OK"
}
