package renderers

import (
	"fmt"
	"io"
	"strings"

	"vmhealth/internal/models"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

const ruleWidth = 60

var (
	colorRed   = lipgloss.Color("#FF5555")
	colorGreen = lipgloss.Color("#50FA7B")
	colorCyan  = lipgloss.Color("#8BE9FD")
	colorGray  = lipgloss.Color("#6272A4")
)

// TextRenderer produces the classic console report. With Color unset (or when
// the sink is not a terminal) the output is plain text.
type TextRenderer struct {
	Color bool
}

type textStyles struct {
	title   lipgloss.Style
	section lipgloss.Style
	ok      lipgloss.Style
	alert   lipgloss.Style
	dim     lipgloss.Style
}

func (t *TextRenderer) styles(w io.Writer) textStyles {
	r := lipgloss.NewRenderer(w)
	if !t.Color {
		r.SetColorProfile(termenv.Ascii)
	}
	return textStyles{
		title:   r.NewStyle().Bold(true).Foreground(colorCyan),
		section: r.NewStyle().Bold(true),
		ok:      r.NewStyle().Foreground(colorGreen),
		alert:   r.NewStyle().Foreground(colorRed).Bold(true),
		dim:     r.NewStyle().Foreground(colorGray),
	}
}

func (t *TextRenderer) Render(w io.Writer, report *models.SystemHealthReport) error {
	st := t.styles(w)
	rule := st.dim.Render(strings.Repeat("=", ruleWidth))

	var sb strings.Builder
	line := func(format string, args ...any) {
		fmt.Fprintf(&sb, format, args...)
		sb.WriteByte('\n')
	}
	status := func(indent string, alert bool, what string, limit float64) {
		if alert {
			line("%s%s", indent, st.alert.Render(fmt.Sprintf("⚠️  ALERT: %s usage is HIGH (>%s%%)", what, formatLimit(limit))))
		} else {
			line("%s%s", indent, st.ok.Render("✓ Status: Normal"))
		}
	}

	// Header
	line("%s", rule)
	line("%s", st.title.Render("VM HEALTH CHECK REPORT"))
	line("%s", rule)
	line("Hostname: %s", report.Host.Hostname)
	line("OS: %s %s", report.Host.OS, report.Host.Release)
	line("Scan Time: %s", report.ScanTime.Format(timeLayout))
	line("%s", rule)
	line("")

	// CPU
	cpu := report.CPU.Metric
	line("%s", st.section.Render("[CPU USAGE]"))
	line("  Current Usage: %.1f%%", cpu.UsagePercent)
	line("  CPU Cores: %d", cpu.CoreCount)
	status("  ", report.CPU.Alert, "CPU", report.Thresholds.CPULimit)
	line("")

	// Memory
	mem := report.Memory.Metric
	line("%s", st.section.Render("[MEMORY USAGE]"))
	line("  Total: %.2f GB", toGB(mem.TotalBytes))
	line("  Used: %.2f GB", toGB(mem.UsedBytes))
	line("  Available: %.2f GB", toGB(mem.AvailableBytes))
	line("  Usage Percentage: %.1f%%", mem.UsagePercent)
	status("  ", report.Memory.Alert, "Memory", report.Thresholds.MemoryLimit)
	line("")

	// Disk
	line("%s", st.section.Render("[DISK USAGE]"))
	if len(report.Disk.Metric.Partitions) == 0 {
		line("  %s", st.dim.Render("No accessible partitions"))
		line("")
	}
	for _, p := range report.Disk.Metric.Partitions {
		line("  Drive: %s", p.Metric.Device)
		line("    Mount Point: %s", p.Metric.MountPoint)
		line("    Total: %.2f GB", toGB(p.Metric.TotalBytes))
		line("    Used: %.2f GB", toGB(p.Metric.UsedBytes))
		line("    Free: %.2f GB", toGB(p.Metric.FreeBytes))
		line("    Usage: %.1f%%", p.Metric.UsagePercent)
		status("    ", p.Alert, "Disk", report.Thresholds.DiskLimit)
		line("")
	}

	// Uptime
	line("%s", st.section.Render("[SYSTEM UPTIME]"))
	line("  Boot Time: %s", report.Uptime.BootTime.Format(timeLayout))
	line("  Uptime: %s", uptimeText(report.Uptime))
	line("  %s", st.ok.Render("✓ Status: System is running"))
	line("")

	// Summary
	line("%s", rule)
	line("%s", st.title.Render("SUMMARY"))
	line("%s", rule)
	if report.OverallOK {
		line("%s", st.ok.Render("✓ All systems normal - No issues detected"))
	} else {
		line("%s", st.alert.Render("⚠️  ISSUES DETECTED:"))
		for _, issue := range report.Issues {
			line("  - %s", issue)
		}
		if report.Recommendation != "" {
			line("")
			line("Recommendation: %s", report.Recommendation)
		}
	}
	line("%s", rule)

	if len(report.TopProcesses) > 0 {
		line("")
		line("%s", st.section.Render("[TOP PROCESSES]"))
		line("  %-8s %-24s %7s %7s  %s", "PID", "NAME", "CPU%", "MEM%", "STATUS")
		for _, p := range report.TopProcesses {
			line("  %-8d %-24s %7.1f %7.1f  %s", p.PID, truncate(p.Name, 24), p.CPUPercent, p.MemPercent, p.Status)
		}
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n-1]) + "…"
}
