package services

import "vmhealth/internal/models"

// Issue templates, in report order
const (
	IssueHighCPU    = "High CPU usage detected"
	IssueHighMemory = "High memory usage detected"
	IssueHighDisk   = "High disk usage detected"

	Recommendation = "Investigate resource usage and consider cleanup/optimization"
)

// BuildReport aggregates the three verdicts. Issues are always ordered
// CPU, memory, disk and only list metrics that alerted.
func BuildReport(cpu models.CPUResult, memory models.MemoryResult, disk models.DiskResult) *models.SystemHealthReport {
	issues := []string{}
	if cpu.Alert {
		issues = append(issues, IssueHighCPU)
	}
	if memory.Alert {
		issues = append(issues, IssueHighMemory)
	}
	if disk.Alert {
		issues = append(issues, IssueHighDisk)
	}

	report := &models.SystemHealthReport{
		CPU:       cpu,
		Memory:    memory,
		Disk:      disk,
		OverallOK: len(issues) == 0,
		Issues:    issues,
	}
	if !report.OverallOK {
		report.Recommendation = Recommendation
	}
	return report
}
