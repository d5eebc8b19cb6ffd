package models

import "time"

// HostInfo identifies the inspected machine
type HostInfo struct {
	Hostname string `json:"hostname" yaml:"hostname"`
	OS       string `json:"os" yaml:"os"`
	Release  string `json:"release" yaml:"release"`
}

// SystemHealthReport combines all evaluated metrics and the summary.
// It is built once per run and not modified after the health check returns it.
type SystemHealthReport struct {
	Host           HostInfo        `json:"host" yaml:"host"`
	ScanTime       time.Time       `json:"scan_time" yaml:"scan_time"`
	Thresholds     ThresholdPolicy `json:"thresholds" yaml:"thresholds"`
	CPU            CPUResult       `json:"cpu" yaml:"cpu"`
	Memory         MemoryResult    `json:"memory" yaml:"memory"`
	Disk           DiskResult      `json:"disk" yaml:"disk"`
	Uptime         UptimeInfo      `json:"uptime" yaml:"uptime"`
	OverallOK      bool            `json:"overall_ok" yaml:"overall_ok"`
	Issues         []string        `json:"issues" yaml:"issues"`
	Recommendation string          `json:"recommendation,omitempty" yaml:"recommendation,omitempty"`
	TopProcesses   []ProcessStatus `json:"top_processes,omitempty" yaml:"top_processes,omitempty"`
}
