package models

// CPUMetric represents a sampled CPU usage reading
type CPUMetric struct {
	UsagePercent float64 `json:"usage_percent" yaml:"usage_percent"`
	CoreCount    int     `json:"core_count" yaml:"core_count"`
}
