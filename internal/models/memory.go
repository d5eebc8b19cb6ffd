package models

// MemoryMetric represents virtual memory usage in bytes.
// UsagePercent comes from the provider as-is; Used+Available may not add up
// to Total because of buffers and cache.
type MemoryMetric struct {
	TotalBytes     uint64  `json:"total_bytes" yaml:"total_bytes"`
	UsedBytes      uint64  `json:"used_bytes" yaml:"used_bytes"`
	AvailableBytes uint64  `json:"available_bytes" yaml:"available_bytes"`
	UsagePercent   float64 `json:"usage_percent" yaml:"usage_percent"`
}
