package models

// Partition identifies a mounted filesystem before its usage is read
type Partition struct {
	Device     string `json:"device" yaml:"device"`
	MountPoint string `json:"mount_point" yaml:"mount_point"`
	Fstype     string `json:"fstype" yaml:"fstype"`
}

// DiskUsage is the raw usage of a single mount point
type DiskUsage struct {
	TotalBytes   uint64
	UsedBytes    uint64
	FreeBytes    uint64
	UsagePercent float64
}

// PartitionMetric represents detailed usage of one partition
type PartitionMetric struct {
	Device       string  `json:"device" yaml:"device"`
	MountPoint   string  `json:"mount_point" yaml:"mount_point"`
	Fstype       string  `json:"fstype,omitempty" yaml:"fstype,omitempty"`
	TotalBytes   uint64  `json:"total_bytes" yaml:"total_bytes"`
	UsedBytes    uint64  `json:"used_bytes" yaml:"used_bytes"`
	FreeBytes    uint64  `json:"free_bytes" yaml:"free_bytes"`
	UsagePercent float64 `json:"usage_percent" yaml:"usage_percent"`
}

// PartitionResult is a partition with its own alert flag
type PartitionResult = EvaluationResult[PartitionMetric]

// DiskMetric holds the readable partitions in enumeration order
type DiskMetric struct {
	Partitions []PartitionResult `json:"partitions" yaml:"partitions"`
}
