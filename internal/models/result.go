package models

// EvaluationResult pairs a metric with its threshold verdict
type EvaluationResult[T any] struct {
	Metric T    `json:"metric" yaml:"metric"`
	Alert  bool `json:"alert" yaml:"alert"`
}

type (
	CPUResult    = EvaluationResult[CPUMetric]
	MemoryResult = EvaluationResult[MemoryMetric]
	DiskResult   = EvaluationResult[DiskMetric]
)
