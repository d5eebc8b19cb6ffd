package models

type ProcessStatus struct {
	PID        int32   `json:"pid" yaml:"pid"`
	Name       string  `json:"name" yaml:"name"`
	CPUPercent float64 `json:"cpu_percent" yaml:"cpu_percent"`
	MemPercent float32 `json:"mem_percent" yaml:"mem_percent"`
	Status     string  `json:"status" yaml:"status"`
}
