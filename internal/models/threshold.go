package models

import (
	"errors"
	"fmt"
)

// ErrInvalidThreshold is returned when a limit falls outside (0, 100].
var ErrInvalidThreshold = errors.New("invalid threshold")

// ThresholdPolicy holds the configured alert limits, in percent.
// It is built once before evaluation and passed around by value.
type ThresholdPolicy struct {
	CPULimit    float64 `json:"cpu_limit" yaml:"cpu_limit"`
	MemoryLimit float64 `json:"memory_limit" yaml:"memory_limit"`
	DiskLimit   float64 `json:"disk_limit" yaml:"disk_limit"`
}

// Default limits
const (
	DefaultCPULimit    = 80
	DefaultMemoryLimit = 85
	DefaultDiskLimit   = 90
)

// DefaultThresholds returns the 80/85/90 policy.
func DefaultThresholds() ThresholdPolicy {
	return ThresholdPolicy{
		CPULimit:    DefaultCPULimit,
		MemoryLimit: DefaultMemoryLimit,
		DiskLimit:   DefaultDiskLimit,
	}
}

// NewThresholdPolicy validates the three limits and returns the policy
func NewThresholdPolicy(cpu, memory, disk float64) (ThresholdPolicy, error) {
	limits := []struct {
		name  string
		value float64
	}{
		{"cpu", cpu},
		{"memory", memory},
		{"disk", disk},
	}
	for _, l := range limits {
		// written as !(in range) so NaN is rejected too
		if !(l.value > 0 && l.value <= 100) {
			return ThresholdPolicy{}, fmt.Errorf("%w: %s limit %v must be in (0, 100]", ErrInvalidThreshold, l.name, l.value)
		}
	}

	return ThresholdPolicy{
		CPULimit:    cpu,
		MemoryLimit: memory,
		DiskLimit:   disk,
	}, nil
}

// Exceeds reports whether value is strictly above limit.
func Exceeds(limit, value float64) bool {
	return value > limit
}
