package services

import (
	"errors"
	"fmt"
	"io/fs"
	"syscall"
)

// ErrAccessDenied marks a partition whose usage cannot be read with the
// current privileges. The disk evaluator skips such partitions.
var ErrAccessDenied = errors.New("access denied")

// CollectError wraps a provider failure for one metric kind
type CollectError struct {
	Metric string
	Err    error
}

func (e *CollectError) Error() string {
	switch e.Metric {
	case "CPU", "memory", "disk":
		return fmt.Sprintf("failed to get %s usage: %v", e.Metric, e.Err)
	case "host":
		return fmt.Sprintf("failed to get host info: %v", e.Err)
	case "uptime":
		return fmt.Sprintf("failed to get boot time: %v", e.Err)
	default:
		return fmt.Sprintf("failed to get %s: %v", e.Metric, e.Err)
	}
}

func (e *CollectError) Unwrap() error {
	return e.Err
}

// classifyUsageError maps permission failures to ErrAccessDenied and leaves
// everything else untouched.
func classifyUsageError(mountPoint string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, fs.ErrPermission) || errors.Is(err, syscall.EACCES) || errors.Is(err, syscall.EPERM) {
		return fmt.Errorf("%s: %w: %v", mountPoint, ErrAccessDenied, err)
	}
	return err
}
