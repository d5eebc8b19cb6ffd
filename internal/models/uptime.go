package models

import (
	"time"

	"github.com/goccy/go-json"
)

// UptimeInfo is informational and never raises an alert.
// Elapsed is negative when the boot time lies in the future (clock skew).
type UptimeInfo struct {
	BootTime time.Time
	Elapsed  time.Duration
}

// uptimeView is the machine-readable shape of UptimeInfo
type uptimeView struct {
	BootTime       time.Time `json:"boot_time" yaml:"boot_time"`
	ElapsedSeconds int64     `json:"elapsed_seconds" yaml:"elapsed_seconds"`
	Days           int64     `json:"days" yaml:"days"`
	Hours          int64     `json:"hours" yaml:"hours"`
	Minutes        int64     `json:"minutes" yaml:"minutes"`
}

func (u UptimeInfo) view() uptimeView {
	days, hours, minutes := u.Decompose()
	return uptimeView{
		BootTime:       u.BootTime,
		ElapsedSeconds: floorDiv(int64(u.Elapsed), int64(time.Second)),
		Days:           days,
		Hours:          hours,
		Minutes:        minutes,
	}
}

// MarshalJSON emits elapsed seconds and the day/hour/minute breakdown
// instead of a raw nanosecond count.
func (u UptimeInfo) MarshalJSON() ([]byte, error) {
	return json.Marshal(u.view())
}

// MarshalYAML mirrors MarshalJSON for yaml.v3
func (u UptimeInfo) MarshalYAML() (interface{}, error) {
	return u.view(), nil
}

// Decompose splits Elapsed into days, hours and minutes using floor division,
// so a negative duration yields negative days and hours/minutes in range.
// -5m decomposes to -1 days, 23 hours, 55 minutes.
func (u UptimeInfo) Decompose() (days, hours, minutes int64) {
	secs := floorDiv(int64(u.Elapsed), int64(time.Second))
	days = floorDiv(secs, 86400)
	rem := secs - days*86400
	hours = rem / 3600
	minutes = (rem % 3600) / 60
	return days, hours, minutes
}

func floorDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
