package models

import (
	"testing"
	"time"
)

func TestUptimeDecompose(t *testing.T) {
	tests := []struct {
		name                string
		elapsed             time.Duration
		days, hours, minute int64
	}{
		{"zero", 0, 0, 0, 0},
		{"seconds are dropped", 59 * time.Second, 0, 0, 0},
		{"mixed", 3*24*time.Hour + 4*time.Hour + 17*time.Minute + 30*time.Second, 3, 4, 17},
		{"exactly one day", 24 * time.Hour, 1, 0, 0},
		{"five minutes in the future", -5 * time.Minute, -1, 23, 55},
		{"partial negative second", -(5*time.Minute + 500*time.Millisecond), -1, 23, 54},
		{"two days in the future", -48 * time.Hour, -2, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, h, m := UptimeInfo{Elapsed: tt.elapsed}.Decompose()
			if d != tt.days || h != tt.hours || m != tt.minute {
				t.Errorf("Decompose(%v) = %d days %d hours %d minutes, want %d/%d/%d",
					tt.elapsed, d, h, m, tt.days, tt.hours, tt.minute)
			}
		})
	}
}
