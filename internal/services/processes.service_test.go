package services

import (
	"context"
	"testing"

	"vmhealth/internal/models"

	"github.com/shirou/gopsutil/v3/process"
)

func TestTopProcessesPipeline(t *testing.T) {
	f := &fakeProvider{processes: []models.ProcessStatus{
		{PID: 10, Name: "a", CPUPercent: 1, MemPercent: 1},
		{PID: 11, Name: "b", CPUPercent: 50, MemPercent: 1},
		{PID: 9, Name: "c", CPUPercent: 1, MemPercent: 1},
		{PID: 12, Name: "d", CPUPercent: 10, MemPercent: 30},
	}}

	got, err := TopProcesses(context.Background(), f, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []int32{11, 12, 9}
	if len(got) != len(want) {
		t.Fatalf("got %d processes, want %d", len(got), len(want))
	}
	for i, pid := range want {
		if got[i].PID != pid {
			t.Errorf("position %d: pid %d, want %d", i, got[i].PID, pid)
		}
	}
}

func TestTopProcessesDisabled(t *testing.T) {
	f := &fakeProvider{procErr: errProviderDown}
	got, err := TopProcesses(context.Background(), f, 0)
	if err != nil || got != nil {
		t.Errorf("limit 0 should not list processes: %v %v", got, err)
	}
}

func TestMapProcessState(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{process.Running, "running"},
		{process.Sleep, "sleeping"},
		{process.Stop, "stopped"},
		{process.Wait, "waiting"},
		{process.Lock, "locked"},
		{process.Zombie, "zombie"},
		{process.Idle, "idle"},
		{process.Blocked, "blocked"},
		{process.UnknownState, "unknown"},
	}
	for _, tt := range tests {
		if got := mapProcessState(tt.in); got != tt.want {
			t.Errorf("mapProcessState(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
