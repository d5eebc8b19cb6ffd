package services

import (
	"context"
	"sort"

	"vmhealth/internal/models"

	"github.com/shirou/gopsutil/v3/process"
)

// ProcessWithScore helps with sorting
type ProcessWithScore struct {
	models.ProcessStatus
	Score float64
}

// TopProcesses returns the limit heaviest processes by CPU + memory usage.
// Pipeline: Collect → Enrich → Sort → Limit
func TopProcesses(ctx context.Context, lister ProcessLister, limit int) ([]models.ProcessStatus, error) {
	if limit <= 0 {
		return nil, nil
	}

	// COLLECT
	collected, err := lister.Processes(ctx)
	if err != nil {
		return nil, err
	}
	processes := make([]ProcessWithScore, 0, len(collected))
	for _, p := range collected {
		processes = append(processes, ProcessWithScore{ProcessStatus: p})
	}

	// ENRICH, SORT, LIMIT
	limited := limitTo(sortByScore(enrichWithScores(processes)), limit)

	result := make([]models.ProcessStatus, 0, len(limited))
	for _, p := range limited {
		result = append(result, p.ProcessStatus)
	}
	return result, nil
}

// ENRICH: Calculate combined scores
func enrichWithScores(processes []ProcessWithScore) []ProcessWithScore {
	enriched := make([]ProcessWithScore, len(processes))
	for i, p := range processes {
		p.Score = p.CPUPercent + float64(p.MemPercent)
		enriched[i] = p
	}
	return enriched
}

// SORT: By score descending, PID ascending on ties so output is stable
func sortByScore(processes []ProcessWithScore) []ProcessWithScore {
	sorted := make([]ProcessWithScore, len(processes))
	copy(sorted, processes)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Score != sorted[j].Score {
			return sorted[i].Score > sorted[j].Score
		}
		return sorted[i].PID < sorted[j].PID
	})
	return sorted
}

// LIMIT: Keep only top N
func limitTo(processes []ProcessWithScore, limit int) []ProcessWithScore {
	if len(processes) > limit {
		return processes[:limit]
	}
	return processes
}

// mapProcessState turns gopsutil's state names into the words shown in the report
func mapProcessState(state string) string {
	switch state {
	case process.UnknownState:
		return "unknown"
	case process.Sleep:
		return "sleeping"
	case process.Stop:
		return "stopped"
	case process.Wait:
		return "waiting"
	case process.Lock:
		return "locked"
	default:
		return state
	}
}
