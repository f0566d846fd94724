package telemetry

import (
	"encoding/json"
	"time"
)

type Stats struct {
	Period                 string            `json:"period"`
	EventCounts            map[EventType]int `json:"event_counts"`
	CompletionsByCategory  map[string]int    `json:"completions_by_category"`
	PerfectDays            int               `json:"perfect_days"`
	CoinsMinted            int               `json:"coins_minted"`
	FreezeSaves            int               `json:"freeze_saves"`
	AutoResets             int               `json:"auto_resets"`
	ManualResets           int               `json:"manual_resets"`
	CompletionsPerfectRate float64           `json:"completions_perfect_rate"`
}

// CalculateStats aggregates habit telemetry from events.
func CalculateStats(events []Event, since time.Time) (Stats, error) {
	stats := Stats{
		Period:                since.Format("2006-01-02"),
		EventCounts:           make(map[EventType]int),
		CompletionsByCategory: make(map[string]int),
	}

	for _, event := range events {
		stats.EventCounts[event.Type]++

		var metadata EventMetadata
		if err := json.Unmarshal([]byte(event.Metadata), &metadata); err != nil {
			continue
		}

		switch event.Type {
		case EventStreakCompleted:
			if id, ok := metadata["category"].(string); ok {
				stats.CompletionsByCategory[id]++
			}
		case EventPerfectDay:
			stats.PerfectDays++
		case EventCoinMinted:
			stats.CoinsMinted++
		case EventFreezeSave:
			stats.FreezeSaves++
		case EventStreakAutoReset:
			stats.AutoResets++
		case EventStreakManualReset:
			stats.ManualResets++
		}
	}

	totalCompletions := stats.EventCounts[EventStreakCompleted]
	if totalCompletions > 0 {
		stats.CompletionsPerfectRate = float64(stats.PerfectDays) / float64(totalCompletions)
	}

	return stats, nil
}
