package telemetry

import (
	"testing"
	"time"
)

func TestMemoryRepositoryAndStats(t *testing.T) {
	repo := NewMemoryRepository()

	mustRecord := func(et EventType, md EventMetadata) {
		t.Helper()
		if err := repo.RecordEvent(et, md); err != nil {
			t.Fatalf("RecordEvent(%s): %v", et, err)
		}
	}

	mustRecord(EventStreakCompleted, EventMetadata{"category": "dev", "streak": 3})
	mustRecord(EventStreakCompleted, EventMetadata{"category": "dev", "streak": 4})
	mustRecord(EventStreakCompleted, EventMetadata{"category": "phys", "streak": 1})
	mustRecord(EventPerfectDay, EventMetadata{"master_streak": 2})
	mustRecord(EventCoinMinted, EventMetadata{"master_streak": 2})
	mustRecord(EventStreakAutoReset, EventMetadata{"category": "nutri"})

	events, err := repo.GetEvents(time.Time{}, nil)
	if err != nil {
		t.Fatalf("GetEvents: %v", err)
	}
	if len(events) != 6 {
		t.Fatalf("expected 6 events, got %d", len(events))
	}
	for _, ev := range events {
		if ev.ID == "" {
			t.Fatalf("event without id: %+v", ev)
		}
	}

	filtered, err := repo.GetEvents(time.Time{}, []EventType{EventStreakCompleted})
	if err != nil {
		t.Fatalf("GetEvents filtered: %v", err)
	}
	if len(filtered) != 3 {
		t.Fatalf("expected 3 completion events, got %d", len(filtered))
	}

	stats, err := CalculateStats(events, time.Time{})
	if err != nil {
		t.Fatalf("CalculateStats: %v", err)
	}
	if stats.CompletionsByCategory["dev"] != 2 || stats.CompletionsByCategory["phys"] != 1 {
		t.Fatalf("unexpected category completions: %+v", stats.CompletionsByCategory)
	}
	if stats.PerfectDays != 1 || stats.CoinsMinted != 1 || stats.AutoResets != 1 {
		t.Fatalf("unexpected stats: %+v", stats)
	}

	if err := repo.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	events, _ = repo.GetEvents(time.Time{}, nil)
	if len(events) != 0 {
		t.Fatalf("expected empty log after Clear, got %d", len(events))
	}
}
