package telemetry

import "time"

type EventType string

const (
	EventStreakCompleted   EventType = "streak_completed"
	EventStreakAutoReset   EventType = "streak_auto_reset"
	EventStreakManualReset EventType = "streak_manual_reset"
	EventPerfectDay        EventType = "perfect_day"
	EventCoinMinted        EventType = "coin_minted"
	EventFreezePurchased   EventType = "freeze_purchased"
	EventFreezeSave        EventType = "freeze_save"
)

type Event struct {
	ID        string    `json:"id"`
	Type      EventType `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Metadata  string    `json:"metadata"`
}

type EventMetadata map[string]interface{}
