package reward

// GlobalStats is the singleton master-streak slice: consecutive days on which
// every category was completed. LastPerfectDate is the per-day idempotency
// guard; the master streak advances at most once per calendar day no matter
// how many completion events land that day.
type GlobalStats struct {
	MasterStreak    int     `json:"masterStreak"`
	LastPerfectDate *string `json:"lastPerfectDate"`
}
