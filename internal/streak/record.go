package streak

// Fixed life-pillar categories. The set is compile-time-known; "all pillars
// done" elsewhere compares against the live record count, so the stored slice
// stays the single source of truth.
const (
	CategoryDevelopment = "dev"
	CategoryNutrition   = "nutri"
	CategoryPhysical    = "phys"
	CategoryHygiene     = "hyg"
)

// Record tracks one category's streak state.
// Invariants: BestStreak >= CurrentStreak, and CurrentStreak is 0 whenever
// LastCompletedDate is nil.
type Record struct {
	ID                string   `json:"id"`
	Label             string   `json:"label"`
	CurrentStreak     int      `json:"currentStreak"`
	BestStreak        int      `json:"bestStreak"`
	LastCompletedDate *string  `json:"lastCompletedDate"`
	History           []string `json:"history"`
}

// DefaultRecords returns the zeroed starter set for a fresh install.
func DefaultRecords() []Record {
	return []Record{
		{ID: CategoryDevelopment, Label: "Desenvolvimento", History: []string{}},
		{ID: CategoryNutrition, Label: "Alimentação", History: []string{}},
		{ID: CategoryPhysical, Label: "Físico", History: []string{}},
		{ID: CategoryHygiene, Label: "Higiene", History: []string{}},
	}
}

func normalizeRecord(r *Record) {
	if r.History == nil {
		r.History = []string{}
	}
	if r.BestStreak < r.CurrentStreak {
		r.BestStreak = r.CurrentStreak
	}
	if r.LastCompletedDate == nil {
		r.CurrentStreak = 0
	}
}
