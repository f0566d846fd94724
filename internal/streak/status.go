package streak

import "github.com/JoaoAlves313/streak/internal/dates"

// Status is the trinary classification of a streak against today:
// done today, in its single grace day, or broken.
type Status struct {
	CompletedToday bool
	Broken         bool
}

// Evaluate classifies lastCompletedDate relative to today. A nil last date is
// broken (never completed). Exactly one missed day is only forgiven while the
// grace day itself is in progress: completing on day N, skipping N+1 and
// checking on N+2 is stale and breaks.
func Evaluate(lastCompletedDate *string, today string) Status {
	if lastCompletedDate == nil {
		return Status{CompletedToday: false, Broken: true}
	}
	switch *lastCompletedDate {
	case today:
		return Status{CompletedToday: true, Broken: false}
	case dates.AddDays(today, -1):
		return Status{CompletedToday: false, Broken: false}
	}
	return Status{CompletedToday: false, Broken: true}
}
