package streak

// Pure streak transitions. Callers persist the returned values; nothing here
// touches storage.

// Complete marks a category done for today. It is idempotent per local day:
// a record already completed today is returned unchanged.
func Complete(rec Record, today string) (Record, bool) {
	if rec.LastCompletedDate != nil && *rec.LastCompletedDate == today {
		return rec, false
	}

	rec.CurrentStreak++
	if rec.CurrentStreak > rec.BestStreak {
		rec.BestStreak = rec.CurrentStreak
	}
	day := today
	rec.LastCompletedDate = &day
	rec.History = append(append([]string{}, rec.History...), today)
	return rec, true
}

// Reconcile applies the automatic break rule for one load pass. A broken
// streak resets CurrentStreak to 0 and nothing else; an active freeze
// suppresses the reset without extending LastCompletedDate, so a frozen
// streak keeps aging in place.
func Reconcile(rec Record, today string, freezeActive bool) (Record, bool) {
	st := Evaluate(rec.LastCompletedDate, today)
	if !st.Broken || freezeActive {
		return rec, false
	}
	if rec.CurrentStreak == 0 {
		return rec, false
	}
	rec.CurrentStreak = 0
	return rec, true
}

// ReconcileAll runs Reconcile over the whole ledger and reports the ids that
// were reset. Reconciling an already-reconciled set changes nothing.
func ReconcileAll(recs []Record, today string, freezeActive bool) ([]Record, []string) {
	out := make([]Record, len(recs))
	var reset []string
	for i, rec := range recs {
		next, didReset := Reconcile(rec, today, freezeActive)
		out[i] = next
		if didReset {
			reset = append(reset, next.ID)
		}
	}
	return out, reset
}

// ResetManual is the explicit user reset: the streak and its anchor date are
// cleared while BestStreak and History survive.
func ResetManual(rec Record) Record {
	rec.CurrentStreak = 0
	rec.LastCompletedDate = nil
	return rec
}

// DoneToday counts records whose last completion is today.
func DoneToday(recs []Record, today string) int {
	n := 0
	for _, rec := range recs {
		if rec.LastCompletedDate != nil && *rec.LastCompletedDate == today {
			n++
		}
	}
	return n
}
