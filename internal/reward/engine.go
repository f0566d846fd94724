// Package reward runs the streak/reward state machine: per-category and
// master-streak reconciliation on load, completion handling, coin minting and
// the freeze store. Every command persists each touched slice before it
// returns, so the repos are always the durable source of truth.
package reward

import (
	"log"

	"github.com/JoaoAlves313/streak/internal/config"
	"github.com/JoaoAlves313/streak/internal/dates"
	"github.com/JoaoAlves313/streak/internal/streak"
	"github.com/JoaoAlves313/streak/internal/telemetry"
	"github.com/JoaoAlves313/streak/internal/wallet"
)

type StreakRepo interface {
	List() []streak.Record
	Get(id string) (streak.Record, error)
	SaveAll(recs []streak.Record) error
}

type WalletRepo interface {
	Get() wallet.Wallet
	Save(w wallet.Wallet) error
}

type StatsRepo interface {
	Get() GlobalStats
	Save(s GlobalStats) error
}

type Engine struct {
	Streaks StreakRepo
	Wallet  WalletRepo
	Stats   StatsRepo
	Clock   dates.Clock
	Balance config.Balance
	Events  telemetry.Repository
	Logger  *log.Logger
}

// ReconcileResult reports what the once-per-load pass changed.
type ReconcileResult struct {
	Day          string   `json:"day"`
	FreezeActive bool     `json:"freeze_active"`
	ResetIDs     []string `json:"reset_ids,omitempty"`
	MasterReset  bool     `json:"master_reset"`
}

// CompleteResult mirrors one completion event end to end.
type CompleteResult struct {
	Record       streak.Record `json:"record"`
	Counted      bool          `json:"counted"`
	PerfectDay   bool          `json:"perfect_day"`
	MasterStreak int           `json:"master_streak"`
	CoinMinted   bool          `json:"coin_minted"`
}

// ReconcileOnLoad applies the break rule to every category and to the master
// streak. An active freeze suppresses all resets for this pass; it does not
// advance any last-completed date. Running it twice on the same day is a
// no-op the second time.
func (e Engine) ReconcileOnLoad() (ReconcileResult, error) {
	today := dates.Today(e.Clock)
	w := e.Wallet.Get()
	frozen := wallet.FreezeActive(w, today)

	res := ReconcileResult{Day: today, FreezeActive: frozen}

	recs := e.Streaks.List()
	next, resetIDs := streak.ReconcileAll(recs, today, frozen)
	if len(resetIDs) > 0 {
		if err := e.Streaks.SaveAll(next); err != nil {
			return res, err
		}
		res.ResetIDs = resetIDs
		for _, id := range resetIDs {
			e.record(telemetry.EventStreakAutoReset, telemetry.EventMetadata{"category": id, "day": today})
		}
	}
	if frozen {
		for _, rec := range recs {
			if st := streak.Evaluate(rec.LastCompletedDate, today); st.Broken && rec.CurrentStreak > 0 {
				e.record(telemetry.EventFreezeSave, telemetry.EventMetadata{"category": rec.ID, "day": today})
			}
		}
	}

	// Master streak follows the same trinary rule against the last perfect day.
	stats := e.Stats.Get()
	if st := streak.Evaluate(stats.LastPerfectDate, today); st.Broken && !frozen && stats.MasterStreak != 0 {
		stats.MasterStreak = 0
		if err := e.Stats.Save(stats); err != nil {
			return res, err
		}
		res.MasterReset = true
	}

	return res, nil
}

// Complete marks one category done for today and runs the reward step on the
// updated ledger. Completing an already-completed category is a quiet no-op.
func (e Engine) Complete(id string) (CompleteResult, error) {
	today := dates.Today(e.Clock)

	rec, err := e.Streaks.Get(id)
	if err != nil {
		return CompleteResult{}, err
	}

	next, counted := streak.Complete(rec, today)
	res := CompleteResult{Record: next, Counted: counted}
	stats := e.Stats.Get()
	res.MasterStreak = stats.MasterStreak
	if !counted {
		return res, nil
	}

	recs := e.Streaks.List()
	for i := range recs {
		if recs[i].ID == id {
			recs[i] = next
		}
	}
	if err := e.Streaks.SaveAll(recs); err != nil {
		return res, err
	}
	e.record(telemetry.EventStreakCompleted, telemetry.EventMetadata{
		"category": id,
		"streak":   next.CurrentStreak,
		"day":      today,
	})

	allDone := streak.DoneToday(recs, today) == len(recs)
	alreadyPerfect := stats.LastPerfectDate != nil && *stats.LastPerfectDate == today
	if !allDone || alreadyPerfect {
		return res, nil
	}

	stats.MasterStreak++
	day := today
	stats.LastPerfectDate = &day
	if err := e.Stats.Save(stats); err != nil {
		return res, err
	}
	res.PerfectDay = true
	res.MasterStreak = stats.MasterStreak
	e.record(telemetry.EventPerfectDay, telemetry.EventMetadata{"master_streak": stats.MasterStreak, "day": today})

	// Mint on the new value only; the LastPerfectDate guard above keeps this
	// at most once per day.
	cadence := e.Balance.CoinMintCadenceDays
	if stats.MasterStreak > 0 && cadence > 0 && stats.MasterStreak%cadence == 0 {
		w := wallet.MintCoin(e.Wallet.Get(), today)
		if err := e.Wallet.Save(w); err != nil {
			return res, err
		}
		res.CoinMinted = true
		e.record(telemetry.EventCoinMinted, telemetry.EventMetadata{"master_streak": stats.MasterStreak, "day": today})
	}

	return res, nil
}

// ResetManual clears one category's streak on explicit user request.
func (e Engine) ResetManual(id string) (streak.Record, error) {
	rec, err := e.Streaks.Get(id)
	if err != nil {
		return streak.Record{}, err
	}

	next := streak.ResetManual(rec)
	recs := e.Streaks.List()
	for i := range recs {
		if recs[i].ID == id {
			recs[i] = next
		}
	}
	if err := e.Streaks.SaveAll(recs); err != nil {
		return streak.Record{}, err
	}
	e.record(telemetry.EventStreakManualReset, telemetry.EventMetadata{"category": id})
	return next, nil
}

// PurchaseFreeze buys the protection item at the configured price and window.
func (e Engine) PurchaseFreeze() (wallet.Wallet, error) {
	today := dates.Today(e.Clock)

	w, err := wallet.Purchase(e.Wallet.Get(), e.Balance.FreezePriceCoins, e.Balance.FreezeDurationDays, today)
	if err != nil {
		return w, err
	}
	if err := e.Wallet.Save(w); err != nil {
		return w, err
	}
	e.record(telemetry.EventFreezePurchased, telemetry.EventMetadata{
		"expires_at": *w.FreezeExpiresAt,
		"coins_left": w.Coins,
	})
	return w, nil
}

// Snapshot is the full state the dashboard renders from.
type Snapshot struct {
	Day            string          `json:"day"`
	Records        []streak.Record `json:"records"`
	Wallet         wallet.Wallet   `json:"wallet"`
	Stats          GlobalStats     `json:"stats"`
	FreezeActive   bool            `json:"freezeActive"`
	CoinJustEarned bool            `json:"coinJustEarned"`
	TotalStreak    int             `json:"totalStreak"`
}

func (e Engine) State() Snapshot {
	today := dates.Today(e.Clock)
	recs := e.Streaks.List()
	w := e.Wallet.Get()

	total := 0
	for _, rec := range recs {
		total += rec.CurrentStreak
	}

	return Snapshot{
		Day:            today,
		Records:        recs,
		Wallet:         w,
		Stats:          e.Stats.Get(),
		FreezeActive:   wallet.FreezeActive(w, today),
		CoinJustEarned: w.LastCoinDate != nil && *w.LastCoinDate == today,
		TotalStreak:    total,
	}
}

func (e Engine) record(et telemetry.EventType, md telemetry.EventMetadata) {
	if e.Events == nil {
		return
	}
	if err := e.Events.RecordEvent(et, md); err != nil && e.Logger != nil {
		e.Logger.Printf("telemetry record failed: %v", err)
	}
}
