// Package wallet owns the coin balance and the streak-freeze window.
package wallet

import (
	"errors"

	"github.com/JoaoAlves313/streak/internal/dates"
)

var ErrInsufficientCoins = errors.New("wallet: insufficient coins")

// Wallet is the singleton currency state. Coins never go negative; a purchase
// that would overdraw is rejected. LastCoinDate only drives the one-day
// "just earned" flag in the UI, it gates nothing.
type Wallet struct {
	Coins           int     `json:"coins"`
	LastCoinDate    *string `json:"lastCoinDate"`
	FreezeExpiresAt *string `json:"freezeExpiresAt"`
}

// FreezeActive reports whether protection covers today. The expiry day itself
// is still protected.
func FreezeActive(w Wallet, today string) bool {
	return w.FreezeExpiresAt != nil && *w.FreezeExpiresAt >= today
}

// Purchase debits price coins and opens a durationDays protection window
// ending at today + durationDays inclusive. Buying while a freeze is already
// running overwrites the expiry; remaining days are not stacked or refunded.
func Purchase(w Wallet, price, durationDays int, today string) (Wallet, error) {
	if w.Coins < price {
		return w, ErrInsufficientCoins
	}
	w.Coins -= price
	expires := dates.AddDays(today, durationDays)
	w.FreezeExpiresAt = &expires
	return w, nil
}

// MintCoin credits one coin and stamps the mint day.
func MintCoin(w Wallet, today string) Wallet {
	w.Coins++
	day := today
	w.LastCoinDate = &day
	return w
}
