package config

import (
	"os"
	"strconv"
)

// ApplyEnv overlays balance environment overrides onto b.
// Unset or unparsable variables leave the field alone.
func ApplyEnv(b *Balance) {
	if val := getEnvInt("FREEZE_PRICE_COINS"); val > 0 {
		b.FreezePriceCoins = val
	}
	if val := getEnvInt("FREEZE_DURATION_DAYS"); val > 0 {
		b.FreezeDurationDays = val
	}
	if val := getEnvInt("COIN_MINT_CADENCE_DAYS"); val > 0 {
		b.CoinMintCadenceDays = val
	}
}

// FromEnv loads balance configuration from environment variables.
// Falls back to defaults if variables are not set.
func FromEnv() Balance {
	cfg := Default()
	ApplyEnv(&cfg)
	return cfg
}

func getEnvInt(key string) int {
	val := os.Getenv(key)
	if val == "" {
		return 0
	}
	num, err := strconv.Atoi(val)
	if err != nil {
		return 0
	}
	return num
}
