package config

// Balance holds the reward-economy tuning knobs.
type Balance struct {
	// Store item: streak freeze
	FreezePriceCoins   int `yaml:"freeze_price_coins" json:"freeze_price_coins"`
	FreezeDurationDays int `yaml:"freeze_duration_days" json:"freeze_duration_days"`

	// A coin is minted each time the master streak reaches a multiple of this.
	CoinMintCadenceDays int `yaml:"coin_mint_cadence_days" json:"coin_mint_cadence_days"`
}

// Default returns the default balance configuration.
func Default() Balance {
	return Balance{
		FreezePriceCoins:    2,
		FreezeDurationDays:  3,
		CoinMintCadenceDays: 2,
	}
}

func (b *Balance) ApplyDefaults() {
	def := Default()
	if b.FreezePriceCoins <= 0 {
		b.FreezePriceCoins = def.FreezePriceCoins
	}
	if b.FreezeDurationDays <= 0 {
		b.FreezeDurationDays = def.FreezeDurationDays
	}
	if b.CoinMintCadenceDays <= 0 {
		b.CoinMintCadenceDays = def.CoinMintCadenceDays
	}
}
