package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_MissingFileYieldsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Addr != ":8486" || cfg.Server.DataDir != "data" {
		t.Fatalf("unexpected server defaults: %+v", cfg.Server)
	}
	if cfg.Balance.FreezePriceCoins != 2 || cfg.Balance.FreezeDurationDays != 3 || cfg.Balance.CoinMintCadenceDays != 2 {
		t.Fatalf("unexpected balance defaults: %+v", cfg.Balance)
	}
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.yml")
	body := "server:\n  addr: \":9000\"\nbalance:\n  freeze_price_coins: 5\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Addr != ":9000" {
		t.Fatalf("addr override lost: %q", cfg.Server.Addr)
	}
	if cfg.Balance.FreezePriceCoins != 5 {
		t.Fatalf("balance override lost: %+v", cfg.Balance)
	}
	if cfg.Balance.FreezeDurationDays != 3 {
		t.Fatalf("unset balance knob should default: %+v", cfg.Balance)
	}
	if cfg.Motivation.Model != "gemini-2.5-flash" {
		t.Fatalf("motivation model should default: %q", cfg.Motivation.Model)
	}
}

func TestFromEnv(t *testing.T) {
	t.Setenv("FREEZE_DURATION_DAYS", "7")
	t.Setenv("COIN_MINT_CADENCE_DAYS", "not-a-number")

	b := FromEnv()
	if b.FreezeDurationDays != 7 {
		t.Fatalf("env override lost: %+v", b)
	}
	if b.CoinMintCadenceDays != 2 {
		t.Fatalf("bad env value should fall back to default: %+v", b)
	}
}
