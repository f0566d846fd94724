package motivation

import (
	"context"
	"io"
	"log"
	"strings"
	"testing"
	"time"
)

func TestUnconfiguredServiceFallsBack(t *testing.T) {
	s := NewService(context.Background(), "", "", 0, log.New(io.Discard, "", 0))

	if s.Configured() {
		t.Fatalf("service without api key must report unconfigured")
	}
	got := s.Tip(context.Background(), "Físico", 5)
	if got != FallbackUnconfigured {
		t.Fatalf("expected configure hint, got %q", got)
	}

	// deterministic: repeated calls yield the same string
	if again := s.Tip(context.Background(), "Físico", 5); again != got {
		t.Fatalf("fallback must be deterministic, got %q then %q", got, again)
	}
}

func TestPromptMentionsCategoryAndStreak(t *testing.T) {
	p := Prompt("Alimentação", 12)
	if !strings.Contains(p, "Alimentação") {
		t.Fatalf("prompt missing category: %s", p)
	}
	if !strings.Contains(p, "12 dias") {
		t.Fatalf("prompt missing streak length: %s", p)
	}
}

func TestServiceDefaults(t *testing.T) {
	s := NewService(context.Background(), "", "", 0, nil)
	if s.model != "gemini-2.5-flash" {
		t.Fatalf("unexpected default model %q", s.model)
	}
	if s.timeout != 10*time.Second {
		t.Fatalf("unexpected default timeout %v", s.timeout)
	}
}
