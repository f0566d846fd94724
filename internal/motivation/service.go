// Package motivation is the outbound motivational-text collaborator. It is
// fire-and-forget relative to streak state: it may be unconfigured, fail or
// time out, and in every such case callers get a deterministic fallback
// string instead of an error.
package motivation

import (
	"context"
	"fmt"
	"log"
	"time"

	"google.golang.org/genai"
)

const (
	// Shown when no API key is configured.
	FallbackUnconfigured = "Mantenha o foco! (Configure sua API Key para dicas personalizadas)"
	// Shown when the request fails or times out.
	FallbackError = "A consistência é a chave para o sucesso. Continue!"
	// Shown when the model answers with an empty body.
	FallbackEmpty = "Continue firme no seu propósito!"
)

type Service struct {
	client  *genai.Client
	model   string
	timeout time.Duration
	logger  *log.Logger
}

// NewService builds the tip service. An empty apiKey yields an unconfigured
// service that always answers with the configure hint; that is not an error.
func NewService(ctx context.Context, apiKey, model string, timeout time.Duration, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.Default()
	}
	if model == "" {
		model = "gemini-2.5-flash"
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	s := &Service{model: model, timeout: timeout, logger: logger}

	if apiKey == "" {
		logger.Printf("motivation: API key missing, serving static fallback tips")
		return s
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		logger.Printf("motivation: client init failed, serving static fallback tips: %v", err)
		return s
	}
	s.client = client
	return s
}

// Configured reports whether a generation backend is wired up.
func (s *Service) Configured() bool { return s.client != nil }

// Tip returns a short encouraging message for the category at the given
// streak length. It never returns an error; failures degrade to fallbacks.
func (s *Service) Tip(ctx context.Context, category string, currentStreak int) string {
	if s.client == nil {
		return FallbackUnconfigured
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	resp, err := s.client.Models.GenerateContent(ctx, s.model, genai.Text(Prompt(category, currentStreak)), nil)
	if err != nil {
		s.logger.Printf("motivation: generate failed for %q: %v", category, err)
		return FallbackError
	}

	text := resp.Text()
	if text == "" {
		return FallbackEmpty
	}
	return text
}

// Prompt builds the coach prompt for one category and streak length.
func Prompt(category string, currentStreak int) string {
	return fmt.Sprintf(`Você é um treinador de alta performance estoico e energético.
O usuário está construindo um hábito na categoria: %q.
A sequência atual (streak) dele é de %d dias.

Forneça uma dica curta, poderosa e acionável (máximo 2 frases) para motivá-lo a continuar hoje.
Se o streak for 0, seja encorajador para começar. Se for alto, desafie-o a manter a consistência.
Responda em Português do Brasil.`, category, currentStreak)
}
