package usecase

import (
	"context"
	"errors"
	"fmt"

	"adrec/internal/core/domain"
	"adrec/internal/core/port"
)

// ErrLLMUnavailable signals that no completion client is configured and
// the pipeline should go straight to the deterministic fallback.
var ErrLLMUnavailable = errors.New("completion client not configured")

// LLMStrategy generates recommendations through one call to an external
// completion service. The client is injected explicitly; a nil client
// makes the strategy permanently unavailable. The strategy never
// retries and never persists anything: every failure, whether
// transport, non-success response or reply validation, is returned to
// the orchestrator so the fallback can take over cleanly.
type LLMStrategy struct {
	client port.CompletionClient
}

// NewLLMStrategy creates the strategy around the given client, which
// may be nil when the provider is not configured.
func NewLLMStrategy(client port.CompletionClient) *LLMStrategy {
	return &LLMStrategy{client: client}
}

// Available reports whether a completion client is configured.
func (s *LLMStrategy) Available() bool {
	return s.client != nil
}

// Generate makes exactly one completion request and validates the reply
// through the codec.
func (s *LLMStrategy) Generate(ctx context.Context, analysis domain.AnalysisContext) (*port.GenerationResult, error) {
	if s.client == nil {
		return nil, ErrLLMUnavailable
	}
	raw, err := s.client.Complete(ctx, generationSystemPrompt, renderUserPrompt(analysis))
	if err != nil {
		return nil, fmt.Errorf("completion request: %w", err)
	}
	return parseReply(raw, analysis)
}
