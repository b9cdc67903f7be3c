package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/mock"

	"adrec/internal/core/port/mocks"
)

func TestLLMStrategyGenerate(t *testing.T) {
	client := mocks.NewMockCompletionClient(t)
	client.EXPECT().
		Complete(mock.Anything, mock.AnythingOfType("string"), mock.AnythingOfType("string")).
		Return(validReply(fmt.Sprintf(validItem, 1, 1)), nil)

	strategy := NewLLMStrategy(client)
	result, err := strategy.Generate(context.Background(), testAnalysis())
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}
	if len(result.Items) != 1 || result.Items[0].AdMethodID != 1 {
		t.Fatalf("unexpected result: %+v", result)
	}
}

// TestLLMStrategyTransportError ensures a failed completion call is a
// plain failure: no retry, no partial result.
func TestLLMStrategyTransportError(t *testing.T) {
	client := mocks.NewMockCompletionClient(t)
	client.EXPECT().
		Complete(mock.Anything, mock.AnythingOfType("string"), mock.AnythingOfType("string")).
		Return("", errors.New("connection refused")).
		Once()

	strategy := NewLLMStrategy(client)
	if _, err := strategy.Generate(context.Background(), testAnalysis()); err == nil {
		t.Fatal("expected error from failed transport")
	}
}

// TestLLMStrategyInvalidReply ensures a reply that fails validation is
// treated identically to a transport failure.
func TestLLMStrategyInvalidReply(t *testing.T) {
	client := mocks.NewMockCompletionClient(t)
	client.EXPECT().
		Complete(mock.Anything, mock.AnythingOfType("string"), mock.AnythingOfType("string")).
		Return("I recommend you advertise more.", nil)

	strategy := NewLLMStrategy(client)
	_, err := strategy.Generate(context.Background(), testAnalysis())
	if !errors.Is(err, errInvalidReply) {
		t.Fatalf("expected errInvalidReply, got %v", err)
	}
}

func TestLLMStrategyNilClient(t *testing.T) {
	strategy := NewLLMStrategy(nil)
	if strategy.Available() {
		t.Fatal("nil client must report unavailable")
	}
	if _, err := strategy.Generate(context.Background(), testAnalysis()); !errors.Is(err, ErrLLMUnavailable) {
		t.Fatalf("expected ErrLLMUnavailable, got %v", err)
	}
}
