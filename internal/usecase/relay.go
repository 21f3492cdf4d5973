package usecase

import (
	"context"
	"errors"
	"strings"

	"dafani-support/internal/domain"
)

type LLMClient interface {
	Chat(ctx context.Context, model string, messages []domain.ChatMessage) (string, error)
}

// Relay forwards a question, wrapped in the company context, to the completion
// API. It holds no per-request state.
type Relay struct {
	llm   LLMClient
	model string
}

func NewRelay(llm LLMClient, model string) (*Relay, error) {
	if llm == nil {
		return nil, errors.New("usecase: llm client must not be nil")
	}
	model = strings.TrimSpace(model)
	if model == "" {
		return nil, errors.New("usecase: model must not be empty")
	}
	return &Relay{llm: llm, model: model}, nil
}

// Ask makes exactly one completion call and returns the answer as produced by
// the model. Every failure is reported as ErrorUpstream.
func (r *Relay) Ask(ctx context.Context, question string) (string, error) {
	answer, err := r.llm.Chat(ctx, r.model, buildPromptMessages(question))
	if err != nil {
		return "", newError(ErrorUpstream, "llm_error", err)
	}
	return answer, nil
}
