package usecase

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

type Asker interface {
	Ask(ctx context.Context, question string) (string, error)
}

type ChatService struct {
	relay Asker
}

type ChatInput struct {
	Message        string
	ConversationID string
}

type ChatOutput struct {
	Response       string
	ConversationID string
}

func NewChatService(relay Asker) (*ChatService, error) {
	if relay == nil {
		return nil, errors.New("usecase: relay must not be nil")
	}
	return &ChatService{relay: relay}, nil
}

// Chat relays in.Message and echoes the conversation id, minting one when the
// caller did not send any. The id is opaque; nothing is stored under it.
func (s *ChatService) Chat(ctx context.Context, in ChatInput) (ChatOutput, error) {
	if in.Message == "" {
		return ChatOutput{}, newError(ErrorInvalidInput, "empty_message", nil)
	}
	convID := in.ConversationID
	if convID == "" {
		convID = newUUID()
	}

	answer, err := s.relay.Ask(ctx, in.Message)
	if err != nil {
		var ucErr *Error
		if errors.As(err, &ucErr) {
			return ChatOutput{}, err
		}
		return ChatOutput{}, newError(ErrorUpstream, "relay_error", err)
	}

	return ChatOutput{
		Response:       answer,
		ConversationID: convID,
	}, nil
}

var newUUID = func() string {
	return uuid.NewString()
}
