package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	awsssm "github.com/aws/aws-sdk-go-v2/service/ssm"

	"dafani-support/handler"
	"dafani-support/internal/config"
	"dafani-support/internal/integrations/openai"
	"dafani-support/internal/integrations/paramstore"
	"dafani-support/internal/usecase"
)

// TokenGetter reads a credential from a secret store.
type TokenGetter interface {
	GetToken(ctx context.Context, name string) (string, error)
}

// newTokenGetter builds the SSM-backed TokenGetter. Swapped in tests.
var newTokenGetter = func(ctx context.Context) (TokenGetter, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("app: load AWS config: %w", err)
	}
	client, err := paramstore.New(awsssm.NewFromConfig(cfg))
	if err != nil {
		return nil, err
	}
	return client, nil
}

// ResolveAPIKey returns the configured key, reading it from Parameter Store
// when only a parameter name was given.
func ResolveAPIKey(ctx context.Context, cfg config.LLMConfig) (string, error) {
	if key := strings.TrimSpace(cfg.APIKey); key != "" {
		return key, nil
	}
	if cfg.APIKeyParam == "" {
		return "", errors.New("app: no API key configured")
	}
	getter, err := newTokenGetter(ctx)
	if err != nil {
		return "", err
	}
	key, err := getter.GetToken(ctx, cfg.APIKeyParam)
	if err != nil {
		return "", fmt.Errorf("app: resolve API key: %w", err)
	}
	return key, nil
}

// NewHandler wires the completion client, relay and chat service behind the
// HTTP handler. Failures here are fatal at startup.
func NewHandler(ctx context.Context, cfg config.Config, opts ...openai.Option) (*handler.Handler, error) {
	apiKey, err := ResolveAPIKey(ctx, cfg.LLM)
	if err != nil {
		return nil, err
	}

	clientOpts := []openai.Option{
		openai.WithBaseURL(cfg.LLM.BaseURL),
		openai.WithTemperature(cfg.LLM.Temperature),
		openai.WithMaxTokens(cfg.LLM.MaxTokens),
	}
	llmClient, err := openai.NewClient(apiKey, append(clientOpts, opts...)...)
	if err != nil {
		return nil, err
	}

	relay, err := usecase.NewRelay(llmClient, cfg.LLM.Model)
	if err != nil {
		return nil, err
	}
	chatService, err := usecase.NewChatService(relay)
	if err != nil {
		return nil, err
	}
	return handler.NewHandler(chatService)
}
