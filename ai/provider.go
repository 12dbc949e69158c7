package ai

import (
	"context"
	"fmt"
	"list_starling/shared"
	"strings"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_provider.go -package mocks list_starling/ai ICompletionProvider

type ICompletionProvider interface {
	Name() string
	Verify(ctx context.Context) error
	Complete(ctx context.Context, system, prompt string) (string, error)
}

// NewProvider picks the completion backend named in the config. An empty or
// unknown provider name yields the disabled provider, so the service still
// starts and runs digests without an AI section.
func NewProvider(cfg *shared.Config, logger shared.ILogger) ICompletionProvider {
	name := strings.ToLower(strings.TrimSpace(cfg.AI.Provider))
	switch name {
	case "ollama":
		return newOllamaProvider(cfg, logger)
	case "claude", "anthropic":
		return newAnthropicProvider(cfg, logger)
	case "openai", "groq", "lmstudio", "vllm", "generic":
		return newOpenAiCompatProvider(name, cfg, logger)
	case "", "none":
		return &noneProvider{}
	default:
		logger.Warnf("Unknown AI provider '%s'; summarization is disabled", cfg.AI.Provider)
		return &noneProvider{}
	}
}

type noneProvider struct {
}

func (p *noneProvider) Name() string {
	return "none"
}

func (p *noneProvider) Verify(ctx context.Context) error {
	return fmt.Errorf("no AI provider configured")
}

func (p *noneProvider) Complete(ctx context.Context, system, prompt string) (string, error) {
	return "", fmt.Errorf("no AI provider configured")
}
