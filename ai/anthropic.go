package ai

import (
	"context"
	"fmt"
	"list_starling/shared"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

const defaultClaudeModel = "claude-3-5-sonnet-20240620"

type anthropicProvider struct {
	cfg    *shared.Config
	logger shared.ILogger
	client *anthropic.Client
	model  string
}

func newAnthropicProvider(cfg *shared.Config, logger shared.ILogger) ICompletionProvider {
	model := cfg.AI.Model
	if model == "" {
		model = defaultClaudeModel
	}
	client := anthropic.NewClient(option.WithAPIKey(cfg.Secrets.AnthropicApiKey))
	return &anthropicProvider{
		cfg:    cfg,
		logger: logger,
		client: &client,
		model:  model,
	}
}

func (p *anthropicProvider) Name() string {
	return "claude"
}

// Verify only checks local configuration. A live call would bill the account,
// and a bad key fails loudly on the first summarize anyway.
func (p *anthropicProvider) Verify(ctx context.Context) error {
	if p.cfg.Secrets.AnthropicApiKey == "" {
		return fmt.Errorf("missing API key")
	}
	return nil
}

func (p *anthropicProvider) Complete(ctx context.Context, system, prompt string) (string, error) {

	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(p.model),
		MaxTokens: int64(p.cfg.AI.MaxTokens),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	}
	if system != "" {
		params.System = []anthropic.TextBlockParam{{Text: system}}
	}
	if p.cfg.AI.Temperature > 0 {
		params.Temperature = anthropic.Float(p.cfg.AI.Temperature)
	}

	message, err := p.client.Messages.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("claude request failed: %w", err)
	}
	for _, block := range message.Content {
		if block.Type == "text" {
			return block.Text, nil
		}
	}
	return "", fmt.Errorf("claude returned no text content")
}
