package ai

import (
	"context"
	"errors"
	"fmt"
	"list_starling/shared"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

// openAiCompatProvider talks to any endpoint that speaks the OpenAI chat
// completions dialect. Besides OpenAI proper that covers Groq, LM Studio,
// vLLM and self-hosted gateways.
type openAiCompatProvider struct {
	cfg    *shared.Config
	logger shared.ILogger
	client *openai.Client
	name   string
	model  string
}

func newOpenAiCompatProvider(name string, cfg *shared.Config, logger shared.ILogger) ICompletionProvider {

	baseUrl := resolveCompatUrl(name, cfg.AI.BaseUrl)
	apiKey := cfg.Secrets.OpenAiApiKey
	if apiKey == "" && name != "openai" && name != "groq" {
		// Local servers ignore the key but the dialect wants one
		apiKey = "not-needed"
	}

	options := []option.RequestOption{option.WithAPIKey(apiKey)}
	if baseUrl != "" {
		options = append(options, option.WithBaseURL(baseUrl))
	}
	client := openai.NewClient(options...)

	return &openAiCompatProvider{
		cfg:    cfg,
		logger: logger,
		client: &client,
		name:   name,
		model:  cfg.AI.Model,
	}
}

// resolveCompatUrl fills in the well-known endpoint for each provider kind.
// OpenAI itself uses the SDK default; a configured URL wins elsewhere.
func resolveCompatUrl(name, configured string) string {
	switch name {
	case "openai":
		return ""
	case "groq":
		return "https://api.groq.com/openai/v1"
	case "lmstudio":
		if configured == "" {
			return "http://localhost:1234/v1"
		}
	case "vllm", "generic":
		if configured == "" {
			return "http://localhost:8000/v1"
		}
	}
	return configured
}

func (p *openAiCompatProvider) Name() string {
	return p.name
}

func (p *openAiCompatProvider) Verify(ctx context.Context) error {
	if p.model == "" {
		return fmt.Errorf("no model configured")
	}
	if (p.name == "openai" || p.name == "groq") && p.cfg.Secrets.OpenAiApiKey == "" {
		return fmt.Errorf("missing API key")
	}
	_, err := p.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:     openai.ChatModel(p.model),
		Messages:  []openai.ChatCompletionMessageParamUnion{openai.UserMessage("hi")},
		MaxTokens: openai.Int(1),
	})
	if err != nil {
		return p.describeError(err)
	}
	return nil
}

func (p *openAiCompatProvider) Complete(ctx context.Context, system, prompt string) (string, error) {

	var msgs []openai.ChatCompletionMessageParamUnion
	if system != "" {
		msgs = append(msgs, openai.SystemMessage(system))
	}
	msgs = append(msgs, openai.UserMessage(prompt))

	params := openai.ChatCompletionNewParams{
		Model:     openai.ChatModel(p.model),
		Messages:  msgs,
		MaxTokens: openai.Int(int64(p.cfg.AI.MaxTokens)),
	}
	if p.cfg.AI.Temperature > 0 {
		params.Temperature = openai.Float(p.cfg.AI.Temperature)
	}

	resp, err := p.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", p.describeError(err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%s returned no choices", p.name)
	}
	return resp.Choices[0].Message.Content, nil
}

func (p *openAiCompatProvider) describeError(err error) error {
	var apierr *openai.Error
	if errors.As(err, &apierr) {
		switch apierr.StatusCode {
		case 401:
			return fmt.Errorf("%s: invalid API key", p.name)
		case 404:
			return fmt.Errorf("%s: model %s not found", p.name, p.model)
		case 429:
			return fmt.Errorf("%s: rate limited", p.name)
		}
	}
	return fmt.Errorf("%s request failed: %w", p.name, err)
}
