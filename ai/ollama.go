package ai

import (
	"context"
	"fmt"
	"list_starling/shared"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/ollama/ollama/api"
)

const defaultOllamaUrl = "http://localhost:11434"

type ollamaProvider struct {
	cfg    *shared.Config
	logger shared.ILogger
	client *api.Client
	model  string
}

func newOllamaProvider(cfg *shared.Config, logger shared.ILogger) ICompletionProvider {
	baseUrl := cfg.AI.BaseUrl
	if baseUrl == "" {
		baseUrl = defaultOllamaUrl
	}
	u, err := url.Parse(baseUrl)
	if err != nil {
		logger.Errorf("Invalid ollama base URL '%s': %v; summarization is disabled", baseUrl, err)
		return &noneProvider{}
	}
	httpClient := &http.Client{Timeout: 180 * time.Second}
	return &ollamaProvider{
		cfg:    cfg,
		logger: logger,
		client: api.NewClient(u, httpClient),
		model:  cfg.AI.Model,
	}
}

func (p *ollamaProvider) Name() string {
	return "ollama"
}

func (p *ollamaProvider) Verify(ctx context.Context) error {
	if p.model == "" {
		return fmt.Errorf("no ollama model configured")
	}
	if err := p.client.Heartbeat(ctx); err != nil {
		return fmt.Errorf("ollama is not reachable: %w", err)
	}
	tags, err := p.client.List(ctx)
	if err != nil {
		return fmt.Errorf("listing ollama models: %w", err)
	}
	for _, m := range tags.Models {
		if m.Name == p.model || strings.TrimSuffix(m.Name, ":latest") == p.model {
			return nil
		}
	}
	return fmt.Errorf("model %s not found; is it pulled?", p.model)
}

func (p *ollamaProvider) Complete(ctx context.Context, system, prompt string) (string, error) {

	stream := false
	req := &api.GenerateRequest{
		Model:  p.model,
		Prompt: prompt,
		System: system,
		Stream: &stream,
	}
	if p.cfg.AI.Temperature > 0 {
		req.Options = map[string]any{"temperature": p.cfg.AI.Temperature}
	}

	var sb strings.Builder
	err := p.client.Generate(ctx, req, func(resp api.GenerateResponse) error {
		sb.WriteString(resp.Response)
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("ollama generate failed: %w", err)
	}
	return sb.String(), nil
}
