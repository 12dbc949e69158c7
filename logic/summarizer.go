package logic

import (
	"context"
	"fmt"
	"list_starling/ai"
	"list_starling/shared"
	"list_starling/texts"
	"sort"
	"strings"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_summarizer.go -package mocks list_starling/logic ISummarizer

const (
	maxPromptLen      = 30000
	maxPromptLinks    = 20
	maxSamplesPerLink = 3
	maxConvSamples    = 10
)

// DigestSummary is the parsed AI output: the full narrative, plus one
// "why it matters" line per domain the model chose to call out.
type DigestSummary struct {
	Narrative string
	Insights  map[string]string
	Model     string
}

// InsightFor returns the model's line for a URL's host, falling back to the
// base domain so an insight for acme.com matches blog.acme.com links too.
func (ds *DigestSummary) InsightFor(url string) string {
	host, err := shared.GetHostName(url)
	if err != nil || host == "" {
		return ""
	}
	host = strings.TrimPrefix(host, "www.")
	if why, ok := ds.Insights[host]; ok {
		return why
	}
	return ds.Insights[shared.BaseDomain(host)]
}

type ISummarizer interface {
	Summarize(ctx context.Context, res *AggregateResult) (*DigestSummary, error)
}

type summarizer struct {
	cfg      *shared.Config
	logger   shared.ILogger
	metrics  shared.IMetrics
	txt      texts.ITexts
	provider ai.ICompletionProvider
}

func NewSummarizer(cfg *shared.Config, logger shared.ILogger, metrics shared.IMetrics,
	txt texts.ITexts, provider ai.ICompletionProvider,
) ISummarizer {
	return &summarizer{
		cfg:      cfg,
		logger:   logger,
		metrics:  metrics,
		txt:      txt,
		provider: provider,
	}
}

func (sm *summarizer) Summarize(ctx context.Context, res *AggregateResult) (*DigestSummary, error) {

	prompt := sm.buildPrompt(res)
	sm.logger.Debugf("Summarization prompt built: %d characters", len(prompt))

	obs := sm.metrics.StartAiRequestOut(sm.provider.Name())
	resp, err := sm.provider.Complete(ctx, sm.txt.Get("digest_system.txt"), prompt)
	obs.Finish()
	if err != nil {
		return nil, err
	}

	label := capitalize(sm.provider.Name())
	if sm.cfg.AI.Model != "" {
		label = fmt.Sprintf("%s · %s", label, sm.cfg.AI.Model)
	}

	return &DigestSummary{
		Narrative: strings.TrimSpace(resp),
		Insights:  parseInsights(resp),
		Model:     label,
	}, nil
}

// buildPrompt lays out the digest for the model: instructions, the top
// clusters with a few sample posts each, a slice of the link-less chatter,
// and the response contract. Hard-capped so small local models survive it.
func (sm *summarizer) buildPrompt(res *AggregateResult) string {

	var parts []string
	parts = append(parts, sm.txt.Get("digest_prompt_header.txt"))

	clusters := topClustersByContributors(res.Clusters, maxPromptLinks)
	if len(clusters) > 0 {
		parts = append(parts, fmt.Sprintf("POSTS GROUPED BY SHARED LINKS (top %d):", maxPromptLinks))
		for _, cl := range clusters {
			parts = append(parts, "")
			parts = append(parts, fmt.Sprintf("Link: %s", cl.CanonicalUrl))
			parts = append(parts, fmt.Sprintf("(%d posts about this link)", len(cl.Contributors)))
			for i, contrib := range cl.Contributors {
				if i == maxSamplesPerLink {
					break
				}
				post := res.Posts[contrib.PostId]
				parts = append(parts, fmt.Sprintf("  - @%s: %s", post.AuthorHandle, sampleText(post.Text)))
			}
		}
	}

	if len(res.Conversational) > 0 {
		parts = append(parts, "", "OTHER POSTS:")
		for i, post := range res.Conversational {
			if i == maxConvSamples {
				break
			}
			parts = append(parts, fmt.Sprintf("  - @%s: %s", post.AuthorHandle, sampleText(post.Text)))
		}
	}

	parts = append(parts, "", sm.txt.Get("digest_prompt_contract.txt"))

	prompt := strings.Join(parts, "\n")
	if len(prompt) > maxPromptLen {
		sm.logger.Warnf("Summarization prompt too large (%d chars); truncating", len(prompt))
		prompt = prompt[:maxPromptLen] + "\n\n[TRUNCATED DUE TO SIZE]"
	}
	return prompt
}

// topClustersByContributors keeps the engagement ranking as the tie order.
func topClustersByContributors(clusters []*LinkCluster, limit int) []*LinkCluster {
	res := make([]*LinkCluster, len(clusters))
	copy(res, clusters)
	sort.SliceStable(res, func(i, j int) bool {
		return len(res[i].Contributors) > len(res[j].Contributors)
	})
	if len(res) > limit {
		res = res[:limit]
	}
	return res
}

func sampleText(text string) string {
	return shared.TruncateWithEllipsis(shared.CompactText(text), shared.MaxSampleTextLen)
}

// parseInsights scans the response for "domain :: why" lines. Keys are
// lowercased with list markers stripped; a base-domain alias is added for
// subdomain keys so lookups can fall back.
func parseInsights(resp string) map[string]string {
	insights := make(map[string]string)
	for _, line := range strings.Split(resp, "\n") {
		line = strings.TrimSpace(line)
		before, after, found := strings.Cut(line, " :: ")
		if !found {
			continue
		}
		domain := strings.ToLower(strings.TrimSpace(before))
		domain = strings.TrimLeft(domain, "0123456789. -*#[]")
		why := strings.TrimSpace(after)
		if domain == "" || why == "" {
			continue
		}
		insights[domain] = why
		if strings.Count(domain, ".") >= 2 {
			labels := strings.Split(domain, ".")
			base := strings.Join(labels[len(labels)-2:], ".")
			if _, ok := insights[base]; !ok {
				insights[base] = why
			}
		}
	}
	return insights
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
