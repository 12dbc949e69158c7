package logic

import (
	"io"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"list_starling/dto"
	"list_starling/shared"
	"list_starling/texts"
)

func TestParseInsights(t *testing.T) {
	resp := strings.Join([]string{
		"### TL;DR",
		"The list is heads-down on inference costs.",
		"",
		"### Most Shared Content & Why",
		"acme.com :: Their pricing change upset everyone.",
		"1. blog.initech.io :: A postmortem people keep quoting.",
		"- nightly.example.org :: New build broke extensions.",
		"** weird.example :: Bolded for no reason.",
		"no separator on this line",
		"also :: ",
	}, "\n")

	insights := parseInsights(resp)

	assert.Equal(t, "Their pricing change upset everyone.", insights["acme.com"])
	assert.Equal(t, "A postmortem people keep quoting.", insights["blog.initech.io"])
	// Subdomain keys get a base-domain alias
	assert.Equal(t, "A postmortem people keep quoting.", insights["initech.io"])
	assert.Equal(t, "New build broke extensions.", insights["nightly.example.org"])
	assert.Equal(t, "New build broke extensions.", insights["example.org"])
	assert.Equal(t, "Bolded for no reason.", insights["weird.example"])
	_, ok := insights["no separator on this line"]
	assert.False(t, ok)
	assert.NotContains(t, insights, "also")
}

func TestParseInsights_FirstAliasWins(t *testing.T) {
	resp := "a.acme.com :: first\nb.acme.com :: second"
	insights := parseInsights(resp)
	assert.Equal(t, "first", insights["a.acme.com"])
	assert.Equal(t, "second", insights["b.acme.com"])
	assert.Equal(t, "first", insights["acme.com"])
}

func TestInsightFor_HostThenBaseDomain(t *testing.T) {
	ds := &DigestSummary{Insights: map[string]string{
		"blog.acme.com": "exact host",
		"initech.io":    "base only",
	}}
	assert.Equal(t, "exact host", ds.InsightFor("https://blog.acme.com/post/1"))
	assert.Equal(t, "base only", ds.InsightFor("https://docs.initech.io/guide"))
	assert.Equal(t, "", ds.InsightFor("https://nowhere.example/x"))
}

func TestBuildPrompt_ShapeAndCaps(t *testing.T) {
	sm := &summarizer{
		cfg:    &shared.Config{},
		logger: log.New(io.Discard),
		txt:    texts.NewTexts(),
	}

	posts := map[string]*dto.Post{}
	cluster := &LinkCluster{CanonicalUrl: "https://acme.com/story"}
	for i := 0; i < 5; i++ {
		id := string(rune('a' + i))
		posts[id] = &dto.Post{Id: id, AuthorHandle: "user" + id, Text: "take number " + id}
		cluster.Contributors = append(cluster.Contributors, Contribution{PostId: id, Depth: 0})
	}
	res := &AggregateResult{
		Clusters: []*LinkCluster{cluster},
		Conversational: []*dto.Post{
			{Id: "z", AuthorHandle: "chatter", Text: "no links here", PostedAt: time.Now()},
		},
		Posts: posts,
	}

	prompt := sm.buildPrompt(res)

	assert.Contains(t, prompt, "Link: https://acme.com/story")
	assert.Contains(t, prompt, "(5 posts about this link)")
	// Only the first three contributors are sampled
	assert.Contains(t, prompt, "- @usera:")
	assert.Contains(t, prompt, "- @userc:")
	assert.NotContains(t, prompt, "- @userd:")
	assert.Contains(t, prompt, "OTHER POSTS:")
	assert.Contains(t, prompt, "- @chatter: no links here")
	assert.Contains(t, prompt, "' :: '")
	assert.True(t, len(prompt) <= maxPromptLen+len("\n\n[TRUNCATED DUE TO SIZE]"))
}

func TestBuildPrompt_TruncatesHugeInput(t *testing.T) {
	sm := &summarizer{
		cfg:    &shared.Config{},
		logger: log.New(io.Discard),
		txt:    texts.NewTexts(),
	}

	// Link lines are not sampled down, so long URLs blow past the cap
	longPath := strings.Repeat("segment/", 250)
	posts := map[string]*dto.Post{}
	var clusters []*LinkCluster
	for i := 0; i < 20; i++ {
		id := "p" + string(rune('a'+i))
		posts[id] = &dto.Post{Id: id, AuthorHandle: "author", Text: "short take"}
		clusters = append(clusters, &LinkCluster{
			CanonicalUrl: "https://site-" + id + ".example/" + longPath,
			Contributors: []Contribution{{PostId: id, Depth: 0}},
		})
	}
	prompt := sm.buildPrompt(&AggregateResult{Clusters: clusters, Posts: posts})

	assert.Equal(t, maxPromptLen+len("\n\n[TRUNCATED DUE TO SIZE]"), len(prompt))
	assert.True(t, strings.HasSuffix(prompt, "[TRUNCATED DUE TO SIZE]"))
}
