package logic

import (
	"github.com/stretchr/testify/assert"
	"list_starling/dto"
	"testing"
)

func TestCanonicalizeUrl(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"https://Example.COM/Story/", "https://example.com/Story"},
		{"HTTPS://example.com", "https://example.com"},
		{"https://example.com:443/a", "https://example.com/a"},
		{"http://example.com:80/a", "http://example.com/a"},
		{"https://example.com/story?utm=1", "https://example.com/story"},
		{"https://example.com/story?utm_source=x&utm_campaign=y", "https://example.com/story"},
		{"https://example.com/story?fbclid=abc&id=7", "https://example.com/story?id=7"},
		{"https://example.com/story?b=2&a=1", "https://example.com/story?a=1&b=2"},
		{"https://example.com/story#section", "https://example.com/story"},
		{"https://youtu.be/abc?si=xyz", "https://youtu.be/abc"},
		{"  https://example.com/story  ", "https://example.com/story"},
	}
	for _, c := range cases {
		got, wellFormed := canonicalizeUrl(c.in)
		assert.Equal(t, c.want, got, "input: %s", c.in)
		assert.True(t, wellFormed, "input: %s", c.in)
	}
}

func TestCanonicalizeUrl_SkipsAndMalformed(t *testing.T) {
	// Nothing to cluster
	got, wellFormed := canonicalizeUrl("")
	assert.Equal(t, "", got)
	assert.True(t, wellFormed)

	// Unresolved shortener
	got, wellFormed = canonicalizeUrl("https://t.co/AbC123")
	assert.Equal(t, "", got)
	assert.True(t, wellFormed)

	// Missing scheme: best-effort key, flagged malformed, not dropped
	got, wellFormed = canonicalizeUrl("example.com/story/")
	assert.Equal(t, "example.com/story", got)
	assert.False(t, wellFormed)

	// Unparseable: still yields a key
	got, wellFormed = canonicalizeUrl("https://exa mple.com/x")
	assert.NotEqual(t, "", got)
	assert.False(t, wellFormed)
}

func mustCorpus(t *testing.T, posts ...*dto.Post) *corpus {
	c, err := buildCorpus(posts)
	assert.Nil(t, err)
	return c
}

func TestExtractLinks_DirectAndUnwrapped(t *testing.T) {
	orig := &dto.Post{Id: "p1", AuthorId: "u1", Links: []string{"https://news.example/story"}}
	reshare := &dto.Post{Id: "p2", AuthorId: "u2", Relation: dto.RelReshareOf, RelatedId: "p1"}
	c := mustCorpus(t, orig, reshare)

	ext := extractLinks(orig, c)
	assert.Equal(t, []discoveredLink{{"https://news.example/story", 0}}, ext.links)

	ext = extractLinks(reshare, c)
	assert.Equal(t, []discoveredLink{{"https://news.example/story", 1}}, ext.links)
	assert.Equal(t, 0, ext.cycles)
}

func TestExtractLinks_QuoteChainDepthTwo(t *testing.T) {
	deepest := &dto.Post{Id: "p1", AuthorId: "u1", Links: []string{"https://news.example/story"}}
	middle := &dto.Post{Id: "p2", AuthorId: "u2", Text: "interesting", Relation: dto.RelQuoteOf, RelatedId: "p1"}
	top := &dto.Post{Id: "p3", AuthorId: "u3", Text: "look at this", Relation: dto.RelQuoteOf, RelatedId: "p2"}
	c := mustCorpus(t, deepest, middle, top)

	ext := extractLinks(top, c)
	assert.Equal(t, []discoveredLink{{"https://news.example/story", 2}}, ext.links)
}

func TestExtractLinks_SameUrlReportedAtShallowerDepth(t *testing.T) {
	orig := &dto.Post{Id: "p1", AuthorId: "u1", Links: []string{"https://news.example/story"}}
	quoter := &dto.Post{
		Id: "p2", AuthorId: "u2",
		Links:    []string{"https://news.example/story?utm=1"},
		Relation: dto.RelQuoteOf, RelatedId: "p1",
	}
	c := mustCorpus(t, orig, quoter)

	ext := extractLinks(quoter, c)
	assert.Equal(t, []discoveredLink{{"https://news.example/story", 0}}, ext.links)
}

func TestExtractLinks_MissingTargetIsDeadEnd(t *testing.T) {
	reshare := &dto.Post{Id: "p2", AuthorId: "u2", Relation: dto.RelReshareOf, RelatedId: "gone"}
	c := mustCorpus(t, reshare)

	ext := extractLinks(reshare, c)
	assert.Empty(t, ext.links)
	assert.Equal(t, 0, ext.cycles)
}

func TestExtractLinks_CycleStopsTheWalk(t *testing.T) {
	a := &dto.Post{Id: "a", AuthorId: "u1", Relation: dto.RelQuoteOf, RelatedId: "b"}
	b := &dto.Post{Id: "b", AuthorId: "u2", Relation: dto.RelQuoteOf, RelatedId: "a"}
	c := mustCorpus(t, a, b)

	ext := extractLinks(a, c)
	assert.Empty(t, ext.links)
	assert.Equal(t, 1, ext.cycles)
}

func TestBuildCorpus_Validation(t *testing.T) {
	_, err := buildCorpus([]*dto.Post{{Id: "", AuthorId: "u1"}})
	var batchErr *BatchError
	assert.ErrorAs(t, err, &batchErr)
	assert.Equal(t, 0, batchErr.Index)

	_, err = buildCorpus([]*dto.Post{{Id: "p1", AuthorId: "u1"}, nil})
	assert.ErrorAs(t, err, &batchErr)
	assert.Equal(t, 1, batchErr.Index)

	_, err = buildCorpus([]*dto.Post{{Id: "p1"}})
	assert.ErrorAs(t, err, &batchErr)

	// Same post arriving through two lists is fine; first record wins
	first := &dto.Post{Id: "p1", AuthorId: "u1", Text: "first"}
	second := &dto.Post{Id: "p1", AuthorId: "u1", Text: "second"}
	c, err := buildCorpus([]*dto.Post{first, second})
	assert.Nil(t, err)
	assert.Equal(t, 1, len(c.posts))
	assert.Equal(t, "first", c.byId["p1"].Text)
}
