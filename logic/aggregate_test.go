package logic

import (
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"io"
	"list_starling/dto"
	"list_starling/shared"
	"testing"
	"time"
)

func testAggregator() IAggregator {
	cfg := &shared.Config{
		Engagement: shared.EngagementWeights{QuoteWeight: 1.0, BookmarkWeight: 1.0},
	}
	return NewAggregator(cfg, log.New(io.Discard))
}

func zeroed(p *dto.Post) *dto.Post {
	if p.Reshares == nil {
		p.Reshares = intp(0)
	}
	if p.Replies == nil {
		p.Replies = intp(0)
	}
	if p.Quotes == nil {
		p.Quotes = intp(0)
	}
	if p.Bookmarks == nil {
		p.Bookmarks = intp(0)
	}
	return p
}

func TestAggregate_ReshareJoinsClusterAndScores(t *testing.T) {
	base := time.Date(2026, 8, 20, 9, 0, 0, 0, time.UTC)
	a := zeroed(&dto.Post{
		Id: "a", AuthorId: "u1", AuthorHandle: "alice", PostedAt: base,
		Likes: intp(10), Links: []string{"https://x.example/story"},
	})
	b := zeroed(&dto.Post{
		Id: "b", AuthorId: "u2", AuthorHandle: "bob", PostedAt: base.Add(time.Hour),
		Likes: intp(5), Relation: dto.RelReshareOf, RelatedId: "a",
	})
	c := zeroed(&dto.Post{
		Id: "c", AuthorId: "u3", AuthorHandle: "carol", PostedAt: base.Add(2 * time.Hour),
		Likes: intp(2), Text: "no link here",
	})

	res, err := testAggregator().Aggregate([]*dto.Post{a, b, c})
	assert.Nil(t, err)

	assert.Equal(t, 1, len(res.Clusters))
	cl := res.Clusters[0]
	assert.Equal(t, "https://x.example/story", cl.CanonicalUrl)
	assert.Equal(t, 15.0, cl.Score)
	assert.Equal(t, []Contribution{{"a", 0}, {"b", 1}}, cl.Contributors)
	assert.Equal(t, "a", cl.TopPostId)
	assert.False(t, cl.LowConfidence)

	assert.Equal(t, 1, len(res.Conversational))
	assert.Equal(t, "c", res.Conversational[0].Id)
}

func TestAggregate_TrackingParamsMergeClusters(t *testing.T) {
	a := zeroed(&dto.Post{
		Id: "a", AuthorId: "u1", Likes: intp(3),
		Links: []string{"https://news.example/story?utm=1"},
	})
	b := zeroed(&dto.Post{
		Id: "b", AuthorId: "u2", Likes: intp(4),
		Links: []string{"https://news.example/story?utm=2"},
	})

	res, err := testAggregator().Aggregate([]*dto.Post{a, b})
	assert.Nil(t, err)
	assert.Equal(t, 1, len(res.Clusters))
	assert.Equal(t, "https://news.example/story", res.Clusters[0].CanonicalUrl)
	assert.Equal(t, 7.0, res.Clusters[0].Score)
}

func TestAggregate_QuoteChainContributesAtEachDepth(t *testing.T) {
	p1 := zeroed(&dto.Post{Id: "p1", AuthorId: "u1", Likes: intp(1), Links: []string{"https://news.example/story"}})
	p2 := zeroed(&dto.Post{Id: "p2", AuthorId: "u2", Likes: intp(2), Text: "wow", Relation: dto.RelQuoteOf, RelatedId: "p1"})
	p3 := zeroed(&dto.Post{Id: "p3", AuthorId: "u3", Likes: intp(4), Text: "seen this?", Relation: dto.RelQuoteOf, RelatedId: "p2"})

	res, err := testAggregator().Aggregate([]*dto.Post{p1, p2, p3})
	assert.Nil(t, err)
	assert.Equal(t, 1, len(res.Clusters))
	cl := res.Clusters[0]
	assert.Equal(t, []Contribution{{"p1", 0}, {"p2", 1}, {"p3", 2}}, cl.Contributors)
	assert.Equal(t, 7.0, cl.Score)
	assert.Empty(t, res.Conversational)
}

func TestAggregate_OwnLinkTakesTheScoreOverDeeperOne(t *testing.T) {
	quoted := zeroed(&dto.Post{Id: "e", AuthorId: "u1", Likes: intp(2), Links: []string{"https://deep.example/a"}})
	quoter := zeroed(&dto.Post{
		Id: "d", AuthorId: "u2", Likes: intp(10),
		Links:    []string{"https://own.example/b"},
		Relation: dto.RelQuoteOf, RelatedId: "e",
	})

	res, err := testAggregator().Aggregate([]*dto.Post{quoted, quoter})
	assert.Nil(t, err)
	assert.Equal(t, 2, len(res.Clusters))

	byUrl := map[string]*LinkCluster{}
	for _, cl := range res.Clusters {
		byUrl[cl.CanonicalUrl] = cl
	}
	own := byUrl["https://own.example/b"]
	deep := byUrl["https://deep.example/a"]

	// d's score lands on its own share only; it still shows up as a
	// depth-1 contributor of the deeper cluster
	assert.Equal(t, 10.0, own.Score)
	assert.Equal(t, []Contribution{{"d", 0}}, own.Contributors)
	assert.Equal(t, 2.0, deep.Score)
	assert.Equal(t, []Contribution{{"e", 0}, {"d", 1}}, deep.Contributors)
}

func TestAggregate_TwoDirectLinksScoreBoth(t *testing.T) {
	post := zeroed(&dto.Post{
		Id: "a", AuthorId: "u1", Likes: intp(6),
		Links: []string{"https://one.example/x", "https://two.example/y"},
	})

	res, err := testAggregator().Aggregate([]*dto.Post{post})
	assert.Nil(t, err)
	assert.Equal(t, 2, len(res.Clusters))
	assert.Equal(t, 6.0, res.Clusters[0].Score)
	assert.Equal(t, 6.0, res.Clusters[1].Score)
	// Same score, same top post: canonical URL decides the order
	assert.Equal(t, "https://one.example/x", res.Clusters[0].CanonicalUrl)
	assert.Equal(t, "https://two.example/y", res.Clusters[1].CanonicalUrl)
}

func TestAggregate_ClusterRankingAndConversationalOrder(t *testing.T) {
	base := time.Date(2026, 8, 20, 9, 0, 0, 0, time.UTC)
	hot := zeroed(&dto.Post{Id: "hot", AuthorId: "u1", Likes: intp(50), PostedAt: base, Links: []string{"https://hot.example/a"}})
	mild := zeroed(&dto.Post{Id: "mild", AuthorId: "u2", Likes: intp(5), PostedAt: base, Links: []string{"https://mild.example/b"}})
	chat1 := zeroed(&dto.Post{Id: "chat1", AuthorId: "u3", Likes: intp(1), PostedAt: base.Add(time.Minute)})
	chat2 := zeroed(&dto.Post{Id: "chat2", AuthorId: "u4", Likes: intp(1), PostedAt: base.Add(time.Hour)})

	res, err := testAggregator().Aggregate([]*dto.Post{mild, hot, chat1, chat2})
	assert.Nil(t, err)
	assert.Equal(t, "https://hot.example/a", res.Clusters[0].CanonicalUrl)
	assert.Equal(t, "https://mild.example/b", res.Clusters[1].CanonicalUrl)

	// Newest chatter first
	assert.Equal(t, "chat2", res.Conversational[0].Id)
	assert.Equal(t, "chat1", res.Conversational[1].Id)
}

func TestAggregate_LowConfidenceFlagsPropagate(t *testing.T) {
	noCounts := &dto.Post{Id: "a", AuthorId: "u1", Links: []string{"https://news.example/story"}}

	res, err := testAggregator().Aggregate([]*dto.Post{noCounts})
	assert.Nil(t, err)
	assert.True(t, res.Clusters[0].LowConfidence)
	assert.Equal(t, 0.0, res.Clusters[0].Score)
	assert.Equal(t, 1, res.Diagnostics.LowConfidenceCnt)
}

func TestAggregate_CycleCountedNotFatal(t *testing.T) {
	a := zeroed(&dto.Post{Id: "a", AuthorId: "u1", Likes: intp(1), Relation: dto.RelQuoteOf, RelatedId: "b"})
	b := zeroed(&dto.Post{Id: "b", AuthorId: "u2", Likes: intp(1), Relation: dto.RelQuoteOf, RelatedId: "a"})

	res, err := testAggregator().Aggregate([]*dto.Post{a, b})
	assert.Nil(t, err)
	assert.Empty(t, res.Clusters)
	assert.Equal(t, 2, len(res.Conversational))
	assert.Equal(t, 2, res.Diagnostics.CycleCnt)
}

func TestAggregate_MalformedLinkStillClusters(t *testing.T) {
	a := zeroed(&dto.Post{Id: "a", AuthorId: "u1", Likes: intp(2), Links: []string{"news.example/story/"}})
	b := zeroed(&dto.Post{Id: "b", AuthorId: "u2", Likes: intp(3), Links: []string{"news.example/story"}})

	res, err := testAggregator().Aggregate([]*dto.Post{a, b})
	assert.Nil(t, err)
	assert.Equal(t, 1, len(res.Clusters))
	assert.Equal(t, "news.example/story", res.Clusters[0].CanonicalUrl)
	assert.Equal(t, 5.0, res.Clusters[0].Score)
	assert.Equal(t, 2, res.Diagnostics.MalformedLinkCnt)
}

func TestAggregate_Deterministic(t *testing.T) {
	base := time.Date(2026, 8, 20, 9, 0, 0, 0, time.UTC)
	batch := []*dto.Post{
		zeroed(&dto.Post{Id: "a", AuthorId: "u1", Likes: intp(10), PostedAt: base, Links: []string{"https://x.example/story?utm=9"}}),
		zeroed(&dto.Post{Id: "b", AuthorId: "u2", Likes: intp(5), PostedAt: base.Add(time.Hour), Relation: dto.RelReshareOf, RelatedId: "a"}),
		zeroed(&dto.Post{Id: "c", AuthorId: "u3", Likes: intp(2), PostedAt: base.Add(2 * time.Hour)}),
		zeroed(&dto.Post{Id: "d", AuthorId: "u4", Likes: intp(7), PostedAt: base, Links: []string{"https://y.example/1", "https://z.example/2"}}),
	}

	agg := testAggregator()
	first, err := agg.Aggregate(batch)
	assert.Nil(t, err)
	second, err := agg.Aggregate(batch)
	assert.Nil(t, err)
	assert.Equal(t, first, second)
}

func TestAggregate_InvalidBatchFails(t *testing.T) {
	_, err := testAggregator().Aggregate([]*dto.Post{{Id: "", AuthorId: "u1"}})
	var batchErr *BatchError
	assert.ErrorAs(t, err, &batchErr)
}
