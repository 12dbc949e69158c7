package logic

import (
	"github.com/stretchr/testify/assert"
	"list_starling/dto"
	"list_starling/shared"
	"testing"
	"time"
)

func intp(v int64) *int64 {
	return &v
}

func defaultWeights() shared.EngagementWeights {
	return shared.EngagementWeights{QuoteWeight: 1.0, BookmarkWeight: 1.0}
}

func TestScorePost_AllCounts(t *testing.T) {
	post := &dto.Post{
		Id: "1", AuthorId: "u1",
		Likes: intp(1), Reshares: intp(2), Replies: intp(3), Quotes: intp(4), Bookmarks: intp(5),
	}
	score, lowConf := scorePost(post, defaultWeights())
	assert.Equal(t, 15.0, score)
	assert.False(t, lowConf)

	score, _ = scorePost(post, shared.EngagementWeights{QuoteWeight: 2.0, BookmarkWeight: 1.0})
	assert.Equal(t, 19.0, score)

	score, _ = scorePost(post, shared.EngagementWeights{QuoteWeight: 1.0, BookmarkWeight: 0.5})
	assert.Equal(t, 12.5, score)
}

func TestScorePost_MissingCountsAreLowConfidence(t *testing.T) {
	post := &dto.Post{Id: "1", AuthorId: "u1", Likes: intp(7)}
	score, lowConf := scorePost(post, defaultWeights())
	assert.Equal(t, 7.0, score)
	assert.True(t, lowConf)
}

func TestScorePost_NeverNegative(t *testing.T) {
	post := &dto.Post{
		Id: "1", AuthorId: "u1",
		Likes: intp(0), Reshares: intp(0), Replies: intp(0), Quotes: intp(1), Bookmarks: intp(0),
	}
	score, _ := scorePost(post, shared.EngagementWeights{QuoteWeight: -10.0, BookmarkWeight: 1.0})
	assert.Equal(t, 0.0, score)
}

func TestScorePost_Monotonic(t *testing.T) {
	base := &dto.Post{
		Id: "1", AuthorId: "u1",
		Likes: intp(3), Reshares: intp(1), Replies: intp(0), Quotes: intp(2), Bookmarks: intp(1),
	}
	before, _ := scorePost(base, defaultWeights())
	for _, bump := range []func(p *dto.Post){
		func(p *dto.Post) { p.Likes = intp(4) },
		func(p *dto.Post) { p.Reshares = intp(2) },
		func(p *dto.Post) { p.Replies = intp(1) },
		func(p *dto.Post) { p.Quotes = intp(3) },
		func(p *dto.Post) { p.Bookmarks = intp(2) },
	} {
		bumped := *base
		bump(&bumped)
		after, _ := scorePost(&bumped, defaultWeights())
		assert.GreaterOrEqual(t, after, before)
	}
}

func TestMoreEngaging_TieBreaks(t *testing.T) {
	t1 := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	t2 := time.Date(2026, 8, 1, 11, 0, 0, 0, time.UTC)

	// Higher score wins regardless of likes
	a := postRank{PostId: "a", Score: 10, Likes: 0, PostedAt: t2, Seq: 5}
	b := postRank{PostId: "b", Score: 9, Likes: 100, PostedAt: t1, Seq: 0}
	assert.True(t, moreEngaging(a, b))
	assert.False(t, moreEngaging(b, a))

	// Same score: more likes wins
	a = postRank{PostId: "a", Score: 10, Likes: 8, PostedAt: t2, Seq: 5}
	b = postRank{PostId: "b", Score: 10, Likes: 3, PostedAt: t1, Seq: 0}
	assert.True(t, moreEngaging(a, b))

	// Same score and likes: older post wins
	a = postRank{PostId: "a", Score: 10, Likes: 8, PostedAt: t1, Seq: 5}
	b = postRank{PostId: "b", Score: 10, Likes: 8, PostedAt: t2, Seq: 0}
	assert.True(t, moreEngaging(a, b))

	// All equal: batch order decides
	a = postRank{PostId: "a", Score: 10, Likes: 8, PostedAt: t1, Seq: 1}
	b = postRank{PostId: "b", Score: 10, Likes: 8, PostedAt: t1, Seq: 2}
	assert.True(t, moreEngaging(a, b))
	assert.False(t, moreEngaging(b, a))
}
