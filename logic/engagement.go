package logic

import (
	"list_starling/dto"
	"list_starling/shared"
	"time"
)

// scorePost computes the weighted engagement score of a single post:
// likes + reshares + replies + quoteWeight*quotes + bookmarkWeight*bookmarks.
// A count the platform withheld scores as zero; lowConfidence reports that
// this happened so callers can disclose it, the score itself is not altered.
func scorePost(post *dto.Post, weights shared.EngagementWeights) (score float64, lowConfidence bool) {
	likes, okLikes := countOf(post.Likes)
	reshares, okReshares := countOf(post.Reshares)
	replies, okReplies := countOf(post.Replies)
	quotes, okQuotes := countOf(post.Quotes)
	bookmarks, okBookmarks := countOf(post.Bookmarks)

	score = float64(likes) + float64(reshares) + float64(replies) +
		weights.QuoteWeight*float64(quotes) + weights.BookmarkWeight*float64(bookmarks)
	if score < 0 {
		score = 0
	}
	lowConfidence = !(okLikes && okReshares && okReplies && okQuotes && okBookmarks)
	return
}

func countOf(c *int64) (int64, bool) {
	if c == nil {
		return 0, false
	}
	return *c, true
}

// postRank carries everything the ranking comparisons need about one post.
// Seq is the post's position in the ingested batch, the final tie-break.
type postRank struct {
	PostId        string
	Score         float64
	LowConfidence bool
	Likes         int64
	PostedAt      time.Time
	Seq           int
}

func newPostRank(post *dto.Post, seq int, weights shared.EngagementWeights) postRank {
	score, lowConf := scorePost(post, weights)
	likes, _ := countOf(post.Likes)
	return postRank{
		PostId:        post.Id,
		Score:         score,
		LowConfidence: lowConf,
		Likes:         likes,
		PostedAt:      post.PostedAt,
		Seq:           seq,
	}
}

// moreEngaging is the total post ordering: higher score first, then more
// likes, then the older post, then batch order. No two distinct posts ever
// compare equal.
func moreEngaging(a, b postRank) bool {
	if a.Score != b.Score {
		return a.Score > b.Score
	}
	if a.Likes != b.Likes {
		return a.Likes > b.Likes
	}
	if !a.PostedAt.Equal(b.PostedAt) {
		return a.PostedAt.Before(b.PostedAt)
	}
	return a.Seq < b.Seq
}
