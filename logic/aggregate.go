package logic

import (
	"list_starling/dto"
	"list_starling/shared"
	"sort"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_aggregator.go -package mocks list_starling/logic IAggregator

// Contribution records that a post surfaced a cluster's URL, and through how
// many reshare/quote levels.
type Contribution struct {
	PostId string
	Depth  int
}

// LinkCluster is the ranking unit: all posts that ultimately shared one
// canonical URL.
type LinkCluster struct {
	CanonicalUrl  string
	Contributors  []Contribution
	Score         float64
	LowConfidence bool
	TopPostId     string
	Media         []*MediaCluster
}

type Diagnostics struct {
	PostCount        int
	LowConfidenceCnt int
	CycleCnt         int
	MalformedLinkCnt int
}

// AggregateResult is what the report renderer and the dashboard consume:
// clusters ranked by engagement, plus the residual link-less chatter in
// reverse-chronological order. Posts indexes the validated batch by id so
// consumers can resolve contributors.
type AggregateResult struct {
	Clusters       []*LinkCluster
	Conversational []*dto.Post
	Posts          map[string]*dto.Post
	Diagnostics    Diagnostics
}

type IAggregator interface {
	Aggregate(posts []*dto.Post) (*AggregateResult, error)
}

type aggregator struct {
	cfg    *shared.Config
	logger shared.ILogger
}

func NewAggregator(cfg *shared.Config, logger shared.ILogger) IAggregator {
	return &aggregator{cfg: cfg, logger: logger}
}

// Aggregate is deterministic: the same batch always yields the same
// clusters, scores and ordering. The only error it returns is a BatchError
// for structurally broken input; everything else degrades per post.
func (agg *aggregator) Aggregate(posts []*dto.Post) (*AggregateResult, error) {

	c, err := buildCorpus(posts)
	if err != nil {
		return nil, err
	}

	weights := agg.cfg.Engagement
	ranks := make(map[string]postRank, len(c.posts))
	for _, post := range c.posts {
		ranks[post.Id] = newPostRank(post, c.seq[post.Id], weights)
	}

	clusters := make(map[string]*LinkCluster)
	var clusterOrder []string
	var conv []*dto.Post
	diag := Diagnostics{PostCount: len(c.posts)}

	for _, post := range c.posts {
		ext := extractLinks(post, c)
		diag.CycleCnt += ext.cycles
		diag.MalformedLinkCnt += ext.malformed
		if ext.cycles > 0 {
			agg.logger.Warnf("Relation cycle reached from post %s; stopped unwrapping there", post.Id)
		}
		if len(ext.links) == 0 {
			conv = append(conv, post)
			continue
		}
		rank := ranks[post.Id]
		if rank.LowConfidence {
			diag.LowConfidenceCnt++
		}
		// The post's score goes to the cluster(s) it discovered at its
		// shallowest depth; anything deeper gets the post as a contributor
		// only. A post sharing two links directly scores into both.
		minDepth := ext.links[0].depth
		for _, l := range ext.links[1:] {
			if l.depth < minDepth {
				minDepth = l.depth
			}
		}
		for _, l := range ext.links {
			cl, ok := clusters[l.url]
			if !ok {
				cl = &LinkCluster{CanonicalUrl: l.url}
				clusters[l.url] = cl
				clusterOrder = append(clusterOrder, l.url)
			}
			cl.Contributors = append(cl.Contributors, Contribution{post.Id, l.depth})
			if l.depth == minDepth {
				cl.Score += rank.Score
			}
			if rank.LowConfidence {
				cl.LowConfidence = true
			}
		}
	}

	ranked := make([]*LinkCluster, 0, len(clusterOrder))
	for _, url := range clusterOrder {
		cl := clusters[url]
		cl.TopPostId = topContributor(cl, ranks)
		cl.Media = dedupeMedia(collectClusterMedia(cl, c))
		ranked = append(ranked, cl)
	}

	sort.Slice(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		if a.TopPostId != b.TopPostId {
			return moreEngaging(ranks[a.TopPostId], ranks[b.TopPostId])
		}
		return a.CanonicalUrl < b.CanonicalUrl
	})

	sort.Slice(conv, func(i, j int) bool {
		a, b := conv[i], conv[j]
		if !a.PostedAt.Equal(b.PostedAt) {
			return a.PostedAt.After(b.PostedAt)
		}
		return c.seq[a.Id] < c.seq[b.Id]
	})

	return &AggregateResult{
		Clusters:       ranked,
		Conversational: conv,
		Posts:          c.byId,
		Diagnostics:    diag,
	}, nil
}

func topContributor(cl *LinkCluster, ranks map[string]postRank) string {
	best := ranks[cl.Contributors[0].PostId]
	for _, contrib := range cl.Contributors[1:] {
		if r := ranks[contrib.PostId]; moreEngaging(r, best) {
			best = r
		}
	}
	return best.PostId
}

// collectClusterMedia gathers the media of every contributing post, in
// contribution order, for deduplication.
func collectClusterMedia(cl *LinkCluster, c *corpus) []dto.MediaRef {
	var refs []dto.MediaRef
	for _, contrib := range cl.Contributors {
		post := c.byId[contrib.PostId]
		refs = append(refs, post.Media...)
	}
	return refs
}
