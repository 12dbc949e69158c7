package logic

import (
	"fmt"
	"list_starling/dto"
	"net/url"
	"strings"
)

// BatchError means the input batch itself is broken and nothing was
// processed. All other input anomalies degrade gracefully.
type BatchError struct {
	Index  int
	Reason string
}

func (e *BatchError) Error() string {
	return fmt.Sprintf("invalid post batch: %s at index %d", e.Reason, e.Index)
}

// corpus is the flat, id-indexed view of one ingested batch. Relations are
// resolved by lookup into byId; posts keeps ingestion order with duplicate
// ids collapsed to their first occurrence.
type corpus struct {
	posts []*dto.Post
	byId  map[string]*dto.Post
	seq   map[string]int
}

func buildCorpus(batch []*dto.Post) (*corpus, error) {
	c := corpus{
		byId: make(map[string]*dto.Post, len(batch)),
		seq:  make(map[string]int, len(batch)),
	}
	for i, post := range batch {
		if post == nil {
			return nil, &BatchError{Index: i, Reason: "nil post"}
		}
		if post.Id == "" {
			return nil, &BatchError{Index: i, Reason: "missing post id"}
		}
		if post.AuthorId == "" && post.AuthorHandle == "" {
			return nil, &BatchError{Index: i, Reason: "missing author"}
		}
		if _, exists := c.byId[post.Id]; exists {
			// Same post fetched through two lists
			continue
		}
		c.byId[post.Id] = post
		c.seq[post.Id] = len(c.posts)
		c.posts = append(c.posts, post)
	}
	return &c, nil
}

type discoveredLink struct {
	url   string
	depth int
}

type extraction struct {
	links     []discoveredLink
	cycles    int
	malformed int
}

// extractLinks walks a post's reshare/quote chain and reports every external
// URL it surfaces, tagged with how many levels had to be unwrapped to reach
// it. The same URL found at two depths is reported once, at the shallower
// one. A relation target missing from the corpus is a dead end, not an
// error; a repeated post id on the walk is a cycle and stops the walk.
func extractLinks(post *dto.Post, c *corpus) extraction {
	var res extraction
	seen := make(map[string]bool)
	path := make(map[string]bool)

	cur := post
	depth := 0
	for cur != nil {
		if path[cur.Id] {
			res.cycles++
			break
		}
		path[cur.Id] = true
		for _, raw := range cur.Links {
			canon, wellFormed := canonicalizeUrl(raw)
			if !wellFormed {
				res.malformed++
			}
			if canon == "" || seen[canon] {
				continue
			}
			seen[canon] = true
			res.links = append(res.links, discoveredLink{canon, depth})
		}
		if cur.Relation == dto.RelNone || cur.RelatedId == "" {
			break
		}
		cur = c.byId[cur.RelatedId]
		depth++
	}
	return res
}

// Query parameters that only identify the share, not the destination.
var trackingParams = map[string]bool{
	"utm":     true,
	"fbclid":  true,
	"gclid":   true,
	"dclid":   true,
	"msclkid": true,
	"igshid":  true,
	"si":      true,
	"mc_cid":  true,
	"mc_eid":  true,
	"ref_src": true,
}

func isTrackingParam(key string) bool {
	key = strings.ToLower(key)
	return trackingParams[key] || strings.HasPrefix(key, "utm_")
}

// canonicalizeUrl maps every way of sharing the same destination onto one
// cluster key: lower-cased scheme and host, default ports and tracking
// params and fragments dropped, remaining query re-encoded in sorted key
// order, trailing slash stripped. An unparseable link still yields a
// best-effort key (wellFormed false) so the share is not lost; an empty
// result means there is nothing to cluster (blank input, or an unresolved
// t.co shortener).
func canonicalizeUrl(raw string) (canon string, wellFormed bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", true
	}
	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return bestEffortCanon(raw), false
	}
	u.Scheme = strings.ToLower(u.Scheme)
	host := strings.ToLower(u.Host)
	if u.Scheme == "http" {
		host = strings.TrimSuffix(host, ":80")
	} else if u.Scheme == "https" {
		host = strings.TrimSuffix(host, ":443")
	}
	u.Host = host
	if u.Hostname() == "t.co" {
		return "", true
	}
	q := u.Query()
	for key := range q {
		if isTrackingParam(key) {
			q.Del(key)
		}
	}
	u.RawQuery = q.Encode()
	u.Fragment = ""
	u.RawFragment = ""
	u.Path = strings.TrimSuffix(u.Path, "/")
	u.RawPath = ""
	return u.String(), true
}

func bestEffortCanon(raw string) string {
	res := strings.TrimSuffix(raw, "/")
	if ix := strings.Index(res, "://"); ix >= 0 {
		rest := res[ix+3:]
		if slash := strings.Index(rest, "/"); slash >= 0 {
			res = strings.ToLower(res[:ix+3+slash]) + rest[slash:]
		} else {
			res = strings.ToLower(res)
		}
	}
	return res
}
