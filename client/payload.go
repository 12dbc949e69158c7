package client

import (
	"net/url"
	"sort"
	"strings"
	"time"

	"list_starling/dto"
)

// Wire format of the GraphQL list timeline. Only the fields we consume are
// declared; the payload carries far more.

type gqlTimelineResp struct {
	Data struct {
		List struct {
			TweetsTimeline struct {
				Timeline struct {
					Instructions []gqlInstruction `json:"instructions"`
				} `json:"timeline"`
			} `json:"tweets_timeline"`
		} `json:"list"`
	} `json:"data"`
	Errors []gqlError `json:"errors"`
}

type gqlError struct {
	Message string `json:"message"`
}

type gqlInstruction struct {
	Type    string     `json:"type"`
	Entries []gqlEntry `json:"entries"`
}

type gqlEntry struct {
	EntryId string `json:"entryId"`
	Content struct {
		EntryType   string `json:"entryType"`
		ItemContent *struct {
			TweetResults struct {
				Result *gqlTweetResult `json:"result"`
			} `json:"tweet_results"`
		} `json:"itemContent"`
		CursorType string `json:"cursorType"`
		Value      string `json:"value"`
	} `json:"content"`
}

// gqlTweetResult is one post node. Posts behind visibility rules arrive
// wrapped in a TweetWithVisibilityResults envelope with the real node under
// Tweet; deleted ones come as a tombstone with no rest_id.
type gqlTweetResult struct {
	Typename string          `json:"__typename"`
	Tweet    *gqlTweetResult `json:"tweet"`
	RestId   string          `json:"rest_id"`
	Core     *struct {
		UserResults struct {
			Result struct {
				RestId string `json:"rest_id"`
				Legacy struct {
					ScreenName string `json:"screen_name"`
					Name       string `json:"name"`
				} `json:"legacy"`
			} `json:"result"`
		} `json:"user_results"`
	} `json:"core"`
	Legacy             *gqlTweetLegacy `json:"legacy"`
	QuotedStatusResult *struct {
		Result *gqlTweetResult `json:"result"`
	} `json:"quoted_status_result"`
	Card *gqlCard `json:"card"`
}

func (tr *gqlTweetResult) unwrap() *gqlTweetResult {
	if tr == nil {
		return nil
	}
	if tr.Tweet != nil {
		return tr.Tweet
	}
	return tr
}

type gqlTweetLegacy struct {
	FullText      string `json:"full_text"`
	CreatedAt     string `json:"created_at"`
	FavoriteCount *int64 `json:"favorite_count"`
	RetweetCount  *int64 `json:"retweet_count"`
	ReplyCount    *int64 `json:"reply_count"`
	QuoteCount    *int64 `json:"quote_count"`
	BookmarkCount *int64 `json:"bookmark_count"`
	Entities      struct {
		Urls []gqlUrlEntity `json:"urls"`
	} `json:"entities"`
	ExtendedEntities struct {
		Media []gqlMediaEntity `json:"media"`
	} `json:"extended_entities"`
	RetweetedStatusResult *struct {
		Result *gqlTweetResult `json:"result"`
	} `json:"retweeted_status_result"`
}

type gqlUrlEntity struct {
	Url         string `json:"url"`
	ExpandedUrl string `json:"expanded_url"`
	DisplayUrl  string `json:"display_url"`
}

type gqlMediaEntity struct {
	IdStr         string `json:"id_str"`
	Type          string `json:"type"`
	MediaUrlHttps string `json:"media_url_https"`
	OriginalInfo  struct {
		Width  int `json:"width"`
		Height int `json:"height"`
	} `json:"original_info"`
	VideoInfo struct {
		Variants []gqlVideoVariant `json:"variants"`
	} `json:"video_info"`
}

type gqlVideoVariant struct {
	Bitrate     int64  `json:"bitrate"`
	ContentType string `json:"content_type"`
	Url         string `json:"url"`
}

type gqlCard struct {
	Legacy struct {
		BindingValues []struct {
			Key   string `json:"key"`
			Value struct {
				StringValue string `json:"string_value"`
				ImageValue  struct {
					Url string `json:"url"`
				} `json:"image_value"`
			} `json:"value"`
		} `json:"binding_values"`
	} `json:"legacy"`
}

// Wire format of the v1.1 endpoints still used for lists and user lookup.

type v11List struct {
	IdStr       string `json:"id_str"`
	Name        string `json:"name"`
	Description string `json:"description"`
	MemberCount int    `json:"member_count"`
	User        struct {
		ScreenName string `json:"screen_name"`
	} `json:"user"`
}

type v11MembershipsResp struct {
	Lists         []v11List `json:"lists"`
	NextCursorStr string    `json:"next_cursor_str"`
}

type v11User struct {
	IdStr      string `json:"id_str"`
	ScreenName string `json:"screen_name"`
	Name       string `json:"name"`
}

// batchBuilder accumulates translated posts across timeline pages. Reshared
// and quoted originals become sibling records referenced by id, added once
// however many times they are reached.
type batchBuilder struct {
	byId map[string]*dto.Post
	out  []*dto.Post
}

func newBatchBuilder() *batchBuilder {
	return &batchBuilder{byId: map[string]*dto.Post{}}
}

// addPage translates one timeline response. Returns how many top-level posts
// the page carried and the cursor for the next one.
func (bb *batchBuilder) addPage(resp *gqlTimelineResp) (added int, cursor string) {
	for _, instr := range resp.Data.List.TweetsTimeline.Timeline.Instructions {
		if instr.Type != "TimelineAddEntries" {
			continue
		}
		for _, entry := range instr.Entries {
			if entry.Content.CursorType == "Bottom" {
				cursor = entry.Content.Value
				continue
			}
			if entry.Content.ItemContent == nil {
				continue
			}
			if post := bb.addTree(entry.Content.ItemContent.TweetResults.Result); post != nil {
				added++
			}
		}
	}
	return
}

// addTree adds a post and, recursively, the original behind its reshare or
// quote relation. A reshare of a quote yields three records chained by
// RelatedId.
func (bb *batchBuilder) addTree(res *gqlTweetResult) *dto.Post {
	res = res.unwrap()
	if res == nil || res.RestId == "" || res.Legacy == nil {
		return nil
	}
	if known := bb.byId[res.RestId]; known != nil {
		return known
	}

	post := translatePost(res)
	bb.byId[post.Id] = post
	bb.out = append(bb.out, post)

	if rtr := res.Legacy.RetweetedStatusResult; rtr != nil {
		if parent := bb.addTree(rtr.Result); parent != nil {
			post.Relation = dto.RelReshareOf
			post.RelatedId = parent.Id
		}
	} else if qsr := res.QuotedStatusResult; qsr != nil {
		if parent := bb.addTree(qsr.Result); parent != nil {
			post.Relation = dto.RelQuoteOf
			post.RelatedId = parent.Id
		}
	}
	return post
}

func translatePost(res *gqlTweetResult) *dto.Post {
	leg := res.Legacy
	post := dto.Post{
		Id:        res.RestId,
		Text:      expandShortUrls(leg.FullText, leg.Entities.Urls),
		Likes:     leg.FavoriteCount,
		Reshares:  leg.RetweetCount,
		Replies:   leg.ReplyCount,
		Quotes:    leg.QuoteCount,
		Bookmarks: leg.BookmarkCount,
		Links:     externalLinks(leg.Entities.Urls),
		Media:     translateMedia(res.RestId, leg.ExtendedEntities.Media),
		Card:      translateCard(res.Card),
	}
	if res.Core != nil {
		user := res.Core.UserResults.Result
		post.AuthorId = user.RestId
		post.AuthorHandle = user.Legacy.ScreenName
		post.AuthorName = user.Legacy.Name
	}
	if ts, err := time.Parse(time.RubyDate, leg.CreatedAt); err == nil {
		post.PostedAt = ts
	}
	return &post
}

// expandShortUrls swaps t.co placeholders in the text for something readable:
// the expanded URL for external links, the display form for platform-internal
// ones.
func expandShortUrls(text string, urls []gqlUrlEntity) string {
	for _, u := range urls {
		if u.Url == "" {
			continue
		}
		target := u.ExpandedUrl
		if target == "" || isPlatformUrl(target) {
			target = u.DisplayUrl
		}
		if target == "" {
			continue
		}
		text = strings.ReplaceAll(text, u.Url, target)
	}
	return strings.TrimSpace(text)
}

func externalLinks(urls []gqlUrlEntity) []string {
	var res []string
	seen := map[string]bool{}
	for _, u := range urls {
		expanded := u.ExpandedUrl
		if expanded == "" || isPlatformUrl(expanded) || seen[expanded] {
			continue
		}
		seen[expanded] = true
		res = append(res, expanded)
	}
	return res
}

var platformHosts = []string{"x.com", "twitter.com", "t.co", "twimg.com"}

// isPlatformUrl says whether a link points back into the platform itself.
// Those never form clusters; the digest is about what the list shares from
// outside.
func isPlatformUrl(rawUrl string) bool {
	u, err := url.Parse(rawUrl)
	if err != nil || u.Host == "" {
		return false
	}
	host := strings.ToLower(u.Hostname())
	for _, ph := range platformHosts {
		if host == ph || strings.HasSuffix(host, "."+ph) {
			return true
		}
	}
	return false
}

func translateMedia(postId string, media []gqlMediaEntity) []dto.MediaRef {
	var res []dto.MediaRef
	for i, m := range media {
		ref := dto.MediaRef{
			Id:           m.IdStr,
			Url:          m.MediaUrlHttps,
			Width:        m.OriginalInfo.Width,
			Height:       m.OriginalInfo.Height,
			SourcePostId: postId,
			Ordinal:      i,
		}
		switch m.Type {
		case "photo":
			ref.Kind = dto.MediaPhoto
		case "video", "animated_gif":
			if m.Type == "video" {
				ref.Kind = dto.MediaVideo
			} else {
				ref.Kind = dto.MediaGif
			}
			best := bestVideoVariant(m.VideoInfo.Variants)
			if best == "" {
				continue
			}
			ref.Url = best
			ref.ThumbnailUrl = m.MediaUrlHttps
		default:
			continue
		}
		res = append(res, ref)
	}
	return res
}

func bestVideoVariant(variants []gqlVideoVariant) string {
	mp4s := make([]gqlVideoVariant, 0, len(variants))
	for _, v := range variants {
		if v.ContentType == "video/mp4" {
			mp4s = append(mp4s, v)
		}
	}
	if len(mp4s) == 0 {
		return ""
	}
	sort.Slice(mp4s, func(i, j int) bool { return mp4s[i].Bitrate > mp4s[j].Bitrate })
	return mp4s[0].Url
}

func translateCard(card *gqlCard) *dto.LinkCard {
	if card == nil {
		return nil
	}
	res := dto.LinkCard{}
	for _, bv := range card.Legacy.BindingValues {
		switch bv.Key {
		case "title":
			res.Title = bv.Value.StringValue
		case "description":
			res.Description = bv.Value.StringValue
		case "card_url":
			res.Url = bv.Value.StringValue
		case "thumbnail_image_large", "thumbnail_image":
			if res.ImageUrl == "" {
				res.ImageUrl = bv.Value.ImageValue.Url
			}
		case "player_image":
			if res.ImageUrl == "" {
				res.ImageUrl = bv.Value.ImageValue.Url
			}
		}
	}
	if res.Title == "" {
		return nil
	}
	return &res
}
