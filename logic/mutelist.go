package logic

import (
	"list_starling/dto"
	"list_starling/shared"
	"strings"
)

type IMuteList interface {
	IsMuted(post *dto.Post) bool
	Filter(posts []*dto.Post) []*dto.Post
}

type muteList struct {
	handles  map[string]bool
	keywords []string
}

func NewMuteList(cfg *shared.Config) IMuteList {
	res := muteList{handles: make(map[string]bool)}
	for _, h := range cfg.Muted.Handles {
		h = strings.ToLower(strings.TrimPrefix(h, "@"))
		if h != "" {
			res.handles[h] = true
		}
	}
	for _, kw := range cfg.Muted.Keywords {
		kw = strings.ToLower(strings.TrimSpace(kw))
		if kw != "" {
			res.keywords = append(res.keywords, kw)
		}
	}
	return &res
}

func (ml *muteList) IsMuted(post *dto.Post) bool {
	if ml.handles[strings.ToLower(post.AuthorHandle)] {
		return true
	}
	if len(ml.keywords) == 0 {
		return false
	}
	text := strings.ToLower(post.Text)
	for _, kw := range ml.keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

// Filter drops muted posts. Relations to a dropped post keep working
// downstream because they reference ids, not slice positions.
func (ml *muteList) Filter(posts []*dto.Post) []*dto.Post {
	res := make([]*dto.Post, 0, len(posts))
	for _, post := range posts {
		if post != nil && ml.IsMuted(post) {
			continue
		}
		res = append(res, post)
	}
	return res
}
