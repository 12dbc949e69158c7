package logic

import (
	"fmt"
	"github.com/spaolacci/murmur3"
	"list_starling/dto"
)

// MediaCluster groups references that show the same underlying asset.
// Members keep their provenance; Canonical is the one reference a renderer
// should show.
type MediaCluster struct {
	Fingerprint string
	Members     []dto.MediaRef
	Canonical   dto.MediaRef
}

// mediaFingerprint derives the grouping key for one reference. A reshare
// carries the original's media with the original's URLs, so hashing the
// thumbnail (or full) URL collapses the whole chain onto one key; a video
// and the still frame extracted from it share the thumbnail and collapse
// too. With no URL and no asset id the key falls back to where the asset
// first appeared.
func mediaFingerprint(ref dto.MediaRef) string {
	src := ref.ThumbnailUrl
	if src == "" {
		src = ref.Url
	}
	if src == "" {
		src = ref.Id
	}
	if src == "" {
		return fmt.Sprintf("post:%s:%d", ref.SourcePostId, ref.Ordinal)
	}
	hasher := murmur3.New32()
	_, _ = hasher.Write([]byte(src))
	return fmt.Sprintf("%08x", hasher.Sum32())
}

// dedupeMedia groups references by fingerprint, in first-seen order, and
// picks a canonical representative per group. Running it over the canonical
// picks again yields the same clusters.
func dedupeMedia(refs []dto.MediaRef) []*MediaCluster {
	var order []string
	groups := make(map[string][]dto.MediaRef)
	for _, ref := range refs {
		fp := mediaFingerprint(ref)
		if _, ok := groups[fp]; !ok {
			order = append(order, fp)
		}
		groups[fp] = append(groups[fp], ref)
	}
	res := make([]*MediaCluster, 0, len(order))
	for _, fp := range order {
		members := groups[fp]
		canonical := members[0]
		for _, m := range members[1:] {
			if betterMediaPick(m, canonical) {
				canonical = m
			}
		}
		res = append(res, &MediaCluster{Fingerprint: fp, Members: members, Canonical: canonical})
	}
	return res
}

// betterMediaPick reports whether a should replace b as a group's canonical
// representative: moving picture beats still, then pixel area, then the
// earlier-seen reference stays.
func betterMediaPick(a, b dto.MediaRef) bool {
	ra, rb := mediaKindRank(a.Kind), mediaKindRank(b.Kind)
	if ra != rb {
		return ra > rb
	}
	pa, pb := a.Width*a.Height, b.Width*b.Height
	if pa != pb {
		return pa > pb
	}
	return false
}

func mediaKindRank(kind dto.MediaKind) int {
	switch kind {
	case dto.MediaVideo:
		return 2
	case dto.MediaGif:
		return 1
	default:
		return 0
	}
}
