package dto

import "time"

// RelationKind says how a post points at another post in the same batch.
type RelationKind int

const (
	RelNone RelationKind = iota
	RelReshareOf
	RelQuoteOf
)

type MediaKind string

const (
	MediaPhoto MediaKind = "photo"
	MediaVideo MediaKind = "video"
	MediaGif   MediaKind = "animated_gif"
)

// Post is one timeline item as handed over by the fetch layer. Relations are
// non-owning: RelatedId references a sibling record in the same batch, or
// nothing if the original is gone.
// Engagement counts are pointers because the platform sometimes withholds
// them; nil means unknown, which scores as zero but is flagged.
type Post struct {
	Id           string       `json:"id"`
	AuthorId     string       `json:"author_id"`
	AuthorHandle string       `json:"author_handle"`
	AuthorName   string       `json:"author_name"`
	PostedAt     time.Time    `json:"posted_at"`
	Text         string       `json:"text"`
	Likes        *int64       `json:"likes"`
	Reshares     *int64       `json:"reshares"`
	Replies      *int64       `json:"replies"`
	Quotes       *int64       `json:"quotes"`
	Bookmarks    *int64       `json:"bookmarks"`
	Links        []string     `json:"links,omitempty"`
	Media        []MediaRef   `json:"media,omitempty"`
	Card         *LinkCard    `json:"card,omitempty"`
	Relation     RelationKind `json:"relation"`
	RelatedId    string       `json:"related_id,omitempty"`
}

// MediaRef points at one media asset. SourcePostId and Ordinal identify the
// asset by where it originally appeared, which is what dedup falls back to
// when no URL-derived fingerprint is possible.
type MediaRef struct {
	Id           string    `json:"id"`
	Kind         MediaKind `json:"kind"`
	Url          string    `json:"url"`
	ThumbnailUrl string    `json:"thumbnail_url,omitempty"`
	Width        int       `json:"width,omitempty"`
	Height       int       `json:"height,omitempty"`
	SourcePostId string    `json:"source_post_id"`
	Ordinal      int       `json:"ordinal"`
}

// LinkCard is the platform's own preview card for a shared link, when the
// payload carried one.
type LinkCard struct {
	Url         string `json:"url"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	ImageUrl    string `json:"image_url,omitempty"`
}

// ListMembership is one list an account belongs to; input to the persona
// builder.
type ListMembership struct {
	Id          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	MemberCount int    `json:"member_count"`
	OwnerHandle string `json:"owner_handle,omitempty"`
}

// ListInfo describes a fetched list itself.
type ListInfo struct {
	Id          string `json:"id"`
	Name        string `json:"name"`
	MemberCount int    `json:"member_count"`
}
