package logic

import (
	"github.com/stretchr/testify/assert"
	"list_starling/dto"
	"testing"
)

func TestDedupeMedia_GroupsByUrlFingerprint(t *testing.T) {
	// A reshare carries the original's media under the same URLs
	original := dto.MediaRef{
		Id: "m1", Kind: dto.MediaPhoto, Url: "https://img.example/media/abc.jpg",
		Width: 1200, Height: 800, SourcePostId: "p1", Ordinal: 0,
	}
	viaReshare := dto.MediaRef{
		Id: "m1", Kind: dto.MediaPhoto, Url: "https://img.example/media/abc.jpg",
		Width: 1200, Height: 800, SourcePostId: "p1", Ordinal: 0,
	}
	other := dto.MediaRef{
		Id: "m2", Kind: dto.MediaPhoto, Url: "https://img.example/media/def.jpg",
		SourcePostId: "p2", Ordinal: 0,
	}

	clusters := dedupeMedia([]dto.MediaRef{original, viaReshare, other})
	assert.Equal(t, 2, len(clusters))
	assert.Equal(t, 2, len(clusters[0].Members))
	assert.Equal(t, "m1", clusters[0].Canonical.Id)
	assert.Equal(t, "m2", clusters[1].Canonical.Id)
}

func TestDedupeMedia_VideoBeatsItsStillFrame(t *testing.T) {
	thumb := "https://img.example/thumb/v1.jpg"
	still := dto.MediaRef{
		Id: "m1", Kind: dto.MediaPhoto, Url: thumb,
		Width: 640, Height: 360, SourcePostId: "p1", Ordinal: 0,
	}
	video := dto.MediaRef{
		Id: "m2", Kind: dto.MediaVideo, Url: "https://video.example/v1.mp4", ThumbnailUrl: thumb,
		Width: 1280, Height: 720, SourcePostId: "p2", Ordinal: 0,
	}

	clusters := dedupeMedia([]dto.MediaRef{still, video})
	assert.Equal(t, 1, len(clusters))
	assert.Equal(t, "m2", clusters[0].Canonical.Id)
}

func TestDedupeMedia_ResolutionThenEarliest(t *testing.T) {
	small := dto.MediaRef{
		Id: "m1", Kind: dto.MediaPhoto, Url: "https://img.example/a.jpg",
		Width: 640, Height: 480, SourcePostId: "p1", Ordinal: 0,
	}
	large := dto.MediaRef{
		Id: "m2", Kind: dto.MediaPhoto, Url: "https://img.example/a.jpg",
		Width: 1920, Height: 1080, SourcePostId: "p2", Ordinal: 0,
	}
	clusters := dedupeMedia([]dto.MediaRef{small, large})
	assert.Equal(t, 1, len(clusters))
	assert.Equal(t, "m2", clusters[0].Canonical.Id)

	// Equal in every preference: the earlier reference stays canonical
	twinA := dto.MediaRef{Id: "m3", Kind: dto.MediaPhoto, Url: "https://img.example/b.jpg", Width: 800, Height: 600}
	twinB := dto.MediaRef{Id: "m4", Kind: dto.MediaPhoto, Url: "https://img.example/b.jpg", Width: 800, Height: 600}
	clusters = dedupeMedia([]dto.MediaRef{twinA, twinB})
	assert.Equal(t, 1, len(clusters))
	assert.Equal(t, "m3", clusters[0].Canonical.Id)
}

func TestDedupeMedia_FallbackKeyWithoutUrls(t *testing.T) {
	// No URL, no id: grouped by where the asset first appeared
	a := dto.MediaRef{Kind: dto.MediaPhoto, SourcePostId: "p1", Ordinal: 0}
	b := dto.MediaRef{Kind: dto.MediaPhoto, SourcePostId: "p1", Ordinal: 0}
	c := dto.MediaRef{Kind: dto.MediaPhoto, SourcePostId: "p1", Ordinal: 1}

	clusters := dedupeMedia([]dto.MediaRef{a, b, c})
	assert.Equal(t, 2, len(clusters))
	assert.Equal(t, "post:p1:0", clusters[0].Fingerprint)
	assert.Equal(t, "post:p1:1", clusters[1].Fingerprint)
}

func TestDedupeMedia_Idempotent(t *testing.T) {
	refs := []dto.MediaRef{
		{Id: "m1", Kind: dto.MediaPhoto, Url: "https://img.example/a.jpg", SourcePostId: "p1", Ordinal: 0},
		{Id: "m1", Kind: dto.MediaPhoto, Url: "https://img.example/a.jpg", SourcePostId: "p1", Ordinal: 0},
		{Id: "m2", Kind: dto.MediaVideo, Url: "https://video.example/v.mp4", ThumbnailUrl: "https://img.example/v.jpg", SourcePostId: "p2", Ordinal: 0},
		{Kind: dto.MediaPhoto, SourcePostId: "p3", Ordinal: 0},
	}
	first := dedupeMedia(refs)

	var canonicals []dto.MediaRef
	for _, cl := range first {
		canonicals = append(canonicals, cl.Canonical)
	}
	second := dedupeMedia(canonicals)

	assert.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i].Fingerprint, second[i].Fingerprint)
		assert.Equal(t, first[i].Canonical, second[i].Canonical)
	}
}
