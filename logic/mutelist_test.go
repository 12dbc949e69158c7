package logic

import (
	"github.com/stretchr/testify/assert"
	"list_starling/dto"
	"list_starling/shared"
	"testing"
)

func TestMuteList_HandlesAndKeywords(t *testing.T) {
	cfg := &shared.Config{
		Muted: shared.MuteConfig{
			Handles:  []string{"@Spammy", "cryptobro"},
			Keywords: []string{"Giveaway", " sponsored "},
		},
	}
	ml := NewMuteList(cfg)

	posts := []*dto.Post{
		{Id: "a", AuthorHandle: "spammy", Text: "hello"},
		{Id: "b", AuthorHandle: "CryptoBro", Text: "gm"},
		{Id: "c", AuthorHandle: "alice", Text: "Huge GIVEAWAY inside"},
		{Id: "d", AuthorHandle: "bob", Text: "This post is sponsored by nobody"},
		{Id: "e", AuthorHandle: "carol", Text: "regular post"},
	}

	res := ml.Filter(posts)
	assert.Equal(t, 1, len(res))
	assert.Equal(t, "e", res[0].Id)
}

func TestMuteList_EmptyConfigKeepsEverything(t *testing.T) {
	ml := NewMuteList(&shared.Config{})
	posts := []*dto.Post{
		{Id: "a", AuthorHandle: "alice", Text: "hello"},
		{Id: "b", AuthorHandle: "bob", Text: "world"},
	}
	res := ml.Filter(posts)
	assert.Equal(t, 2, len(res))
}
