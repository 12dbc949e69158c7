package shared

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestIdBuilderUrls(t *testing.T) {
	idb := IdBuilder{Host: "x.example"}
	assert.Equal(t, "https://x.example", idb.SiteUrl())
	assert.Equal(t, "https://x.example/birdwatcher", idb.ProfileUrl("birdwatcher"))
	assert.Equal(t, "https://x.example/birdwatcher/status/1790001", idb.StatusUrl("birdwatcher", "1790001"))
	assert.Equal(t, "https://x.example/i/lists/4242", idb.ListUrl("4242"))
	assert.Equal(t, "https://x.example/search?q=a+b", idb.SearchUrl("a b"))
}

func TestFaviconUrl(t *testing.T) {
	assert.Equal(t,
		"https://www.google.com/s2/favicons?domain=example.com&sz=32",
		FaviconUrl("example.com"))
}
