package shared

import (
	"fmt"
	"net/url"
)

// IdBuilder builds platform URLs. Host is configurable so tests can use a
// fake platform host.
type IdBuilder struct {
	Host string
}

func NewIdBuilder(cfg *Config) *IdBuilder {
	return &IdBuilder{Host: cfg.PlatformHost}
}

func (idb *IdBuilder) SiteUrl() string {
	return fmt.Sprintf("https://%s", idb.Host)
}

func (idb *IdBuilder) ProfileUrl(handle string) string {
	return fmt.Sprintf("https://%s/%s", idb.Host, handle)
}

func (idb *IdBuilder) StatusUrl(handle, postId string) string {
	return fmt.Sprintf("https://%s/%s/status/%s", idb.Host, handle, postId)
}

func (idb *IdBuilder) ListUrl(listId string) string {
	return fmt.Sprintf("https://%s/i/lists/%s", idb.Host, listId)
}

func (idb *IdBuilder) SearchUrl(query string) string {
	return fmt.Sprintf("https://%s/search?q=%s", idb.Host, url.QueryEscape(query))
}

// FaviconUrl returns a small site icon for a shared link, via Google's
// favicon service.
func FaviconUrl(host string) string {
	return fmt.Sprintf("https://www.google.com/s2/favicons?domain=%s&sz=32", url.QueryEscape(host))
}
