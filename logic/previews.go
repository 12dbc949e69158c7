package logic

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"list_starling/shared"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_previews.go -package mocks list_starling/logic IPreviewFetcher

const previewTimeoutSec = 10

// LinkPreview is the scraped Open Graph summary of a shared page. Only used
// when no contributing post carried the platform's own card.
type LinkPreview struct {
	Url         string
	Title       string
	Description string
	ImageUrl    string
}

type IPreviewFetcher interface {
	Fetch(ctx context.Context, url string) (*LinkPreview, error)
}

type previewFetcher struct {
	cfg       *shared.Config
	logger    shared.ILogger
	userAgent shared.IUserAgent
	client    *http.Client
}

func NewPreviewFetcher(cfg *shared.Config, logger shared.ILogger, userAgent shared.IUserAgent) IPreviewFetcher {
	return &previewFetcher{
		cfg:       cfg,
		logger:    logger,
		userAgent: userAgent,
		client:    &http.Client{Timeout: previewTimeoutSec * time.Second},
	}
}

func (pf *previewFetcher) Fetch(ctx context.Context, url string) (*LinkPreview, error) {

	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, err
	}
	pf.userAgent.AddUserAgent(req)

	resp, err := pf.client.Do(req)
	if err != nil {
		pf.logger.Warnf("Failed to get %s: %v", url, err)
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != 200 {
		err = fmt.Errorf("request for %s failed with status %d", url, resp.StatusCode)
		pf.logger.Warnf("Failed to get preview: %v", err)
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		pf.logger.Warnf("Failed to parse HTML from %s: %v", url, err)
		return nil, err
	}

	res := &LinkPreview{Url: url}
	res.Title = metaContent(doc, "meta[property='og:title']")
	if res.Title == "" {
		res.Title = strings.TrimSpace(doc.Find("title").First().Text())
	}
	res.Description = metaContent(doc, "meta[property='og:description']")
	if res.Description == "" {
		res.Description = metaContent(doc, "meta[name='description']")
	}
	res.ImageUrl = metaContent(doc, "meta[property='og:image']")

	if res.Title == "" && res.Description == "" {
		return nil, fmt.Errorf("no usable metadata at %s", url)
	}
	return res, nil
}

func metaContent(doc *goquery.Document, selector string) string {
	s := doc.Find(selector).First()
	if s.Length() == 0 {
		return ""
	}
	return strings.TrimSpace(s.AttrOr("content", ""))
}
