package logic

import (
	"bytes"
	"context"
	"fmt"
	"html"
	"html/template"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"
	"list_starling/dal"
	"list_starling/dto"
	"list_starling/shared"
	"list_starling/texts"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_reporter.go -package mocks list_starling/logic IReporter

const (
	reportTemplateId    = "report.tmpl.html"
	maxReportPostsPerCl = 5
	maxReportConvPosts  = 30
)

// RunInfo is what the runner knows about the digest being rendered.
type RunInfo struct {
	RunId     string
	Trigger   string
	StartedAt time.Time
	Lists     []*dto.ListInfo
	PostCount int
}

type IReporter interface {
	Render(ctx context.Context, res *AggregateResult, summary *DigestSummary, info *RunInfo) (string, error)
}

type reporter struct {
	cfg      *shared.Config
	logger   shared.ILogger
	repo     dal.IRepo
	txt      texts.ITexts
	previews IPreviewFetcher
	idb      *shared.IdBuilder
	sanitize *bluemonday.Policy
}

func NewReporter(cfg *shared.Config, logger shared.ILogger, repo dal.IRepo,
	txt texts.ITexts, previews IPreviewFetcher, idb *shared.IdBuilder,
) IReporter {
	return &reporter{
		cfg:      cfg,
		logger:   logger,
		repo:     repo,
		txt:      txt,
		previews: previews,
		idb:      idb,
		sanitize: bluemonday.StrictPolicy(),
	}
}

type reportModel struct {
	Title          string
	GeneratedAt    string
	ModelLabel     string
	PostCount      int
	LinkCount      int
	Narrative      string
	Clusters       []*reportCluster
	Conversational []*reportPost
	Diag           Diagnostics
}

type reportCluster struct {
	Rank          int
	Url           string
	Domain        string
	Favicon       string
	Score         string
	Contributors  int
	Insight       string
	LowConfidence bool
	Posts         []*reportPost
	Media         []*reportMedia
	Card          *reportCard
}

type reportPost struct {
	Author    string
	StatusUrl string
	Text      string
	Likes     string
	Reshares  string
	Replies   string
	Bookmarks string
	Via       string
}

type reportMedia struct {
	IsPhoto bool
	IsGif   bool
	IsVideo bool
	Url     string
	Thumb   string
	PostUrl string
}

type reportCard struct {
	Url         string
	Title       string
	Description string
	ImageUrl    string
}

// Render writes the digest to cfg.ReportDir and records its metadata. The
// returned name is the bare file name, not a path.
func (rp *reporter) Render(ctx context.Context, res *AggregateResult, summary *DigestSummary, info *RunInfo) (string, error) {

	now := time.Now()
	fileName := fmt.Sprintf("digest_%s.html", now.Format("20060102_150405"))

	model := rp.buildModel(ctx, res, summary, info, now)

	tmplText := rp.txt.Get(reportTemplateId)
	if tmplText == "" {
		return "", fmt.Errorf("report template %s is missing", reportTemplateId)
	}
	tmpl, err := template.New("report").Parse(tmplText)
	if err != nil {
		return "", fmt.Errorf("failed to parse report template: %w", err)
	}

	var buf bytes.Buffer
	if err = tmpl.Execute(&buf, model); err != nil {
		return "", fmt.Errorf("failed to render report: %w", err)
	}

	if err = os.MkdirAll(rp.cfg.ReportDir, 0755); err != nil {
		return "", err
	}
	if err = os.WriteFile(filepath.Join(rp.cfg.ReportDir, fileName), buf.Bytes(), 0644); err != nil {
		return "", err
	}

	modelLabel := ""
	if summary != nil {
		modelLabel = summary.Model
	}
	err = rp.repo.AddReport(&dal.Report{
		RunId:        info.RunId,
		CreatedAt:    now,
		FileName:     fileName,
		Trigger:      info.Trigger,
		PostCount:    info.PostCount,
		ClusterCount: len(res.Clusters),
		ConvCount:    len(res.Conversational),
		Model:        modelLabel,
		DurationMs:   time.Since(info.StartedAt).Milliseconds(),
	})
	if err != nil {
		// The file is on disk; a missing history row is not worth failing the run
		rp.logger.Errorf("Failed to record report %s: %v", fileName, err)
	}

	rp.logger.Infof("Report written: %s", fileName)
	return fileName, nil
}

func (rp *reporter) buildModel(ctx context.Context, res *AggregateResult, summary *DigestSummary,
	info *RunInfo, now time.Time,
) *reportModel {

	model := reportModel{
		Title:       reportTitle(info),
		GeneratedAt: now.Format("January 2, 2006 at 3:04 PM"),
		PostCount:   info.PostCount,
		LinkCount:   len(res.Clusters),
		Diag:        res.Diagnostics,
	}
	if summary != nil {
		model.ModelLabel = summary.Model
		model.Narrative = summary.Narrative
	}

	previewBudget := rp.cfg.PreviewFetches
	for i, cl := range res.Clusters {
		rc := &reportCluster{
			Rank:          i + 1,
			Url:           cl.CanonicalUrl,
			Score:         formatScore(cl.Score),
			Contributors:  len(cl.Contributors),
			Insight:       "—",
			LowConfidence: cl.LowConfidence,
		}
		if host, err := shared.GetHostName(cl.CanonicalUrl); err == nil && host != "" {
			rc.Domain = strings.TrimPrefix(host, "www.")
		} else {
			rc.Domain = cl.CanonicalUrl
		}
		rc.Favicon = shared.FaviconUrl(rc.Domain)
		if summary != nil {
			if why := summary.InsightFor(cl.CanonicalUrl); why != "" {
				rc.Insight = why
			}
		}
		for j, contrib := range cl.Contributors {
			if j == maxReportPostsPerCl {
				break
			}
			rc.Posts = append(rc.Posts, rp.buildPost(res.Posts[contrib.PostId], contrib.Depth))
		}
		rc.Media = rp.buildMedia(cl, res)
		rc.Card = rp.buildCard(ctx, cl, res, &previewBudget)
		model.Clusters = append(model.Clusters, rc)
	}

	for i, post := range res.Conversational {
		if i == maxReportConvPosts {
			break
		}
		model.Conversational = append(model.Conversational, rp.buildPost(post, 0))
	}

	return &model
}

func (rp *reporter) buildPost(post *dto.Post, depth int) *reportPost {
	via := "direct share"
	if depth > 0 {
		via = "via reshare"
	}
	return &reportPost{
		Author:    post.AuthorHandle,
		StatusUrl: rp.idb.StatusUrl(post.AuthorHandle, post.Id),
		Text:      rp.cleanText(post.Text),
		Likes:     formatCountPtr(post.Likes),
		Reshares:  formatCountPtr(post.Reshares),
		Replies:   formatCountPtr(post.Replies),
		Bookmarks: formatCountPtr(post.Bookmarks),
		Via:       via,
	}
}

func (rp *reporter) buildMedia(cl *LinkCluster, res *AggregateResult) []*reportMedia {
	var out []*reportMedia
	for _, mc := range cl.Media {
		m := mc.Canonical
		rm := &reportMedia{
			IsPhoto: m.Kind == dto.MediaPhoto,
			IsGif:   m.Kind == dto.MediaGif,
			IsVideo: m.Kind == dto.MediaVideo,
			Url:     m.Url,
			Thumb:   m.ThumbnailUrl,
		}
		// Native video needs a session; deep-link the post instead
		if rm.IsVideo {
			if post, ok := res.Posts[m.SourcePostId]; ok {
				rm.PostUrl = rp.idb.StatusUrl(post.AuthorHandle, post.Id)
			}
		}
		out = append(out, rm)
	}
	return out
}

// buildCard prefers the platform's own preview card from any contributor;
// scraping is a limited-budget fallback and failures just mean no card.
func (rp *reporter) buildCard(ctx context.Context, cl *LinkCluster, res *AggregateResult, budget *int) *reportCard {
	for _, contrib := range cl.Contributors {
		post := res.Posts[contrib.PostId]
		if post.Card != nil {
			return &reportCard{
				Url:         cl.CanonicalUrl,
				Title:       rp.cleanText(post.Card.Title),
				Description: rp.cleanText(post.Card.Description),
				ImageUrl:    post.Card.ImageUrl,
			}
		}
	}
	if rp.previews == nil || *budget <= 0 {
		return nil
	}
	*budget--
	preview, err := rp.previews.Fetch(ctx, cl.CanonicalUrl)
	if err != nil {
		rp.logger.Debugf("No preview for %s: %v", cl.CanonicalUrl, err)
		return nil
	}
	return &reportCard{
		Url:         cl.CanonicalUrl,
		Title:       rp.cleanText(preview.Title),
		Description: rp.cleanText(preview.Description),
		ImageUrl:    preview.ImageUrl,
	}
}

// cleanText strips any markup out of post text and resolves entities; the
// template re-escapes on output.
func (rp *reporter) cleanText(text string) string {
	return html.UnescapeString(rp.sanitize.Sanitize(text))
}

func reportTitle(info *RunInfo) string {
	var names []string
	for _, li := range info.Lists {
		if li != nil && li.Name != "" {
			names = append(names, li.Name)
		}
	}
	if len(names) == 0 {
		return "List Digest"
	}
	return strings.Join(names, " & ")
}

func formatScore(score float64) string {
	if score == float64(int64(score)) {
		return fmt.Sprintf("%.0f", score)
	}
	return fmt.Sprintf("%.1f", score)
}

func formatCountPtr(n *int64) string {
	if n == nil {
		return "–"
	}
	return shared.FormatCount(*n)
}
