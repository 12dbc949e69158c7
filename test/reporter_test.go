package test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"list_starling/dal"
	"list_starling/dto"
	"list_starling/logic"
	"list_starling/shared"
	"list_starling/test/mocks"
	"list_starling/texts"
)

type reporterHarness struct {
	cfg      *shared.Config
	repo     *mocks.MockIRepo
	previews *mocks.MockIPreviewFetcher
}

func setupReporterTest(t *testing.T) (*gomock.Controller, *reporterHarness, logic.IReporter) {
	ctrl := gomock.NewController(t)
	h := reporterHarness{
		cfg: &shared.Config{
			ReportDir:    t.TempDir(),
			PlatformHost: "x.com",
		},
		repo:     mocks.NewMockIRepo(ctrl),
		previews: mocks.NewMockIPreviewFetcher(ctrl),
	}
	logger := mocks.NewMockILogger(ctrl)
	setupDummyLogger(logger)
	rep := logic.NewReporter(h.cfg, logger, h.repo, texts.NewTexts(), h.previews,
		shared.NewIdBuilder(h.cfg))
	return ctrl, &h, rep
}

func readReport(t *testing.T, cfg *shared.Config, fileName string) string {
	data, err := os.ReadFile(filepath.Join(cfg.ReportDir, fileName))
	assert.Nil(t, err)
	return string(data)
}

func TestRender_WritesReportAndRecordsIt(t *testing.T) {
	ctrl, h, rep := setupReporterTest(t)
	defer ctrl.Finish()

	postA := makePost("1", "alice", "Must read https://example.com/story")
	postA.Likes = i64(1200)
	postA.Reshares = i64(40)
	postA.Card = &dto.LinkCard{
		Url:         "https://example.com/story",
		Title:       "The Story",
		Description: "Why everyone is talking about it",
		ImageUrl:    "https://example.com/og.png",
	}
	postB := makePost("2", "bob", "agreed, big if true")

	res := &logic.AggregateResult{
		Clusters: []*logic.LinkCluster{{
			CanonicalUrl: "https://example.com/story",
			Contributors: []logic.Contribution{{PostId: "1", Depth: 0}},
			Score:        1252,
			TopPostId:    "1",
		}},
		Conversational: []*dto.Post{postB},
		Posts:          map[string]*dto.Post{"1": postA, "2": postB},
		Diagnostics:    logic.Diagnostics{PostCount: 2},
	}
	summary := &logic.DigestSummary{
		Narrative: "A quiet Tuesday with one standout story.",
		Insights:  map[string]string{"example.com": "Sets the agenda for the week."},
		Model:     "Ollama · llama3.1:8b",
	}
	info := &logic.RunInfo{
		RunId:     "run-1",
		Trigger:   "manual",
		StartedAt: time.Now().Add(-3 * time.Second),
		Lists:     []*dto.ListInfo{{Id: "111", Name: "AI Folks"}},
		PostCount: 2,
	}

	var recorded *dal.Report
	h.repo.EXPECT().AddReport(gomock.Any()).
		DoAndReturn(func(rpt *dal.Report) error {
			recorded = rpt
			return nil
		})

	fileName, err := rep.Render(context.Background(), res, summary, info)

	assert.Nil(t, err)
	assert.True(t, strings.HasPrefix(fileName, "digest_"))
	assert.True(t, strings.HasSuffix(fileName, ".html"))

	assert.NotNil(t, recorded)
	assert.Equal(t, "run-1", recorded.RunId)
	assert.Equal(t, "manual", recorded.Trigger)
	assert.Equal(t, fileName, recorded.FileName)
	assert.Equal(t, 2, recorded.PostCount)
	assert.Equal(t, 1, recorded.ClusterCount)
	assert.Equal(t, 1, recorded.ConvCount)
	assert.Equal(t, "Ollama · llama3.1:8b", recorded.Model)
	assert.True(t, recorded.DurationMs >= 3000)

	content := readReport(t, h.cfg, fileName)
	assert.Contains(t, content, "AI Folks")
	assert.Contains(t, content, "example.com")
	assert.Contains(t, content, "A quiet Tuesday with one standout story.")
	assert.Contains(t, content, "Sets the agenda for the week.")
	assert.Contains(t, content, "The Story")
	assert.Contains(t, content, "https://x.com/alice/status/1")
	assert.Contains(t, content, "agreed, big if true")
}

func TestRender_ScrapesPreviewWithinBudget(t *testing.T) {
	ctrl, h, rep := setupReporterTest(t)
	defer ctrl.Finish()
	h.cfg.PreviewFetches = 1

	postA := makePost("1", "alice", "see https://one.example.com/a")
	postB := makePost("2", "bob", "see https://two.example.com/b")

	res := &logic.AggregateResult{
		Clusters: []*logic.LinkCluster{
			{
				CanonicalUrl: "https://one.example.com/a",
				Contributors: []logic.Contribution{{PostId: "1", Depth: 0}},
				Score:        10,
				TopPostId:    "1",
			},
			{
				CanonicalUrl: "https://two.example.com/b",
				Contributors: []logic.Contribution{{PostId: "2", Depth: 0}},
				Score:        5,
				TopPostId:    "2",
			},
		},
		Posts: map[string]*dto.Post{"1": postA, "2": postB},
	}
	info := &logic.RunInfo{RunId: "run-2", Trigger: "manual", StartedAt: time.Now(), PostCount: 2}

	// Only the first cluster gets a scrape; the budget is spent after that
	h.previews.EXPECT().Fetch(gomock.Any(), "https://one.example.com/a").
		Return(&logic.LinkPreview{
			Url:         "https://one.example.com/a",
			Title:       "Scraped Title",
			Description: "Scraped description",
		}, nil)
	h.repo.EXPECT().AddReport(gomock.Any()).Return(nil)

	fileName, err := rep.Render(context.Background(), res, nil, info)

	assert.Nil(t, err)
	content := readReport(t, h.cfg, fileName)
	assert.Contains(t, content, "Scraped Title")
}

func TestRender_StripsMarkupFromPostText(t *testing.T) {
	ctrl, h, rep := setupReporterTest(t)
	defer ctrl.Finish()

	post := makePost("1", "mallory", `Attack<script>alert("pwn")</script> vector with <b>markup</b>`)
	res := &logic.AggregateResult{
		Conversational: []*dto.Post{post},
		Posts:          map[string]*dto.Post{"1": post},
		Diagnostics:    logic.Diagnostics{PostCount: 1},
	}
	info := &logic.RunInfo{RunId: "run-3", Trigger: "manual", StartedAt: time.Now(), PostCount: 1}

	h.repo.EXPECT().AddReport(gomock.Any()).Return(nil)

	fileName, err := rep.Render(context.Background(), res, nil, info)

	assert.Nil(t, err)
	content := readReport(t, h.cfg, fileName)
	assert.NotContains(t, content, "<script")
	assert.NotContains(t, content, "pwn")
	assert.Contains(t, content, "vector with markup")
}

func TestRender_RecordFailureDoesNotFailRun(t *testing.T) {
	ctrl, h, rep := setupReporterTest(t)
	defer ctrl.Finish()

	post := makePost("1", "alice", "hello")
	res := &logic.AggregateResult{
		Conversational: []*dto.Post{post},
		Posts:          map[string]*dto.Post{"1": post},
	}
	info := &logic.RunInfo{RunId: "run-4", Trigger: "schedule", StartedAt: time.Now(), PostCount: 1}

	h.repo.EXPECT().AddReport(gomock.Any()).Return(assert.AnError)

	fileName, err := rep.Render(context.Background(), res, nil, info)

	// The file made it to disk, so the render still counts
	assert.Nil(t, err)
	_, statErr := os.Stat(filepath.Join(h.cfg.ReportDir, fileName))
	assert.Nil(t, statErr)
}
