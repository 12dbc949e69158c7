package test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"list_starling/client"
	"list_starling/dto"
	"list_starling/logic"
	"list_starling/shared"
	"list_starling/test/mocks"
)

type runnerHarness struct {
	cfg     *shared.Config
	logger  *mocks.MockILogger
	metrics *mocks.MockIMetrics
	lists   *mocks.MockIListClient
	agg     *mocks.MockIAggregator
	summ    *mocks.MockISummarizer
	rep     *mocks.MockIReporter
	repo    *mocks.MockIRepo
}

func setupRunnerTest(t *testing.T, mutedHandles ...string) (*gomock.Controller, *runnerHarness, logic.IDigestRunner) {
	ctrl := gomock.NewController(t)
	h := runnerHarness{
		cfg: &shared.Config{
			Lists:        []shared.ListConfig{{Id: "111", Name: "AI Folks"}},
			PostsPerList: 40,
			Muted:        shared.MuteConfig{Handles: mutedHandles},
		},
		logger:  mocks.NewMockILogger(ctrl),
		metrics: mocks.NewMockIMetrics(ctrl),
		lists:   mocks.NewMockIListClient(ctrl),
		agg:     mocks.NewMockIAggregator(ctrl),
		summ:    mocks.NewMockISummarizer(ctrl),
		rep:     mocks.NewMockIReporter(ctrl),
		repo:    mocks.NewMockIRepo(ctrl),
	}
	setupDummyLogger(h.logger)
	setupDummyMetrics(h.metrics)
	mute := logic.NewMuteList(h.cfg)
	runner := logic.NewDigestRunner(h.cfg, h.logger, h.metrics, h.lists, mute,
		h.agg, h.summ, h.rep, h.repo)
	return ctrl, &h, runner
}

func TestRunOnce_RunsFullPipeline(t *testing.T) {
	ctrl, h, runner := setupRunnerTest(t)
	defer ctrl.Finish()
	h.cfg.Lists = append(h.cfg.Lists, shared.ListConfig{Id: "222", Name: "News"})

	postsA := []*dto.Post{makePost("1", "alice", "hello")}
	postsB := []*dto.Post{makePost("2", "bob", "check https://example.com/a")}
	aggRes := &logic.AggregateResult{
		Clusters: []*logic.LinkCluster{{CanonicalUrl: "https://example.com/a"}},
		Posts:    map[string]*dto.Post{},
	}
	summary := &logic.DigestSummary{Narrative: "Busy day.", Model: "Ollama · llama3.1:8b"}

	h.lists.EXPECT().VerifyCredentials(gomock.Any()).Return(nil)
	h.lists.EXPECT().FetchListPosts(gomock.Any(), "111", 40).
		Return(postsA, &dto.ListInfo{Id: "111", Name: "AI Folks"}, nil)
	h.lists.EXPECT().FetchListPosts(gomock.Any(), "222", 40).
		Return(postsB, &dto.ListInfo{Id: "222"}, nil)
	h.agg.EXPECT().Aggregate(gomock.Any()).
		DoAndReturn(func(kept []*dto.Post) (*logic.AggregateResult, error) {
			assert.Equal(t, 2, len(kept))
			return aggRes, nil
		})
	h.summ.EXPECT().Summarize(gomock.Any(), aggRes).Return(summary, nil)
	h.rep.EXPECT().Render(gomock.Any(), aggRes, summary, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ *logic.AggregateResult, _ *logic.DigestSummary,
			info *logic.RunInfo) (string, error) {
			assert.Equal(t, "manual", info.Trigger)
			assert.Equal(t, 2, info.PostCount)
			// Platform sent no name for the second list; config label fills in
			assert.Equal(t, "News", info.Lists[1].Name)
			return "digest_20250812_073015.html", nil
		})
	h.repo.EXPECT().GetUserIdCount().Return(3, nil)
	h.repo.EXPECT().GetReportCount().Return(7, nil)

	err := runner.RunOnce(context.Background(), "manual")

	assert.Nil(t, err)
	status := runner.Status()
	assert.Equal(t, "done", status.State)
	assert.Equal(t, 100, status.Progress)
	assert.Equal(t, "digest_20250812_073015.html", status.Report)
}

func TestRunOnce_DropsMutedPosts(t *testing.T) {
	ctrl, h, runner := setupRunnerTest(t, "spammer")
	defer ctrl.Finish()

	posts := []*dto.Post{
		makePost("1", "alice", "hello"),
		makePost("2", "Spammer", "buy now"),
	}

	h.lists.EXPECT().VerifyCredentials(gomock.Any()).Return(nil)
	h.lists.EXPECT().FetchListPosts(gomock.Any(), "111", 40).
		Return(posts, &dto.ListInfo{Id: "111", Name: "AI Folks"}, nil)
	h.agg.EXPECT().Aggregate(gomock.Any()).
		DoAndReturn(func(kept []*dto.Post) (*logic.AggregateResult, error) {
			assert.Equal(t, 1, len(kept))
			assert.Equal(t, "alice", kept[0].AuthorHandle)
			return &logic.AggregateResult{Posts: map[string]*dto.Post{}}, nil
		})
	h.summ.EXPECT().Summarize(gomock.Any(), gomock.Any()).Return(nil, nil)
	h.rep.EXPECT().Render(gomock.Any(), gomock.Any(), gomock.Nil(), gomock.Any()).
		Return("digest_20250812_073015.html", nil)
	h.repo.EXPECT().GetUserIdCount().Return(0, nil)
	h.repo.EXPECT().GetReportCount().Return(1, nil)

	err := runner.RunOnce(context.Background(), "manual")

	assert.Nil(t, err)
}

func TestRunOnce_ContinuesWithoutAiSummary(t *testing.T) {
	ctrl, h, runner := setupRunnerTest(t)
	defer ctrl.Finish()

	aggRes := &logic.AggregateResult{Posts: map[string]*dto.Post{}}

	h.lists.EXPECT().VerifyCredentials(gomock.Any()).Return(nil)
	h.lists.EXPECT().FetchListPosts(gomock.Any(), "111", 40).
		Return([]*dto.Post{makePost("1", "alice", "hello")}, &dto.ListInfo{Id: "111"}, nil)
	h.agg.EXPECT().Aggregate(gomock.Any()).Return(aggRes, nil)
	h.summ.EXPECT().Summarize(gomock.Any(), aggRes).
		Return(nil, errors.New("model not loaded"))
	h.rep.EXPECT().Render(gomock.Any(), aggRes, gomock.Nil(), gomock.Any()).
		Return("digest_20250812_073015.html", nil)
	h.repo.EXPECT().GetUserIdCount().Return(0, nil)
	h.repo.EXPECT().GetReportCount().Return(1, nil)

	err := runner.RunOnce(context.Background(), "schedule")

	assert.Nil(t, err)
	assert.Equal(t, "done", runner.Status().State)
}

func TestRunOnce_FailsWhenSessionCheckFails(t *testing.T) {
	ctrl, h, runner := setupRunnerTest(t)
	defer ctrl.Finish()

	h.lists.EXPECT().VerifyCredentials(gomock.Any()).Return(client.ErrUnauthorized)

	err := runner.RunOnce(context.Background(), "manual")

	assert.ErrorIs(t, err, client.ErrUnauthorized)
	status := runner.Status()
	assert.Equal(t, "failed", status.State)
	assert.Contains(t, status.Error, "session check failed")
}

func TestRunOnce_FailsWithoutLists(t *testing.T) {
	ctrl, h, runner := setupRunnerTest(t)
	defer ctrl.Finish()
	h.cfg.Lists = nil

	err := runner.RunOnce(context.Background(), "manual")

	assert.NotNil(t, err)
	assert.Contains(t, err.Error(), "no lists configured")
}

func TestStart_RejectsOverlappingRun(t *testing.T) {
	ctrl, h, runner := setupRunnerTest(t)
	defer ctrl.Finish()

	release := make(chan struct{})
	h.lists.EXPECT().VerifyCredentials(gomock.Any()).
		DoAndReturn(func(ctx context.Context) error {
			<-release
			return errors.New("session gone")
		})

	runId, err := runner.Start("manual")
	assert.Nil(t, err)
	assert.NotEmpty(t, runId)
	assert.Equal(t, "running", runner.Status().State)

	_, err = runner.Start("schedule")
	assert.ErrorIs(t, err, logic.ErrRunInProgress)

	close(release)
	deadline := time.Now().Add(2 * time.Second)
	for runner.Status().State == "running" && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}
	assert.Equal(t, "failed", runner.Status().State)
}
