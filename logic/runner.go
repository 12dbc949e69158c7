package logic

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"list_starling/client"
	"list_starling/dal"
	"list_starling/dto"
	"list_starling/shared"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_runner.go -package mocks list_starling/logic IDigestRunner

// ErrRunInProgress is returned by Start when a digest run is already going.
var ErrRunInProgress = errors.New("a digest run is already in progress")

const (
	fetchStaggerBase   = 300 * time.Millisecond
	fetchStaggerJitter = 500 // msec, upper bound
)

type IDigestRunner interface {
	// Start kicks off a run in the background and returns its id.
	Start(trigger string) (string, error)
	// RunOnce runs the whole pipeline synchronously.
	RunOnce(ctx context.Context, trigger string) error
	Status() dto.RunStatus
}

type digestRunner struct {
	cfg     *shared.Config
	logger  shared.ILogger
	metrics shared.IMetrics
	lists   client.IListClient
	mute    IMuteList
	agg     IAggregator
	summ    ISummarizer
	rep     IReporter
	repo    dal.IRepo

	mu        sync.Mutex
	running   bool
	startedAt time.Time
	status    dto.RunStatus
}

func NewDigestRunner(cfg *shared.Config, logger shared.ILogger, metrics shared.IMetrics,
	lists client.IListClient, mute IMuteList, agg IAggregator, summ ISummarizer,
	rep IReporter, repo dal.IRepo,
) IDigestRunner {
	return &digestRunner{
		cfg:     cfg,
		logger:  logger,
		metrics: metrics,
		lists:   lists,
		mute:    mute,
		agg:     agg,
		summ:    summ,
		rep:     rep,
		repo:    repo,
		status:  dto.RunStatus{State: "idle"},
	}
}

func (r *digestRunner) Start(trigger string) (string, error) {
	runId, err := r.acquire(trigger)
	if err != nil {
		return "", err
	}
	go func() {
		r.finish(r.runPipeline(context.Background(), runId, trigger))
	}()
	return runId, nil
}

func (r *digestRunner) RunOnce(ctx context.Context, trigger string) error {
	runId, err := r.acquire(trigger)
	if err != nil {
		return err
	}
	err = r.runPipeline(ctx, runId, trigger)
	r.finish(err)
	return err
}

func (r *digestRunner) Status() dto.RunStatus {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.status
}

// acquire is the single-flight gate: at most one run at a time, whatever
// triggered it.
func (r *digestRunner) acquire(trigger string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.running {
		return "", ErrRunInProgress
	}
	runId := uuid.NewString()
	r.running = true
	r.startedAt = time.Now()
	r.status = dto.RunStatus{
		State:     "running",
		RunId:     runId,
		Trigger:   trigger,
		Phase:     "starting",
		StartedAt: r.startedAt,
	}
	r.metrics.RunStarted(trigger)
	r.logger.Infof("Digest run %s started (%s)", runId, trigger)
	return runId, nil
}

func (r *digestRunner) finish(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.running = false
	elapsed := time.Since(r.startedAt)
	if err != nil {
		r.status.State = "failed"
		r.status.Error = err.Error()
		r.metrics.RunFailed()
		r.logger.Errorf("Digest run %s failed after %v: %v", r.status.RunId, elapsed.Round(time.Millisecond), err)
		return
	}
	r.status.State = "done"
	r.status.Phase = ""
	r.status.Progress = 100
	r.metrics.RunCompleted()
	r.metrics.LastRunDuration(elapsed.Seconds())
	r.logger.Infof("Digest run %s completed in %v", r.status.RunId, elapsed.Round(time.Millisecond))
}

func (r *digestRunner) setPhase(phase string, progress int) {
	r.mu.Lock()
	r.status.Phase = phase
	r.status.Progress = progress
	r.mu.Unlock()
	r.logger.Debugf("Run phase: %s", phase)
}

func (r *digestRunner) runPipeline(ctx context.Context, runId, trigger string) error {

	if len(r.cfg.Lists) == 0 {
		return errors.New("no lists configured")
	}

	r.setPhase("verifying session", 5)
	if err := r.lists.VerifyCredentials(ctx); err != nil {
		return fmt.Errorf("session check failed: %w", err)
	}

	r.setPhase("fetching lists", 10)
	posts, infos, err := r.fetchAllLists(ctx)
	if err != nil {
		return err
	}
	r.metrics.PostsFetched(len(posts))
	r.logger.Infof("Fetched %d posts from %d lists", len(posts), len(r.cfg.Lists))

	kept := r.mute.Filter(posts)
	if dropped := len(posts) - len(kept); dropped > 0 {
		r.logger.Infof("Muted %d posts", dropped)
	}

	r.setPhase("scoring", 50)
	res, err := r.agg.Aggregate(kept)
	if err != nil {
		return err
	}
	r.metrics.ClustersBuilt(len(res.Clusters))

	r.setPhase("summarizing", 65)
	summary, err := r.summ.Summarize(ctx, res)
	if err != nil {
		// The digest is still useful without the AI sections
		r.logger.Warnf("AI summary failed, continuing without it: %v", err)
		summary = nil
	}

	r.setPhase("rendering", 85)
	info := &RunInfo{
		RunId:     runId,
		Trigger:   trigger,
		StartedAt: r.startedAt,
		Lists:     infos,
		PostCount: len(kept),
	}
	fileName, err := r.rep.Render(ctx, res, summary, info)
	if err != nil {
		return err
	}
	r.mu.Lock()
	r.status.Report = fileName
	r.mu.Unlock()

	r.updateStockGauges()
	return nil
}

// fetchAllLists grabs every configured list in parallel. Starts are staggered
// with some jitter so the requests do not land on the platform at once.
func (r *digestRunner) fetchAllLists(ctx context.Context) ([]*dto.Post, []*dto.ListInfo, error) {

	var mu sync.Mutex
	var posts []*dto.Post
	infos := make([]*dto.ListInfo, len(r.cfg.Lists))

	g, gctx := errgroup.WithContext(ctx)
	for i, lc := range r.cfg.Lists {
		delay := time.Duration(i) * (fetchStaggerBase + time.Duration(rand.Intn(fetchStaggerJitter))*time.Millisecond)
		g.Go(func() error {
			select {
			case <-time.After(delay):
			case <-gctx.Done():
				return gctx.Err()
			}
			batch, info, err := r.lists.FetchListPosts(gctx, lc.Id, r.cfg.PostsPerList)
			if err != nil {
				return fmt.Errorf("list %s: %w", lc.Id, err)
			}
			if info != nil && info.Name == "" {
				info.Name = lc.Name
			}
			mu.Lock()
			posts = append(posts, batch...)
			mu.Unlock()
			infos[i] = info
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return posts, infos, nil
}

func (r *digestRunner) updateStockGauges() {
	if cnt, err := r.repo.GetUserIdCount(); err == nil {
		r.metrics.CachedUserIdCount(cnt)
	}
	if cnt, err := r.repo.GetReportCount(); err == nil {
		r.metrics.ReportCount(cnt)
	}
}
