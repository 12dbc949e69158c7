package shared

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_metrics.go -package mocks list_starling/shared IMetrics

type IMetrics interface {
	StartWebRequestIn(label string) IRequestObserver
	StartPlatformRequestOut(label string) IRequestObserver
	StartAiRequestOut(label string) IRequestObserver
	RunStarted(trigger string)
	RunCompleted()
	RunFailed()
	PostsFetched(count int)
	ClustersBuilt(count int)
	ServiceStarted()
	CachedUserIdCount(count int)
	ReportCount(count int)
	LastRunDuration(seconds float64)
}

type IRequestObserver interface {
	Finish()
}

type metrics struct {
	cfg                 *Config
	webRequestsIn       *prometheus.HistogramVec
	platformRequestsOut *prometheus.HistogramVec
	aiRequestsOut       *prometheus.HistogramVec
	runsStarted         *prometheus.CounterVec
	runsCompleted       prometheus.Counter
	runsFailed          prometheus.Counter
	postsFetched        prometheus.Counter
	clustersBuilt       prometheus.Counter
	serviceStarted      prometheus.Counter
	cachedUserIdCount   prometheus.Gauge
	reportCount         prometheus.Gauge
	lastRunDuration     prometheus.Gauge
}

func NewMetrics(cfg *Config) IMetrics {

	res := metrics{}
	res.cfg = cfg

	res.webRequestsIn = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name: "web_requests_in_duration",
		Help: "Duration in seconds of Web requests served.",
	}, []string{"label"})
	prometheus.Register(res.webRequestsIn)

	res.platformRequestsOut = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name: "platform_requests_out_duration",
		Help: "Duration in seconds of requests made to the platform.",
	}, []string{"label"})
	prometheus.Register(res.platformRequestsOut)

	res.aiRequestsOut = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name: "ai_requests_out_duration",
		Help: "Duration in seconds of requests made to the AI provider.",
	}, []string{"label"})
	prometheus.Register(res.aiRequestsOut)

	res.runsStarted = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "runs_started",
		Help: "Number of digest runs started",
	}, []string{"trigger"})
	prometheus.Register(res.runsStarted)

	res.runsCompleted = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "runs_completed",
		Help: "Number of digest runs completed",
	})
	prometheus.Register(res.runsCompleted)

	res.runsFailed = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "runs_failed",
		Help: "Number of digest runs failed",
	})
	prometheus.Register(res.runsFailed)

	res.postsFetched = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "posts_fetched",
		Help: "Number of posts fetched from lists",
	})
	prometheus.Register(res.postsFetched)

	res.clustersBuilt = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "clusters_built",
		Help: "Number of link clusters built",
	})
	prometheus.Register(res.clustersBuilt)

	res.serviceStarted = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "service_started",
		Help: "Service has started up",
	})
	prometheus.Register(res.serviceStarted)

	res.cachedUserIdCount = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "cached_user_id_count",
		Help: "Number of handle to user id mappings cached",
	})
	prometheus.Register(res.cachedUserIdCount)

	res.reportCount = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "report_count",
		Help: "Number of digest reports on record",
	})
	prometheus.Register(res.reportCount)

	res.lastRunDuration = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "last_run_duration",
		Help: "Duration in seconds of the last digest run",
	})
	prometheus.Register(res.lastRunDuration)

	return &res
}

type requestObserver struct {
	label string
	start time.Time
	hgvec *prometheus.HistogramVec
}

func (ro *requestObserver) Finish() {
	now := time.Now()
	elapsed := float64(now.UnixMilli()-ro.start.UnixMilli()) / 1000.0
	ro.hgvec.WithLabelValues(ro.label).Observe(elapsed)
}

func (m *metrics) StartWebRequestIn(label string) IRequestObserver {
	return &requestObserver{label, time.Now(), m.webRequestsIn}
}

func (m *metrics) StartPlatformRequestOut(label string) IRequestObserver {
	return &requestObserver{label, time.Now(), m.platformRequestsOut}
}

func (m *metrics) StartAiRequestOut(label string) IRequestObserver {
	return &requestObserver{label, time.Now(), m.aiRequestsOut}
}

func (m *metrics) RunStarted(trigger string) {
	m.runsStarted.WithLabelValues(trigger).Add(1)
}

func (m *metrics) RunCompleted() {
	m.runsCompleted.Add(1)
}

func (m *metrics) RunFailed() {
	m.runsFailed.Add(1)
}

func (m *metrics) PostsFetched(count int) {
	m.postsFetched.Add(float64(count))
}

func (m *metrics) ClustersBuilt(count int) {
	m.clustersBuilt.Add(float64(count))
}

func (m *metrics) ServiceStarted() {
	m.serviceStarted.Add(1)
}

func (m *metrics) CachedUserIdCount(count int) {
	m.cachedUserIdCount.Set(float64(count))
}

func (m *metrics) ReportCount(count int) {
	m.reportCount.Set(float64(count))
}

func (m *metrics) LastRunDuration(seconds float64) {
	m.lastRunDuration.Set(seconds)
}
