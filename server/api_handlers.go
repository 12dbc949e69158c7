package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/mux"
	"list_starling/ai"
	"list_starling/client"
	"list_starling/dal"
	"list_starling/dto"
	"list_starling/logic"
	"list_starling/shared"
)

const (
	historyPageSize = 50
	// A passing health probe is trusted for a while; a failing one is
	// retried sooner so recovery shows up promptly
	healthOkTTL  = 30 * time.Second
	healthErrTTL = 5 * time.Second
)

type apiHandlerGroup struct {
	cfg      *shared.Config
	logger   shared.ILogger
	metrics  shared.IMetrics
	repo     dal.IRepo
	lists    client.IListClient
	runner   logic.IDigestRunner
	persona  logic.IPersonaBuilder
	provider ai.ICompletionProvider

	muHealth      sync.Mutex
	sessionHealth dto.HealthInfo
	aiHealth      dto.HealthInfo
}

func NewApiHandlerGroup(
	cfg *shared.Config,
	logger shared.ILogger,
	metrics shared.IMetrics,
	repo dal.IRepo,
	lists client.IListClient,
	runner logic.IDigestRunner,
	persona logic.IPersonaBuilder,
	provider ai.ICompletionProvider,
) IHandlerGroup {
	res := apiHandlerGroup{
		cfg:      cfg,
		logger:   logger,
		metrics:  metrics,
		repo:     repo,
		lists:    lists,
		runner:   runner,
		persona:  persona,
		provider: provider,
	}
	return &res
}

func (hg *apiHandlerGroup) Prefix() string {
	return "/api"
}

func (hg *apiHandlerGroup) GroupDefs() []handlerDef {
	return []handlerDef{
		{"GET", "/status", func(w http.ResponseWriter, r *http.Request) { hg.getStatus(w, r) }},
		{"POST", "/run", func(w http.ResponseWriter, r *http.Request) { hg.postRun(w, r) }},
		{"GET", "/config", func(w http.ResponseWriter, r *http.Request) { hg.getConfig(w, r) }},
		{"PUT", "/config", func(w http.ResponseWriter, r *http.Request) { hg.putConfig(w, r) }},
		{"GET", "/history", func(w http.ResponseWriter, r *http.Request) { hg.getHistory(w, r) }},
		{"POST", "/profile", func(w http.ResponseWriter, r *http.Request) { hg.postProfile(w, r) }},
		{"POST", "/cookies", func(w http.ResponseWriter, r *http.Request) { hg.postCookies(w, r) }},
		{"DELETE", "/reports/{name}", func(w http.ResponseWriter, r *http.Request) { hg.deleteReport(w, r) }},
	}
}

func (hg *apiHandlerGroup) AuthMW() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return hg.authMW(next)
	}
}

// authMW checks the API key header. With no keys configured the API is open;
// that is the single-user localhost setup.
func (hg *apiHandlerGroup) authMW(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if len(hg.cfg.Secrets.ApiKeys) == 0 {
			next.ServeHTTP(w, r)
			return
		}
		var apiKey = r.Header.Get(apiKeyHeader)
		found := false
		for _, key := range hg.cfg.Secrets.ApiKeys {
			if apiKey == key {
				found = true
			}
		}
		if !found {
			keyPart := apiKey
			if len(apiKey) > 4 {
				keyPart = apiKey[:4] + "..."
			}
			hg.logger.Warnf("API request with missing or invalid key '%s': %s", keyPart, r.URL.Path)
			writeErrorResponse(w, badApiKeyStr, http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (hg *apiHandlerGroup) getStatus(w http.ResponseWriter, r *http.Request) {

	obs := hg.metrics.StartWebRequestIn("api/status")
	defer obs.Finish()

	resp := dto.StatusResp{
		Run:     hg.runner.Status(),
		Session: hg.checkSession(r),
		AI:      hg.checkAi(r),
	}
	resp.CachedIds, _ = hg.repo.GetUserIdCount()
	resp.ReportCount, _ = hg.repo.GetReportCount()
	writeJsonResponse(hg.logger, w, &resp)
}

func (hg *apiHandlerGroup) checkSession(r *http.Request) dto.HealthInfo {

	hg.muHealth.Lock()
	defer hg.muHealth.Unlock()

	if healthIsFresh(&hg.sessionHealth) {
		return hg.sessionHealth
	}
	err := hg.lists.VerifyCredentials(r.Context())
	hg.sessionHealth = dto.HealthInfo{Ok: err == nil, CheckedAt: time.Now()}
	if err != nil {
		hg.sessionHealth.Detail = err.Error()
	}
	return hg.sessionHealth
}

func (hg *apiHandlerGroup) checkAi(r *http.Request) dto.HealthInfo {

	hg.muHealth.Lock()
	defer hg.muHealth.Unlock()

	if healthIsFresh(&hg.aiHealth) {
		return hg.aiHealth
	}
	err := hg.provider.Verify(r.Context())
	hg.aiHealth = dto.HealthInfo{Ok: err == nil, CheckedAt: time.Now()}
	if err != nil {
		hg.aiHealth.Detail = err.Error()
	} else {
		hg.aiHealth.Detail = hg.provider.Name()
	}
	return hg.aiHealth
}

func healthIsFresh(h *dto.HealthInfo) bool {
	if h.CheckedAt.IsZero() {
		return false
	}
	ttl := healthErrTTL
	if h.Ok {
		ttl = healthOkTTL
	}
	return time.Since(h.CheckedAt) < ttl
}

func (hg *apiHandlerGroup) postRun(w http.ResponseWriter, r *http.Request) {

	obs := hg.metrics.StartWebRequestIn("api/run")
	defer obs.Finish()

	hg.logger.Info("POST /api/run: Request received")
	runId, err := hg.runner.Start("manual")
	if err != nil {
		if errors.Is(err, logic.ErrRunInProgress) {
			writeErrorResponse(w, "409 Run Already In Progress", http.StatusConflict)
			return
		}
		hg.logger.Errorf("Failed to start run: %v", err)
		writeErrorResponse(w, internalErrorStr, http.StatusInternalServerError)
		return
	}
	writeJsonResponse(hg.logger, w, &dto.RunResp{RunId: runId})
}

func (hg *apiHandlerGroup) getConfig(w http.ResponseWriter, r *http.Request) {

	obs := hg.metrics.StartWebRequestIn("api/config")
	defer obs.Finish()

	writeJsonResponse(hg.logger, w, configView(hg.cfg))
}

func (hg *apiHandlerGroup) putConfig(w http.ResponseWriter, r *http.Request) {

	obs := hg.metrics.StartWebRequestIn("api/config")
	defer obs.Finish()

	body := readBody(hg.logger, w, r)
	if body == nil {
		return
	}
	var view dto.ConfigView
	if err := json.Unmarshal(body, &view); err != nil {
		hg.logger.Warnf("PUT /api/config: invalid body: %v", err)
		writeErrorResponse(w, badRequestStr, http.StatusBadRequest)
		return
	}
	for _, l := range view.Lists {
		if strings.TrimSpace(l.Id) == "" {
			writeErrorResponse(w, "400 List id must not be empty", http.StatusBadRequest)
			return
		}
	}
	if view.PostsPerList < 1 || view.PostsPerList > 1000 {
		writeErrorResponse(w, "400 posts_per_list out of range", http.StatusBadRequest)
		return
	}

	applyConfigView(hg.cfg, &view)
	if err := shared.SaveConfig(hg.cfg); err != nil {
		hg.logger.Errorf("Failed to save config: %v", err)
		writeErrorResponse(w, internalErrorStr, http.StatusInternalServerError)
		return
	}
	// A fresh provider config must be probed again
	hg.muHealth.Lock()
	hg.aiHealth = dto.HealthInfo{}
	hg.muHealth.Unlock()

	hg.logger.Info("Config updated via API")
	writeJsonResponse(hg.logger, w, configView(hg.cfg))
}

func (hg *apiHandlerGroup) getHistory(w http.ResponseWriter, r *http.Request) {

	obs := hg.metrics.StartWebRequestIn("api/history")
	defer obs.Finish()

	reports, err := hg.repo.GetReports(historyPageSize)
	if err != nil {
		hg.logger.Errorf("Failed to list reports: %v", err)
		writeErrorResponse(w, internalErrorStr, http.StatusInternalServerError)
		return
	}
	items := make([]dto.HistoryItem, 0, len(reports))
	for _, rpt := range reports {
		items = append(items, dto.HistoryItem{
			RunId:        rpt.RunId,
			CreatedAt:    rpt.CreatedAt,
			FileName:     rpt.FileName,
			Trigger:      rpt.Trigger,
			PostCount:    rpt.PostCount,
			ClusterCount: rpt.ClusterCount,
			ConvCount:    rpt.ConvCount,
			Model:        rpt.Model,
			DurationMsec: rpt.DurationMs,
		})
	}
	writeJsonResponse(hg.logger, w, items)
}

func (hg *apiHandlerGroup) postProfile(w http.ResponseWriter, r *http.Request) {

	obs := hg.metrics.StartWebRequestIn("api/profile")
	defer obs.Finish()

	body := readBody(hg.logger, w, r)
	if body == nil {
		return
	}
	var req dto.ProfileReq
	if err := json.Unmarshal(body, &req); err != nil {
		writeErrorResponse(w, badRequestStr, http.StatusBadRequest)
		return
	}
	handle := strings.ToLower(strings.TrimPrefix(strings.TrimSpace(req.Handle), "@"))
	if handle == "" {
		writeErrorResponse(w, "400 Handle must not be empty", http.StatusBadRequest)
		return
	}

	hg.logger.Infof("POST /api/profile: building persona for @%s", handle)
	accountId, err := hg.lists.ResolveUserId(r.Context(), handle)
	if err != nil {
		hg.platformError(w, err)
		return
	}
	memberships, err := hg.lists.FetchMemberships(r.Context(), accountId, hg.cfg.ProfileMaxLists)
	if err != nil {
		hg.platformError(w, err)
		return
	}
	personaRes := hg.persona.BuildPersona(accountId, memberships)

	resp := dto.ProfileResp{
		Handle:    handle,
		AccountId: accountId,
		ListCount: len(memberships),
		Words:     make([]dto.PersonaWord, 0, len(personaRes.Words)),
	}
	for _, word := range personaRes.Words {
		pw := dto.PersonaWord{Word: word.Word, Count: word.Count}
		for _, lr := range word.Lists {
			pw.Lists = append(pw.Lists, dto.PersonaList{Id: lr.Id, Name: lr.Name, MemberCount: lr.MemberCount})
		}
		resp.Words = append(resp.Words, pw)
	}
	writeJsonResponse(hg.logger, w, &resp)
}

// platformError maps upstream failures to something the dashboard can show.
func (hg *apiHandlerGroup) platformError(w http.ResponseWriter, err error) {
	hg.logger.Warnf("Platform request failed: %v", err)
	if errors.Is(err, client.ErrRateLimited) {
		writeErrorResponse(w, "429 Platform Rate Limit; wait ~15 minutes", http.StatusTooManyRequests)
		return
	}
	if errors.Is(err, client.ErrUnauthorized) {
		writeErrorResponse(w, "401 Platform Session Expired; re-import cookies", http.StatusUnauthorized)
		return
	}
	writeErrorResponse(w, "502 Platform Request Failed", http.StatusBadGateway)
}

func (hg *apiHandlerGroup) postCookies(w http.ResponseWriter, r *http.Request) {

	obs := hg.metrics.StartWebRequestIn("api/cookies")
	defer obs.Finish()

	body := readBody(hg.logger, w, r)
	if body == nil {
		return
	}
	var req dto.CookieImportReq
	if err := json.Unmarshal(body, &req); err != nil {
		writeErrorResponse(w, badRequestStr, http.StatusBadRequest)
		return
	}
	if _, err := client.ParseCookies([]byte(req.Cookies)); err != nil {
		hg.logger.Warnf("Cookie import rejected: %v", err)
		writeErrorResponse(w, "400 "+err.Error(), http.StatusBadRequest)
		return
	}
	if err := os.WriteFile(hg.cfg.Secrets.CookiesFile, []byte(req.Cookies), 0600); err != nil {
		hg.logger.Errorf("Failed to write cookies file: %v", err)
		writeErrorResponse(w, internalErrorStr, http.StatusInternalServerError)
		return
	}
	hg.logger.Info("Cookies imported; verifying session")

	// Bypass the cache: the user wants to know about these cookies, now
	err := hg.lists.VerifyCredentials(r.Context())
	health := dto.HealthInfo{Ok: err == nil, CheckedAt: time.Now()}
	if err != nil {
		health.Detail = err.Error()
	}
	hg.muHealth.Lock()
	hg.sessionHealth = health
	hg.muHealth.Unlock()

	writeJsonResponse(hg.logger, w, &health)
}

func (hg *apiHandlerGroup) deleteReport(w http.ResponseWriter, r *http.Request) {

	obs := hg.metrics.StartWebRequestIn("api/reports")
	defer obs.Finish()

	name := mux.Vars(r)["name"]
	if !isReportFileName(name) {
		writeErrorResponse(w, badRequestStr, http.StatusBadRequest)
		return
	}
	if err := os.Remove(filepath.Join(hg.cfg.ReportDir, name)); err != nil && !os.IsNotExist(err) {
		hg.logger.Errorf("Failed to delete report %s: %v", name, err)
		writeErrorResponse(w, internalErrorStr, http.StatusInternalServerError)
		return
	}
	if err := hg.repo.DeleteReport(name); err != nil {
		hg.logger.Errorf("Failed to delete report record %s: %v", name, err)
		writeErrorResponse(w, internalErrorStr, http.StatusInternalServerError)
		return
	}
	hg.logger.Infof("Report deleted: %s", name)
	writeJsonResponse(hg.logger, w, &errorResp{Error: "", Status: http.StatusOK})
}

// isReportFileName admits exactly the names the reporter generates; anything
// else could be a path traversal attempt.
func isReportFileName(name string) bool {
	if name != filepath.Base(name) {
		return false
	}
	return strings.HasPrefix(name, "digest_") && strings.HasSuffix(name, ".html")
}

func configView(cfg *shared.Config) *dto.ConfigView {
	view := dto.ConfigView{
		PostsPerList:   cfg.PostsPerList,
		QuoteWeight:    cfg.Engagement.QuoteWeight,
		BookmarkWeight: cfg.Engagement.BookmarkWeight,
		MutedHandles:   cfg.Muted.Handles,
		MutedKeywords:  cfg.Muted.Keywords,
		RunSchedule:    cfg.RunSchedule,
		AI: dto.ConfigViewAI{
			Provider: cfg.AI.Provider,
			Model:    cfg.AI.Model,
			BaseUrl:  cfg.AI.BaseUrl,
		},
	}
	for _, l := range cfg.Lists {
		view.Lists = append(view.Lists, dto.ConfigList{Id: l.Id, Name: l.Name})
	}
	return &view
}

func applyConfigView(cfg *shared.Config, view *dto.ConfigView) {
	cfg.Lists = nil
	for _, l := range view.Lists {
		cfg.Lists = append(cfg.Lists, shared.ListConfig{Id: strings.TrimSpace(l.Id), Name: strings.TrimSpace(l.Name)})
	}
	cfg.PostsPerList = view.PostsPerList
	cfg.Engagement.QuoteWeight = view.QuoteWeight
	cfg.Engagement.BookmarkWeight = view.BookmarkWeight
	cfg.Muted.Handles = view.MutedHandles
	cfg.Muted.Keywords = view.MutedKeywords
	cfg.AI.Provider = view.AI.Provider
	cfg.AI.Model = view.AI.Model
	cfg.AI.BaseUrl = view.AI.BaseUrl
	cfg.RunSchedule = view.RunSchedule
}
