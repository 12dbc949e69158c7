package dto

import "time"

// RunStatus is the digest runner's state as shown on the dashboard.
type RunStatus struct {
	State     string    `json:"state"` // idle, running, done, failed
	RunId     string    `json:"run_id,omitempty"`
	Trigger   string    `json:"trigger,omitempty"`
	Phase     string    `json:"phase,omitempty"`
	Progress  int       `json:"progress"`
	StartedAt time.Time `json:"started_at,omitzero"`
	Error     string    `json:"error,omitempty"`
	Report    string    `json:"report,omitempty"`
}

// HealthInfo is a cached check of an external dependency (X session, AI
// provider).
type HealthInfo struct {
	Ok        bool      `json:"ok"`
	Detail    string    `json:"detail,omitempty"`
	CheckedAt time.Time `json:"checked_at"`
}

type StatusResp struct {
	Run         RunStatus  `json:"run"`
	Session     HealthInfo `json:"session"`
	AI          HealthInfo `json:"ai"`
	CachedIds   int        `json:"cached_ids"`
	ReportCount int        `json:"report_count"`
}

type RunResp struct {
	RunId string `json:"run_id"`
}

type HistoryItem struct {
	RunId        string    `json:"run_id"`
	CreatedAt    time.Time `json:"created_at"`
	FileName     string    `json:"file_name"`
	Trigger      string    `json:"trigger"`
	PostCount    int       `json:"post_count"`
	ClusterCount int       `json:"cluster_count"`
	ConvCount    int       `json:"conv_count"`
	Model        string    `json:"model,omitempty"`
	DurationMsec int64     `json:"duration_msec"`
}

type ProfileReq struct {
	Handle string `json:"handle"`
}

type PersonaList struct {
	Id          string `json:"id"`
	Name        string `json:"name"`
	MemberCount int    `json:"member_count"`
}

type PersonaWord struct {
	Word  string        `json:"word"`
	Count int           `json:"count"`
	Lists []PersonaList `json:"lists"`
}

type ProfileResp struct {
	Handle    string        `json:"handle"`
	AccountId string        `json:"account_id"`
	ListCount int           `json:"list_count"`
	Words     []PersonaWord `json:"words"`
}

// ConfigView is the editable slice of the config exposed to the dashboard;
// secrets never travel through it.
type ConfigView struct {
	Lists          []ConfigList `json:"lists"`
	PostsPerList   int          `json:"posts_per_list"`
	QuoteWeight    float64      `json:"quote_weight"`
	BookmarkWeight float64      `json:"bookmark_weight"`
	MutedHandles   []string     `json:"muted_handles"`
	MutedKeywords  []string     `json:"muted_keywords"`
	AI             ConfigViewAI `json:"ai"`
	RunSchedule    string       `json:"run_schedule"`
}

type ConfigList struct {
	Id   string `json:"id"`
	Name string `json:"name"`
}

type ConfigViewAI struct {
	Provider string `json:"provider"`
	Model    string `json:"model"`
	BaseUrl  string `json:"base_url,omitempty"`
}

type CookieImportReq struct {
	Cookies string `json:"cookies"`
}
