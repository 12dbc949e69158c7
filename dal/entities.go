package dal

import (
	"time"
)

// UserCacheEntry maps a handle to the platform's numeric account id, so
// repeat profile lookups skip the network round trip.
type UserCacheEntry struct {
	Handle     string // jack
	UserId     string // 12
	ResolvedAt time.Time
}

type Report struct {
	Id           int
	RunId        string
	CreatedAt    time.Time
	FileName     string // digest_20250812_073015.html
	Trigger      string // manual, scheduled
	PostCount    int
	ClusterCount int
	ConvCount    int
	Model        string // Ollama · llama3.1:8b
	DurationMs   int64
}
