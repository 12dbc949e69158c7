package shared

import (
	"encoding/json"
	"github.com/tailscale/hujson"
	"log"
	"os"
)

const (
	configVarName  = "CONFIG"                  // If set, will load config.jsonc from this path and not from devConfigPath
	secretsVarName = "SECRETS"                 // If set, will load secrets.jsonc from this path and not from devSecretsPath
	devConfigPath  = "./dev/config.dev.jsonc"  // Path to config.jsonc in development environment
	devSecretsPath = "./dev/secrets.dev.jsonc" // Path to secrets.jsonc in development environment
)

type Config struct {
	Secrets            Secrets           `json:"-"`
	LogFile            string            `json:"log_file"`
	LogLevel           string            `json:"log_level"`
	ServicePort        uint              `json:"service_port"`
	PlatformHost       string            `json:"platform_host"`
	DbFile             string            `json:"db_file"`
	ReportDir          string            `json:"report_dir"`
	CachePageTemplates bool              `json:"cache_page_templates"`
	Lists              []ListConfig      `json:"lists"`
	PostsPerList       int               `json:"posts_per_list"`
	ProfileMaxLists    int               `json:"profile_max_lists"`
	Engagement         EngagementWeights `json:"engagement"`
	Muted              MuteConfig        `json:"muted"`
	AI                 AIConfig          `json:"ai"`
	RunSchedule        string            `json:"run_schedule"`
	PreviewFetches     int               `json:"preview_fetches"`
	ProfileDir         string            `json:"profile_dir"`
	ProfileKeepDays    int               `json:"profile_keep_days"`
}

type ListConfig struct {
	Id   string `json:"id"`
	Name string `json:"name"`
}

// EngagementWeights holds the two tunable multipliers of the score formula.
// Likes, reshares and replies always count at face value.
type EngagementWeights struct {
	QuoteWeight    float64 `json:"quote_weight"`
	BookmarkWeight float64 `json:"bookmark_weight"`
}

type MuteConfig struct {
	Handles  []string `json:"handles"`
	Keywords []string `json:"keywords"`
}

type AIConfig struct {
	Provider    string  `json:"provider"` // ollama, openai, claude, groq, lmstudio, vllm
	Model       string  `json:"model"`
	BaseUrl     string  `json:"base_url"`
	MaxTokens   int     `json:"max_tokens"`
	Temperature float64 `json:"temperature"`
}

type Secrets struct {
	CookiesFile     string   `json:"cookies_file"`
	ApiKeys         []string `json:"api_keys"`
	MetricsAuth     string   `json:"metrics_auth"`
	OpenAiApiKey    string   `json:"openai_api_key"`
	AnthropicApiKey string   `json:"anthropic_api_key"`
}

// ConfigPath is where the active config file lives; the dashboard's
// save-config handler writes back to the same place.
func ConfigPath() string {
	cfgPath := os.Getenv(configVarName)
	if len(cfgPath) == 0 {
		cfgPath = devConfigPath
	}
	return cfgPath
}

func LoadConfig() *Config {

	secretsPath := os.Getenv(secretsVarName)
	if len(secretsPath) == 0 {
		secretsPath = devSecretsPath
	}

	// Read config file
	var config Config
	mustDeserializeFile(ConfigPath(), &config)
	// Read secrets member from secrets file
	mustDeserializeFile(secretsPath, &config.Secrets)
	config.applyDefaults()
	return &config
}

// SaveConfig writes the config back as plain JSON. Comments in a hand-edited
// JSONC file do not survive a save from the dashboard.
func SaveConfig(cfg *Config) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	return os.WriteFile(ConfigPath(), data, 0644)
}

// Zero means "not set" for these; the dev config files say so too.
func (cfg *Config) applyDefaults() {
	if cfg.PlatformHost == "" {
		cfg.PlatformHost = "x.com"
	}
	if cfg.PostsPerList == 0 {
		cfg.PostsPerList = 40
	}
	if cfg.ProfileMaxLists == 0 {
		cfg.ProfileMaxLists = 100
	}
	if cfg.Engagement.QuoteWeight == 0 {
		cfg.Engagement.QuoteWeight = 1.0
	}
	if cfg.Engagement.BookmarkWeight == 0 {
		cfg.Engagement.BookmarkWeight = 1.0
	}
	if cfg.PreviewFetches == 0 {
		cfg.PreviewFetches = 5
	}
	if cfg.AI.MaxTokens == 0 {
		cfg.AI.MaxTokens = 2000
	}
}

func mustDeserializeFile[T any](fileName string, obj *T) {
	var err error
	var cfgJson []byte
	cfgJson, err = os.ReadFile(fileName)
	if err != nil {
		log.Fatal(err)
	}
	// JSONC => JSON
	cfgJson, err = standardizeJSON(cfgJson)
	if err != nil {
		log.Fatal(err)
	}
	// Parse
	if err := json.Unmarshal(cfgJson, obj); err != nil {
		log.Fatal(err)
	}
}

func standardizeJSON(b []byte) ([]byte, error) {
	ast, err := hujson.Parse(b)
	if err != nil {
		return b, err
	}
	ast.Standardize()
	return ast.Pack(), nil
}
