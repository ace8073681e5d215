package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Voice memo specifics
	Database DatabaseConfig
	Storage  StorageConfig
	Player   PlayerConfig
	Things   ThingsConfig

	// Import pipeline
	Transcription TranscriptionConfig
	Import        ImportConfig

	// LLM Provider Abstraction
	LLM LLMConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port            int
	Mode            string
	APIToken        string
	RateLimitPerMin int
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type DatabaseConfig struct {
	Path string
}

// StorageConfig points at the directory holding the recorded audio files.
type StorageConfig struct {
	Dir string
}

type PlayerConfig struct {
	Path    string
	Args    []string
	MacOnly bool
}

type ThingsConfig struct {
	AppPath string
	Opener  string
}

// TranscriptionConfig configures the speech-to-text API.
type TranscriptionConfig struct {
	APIKey            string
	BaseURL           string
	Model             string
	Language          string
	Prompt            string
	Timeout           string
	RequestsPerMinute int
}

type ImportConfig struct {
	Extensions            []string
	TranscribeConcurrency int
	LabelConcurrency      int
	Categories            []string
	WatchDebounce         string
}

// LLMConfig holds configuration for the LLM provider abstraction layer
type LLMConfig struct {
	Providers       []ProviderConfig `yaml:"providers"`
	FallbackEnabled bool             `yaml:"fallback_enabled"`
	RetryAttempts   int              `yaml:"retry_attempts"`
	RetryDelay      string           `yaml:"retry_delay"`
	MaxTotalTimeout string           `yaml:"max_total_timeout"`
}

// ProviderConfig holds configuration for a single LLM provider
type ProviderConfig struct {
	Name     string `yaml:"name"`
	Enabled  bool   `yaml:"enabled"`
	Priority int    `yaml:"priority"`
	APIKey   string `yaml:"api_key"`
	BaseURL  string `yaml:"base_url,omitempty"`
	Model    string `yaml:"model"`
	Timeout  string `yaml:"timeout"`
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/voice-memos/
// CONFIG_PATH, when set, points at an explicit file.
func Load() (*Config, error) {
	v := viper.New()
	if path := os.Getenv("CONFIG_PATH"); path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./config")
		v.AddConfigPath(".")
		v.AddConfigPath("/etc/voice-memos/")
	}

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	return build(v)
}

func build(v *viper.Viper) (*Config, error) {
	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = v.GetString("environment.name")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.HTTPServer.APIToken = v.GetString("http_server.api_token")
	cfg.HTTPServer.RateLimitPerMin = v.GetInt("http_server.rate_limit_per_min")
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")

	// Database and audio storage. MEMOS_DB / VOICE_MEMOS_STORAGE are the
	// variable names used by existing .env files.
	cfg.Database.Path = v.GetString("database.path")
	if dbPath := v.GetString("memos_db"); dbPath != "" {
		cfg.Database.Path = dbPath
	}
	cfg.Storage.Dir = v.GetString("storage.dir")
	if dir := v.GetString("voice_memos_storage"); dir != "" {
		cfg.Storage.Dir = dir
	}

	cfg.Player.Path = v.GetString("player.path")
	cfg.Player.Args = v.GetStringSlice("player.args")
	cfg.Player.MacOnly = v.GetBool("player.mac_only")

	cfg.Things.AppPath = v.GetString("things.app_path")
	cfg.Things.Opener = v.GetString("things.opener")

	// Transcription
	cfg.Transcription.APIKey = expandEnvVar(v, v.GetString("transcription.api_key"))
	if key := v.GetString("openai_api_key"); key != "" && cfg.Transcription.APIKey == "" {
		cfg.Transcription.APIKey = key
	}
	cfg.Transcription.BaseURL = v.GetString("transcription.base_url")
	cfg.Transcription.Model = v.GetString("transcription.model")
	cfg.Transcription.Language = v.GetString("transcription.language")
	cfg.Transcription.Prompt = v.GetString("transcription.prompt")
	cfg.Transcription.Timeout = v.GetString("transcription.timeout")
	cfg.Transcription.RequestsPerMinute = v.GetInt("transcription.requests_per_minute")

	// Import
	cfg.Import.Extensions = splitList(v.GetStringSlice("import.extensions"))
	cfg.Import.TranscribeConcurrency = v.GetInt("import.transcribe_concurrency")
	cfg.Import.LabelConcurrency = v.GetInt("import.label_concurrency")
	cfg.Import.Categories = splitList(v.GetStringSlice("import.categories"))
	cfg.Import.WatchDebounce = v.GetString("import.watch_debounce")

	// LLM Provider Abstraction
	cfg.LLM.FallbackEnabled = v.GetBool("llm.fallback_enabled")
	cfg.LLM.RetryAttempts = v.GetInt("llm.retry_attempts")
	cfg.LLM.RetryDelay = v.GetString("llm.retry_delay")
	cfg.LLM.MaxTotalTimeout = v.GetString("llm.max_total_timeout")

	if v.IsSet("llm.providers") {
		providersRaw := v.Get("llm.providers")
		if providersList, ok := providersRaw.([]interface{}); ok {
			for _, p := range providersList {
				if providerMap, ok := p.(map[string]interface{}); ok {
					cfg.LLM.Providers = append(cfg.LLM.Providers, ProviderConfig{
						Name:     getStringFromMap(providerMap, "name"),
						Enabled:  getBoolFromMap(providerMap, "enabled"),
						Priority: getIntFromMap(providerMap, "priority"),
						APIKey:   expandEnvVar(v, getStringFromMap(providerMap, "api_key")),
						BaseURL:  getStringFromMap(providerMap, "base_url"),
						Model:    getStringFromMap(providerMap, "model"),
						Timeout:  getStringFromMap(providerMap, "timeout"),
					})
				}
			}
		}
	}

	if cfg.Database.Path == "" {
		return nil, fmt.Errorf("database path is not configured - set database.path or MEMOS_DB")
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", "development")
	v.SetDefault("http_server.port", 8080)
	v.SetDefault("http_server.mode", "debug")
	v.SetDefault("http_server.rate_limit_per_min", 600)
	v.SetDefault("logger.level", "debug")
	v.SetDefault("logger.mode", "debug")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)

	v.SetDefault("player.path", "/Applications/VLC.app/Contents/MacOS/VLC")
	v.SetDefault("player.args", []string{"--play-and-exit"})
	v.SetDefault("player.mac_only", true)
	v.SetDefault("things.app_path", "/Applications/Things3.app")
	v.SetDefault("things.opener", "open")

	v.SetDefault("transcription.base_url", "https://api.openai.com/v1")
	v.SetDefault("transcription.model", "whisper-1")
	v.SetDefault("transcription.timeout", "5m")
	v.SetDefault("transcription.requests_per_minute", 50)

	v.SetDefault("import.extensions", []string{".m4a", ".mp3", ".wav", ".aac", ".ogg", ".flac", ".webm", ".mp4"})
	v.SetDefault("import.transcribe_concurrency", 3)
	v.SetDefault("import.label_concurrency", 5)
	v.SetDefault("import.watch_debounce", "2s")

	// LLM defaults
	v.SetDefault("llm.fallback_enabled", true)
	v.SetDefault("llm.retry_attempts", 3)
	v.SetDefault("llm.retry_delay", "1s")
	v.SetDefault("llm.max_total_timeout", "60s")
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(v *viper.Viper, value string) string {
	if value == "" {
		return value
	}

	if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		envVar := value[2 : len(value)-1]
		if envValue := v.GetString(envVar); envValue != "" {
			return envValue
		}
		if envValue := v.GetString(strings.ToLower(envVar)); envValue != "" {
			return envValue
		}
		if envValue := os.Getenv(envVar); envValue != "" {
			return envValue
		}
		return ""
	}

	return value
}

// splitList flattens comma separated entries; env vars arrive as a single string.
func splitList(in []string) []string {
	var out []string
	for _, item := range in {
		for _, part := range strings.Split(item, ",") {
			part = strings.TrimSpace(part)
			if part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

// ValidateLLM checks the provider section; the labelling pass needs at least one enabled provider.
func (c *Config) ValidateLLM() error {
	return validateLLMConfig(&c.LLM)
}

// validateLLMConfig validates the LLM configuration
func validateLLMConfig(cfg *LLMConfig) error {
	if len(cfg.Providers) == 0 {
		return fmt.Errorf("no LLM providers configured - please add llm.providers section to config.yaml")
	}

	enabledCount := 0
	priorityMap := make(map[int]bool)

	for i, provider := range cfg.Providers {
		if provider.Name == "" {
			return fmt.Errorf("provider %d: name is required", i)
		}
		if provider.Model == "" {
			return fmt.Errorf("provider %s: model is required", provider.Name)
		}

		if provider.Enabled {
			enabledCount++

			if provider.Priority <= 0 {
				return fmt.Errorf("provider %s: priority must be positive", provider.Name)
			}
			if priorityMap[provider.Priority] {
				return fmt.Errorf("provider %s: duplicate priority %d", provider.Name, provider.Priority)
			}
			priorityMap[provider.Priority] = true
		}
	}

	if enabledCount == 0 {
		return fmt.Errorf("no enabled LLM providers")
	}

	return nil
}

// Helper functions to safely extract values from map[string]interface{}
func getStringFromMap(m map[string]interface{}, key string) string {
	if val, ok := m[key]; ok {
		if str, ok := val.(string); ok {
			return str
		}
	}
	return ""
}

func getBoolFromMap(m map[string]interface{}, key string) bool {
	if val, ok := m[key]; ok {
		if b, ok := val.(bool); ok {
			return b
		}
	}
	return false
}

func getIntFromMap(m map[string]interface{}, key string) int {
	if val, ok := m[key]; ok {
		if i, ok := val.(int); ok {
			return i
		}
		// Handle float64 from JSON unmarshaling
		if f, ok := val.(float64); ok {
			return int(f)
		}
	}
	return 0
}
