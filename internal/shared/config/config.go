package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds application configuration.
type Config struct {
	Port             string
	Env              string
	CORSAllowOrigin  []string
	DeepSeekAPIKey   string
	DeepSeekBaseURL  string
	LLMModel         string
	StorageFile      string
	LegacyResumeFile string
	DatabaseURL      string
	BaseURL          string
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	// Best-effort load of local env files for dev convenience.
	_ = godotenv.Load(".env")

	return Config{
		Port:             getEnv("PORT", "8080"),
		Env:              normalizeEnv(getEnv("ENV", "dev")),
		CORSAllowOrigin:  splitAndTrim(getEnv("CORS_ALLOW_ORIGINS", "http://localhost:3000")),
		DeepSeekAPIKey:   os.Getenv("DEEPSEEK_API_KEY"),
		DeepSeekBaseURL:  getEnv("DEEPSEEK_BASE_URL", "https://api.deepseek.com"),
		LLMModel:         getEnv("LLM_MODEL", "deepseek-chat"),
		StorageFile:      getEnv("STORAGE_FILE", ".temp-storage/reports.json"),
		LegacyResumeFile: getEnv("LEGACY_RESUME_FILE", ".temp-storage/resumes.json"),
		DatabaseURL:      os.Getenv("DATABASE_URL"),
		BaseURL:          getEnv("BASE_URL", ""),
	}
}

// HasPlausibleAPIKey reports whether the provider key is present and not
// obviously truncated. Proxy requests fail closed when this is false.
func (c Config) HasPlausibleAPIKey() bool {
	return len(strings.TrimSpace(c.DeepSeekAPIKey)) >= 10
}

func getEnv(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

func splitAndTrim(raw string) []string {
	parts := strings.Split(raw, ",")
	var out []string
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func normalizeEnv(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "production", "prod":
		return "production"
	case "staging":
		return "staging"
	case "development", "dev":
		return "dev"
	default:
		return "dev"
	}
}
