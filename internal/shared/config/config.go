package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds application configuration.
type Config struct {
	Port            string
	Env             string
	CORSAllowOrigin []string

	DatabaseURL string

	RedisAddr         string
	RedisPassword     string
	JobsRedisAddr     string
	JobsRedisPassword string

	GeminiAPIKey string
	GeminiModel  string
	OpenAIAPIKey string
	OpenAIModel  string

	AWSRegion      string
	SQSQueueURL    string
	JobsTriggerURL string
	JobsFreshness  time.Duration
	JobsCacheTTL   time.Duration

	CognitoClientID     string
	CognitoClientSecret string
	CognitoDomain       string
	CognitoRedirectURL  string
	CognitoLogoutURL    string
	UIRedirectURL       string
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	// Best-effort load of local env files for dev convenience.
	loadEnvFiles(".env", "cmd/.env")

	env := normalizeEnv(getEnv("ENV", "dev"))
	dbURL := os.Getenv("DATABASE_URL")

	if env == "production" && dbURL == "" {
		log.Printf("DATABASE_URL is required in production")
	}

	return Config{
		Port:            getEnv("PORT", "8080"),
		Env:             env,
		CORSAllowOrigin: splitAndTrim(getEnv("CORS_ALLOW_ORIGINS", "http://localhost:5173")),

		DatabaseURL: dbURL,

		RedisAddr:         getEnv("REDIS_ADDR", ""),
		RedisPassword:     getEnv("REDIS_PASSWORD", ""),
		JobsRedisAddr:     getEnv("JOBS_REDIS_ADDR", ""),
		JobsRedisPassword: getEnv("JOBS_REDIS_PASSWORD", ""),

		GeminiAPIKey: getEnv("GOOGLE_API_KEY", ""),
		GeminiModel:  getEnv("GEMINI_MODEL", "gemini-pro"),
		OpenAIAPIKey: getEnv("OPENAI_API_KEY", ""),
		OpenAIModel:  getEnv("OPENAI_MODEL", "gpt-3.5-turbo"),

		AWSRegion:      getEnv("AWS_REGION", "us-east-1"),
		SQSQueueURL:    getEnv("SQS_QUEUE_URL", ""),
		JobsTriggerURL: getEnv("JOBS_TRIGGER_URL", ""),
		JobsFreshness:  getEnvDuration("JOBS_FRESHNESS", time.Hour),
		JobsCacheTTL:   getEnvDuration("JOBS_CACHE_TTL", time.Hour),

		CognitoClientID:     getEnv("COGNITO_CLIENT_ID", ""),
		CognitoClientSecret: getEnv("COGNITO_CLIENT_SECRET", ""),
		CognitoDomain:       getEnv("COGNITO_DOMAIN", ""),
		CognitoRedirectURL:  getEnv("COGNITO_REDIRECT_URL", ""),
		CognitoLogoutURL:    getEnv("COGNITO_LOGOUT_URL", ""),
		UIRedirectURL:       getEnv("UI_REDIRECT_URL", ""),
	}
}

func getEnv(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	if parsed, err := time.ParseDuration(raw); err == nil && parsed > 0 {
		return parsed
	}
	// Bare integers are read as seconds for operator convenience.
	if secs, err := strconv.Atoi(raw); err == nil && secs > 0 {
		return time.Duration(secs) * time.Second
	}
	log.Printf("config %s invalid duration %q, using default %s", key, raw, def)
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
	case "local":
		return "local"
	case "development", "dev":
		return "dev"
	default:
		return "dev"
	}
}
