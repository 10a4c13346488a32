package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"
)

const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"

	defaultGeminiModel = "gemini-2.5-flash"

	EnvDev        = "dev"
	EnvLocal      = "local"
	EnvStaging    = "staging"
	EnvProduction = "production"

	StoreLocal = "local"
	StoreS3    = "s3"
)

// ErrMissingAPIKey is returned when the selected model provider has no credential.
var ErrMissingAPIKey = errors.New("missing model API key")

// Config holds application configuration.
type Config struct {
	Port               string
	Env                string
	CORSAllowOrigin    []string
	LLMProvider        string
	LLMModel           string
	GoogleAPIKey       string
	OpenAIAPIKey       string
	ObjectStoreType    string
	LocalStoreDir      string
	AWSRegion          string
	S3Bucket           string
	S3Prefix           string
	SSEKMSKeyID        string
	ValkeyURL          string
	ValkeyPassword     string
	GeneratedResumeTTL time.Duration
	LogoPath           string
}

// Load reads configuration from environment variables with sensible defaults.
// It fails when the credential for the selected model provider is absent.
func Load() (Config, error) {
	// Best-effort load of local env files for dev convenience.
	loadEnvFiles(".env", "cmd/.env")

	cfg := Config{
		Port:               getEnv("PORT", "8080"),
		Env:                normalizeEnv(getEnv("ENV", EnvDev)),
		CORSAllowOrigin:    splitAndTrim(getEnv("CORS_ALLOW_ORIGINS", "http://localhost:5173")),
		LLMProvider:        normalizeProvider(getEnv("LLM_PROVIDER", ProviderGemini)),
		LLMModel:           getEnv("LLM_MODEL", ""),
		GoogleAPIKey:       strings.TrimSpace(os.Getenv("GOOGLE_API_KEY")),
		OpenAIAPIKey:       strings.TrimSpace(os.Getenv("OPENAI_API_KEY")),
		ObjectStoreType:    normalizeStoreType(getEnv("OBJECT_STORE", StoreLocal)),
		LocalStoreDir:      getEnv("LOCAL_STORE_DIR", "./data"),
		AWSRegion:          getEnv("AWS_REGION", ""),
		S3Bucket:           getEnv("S3_BUCKET", ""),
		S3Prefix:           getEnv("S3_PREFIX", ""),
		SSEKMSKeyID:        getEnv("SSE_KMS_KEY_ID", ""),
		ValkeyURL:          getEnv("VALKEY_URL", ""),
		ValkeyPassword:     getEnv("VALKEY_PASSWORD", ""),
		GeneratedResumeTTL: getEnvDuration("GENERATED_RESUME_TTL", time.Hour),
		LogoPath:           getEnv("LOGO_PATH", ""),
	}
	if cfg.LLMProvider == ProviderGemini && cfg.LLMModel == "" {
		cfg.LLMModel = defaultGeminiModel
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the settings that must be present before serving traffic.
func (c Config) Validate() error {
	switch c.LLMProvider {
	case ProviderGemini:
		if c.GoogleAPIKey == "" {
			return fmt.Errorf("GOOGLE_API_KEY is required for provider %s: %w", c.LLMProvider, ErrMissingAPIKey)
		}
	case ProviderOpenAI:
		if c.OpenAIAPIKey == "" {
			return fmt.Errorf("OPENAI_API_KEY is required for provider %s: %w", c.LLMProvider, ErrMissingAPIKey)
		}
		if strings.TrimSpace(c.LLMModel) == "" {
			return fmt.Errorf("LLM_MODEL is required for provider %s", c.LLMProvider)
		}
	default:
		return fmt.Errorf("unsupported LLM_PROVIDER: %s", c.LLMProvider)
	}
	if c.ObjectStoreType == StoreS3 && strings.TrimSpace(c.S3Bucket) == "" {
		return fmt.Errorf("OBJECT_STORE=s3 requires S3_BUCKET")
	}
	return nil
}

// APIKey returns the credential of the selected provider.
func (c Config) APIKey() string {
	if c.LLMProvider == ProviderOpenAI {
		return c.OpenAIAPIKey
	}
	return c.GoogleAPIKey
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
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		return def
	}
	return d
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
		return EnvProduction
	case "staging":
		return EnvStaging
	case "local":
		return EnvLocal
	default:
		return EnvDev
	}
}

func normalizeProvider(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

func normalizeStoreType(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case StoreS3:
		return StoreS3
	default:
		return StoreLocal
	}
}
