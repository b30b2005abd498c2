package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultLangflowHost   = "https://api.langflow.astra.datastax.com"
	defaultLangflowFlowID = "91954a34-0dae-4efc-b4e5-126a96e680e3"
	defaultLangflowRunID  = "fa11ba0e-a170-455a-9e0f-468acbe38ec1"
	defaultFrontendOrigin = "https://semantic-supermind-assignment.netlify.app"

	// TokenEnvKey holds the Langflow service-account credential.
	TokenEnvKey = "APPLICATION_TOKEN"
)

type Config struct {
	// Server
	Port string
	Env  string

	// Langflow
	LangflowHost    string
	LangflowFlowID  string
	LangflowRunID   string
	LangflowTimeout time.Duration
	DefaultInput    string

	// CORS
	AllowedOrigins []string

	// Logging
	LogLevel  string
	LogFormat string
	LogFile   string
}

func Load() *Config {
	// Load .env file if it exists
	godotenv.Load()

	// The token is read again on every relay call; this only fails fast at boot.
	mustGetEnv(TokenEnvKey)

	cfg := &Config{
		Port:            getEnvOrDefault("PORT", "3000"),
		Env:             getEnvOrDefault("ENV", "development"),
		LangflowHost:    getEnvOrDefault("LANGFLOW_HOST", defaultLangflowHost),
		LangflowFlowID:  getEnvOrDefault("LANGFLOW_FLOW_ID", defaultLangflowFlowID),
		LangflowRunID:   getEnvOrDefault("LANGFLOW_RUN_ID", defaultLangflowRunID),
		LangflowTimeout: time.Duration(getEnvAsIntOrDefault("LANGFLOW_TIMEOUT_SECONDS", 30)) * time.Second,
		DefaultInput:    getEnvOrDefault("RELAY_DEFAULT_INPUT", "Summarize data"),
		AllowedOrigins:  splitList(getEnvOrDefault("CORS_ALLOWED_ORIGINS", defaultFrontendOrigin)),
		LogLevel:        getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:       getEnvOrDefault("LOG_FORMAT", "console"),
		LogFile:         getEnvOrDefault("LOG_FILE", ""),
	}

	return cfg
}

// LangflowURL is the run endpoint of the configured flow, non-streaming.
func (c *Config) LangflowURL() string {
	host := strings.TrimRight(strings.TrimSpace(c.LangflowHost), "/")
	if host == "" {
		host = defaultLangflowHost
	}
	return fmt.Sprintf("%s/lf/%s/api/v1/run/%s?stream=false",
		host,
		url.PathEscape(c.LangflowFlowID),
		url.PathEscape(c.LangflowRunID),
	)
}

// TokenFromEnv returns a token source that looks the key up each time it is
// called, so a rotated credential is picked up without a restart.
func TokenFromEnv(key string) func() (string, error) {
	return func() (string, error) {
		val := strings.TrimSpace(os.Getenv(key))
		if val == "" {
			return "", fmt.Errorf("environment variable %s is not set", key)
		}
		return val, nil
	}
}

func mustGetEnv(key string) string {
	val := os.Getenv(key)
	if val == "" {
		panic(fmt.Sprintf("required environment variable %s is not set", key))
	}
	return val
}

func getEnvOrDefault(key, defaultVal string) string {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func getEnvAsIntOrDefault(key string, defaultVal int) int {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	n, err := strconv.Atoi(val)
	if err != nil || n <= 0 {
		return defaultVal
	}
	return n
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
