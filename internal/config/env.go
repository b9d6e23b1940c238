package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

type Env struct {
	APIBaseURL   string
	StateDir     string
	HTTPTimeout  time.Duration
	MockAddr     string
	MockJWTKey   string
	GinMode      string
	BadgePeriod  time.Duration
	DefaultLimit int
}

func LoadEnv() Env {
	baseURL := strings.TrimSpace(os.Getenv("API_BASE_URL"))
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}
	baseURL = strings.TrimRight(baseURL, "/")

	stateDir := strings.TrimSpace(os.Getenv("STATE_DIR"))
	if stateDir == "" {
		if dir, err := os.UserConfigDir(); err == nil {
			stateDir = filepath.Join(dir, "backoffice")
		} else {
			stateDir = ".backoffice"
		}
	}

	mockAddr := strings.TrimSpace(os.Getenv("MOCK_ADDR"))
	if mockAddr == "" {
		mockAddr = ":8080"
	}

	mockKey := strings.TrimSpace(os.Getenv("MOCK_JWT_KEY"))
	if mockKey == "" {
		mockKey = "mock-secret-key-change-me"
	}

	return Env{
		APIBaseURL:   baseURL,
		StateDir:     stateDir,
		HTTPTimeout:  durationEnv("HTTP_TIMEOUT_SECONDS", 30*time.Second),
		MockAddr:     mockAddr,
		MockJWTKey:   mockKey,
		GinMode:      strings.TrimSpace(os.Getenv("GIN_MODE")),
		BadgePeriod:  durationEnv("BADGE_REFRESH_SECONDS", 30*time.Second),
		DefaultLimit: intEnv("DEFAULT_PAGE_SIZE", 20),
	}
}

func durationEnv(key string, fallback time.Duration) time.Duration {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}
	secs, err := strconv.Atoi(raw)
	if err != nil || secs <= 0 {
		return fallback
	}
	return time.Duration(secs) * time.Second
}

func intEnv(key string, fallback int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}
