package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	WebAddr string

	LogLevel string
	Debug    bool

	PreferIPv4 bool

	GeminiAPIKey        string
	GoogleCloudProject  string
	GoogleCloudLocation string
	ImageModel          string
	TextModel           string
	DemoImageURL        string

	MaxConcurrent  int
	RequestTimeout time.Duration
	HTTPTimeout    time.Duration
}

// Load reads configuration from the environment. Missing Gemini credentials
// are not an error: the service degrades to demo mode.
func Load() Config {
	cfg := Config{
		WebAddr:             strings.TrimSpace(getEnv("WEB_ADDR", ":8080")),
		LogLevel:            strings.ToLower(strings.TrimSpace(getEnv("LOG_LEVEL", "info"))),
		Debug:               getEnvBool("DEBUG", false),
		PreferIPv4:          getEnvBool("PREFER_IPV4", true),
		GeminiAPIKey:        strings.TrimSpace(os.Getenv("GEMINI_API_KEY")),
		GoogleCloudProject:  strings.TrimSpace(os.Getenv("GOOGLE_CLOUD_PROJECT")),
		GoogleCloudLocation: strings.TrimSpace(getEnv("GOOGLE_CLOUD_LOCATION", "us-central1")),
		ImageModel:          strings.TrimSpace(getEnv("GEMINI_IMAGE_MODEL", "gemini-2.5-flash-image")),
		TextModel:           strings.TrimSpace(getEnv("GEMINI_TEXT_MODEL", "gemini-2.0-flash")),
		DemoImageURL:        strings.TrimSpace(os.Getenv("DEMO_IMAGE_URL")),
		MaxConcurrent:       getEnvInt("MAX_CONCURRENT", 4),
		RequestTimeout:      time.Duration(getEnvInt("REQUEST_TIMEOUT_SECONDS", 60)) * time.Second,
		HTTPTimeout:         time.Duration(getEnvInt("HTTP_TIMEOUT_SECONDS", 90)) * time.Second,
	}

	if cfg.MaxConcurrent < 1 {
		cfg.MaxConcurrent = 1
	}
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = 60 * time.Second
	}
	if cfg.HTTPTimeout <= 0 {
		cfg.HTTPTimeout = 90 * time.Second
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvBool(key string, fallback bool) bool {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}
