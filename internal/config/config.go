package config

import (
	"os"
	"strings"
)

const (
	EnvDevelopment = "development"

	defaultAddr    = ":8080"
	defaultBaseURL = "https://gift-quiz-server.com"
)

// Config carries the handful of settings the service reads from the
// environment. Everything has a default; nothing is required.
type Config struct {
	Env       string
	Addr      string
	BaseURL   string
	StorePath string
	LogMode   string
}

func Load() Config {
	return Config{
		Env:       getEnv("APP_ENV", EnvDevelopment),
		Addr:      getEnv("ADDR", defaultAddr),
		BaseURL:   getEnv("BASE_URL", defaultBaseURL),
		StorePath: getEnv("STORE_PATH", ""),
		LogMode:   getEnv("LOG_MODE", EnvDevelopment),
	}
}

func (c Config) IsDevelopment() bool {
	return strings.EqualFold(c.Env, EnvDevelopment)
}

// PublicBaseURL resolves the base used in generated shareable links. In
// development that is always the local listen address; deployed mode uses
// the configured public URL.
func (c Config) PublicBaseURL(addr string) string {
	if !c.IsDevelopment() {
		return strings.TrimRight(c.BaseURL, "/")
	}
	if strings.HasPrefix(addr, ":") {
		return "http://127.0.0.1" + addr
	}
	return "http://" + addr
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && strings.TrimSpace(value) != "" {
		return value
	}
	return defaultValue
}
