package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
)

const (
	DefaultModel       = "llama-3.3-70b-versatile"
	DefaultTemperature = 0.7
	DefaultPort        = "8000"
)

// Config is resolved once at process start and handed to constructors.
type Config struct {
	Server ServerConfig
	LLM    LLMConfig
}

type ServerConfig struct {
	Addr string
}

type LLMConfig struct {
	// APIKey is the bearer credential. When empty, APIKeyParam names the SSM
	// parameter it is read from.
	APIKey      string
	APIKeyParam string
	// BaseURL of zero value selects the completion client's default endpoint.
	BaseURL     string
	Model       string
	Temperature float64
	// MaxTokens of zero leaves the completion length to the upstream.
	MaxTokens int
}

// Load reads the configuration from the process environment.
func Load() (Config, error) {
	server, err := loadServerConfig()
	if err != nil {
		return Config{}, err
	}
	llm, err := loadLLMConfig()
	if err != nil {
		return Config{}, err
	}
	return Config{Server: server, LLM: llm}, nil
}

func loadServerConfig() (ServerConfig, error) {
	port := strings.TrimSpace(os.Getenv("PORT"))
	if port == "" {
		port = DefaultPort
	}
	if strings.Contains(port, ":") {
		// "host:port" and ":port" are taken as is.
		return ServerConfig{Addr: port}, nil
	}
	if _, err := strconv.Atoi(port); err != nil {
		return ServerConfig{}, fmt.Errorf("config: invalid PORT value: %q", port)
	}
	return ServerConfig{Addr: ":" + port}, nil
}

func loadLLMConfig() (LLMConfig, error) {
	c := LLMConfig{
		APIKey:      strings.TrimSpace(os.Getenv("GROQ_API_KEY")),
		APIKeyParam: strings.TrimSpace(os.Getenv("GROQ_API_KEY_PARAM")),
		BaseURL:     strings.TrimSpace(os.Getenv("LLM_BASE_URL")),
		Model:       envString("LLM_MODEL", DefaultModel),
		Temperature: DefaultTemperature,
	}
	if c.APIKey == "" && c.APIKeyParam == "" {
		return LLMConfig{}, errors.New("config: GROQ_API_KEY is not set (set it or GROQ_API_KEY_PARAM)")
	}

	if v := strings.TrimSpace(os.Getenv("LLM_TEMPERATURE")); v != "" {
		t, err := strconv.ParseFloat(v, 64)
		if err != nil || t < 0 || t > 2 {
			return LLMConfig{}, fmt.Errorf("config: invalid LLM_TEMPERATURE value: %q", v)
		}
		c.Temperature = t
	}
	if v := strings.TrimSpace(os.Getenv("LLM_MAX_TOKENS")); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return LLMConfig{}, fmt.Errorf("config: invalid LLM_MAX_TOKENS value: %q", v)
		}
		c.MaxTokens = n
	}
	return c, nil
}

func envString(key, def string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	return v
}
