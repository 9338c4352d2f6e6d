package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DefaultBaseURL        = "https://generativelanguage.googleapis.com/"
	DefaultModel          = "gemini-2.0-flash"
	DefaultTimeoutSeconds = 30

	BackendREST = "rest"
	BackendADK  = "adk"
)

// Config agrupa tudo que o chat e o servidor mock precisam.
// É montada uma única vez no main e passada explicitamente aos construtores.
type Config struct {
	// Gemini API
	APIKey         string
	CABundlePath   string
	BaseURL        string
	Model          string
	EndpointURL    string
	TimeoutSeconds int

	// Chat
	Backend string
	Debug   bool

	// Mock server
	MockAddr string
}

// Load carrega o .env (se existir) e lê as variáveis de ambiente.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found or could not be loaded")
	}

	baseURL := getEnvOrDefault("GEMINI_BASE_URL", DefaultBaseURL)
	modelName := getEnvOrDefault("GEMINI_MODEL", DefaultModel)

	cfg := &Config{
		APIKey:         firstEnv("GEMINI_API_KEY", "GOOGLE_API_KEY"),
		CABundlePath:   os.Getenv("GEMINI_CA_BUNDLE"),
		BaseURL:        baseURL,
		Model:          modelName,
		EndpointURL:    getEnvOrDefault("GEMINI_ENDPOINT_URL", BuildEndpointURL(baseURL, modelName)),
		TimeoutSeconds: getEnvAsIntOrDefault("GEMINI_TIMEOUT_SECONDS", DefaultTimeoutSeconds),
		Backend:        strings.ToLower(getEnvOrDefault("CHAT_BACKEND", BackendREST)),
		Debug:          getEnvAsBoolOrDefault("CHAT_DEBUG", false),
		MockAddr:       getEnvOrDefault("MOCK_ADDR", ":8080"),
	}

	return cfg
}

// Validate confere os campos exigidos pelo cliente de chat.
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("GEMINI_API_KEY is not set")
	}
	if c.EndpointURL == "" {
		return fmt.Errorf("GEMINI_ENDPOINT_URL is empty")
	}
	if c.TimeoutSeconds <= 0 {
		return fmt.Errorf("GEMINI_TIMEOUT_SECONDS must be positive, got %d", c.TimeoutSeconds)
	}
	switch c.Backend {
	case BackendREST, BackendADK:
	default:
		return fmt.Errorf("unknown CHAT_BACKEND %q (want %q or %q)", c.Backend, BackendREST, BackendADK)
	}
	return nil
}

// Timeout é o timeout fixo de cada requisição.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// BuildEndpointURL monta a URL do generateContent para um modelo.
func BuildEndpointURL(baseURL, modelName string) string {
	return strings.TrimRight(baseURL, "/") + "/v1beta/models/" + modelName + ":generateContent"
}

func firstEnv(keys ...string) string {
	for _, key := range keys {
		if val := os.Getenv(key); val != "" {
			return val
		}
	}
	return ""
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
	if err != nil {
		return defaultVal
	}
	return n
}

func getEnvAsBoolOrDefault(key string, defaultVal bool) bool {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	b, err := strconv.ParseBool(val)
	if err != nil {
		return defaultVal
	}
	return b
}
