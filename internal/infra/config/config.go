package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"homework_status_bot/internal/domain/failure"
	"homework_status_bot/internal/domain/telegram"
)

const (
	DefaultEndpoint       = "https://practicum.yandex.ru/api/user_api/homework_statuses/"
	DefaultPollInterval   = 600 * time.Second
	DefaultRequestTimeout = 30 * time.Second
)

// AppConfig holds all configuration for the application
type AppConfig struct {
	PracticumToken string
	TelegramToken  string
	TelegramChatID telegram.Chat // Numeric chat id or @channel username

	Endpoint        string
	PollInterval    time.Duration
	PollCronSpec    string // Overrides PollInterval when set, standard 5-field cron syntax
	RequestTimeout  time.Duration
	InitialFromDate int64

	LogLevel    string
	Environment string
	LogFile     string // Optional, log lines are also appended here

	DatabaseURL string // Optional, enables the delivery journal
}

// MissingConfigError lists every required variable that was not set.
type MissingConfigError struct {
	Names []string
}

func (e *MissingConfigError) Error() string {
	return fmt.Sprintf("required environment variables are not set: %s", strings.Join(e.Names, ", "))
}

func (e *MissingConfigError) Unwrap() error { return failure.ErrFatal }

// Load reads configuration from environment variables and .env file (if present).
// Required secrets are not checked here, see Validate.
func Load() (*AppConfig, error) {
	// godotenv.Load will not override existing env variables.
	_ = godotenv.Load()

	cfg := &AppConfig{}
	var err error

	cfg.PracticumToken = strings.TrimSpace(os.Getenv("PRACTICUM_TOKEN"))
	cfg.TelegramToken = strings.TrimSpace(os.Getenv("TELEGRAM_TOKEN"))

	if chatIDStr := strings.TrimSpace(os.Getenv("TELEGRAM_CHAT_ID")); chatIDStr != "" {
		cfg.TelegramChatID, err = telegram.ParseChat(chatIDStr)
		if err != nil {
			return nil, fmt.Errorf("invalid TELEGRAM_CHAT_ID: %w", err)
		}
	}

	cfg.Endpoint = os.Getenv("PRACTICUM_ENDPOINT")
	if cfg.Endpoint == "" {
		cfg.Endpoint = DefaultEndpoint
	}

	cfg.PollInterval, err = secondsFromEnv("RETRY_PERIOD", DefaultPollInterval)
	if err != nil {
		return nil, err
	}
	cfg.PollCronSpec = strings.TrimSpace(os.Getenv("POLL_CRON_SPEC"))

	cfg.RequestTimeout, err = secondsFromEnv("REQUEST_TIMEOUT", DefaultRequestTimeout)
	if err != nil {
		return nil, err
	}

	if fromDateStr := os.Getenv("FROM_DATE"); fromDateStr != "" {
		cfg.InitialFromDate, err = strconv.ParseInt(fromDateStr, 10, 64)
		if err != nil || cfg.InitialFromDate < 0 {
			return nil, fmt.Errorf("invalid FROM_DATE %q: expected seconds since epoch", fromDateStr)
		}
	}

	cfg.LogLevel = strings.ToLower(os.Getenv("LOG_LEVEL"))
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info" // Default log level
	}

	cfg.Environment = strings.ToLower(os.Getenv("ENVIRONMENT"))
	if cfg.Environment == "" {
		cfg.Environment = "development" // Default environment
	}

	cfg.LogFile = os.Getenv("LOG_FILE")
	cfg.DatabaseURL = os.Getenv("DATABASE_URL")

	return cfg, nil
}

// Validate reports the required secrets that are missing.
func (c *AppConfig) Validate() error {
	var missing []string
	if c.PracticumToken == "" {
		missing = append(missing, "PRACTICUM_TOKEN")
	}
	if c.TelegramToken == "" {
		missing = append(missing, "TELEGRAM_TOKEN")
	}
	if c.TelegramChatID == "" {
		missing = append(missing, "TELEGRAM_CHAT_ID")
	}
	if len(missing) > 0 {
		return &MissingConfigError{Names: missing}
	}
	return nil
}

func secondsFromEnv(name string, fallback time.Duration) (time.Duration, error) {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return fallback, nil
	}
	seconds, err := strconv.Atoi(raw)
	if err != nil || seconds <= 0 {
		return 0, fmt.Errorf("invalid %s %q: expected a positive number of seconds", name, raw)
	}
	return time.Duration(seconds) * time.Second, nil
}
