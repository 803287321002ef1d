package config_test

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"homework_status_bot/internal/domain/failure"
	"homework_status_bot/internal/infra/config"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, name := range []string{
		"PRACTICUM_TOKEN", "TELEGRAM_TOKEN", "TELEGRAM_CHAT_ID", "PRACTICUM_ENDPOINT",
		"RETRY_PERIOD", "POLL_CRON_SPEC", "REQUEST_TIMEOUT", "FROM_DATE",
		"LOG_LEVEL", "ENVIRONMENT", "LOG_FILE", "DATABASE_URL",
	} {
		t.Setenv(name, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("PRACTICUM_TOKEN", "p-token")
	t.Setenv("TELEGRAM_TOKEN", "t-token")
	t.Setenv("TELEGRAM_CHAT_ID", "-100123")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate returned error: %v", err)
	}
	if cfg.TelegramChatID != "-100123" {
		t.Fatalf("unexpected chat id: %q", cfg.TelegramChatID)
	}
	if cfg.Endpoint != config.DefaultEndpoint {
		t.Fatalf("unexpected endpoint: %q", cfg.Endpoint)
	}
	if cfg.PollInterval != 600*time.Second {
		t.Fatalf("unexpected poll interval: %s", cfg.PollInterval)
	}
	if cfg.RequestTimeout != config.DefaultRequestTimeout {
		t.Fatalf("unexpected request timeout: %s", cfg.RequestTimeout)
	}
	if cfg.InitialFromDate != 0 {
		t.Fatalf("expected cursor to start at 0, got %d", cfg.InitialFromDate)
	}
	if cfg.LogLevel != "info" || cfg.Environment != "development" {
		t.Fatalf("unexpected log defaults: %q %q", cfg.LogLevel, cfg.Environment)
	}
	if cfg.DatabaseURL != "" || cfg.LogFile != "" || cfg.PollCronSpec != "" {
		t.Fatalf("expected optional settings to be empty: %+v", cfg)
	}
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("RETRY_PERIOD", "30")
	t.Setenv("REQUEST_TIMEOUT", "5")
	t.Setenv("FROM_DATE", "1700000000")
	t.Setenv("POLL_CRON_SPEC", "*/10 * * * *")
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("ENVIRONMENT", "Production")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.PollInterval != 30*time.Second || cfg.RequestTimeout != 5*time.Second {
		t.Fatalf("unexpected durations: %s %s", cfg.PollInterval, cfg.RequestTimeout)
	}
	if cfg.InitialFromDate != 1700000000 {
		t.Fatalf("unexpected from date: %d", cfg.InitialFromDate)
	}
	if cfg.PollCronSpec != "*/10 * * * *" {
		t.Fatalf("unexpected cron spec: %q", cfg.PollCronSpec)
	}
	if cfg.LogLevel != "debug" || cfg.Environment != "production" {
		t.Fatalf("expected lower-cased values, got %q %q", cfg.LogLevel, cfg.Environment)
	}
}

func TestLoadAcceptsChannelUsername(t *testing.T) {
	clearEnv(t)
	t.Setenv("TELEGRAM_CHAT_ID", " @homework_channel ")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.TelegramChatID != "@homework_channel" {
		t.Fatalf("unexpected chat: %q", cfg.TelegramChatID)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	cases := map[string]string{
		"TELEGRAM_CHAT_ID": "channel",
		"RETRY_PERIOD":     "0",
		"REQUEST_TIMEOUT":  "soon",
		"FROM_DATE":        "-5",
	}
	for name, value := range cases {
		t.Run(name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(name, value)
			if _, err := config.Load(); err == nil {
				t.Fatalf("expected error for %s=%q", name, value)
			}
		})
	}
}

func TestValidateListsEveryMissingSecret(t *testing.T) {
	clearEnv(t)
	t.Setenv("TELEGRAM_TOKEN", "t-token")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	err = cfg.Validate()

	var missing *config.MissingConfigError
	if !errors.As(err, &missing) {
		t.Fatalf("expected MissingConfigError, got %v", err)
	}
	want := []string{"PRACTICUM_TOKEN", "TELEGRAM_CHAT_ID"}
	if !reflect.DeepEqual(missing.Names, want) {
		t.Fatalf("got %v want %v", missing.Names, want)
	}
	if failure.KindOf(err) != failure.KindFatal {
		t.Fatalf("expected fatal kind, got %s", failure.KindOf(err))
	}
}
