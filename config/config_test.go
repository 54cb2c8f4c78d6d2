package config

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("AIRTABLE_API_KEY", "key-123")
	t.Setenv("AIRTABLE_BASE_ID", "app123")
	t.Setenv("TWILIO_ACCOUNT_SID", "AC123")
	t.Setenv("TWILIO_AUTH_TOKEN", "secret")
	t.Setenv("TWILIO_SENDING_PHONE_NUMBER", "+15550001111")
	t.Setenv("TWILIO_DEBUG_PHONE_NUMBER", "+15550002222")
}

func TestLoadFromEnv(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("AIRTABLE_TIMEOUT", "5s")
	t.Setenv("HTTP_SERVER_TRUSTED_PROXIES", "10.0.0.1 10.0.0.2")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Airtable.APIKey != "key-123" || cfg.Airtable.BaseID != "app123" {
		t.Errorf("airtable credentials not read from env: %+v", cfg.Airtable)
	}
	if cfg.Twilio.From != "+15550001111" || cfg.Twilio.To != "+15550002222" {
		t.Errorf("twilio numbers not read from env: %+v", cfg.Twilio)
	}
	if cfg.Airtable.Timeout != 5*time.Second {
		t.Errorf("expected airtable timeout override 5s, got %s", cfg.Airtable.Timeout)
	}
	if len(cfg.HTTPServer.TrustedProxies) != 2 || cfg.HTTPServer.TrustedProxies[0] != "10.0.0.1" {
		t.Errorf("unexpected trusted proxies: %v", cfg.HTTPServer.TrustedProxies)
	}
	if err := cfg.ValidateAgenda(); err != nil {
		t.Errorf("expected valid agenda config, got %v", err)
	}
}

func TestLoadDefaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Airtable.TableName != "Companies" {
		t.Errorf("expected default table Companies, got %q", cfg.Airtable.TableName)
	}
	if cfg.Airtable.NameField != "Name" || cfg.Airtable.NextTouchField != "Next Touch" {
		t.Errorf("unexpected default field names: %+v", cfg.Airtable)
	}
	if cfg.Twilio.Timeout != 15*time.Second {
		t.Errorf("expected default twilio timeout 15s, got %s", cfg.Twilio.Timeout)
	}
	if cfg.Scheduler.Cron != "0 8 * * *" || cfg.Scheduler.Timezone != "UTC" {
		t.Errorf("unexpected scheduler defaults: %+v", cfg.Scheduler)
	}
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Airtable: AirtableConfig{
				APIKey: "k", BaseID: "b", TableName: "Companies", NameField: "Name", NextTouchField: "Next Touch",
			},
			Twilio:     TwilioConfig{AccountSID: "AC", AuthToken: "t", From: "+1", To: "+2"},
			Scheduler:  SchedulerConfig{Cron: "0 8 * * *", Timezone: "UTC"},
			HTTPServer: HTTPServerConfig{Enabled: true, Port: 8080},
		}
	}

	t.Run("Ping ignores Airtable", func(t *testing.T) {
		cfg := valid()
		cfg.Airtable = AirtableConfig{}
		if err := cfg.ValidatePing(); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("Agenda requires Airtable", func(t *testing.T) {
		cfg := valid()
		cfg.Airtable.APIKey = ""
		err := cfg.ValidateAgenda()
		if !errors.Is(err, ErrConfiguration) {
			t.Fatalf("expected ErrConfiguration, got %v", err)
		}
		if !strings.Contains(err.Error(), "AIRTABLE_API_KEY") {
			t.Errorf("expected missing key to be named, got %v", err)
		}
	})

	t.Run("Reports every missing key", func(t *testing.T) {
		err := (&Config{}).ValidatePing()
		for _, key := range []string{
			"TWILIO_ACCOUNT_SID", "TWILIO_AUTH_TOKEN", "TWILIO_SENDING_PHONE_NUMBER", "TWILIO_DEBUG_PHONE_NUMBER",
		} {
			if err == nil || !strings.Contains(err.Error(), key) {
				t.Errorf("expected %s in error, got %v", key, err)
			}
		}
	})

	t.Run("Scheduler rejects bad cron", func(t *testing.T) {
		cfg := valid()
		cfg.Scheduler.Cron = "every morning"
		if err := cfg.ValidateScheduler(); !errors.Is(err, ErrConfiguration) {
			t.Errorf("expected ErrConfiguration, got %v", err)
		}
	})

	t.Run("Scheduler rejects bad timezone", func(t *testing.T) {
		cfg := valid()
		cfg.Scheduler.Timezone = "Mars/Olympus"
		if err := cfg.ValidateScheduler(); !errors.Is(err, ErrConfiguration) {
			t.Errorf("expected ErrConfiguration, got %v", err)
		}
	})

	t.Run("Scheduler valid", func(t *testing.T) {
		if err := valid().ValidateScheduler(); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})
}
