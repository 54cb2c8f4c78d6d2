package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	Environment EnvironmentConfig
	Logger      LoggerConfig

	Airtable AirtableConfig
	Twilio   TwilioConfig

	// Only used by cmd/scheduler
	Scheduler  SchedulerConfig
	HTTPServer HTTPServerConfig
}

type EnvironmentConfig struct {
	Name string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type AirtableConfig struct {
	APIKey            string
	BaseID            string
	TableName         string
	NameField         string
	NextTouchField    string
	BaseURL           string
	Timeout           time.Duration
	RequestsPerSecond float64
}

type TwilioConfig struct {
	AccountSID string
	AuthToken  string
	From       string // TWILIO_SENDING_PHONE_NUMBER
	To         string // TWILIO_DEBUG_PHONE_NUMBER
	BaseURL    string
	Timeout    time.Duration
}

type SchedulerConfig struct {
	Cron       string
	Timezone   string
	RunOnStart bool
}

type HTTPServerConfig struct {
	Enabled         bool
	Port            int
	Mode            string
	TriggerToken    string
	RateLimitPerMin int
	TrustedProxies  []string
}

// Load reads .env (if present), an optional config.yaml and the environment.
// Environment keys map to config keys with "." replaced by "_",
// e.g. AIRTABLE_API_KEY -> airtable.api_key.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: error reading .env file: %w", ErrConfiguration, err)
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/agenda/")

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("%w: error reading config file: %w", ErrConfiguration, err)
		}
	}

	return fromViper(v), nil
}

func fromViper(v *viper.Viper) *Config {
	cfg := &Config{}

	cfg.Environment.Name = v.GetString("environment.name")
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")

	cfg.Airtable.APIKey = v.GetString("airtable.api_key")
	cfg.Airtable.BaseID = v.GetString("airtable.base_id")
	cfg.Airtable.TableName = v.GetString("airtable.table_name")
	cfg.Airtable.NameField = v.GetString("airtable.name_field")
	cfg.Airtable.NextTouchField = v.GetString("airtable.next_touch_field")
	cfg.Airtable.BaseURL = v.GetString("airtable.base_url")
	cfg.Airtable.Timeout = v.GetDuration("airtable.timeout")
	cfg.Airtable.RequestsPerSecond = v.GetFloat64("airtable.requests_per_second")

	cfg.Twilio.AccountSID = v.GetString("twilio.account_sid")
	cfg.Twilio.AuthToken = v.GetString("twilio.auth_token")
	cfg.Twilio.From = v.GetString("twilio.sending_phone_number")
	cfg.Twilio.To = v.GetString("twilio.debug_phone_number")
	cfg.Twilio.BaseURL = v.GetString("twilio.base_url")
	cfg.Twilio.Timeout = v.GetDuration("twilio.timeout")

	cfg.Scheduler.Cron = v.GetString("scheduler.cron")
	cfg.Scheduler.Timezone = v.GetString("scheduler.timezone")
	cfg.Scheduler.RunOnStart = v.GetBool("scheduler.run_on_start")

	cfg.HTTPServer.Enabled = v.GetBool("http_server.enabled")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.HTTPServer.TriggerToken = v.GetString("http_server.trigger_token")
	cfg.HTTPServer.RateLimitPerMin = v.GetInt("http_server.rate_limit_per_min")
	cfg.HTTPServer.TrustedProxies = v.GetStringSlice("http_server.trusted_proxies")

	return cfg
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", "development")
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.mode", "debug")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)

	v.SetDefault("airtable.table_name", "Companies")
	v.SetDefault("airtable.name_field", "Name")
	v.SetDefault("airtable.next_touch_field", "Next Touch")
	v.SetDefault("airtable.base_url", "https://api.airtable.com/v0")
	v.SetDefault("airtable.timeout", "15s")
	v.SetDefault("airtable.requests_per_second", 5)

	v.SetDefault("twilio.base_url", "https://api.twilio.com")
	v.SetDefault("twilio.timeout", "15s")

	v.SetDefault("scheduler.cron", "0 8 * * *")
	v.SetDefault("scheduler.timezone", "UTC")
	v.SetDefault("scheduler.run_on_start", false)

	v.SetDefault("http_server.enabled", true)
	v.SetDefault("http_server.port", 8080)
	v.SetDefault("http_server.mode", "release")
	v.SetDefault("http_server.rate_limit_per_min", 30)
}
