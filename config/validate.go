package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/robfig/cron/v3"
)

// ErrConfiguration marks missing or invalid configuration.
var ErrConfiguration = errors.New("configuration error")

// ValidatePing checks what cmd/send-ping needs.
func (c *Config) ValidatePing() error {
	return report(c.twilioProblems())
}

// ValidateAgenda checks what cmd/send-agenda needs.
func (c *Config) ValidateAgenda() error {
	return report(append(c.airtableProblems(), c.twilioProblems()...))
}

// ValidateScheduler checks what cmd/scheduler needs.
func (c *Config) ValidateScheduler() error {
	problems := append(c.airtableProblems(), c.twilioProblems()...)

	if _, err := cron.ParseStandard(c.Scheduler.Cron); err != nil {
		problems = append(problems, fmt.Sprintf("scheduler.cron %q is invalid: %v", c.Scheduler.Cron, err))
	}
	if _, err := time.LoadLocation(c.Scheduler.Timezone); err != nil {
		problems = append(problems, fmt.Sprintf("scheduler.timezone %q is invalid", c.Scheduler.Timezone))
	}
	if c.HTTPServer.Enabled && c.HTTPServer.Port <= 0 {
		problems = append(problems, "http_server.port must be positive")
	}

	return report(problems)
}

func (c *Config) airtableProblems() []string {
	var problems []string
	if c.Airtable.APIKey == "" {
		problems = append(problems, "AIRTABLE_API_KEY is not set")
	}
	if c.Airtable.BaseID == "" {
		problems = append(problems, "AIRTABLE_BASE_ID is not set")
	}
	if c.Airtable.TableName == "" {
		problems = append(problems, "airtable.table_name is empty")
	}
	if c.Airtable.NameField == "" || c.Airtable.NextTouchField == "" {
		problems = append(problems, "airtable field names must not be empty")
	}
	return problems
}

func (c *Config) twilioProblems() []string {
	var problems []string
	if c.Twilio.AccountSID == "" {
		problems = append(problems, "TWILIO_ACCOUNT_SID is not set")
	}
	if c.Twilio.AuthToken == "" {
		problems = append(problems, "TWILIO_AUTH_TOKEN is not set")
	}
	if c.Twilio.From == "" {
		problems = append(problems, "TWILIO_SENDING_PHONE_NUMBER is not set")
	}
	if c.Twilio.To == "" {
		problems = append(problems, "TWILIO_DEBUG_PHONE_NUMBER is not set")
	}
	return problems
}

func report(problems []string) error {
	if len(problems) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %s", ErrConfiguration, strings.Join(problems, "; "))
}
