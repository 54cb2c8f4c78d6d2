package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"

	"agenda-notifier/config"
	"agenda-notifier/internal/agenda"
	twilioMessenger "agenda-notifier/internal/agenda/messenger/twilio"
	"agenda-notifier/internal/agenda/repository"
	airtableRepo "agenda-notifier/internal/agenda/repository/airtable"
	"agenda-notifier/internal/agenda/usecase"
	"agenda-notifier/internal/exitcode"
	"agenda-notifier/pkg/airtable"
	"agenda-notifier/pkg/log"
	"agenda-notifier/pkg/twilio"
)

// main sends today's agenda digest once and exits. Meant to be run by cron.
//
// Exit codes: 0 sent, 1 configuration, 2 Airtable query, 3 Twilio delivery.
func main() {
	os.Exit(run())
}

func run() int {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return exitcode.FromError(err)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx = log.WithRunID(ctx, uuid.NewString())

	if err := cfg.ValidateAgenda(); err != nil {
		logger.Error(ctx, "Invalid configuration: ", err)
		return exitcode.FromError(err)
	}

	// 3. Airtable record source
	airtableClient := airtable.NewClient(cfg.Airtable.APIKey, cfg.Airtable.BaseID,
		airtable.WithBaseURL(cfg.Airtable.BaseURL),
		airtable.WithTimeout(cfg.Airtable.Timeout),
		airtable.WithRequestsPerSecond(cfg.Airtable.RequestsPerSecond),
	)
	repo := airtableRepo.New(airtableClient, repository.TableOptions{
		TableName:      cfg.Airtable.TableName,
		NameField:      cfg.Airtable.NameField,
		NextTouchField: cfg.Airtable.NextTouchField,
	}, logger)

	// 4. Twilio messenger
	twilioClient := twilio.NewClient(cfg.Twilio.AccountSID, cfg.Twilio.AuthToken)
	twilioClient.SetBaseURL(cfg.Twilio.BaseURL)
	twilioClient.SetTimeout(cfg.Twilio.Timeout)
	messenger := twilioMessenger.New(twilioClient, logger)

	// 5. Run
	uc := usecase.New(logger, repo, messenger, agenda.Recipient{From: cfg.Twilio.From, To: cfg.Twilio.To})
	out, err := uc.SendAgenda(ctx)
	if err != nil {
		logger.Error(ctx, "Failed to send agenda: ", err)
		return exitcode.FromError(err)
	}

	logger.Infof(ctx, "Agenda sent: %d tasks, message %s (%s)", out.TaskCount, out.MessageSID, out.Status)
	return exitcode.OK
}
