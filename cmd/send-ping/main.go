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
	"agenda-notifier/internal/agenda/usecase"
	"agenda-notifier/internal/exitcode"
	"agenda-notifier/pkg/log"
	"agenda-notifier/pkg/twilio"
)

// main sends the fixed test SMS to check Twilio credentials and numbers.
func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return exitcode.FromError(err)
	}

	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx = log.WithRunID(ctx, uuid.NewString())

	if err := cfg.ValidatePing(); err != nil {
		logger.Error(ctx, "Invalid configuration: ", err)
		return exitcode.FromError(err)
	}

	twilioClient := twilio.NewClient(cfg.Twilio.AccountSID, cfg.Twilio.AuthToken)
	twilioClient.SetBaseURL(cfg.Twilio.BaseURL)
	twilioClient.SetTimeout(cfg.Twilio.Timeout)

	uc := usecase.New(logger, nil, twilioMessenger.New(twilioClient, logger),
		agenda.Recipient{From: cfg.Twilio.From, To: cfg.Twilio.To})

	out, err := uc.SendPing(ctx)
	if err != nil {
		logger.Error(ctx, "Failed to send ping: ", err)
		return exitcode.FromError(err)
	}

	logger.Infof(ctx, "Ping sent: message %s (%s)", out.MessageSID, out.Status)
	return exitcode.OK
}
