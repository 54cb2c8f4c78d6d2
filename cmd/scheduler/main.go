package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"agenda-notifier/config"
	_ "agenda-notifier/docs" // Swagger docs
	"agenda-notifier/internal/agenda"
	agendaHTTP "agenda-notifier/internal/agenda/delivery/http"
	twilioMessenger "agenda-notifier/internal/agenda/messenger/twilio"
	"agenda-notifier/internal/agenda/repository"
	airtableRepo "agenda-notifier/internal/agenda/repository/airtable"
	"agenda-notifier/internal/agenda/usecase"
	"agenda-notifier/internal/exitcode"
	"agenda-notifier/internal/httpserver"
	"agenda-notifier/internal/middleware"
	"agenda-notifier/internal/scheduler"
	"agenda-notifier/pkg/airtable"
	"agenda-notifier/pkg/log"
	"agenda-notifier/pkg/twilio"
)

// main keeps the agenda job scheduled in-process instead of relying on an
// external cron, and optionally serves health and manual trigger routes.
//
// @title       Agenda Notifier API
// @description Daily Airtable agenda digest over Twilio SMS, with health and manual trigger routes.
// @version     1
// @host        localhost:8080
// @schemes     http
// @securityDefinitions.apikey BearerAuth
// @in   header
// @name Authorization
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

	logger.Info(ctx, "Starting agenda scheduler...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	if err := cfg.ValidateScheduler(); err != nil {
		logger.Error(ctx, "Invalid configuration: ", err)
		return exitcode.FromError(err)
	}

	// 3. Agenda domain
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

	twilioClient := twilio.NewClient(cfg.Twilio.AccountSID, cfg.Twilio.AuthToken)
	twilioClient.SetBaseURL(cfg.Twilio.BaseURL)
	twilioClient.SetTimeout(cfg.Twilio.Timeout)

	uc := usecase.New(logger, repo, twilioMessenger.New(twilioClient, logger),
		agenda.Recipient{From: cfg.Twilio.From, To: cfg.Twilio.To})

	// 4. Scheduler
	sched, err := scheduler.New(logger, uc, scheduler.Config{
		Spec:       cfg.Scheduler.Cron,
		Timezone:   cfg.Scheduler.Timezone,
		RunOnStart: cfg.Scheduler.RunOnStart,
	})
	if err != nil {
		logger.Error(ctx, "Failed to create scheduler: ", err)
		return exitcode.FromError(fmt.Errorf("%w: %w", config.ErrConfiguration, err))
	}
	if err := sched.Start(ctx); err != nil {
		logger.Error(ctx, "Failed to start scheduler: ", err)
		return exitcode.FromError(err)
	}
	defer sched.Stop()

	// 5. HTTP Server (optional)
	if !cfg.HTTPServer.Enabled {
		logger.Info(ctx, "HTTP server disabled, waiting for shutdown signal...")
		<-ctx.Done()
		logger.Info(ctx, "Scheduler stopped gracefully")
		return exitcode.OK
	}

	var agendaHandler agendaHTTP.Handler
	if cfg.HTTPServer.TriggerToken != "" {
		agendaHandler = agendaHTTP.New(logger, uc)
	}

	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:         logger,
		Port:           cfg.HTTPServer.Port,
		Mode:           cfg.HTTPServer.Mode,
		Environment:    cfg.Environment.Name,
		TrustedProxies: cfg.HTTPServer.TrustedProxies,
		AgendaHandler:  agendaHandler,
		Middleware:     middleware.New(logger, cfg.HTTPServer.TriggerToken, cfg.HTTPServer.RateLimitPerMin),
		Ready: func() error {
			if sched.Next().IsZero() {
				return errors.New("scheduler has no upcoming run")
			}
			return nil
		},
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return exitcode.FromError(err)
	}

	// 6. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return exitcode.FromError(err)
	}

	logger.Info(ctx, "Scheduler stopped gracefully")
	return exitcode.OK
}
