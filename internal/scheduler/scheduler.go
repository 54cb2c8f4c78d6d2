// Package scheduler runs the agenda job on a cron schedule inside a
// long-lived process.
package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"

	"agenda-notifier/internal/agenda"
	pkgLog "agenda-notifier/pkg/log"
)

// Config controls when the job fires.
type Config struct {
	Spec       string // standard 5-field cron expression
	Timezone   string // IANA name, e.g. "America/New_York"
	RunOnStart bool
}

// Scheduler wraps a cron runner with the single agenda job.
type Scheduler struct {
	l          pkgLog.Logger
	uc         agenda.UseCase
	cron       *cron.Cron
	spec       string
	runOnStart bool
	baseCtx    context.Context
}

// New validates cfg and prepares the cron runner. Nothing runs until Start.
func New(l pkgLog.Logger, uc agenda.UseCase, cfg Config) (*Scheduler, error) {
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", cfg.Timezone, err)
	}
	if _, err := cron.ParseStandard(cfg.Spec); err != nil {
		return nil, fmt.Errorf("invalid cron spec %q: %w", cfg.Spec, err)
	}

	cl := cronLogger{l: l}
	return &Scheduler{
		l:    l,
		uc:   uc,
		cron: cron.New(
			cron.WithLocation(loc),
			cron.WithLogger(cl),
			cron.WithChain(cron.Recover(cl), cron.SkipIfStillRunning(cl)),
		),
		spec:       cfg.Spec,
		runOnStart: cfg.RunOnStart,
		baseCtx:    context.Background(),
	}, nil
}

// Start registers the job and starts the runner. ctx is the parent of every
// job run; cancelling it aborts an in-flight run.
func (s *Scheduler) Start(ctx context.Context) error {
	s.baseCtx = ctx

	if _, err := s.cron.AddFunc(s.spec, func() { s.RunOnce(s.baseCtx) }); err != nil {
		return fmt.Errorf("failed to register agenda job: %w", err)
	}

	if s.runOnStart {
		s.RunOnce(ctx)
	}

	s.cron.Start()
	s.l.Infof(ctx, "scheduler: agenda job scheduled at %q, next run %s", s.spec, s.Next().Format(time.RFC3339))
	return nil
}

// Stop stops the runner and waits for a running job to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
}

// Next reports the next scheduled fire time, zero before Start.
func (s *Scheduler) Next() time.Time {
	entries := s.cron.Entries()
	if len(entries) == 0 {
		return time.Time{}
	}
	return entries[0].Next
}

// RunOnce performs one agenda run. Failures are logged and not retried.
func (s *Scheduler) RunOnce(ctx context.Context) {
	ctx = pkgLog.WithRunID(ctx, uuid.NewString())

	out, err := s.uc.SendAgenda(ctx)
	if err != nil {
		s.l.Errorf(ctx, "scheduler: agenda run failed: %v", err)
		return
	}
	s.l.Infof(ctx, "scheduler: agenda sent, %d tasks, message %s", out.TaskCount, out.MessageSID)
}

// cronLogger adapts pkgLog.Logger to cron.Logger.
type cronLogger struct {
	l pkgLog.Logger
}

func (c cronLogger) Info(msg string, keysAndValues ...interface{}) {
	c.l.Debugf(context.Background(), "cron: %s %v", msg, keysAndValues)
}

func (c cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	c.l.Errorf(context.Background(), "cron: %s: %v %v", msg, err, keysAndValues)
}
