package scheduler_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"agenda-notifier/internal/agenda"
	"agenda-notifier/internal/scheduler"
	pkgLog "agenda-notifier/pkg/log"
)

type fakeUseCase struct {
	mu     sync.Mutex
	calls  int
	runIDs []string
	err    error
}

func (f *fakeUseCase) SendAgenda(ctx context.Context) (agenda.SendOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	f.runIDs = append(f.runIDs, pkgLog.RunID(ctx))
	return agenda.SendOutput{MessageSID: "SM1"}, f.err
}

func (f *fakeUseCase) SendPing(ctx context.Context) (agenda.SendOutput, error) {
	return agenda.SendOutput{}, nil
}

func TestNew(t *testing.T) {
	uc := &fakeUseCase{}

	if _, err := scheduler.New(pkgLog.NewNop(), uc, scheduler.Config{Spec: "0 8 * * *", Timezone: "UTC"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := scheduler.New(pkgLog.NewNop(), uc, scheduler.Config{Spec: "not cron", Timezone: "UTC"}); err == nil {
		t.Errorf("expected error for invalid spec")
	}
	if _, err := scheduler.New(pkgLog.NewNop(), uc, scheduler.Config{Spec: "0 8 * * *", Timezone: "Nowhere/City"}); err == nil {
		t.Errorf("expected error for invalid timezone")
	}
}

func TestRunOnce(t *testing.T) {
	uc := &fakeUseCase{err: errors.New("query failed")}
	s, err := scheduler.New(pkgLog.NewNop(), uc, scheduler.Config{Spec: "0 8 * * *", Timezone: "UTC"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	s.RunOnce(context.Background())
	s.RunOnce(context.Background())

	if uc.calls != 2 {
		t.Fatalf("expected 2 runs without retries, got %d", uc.calls)
	}
	if uc.runIDs[0] == "" || uc.runIDs[0] == uc.runIDs[1] {
		t.Errorf("expected distinct run ids, got %v", uc.runIDs)
	}
}

func TestStartRunOnStart(t *testing.T) {
	uc := &fakeUseCase{}
	s, err := scheduler.New(pkgLog.NewNop(), uc, scheduler.Config{
		Spec:       "0 8 * * *",
		Timezone:   "America/New_York",
		RunOnStart: true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := s.Start(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer s.Stop()

	if uc.calls != 1 {
		t.Errorf("expected one immediate run, got %d", uc.calls)
	}

	next := s.Next()
	if next.IsZero() {
		t.Fatalf("expected a next run time")
	}
	if next.Hour() != 8 || next.Minute() != 0 || next.Location().String() != "America/New_York" {
		t.Errorf("unexpected next run: %s", next)
	}
}
