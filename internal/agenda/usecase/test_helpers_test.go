package usecase_test

import (
	"context"

	"agenda-notifier/internal/model"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

type mockRecordSource struct {
	records []model.TaskRecord
	err     error
	calls   int
}

func (m *mockRecordSource) DailyTasks(ctx context.Context) ([]model.TaskRecord, error) {
	m.calls++
	return m.records, m.err
}

type mockMessenger struct {
	sent []model.MessageRequest
	err  error
}

func (m *mockMessenger) Send(ctx context.Context, req model.MessageRequest) (model.MessageHandle, error) {
	m.sent = append(m.sent, req)
	if m.err != nil {
		return model.MessageHandle{}, m.err
	}
	return model.MessageHandle{SID: "SM-test", Status: "queued"}, nil
}
