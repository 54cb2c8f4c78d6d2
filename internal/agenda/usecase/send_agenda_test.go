package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"agenda-notifier/internal/agenda"
	"agenda-notifier/internal/agenda/usecase"
	"agenda-notifier/internal/model"
)

var recipient = agenda.Recipient{From: "+15550001111", To: "+15550002222"}

func TestBuildDigest(t *testing.T) {
	tests := []struct {
		name    string
		records []model.TaskRecord
		want    string
	}{
		{
			name:    "No tasks",
			records: nil,
			want:    "Good morning! Here's your tasks for the day:\n  - No tasks for you! :)",
		},
		{
			name:    "Two tasks",
			records: []model.TaskRecord{{Name: "Acme"}, {Name: "Beta"}},
			want:    "Good morning! Here's your tasks for the day:\n  - Acme\n  - Beta",
		},
		{
			name:    "Order is kept",
			records: []model.TaskRecord{{Name: "Zulu"}, {Name: "Alpha"}, {Name: "Mike"}},
			want:    "Good morning! Here's your tasks for the day:\n  - Zulu\n  - Alpha\n  - Mike",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := usecase.BuildDigest(tt.records); got != tt.want {
				t.Errorf("BuildDigest() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBuildDigestLineCount(t *testing.T) {
	for n := 1; n <= 25; n++ {
		records := make([]model.TaskRecord, n)
		for i := range records {
			records[i] = model.TaskRecord{Name: fmt.Sprintf("Company %d", i)}
		}

		lines := strings.Split(usecase.BuildDigest(records), "\n")
		if len(lines) != n+1 {
			t.Fatalf("n=%d: expected %d lines, got %d", n, n+1, len(lines))
		}
		for i, line := range lines[1:] {
			if want := "  - " + records[i].Name; line != want {
				t.Errorf("n=%d line %d: got %q, want %q", n, i, line, want)
			}
		}
	}
}

func TestSendAgenda(t *testing.T) {
	ctx := context.Background()

	t.Run("Sends one digest", func(t *testing.T) {
		repo := &mockRecordSource{records: []model.TaskRecord{{Name: "Acme"}, {Name: "Beta"}}}
		msgr := &mockMessenger{}
		uc := usecase.New(&mockLogger{}, repo, msgr, recipient)

		out, err := uc.SendAgenda(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(msgr.sent) != 1 {
			t.Fatalf("expected exactly one send, got %d", len(msgr.sent))
		}
		sent := msgr.sent[0]
		if sent.From != recipient.From || sent.To != recipient.To {
			t.Errorf("unexpected numbers: %+v", sent)
		}
		if sent.Body != "Good morning! Here's your tasks for the day:\n  - Acme\n  - Beta" {
			t.Errorf("unexpected body: %q", sent.Body)
		}
		if out.MessageSID != "SM-test" || out.TaskCount != 2 || out.Body != sent.Body {
			t.Errorf("unexpected output: %+v", out)
		}
	})

	t.Run("Sends fallback when nothing is due", func(t *testing.T) {
		msgr := &mockMessenger{}
		uc := usecase.New(&mockLogger{}, &mockRecordSource{}, msgr, recipient)

		if _, err := uc.SendAgenda(ctx); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(msgr.sent) != 1 {
			t.Fatalf("expected exactly one send, got %d", len(msgr.sent))
		}
		if msgr.sent[0].Body != "Good morning! Here's your tasks for the day:\n  - No tasks for you! :)" {
			t.Errorf("unexpected body: %q", msgr.sent[0].Body)
		}
	})

	t.Run("Query failure sends nothing", func(t *testing.T) {
		queryErr := fmt.Errorf("%w: boom", agenda.ErrRemoteQuery)
		msgr := &mockMessenger{}
		uc := usecase.New(&mockLogger{}, &mockRecordSource{err: queryErr}, msgr, recipient)

		_, err := uc.SendAgenda(ctx)
		if !errors.Is(err, agenda.ErrRemoteQuery) {
			t.Errorf("expected ErrRemoteQuery, got %v", err)
		}
		if len(msgr.sent) != 0 {
			t.Errorf("expected no send on query failure, got %d", len(msgr.sent))
		}
	})

	t.Run("Send failure propagates", func(t *testing.T) {
		sendErr := fmt.Errorf("%w: rejected", agenda.ErrDelivery)
		repo := &mockRecordSource{records: []model.TaskRecord{{Name: "Acme"}}}
		msgr := &mockMessenger{err: sendErr}
		uc := usecase.New(&mockLogger{}, repo, msgr, recipient)

		_, err := uc.SendAgenda(ctx)
		if !errors.Is(err, agenda.ErrDelivery) {
			t.Errorf("expected ErrDelivery, got %v", err)
		}
		if len(msgr.sent) != 1 {
			t.Errorf("expected exactly one attempt, got %d", len(msgr.sent))
		}
		if repo.calls != 1 {
			t.Errorf("expected one query, got %d", repo.calls)
		}
	})

	t.Run("Missing record source", func(t *testing.T) {
		msgr := &mockMessenger{}
		uc := usecase.New(&mockLogger{}, nil, msgr, recipient)
		if _, err := uc.SendAgenda(ctx); err == nil {
			t.Errorf("expected error without record source")
		}
		if len(msgr.sent) != 0 {
			t.Errorf("expected no send, got %d", len(msgr.sent))
		}
	})
}
