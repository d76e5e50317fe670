package notify

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/heartmarshall/carealert-backend/internal/domain"
)

//go:generate moq -out log_repo_mock_test.go -pkg notify . logRepo
//go:generate moq -out user_repo_mock_test.go -pkg notify . userRepo
//go:generate moq -out contact_repo_mock_test.go -pkg notify . contactRepo
//go:generate moq -out subscription_repo_mock_test.go -pkg notify . subscriptionRepo
//go:generate moq -out sms_client_mock_test.go -pkg notify . SMSClient
//go:generate moq -out mailer_mock_test.go -pkg notify . Mailer
//go:generate moq -out web_push_client_mock_test.go -pkg notify . WebPushClient
//go:generate moq -out fcm_client_mock_test.go -pkg notify . FCMClient
//go:generate moq -out sender_mock_test.go -pkg notify . Sender

var fixedNow = time.Date(2024, 3, 4, 9, 30, 0, 0, time.UTC)

// newTestLog returns a Log backed by an accepting mock repo.
func newTestLog(t *testing.T) (*Log, *logRepoMock) {
	t.Helper()
	repo := &logRepoMock{
		AppendFunc: func(ctx context.Context, e domain.NotificationLogEntry) error { return nil },
	}
	l := NewLog(slog.Default(), repo)
	l.now = func() time.Time { return fixedNow }
	return l, repo
}

func entries(repo *logRepoMock) []domain.NotificationLogEntry {
	calls := repo.AppendCalls()
	out := make([]domain.NotificationLogEntry, len(calls))
	for i, c := range calls {
		out[i] = c.E
	}
	return out
}

func ptr[T any](v T) *T { return &v }
