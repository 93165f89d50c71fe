package worker_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"go-gin-checkout/internal/model"
	"go-gin-checkout/internal/queue"
	"go-gin-checkout/internal/worker"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSender struct {
	mu       sync.Mutex
	failures int
	sent     []string
	attempts int
}

func (s *recordingSender) SendPurchaseConfirmation(_ context.Context, email string, _ string, ticket *model.Ticket) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.attempts++
	if s.failures > 0 {
		s.failures--
		return errors.New("smtp unavailable")
	}
	s.sent = append(s.sent, email+":"+ticket.Code)
	return nil
}

func (s *recordingSender) snapshot() ([]string, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.sent...), s.attempts
}

func TestNotificationWorker(t *testing.T) {
	t.Run("Success - Sends and acks", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())

		q := queue.NewNotificationQueue(4, 3)
		sender := &recordingSender{}
		w := worker.NewNotificationWorker(sender, q, nil, time.Second)
		require.NoError(t, w.Start(ctx))

		require.NoError(t, q.PublishConfirmation(ctx, &model.PurchaseConfirmation{
			Email:  "buyer@example.com",
			Ticket: &model.Ticket{Code: "AB12CD34EF"},
		}))

		assert.Eventually(t, func() bool {
			sent, _ := sender.snapshot()
			return len(sent) == 1
		}, 2*time.Second, 10*time.Millisecond)

		cancel()
		w.Wait()

		sent, _ := sender.snapshot()
		assert.Equal(t, []string{"buyer@example.com:AB12CD34EF"}, sent)
	})

	t.Run("Success - Retries after send failure", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		q := queue.NewNotificationQueue(4, 5)
		sender := &recordingSender{failures: 2}
		w := worker.NewNotificationWorker(sender, q, nil, time.Second)
		require.NoError(t, w.Start(ctx))

		require.NoError(t, q.PublishConfirmation(ctx, &model.PurchaseConfirmation{
			Email:  "buyer@example.com",
			Ticket: &model.Ticket{Code: "RETRY00001"},
		}))

		assert.Eventually(t, func() bool {
			sent, _ := sender.snapshot()
			return len(sent) == 1
		}, 2*time.Second, 10*time.Millisecond)

		_, attempts := sender.snapshot()
		assert.Equal(t, 3, attempts)
	})

	t.Run("Success - Empty confirmation is dropped", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		q := queue.NewNotificationQueue(4, 3)
		sender := &recordingSender{}
		w := worker.NewNotificationWorker(sender, q, nil, time.Second)
		require.NoError(t, w.Start(ctx))

		require.NoError(t, q.PublishConfirmation(ctx, &model.PurchaseConfirmation{Email: "buyer@example.com"}))
		require.NoError(t, q.PublishConfirmation(ctx, &model.PurchaseConfirmation{
			Email:  "buyer@example.com",
			Ticket: &model.Ticket{Code: "AFTEREMPTY"},
		}))

		assert.Eventually(t, func() bool {
			sent, _ := sender.snapshot()
			return len(sent) == 1
		}, 2*time.Second, 10*time.Millisecond)

		_, attempts := sender.snapshot()
		assert.Equal(t, 1, attempts)
	})
}
