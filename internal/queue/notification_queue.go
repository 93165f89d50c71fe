package queue

import (
	"context"
	"go-gin-checkout/internal/model"
	"go-gin-checkout/pkg/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Delivery struct {
	Data *model.PurchaseConfirmation
	Ack  func()
	Nack func(requeue bool)
}

type NotificationQueue interface {
	// 發送購買通知到隊列
	PublishConfirmation(ctx context.Context, confirmation *model.PurchaseConfirmation) error
	// 訂閱購買通知隊列
	SubscribeConfirmations(ctx context.Context) (<-chan Delivery, error)
}

type envelope struct {
	confirmation *model.PurchaseConfirmation
	attempts     int
}

type NotificationQueueImpl struct {
	// 使用 Go channel 來模擬 MQ 隊列
	ch         chan envelope
	maxRetries int
}

const defaultMaxRetryCount = 5

func NewNotificationQueue(bufferSize int, maxRetries int) NotificationQueue {
	if bufferSize <= 0 {
		bufferSize = 1
	}
	if maxRetries <= 0 {
		maxRetries = defaultMaxRetryCount
	}
	return &NotificationQueueImpl{
		ch:         make(chan envelope, bufferSize),
		maxRetries: maxRetries,
	}
}

func (q *NotificationQueueImpl) PublishConfirmation(ctx context.Context, confirmation *model.PurchaseConfirmation) error {
	if confirmation.MessageID == "" {
		confirmation.MessageID = uuid.New().String()
	}
	select {
	case q.ch <- envelope{confirmation: confirmation}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (q *NotificationQueueImpl) SubscribeConfirmations(ctx context.Context) (<-chan Delivery, error) {
	out := make(chan Delivery)

	go func() {
		defer close(out)
		for {
			select {
			case <-ctx.Done():
				return
			case env, ok := <-q.ch:
				if !ok {
					return
				}

				select {
				case out <- q.newDelivery(ctx, env):
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return out, nil
}

func (q *NotificationQueueImpl) newDelivery(ctx context.Context, env envelope) Delivery {
	return Delivery{
		Data: env.confirmation,
		Ack:  func() { /* 記憶體版不用做特別動作 */ },
		Nack: func(requeue bool) {
			if !requeue {
				return
			}
			env.attempts++
			if env.attempts >= q.maxRetries {
				logger.WithComponent("mq").Warn("discard poison message",
					zap.String("message_id", env.confirmation.MessageID),
					zap.Int("retries", env.attempts),
				)
				return
			}
			// 重回隊列；不可在訂閱迴圈內阻塞
			go func() {
				select {
				case q.ch <- env:
				case <-ctx.Done():
				}
			}()
		},
	}
}
