package worker

import (
	"context"
	"go-gin-checkout/internal/metrics"
	"go-gin-checkout/internal/notification"
	"go-gin-checkout/internal/queue"
	"go-gin-checkout/pkg/logger"
	"sync"
	"time"

	"go.uber.org/zap"
)

type NotificationWorker interface {
	// 訂閱通知隊列並寄送
	Start(ctx context.Context) error
	// 等待處理迴圈結束
	Wait()
}

type NotificationWorkerImpl struct {
	sender      notification.Sender
	queue       queue.NotificationQueue
	metrics     *metrics.CheckoutMetrics
	sendTimeout time.Duration
	wg          sync.WaitGroup
}

func NewNotificationWorker(sender notification.Sender, queue queue.NotificationQueue, m *metrics.CheckoutMetrics, sendTimeout time.Duration) NotificationWorker {
	if sendTimeout <= 0 {
		sendTimeout = 10 * time.Second
	}
	return &NotificationWorkerImpl{
		sender:      sender,
		queue:       queue,
		metrics:     m,
		sendTimeout: sendTimeout,
	}
}

func (w *NotificationWorkerImpl) Start(ctx context.Context) error {
	msgs, err := w.queue.SubscribeConfirmations(ctx)
	if err != nil {
		return err
	}

	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		for msg := range msgs {
			w.handle(ctx, msg)
		}
	}()
	return nil
}

func (w *NotificationWorkerImpl) handle(ctx context.Context, msg queue.Delivery) {
	log := logger.WithComponent("worker")
	conf := msg.Data
	if conf == nil || conf.Ticket == nil {
		log.Warn("drop empty confirmation")
		msg.Nack(false)
		return
	}

	sendCtx, cancel := context.WithTimeout(ctx, w.sendTimeout)
	defer cancel()

	err := w.sender.SendPurchaseConfirmation(sendCtx, conf.Email, conf.DisplayName, conf.Ticket)
	if err != nil {
		// 寄送失敗，重回隊列稍後重試
		log.Warn("send purchase confirmation failed",
			zap.String("message_id", conf.MessageID),
			zap.String("ticket_code", conf.Ticket.Code),
			zap.Error(err),
		)
		w.metrics.IncNotification(metrics.NotificationFailed)
		msg.Nack(true)
		return
	}

	w.metrics.IncNotification(metrics.NotificationSent)
	msg.Ack()
}

func (w *NotificationWorkerImpl) Wait() {
	w.wg.Wait()
}
