package notification

import (
	"context"
	"go-gin-checkout/internal/model"
	"go-gin-checkout/pkg/logger"

	"go.uber.org/zap"
)

type Sender interface {
	// 寄送購買確認通知
	SendPurchaseConfirmation(ctx context.Context, email string, displayName string, ticket *model.Ticket) error
}

// LogSender 未設定 SMTP 時使用，只寫 log
type LogSender struct {
	log *zap.Logger
}

func NewLogSender() *LogSender {
	return &LogSender{log: logger.WithComponent("notification")}
}

func (s *LogSender) SendPurchaseConfirmation(ctx context.Context, email string, displayName string, ticket *model.Ticket) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.log.Info("purchase confirmation",
		zap.String("email", email),
		zap.String("name", displayName),
		zap.String("ticket_code", ticket.Code),
		zap.String("amount", ticket.Amount.StringFixed(2)),
		zap.String("status", string(ticket.Status)),
		zap.Int("items", ticket.ItemsCount()),
	)
	return nil
}
