package notification_test

import (
	"context"
	"errors"
	"net"
	"net/smtp"
	"sync"
	"testing"
	"time"

	"go-gin-checkout/config"
	"go-gin-checkout/internal/model"
	"go-gin-checkout/internal/notification"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTicket(status model.TicketStatus) *model.Ticket {
	ticket := &model.Ticket{
		ID:               1,
		Code:             "AB12CD34EF",
		PurchaseDatetime: time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC),
		Purchaser:        "buyer@example.com",
		Status:           status,
		Lines: []model.TicketLine{
			model.NewTicketLine(&model.Product{ID: 1, Title: "Mechanical Keyboard", Price: decimal.NewFromInt(10)}, 2),
		},
	}
	ticket.Recalculate()
	return ticket
}

func TestSMTPSender_SendPurchaseConfirmation(t *testing.T) {
	cfg := config.MailConfig{
		SMTPHost: "smtp.example.com",
		SMTPPort: 2525,
		SMTPUser: "mailer",
		From:     "shop@example.com",
	}

	t.Run("Success", func(t *testing.T) {
		var gotAddr, gotFrom string
		var gotTo []string
		var gotMsg []byte

		sender := notification.NewSMTPSender(cfg).WithSendMail(func(_ context.Context, addr string, a smtp.Auth, from string, to []string, msg []byte) error {
			gotAddr, gotFrom, gotTo, gotMsg = addr, from, to, msg
			assert.NotNil(t, a)
			return nil
		})

		err := sender.SendPurchaseConfirmation(context.Background(), "buyer@example.com", "Ada Lovelace", testTicket(model.TicketStatusCompleted))
		require.NoError(t, err)

		assert.Equal(t, "smtp.example.com:2525", gotAddr)
		assert.Equal(t, "shop@example.com", gotFrom)
		assert.Equal(t, []string{"buyer@example.com"}, gotTo)

		body := string(gotMsg)
		assert.Contains(t, body, "Subject: Purchase confirmation - AB12CD34EF")
		assert.Contains(t, body, "Hi Ada Lovelace")
		assert.Contains(t, body, "Mechanical Keyboard")
		assert.Contains(t, body, "20.00")
		assert.NotContains(t, body, "did not have enough stock")
	})

	t.Run("Success - Partial ticket mentions missing stock", func(t *testing.T) {
		var gotMsg []byte
		sender := notification.NewSMTPSender(cfg).WithSendMail(func(_ context.Context, _ string, _ smtp.Auth, _ string, _ []string, msg []byte) error {
			gotMsg = msg
			return nil
		})

		err := sender.SendPurchaseConfirmation(context.Background(), "buyer@example.com", "Ada", testTicket(model.TicketStatusPartial))
		require.NoError(t, err)
		assert.Contains(t, string(gotMsg), "did not have enough stock")
	})

	t.Run("Failed - SMTP error", func(t *testing.T) {
		sender := notification.NewSMTPSender(cfg).WithSendMail(func(context.Context, string, smtp.Auth, string, []string, []byte) error {
			return errors.New("connection refused")
		})

		err := sender.SendPurchaseConfirmation(context.Background(), "buyer@example.com", "Ada", testTicket(model.TicketStatusCompleted))
		assert.ErrorContains(t, err, "connection refused")
	})

	t.Run("Failed - Context cancelled", func(t *testing.T) {
		called := false
		sender := notification.NewSMTPSender(cfg).WithSendMail(func(context.Context, string, smtp.Auth, string, []string, []byte) error {
			called = true
			return nil
		})

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		err := sender.SendPurchaseConfirmation(ctx, "buyer@example.com", "Ada", testTicket(model.TicketStatusCompleted))
		assert.ErrorIs(t, err, context.Canceled)
		assert.False(t, called)
	})
}

func TestSMTPSender_Deadline(t *testing.T) {
	t.Run("Failed - Send function ignores the deadline", func(t *testing.T) {
		release := make(chan struct{})
		defer close(release)
		sender := notification.NewSMTPSender(config.MailConfig{SMTPHost: "smtp.example.com", SMTPPort: 25}).
			WithSendMail(func(context.Context, string, smtp.Auth, string, []string, []byte) error {
				<-release
				return nil
			})

		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
		defer cancel()

		start := time.Now()
		err := sender.SendPurchaseConfirmation(ctx, "buyer@example.com", "Ada", testTicket(model.TicketStatusCompleted))
		assert.ErrorIs(t, err, context.DeadlineExceeded)
		assert.Less(t, time.Since(start), time.Second)
	})

	t.Run("Failed - Server accepts but never answers", func(t *testing.T) {
		ln, err := net.Listen("tcp", "127.0.0.1:0")
		require.NoError(t, err)
		defer ln.Close()

		var mu sync.Mutex
		var conns []net.Conn
		go func() {
			for {
				conn, err := ln.Accept()
				if err != nil {
					return
				}
				mu.Lock()
				conns = append(conns, conn)
				mu.Unlock()
			}
		}()
		defer func() {
			mu.Lock()
			defer mu.Unlock()
			for _, c := range conns {
				c.Close()
			}
		}()

		port := ln.Addr().(*net.TCPAddr).Port
		sender := notification.NewSMTPSender(config.MailConfig{SMTPHost: "127.0.0.1", SMTPPort: port, From: "shop@example.com"})

		ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
		defer cancel()

		start := time.Now()
		err = sender.SendPurchaseConfirmation(ctx, "buyer@example.com", "Ada", testTicket(model.TicketStatusCompleted))
		assert.Error(t, err)
		assert.Less(t, time.Since(start), 2*time.Second)
	})
}

func TestNewSender(t *testing.T) {
	_, isLog := notification.NewSender(config.MailConfig{}).(*notification.LogSender)
	assert.True(t, isLog)

	_, isSMTP := notification.NewSender(config.MailConfig{SMTPHost: "smtp.example.com"}).(*notification.SMTPSender)
	assert.True(t, isSMTP)

	err := notification.NewLogSender().SendPurchaseConfirmation(context.Background(), "a@b.com", "A", testTicket(model.TicketStatusCompleted))
	assert.NoError(t, err)
}
