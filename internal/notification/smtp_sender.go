package notification

import (
	"bytes"
	"context"
	"crypto/tls"
	"fmt"
	"go-gin-checkout/config"
	"go-gin-checkout/internal/model"
	"html/template"
	"net"
	"net/smtp"
	"strings"

	"github.com/shopspring/decimal"
)

// SendMailFunc 實際寄送，測試時可替換
type SendMailFunc func(ctx context.Context, addr string, a smtp.Auth, from string, to []string, msg []byte) error

type SMTPSender struct {
	cfg      config.MailConfig
	sendMail SendMailFunc
	tmpl     *template.Template
}

var confirmationTemplate = template.Must(template.New("purchase_confirmation").Funcs(template.FuncMap{
	"money": func(d decimal.Decimal) string { return d.StringFixed(2) },
}).Parse(`<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"><title>Purchase confirmation</title></head>
<body>
  <p>Hi {{.Name}},</p>
  <p>Thank you for your purchase.{{if .Partial}} Some products did not have enough stock and were left in your cart.{{end}}</p>
  <p><strong>Ticket code:</strong> {{.Ticket.Code}}</p>
  <p><strong>Date:</strong> {{.Ticket.PurchaseDatetime.Format "2006-01-02 15:04:05 MST"}}</p>
  <table>
    <tr><th>Product</th><th>Quantity</th><th>Unit price</th><th>Subtotal</th></tr>
    {{range .Ticket.Lines}}<tr><td>{{.Title}}</td><td>{{.Quantity}}</td><td>{{money .UnitPrice}}</td><td>{{money .Subtotal}}</td></tr>
    {{end}}
  </table>
  <p><strong>Total:</strong> {{money .Ticket.Amount}}</p>
</body>
</html>
`))

func NewSMTPSender(cfg config.MailConfig) *SMTPSender {
	return &SMTPSender{
		cfg:      cfg,
		sendMail: sendMailContext,
		tmpl:     confirmationTemplate,
	}
}

// WithSendMail 替換實際寄送函式
func (s *SMTPSender) WithSendMail(fn SendMailFunc) *SMTPSender {
	s.sendMail = fn
	return s
}

func (s *SMTPSender) SendPurchaseConfirmation(ctx context.Context, email string, displayName string, ticket *model.Ticket) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var body bytes.Buffer
	err := s.tmpl.Execute(&body, struct {
		Name    string
		Partial bool
		Ticket  *model.Ticket
	}{
		Name:    displayName,
		Partial: ticket.Status == model.TicketStatusPartial,
		Ticket:  ticket,
	})
	if err != nil {
		return fmt.Errorf("render confirmation: %w", err)
	}

	subject := fmt.Sprintf("Purchase confirmation - %s", ticket.Code)
	msg := s.buildMessage(email, subject, body.String())

	var auth smtp.Auth
	if s.cfg.SMTPUser != "" {
		auth = smtp.PlainAuth("", s.cfg.SMTPUser, s.cfg.SMTPPassword, s.cfg.SMTPHost)
	}
	addr := fmt.Sprintf("%s:%d", s.cfg.SMTPHost, s.cfg.SMTPPort)

	// 寄送函式不理會 ctx 時仍以 ctx 為準返回
	done := make(chan error, 1)
	go func() {
		done <- s.sendMail(ctx, addr, auth, s.cfg.From, []string{email}, msg)
	}()
	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("send mail: %w", err)
		}
		return nil
	case <-ctx.Done():
		return fmt.Errorf("send mail: %w", ctx.Err())
	}
}

// sendMailContext 與 smtp.SendMail 流程相同，但連線受 ctx 的期限限制
func sendMailContext(ctx context.Context, addr string, a smtp.Auth, from string, to []string, msg []byte) error {
	host, _, err := net.SplitHostPort(addr)
	if err != nil {
		return err
	}

	conn, err := (&net.Dialer{}).DialContext(ctx, "tcp", addr)
	if err != nil {
		return err
	}
	if deadline, ok := ctx.Deadline(); ok {
		if err := conn.SetDeadline(deadline); err != nil {
			conn.Close()
			return err
		}
	}

	c, err := smtp.NewClient(conn, host)
	if err != nil {
		conn.Close()
		return err
	}
	defer c.Close()

	if ok, _ := c.Extension("STARTTLS"); ok {
		if err := c.StartTLS(&tls.Config{ServerName: host}); err != nil {
			return err
		}
	}
	if a != nil {
		if ok, _ := c.Extension("AUTH"); ok {
			if err := c.Auth(a); err != nil {
				return err
			}
		}
	}
	if err := c.Mail(from); err != nil {
		return err
	}
	for _, rcpt := range to {
		if err := c.Rcpt(rcpt); err != nil {
			return err
		}
	}

	w, err := c.Data()
	if err != nil {
		return err
	}
	if _, err := w.Write(msg); err != nil {
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}
	return c.Quit()
}

func (s *SMTPSender) buildMessage(to, subject, htmlBody string) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", s.cfg.From)
	fmt.Fprintf(&b, "To: %s\r\n", to)
	fmt.Fprintf(&b, "Subject: %s\r\n", subject)
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/html; charset=UTF-8\r\n\r\n")
	b.WriteString(htmlBody)
	return []byte(b.String())
}

// NewSender SMTPHost 為空時回傳 LogSender
func NewSender(cfg config.MailConfig) Sender {
	if cfg.SMTPHost == "" {
		return NewLogSender()
	}
	return NewSMTPSender(cfg)
}
