package repository

import (
	"context"
	"crypto/rand"
	"io"
	"math/big"

	apperrors "go-gin-checkout/pkg/app_errors"
)

const (
	TicketCodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	TicketCodeLength   = 10
)

// CodeExistsFunc 查詢 code 是否已被使用
type CodeExistsFunc func(ctx context.Context, code string) (bool, error)

// TicketCodeGenerator 產生不重複的憑證代碼；MaxAttempts <= 0 代表不限次數
type TicketCodeGenerator struct {
	MaxAttempts int
	random      io.Reader
}

func NewTicketCodeGenerator(maxAttempts int) *TicketCodeGenerator {
	return &TicketCodeGenerator{
		MaxAttempts: maxAttempts,
		random:      rand.Reader,
	}
}

// Generate 重複產生直到 exists 回報沒有碰撞
func (g *TicketCodeGenerator) Generate(ctx context.Context, exists CodeExistsFunc) (string, error) {
	for attempt := 1; g.MaxAttempts <= 0 || attempt <= g.MaxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		code, err := g.randomCode()
		if err != nil {
			return "", err
		}

		taken, err := exists(ctx, code)
		if err != nil {
			return "", err
		}
		if !taken {
			return code, nil
		}
	}
	return "", apperrors.ErrTicketCodeExhausted
}

func (g *TicketCodeGenerator) randomCode() (string, error) {
	max := big.NewInt(int64(len(TicketCodeAlphabet)))
	buf := make([]byte, TicketCodeLength)
	for i := range buf {
		n, err := rand.Int(g.random, max)
		if err != nil {
			return "", err
		}
		buf[i] = TicketCodeAlphabet[n.Int64()]
	}
	return string(buf), nil
}
