package repository_test

import (
	"regexp"
	"testing"
	"time"

	"go-gin-checkout/internal/model"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

var fixedTime = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

var productColumnNames = []string{
	"id", "title", "description", "code", "price", "stock",
	"status", "category", "thumbnails", "created_at", "updated_at",
}

func newMockPool(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, mock.ExpectationsWereMet())
		mock.Close()
	})
	return mock
}

func q(sql string) string {
	return regexp.QuoteMeta(sql)
}

func productRowValues(p *model.Product) []interface{} {
	return []interface{}{
		p.ID, p.Title, p.Description, p.Code, p.Price, p.Stock,
		p.Status, p.Category, p.Thumbnails, fixedTime, fixedTime,
	}
}

func testProduct(id int, price string, stock int) *model.Product {
	return &model.Product{
		ID:          id,
		Title:       "Product",
		Description: "A product description",
		Code:        "P-1",
		Price:       decimal.RequireFromString(price),
		Stock:       stock,
		Status:      true,
		Category:    "general",
		Thumbnails:  []string{},
	}
}

func uniqueViolation(constraint string) error {
	return &pgconn.PgError{Code: "23505", ConstraintName: constraint}
}
