package repository

import (
	"errors"
	"go-gin-checkout/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolationCode = "23505"

// isUniqueViolation 判斷是否違反唯一索引；constraint 為空時不比對索引名稱
func isUniqueViolation(err error, constraint string) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != uniqueViolationCode {
		return false
	}
	return constraint == "" || pgErr.ConstraintName == constraint
}

const productColumns = `p.id, p.title, p.description, p.code, p.price, p.stock,
		p.status, p.category, p.thumbnails, p.created_at, p.updated_at`

func scanProduct(row pgx.Row) (*model.Product, error) {
	var product model.Product
	err := row.Scan(
		&product.ID,
		&product.Title,
		&product.Description,
		&product.Code,
		&product.Price,
		&product.Stock,
		&product.Status,
		&product.Category,
		&product.Thumbnails,
		&product.CreatedAt,
		&product.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &product, nil
}
