package repository

import (
	"context"
	"errors"
	"go-gin-checkout/internal/database"
	"go-gin-checkout/internal/model"
	apperrors "go-gin-checkout/pkg/app_errors"
	"time"

	"github.com/jackc/pgx/v5"
)

type ProductRepository interface {
	Create(ctx context.Context, product *model.Product) (*model.Product, error)
	List(ctx context.Context) ([]*model.Product, error)
	FindByID(ctx context.Context, id int) (*model.Product, error)

	// Stock methods
	DecrementStock(ctx context.Context, id int, quantity int) error
	IncrementStock(ctx context.Context, id int, quantity int) error
	HasStock(ctx context.Context, id int, quantity int) (bool, error)
}

type ProductRepositoryImpl struct {
	db database.DB
}

func NewProductRepository(db database.DB) ProductRepository {
	return &ProductRepositoryImpl{
		db: db,
	}
}

func (r *ProductRepositoryImpl) Create(ctx context.Context, product *model.Product) (*model.Product, error) {
	query := `
		INSERT INTO products (
		title, description, code, price, stock, status, category, thumbnails)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at
	`

	if product.Thumbnails == nil {
		product.Thumbnails = []string{}
	}

	err := r.db.QueryRow(ctx, query,
		product.Title, product.Description, product.Code, product.Price,
		product.Stock, product.Status, product.Category, product.Thumbnails,
	).Scan(
		&product.ID,
		&product.CreatedAt,
		&product.UpdatedAt,
	)

	if err != nil {
		if isUniqueViolation(err, "products_code_key") {
			return nil, apperrors.ErrDuplicateProduct
		}
		return nil, err
	}

	return product, nil
}

func (r *ProductRepositoryImpl) List(ctx context.Context) ([]*model.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products p
		ORDER BY p.id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := make([]*model.Product, 0)

	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, product)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return products, nil
}

func (r *ProductRepositoryImpl) FindByID(ctx context.Context, id int) (*model.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products p
		WHERE p.id = $1
	`

	product, err := scanProduct(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrProductNotFound
		}
		return nil, err
	}

	return product, nil
}

// DecrementStock 以單一條件式 UPDATE 扣庫存，檢查與扣減在同一個語句內完成
func (r *ProductRepositoryImpl) DecrementStock(ctx context.Context, id int, quantity int) error {
	if quantity <= 0 {
		return apperrors.ErrInvalidQuantity
	}

	query := `
		UPDATE products
		SET stock = stock - $1, updated_at = $2
		WHERE id = $3 AND status = TRUE AND stock >= $1
	`

	result, err := r.db.Exec(ctx, query, quantity, time.Now().UTC(), id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return r.stockFailure(ctx, id)
	}

	return nil
}

// stockFailure 扣減失敗後判斷原因，只用於回報，不影響扣減結果
func (r *ProductRepositoryImpl) stockFailure(ctx context.Context, id int) error {
	query := `SELECT status FROM products WHERE id = $1`

	var status bool
	err := r.db.QueryRow(ctx, query, id).Scan(&status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrProductNotFound
		}
		return err
	}

	if !status {
		return apperrors.ErrProductUnavailable
	}
	return apperrors.ErrInsufficientStock
}

func (r *ProductRepositoryImpl) IncrementStock(ctx context.Context, id int, quantity int) error {
	if quantity <= 0 {
		return apperrors.ErrInvalidQuantity
	}

	query := `
		UPDATE products
		SET stock = stock + $1, updated_at = $2
		WHERE id = $3
	`

	result, err := r.db.Exec(ctx, query, quantity, time.Now().UTC(), id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrProductNotFound
	}

	return nil
}

func (r *ProductRepositoryImpl) HasStock(ctx context.Context, id int, quantity int) (bool, error) {
	if quantity <= 0 {
		return false, apperrors.ErrInvalidQuantity
	}

	query := `SELECT status AND stock >= $2 FROM products WHERE id = $1`

	var ok bool
	err := r.db.QueryRow(ctx, query, id, quantity).Scan(&ok)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, apperrors.ErrProductNotFound
		}
		return false, err
	}

	return ok, nil
}
