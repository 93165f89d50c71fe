package repository

import (
	"context"
	"errors"
	"fmt"
	"go-gin-checkout/internal/database"
	"go-gin-checkout/internal/model"
	apperrors "go-gin-checkout/pkg/app_errors"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/multierr"
)

type CartRepository interface {
	Create(ctx context.Context, userID int) (*model.Cart, error)
	FindByID(ctx context.Context, id int) (*model.Cart, error)
	FindByUserID(ctx context.Context, userID int) (*model.Cart, error)

	// Line item methods
	AddLineItem(ctx context.Context, cartID int, productID int, quantity int) error
	RemoveLineItem(ctx context.Context, cartID int, productID int) error
	UpdateLineItemQuantity(ctx context.Context, cartID int, productID int, quantity int) error
	ReplaceAllLineItems(ctx context.Context, cartID int, items []model.CartItemInput) error
	Clear(ctx context.Context, cartID int) error
}

type CartRepositoryImpl struct {
	db database.DB
}

func NewCartRepository(db database.DB) CartRepository {
	return &CartRepositoryImpl{
		db: db,
	}
}

func (r *CartRepositoryImpl) Create(ctx context.Context, userID int) (*model.Cart, error) {
	query := `
		INSERT INTO carts (user_id)
		VALUES ($1)
		RETURNING id, user_id, created_at, updated_at
	`

	cart := model.Cart{Items: []model.CartItem{}}
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&cart.ID,
		&cart.UserID,
		&cart.CreatedAt,
		&cart.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &cart, nil
}

func (r *CartRepositoryImpl) FindByID(ctx context.Context, id int) (*model.Cart, error) {
	query := `
		SELECT id, user_id, created_at, updated_at
		FROM carts
		WHERE id = $1
	`
	return r.findOne(ctx, query, id)
}

func (r *CartRepositoryImpl) FindByUserID(ctx context.Context, userID int) (*model.Cart, error) {
	query := `
		SELECT id, user_id, created_at, updated_at
		FROM carts
		WHERE user_id = $1
	`
	return r.findOne(ctx, query, userID)
}

func (r *CartRepositoryImpl) findOne(ctx context.Context, query string, arg int) (*model.Cart, error) {
	var cart model.Cart
	err := r.db.QueryRow(ctx, query, arg).Scan(
		&cart.ID,
		&cart.UserID,
		&cart.CreatedAt,
		&cart.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCartNotFound
		}
		return nil, err
	}

	items, err := r.loadItems(ctx, cart.ID)
	if err != nil {
		return nil, err
	}
	cart.Items = items

	return &cart, nil
}

// loadItems 以單一查詢讀取明細與商品，確保同一時間點的庫存與價格
func (r *CartRepositoryImpl) loadItems(ctx context.Context, cartID int) ([]model.CartItem, error) {
	query := `
		SELECT ci.product_id, ci.quantity, ` + productColumns + `
		FROM cart_items ci
		JOIN products p ON p.id = ci.product_id
		WHERE ci.cart_id = $1
		ORDER BY ci.position
	`

	rows, err := r.db.Query(ctx, query, cartID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.CartItem, 0)
	for rows.Next() {
		var item model.CartItem
		var product model.Product
		err := rows.Scan(
			&item.ProductID,
			&item.Quantity,
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
		item.Product = &product
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

// lockCart 鎖住購物車列，同一購物車的異動依序執行
func (r *CartRepositoryImpl) lockCart(ctx context.Context, tx pgx.Tx, cartID int) error {
	query := `SELECT id FROM carts WHERE id = $1 FOR UPDATE`

	var id int
	if err := tx.QueryRow(ctx, query, cartID).Scan(&id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrCartNotFound
		}
		return err
	}
	return nil
}

func (r *CartRepositoryImpl) touchCart(ctx context.Context, tx pgx.Tx, cartID int) error {
	_, err := tx.Exec(ctx, `UPDATE carts SET updated_at = $1 WHERE id = $2`, time.Now().UTC(), cartID)
	return err
}

func (r *CartRepositoryImpl) findProduct(ctx context.Context, tx pgx.Tx, productID int) (*model.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products p
		WHERE p.id = $1
	`

	product, err := scanProduct(tx.QueryRow(ctx, query, productID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return product, nil
}

// AddLineItem 合併後的總數量需通過庫存檢查才寫入
func (r *CartRepositoryImpl) AddLineItem(ctx context.Context, cartID int, productID int, quantity int) error {
	if quantity < 1 {
		return apperrors.ErrInvalidQuantity
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if err := r.lockCart(ctx, tx, cartID); err != nil {
		return err
	}

	product, err := r.findProduct(ctx, tx, productID)
	if err != nil {
		return err
	}

	existing := 0
	err = tx.QueryRow(ctx,
		`SELECT quantity FROM cart_items WHERE cart_id = $1 AND product_id = $2`,
		cartID, productID,
	).Scan(&existing)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return err
	}

	if err := model.ValidateLineItem(product, existing+quantity); err != nil {
		return err
	}

	query := `
		INSERT INTO cart_items (cart_id, product_id, quantity)
		VALUES ($1, $2, $3)
		ON CONFLICT (cart_id, product_id)
		DO UPDATE SET quantity = cart_items.quantity + EXCLUDED.quantity
	`
	if _, err := tx.Exec(ctx, query, cartID, productID, quantity); err != nil {
		return err
	}

	if err := r.touchCart(ctx, tx, cartID); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (r *CartRepositoryImpl) RemoveLineItem(ctx context.Context, cartID int, productID int) error {
	query := `
		DELETE FROM cart_items
		WHERE cart_id = $1 AND product_id = $2
	`

	result, err := r.db.Exec(ctx, query, cartID, productID)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrProductNotInCart
	}

	return nil
}

func (r *CartRepositoryImpl) UpdateLineItemQuantity(ctx context.Context, cartID int, productID int, quantity int) error {
	if quantity < 1 {
		return apperrors.ErrInvalidQuantity
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if err := r.lockCart(ctx, tx, cartID); err != nil {
		return err
	}

	product, err := r.findProduct(ctx, tx, productID)
	if err != nil {
		return err
	}
	if err := model.ValidateLineItem(product, quantity); err != nil {
		return err
	}

	result, err := tx.Exec(ctx,
		`UPDATE cart_items SET quantity = $1 WHERE cart_id = $2 AND product_id = $3`,
		quantity, cartID, productID,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrProductNotInCart
	}

	if err := r.touchCart(ctx, tx, cartID); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

// ReplaceAllLineItems 先驗證全部明細，全部通過才整批替換；重複商品合併數量
func (r *CartRepositoryImpl) ReplaceAllLineItems(ctx context.Context, cartID int, items []model.CartItemInput) error {
	merged := MergeCartItems(items)

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if err := r.lockCart(ctx, tx, cartID); err != nil {
		return err
	}

	var errs error
	for _, item := range merged {
		product, err := r.findProduct(ctx, tx, item.ProductID)
		if err != nil {
			return err
		}
		if err := model.ValidateLineItem(product, item.Quantity); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("product %d: %w", item.ProductID, err))
		}
	}
	if errs != nil {
		return errs
	}

	if _, err := tx.Exec(ctx, `DELETE FROM cart_items WHERE cart_id = $1`, cartID); err != nil {
		return err
	}

	for _, item := range merged {
		_, err := tx.Exec(ctx,
			`INSERT INTO cart_items (cart_id, product_id, quantity) VALUES ($1, $2, $3)`,
			cartID, item.ProductID, item.Quantity,
		)
		if err != nil {
			return err
		}
	}

	if err := r.touchCart(ctx, tx, cartID); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (r *CartRepositoryImpl) Clear(ctx context.Context, cartID int) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if err := r.lockCart(ctx, tx, cartID); err != nil {
		return err
	}

	if _, err := tx.Exec(ctx, `DELETE FROM cart_items WHERE cart_id = $1`, cartID); err != nil {
		return err
	}

	if err := r.touchCart(ctx, tx, cartID); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

// MergeCartItems 合併重複商品並保留第一次出現的順序
func MergeCartItems(items []model.CartItemInput) []model.CartItemInput {
	merged := make([]model.CartItemInput, 0, len(items))
	index := make(map[int]int, len(items))
	for _, item := range items {
		if i, ok := index[item.ProductID]; ok {
			merged[i].Quantity += item.Quantity
			continue
		}
		index[item.ProductID] = len(merged)
		merged = append(merged, item)
	}
	return merged
}
