package model

import (
	"time"

	apperrors "go-gin-checkout/pkg/app_errors"

	"github.com/shopspring/decimal"
)

// CartItem 購物車明細，Product 為讀取當下的商品狀態
type CartItem struct {
	ProductID int      `json:"product_id" db:"product_id"`
	Quantity  int      `json:"quantity" db:"quantity"`
	Product   *Product `json:"product,omitempty" db:"-"`
}

// Cart 購物車模型，Items 依加入順序排列
type Cart struct {
	ID        int        `json:"id" db:"id"`
	UserID    int        `json:"user_id" db:"user_id"`
	Items     []CartItem `json:"products"`
	CreatedAt time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt time.Time  `json:"updated_at" db:"updated_at"`
}

func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// FindItem 回傳商品在購物車中的位置
func (c *Cart) FindItem(productID int) (int, bool) {
	for i, item := range c.Items {
		if item.ProductID == productID {
			return i, true
		}
	}
	return -1, false
}

// Total 依目前商品價格計算購物車總額
func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range c.Items {
		if item.Product == nil {
			continue
		}
		total = total.Add(item.Product.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return total
}

func (c *Cart) TotalItems() int {
	n := 0
	for _, item := range c.Items {
		n += item.Quantity
	}
	return n
}

func (c *Cart) Clone() *Cart {
	if c == nil {
		return nil
	}
	cp := *c
	cp.Items = make([]CartItem, len(c.Items))
	for i, item := range c.Items {
		cp.Items[i] = CartItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Product:   item.Product.Clone(),
		}
	}
	return &cp
}

// ValidateLineItem 檢查商品能否以指定數量放進購物車
func ValidateLineItem(product *Product, quantity int) error {
	if quantity < 1 {
		return apperrors.ErrInvalidQuantity
	}
	if product == nil {
		return apperrors.ErrProductNotFound
	}
	if !product.Status {
		return apperrors.ErrProductUnavailable
	}
	if product.Stock < quantity {
		return apperrors.ErrInsufficientStock
	}
	return nil
}

// CartItemInput 單筆購物車明細輸入
type CartItemInput struct {
	ProductID int `json:"product_id" validate:"required,gt=0"`
	Quantity  int `json:"quantity" validate:"required,gte=1"`
}

// ReplaceCartRequest 整批替換購物車內容
type ReplaceCartRequest struct {
	Products []CartItemInput `json:"products" validate:"dive"`
}

// QuantityRequest 新增或更新數量；新增時省略視為 1
type QuantityRequest struct {
	Quantity *int `json:"quantity"`
}
