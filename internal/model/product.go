package model

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Product 商品模型
type Product struct {
	ID          int             `json:"id" db:"id"`
	Title       string          `json:"title" db:"title" validate:"required,min=3,max=200"`
	Description string          `json:"description" db:"description" validate:"required,min=10,max=1000"`
	Code        string          `json:"code" db:"code" validate:"required,max=64,productcode"`
	Price       decimal.Decimal `json:"price" db:"price" validate:"gte=0"`
	Stock       int             `json:"stock" db:"stock" validate:"gte=0"`
	Status      bool            `json:"status" db:"status"`
	Category    string          `json:"category" db:"category" validate:"required,min=2,max=100"`
	Thumbnails  []string        `json:"thumbnails" db:"thumbnails"`
	CreatedAt   time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at" db:"updated_at"`
}

// Normalize 統一 code 大寫並去除前後空白
func (p *Product) Normalize() {
	p.Title = strings.TrimSpace(p.Title)
	p.Description = strings.TrimSpace(p.Description)
	p.Code = strings.ToUpper(strings.TrimSpace(p.Code))
	p.Category = strings.TrimSpace(p.Category)
	if p.Thumbnails == nil {
		p.Thumbnails = []string{}
	}
}

// IsAvailable 檢查商品是否上架且有庫存
func (p *Product) IsAvailable() bool {
	return p.Status && p.Stock > 0
}

// CanFulfill 檢查商品是否上架且庫存足夠
func (p *Product) CanFulfill(quantity int) bool {
	return p.Status && p.Stock >= quantity
}

func (p *Product) Clone() *Product {
	if p == nil {
		return nil
	}
	cp := *p
	cp.Thumbnails = append([]string(nil), p.Thumbnails...)
	return &cp
}

// CreateProductRequest 建立商品請求
type CreateProductRequest struct {
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Code        string          `json:"code"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
	Status      *bool           `json:"status"`
	Category    string          `json:"category"`
	Thumbnails  []string        `json:"thumbnails"`
}

func (r CreateProductRequest) ToProduct() *Product {
	status := true
	if r.Status != nil {
		status = *r.Status
	}
	p := &Product{
		Title:       r.Title,
		Description: r.Description,
		Code:        r.Code,
		Price:       r.Price,
		Stock:       r.Stock,
		Status:      status,
		Category:    r.Category,
		Thumbnails:  r.Thumbnails,
	}
	p.Normalize()
	return p
}

// RestockRequest 補貨請求
type RestockRequest struct {
	Quantity int `json:"quantity" validate:"gte=1"`
}
