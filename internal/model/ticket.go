package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// TicketStatus 購買憑證狀態類型
type TicketStatus string

const (
	TicketStatusPending   TicketStatus = "pending"
	TicketStatusCompleted TicketStatus = "completed"
	TicketStatusPartial   TicketStatus = "partial"
	TicketStatusCancelled TicketStatus = "cancelled"
)

// IsValid 驗證狀態是否有效
func (s TicketStatus) IsValid() bool {
	switch s {
	case TicketStatusPending, TicketStatusCompleted, TicketStatusPartial, TicketStatusCancelled:
		return true
	}
	return false
}

// CanTransitionTo 檢查是否可以轉換到目標狀態
func (s TicketStatus) CanTransitionTo(target TicketStatus) bool {
	transitions := map[TicketStatus][]TicketStatus{
		TicketStatusPending:   {TicketStatusCompleted, TicketStatusPartial, TicketStatusCancelled},
		TicketStatusPartial:   {TicketStatusCompleted, TicketStatusCancelled},
		TicketStatusCompleted: {TicketStatusCancelled},
		TicketStatusCancelled: {}, // 不能轉換到任何狀態
	}

	allowed, ok := transitions[s]
	if !ok {
		return false
	}

	for _, status := range allowed {
		if status == target {
			return true
		}
	}
	return false
}

// TicketLine 憑證明細，單價於購買當下快照
type TicketLine struct {
	ProductID int             `json:"product_id" db:"product_id"`
	Title     string          `json:"title" db:"title"`
	Quantity  int             `json:"quantity" db:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price" db:"unit_price"`
	Subtotal  decimal.Decimal `json:"subtotal" db:"subtotal"`
}

// NewTicketLine 以商品目前價格建立明細
func NewTicketLine(product *Product, quantity int) TicketLine {
	return TicketLine{
		ProductID: product.ID,
		Title:     product.Title,
		Quantity:  quantity,
		UnitPrice: product.Price,
		Subtotal:  product.Price.Mul(decimal.NewFromInt(int64(quantity))),
	}
}

// Ticket 購買憑證模型
type Ticket struct {
	ID               int             `json:"id" db:"id"`
	Code             string          `json:"code" db:"code"`
	PurchaseDatetime time.Time       `json:"purchase_datetime" db:"purchase_datetime"`
	Purchaser        string          `json:"purchaser" db:"purchaser"`
	UserID           int             `json:"user_id" db:"user_id"`
	Lines            []TicketLine    `json:"products"`
	Amount           decimal.Decimal `json:"amount" db:"amount"`
	Status           TicketStatus    `json:"status" db:"status"`
	CreatedAt        time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at" db:"updated_at"`
}

// Recalculate 重新計算每筆小計與總額，不信任呼叫端傳入的金額
func (t *Ticket) Recalculate() {
	amount := decimal.Zero
	for i := range t.Lines {
		line := &t.Lines[i]
		line.Subtotal = line.UnitPrice.Mul(decimal.NewFromInt(int64(line.Quantity)))
		amount = amount.Add(line.Subtotal)
	}
	t.Amount = amount
}

func (t *Ticket) ItemsCount() int {
	n := 0
	for _, line := range t.Lines {
		n += line.Quantity
	}
	return n
}

func (t *Ticket) Clone() *Ticket {
	if t == nil {
		return nil
	}
	cp := *t
	cp.Lines = append([]TicketLine(nil), t.Lines...)
	return &cp
}

// TicketSummary 憑證摘要
type TicketSummary struct {
	Code             string          `json:"code"`
	PurchaseDatetime time.Time       `json:"purchase_datetime"`
	Amount           decimal.Decimal `json:"amount"`
	Purchaser        string          `json:"purchaser"`
	Status           TicketStatus    `json:"status"`
	ItemsCount       int             `json:"items_count"`
}

func (t *Ticket) Summary() TicketSummary {
	return TicketSummary{
		Code:             t.Code,
		PurchaseDatetime: t.PurchaseDatetime,
		Amount:           t.Amount,
		Purchaser:        t.Purchaser,
		Status:           t.Status,
		ItemsCount:       t.ItemsCount(),
	}
}

const (
	DefaultTicketListLimit = 100
	MaxTicketListLimit     = 100
)

// TicketFilter 憑證查詢條件
type TicketFilter struct {
	Status *TicketStatus `form:"status"`
	From   *time.Time    `form:"from" time_format:"2006-01-02T15:04:05Z07:00"`
	To     *time.Time    `form:"to" time_format:"2006-01-02T15:04:05Z07:00"`
	Limit  int           `form:"limit"`
	Offset int           `form:"offset"`
}

// Normalize 套用預設分頁限制
func (f *TicketFilter) Normalize() {
	if f.Limit <= 0 || f.Limit > MaxTicketListLimit {
		f.Limit = DefaultTicketListLimit
	}
	if f.Offset < 0 {
		f.Offset = 0
	}
}

// UpdateTicketStatusRequest 管理者更新憑證狀態
type UpdateTicketStatusRequest struct {
	Status TicketStatus `json:"status" validate:"required,oneof=pending completed partial cancelled"`
}

// SalesRange 銷售總額查詢區間
type SalesRange struct {
	From *time.Time `form:"from" time_format:"2006-01-02T15:04:05Z07:00"`
	To   *time.Time `form:"to" time_format:"2006-01-02T15:04:05Z07:00"`
}
