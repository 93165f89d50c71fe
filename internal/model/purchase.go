package model

// UnfulfillableLine 結帳前即判定庫存不足或已下架的明細
type UnfulfillableLine struct {
	ProductID         int    `json:"productId"`
	Title             string `json:"title"`
	RequestedQuantity int    `json:"requestedQuantity"`
	AvailableStock    int    `json:"availableStock"`
}

// FailedLine 扣庫存時失敗的明細
type FailedLine struct {
	ProductID         int    `json:"productId"`
	Title             string `json:"title"`
	RequestedQuantity int    `json:"requestedQuantity"`
	Error             string `json:"error"`
}

// CheckoutOutcome 逐筆處理的累積結果
type CheckoutOutcome struct {
	Succeeded []TicketLine        `json:"-"`
	Failed    []FailedLine        `json:"failedProducts"`
	Skipped   []UnfulfillableLine `json:"productsWithoutStock"`
}

func NewCheckoutOutcome() CheckoutOutcome {
	return CheckoutOutcome{
		Succeeded: []TicketLine{},
		Failed:    []FailedLine{},
		Skipped:   []UnfulfillableLine{},
	}
}

func (o *CheckoutOutcome) Skip(line UnfulfillableLine) {
	o.Skipped = append(o.Skipped, line)
}

func (o *CheckoutOutcome) Fail(line FailedLine) {
	o.Failed = append(o.Failed, line)
}

func (o *CheckoutOutcome) Succeed(line TicketLine) {
	o.Succeeded = append(o.Succeeded, line)
}

// IsPartial 任何一筆被略過或失敗即為部分成交
func (o *CheckoutOutcome) IsPartial() bool {
	return len(o.Skipped) > 0 || len(o.Failed) > 0
}

// PurchaseResult 結帳結果
type PurchaseResult struct {
	Success bool    `json:"success"`
	Ticket  *Ticket `json:"ticket,omitempty"`
	Message string  `json:"message"`
	CheckoutOutcome
}

const (
	MessagePurchaseCompleted = "Purchase completed successfully"
	MessagePurchasePartial   = "Partial purchase completed. Some products did not have enough stock."
	MessageNoStock           = "No product has enough stock"
	MessageNothingProcessed  = "No product could be processed"
)

// PurchaseConfirmation 購買通知訊息
type PurchaseConfirmation struct {
	MessageID   string  `json:"message_id"`
	Email       string  `json:"email"`
	DisplayName string  `json:"display_name"`
	Ticket      *Ticket `json:"ticket"`
}
