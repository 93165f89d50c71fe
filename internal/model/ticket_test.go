package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestTicketStatus_IsValid(t *testing.T) {
	for _, s := range []TicketStatus{TicketStatusPending, TicketStatusCompleted, TicketStatusPartial, TicketStatusCancelled} {
		assert.True(t, s.IsValid(), s)
	}
	assert.False(t, TicketStatus("refunded").IsValid())
	assert.False(t, TicketStatus("").IsValid())
}

func TestTicketStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		from, to TicketStatus
		want     bool
	}{
		{TicketStatusPending, TicketStatusCompleted, true},
		{TicketStatusPartial, TicketStatusCompleted, true},
		{TicketStatusCompleted, TicketStatusCancelled, true},
		{TicketStatusCompleted, TicketStatusPartial, false},
		{TicketStatusCancelled, TicketStatusCompleted, false},
		{TicketStatus("unknown"), TicketStatusCompleted, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to), "%s -> %s", tt.from, tt.to)
	}
}

func TestTicket_Recalculate(t *testing.T) {
	ticket := &Ticket{
		Amount: decimal.NewFromInt(999),
		Lines: []TicketLine{
			{ProductID: 1, Quantity: 2, UnitPrice: decimal.RequireFromString("10.50"), Subtotal: decimal.NewFromInt(1)},
			{ProductID: 2, Quantity: 3, UnitPrice: decimal.RequireFromString("0.10")},
		},
	}

	ticket.Recalculate()

	assert.True(t, decimal.RequireFromString("21.00").Equal(ticket.Lines[0].Subtotal))
	assert.True(t, decimal.RequireFromString("0.30").Equal(ticket.Lines[1].Subtotal))
	assert.True(t, decimal.RequireFromString("21.30").Equal(ticket.Amount))
	assert.Equal(t, 5, ticket.ItemsCount())
}

func TestTicket_Summary(t *testing.T) {
	ticket := &Ticket{
		Code:      "ABCDE12345",
		Purchaser: "buyer@example.com",
		Status:    TicketStatusPartial,
		Lines:     []TicketLine{NewTicketLine(&Product{ID: 1, Title: "Mug", Price: decimal.NewFromInt(7)}, 4)},
	}
	ticket.Recalculate()

	summary := ticket.Summary()
	assert.Equal(t, "ABCDE12345", summary.Code)
	assert.Equal(t, 4, summary.ItemsCount)
	assert.True(t, decimal.NewFromInt(28).Equal(summary.Amount))
	assert.Equal(t, TicketStatusPartial, summary.Status)
}

func TestTicketFilter_Normalize(t *testing.T) {
	f := TicketFilter{Limit: 500, Offset: -3}
	f.Normalize()
	assert.Equal(t, MaxTicketListLimit, f.Limit)
	assert.Equal(t, 0, f.Offset)

	f = TicketFilter{Limit: 20, Offset: 40}
	f.Normalize()
	assert.Equal(t, 20, f.Limit)
	assert.Equal(t, 40, f.Offset)
}
