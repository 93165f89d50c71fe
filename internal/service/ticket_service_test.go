package service_test

import (
	"context"
	"testing"
	"time"

	"go-gin-checkout/internal/model"
	"go-gin-checkout/internal/service"
	apperrors "go-gin-checkout/pkg/app_errors"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTicketService(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	buyer := f.createUser(t, "buyer@example.com")
	other := f.createUser(t, "other@example.com")
	a := f.createProduct(t, "A-1", 10, 10)

	purchases := newPurchaseService(f)
	f.addToCart(t, buyer.CartID, a.ID, 2)
	first, err := purchases.ExecuteCheckout(ctx, buyer.ID)
	require.NoError(t, err)
	f.addToCart(t, buyer.CartID, a.ID, 1)
	second, err := purchases.ExecuteCheckout(ctx, buyer.ID)
	require.NoError(t, err)

	svc := service.NewTicketService(f.tickets)
	me := model.Principal{UserID: buyer.ID, Role: model.RoleUser}
	admin := model.Principal{UserID: other.ID, Role: model.RoleAdmin}

	t.Run("Success - Owner and admin can read", func(t *testing.T) {
		ticket, err := svc.Get(ctx, me, first.Ticket.ID)
		require.NoError(t, err)
		assert.Equal(t, first.Ticket.Code, ticket.Code)

		_, err = svc.Get(ctx, admin, first.Ticket.ID)
		assert.NoError(t, err)
	})

	t.Run("Failed - ErrForbidden", func(t *testing.T) {
		_, err := svc.Get(ctx, model.Principal{UserID: other.ID, Role: model.RoleUser}, first.Ticket.ID)
		assert.ErrorIs(t, err, apperrors.ErrForbidden)
	})

	t.Run("Success - ListMine newest first", func(t *testing.T) {
		tickets, err := svc.ListMine(ctx, me)
		require.NoError(t, err)
		require.Len(t, tickets, 2)
		assert.Equal(t, second.Ticket.ID, tickets[0].ID)
	})

	t.Run("Success - GetByCode", func(t *testing.T) {
		ticket, err := svc.GetByCode(ctx, second.Ticket.Code)
		require.NoError(t, err)
		assert.Equal(t, second.Ticket.ID, ticket.ID)
	})

	t.Run("Failed - List with inverted range", func(t *testing.T) {
		from := time.Now()
		to := from.Add(-time.Hour)
		_, err := svc.List(ctx, model.TicketFilter{From: &from, To: &to})
		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	})

	t.Run("Success - UpdateStatus and TotalSales", func(t *testing.T) {
		total, err := svc.TotalSales(ctx, model.SalesRange{})
		require.NoError(t, err)
		assert.True(t, total.Equal(decimal.NewFromInt(30)))

		ticket, err := svc.UpdateStatus(ctx, first.Ticket.ID, model.UpdateTicketStatusRequest{Status: model.TicketStatusCancelled})
		require.NoError(t, err)
		assert.Equal(t, model.TicketStatusCancelled, ticket.Status)

		total, err = svc.TotalSales(ctx, model.SalesRange{})
		require.NoError(t, err)
		assert.True(t, total.Equal(decimal.NewFromInt(10)))

		completed := model.TicketStatusCompleted
		tickets, err := svc.List(ctx, model.TicketFilter{Status: &completed})
		require.NoError(t, err)
		require.Len(t, tickets, 1)
		assert.Equal(t, second.Ticket.ID, tickets[0].ID)
	})

	t.Run("Failed - Invalid transition", func(t *testing.T) {
		_, err := svc.UpdateStatus(ctx, first.Ticket.ID, model.UpdateTicketStatusRequest{Status: model.TicketStatusCompleted})
		assert.ErrorIs(t, err, apperrors.ErrInvalidTicketStatus)
	})

	t.Run("Failed - Unknown status", func(t *testing.T) {
		_, err := svc.UpdateStatus(ctx, first.Ticket.ID, model.UpdateTicketStatusRequest{Status: "refunded"})
		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	})
}
