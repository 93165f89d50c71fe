package memory_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"go-gin-checkout/internal/model"
	"go-gin-checkout/internal/repository"
	"go-gin-checkout/internal/repository/memory"
	apperrors "go-gin-checkout/pkg/app_errors"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
)

type repos struct {
	products repository.ProductRepository
	carts    repository.CartRepository
	tickets  repository.TicketRepository
	users    repository.UserRepository
}

func setup() repos {
	store := memory.NewStore()
	return repos{
		products: memory.NewProductRepository(store),
		carts:    memory.NewCartRepository(store),
		tickets:  memory.NewTicketRepository(store, nil, 0),
		users:    memory.NewUserRepository(store),
	}
}

func createProduct(t *testing.T, r repos, code string, price string, stock int) *model.Product {
	t.Helper()
	p, err := r.products.Create(context.Background(), &model.Product{
		Title:       "Product " + code,
		Description: "Description for " + code,
		Code:        code,
		Price:       decimal.RequireFromString(price),
		Stock:       stock,
		Status:      true,
		Category:    "general",
	})
	require.NoError(t, err)
	return p
}

func createUser(t *testing.T, r repos, email string) *model.User {
	t.Helper()
	u, err := r.users.Create(context.Background(), &model.User{
		FirstName: "Test",
		LastName:  "User",
		Email:     email,
		Age:       30,
		Role:      model.RoleUser,
	})
	require.NoError(t, err)
	return u
}

func TestProductRepository_DecrementStock(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		r := setup()
		p := createProduct(t, r, "A", "1.00", 5)

		require.NoError(t, r.products.DecrementStock(ctx, p.ID, 2))

		got, _ := r.products.FindByID(ctx, p.ID)
		assert.Equal(t, 3, got.Stock)
	})

	t.Run("Failed - Fails closed", func(t *testing.T) {
		r := setup()
		p := createProduct(t, r, "A", "1.00", 1)

		assert.ErrorIs(t, r.products.DecrementStock(ctx, p.ID, 2), apperrors.ErrInsufficientStock)
		assert.ErrorIs(t, r.products.DecrementStock(ctx, p.ID, 0), apperrors.ErrInvalidQuantity)
		assert.ErrorIs(t, r.products.DecrementStock(ctx, 999, 1), apperrors.ErrProductNotFound)

		got, _ := r.products.FindByID(ctx, p.ID)
		assert.Equal(t, 1, got.Stock)
	})

	t.Run("Success - No oversell under concurrency", func(t *testing.T) {
		r := setup()
		totalStock := 10
		p := createProduct(t, r, "HOT", "1.00", totalStock)

		var wg sync.WaitGroup
		var mu sync.Mutex
		successCount := 0
		failCount := 0

		for i := 0; i < 100; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				err := r.products.DecrementStock(ctx, p.ID, 1)
				mu.Lock()
				if err == nil {
					successCount++
				} else {
					failCount++
				}
				mu.Unlock()
			}()
		}
		wg.Wait()

		got, _ := r.products.FindByID(ctx, p.ID)
		assert.Equal(t, totalStock, successCount)
		assert.Equal(t, 90, failCount)
		assert.Equal(t, 0, got.Stock)
	})
}

func TestProductRepository_HasStock(t *testing.T) {
	ctx := context.Background()
	r := setup()
	p := createProduct(t, r, "A", "1.00", 2)

	ok, err := r.products.HasStock(ctx, p.ID, 2)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = r.products.HasStock(ctx, p.ID, 3)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, r.products.IncrementStock(ctx, p.ID, 1))
	ok, _ = r.products.HasStock(ctx, p.ID, 3)
	assert.True(t, ok)
}

func TestCartRepository_LineItems(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - Merge keeps insertion order", func(t *testing.T) {
		r := setup()
		u := createUser(t, r, "a@example.com")
		p1 := createProduct(t, r, "A", "2.00", 5)
		p2 := createProduct(t, r, "B", "3.00", 5)

		require.NoError(t, r.carts.AddLineItem(ctx, u.CartID, p1.ID, 1))
		require.NoError(t, r.carts.AddLineItem(ctx, u.CartID, p2.ID, 1))
		require.NoError(t, r.carts.AddLineItem(ctx, u.CartID, p1.ID, 2))

		cart, err := r.carts.FindByUserID(ctx, u.ID)
		require.NoError(t, err)
		require.Len(t, cart.Items, 2)
		assert.Equal(t, p1.ID, cart.Items[0].ProductID)
		assert.Equal(t, 3, cart.Items[0].Quantity)
		assert.Equal(t, p2.ID, cart.Items[1].ProductID)
		assert.True(t, decimal.RequireFromString("9.00").Equal(cart.Total()))
	})

	t.Run("Failed - Combined quantity exceeds stock", func(t *testing.T) {
		r := setup()
		u := createUser(t, r, "a@example.com")
		p := createProduct(t, r, "A", "2.00", 3)

		require.NoError(t, r.carts.AddLineItem(ctx, u.CartID, p.ID, 2))
		assert.ErrorIs(t, r.carts.AddLineItem(ctx, u.CartID, p.ID, 2), apperrors.ErrInsufficientStock)

		cart, _ := r.carts.FindByID(ctx, u.CartID)
		assert.Equal(t, 2, cart.Items[0].Quantity)
	})

	t.Run("Failed - Update and remove", func(t *testing.T) {
		r := setup()
		u := createUser(t, r, "a@example.com")
		p := createProduct(t, r, "A", "2.00", 3)

		assert.ErrorIs(t, r.carts.UpdateLineItemQuantity(ctx, u.CartID, p.ID, 1), apperrors.ErrProductNotInCart)
		assert.ErrorIs(t, r.carts.RemoveLineItem(ctx, u.CartID, p.ID), apperrors.ErrProductNotInCart)
		assert.ErrorIs(t, r.carts.AddLineItem(ctx, 999, p.ID, 1), apperrors.ErrCartNotFound)

		require.NoError(t, r.carts.AddLineItem(ctx, u.CartID, p.ID, 1))
		assert.ErrorIs(t, r.carts.UpdateLineItemQuantity(ctx, u.CartID, p.ID, 4), apperrors.ErrInsufficientStock)
		assert.ErrorIs(t, r.carts.UpdateLineItemQuantity(ctx, u.CartID, p.ID, 0), apperrors.ErrInvalidQuantity)
		require.NoError(t, r.carts.UpdateLineItemQuantity(ctx, u.CartID, p.ID, 3))
		require.NoError(t, r.carts.RemoveLineItem(ctx, u.CartID, p.ID))

		cart, _ := r.carts.FindByID(ctx, u.CartID)
		assert.True(t, cart.IsEmpty())
	})

	t.Run("Failed - ReplaceAll is all or nothing", func(t *testing.T) {
		r := setup()
		u := createUser(t, r, "a@example.com")
		p1 := createProduct(t, r, "A", "2.00", 3)
		p2 := createProduct(t, r, "B", "2.00", 3)
		require.NoError(t, r.carts.AddLineItem(ctx, u.CartID, p1.ID, 1))

		err := r.carts.ReplaceAllLineItems(ctx, u.CartID, []model.CartItemInput{
			{ProductID: p2.ID, Quantity: 2},
			{ProductID: p1.ID, Quantity: 5},
			{ProductID: 999, Quantity: 1},
		})
		require.Error(t, err)
		assert.Len(t, multierr.Errors(err), 2)
		assert.ErrorIs(t, err, apperrors.ErrProductNotFound)

		cart, _ := r.carts.FindByID(ctx, u.CartID)
		require.Len(t, cart.Items, 1)
		assert.Equal(t, p1.ID, cart.Items[0].ProductID)

		require.NoError(t, r.carts.ReplaceAllLineItems(ctx, u.CartID, []model.CartItemInput{
			{ProductID: p2.ID, Quantity: 2},
		}))
		cart, _ = r.carts.FindByID(ctx, u.CartID)
		require.Len(t, cart.Items, 1)
		assert.Equal(t, p2.ID, cart.Items[0].ProductID)

		require.NoError(t, r.carts.Clear(ctx, u.CartID))
		cart, _ = r.carts.FindByID(ctx, u.CartID)
		assert.True(t, cart.IsEmpty())
	})
}

func TestTicketRepository(t *testing.T) {
	ctx := context.Background()

	line := func(productID int, qty int, price string) model.TicketLine {
		return model.TicketLine{ProductID: productID, Quantity: qty, UnitPrice: decimal.RequireFromString(price)}
	}

	t.Run("Success - Create and read back", func(t *testing.T) {
		r := setup()
		u := createUser(t, r, "a@example.com")

		created, err := r.tickets.Create(ctx, &model.Ticket{
			Purchaser: u.Email,
			UserID:    u.ID,
			Status:    model.TicketStatusCompleted,
			Amount:    decimal.NewFromInt(1),
			Lines:     []model.TicketLine{line(1, 2, "4.00"), line(2, 1, "1.50")},
		})
		require.NoError(t, err)
		assert.True(t, decimal.RequireFromString("9.50").Equal(created.Amount))

		byCode, err := r.tickets.FindByCode(ctx, created.Code)
		require.NoError(t, err)
		assert.Equal(t, created.ID, byCode.ID)

		_, err = r.tickets.FindByID(ctx, 999)
		assert.ErrorIs(t, err, apperrors.ErrTicketNotFound)
	})

	t.Run("Success - Codes unique under concurrent creation", func(t *testing.T) {
		r := setup()
		var wg sync.WaitGroup

		for i := 0; i < 100; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := r.tickets.Create(ctx, &model.Ticket{
					Purchaser: "a@example.com",
					UserID:    1,
					Status:    model.TicketStatusCompleted,
					Lines:     []model.TicketLine{line(1, 1, "1.00")},
				})
				assert.NoError(t, err)
			}()
		}
		wg.Wait()

		tickets, err := r.tickets.FindByUserID(ctx, 1)
		require.NoError(t, err)
		require.Len(t, tickets, 100)
		codes := make(map[string]bool)
		for _, tk := range tickets {
			codes[tk.Code] = true
		}
		assert.Len(t, codes, 100)
	})

	t.Run("Success - List, status and sales", func(t *testing.T) {
		r := setup()
		completed, err := r.tickets.Create(ctx, &model.Ticket{
			Purchaser: "a@example.com", UserID: 1, Status: model.TicketStatusCompleted,
			Lines: []model.TicketLine{line(1, 1, "10.00")},
		})
		require.NoError(t, err)
		partial, err := r.tickets.Create(ctx, &model.Ticket{
			Purchaser: "b@example.com", UserID: 2, Status: model.TicketStatusPartial,
			Lines: []model.TicketLine{line(1, 1, "5.00")},
		})
		require.NoError(t, err)

		status := model.TicketStatusPartial
		list, err := r.tickets.List(ctx, model.TicketFilter{Status: &status})
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, partial.ID, list[0].ID)

		total, err := r.tickets.TotalSales(ctx, nil, nil)
		require.NoError(t, err)
		assert.True(t, decimal.RequireFromString("10.00").Equal(total))

		_, err = r.tickets.UpdateStatus(ctx, partial.ID, model.TicketStatusCompleted)
		require.NoError(t, err)
		total, _ = r.tickets.TotalSales(ctx, nil, nil)
		assert.True(t, decimal.RequireFromString("15.00").Equal(total))

		future := time.Now().Add(time.Hour)
		total, _ = r.tickets.TotalSales(ctx, &future, nil)
		assert.True(t, total.IsZero())

		_, err = r.tickets.UpdateStatus(ctx, completed.ID, model.TicketStatusCancelled)
		require.NoError(t, err)
		_, err = r.tickets.UpdateStatus(ctx, completed.ID, model.TicketStatusCompleted)
		assert.ErrorIs(t, err, apperrors.ErrInvalidTicketStatus)
	})
}

func TestUserRepository(t *testing.T) {
	ctx := context.Background()
	r := setup()
	u := createUser(t, r, "a@example.com")
	assert.NotZero(t, u.CartID)

	cart, err := r.carts.FindByID(ctx, u.CartID)
	require.NoError(t, err)
	assert.Equal(t, u.ID, cart.UserID)

	found, err := r.users.FindByEmail(ctx, "A@Example.com")
	require.NoError(t, err)
	assert.Equal(t, u.ID, found.ID)

	_, err = r.users.Create(ctx, &model.User{Email: "a@example.com"})
	assert.ErrorIs(t, err, apperrors.ErrDuplicateEmail)

	_, err = r.users.FindByID(ctx, 999)
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}
