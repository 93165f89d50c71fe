package service_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"go-gin-checkout/internal/model"
	"go-gin-checkout/internal/queue"
	"go-gin-checkout/internal/repository"
	"go-gin-checkout/internal/repository/memory"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	users    repository.UserRepository
	carts    repository.CartRepository
	products repository.ProductRepository
	tickets  repository.TicketRepository
	queue    queue.NotificationQueue
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := memory.NewStore()
	return &fixture{
		users:    memory.NewUserRepository(store),
		carts:    memory.NewCartRepository(store),
		products: memory.NewProductRepository(store),
		tickets:  memory.NewTicketRepository(store, nil, 0),
		queue:    queue.NewNotificationQueue(64, 3),
	}
}

func (f *fixture) createUser(t *testing.T, email string) *model.User {
	t.Helper()
	user, err := f.users.Create(context.Background(), &model.User{
		FirstName: "Test",
		LastName:  "Buyer",
		Email:     email,
		Age:       30,
		Role:      model.RoleUser,
	})
	require.NoError(t, err)
	return user
}

func (f *fixture) createProduct(t *testing.T, code string, price int64, stock int) *model.Product {
	t.Helper()
	product, err := f.products.Create(context.Background(), &model.Product{
		Title:       "Product " + code,
		Description: "Product used by checkout tests",
		Code:        code,
		Price:       decimal.NewFromInt(price),
		Stock:       stock,
		Status:      true,
		Category:    "tests",
	})
	require.NoError(t, err)
	return product
}

func (f *fixture) addToCart(t *testing.T, cartID, productID, quantity int) {
	t.Helper()
	require.NoError(t, f.carts.AddLineItem(context.Background(), cartID, productID, quantity))
}

// setStock 先放入購物車再扣到指定庫存，用來製造庫存不足的明細
func (f *fixture) setStock(t *testing.T, productID, stock int) {
	t.Helper()
	p, err := f.products.FindByID(context.Background(), productID)
	require.NoError(t, err)
	if diff := p.Stock - stock; diff > 0 {
		require.NoError(t, f.products.DecrementStock(context.Background(), productID, diff))
	}
}

func (f *fixture) stockOf(t *testing.T, productID int) int {
	t.Helper()
	p, err := f.products.FindByID(context.Background(), productID)
	require.NoError(t, err)
	return p.Stock
}

func receiveConfirmation(t *testing.T, q queue.NotificationQueue) *model.PurchaseConfirmation {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	msgs, err := q.SubscribeConfirmations(ctx)
	require.NoError(t, err)
	select {
	case d := <-msgs:
		d.Ack()
		return d.Data
	case <-time.After(2 * time.Second):
		t.Fatal("no purchase confirmation published")
	}
	return nil
}

func userEmail(i int) string {
	return fmt.Sprintf("user%d@example.com", i)
}
