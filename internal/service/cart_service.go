package service

import (
	"context"

	"go-gin-checkout/internal/model"
	"go-gin-checkout/internal/repository"
	apperrors "go-gin-checkout/pkg/app_errors"
)

// CartService 所有操作限購物車擁有者或管理者，成功時回傳最新購物車
type CartService interface {
	Get(ctx context.Context, principal model.Principal, cartID int) (*model.Cart, error)
	AddProduct(ctx context.Context, principal model.Principal, cartID int, productID int, quantity int) (*model.Cart, error)
	UpdateProductQuantity(ctx context.Context, principal model.Principal, cartID int, productID int, quantity int) (*model.Cart, error)
	RemoveProduct(ctx context.Context, principal model.Principal, cartID int, productID int) (*model.Cart, error)
	ReplaceProducts(ctx context.Context, principal model.Principal, cartID int, req model.ReplaceCartRequest) (*model.Cart, error)
	Clear(ctx context.Context, principal model.Principal, cartID int) (*model.Cart, error)
}

type CartServiceImpl struct {
	repo repository.CartRepository
}

func NewCartService(repo repository.CartRepository) CartService {
	return &CartServiceImpl{repo: repo}
}

// authorize 確認購物車存在且請求者有權限
func (s *CartServiceImpl) authorize(ctx context.Context, principal model.Principal, cartID int) (*model.Cart, error) {
	cart, err := s.repo.FindByID(ctx, cartID)
	if err != nil {
		return nil, err
	}
	if !principal.CanAccess(cart.UserID) {
		return nil, apperrors.ErrForbidden
	}
	return cart, nil
}

func (s *CartServiceImpl) Get(ctx context.Context, principal model.Principal, cartID int) (*model.Cart, error) {
	return s.authorize(ctx, principal, cartID)
}

func (s *CartServiceImpl) AddProduct(ctx context.Context, principal model.Principal, cartID int, productID int, quantity int) (*model.Cart, error) {
	return s.mutate(ctx, principal, cartID, func() error {
		return s.repo.AddLineItem(ctx, cartID, productID, quantity)
	})
}

func (s *CartServiceImpl) UpdateProductQuantity(ctx context.Context, principal model.Principal, cartID int, productID int, quantity int) (*model.Cart, error) {
	return s.mutate(ctx, principal, cartID, func() error {
		return s.repo.UpdateLineItemQuantity(ctx, cartID, productID, quantity)
	})
}

func (s *CartServiceImpl) RemoveProduct(ctx context.Context, principal model.Principal, cartID int, productID int) (*model.Cart, error) {
	return s.mutate(ctx, principal, cartID, func() error {
		return s.repo.RemoveLineItem(ctx, cartID, productID)
	})
}

func (s *CartServiceImpl) ReplaceProducts(ctx context.Context, principal model.Principal, cartID int, req model.ReplaceCartRequest) (*model.Cart, error) {
	if err := model.Validate(req); err != nil {
		return nil, err
	}
	return s.mutate(ctx, principal, cartID, func() error {
		return s.repo.ReplaceAllLineItems(ctx, cartID, req.Products)
	})
}

func (s *CartServiceImpl) Clear(ctx context.Context, principal model.Principal, cartID int) (*model.Cart, error) {
	return s.mutate(ctx, principal, cartID, func() error {
		return s.repo.Clear(ctx, cartID)
	})
}

func (s *CartServiceImpl) mutate(ctx context.Context, principal model.Principal, cartID int, fn func() error) (*model.Cart, error) {
	if _, err := s.authorize(ctx, principal, cartID); err != nil {
		return nil, err
	}
	if err := fn(); err != nil {
		return nil, err
	}
	return s.repo.FindByID(ctx, cartID)
}
