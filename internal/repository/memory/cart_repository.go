package memory

import (
	"context"
	"fmt"

	"go-gin-checkout/internal/model"
	"go-gin-checkout/internal/repository"
	apperrors "go-gin-checkout/pkg/app_errors"

	"go.uber.org/multierr"
)

type CartRepository struct {
	store *Store
}

func NewCartRepository(store *Store) repository.CartRepository {
	return &CartRepository{store: store}
}

func (r *CartRepository) Create(ctx context.Context, userID int) (*model.Cart, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.createCart(userID), nil
}

// createCart 呼叫端需持有寫鎖
func (s *Store) createCart(userID int) *model.Cart {
	s.cartSeq++
	now := s.now().UTC()
	cart := &model.Cart{
		ID:        s.cartSeq,
		UserID:    userID,
		Items:     []model.CartItem{},
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.carts[cart.ID] = cart
	return cart.Clone()
}

func (r *CartRepository) FindByID(ctx context.Context, id int) (*model.Cart, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	cart, ok := s.carts[id]
	if !ok {
		return nil, apperrors.ErrCartNotFound
	}
	return s.cartView(cart), nil
}

func (r *CartRepository) FindByUserID(ctx context.Context, userID int) (*model.Cart, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, cart := range s.carts {
		if cart.UserID == userID {
			return s.cartView(cart), nil
		}
	}
	return nil, apperrors.ErrCartNotFound
}

func (r *CartRepository) AddLineItem(ctx context.Context, cartID int, productID int, quantity int) error {
	if quantity < 1 {
		return apperrors.ErrInvalidQuantity
	}

	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	cart, ok := s.carts[cartID]
	if !ok {
		return apperrors.ErrCartNotFound
	}

	idx, exists := cart.FindItem(productID)
	combined := quantity
	if exists {
		combined += cart.Items[idx].Quantity
	}
	if err := model.ValidateLineItem(s.products[productID], combined); err != nil {
		return err
	}

	if exists {
		cart.Items[idx].Quantity = combined
	} else {
		cart.Items = append(cart.Items, model.CartItem{ProductID: productID, Quantity: quantity})
	}
	cart.UpdatedAt = s.now().UTC()
	return nil
}

func (r *CartRepository) RemoveLineItem(ctx context.Context, cartID int, productID int) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	cart, ok := s.carts[cartID]
	if !ok {
		return apperrors.ErrCartNotFound
	}

	idx, exists := cart.FindItem(productID)
	if !exists {
		return apperrors.ErrProductNotInCart
	}
	cart.Items = append(cart.Items[:idx], cart.Items[idx+1:]...)
	cart.UpdatedAt = s.now().UTC()
	return nil
}

func (r *CartRepository) UpdateLineItemQuantity(ctx context.Context, cartID int, productID int, quantity int) error {
	if quantity < 1 {
		return apperrors.ErrInvalidQuantity
	}

	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	cart, ok := s.carts[cartID]
	if !ok {
		return apperrors.ErrCartNotFound
	}
	if err := model.ValidateLineItem(s.products[productID], quantity); err != nil {
		return err
	}

	idx, exists := cart.FindItem(productID)
	if !exists {
		return apperrors.ErrProductNotInCart
	}
	cart.Items[idx].Quantity = quantity
	cart.UpdatedAt = s.now().UTC()
	return nil
}

func (r *CartRepository) ReplaceAllLineItems(ctx context.Context, cartID int, items []model.CartItemInput) error {
	merged := repository.MergeCartItems(items)

	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	cart, ok := s.carts[cartID]
	if !ok {
		return apperrors.ErrCartNotFound
	}

	var errs error
	for _, item := range merged {
		if err := model.ValidateLineItem(s.products[item.ProductID], item.Quantity); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("product %d: %w", item.ProductID, err))
		}
	}
	if errs != nil {
		return errs
	}

	next := make([]model.CartItem, 0, len(merged))
	for _, item := range merged {
		next = append(next, model.CartItem{ProductID: item.ProductID, Quantity: item.Quantity})
	}
	cart.Items = next
	cart.UpdatedAt = s.now().UTC()
	return nil
}

func (r *CartRepository) Clear(ctx context.Context, cartID int) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	cart, ok := s.carts[cartID]
	if !ok {
		return apperrors.ErrCartNotFound
	}
	cart.Items = []model.CartItem{}
	cart.UpdatedAt = s.now().UTC()
	return nil
}
