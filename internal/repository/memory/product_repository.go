package memory

import (
	"context"
	"sort"

	"go-gin-checkout/internal/model"
	"go-gin-checkout/internal/repository"
	apperrors "go-gin-checkout/pkg/app_errors"
)

type ProductRepository struct {
	store *Store
}

func NewProductRepository(store *Store) repository.ProductRepository {
	return &ProductRepository{store: store}
}

func (r *ProductRepository) Create(ctx context.Context, product *model.Product) (*model.Product, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range s.products {
		if p.Code == product.Code {
			return nil, apperrors.ErrDuplicateProduct
		}
	}

	s.productSeq++
	now := s.now().UTC()
	product.ID = s.productSeq
	product.CreatedAt = now
	product.UpdatedAt = now
	if product.Thumbnails == nil {
		product.Thumbnails = []string{}
	}
	s.products[product.ID] = product.Clone()

	return product, nil
}

func (r *ProductRepository) List(ctx context.Context) ([]*model.Product, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	products := make([]*model.Product, 0, len(s.products))
	for _, p := range s.products {
		products = append(products, p.Clone())
	}
	sort.Slice(products, func(i, j int) bool { return products[i].ID < products[j].ID })
	return products, nil
}

func (r *ProductRepository) FindByID(ctx context.Context, id int) (*model.Product, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.products[id]
	if !ok {
		return nil, apperrors.ErrProductNotFound
	}
	return p.Clone(), nil
}

// DecrementStock 檢查與扣減在同一把寫鎖內完成
func (r *ProductRepository) DecrementStock(ctx context.Context, id int, quantity int) error {
	if quantity <= 0 {
		return apperrors.ErrInvalidQuantity
	}

	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.products[id]
	if !ok {
		return apperrors.ErrProductNotFound
	}
	if !p.Status {
		return apperrors.ErrProductUnavailable
	}
	if p.Stock < quantity {
		return apperrors.ErrInsufficientStock
	}

	p.Stock -= quantity
	p.UpdatedAt = s.now().UTC()
	return nil
}

func (r *ProductRepository) IncrementStock(ctx context.Context, id int, quantity int) error {
	if quantity <= 0 {
		return apperrors.ErrInvalidQuantity
	}

	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.products[id]
	if !ok {
		return apperrors.ErrProductNotFound
	}

	p.Stock += quantity
	p.UpdatedAt = s.now().UTC()
	return nil
}

func (r *ProductRepository) HasStock(ctx context.Context, id int, quantity int) (bool, error) {
	if quantity <= 0 {
		return false, apperrors.ErrInvalidQuantity
	}

	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.products[id]
	if !ok {
		return false, apperrors.ErrProductNotFound
	}
	return p.CanFulfill(quantity), nil
}
