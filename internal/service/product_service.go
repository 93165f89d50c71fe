package service

import (
	"context"

	"go-gin-checkout/internal/model"
	"go-gin-checkout/internal/repository"
)

type ProductService interface {
	List(ctx context.Context) ([]*model.Product, error)
	Get(ctx context.Context, id int) (*model.Product, error)
	Create(ctx context.Context, req model.CreateProductRequest) (*model.Product, error)
	// 補貨後回傳最新商品
	Restock(ctx context.Context, id int, req model.RestockRequest) (*model.Product, error)
}

type ProductServiceImpl struct {
	repo repository.ProductRepository
}

func NewProductService(repo repository.ProductRepository) ProductService {
	return &ProductServiceImpl{repo: repo}
}

func (s *ProductServiceImpl) List(ctx context.Context) ([]*model.Product, error) {
	return s.repo.List(ctx)
}

func (s *ProductServiceImpl) Get(ctx context.Context, id int) (*model.Product, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *ProductServiceImpl) Create(ctx context.Context, req model.CreateProductRequest) (*model.Product, error) {
	product := req.ToProduct()
	if err := model.Validate(product); err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, product)
}

func (s *ProductServiceImpl) Restock(ctx context.Context, id int, req model.RestockRequest) (*model.Product, error) {
	if err := model.Validate(req); err != nil {
		return nil, err
	}
	if err := s.repo.IncrementStock(ctx, id, req.Quantity); err != nil {
		return nil, err
	}
	return s.repo.FindByID(ctx, id)
}
