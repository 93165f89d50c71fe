package service

import (
	"context"

	"go-gin-checkout/internal/model"
	"go-gin-checkout/internal/repository"
)

type UserService interface {
	// 註冊並建立購物車
	Register(ctx context.Context, user *model.User) (*model.User, error)
	Get(ctx context.Context, id int) (*model.User, error)
}

type UserServiceImpl struct {
	repo repository.UserRepository
}

func NewUserService(repo repository.UserRepository) UserService {
	return &UserServiceImpl{repo: repo}
}

func (s *UserServiceImpl) Register(ctx context.Context, user *model.User) (*model.User, error) {
	user.Normalize()
	// 公開註冊不可自行指定管理者
	if user.Role == model.RoleAdmin {
		user.Role = model.RoleUser
	}
	if err := model.Validate(user); err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, user)
}

func (s *UserServiceImpl) Get(ctx context.Context, id int) (*model.User, error) {
	return s.repo.FindByID(ctx, id)
}
