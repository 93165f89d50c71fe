package memory

import (
	"context"
	"strings"

	"go-gin-checkout/internal/model"
	"go-gin-checkout/internal/repository"
	apperrors "go-gin-checkout/pkg/app_errors"
)

type UserRepository struct {
	store *Store
}

func NewUserRepository(store *Store) repository.UserRepository {
	return &UserRepository{store: store}
}

func (r *UserRepository) Create(ctx context.Context, user *model.User) (*model.User, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Email == user.Email {
			return nil, apperrors.ErrDuplicateEmail
		}
	}

	s.userSeq++
	now := s.now().UTC()
	user.ID = s.userSeq
	user.CreatedAt = now
	user.UpdatedAt = now
	user.CartID = s.createCart(user.ID).ID

	cp := *user
	s.users[user.ID] = &cp
	return user, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id int) (*model.User, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	email = strings.ToLower(strings.TrimSpace(email))
	for _, u := range s.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}
