package repository

import (
	"context"
	"errors"
	"go-gin-checkout/internal/database"
	"go-gin-checkout/internal/model"
	apperrors "go-gin-checkout/pkg/app_errors"
	"strings"

	"github.com/jackc/pgx/v5"
)

type UserRepository interface {
	// 建立使用者時一併建立購物車
	Create(ctx context.Context, user *model.User) (*model.User, error)
	FindByID(ctx context.Context, id int) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
}

type UserRepositoryImpl struct {
	db database.DB
}

func NewUserRepository(db database.DB) UserRepository {
	return &UserRepositoryImpl{
		db: db,
	}
}

func (r *UserRepositoryImpl) Create(ctx context.Context, user *model.User) (*model.User, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO users (first_name, last_name, email, age, role)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`
	err = tx.QueryRow(ctx, query,
		user.FirstName, user.LastName, user.Email, user.Age, user.Role,
	).Scan(
		&user.ID,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err, "users_email_key") {
			return nil, apperrors.ErrDuplicateEmail
		}
		return nil, err
	}

	err = tx.QueryRow(ctx, `INSERT INTO carts (user_id) VALUES ($1) RETURNING id`, user.ID).Scan(&user.CartID)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	return user, nil
}

const userSelect = `
		SELECT u.id, u.first_name, u.last_name, u.email, u.age, u.role,
				COALESCE(c.id, 0), u.created_at, u.updated_at
		FROM users u
		LEFT JOIN carts c ON c.user_id = u.id
`

func (r *UserRepositoryImpl) FindByID(ctx context.Context, id int) (*model.User, error) {
	return r.findOne(ctx, userSelect+` WHERE u.id = $1`, id)
}

func (r *UserRepositoryImpl) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	return r.findOne(ctx, userSelect+` WHERE u.email = $1`, strings.ToLower(strings.TrimSpace(email)))
}

func (r *UserRepositoryImpl) findOne(ctx context.Context, query string, arg interface{}) (*model.User, error) {
	var user model.User
	err := r.db.QueryRow(ctx, query, arg).Scan(
		&user.ID,
		&user.FirstName,
		&user.LastName,
		&user.Email,
		&user.Age,
		&user.Role,
		&user.CartID,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}
