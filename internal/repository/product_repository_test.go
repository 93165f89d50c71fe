package repository_test

import (
	"context"
	"errors"
	"testing"

	"go-gin-checkout/internal/repository"
	apperrors "go-gin-checkout/pkg/app_errors"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductRepository_DecrementStock(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mock := newMockPool(t)
		repo := repository.NewProductRepository(mock)

		mock.ExpectExec(q("SET stock = stock - $1")).
			WithArgs(2, pgxmock.AnyArg(), 7).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		err := repo.DecrementStock(ctx, 7, 2)
		assert.NoError(t, err)
	})

	t.Run("Failed - ErrInsufficientStock", func(t *testing.T) {
		mock := newMockPool(t)
		repo := repository.NewProductRepository(mock)

		mock.ExpectExec(q("SET stock = stock - $1")).
			WithArgs(3, pgxmock.AnyArg(), 7).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))
		mock.ExpectQuery(q("SELECT status FROM products")).
			WithArgs(7).
			WillReturnRows(pgxmock.NewRows([]string{"status"}).AddRow(true))

		err := repo.DecrementStock(ctx, 7, 3)
		assert.ErrorIs(t, err, apperrors.ErrInsufficientStock)
	})

	t.Run("Failed - ErrProductUnavailable", func(t *testing.T) {
		mock := newMockPool(t)
		repo := repository.NewProductRepository(mock)

		mock.ExpectExec(q("SET stock = stock - $1")).
			WithArgs(1, pgxmock.AnyArg(), 7).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))
		mock.ExpectQuery(q("SELECT status FROM products")).
			WithArgs(7).
			WillReturnRows(pgxmock.NewRows([]string{"status"}).AddRow(false))

		err := repo.DecrementStock(ctx, 7, 1)
		assert.ErrorIs(t, err, apperrors.ErrProductUnavailable)
	})

	t.Run("Failed - ErrProductNotFound", func(t *testing.T) {
		mock := newMockPool(t)
		repo := repository.NewProductRepository(mock)

		mock.ExpectExec(q("SET stock = stock - $1")).
			WithArgs(1, pgxmock.AnyArg(), 99).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))
		mock.ExpectQuery(q("SELECT status FROM products")).
			WithArgs(99).
			WillReturnRows(pgxmock.NewRows([]string{"status"}))

		err := repo.DecrementStock(ctx, 99, 1)
		assert.ErrorIs(t, err, apperrors.ErrProductNotFound)
	})

	t.Run("Failed - ErrInvalidQuantity", func(t *testing.T) {
		mock := newMockPool(t)
		repo := repository.NewProductRepository(mock)

		assert.ErrorIs(t, repo.DecrementStock(ctx, 7, 0), apperrors.ErrInvalidQuantity)
		assert.ErrorIs(t, repo.DecrementStock(ctx, 7, -1), apperrors.ErrInvalidQuantity)
	})

	t.Run("Failed - Database error", func(t *testing.T) {
		mock := newMockPool(t)
		repo := repository.NewProductRepository(mock)
		dbErr := errors.New("connection reset")

		mock.ExpectExec(q("SET stock = stock - $1")).
			WithArgs(1, pgxmock.AnyArg(), 7).
			WillReturnError(dbErr)

		assert.ErrorIs(t, repo.DecrementStock(ctx, 7, 1), dbErr)
	})
}

func TestProductRepository_IncrementStock(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mock := newMockPool(t)
		repo := repository.NewProductRepository(mock)

		mock.ExpectExec(q("SET stock = stock + $1")).
			WithArgs(5, pgxmock.AnyArg(), 7).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		assert.NoError(t, repo.IncrementStock(ctx, 7, 5))
	})

	t.Run("Failed - ErrProductNotFound", func(t *testing.T) {
		mock := newMockPool(t)
		repo := repository.NewProductRepository(mock)

		mock.ExpectExec(q("SET stock = stock + $1")).
			WithArgs(5, pgxmock.AnyArg(), 7).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		assert.ErrorIs(t, repo.IncrementStock(ctx, 7, 5), apperrors.ErrProductNotFound)
	})

	t.Run("Failed - ErrInvalidQuantity", func(t *testing.T) {
		mock := newMockPool(t)
		repo := repository.NewProductRepository(mock)

		assert.ErrorIs(t, repo.IncrementStock(ctx, 7, 0), apperrors.ErrInvalidQuantity)
	})
}

func TestProductRepository_HasStock(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mock := newMockPool(t)
		repo := repository.NewProductRepository(mock)

		mock.ExpectQuery(q("SELECT status AND stock >= $2")).
			WithArgs(7, 2).
			WillReturnRows(pgxmock.NewRows([]string{"ok"}).AddRow(true))

		ok, err := repo.HasStock(ctx, 7, 2)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("Failed - ErrProductNotFound", func(t *testing.T) {
		mock := newMockPool(t)
		repo := repository.NewProductRepository(mock)

		mock.ExpectQuery(q("SELECT status AND stock >= $2")).
			WithArgs(7, 2).
			WillReturnRows(pgxmock.NewRows([]string{"ok"}))

		ok, err := repo.HasStock(ctx, 7, 2)
		assert.ErrorIs(t, err, apperrors.ErrProductNotFound)
		assert.False(t, ok)
	})
}

func TestProductRepository_FindByID(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mock := newMockPool(t)
		repo := repository.NewProductRepository(mock)
		want := testProduct(7, "19.90", 3)

		mock.ExpectQuery(q("FROM products p")).
			WithArgs(7).
			WillReturnRows(pgxmock.NewRows(productColumnNames).AddRow(productRowValues(want)...))

		got, err := repo.FindByID(ctx, 7)
		require.NoError(t, err)
		assert.Equal(t, 7, got.ID)
		assert.Equal(t, 3, got.Stock)
		assert.True(t, want.Price.Equal(got.Price))
	})

	t.Run("Failed - ErrProductNotFound", func(t *testing.T) {
		mock := newMockPool(t)
		repo := repository.NewProductRepository(mock)

		mock.ExpectQuery(q("FROM products p")).
			WithArgs(7).
			WillReturnRows(pgxmock.NewRows(productColumnNames))

		_, err := repo.FindByID(ctx, 7)
		assert.ErrorIs(t, err, apperrors.ErrProductNotFound)
	})
}

func TestProductRepository_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mock := newMockPool(t)
		repo := repository.NewProductRepository(mock)
		p := testProduct(0, "5.00", 10)

		mock.ExpectQuery(q("INSERT INTO products")).
			WithArgs(p.Title, p.Description, p.Code, p.Price, p.Stock, p.Status, p.Category, p.Thumbnails).
			WillReturnRows(pgxmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(11, fixedTime, fixedTime))

		created, err := repo.Create(ctx, p)
		require.NoError(t, err)
		assert.Equal(t, 11, created.ID)
	})

	t.Run("Failed - ErrDuplicateProduct", func(t *testing.T) {
		mock := newMockPool(t)
		repo := repository.NewProductRepository(mock)
		p := testProduct(0, "5.00", 10)

		mock.ExpectQuery(q("INSERT INTO products")).
			WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(),
				pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
			WillReturnError(uniqueViolation("products_code_key"))

		_, err := repo.Create(ctx, p)
		assert.ErrorIs(t, err, apperrors.ErrDuplicateProduct)
	})
}
