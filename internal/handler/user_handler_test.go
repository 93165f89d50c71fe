package handler_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"go-gin-checkout/internal/model"
	apperrors "go-gin-checkout/pkg/app_errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestRegisterUser(t *testing.T) {
	body := map[string]interface{}{
		"first_name": "Ana",
		"last_name":  "Lopez",
		"email":      "ana@example.com",
		"age":        30,
		"role":       "admin",
	}

	t.Run("Success", func(t *testing.T) {
		router, s := setupTestRouter(t)

		s.user.EXPECT().Register(mock.Anything, mock.MatchedBy(func(u *model.User) bool {
			// 角色不可由請求指定
			return u.Email == "ana@example.com" && u.Role == ""
		})).Return(&model.User{ID: 1, Email: "ana@example.com", Role: model.RoleUser, CartID: 1}, nil).Once()

		w := httptest.NewRecorder()
		router.ServeHTTP(w, createJSONHTTPRequest("POST", "/api/v1/users", body))

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("Failed - ErrDuplicateEmail", func(t *testing.T) {
		router, s := setupTestRouter(t)

		s.user.EXPECT().Register(mock.Anything, mock.Anything).Return(nil, apperrors.ErrDuplicateEmail).Once()

		w := httptest.NewRecorder()
		router.ServeHTTP(w, createJSONHTTPRequest("POST", "/api/v1/users", body))

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestCurrentUser(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		router, s := setupTestRouter(t)

		s.user.EXPECT().Get(mock.Anything, 4).Return(&model.User{ID: 4}, nil).Once()

		w := httptest.NewRecorder()
		router.ServeHTTP(w, authorizedRequest(t, "GET", "/api/v1/users/me", nil, 4, 4, model.RoleUser))

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Failed - ErrUserNotFound", func(t *testing.T) {
		router, s := setupTestRouter(t)

		s.user.EXPECT().Get(mock.Anything, 4).Return(nil, apperrors.ErrUserNotFound).Once()

		w := httptest.NewRecorder()
		router.ServeHTTP(w, authorizedRequest(t, "GET", "/api/v1/users/me", nil, 4, 4, model.RoleUser))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
