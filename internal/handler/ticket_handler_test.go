package handler_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"go-gin-checkout/internal/model"
	apperrors "go-gin-checkout/pkg/app_errors"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestGetTicket(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		router, s := setupTestRouter(t)

		s.ticket.EXPECT().Get(mock.Anything, mock.Anything, 3).Return(&model.Ticket{ID: 3, Code: "T1", UserID: 1}, nil).Once()

		w := httptest.NewRecorder()
		router.ServeHTTP(w, authorizedRequest(t, "GET", "/api/v1/tickets/3", nil, 1, 1, model.RoleUser))

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Failed - ErrTicketNotFound", func(t *testing.T) {
		router, s := setupTestRouter(t)

		s.ticket.EXPECT().Get(mock.Anything, mock.Anything, 3).Return(nil, apperrors.ErrTicketNotFound).Once()

		w := httptest.NewRecorder()
		router.ServeHTTP(w, authorizedRequest(t, "GET", "/api/v1/tickets/3", nil, 1, 1, model.RoleUser))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("List mine", func(t *testing.T) {
		router, s := setupTestRouter(t)

		s.ticket.EXPECT().ListMine(mock.Anything, model.Principal{UserID: 1, CartID: 1, Role: model.RoleUser}).
			Return([]*model.Ticket{{ID: 1}, {ID: 2}}, nil).Once()

		w := httptest.NewRecorder()
		router.ServeHTTP(w, authorizedRequest(t, "GET", "/api/v1/tickets/mine", nil, 1, 1, model.RoleUser))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[
			{"code":"","purchase_datetime":"0001-01-01T00:00:00Z","amount":"0","purchaser":"","status":"","items_count":0},
			{"code":"","purchase_datetime":"0001-01-01T00:00:00Z","amount":"0","purchaser":"","status":"","items_count":0}
		]`, w.Body.String())
	})
}

func TestAdminTickets(t *testing.T) {
	t.Run("List with status filter", func(t *testing.T) {
		router, s := setupTestRouter(t)

		s.ticket.EXPECT().List(mock.Anything, mock.MatchedBy(func(f model.TicketFilter) bool {
			return f.Status != nil && *f.Status == model.TicketStatusPartial && f.Limit == 10
		})).Return([]*model.Ticket{}, nil).Once()

		w := httptest.NewRecorder()
		router.ServeHTTP(w, authorizedRequest(t, "GET", "/api/v1/tickets?status=partial&limit=10", nil, 9, 9, model.RoleAdmin))

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Failed - invalid range", func(t *testing.T) {
		router, s := setupTestRouter(t)

		s.ticket.EXPECT().List(mock.Anything, mock.Anything).Return(nil, apperrors.ErrInvalidInput).Once()

		w := httptest.NewRecorder()
		router.ServeHTTP(w, authorizedRequest(t, "GET", "/api/v1/tickets?from=2025-02-01T00:00:00Z&to=2025-01-01T00:00:00Z", nil, 9, 9, model.RoleAdmin))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Get by code", func(t *testing.T) {
		router, s := setupTestRouter(t)

		s.ticket.EXPECT().GetByCode(mock.Anything, "ABC123").Return(&model.Ticket{ID: 1, Code: "ABC123"}, nil).Once()

		w := httptest.NewRecorder()
		router.ServeHTTP(w, authorizedRequest(t, "GET", "/api/v1/tickets/code/ABC123", nil, 9, 9, model.RoleAdmin))

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Update status", func(t *testing.T) {
		router, s := setupTestRouter(t)

		req := model.UpdateTicketStatusRequest{Status: model.TicketStatusCancelled}
		s.ticket.EXPECT().UpdateStatus(mock.Anything, 4, req).Return(&model.Ticket{ID: 4, Status: model.TicketStatusCancelled}, nil).Once()

		w := httptest.NewRecorder()
		router.ServeHTTP(w, authorizedRequest(t, "PATCH", "/api/v1/tickets/4/status", req, 9, 9, model.RoleAdmin))

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Failed - ErrInvalidTicketStatus", func(t *testing.T) {
		router, s := setupTestRouter(t)

		s.ticket.EXPECT().UpdateStatus(mock.Anything, 4, mock.Anything).Return(nil, apperrors.ErrInvalidTicketStatus).Once()

		w := httptest.NewRecorder()
		router.ServeHTTP(w, authorizedRequest(t, "PATCH", "/api/v1/tickets/4/status", map[string]string{"status": "lost"}, 9, 9, model.RoleAdmin))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Total sales", func(t *testing.T) {
		router, s := setupTestRouter(t)

		s.ticket.EXPECT().TotalSales(mock.Anything, mock.Anything).Return(decimal.RequireFromString("123.45"), nil).Once()

		w := httptest.NewRecorder()
		router.ServeHTTP(w, authorizedRequest(t, "GET", "/api/v1/tickets/sales", nil, 9, 9, model.RoleAdmin))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "123.45", decodeBody(t, w.Body)["total"])
	})
}
