package service

import (
	"context"

	"go-gin-checkout/internal/model"
	"go-gin-checkout/internal/repository"
	apperrors "go-gin-checkout/pkg/app_errors"

	"github.com/shopspring/decimal"
)

type TicketService interface {
	// 本人或管理者可查看
	Get(ctx context.Context, principal model.Principal, id int) (*model.Ticket, error)
	GetByCode(ctx context.Context, code string) (*model.Ticket, error)
	ListMine(ctx context.Context, principal model.Principal) ([]*model.Ticket, error)
	List(ctx context.Context, filter model.TicketFilter) ([]*model.Ticket, error)
	UpdateStatus(ctx context.Context, id int, req model.UpdateTicketStatusRequest) (*model.Ticket, error)
	TotalSales(ctx context.Context, r model.SalesRange) (decimal.Decimal, error)
}

type TicketServiceImpl struct {
	repo repository.TicketRepository
}

func NewTicketService(repo repository.TicketRepository) TicketService {
	return &TicketServiceImpl{repo: repo}
}

func (s *TicketServiceImpl) Get(ctx context.Context, principal model.Principal, id int) (*model.Ticket, error) {
	ticket, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !principal.CanAccess(ticket.UserID) {
		return nil, apperrors.ErrForbidden
	}
	return ticket, nil
}

func (s *TicketServiceImpl) GetByCode(ctx context.Context, code string) (*model.Ticket, error) {
	return s.repo.FindByCode(ctx, code)
}

func (s *TicketServiceImpl) ListMine(ctx context.Context, principal model.Principal) ([]*model.Ticket, error) {
	return s.repo.FindByUserID(ctx, principal.UserID)
}

func (s *TicketServiceImpl) List(ctx context.Context, filter model.TicketFilter) ([]*model.Ticket, error) {
	if filter.Status != nil && !filter.Status.IsValid() {
		return nil, apperrors.ErrInvalidTicketStatus
	}
	if filter.From != nil && filter.To != nil && filter.From.After(*filter.To) {
		return nil, apperrors.ErrInvalidInput
	}
	filter.Normalize()
	return s.repo.List(ctx, filter)
}

func (s *TicketServiceImpl) UpdateStatus(ctx context.Context, id int, req model.UpdateTicketStatusRequest) (*model.Ticket, error) {
	if err := model.Validate(req); err != nil {
		return nil, err
	}
	return s.repo.UpdateStatus(ctx, id, req.Status)
}

func (s *TicketServiceImpl) TotalSales(ctx context.Context, r model.SalesRange) (decimal.Decimal, error) {
	if r.From != nil && r.To != nil && r.From.After(*r.To) {
		return decimal.Zero, apperrors.ErrInvalidInput
	}
	return s.repo.TotalSales(ctx, r.From, r.To)
}
