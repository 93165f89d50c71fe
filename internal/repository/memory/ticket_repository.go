package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"go-gin-checkout/internal/model"
	"go-gin-checkout/internal/repository"
	apperrors "go-gin-checkout/pkg/app_errors"

	"github.com/shopspring/decimal"
)

type TicketRepository struct {
	store             *Store
	codes             *repository.TicketCodeGenerator
	createMaxAttempts int
}

func NewTicketRepository(store *Store, codes *repository.TicketCodeGenerator, createMaxAttempts int) repository.TicketRepository {
	if codes == nil {
		codes = repository.NewTicketCodeGenerator(0)
	}
	if createMaxAttempts <= 0 {
		createMaxAttempts = 5
	}
	return &TicketRepository{
		store:             store,
		codes:             codes,
		createMaxAttempts: createMaxAttempts,
	}
}

func (r *TicketRepository) Create(ctx context.Context, ticket *model.Ticket) (*model.Ticket, error) {
	if len(ticket.Lines) == 0 {
		return nil, fmt.Errorf("%w: ticket requires at least one line", apperrors.ErrInvalidInput)
	}
	if !ticket.Status.IsValid() {
		return nil, apperrors.ErrInvalidTicketStatus
	}

	s := r.store
	ticket.Recalculate()
	ticket.PurchaseDatetime = s.now().UTC()

	for attempt := 1; ; attempt++ {
		code, err := r.codes.Generate(ctx, r.CodeExists)
		if err != nil {
			return nil, err
		}

		s.mu.Lock()
		// 寫入前再檢查一次，等同資料庫的唯一索引
		if s.codeTaken(code) {
			s.mu.Unlock()
			if attempt < r.createMaxAttempts {
				continue
			}
			return nil, apperrors.ErrTicketCodeExhausted
		}

		s.ticketSeq++
		now := s.now().UTC()
		ticket.ID = s.ticketSeq
		ticket.Code = code
		ticket.CreatedAt = now
		ticket.UpdatedAt = now
		s.tickets[ticket.ID] = ticket.Clone()
		s.mu.Unlock()

		return ticket, nil
	}
}

// codeTaken 呼叫端需持有鎖
func (s *Store) codeTaken(code string) bool {
	for _, t := range s.tickets {
		if t.Code == code {
			return true
		}
	}
	return false
}

func (r *TicketRepository) CodeExists(ctx context.Context, code string) (bool, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.codeTaken(code), nil
}

func (r *TicketRepository) FindByID(ctx context.Context, id int) (*model.Ticket, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.tickets[id]
	if !ok {
		return nil, apperrors.ErrTicketNotFound
	}
	return t.Clone(), nil
}

func (r *TicketRepository) FindByCode(ctx context.Context, code string) (*model.Ticket, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	code = strings.ToUpper(code)
	for _, t := range s.tickets {
		if t.Code == code {
			return t.Clone(), nil
		}
	}
	return nil, apperrors.ErrTicketNotFound
}

func (r *TicketRepository) FindByUserID(ctx context.Context, userID int) ([]*model.Ticket, error) {
	return r.collect(func(t *model.Ticket) bool { return t.UserID == userID }, 0, 0), nil
}

func (r *TicketRepository) List(ctx context.Context, filter model.TicketFilter) ([]*model.Ticket, error) {
	filter.Normalize()
	match := func(t *model.Ticket) bool {
		if filter.Status != nil && t.Status != *filter.Status {
			return false
		}
		return inRange(t.PurchaseDatetime, filter.From, filter.To)
	}
	return r.collect(match, filter.Limit, filter.Offset), nil
}

// collect 依購買時間新到舊排序；limit 為 0 時不限制筆數
func (r *TicketRepository) collect(match func(*model.Ticket) bool, limit, offset int) []*model.Ticket {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	tickets := make([]*model.Ticket, 0)
	for _, t := range s.tickets {
		if match(t) {
			tickets = append(tickets, t.Clone())
		}
	}
	sort.Slice(tickets, func(i, j int) bool {
		if tickets[i].PurchaseDatetime.Equal(tickets[j].PurchaseDatetime) {
			return tickets[i].ID > tickets[j].ID
		}
		return tickets[i].PurchaseDatetime.After(tickets[j].PurchaseDatetime)
	})

	if offset >= len(tickets) {
		return []*model.Ticket{}
	}
	tickets = tickets[offset:]
	if limit > 0 && len(tickets) > limit {
		tickets = tickets[:limit]
	}
	return tickets
}

func (r *TicketRepository) UpdateStatus(ctx context.Context, id int, status model.TicketStatus) (*model.Ticket, error) {
	if !status.IsValid() {
		return nil, apperrors.ErrInvalidTicketStatus
	}

	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.tickets[id]
	if !ok {
		return nil, apperrors.ErrTicketNotFound
	}
	if !t.Status.CanTransitionTo(status) {
		return nil, fmt.Errorf("%w: cannot transition from %s to %s", apperrors.ErrInvalidTicketStatus, t.Status, status)
	}

	t.Status = status
	t.UpdatedAt = s.now().UTC()
	return t.Clone(), nil
}

func (r *TicketRepository) TotalSales(ctx context.Context, from, to *time.Time) (decimal.Decimal, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	total := decimal.Zero
	for _, t := range s.tickets {
		if t.Status == model.TicketStatusCompleted && inRange(t.PurchaseDatetime, from, to) {
			total = total.Add(t.Amount)
		}
	}
	return total, nil
}

func inRange(at time.Time, from, to *time.Time) bool {
	if from != nil && at.Before(*from) {
		return false
	}
	if to != nil && at.After(*to) {
		return false
	}
	return true
}
