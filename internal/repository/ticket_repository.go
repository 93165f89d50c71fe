package repository

import (
	"context"
	"errors"
	"fmt"
	"go-gin-checkout/internal/database"
	"go-gin-checkout/internal/model"
	apperrors "go-gin-checkout/pkg/app_errors"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

type TicketRepository interface {
	Create(ctx context.Context, ticket *model.Ticket) (*model.Ticket, error)
	CodeExists(ctx context.Context, code string) (bool, error)
	FindByID(ctx context.Context, id int) (*model.Ticket, error)
	FindByCode(ctx context.Context, code string) (*model.Ticket, error)
	FindByUserID(ctx context.Context, userID int) ([]*model.Ticket, error)
	List(ctx context.Context, filter model.TicketFilter) ([]*model.Ticket, error)
	UpdateStatus(ctx context.Context, id int, status model.TicketStatus) (*model.Ticket, error)
	TotalSales(ctx context.Context, from, to *time.Time) (decimal.Decimal, error)
}

type TicketRepositoryImpl struct {
	db                database.DB
	codes             *TicketCodeGenerator
	createMaxAttempts int
	now               func() time.Time
}

const defaultCreateMaxAttempts = 5

func NewTicketRepository(db database.DB, codes *TicketCodeGenerator, createMaxAttempts int) TicketRepository {
	if codes == nil {
		codes = NewTicketCodeGenerator(0)
	}
	if createMaxAttempts <= 0 {
		createMaxAttempts = defaultCreateMaxAttempts
	}
	return &TicketRepositoryImpl{
		db:                db,
		codes:             codes,
		createMaxAttempts: createMaxAttempts,
		now:               time.Now,
	}
}

const ticketColumns = `id, code, purchase_datetime, purchaser, user_id, amount, status, created_at, updated_at`

// Create 金額一律由明細重算，購買時間由此設定
func (r *TicketRepositoryImpl) Create(ctx context.Context, ticket *model.Ticket) (*model.Ticket, error) {
	if len(ticket.Lines) == 0 {
		return nil, fmt.Errorf("%w: ticket requires at least one line", apperrors.ErrInvalidInput)
	}
	if !ticket.Status.IsValid() {
		return nil, apperrors.ErrInvalidTicketStatus
	}

	ticket.Recalculate()
	ticket.PurchaseDatetime = r.now().UTC()

	for attempt := 1; ; attempt++ {
		code, err := r.codes.Generate(ctx, r.CodeExists)
		if err != nil {
			return nil, err
		}
		ticket.Code = code

		err = r.insert(ctx, ticket)
		if err == nil {
			return ticket, nil
		}
		// 檢查與寫入之間被其他交易搶先使用同一個 code
		if isUniqueViolation(err, "tickets_code_key") && attempt < r.createMaxAttempts {
			continue
		}
		return nil, err
	}
}

func (r *TicketRepositoryImpl) insert(ctx context.Context, ticket *model.Ticket) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO tickets (
		code, purchase_datetime, purchaser, user_id, amount, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`

	err = tx.QueryRow(ctx, query,
		ticket.Code, ticket.PurchaseDatetime, ticket.Purchaser,
		ticket.UserID, ticket.Amount, ticket.Status,
	).Scan(
		&ticket.ID,
		&ticket.CreatedAt,
		&ticket.UpdatedAt,
	)
	if err != nil {
		return err
	}

	lineQuery := `
		INSERT INTO ticket_lines (
		ticket_id, line_no, product_id, title, quantity, unit_price, subtotal)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	for i, line := range ticket.Lines {
		_, err := tx.Exec(ctx, lineQuery,
			ticket.ID, i+1, line.ProductID, line.Title,
			line.Quantity, line.UnitPrice, line.Subtotal,
		)
		if err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

func (r *TicketRepositoryImpl) CodeExists(ctx context.Context, code string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM tickets WHERE code = $1)`, code).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

func (r *TicketRepositoryImpl) FindByID(ctx context.Context, id int) (*model.Ticket, error) {
	query := `SELECT ` + ticketColumns + ` FROM tickets WHERE id = $1`
	return r.findOne(ctx, query, id)
}

func (r *TicketRepositoryImpl) FindByCode(ctx context.Context, code string) (*model.Ticket, error) {
	query := `SELECT ` + ticketColumns + ` FROM tickets WHERE code = $1`
	return r.findOne(ctx, query, strings.ToUpper(code))
}

func (r *TicketRepositoryImpl) findOne(ctx context.Context, query string, arg interface{}) (*model.Ticket, error) {
	ticket, err := scanTicket(r.db.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrTicketNotFound
		}
		return nil, err
	}

	if err := r.attachLines(ctx, []*model.Ticket{ticket}); err != nil {
		return nil, err
	}
	return ticket, nil
}

func (r *TicketRepositoryImpl) FindByUserID(ctx context.Context, userID int) ([]*model.Ticket, error) {
	query := `
		SELECT ` + ticketColumns + `
		FROM tickets
		WHERE user_id = $1
		ORDER BY purchase_datetime DESC, id DESC
	`
	return r.queryTickets(ctx, query, userID)
}

func (r *TicketRepositoryImpl) List(ctx context.Context, filter model.TicketFilter) ([]*model.Ticket, error) {
	filter.Normalize()

	where := []string{}
	args := []interface{}{}
	argPos := 1

	if filter.Status != nil {
		where = append(where, fmt.Sprintf("status = $%d", argPos))
		args = append(args, *filter.Status)
		argPos++
	}
	if filter.From != nil {
		where = append(where, fmt.Sprintf("purchase_datetime >= $%d", argPos))
		args = append(args, filter.From.UTC())
		argPos++
	}
	if filter.To != nil {
		where = append(where, fmt.Sprintf("purchase_datetime <= $%d", argPos))
		args = append(args, filter.To.UTC())
		argPos++
	}

	clause := ""
	if len(where) > 0 {
		clause = "WHERE " + strings.Join(where, " AND ")
	}

	args = append(args, filter.Limit, filter.Offset)
	query := fmt.Sprintf(`
		SELECT %s
		FROM tickets
		%s
		ORDER BY purchase_datetime DESC, id DESC
		LIMIT $%d OFFSET $%d
	`, ticketColumns, clause, argPos, argPos+1)

	return r.queryTickets(ctx, query, args...)
}

func (r *TicketRepositoryImpl) queryTickets(ctx context.Context, query string, args ...interface{}) ([]*model.Ticket, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tickets := make([]*model.Ticket, 0)
	for rows.Next() {
		ticket, err := scanTicket(rows)
		if err != nil {
			return nil, err
		}
		tickets = append(tickets, ticket)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := r.attachLines(ctx, tickets); err != nil {
		return nil, err
	}
	return tickets, nil
}

// attachLines 一次查詢所有憑證的明細
func (r *TicketRepositoryImpl) attachLines(ctx context.Context, tickets []*model.Ticket) error {
	if len(tickets) == 0 {
		return nil
	}

	ids := make([]int, 0, len(tickets))
	byID := make(map[int]*model.Ticket, len(tickets))
	for _, t := range tickets {
		t.Lines = []model.TicketLine{}
		ids = append(ids, t.ID)
		byID[t.ID] = t
	}

	query := `
		SELECT ticket_id, product_id, title, quantity, unit_price, subtotal
		FROM ticket_lines
		WHERE ticket_id = ANY($1)
		ORDER BY ticket_id, line_no
	`

	rows, err := r.db.Query(ctx, query, ids)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var ticketID int
		var line model.TicketLine
		err := rows.Scan(
			&ticketID,
			&line.ProductID,
			&line.Title,
			&line.Quantity,
			&line.UnitPrice,
			&line.Subtotal,
		)
		if err != nil {
			return err
		}
		if t, ok := byID[ticketID]; ok {
			t.Lines = append(t.Lines, line)
		}
	}

	return rows.Err()
}

// UpdateStatus 管理者專用，僅允許合法的狀態轉換
func (r *TicketRepositoryImpl) UpdateStatus(ctx context.Context, id int, status model.TicketStatus) (*model.Ticket, error) {
	if !status.IsValid() {
		return nil, apperrors.ErrInvalidTicketStatus
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	var current model.TicketStatus
	err = tx.QueryRow(ctx, `SELECT status FROM tickets WHERE id = $1 FOR UPDATE`, id).Scan(&current)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrTicketNotFound
		}
		return nil, err
	}

	if !current.CanTransitionTo(status) {
		return nil, fmt.Errorf("%w: cannot transition from %s to %s", apperrors.ErrInvalidTicketStatus, current, status)
	}

	_, err = tx.Exec(ctx,
		`UPDATE tickets SET status = $1, updated_at = $2 WHERE id = $3`,
		status, r.now().UTC(), id,
	)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	return r.FindByID(ctx, id)
}

// TotalSales 只計算 completed 狀態的憑證
func (r *TicketRepositoryImpl) TotalSales(ctx context.Context, from, to *time.Time) (decimal.Decimal, error) {
	where := []string{"status = $1"}
	args := []interface{}{model.TicketStatusCompleted}
	argPos := 2

	if from != nil {
		where = append(where, fmt.Sprintf("purchase_datetime >= $%d", argPos))
		args = append(args, from.UTC())
		argPos++
	}
	if to != nil {
		where = append(where, fmt.Sprintf("purchase_datetime <= $%d", argPos))
		args = append(args, to.UTC())
	}

	query := `SELECT COALESCE(SUM(amount), 0) FROM tickets WHERE ` + strings.Join(where, " AND ")

	var total decimal.Decimal
	if err := r.db.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		return decimal.Zero, err
	}
	return total, nil
}

func scanTicket(row pgx.Row) (*model.Ticket, error) {
	var ticket model.Ticket
	err := row.Scan(
		&ticket.ID,
		&ticket.Code,
		&ticket.PurchaseDatetime,
		&ticket.Purchaser,
		&ticket.UserID,
		&ticket.Amount,
		&ticket.Status,
		&ticket.CreatedAt,
		&ticket.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &ticket, nil
}
