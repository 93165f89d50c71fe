package service

import (
	"context"
	"errors"
	"fmt"
	"go-gin-checkout/internal/cache"
	"go-gin-checkout/internal/metrics"
	"go-gin-checkout/internal/model"
	"go-gin-checkout/internal/queue"
	"go-gin-checkout/internal/repository"
	apperrors "go-gin-checkout/pkg/app_errors"
	"go-gin-checkout/pkg/logger"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const (
	tracerName           = "go-gin-checkout/service"
	defaultNotifyTimeout = 5 * time.Second
)

type PurchaseService interface {
	// 結帳：逐筆扣庫存，有成交明細時開立憑證
	ExecuteCheckout(ctx context.Context, userID int) (*model.PurchaseResult, error)
	// 依購物車結帳，只有購物車擁有者可以執行
	CheckoutCart(ctx context.Context, principal model.Principal, cartID int) (*model.PurchaseResult, error)
}

type PurchaseOption func(*PurchaseServiceImpl)

// WithCheckoutLock 同一購物車同時只允許一個結帳
func WithCheckoutLock(lock cache.CheckoutLock) PurchaseOption {
	return func(s *PurchaseServiceImpl) {
		s.lock = lock
	}
}

func WithNotificationQueue(q queue.NotificationQueue) PurchaseOption {
	return func(s *PurchaseServiceImpl) {
		s.notifications = q
	}
}

func WithMetrics(m *metrics.CheckoutMetrics) PurchaseOption {
	return func(s *PurchaseServiceImpl) {
		s.metrics = m
	}
}

func WithNotifyTimeout(d time.Duration) PurchaseOption {
	return func(s *PurchaseServiceImpl) {
		if d > 0 {
			s.notifyTimeout = d
		}
	}
}

type PurchaseServiceImpl struct {
	userRepository    repository.UserRepository
	cartRepository    repository.CartRepository
	productRepository repository.ProductRepository
	ticketRepository  repository.TicketRepository

	lock          cache.CheckoutLock
	notifications queue.NotificationQueue
	metrics       *metrics.CheckoutMetrics
	notifyTimeout time.Duration
	tracer        trace.Tracer
}

func NewPurchaseService(
	userRepository repository.UserRepository,
	cartRepository repository.CartRepository,
	productRepository repository.ProductRepository,
	ticketRepository repository.TicketRepository,
	opts ...PurchaseOption,
) PurchaseService {
	s := &PurchaseServiceImpl{
		userRepository:    userRepository,
		cartRepository:    cartRepository,
		productRepository: productRepository,
		ticketRepository:  ticketRepository,
		notifyTimeout:     defaultNotifyTimeout,
		tracer:            otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *PurchaseServiceImpl) CheckoutCart(ctx context.Context, principal model.Principal, cartID int) (*model.PurchaseResult, error) {
	cart, err := s.cartRepository.FindByID(ctx, cartID)
	if err != nil {
		return nil, err
	}
	// 管理者也不能替別人結帳
	if cart.UserID != principal.UserID {
		return nil, apperrors.ErrForbidden
	}
	return s.ExecuteCheckout(ctx, cart.UserID)
}

func (s *PurchaseServiceImpl) ExecuteCheckout(ctx context.Context, userID int) (result *model.PurchaseResult, err error) {
	ctx, span := s.tracer.Start(ctx, "PurchaseService.ExecuteCheckout",
		trace.WithAttributes(attribute.Int("user.id", userID)),
	)
	start := time.Now()
	defer func() {
		outcome := checkoutOutcome(result, err)
		s.metrics.ObserveCheckout(outcome, time.Since(start))
		span.SetAttributes(attribute.String("checkout.outcome", outcome))
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		} else {
			span.SetStatus(codes.Ok, outcome)
		}
		span.End()
	}()

	log := logger.FromContext(ctx, "service").With(zap.Int("user_id", userID))

	// 1. 取得使用者與購物車
	user, err := s.userRepository.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	cart, err := s.cartRepository.FindByUserID(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	if s.lock != nil {
		release, err := s.lock.Acquire(ctx, cart.ID)
		if err != nil {
			return nil, err
		}
		defer func() {
			if err := release(context.WithoutCancel(ctx)); err != nil {
				log.Warn("release checkout lock failed", zap.Int("cart_id", cart.ID), zap.Error(err))
			}
		}()
		// 取得鎖後重新讀取，避免使用前一個結帳前的內容
		cart, err = s.cartRepository.FindByID(ctx, cart.ID)
		if err != nil {
			return nil, err
		}
	}

	if cart.IsEmpty() {
		return nil, apperrors.ErrEmptyCart
	}
	span.SetAttributes(attribute.Int("cart.id", cart.ID), attribute.Int("cart.lines", len(cart.Items)))

	// 2. 分出可成交與庫存不足的明細
	outcome := model.NewCheckoutOutcome()
	fulfillable := partitionLines(cart, &outcome)
	s.metrics.AddLines(metrics.LineSkipped, len(outcome.Skipped))

	if len(fulfillable) == 0 {
		return &model.PurchaseResult{
			Success:         false,
			Message:         model.MessageNoStock,
			CheckoutOutcome: outcome,
		}, nil
	}

	// 3. 逐筆扣庫存，成功才從購物車移除
	for _, item := range fulfillable {
		if err := s.decrementLine(ctx, item); err != nil {
			log.Warn("decrement stock failed",
				zap.Int("product_id", item.ProductID),
				zap.Int("quantity", item.Quantity),
				zap.Error(err),
			)
			outcome.Fail(model.FailedLine{
				ProductID:         item.ProductID,
				Title:             item.Product.Title,
				RequestedQuantity: item.Quantity,
				Error:             err.Error(),
			})
			continue
		}

		outcome.Succeed(model.NewTicketLine(item.Product, item.Quantity))

		if err := s.cartRepository.RemoveLineItem(ctx, cart.ID, item.ProductID); err != nil {
			fields := []zap.Field{
				zap.Int("cart_id", cart.ID),
				zap.Int("product_id", item.ProductID),
				zap.Error(err),
			}
			// 明細已被另一個同時進行的結帳買走，沒有結帳鎖時才會發生
			if errors.Is(err, apperrors.ErrProductNotInCart) {
				log.Error("purchased line already removed by a concurrent checkout", fields...)
			} else {
				log.Warn("remove purchased line from cart failed", fields...)
			}
		}
	}
	s.metrics.AddLines(metrics.LineSucceeded, len(outcome.Succeeded))
	s.metrics.AddLines(metrics.LineFailed, len(outcome.Failed))

	if len(outcome.Succeeded) == 0 {
		return &model.PurchaseResult{
			Success:         false,
			Message:         model.MessageNothingProcessed,
			CheckoutOutcome: outcome,
		}, nil
	}

	// 4. 開立憑證
	status := model.TicketStatusCompleted
	message := model.MessagePurchaseCompleted
	if outcome.IsPartial() {
		status = model.TicketStatusPartial
		message = model.MessagePurchasePartial
	}

	lines := make([]model.TicketLine, len(outcome.Succeeded))
	copy(lines, outcome.Succeeded)

	ticket, err := s.ticketRepository.Create(ctx, &model.Ticket{
		UserID:    user.ID,
		Purchaser: user.Email,
		Lines:     lines,
		Status:    status,
	})
	if err != nil {
		// 庫存已扣除但憑證未建立
		log.Error("create ticket failed after stock decrement",
			zap.Int("cart_id", cart.ID),
			zap.Int("lines", len(lines)),
			zap.Error(err),
		)
		return nil, fmt.Errorf("create ticket: %w", err)
	}

	log.Info("checkout finished",
		zap.String("ticket_code", ticket.Code),
		zap.String("status", string(ticket.Status)),
		zap.String("amount", ticket.Amount.StringFixed(2)),
	)

	// 5. 非同步通知
	s.notify(ctx, user, ticket)

	return &model.PurchaseResult{
		Success:         true,
		Ticket:          ticket,
		Message:         message,
		CheckoutOutcome: outcome,
	}, nil
}

func (s *PurchaseServiceImpl) decrementLine(ctx context.Context, item model.CartItem) error {
	ctx, span := s.tracer.Start(ctx, "PurchaseService.DecrementStock",
		trace.WithAttributes(
			attribute.Int("product.id", item.ProductID),
			attribute.Int("quantity", item.Quantity),
		),
	)
	defer span.End()

	if err := s.productRepository.DecrementStock(ctx, item.ProductID, item.Quantity); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	return nil
}

// partitionLines 回傳可成交的明細，其餘記錄到 outcome.Skipped
func partitionLines(cart *model.Cart, outcome *model.CheckoutOutcome) []model.CartItem {
	fulfillable := make([]model.CartItem, 0, len(cart.Items))
	for _, item := range cart.Items {
		if item.Product != nil && item.Product.CanFulfill(item.Quantity) {
			fulfillable = append(fulfillable, item)
			continue
		}

		line := model.UnfulfillableLine{
			ProductID:         item.ProductID,
			RequestedQuantity: item.Quantity,
		}
		// 商品已刪除時可用庫存為 0；下架商品照實回報庫存
		if item.Product != nil {
			line.Title = item.Product.Title
			line.AvailableStock = item.Product.Stock
		}
		outcome.Skip(line)
	}
	return fulfillable
}

// notify 在背景發送購買通知，與請求的 context 脫鉤，失敗只記錄
func (s *PurchaseServiceImpl) notify(ctx context.Context, user *model.User, ticket *model.Ticket) {
	if s.notifications == nil {
		return
	}

	confirmation := &model.PurchaseConfirmation{
		Email:       user.Email,
		DisplayName: user.DisplayName(),
		Ticket:      ticket.Clone(),
	}
	detached := context.WithoutCancel(ctx)
	log := logger.FromContext(ctx, "service")

	go func() {
		pubCtx, cancel := context.WithTimeout(detached, s.notifyTimeout)
		defer cancel()

		if err := s.notifications.PublishConfirmation(pubCtx, confirmation); err != nil {
			s.metrics.IncNotification(metrics.NotificationFailed)
			log.Warn("publish purchase confirmation failed",
				zap.String("ticket_code", confirmation.Ticket.Code),
				zap.Error(fmt.Errorf("%w: %v", apperrors.ErrNotificationFailed, err)),
			)
			return
		}
		s.metrics.IncNotification(metrics.NotificationPublished)
	}()
}

func checkoutOutcome(result *model.PurchaseResult, err error) string {
	switch {
	case err != nil:
		if errors.Is(err, apperrors.ErrEmptyCart) ||
			errors.Is(err, apperrors.ErrCartNotFound) ||
			errors.Is(err, apperrors.ErrUserNotFound) ||
			errors.Is(err, apperrors.ErrCheckoutInProgress) ||
			errors.Is(err, apperrors.ErrForbidden) {
			return metrics.OutcomeFailed
		}
		return metrics.OutcomeError
	case result == nil || !result.Success:
		return metrics.OutcomeFailed
	case result.Ticket != nil && result.Ticket.Status == model.TicketStatusPartial:
		return metrics.OutcomePartial
	default:
		return metrics.OutcomeCompleted
	}
}
