package apperrors

import "errors"

// Validation
var (
	ErrInvalidInput        = errors.New("invalid input")
	ErrInvalidQuantity     = errors.New("quantity must be greater than zero")
	ErrProductUnavailable  = errors.New("product is not available")
	ErrEmptyCart           = errors.New("cart is empty")
	ErrInvalidTicketStatus = errors.New("invalid ticket status")
)

// Stock conflict
var ErrInsufficientStock = errors.New("insufficient stock")

// Not found
var (
	ErrProductNotFound  = errors.New("product not found")
	ErrCartNotFound     = errors.New("cart not found")
	ErrUserNotFound     = errors.New("user not found")
	ErrTicketNotFound   = errors.New("ticket not found")
	ErrProductNotInCart = errors.New("product not in cart")
)

// Conflict
var (
	ErrCheckoutInProgress = errors.New("checkout already in progress")
	ErrDuplicateProduct   = errors.New("product code already exists")
	ErrDuplicateEmail     = errors.New("email already registered")
)

// Access
var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
)

var (
	ErrNotificationFailed  = errors.New("notification failed")
	ErrInternalServerError = errors.New("internal server error")
)

var ErrTicketCodeExhausted = errors.New("unable to generate a unique ticket code")
