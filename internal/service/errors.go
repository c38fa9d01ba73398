package service

import "errors"

// Typed failures raised by the service layer. Handlers map these to HTTP
// statuses with errors.Is; anything else is treated as a server fault.
var (
	ErrProductNotFound   = errors.New("product not found")
	ErrProductHasStock   = errors.New("product still has a stock record")
	ErrStockNotFound     = errors.New("stock not found for this product")
	ErrStockExists       = errors.New("stock already registered for this product")
	ErrInsufficientStock = errors.New("insufficient stock remaining")
	ErrInvalidQuantity   = errors.New("quantity must be a positive number")
	ErrOrderNotFound     = errors.New("order not found")

	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserInactive       = errors.New("user account is inactive")
	ErrEmailTaken         = errors.New("email already registered")
)
