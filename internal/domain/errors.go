package domain

import "errors"

// Domain errors (no external dependencies).
var (
	ErrNotFound            = errors.New("resource not found")
	ErrInvalidInput        = errors.New("invalid input")
	ErrDuplicate           = errors.New("duplicate resource")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrForbidden           = errors.New("access denied")
	ErrInvalidQuantity     = errors.New("quantity must not be negative")
	ErrInsufficientStock   = errors.New("insufficient stock")
	ErrOrphanedTransaction = errors.New("transaction references a deleted part")
)
