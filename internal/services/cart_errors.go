package services

import (
	"errors"
	"fmt"
)

// Op names the cart operation that failed.
type Op string

const (
	OpAdd    Op = "add"
	OpRemove Op = "remove"
	OpUpdate Op = "update"
)

// Failure kinds. Every error returned by CartService matches exactly one of
// these with errors.Is.
var (
	// ErrStockExceeded means the requested amount is above the available stock.
	ErrStockExceeded = errors.New("requested amount exceeds available stock")

	// ErrOracleFailure means the stock service lookup itself failed.
	ErrOracleFailure = errors.New("stock service lookup failed")

	// ErrItemNotFound means the product is not in the cart.
	ErrItemNotFound = errors.New("product is not in the cart")

	// ErrPersistFailed means the new cart could not be written to the store.
	// The in-memory cart is left as it was.
	ErrPersistFailed = errors.New("cart could not be saved")
)

// User-facing messages, one per failure condition.
const (
	MsgStockExceeded = "Quantidade solicitada fora de estoque"
	MsgAddFailed     = "Erro na adição do produto"
	MsgRemoveFailed  = "Erro na remoção do produto"
	MsgUpdateFailed  = "Erro na alteração de quantidade do produto"
	MsgPersistFailed = "Erro ao salvar o carrinho"
)

// OperationError is the structured result of a failed cart operation.
type OperationError struct {
	Op        Op
	ProductID int64
	Kind      error
	Err       error
}

func (e *OperationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("cart %s product %d: %v: %v", e.Op, e.ProductID, e.Kind, e.Err)
	}
	return fmt.Sprintf("cart %s product %d: %v", e.Op, e.ProductID, e.Kind)
}

// Unwrap exposes both the failure kind and the underlying cause.
func (e *OperationError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// Message is the text shown to the end user for this failure.
func (e *OperationError) Message() string {
	return MessageFor(e.Op, e.Kind)
}

// MessageFor maps a failure kind to its user-facing message. Stock and persist
// failures share a message across operations; the rest are per operation.
func MessageFor(op Op, err error) string {
	switch {
	case errors.Is(err, ErrPersistFailed):
		return MsgPersistFailed
	case errors.Is(err, ErrStockExceeded):
		return MsgStockExceeded
	}

	switch op {
	case OpAdd:
		return MsgAddFailed
	case OpRemove:
		return MsgRemoveFailed
	default:
		return MsgUpdateFailed
	}
}

// KindOf returns a short machine name for the failure kind.
func KindOf(err error) string {
	switch {
	case errors.Is(err, ErrStockExceeded):
		return "stock_exceeded"
	case errors.Is(err, ErrOracleFailure):
		return "oracle_failure"
	case errors.Is(err, ErrItemNotFound):
		return "not_found"
	case errors.Is(err, ErrPersistFailed):
		return "persist_failed"
	default:
		return "unknown"
	}
}
