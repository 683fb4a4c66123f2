package inventory

import "errors"

// Ledger error kinds. Call sites wrap them with the offending identifier,
// e.g. fmt.Errorf("%w: item %v", ErrUnknownItem, id), so callers match
// with errors.Is and still see which record tripped the check.
var (
	ErrUnknownParty      = errors.New("party does not exist")
	ErrUnknownItem       = errors.New("item does not exist")
	ErrInsufficientStock = errors.New("not enough stock")
	ErrInvalidQuantity   = errors.New("quantity must be greater than 0")
)
