package ledger

import (
	"fmt"

	"github.com/starforge/starforge-go/internal/domain/shared"
)

// ErrInsufficientResources indicates a debit could not be covered.
// The named resource is the first one found lacking; no part of the
// debit was applied.
type ErrInsufficientResources struct {
	Resource  shared.Resource
	Required  int
	Available int
}

func (e *ErrInsufficientResources) Error() string {
	return fmt.Sprintf("insufficient %s: need %d, have %d",
		e.Resource, e.Required, e.Available)
}

// ErrNegativeAmount indicates a caller passed a negative amount to a
// debit or credit. This is a programming error, not a domain condition.
type ErrNegativeAmount struct {
	Resource shared.Resource
	Amount   int
}

func (e *ErrNegativeAmount) Error() string {
	return fmt.Sprintf("negative amount for %s: %d", e.Resource, e.Amount)
}
