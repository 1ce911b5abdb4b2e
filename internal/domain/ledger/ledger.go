package ledger

import (
	"github.com/starforge/starforge-go/internal/domain/shared"
)

// Ledger holds the current stock of each resource type for one player.
//
// Invariants:
// - no stock ever goes negative
// - Debit is atomic across all resource types in the request: either every
//   cost is applied or none is
// - Credit is monotonic; negative amounts are rejected as a caller error
//
// The ledger carries no locking of its own. All access is serialized by the
// owning session (one writer per player).
type Ledger struct {
	stock map[shared.Resource]int
}

// New creates a ledger with the given opening stock
func New(opening map[shared.Resource]int) *Ledger {
	return &Ledger{stock: shared.CopyCosts(opening)}
}

// Debit removes the given amounts from stock, all-or-nothing.
// Returns ErrInsufficientResources naming the first lacking resource,
// leaving the ledger untouched.
func (l *Ledger) Debit(costs map[shared.Resource]int) error {
	for res, amount := range costs {
		if amount < 0 {
			return &ErrNegativeAmount{Resource: res, Amount: amount}
		}
		if l.stock[res] < amount {
			return &ErrInsufficientResources{
				Resource:  res,
				Required:  amount,
				Available: l.stock[res],
			}
		}
	}

	for res, amount := range costs {
		l.stock[res] -= amount
	}
	return nil
}

// Credit adds amount units of the resource. Negative amounts are rejected.
func (l *Ledger) Credit(resource shared.Resource, amount int) error {
	if amount < 0 {
		return &ErrNegativeAmount{Resource: resource, Amount: amount}
	}
	l.stock[resource] += amount
	return nil
}

// CreditAll credits every entry of a resource amount map. Used for mission
// rewards; fails on the first negative amount without partial application.
func (l *Ledger) CreditAll(amounts map[shared.Resource]int) error {
	for res, amount := range amounts {
		if amount < 0 {
			return &ErrNegativeAmount{Resource: res, Amount: amount}
		}
	}
	for res, amount := range amounts {
		l.stock[res] += amount
	}
	return nil
}

// Balance returns the current stock of a single resource
func (l *Ledger) Balance(resource shared.Resource) int {
	return l.stock[resource]
}

// Stock returns a copy of the full stock map
func (l *Ledger) Stock() map[shared.Resource]int {
	return shared.CopyCosts(l.stock)
}
