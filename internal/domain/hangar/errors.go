package hangar

import "fmt"

// ErrInvalidQuantity indicates an order quantity below one
type ErrInvalidQuantity struct {
	Quantity int
}

func (e *ErrInvalidQuantity) Error() string {
	return fmt.Sprintf("invalid order quantity: %d", e.Quantity)
}

// ErrInsufficientCapacity indicates the hangar cannot hold the order
type ErrInsufficientCapacity struct {
	Required int
	Free     int
}

func (e *ErrInsufficientCapacity) Error() string {
	return fmt.Sprintf("insufficient hangar capacity: need %d slots, %d free",
		e.Required, e.Free)
}

// ErrOrderNotFound indicates an unknown order ID
type ErrOrderNotFound struct {
	OrderID string
}

func (e *ErrOrderNotFound) Error() string {
	return fmt.Sprintf("order not found: %s", e.OrderID)
}

// ErrOrderNotCancellable indicates a cancel attempt on a terminal order
type ErrOrderNotCancellable struct {
	OrderID string
	Status  OrderStatus
}

func (e *ErrOrderNotCancellable) Error() string {
	return fmt.Sprintf("order %s cannot be cancelled in status %s",
		e.OrderID, e.Status)
}

// ErrInvalidOrderTransition indicates a status transition that would move
// an order backwards or out of a terminal state
type ErrInvalidOrderTransition struct {
	OrderID string
	From    OrderStatus
	To      OrderStatus
}

func (e *ErrInvalidOrderTransition) Error() string {
	return fmt.Sprintf("invalid order transition for %s: %s -> %s",
		e.OrderID, e.From, e.To)
}

// ErrInsufficientUnits indicates a decommission of more units than held
type ErrInsufficientUnits struct {
	BlueprintID string
	Requested   int
	Held        int
}

func (e *ErrInsufficientUnits) Error() string {
	return fmt.Sprintf("cannot decommission %d units of %s: only %d held",
		e.Requested, e.BlueprintID, e.Held)
}
