package hangar

import (
	"time"

	"github.com/google/uuid"
)

// OrderStatus represents the lifecycle state of a build order
type OrderStatus string

const (
	// OrderStatusQueued - created and admitted, build not yet started
	OrderStatusQueued OrderStatus = "QUEUED"

	// OrderStatusBuilding - build in progress until EndTime passes
	OrderStatusBuilding OrderStatus = "BUILDING"

	// OrderStatusCompleted - build finished, units credited to inventory
	OrderStatusCompleted OrderStatus = "COMPLETED"

	// OrderStatusCancelled - cancelled before completion, no refund
	OrderStatusCancelled OrderStatus = "CANCELLED"
)

// IsTerminal returns true for statuses that admit no further transition
func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusCompleted || s == OrderStatusCancelled
}

// BuildOrder is a request to produce Quantity units of a blueprint, tracked
// through its lifecycle until completion or cancellation.
//
// Status is strictly monotonic:
//
//	QUEUED -> BUILDING -> COMPLETED
//	QUEUED/BUILDING   -> CANCELLED
//
// "Building" is purely a timestamp comparison against EndTime; there is no
// active task behind an order, so cancellation never interrupts anything.
type BuildOrder struct {
	id          string
	blueprintID string
	quantity    int
	status      OrderStatus
	startTime   time.Time
	endTime     time.Time
}

// NewBuildOrder creates an order in QUEUED state. Times are assigned when
// the order is promoted to BUILDING.
func NewBuildOrder(blueprintID string, quantity int) (*BuildOrder, error) {
	if quantity < 1 {
		return nil, &ErrInvalidQuantity{Quantity: quantity}
	}
	return &BuildOrder{
		id:          uuid.New().String(),
		blueprintID: blueprintID,
		quantity:    quantity,
		status:      OrderStatusQueued,
	}, nil
}

// ReconstructOrder restores an order from persistence, bypassing transition
// checks. Only repositories should call this.
func ReconstructOrder(
	id string,
	blueprintID string,
	quantity int,
	status OrderStatus,
	startTime, endTime time.Time,
) *BuildOrder {
	return &BuildOrder{
		id:          id,
		blueprintID: blueprintID,
		quantity:    quantity,
		status:      status,
		startTime:   startTime,
		endTime:     endTime,
	}
}

// Begin transitions QUEUED -> BUILDING, stamping the build window
func (o *BuildOrder) Begin(now time.Time, duration time.Duration) error {
	if o.status != OrderStatusQueued {
		return &ErrInvalidOrderTransition{
			OrderID: o.id,
			From:    o.status,
			To:      OrderStatusBuilding,
		}
	}
	o.status = OrderStatusBuilding
	o.startTime = now
	o.endTime = now.Add(duration)
	return nil
}

// Complete transitions BUILDING -> COMPLETED
func (o *BuildOrder) Complete() error {
	if o.status != OrderStatusBuilding {
		return &ErrInvalidOrderTransition{
			OrderID: o.id,
			From:    o.status,
			To:      OrderStatusCompleted,
		}
	}
	o.status = OrderStatusCompleted
	return nil
}

// Cancel transitions any non-terminal status -> CANCELLED.
// Resources already debited are not refunded.
func (o *BuildOrder) Cancel() error {
	if o.status.IsTerminal() {
		return &ErrOrderNotCancellable{OrderID: o.id, Status: o.status}
	}
	o.status = OrderStatusCancelled
	return nil
}

// IsDue reports whether a BUILDING order has reached its end time
func (o *BuildOrder) IsDue(now time.Time) bool {
	return o.status == OrderStatusBuilding && !now.Before(o.endTime)
}

// Getters

func (o *BuildOrder) ID() string {
	return o.id
}

func (o *BuildOrder) BlueprintID() string {
	return o.blueprintID
}

func (o *BuildOrder) Quantity() int {
	return o.quantity
}

func (o *BuildOrder) Status() OrderStatus {
	return o.status
}

func (o *BuildOrder) StartTime() time.Time {
	return o.startTime
}

func (o *BuildOrder) EndTime() time.Time {
	return o.endTime
}
