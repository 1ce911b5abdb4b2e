package hangar

import (
	"time"

	"github.com/starforge/starforge-go/internal/domain/catalog"
	"github.com/starforge/starforge-go/internal/domain/ledger"
)

// SkipHandler is invoked when Advance encounters an order it cannot
// process (for example a blueprint no longer present in the catalog).
// The tick must never fail, so such orders are diagnosed and skipped.
type SkipHandler func(order *BuildOrder, err error)

// Queue is the scheduler core: the ordered set of build orders for one
// player, advanced once per heartbeat.
//
// Ownership:
// - the queue exclusively owns order identity and status transitions
// - the ledger exclusively owns resource stock
// - inventory is credited only by Advance (single writer per tick)
//
// The queue carries no locking; the owning session serializes all access.
type Queue struct {
	catalog        *catalog.Catalog
	ledger         *ledger.Ledger
	hangarCapacity int

	orders    []*BuildOrder
	byID      map[string]*BuildOrder
	inventory map[string]int

	onSkip SkipHandler
}

// NewQueue creates an empty order queue
func NewQueue(cat *catalog.Catalog, led *ledger.Ledger, hangarCapacity int) *Queue {
	return &Queue{
		catalog:        cat,
		ledger:         led,
		hangarCapacity: hangarCapacity,
		byID:           make(map[string]*BuildOrder),
		inventory:      make(map[string]int),
	}
}

// SetSkipHandler installs a diagnostic callback for orders skipped during
// Advance. A nil handler silences them.
func (q *Queue) SetSkipHandler(handler SkipHandler) {
	q.onSkip = handler
}

// StartOrder admits a new build order.
//
// Checks run in a fixed sequence; any failure leaves queue, ledger and
// inventory untouched:
//  1. blueprint lookup        -> catalog.ErrUnknownBlueprint
//  2. capacity check          -> ErrInsufficientCapacity
//  3. resource debit          -> ledger.ErrInsufficientResources
//
// Capacity, not a build-slot count, is the sole admission control: the
// order is promoted to BUILDING immediately, with the build window
// [now, now+duration]. Resources are debited here, at order start, and a
// later cancellation does not refund them.
func (q *Queue) StartOrder(blueprintID string, quantity int, now time.Time) (*BuildOrder, error) {
	order, err := NewBuildOrder(blueprintID, quantity)
	if err != nil {
		return nil, err
	}

	bp, err := q.catalog.Lookup(blueprintID)
	if err != nil {
		return nil, err
	}

	required := bp.TotalFootprint(quantity)
	if free := q.Capacity().Free; free < required {
		return nil, &ErrInsufficientCapacity{Required: required, Free: free}
	}

	if err := q.ledger.Debit(bp.TotalCost(quantity)); err != nil {
		return nil, err
	}

	// Admission control passed; the order skips the queued phase.
	if err := order.Begin(now, bp.BuildDuration()); err != nil {
		return nil, err
	}

	q.orders = append(q.orders, order)
	q.byID[order.ID()] = order
	return order, nil
}

// CancelOrder cancels a non-terminal order. The capacity it reserved is
// released by derivation (terminal orders no longer count as reserved);
// resources already spent stay spent.
func (q *Queue) CancelOrder(orderID string) (*BuildOrder, error) {
	order, ok := q.byID[orderID]
	if !ok {
		return nil, &ErrOrderNotFound{OrderID: orderID}
	}
	if err := order.Cancel(); err != nil {
		return nil, err
	}
	return order, nil
}

// Advance moves the queue to the logical instant now. Called once per
// heartbeat with a timestamp shared across all subsystems.
//
// Every BUILDING order whose end time has passed is completed in this one
// call and its units credited to inventory. Completions are independent of
// each other, so processing order does not affect the final state. QUEUED
// orders are promoted to BUILDING (the transition exists for admission
// policies that defer the start; the reference flow never leaves an order
// queued). Terminal orders are untouched, which makes the call idempotent:
// re-invoking with the same or a later now is a no-op for them.
//
// Advance never fails. An order referencing a blueprint missing from the
// catalog is reported to the skip handler and left alone; the capacity
// derivation already treats it as zero slots.
//
// Returns the orders completed by this call.
func (q *Queue) Advance(now time.Time) []*BuildOrder {
	var completed []*BuildOrder
	for _, order := range q.orders {
		switch order.Status() {
		case OrderStatusQueued:
			bp, err := q.catalog.Lookup(order.BlueprintID())
			if err != nil {
				q.skip(order, err)
				continue
			}
			if err := order.Begin(now, bp.BuildDuration()); err != nil {
				q.skip(order, err)
			}

		case OrderStatusBuilding:
			if !order.IsDue(now) {
				continue
			}
			if _, err := q.catalog.Lookup(order.BlueprintID()); err != nil {
				q.skip(order, err)
				continue
			}
			if err := order.Complete(); err != nil {
				q.skip(order, err)
				continue
			}
			q.inventory[order.BlueprintID()] += order.Quantity()
			completed = append(completed, order)
		}
	}
	return completed
}

// Decommission removes count completed units of a blueprint from the
// inventory, freeing the hangar slots they occupied. It is the only legal
// inventory decrement; order completion is the only legal increment.
func (q *Queue) Decommission(blueprintID string, count int) error {
	if count < 1 {
		return &ErrInvalidQuantity{Quantity: count}
	}
	held := q.inventory[blueprintID]
	if held < count {
		return &ErrInsufficientUnits{BlueprintID: blueprintID, Requested: count, Held: held}
	}
	if held == count {
		delete(q.inventory, blueprintID)
	} else {
		q.inventory[blueprintID] = held - count
	}
	return nil
}

// PruneTerminal removes completed and cancelled orders from the active set
// and returns how many were removed. Orders are never removed implicitly;
// history stays inspectable until this is called.
func (q *Queue) PruneTerminal() int {
	kept := q.orders[:0]
	pruned := 0
	for _, order := range q.orders {
		if order.Status().IsTerminal() {
			delete(q.byID, order.ID())
			pruned++
			continue
		}
		kept = append(kept, order)
	}
	q.orders = kept
	return pruned
}

// Capacity derives the current capacity snapshot
func (q *Queue) Capacity() CapacitySnapshot {
	return ComputeCapacity(q.catalog, q.inventory, q.orders, q.hangarCapacity)
}

// Order returns the order with the given ID
func (q *Queue) Order(orderID string) (*BuildOrder, error) {
	order, ok := q.byID[orderID]
	if !ok {
		return nil, &ErrOrderNotFound{OrderID: orderID}
	}
	return order, nil
}

// Orders returns the orders in creation sequence
func (q *Queue) Orders() []*BuildOrder {
	out := make([]*BuildOrder, len(q.orders))
	copy(out, q.orders)
	return out
}

// Inventory returns a copy of the completed-unit counts per blueprint
func (q *Queue) Inventory() map[string]int {
	out := make(map[string]int, len(q.inventory))
	for id, count := range q.inventory {
		out[id] = count
	}
	return out
}

// HangarCapacity returns the configured slot limit
func (q *Queue) HangarCapacity() int {
	return q.hangarCapacity
}

// RestoreOrder re-attaches a reconstructed order. Only repositories
// restoring a saved session should call this.
func (q *Queue) RestoreOrder(order *BuildOrder) {
	q.orders = append(q.orders, order)
	q.byID[order.ID()] = order
}

// RestoreInventory overwrites the inventory map from persisted counts.
// Only repositories restoring a saved session should call this.
func (q *Queue) RestoreInventory(inventory map[string]int) {
	q.inventory = make(map[string]int, len(inventory))
	for id, count := range inventory {
		q.inventory[id] = count
	}
}

func (q *Queue) skip(order *BuildOrder, err error) {
	if q.onSkip != nil {
		q.onSkip(order, err)
	}
}
