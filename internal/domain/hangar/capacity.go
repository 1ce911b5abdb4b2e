package hangar

import (
	"github.com/starforge/starforge-go/internal/domain/catalog"
)

// CapacitySnapshot is the derived view of hangar slot usage.
//
// Used + Reserved + Free == hangar capacity, except when the capacity limit
// was lowered under existing commitments; Free then clamps at zero.
type CapacitySnapshot struct {
	Used     int
	Reserved int
	Free     int
}

// ComputeCapacity derives a snapshot from completed inventory and the
// non-terminal order set. It recomputes from scratch on every call rather
// than caching incrementally; the active-order set is small and recomputing
// keeps the snapshot from drifting out of sync with its sources.
//
// An order or inventory entry whose blueprint is missing from the catalog
// contributes zero slots instead of failing the computation.
func ComputeCapacity(
	cat *catalog.Catalog,
	inventory map[string]int,
	orders []*BuildOrder,
	hangarCapacity int,
) CapacitySnapshot {
	used := 0
	for blueprintID, count := range inventory {
		bp, err := cat.Lookup(blueprintID)
		if err != nil {
			continue
		}
		used += bp.TotalFootprint(count)
	}

	reserved := 0
	for _, order := range orders {
		if order.Status().IsTerminal() {
			continue
		}
		bp, err := cat.Lookup(order.BlueprintID())
		if err != nil {
			continue
		}
		reserved += bp.TotalFootprint(order.Quantity())
	}

	free := hangarCapacity - used - reserved
	if free < 0 {
		free = 0
	}

	return CapacitySnapshot{Used: used, Reserved: reserved, Free: free}
}
