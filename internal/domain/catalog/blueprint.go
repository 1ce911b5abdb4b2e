package catalog

import (
	"time"

	"github.com/starforge/starforge-go/internal/domain/shared"
)

// BlueprintSpec describes a buildable unit type. Entries are immutable after
// catalog load; the scheduler only ever reads them.
//
// Invariants (enforced at load):
// - BuildDurationSeconds > 0
// - CapacityFootprint >= 0
// - every cost amount >= 0
type BlueprintSpec struct {
	ID                   string                  `yaml:"id" validate:"required"`
	Name                 string                  `yaml:"name" validate:"required"`
	Role                 string                  `yaml:"role" validate:"required"`
	CostPerUnit          map[shared.Resource]int `yaml:"cost_per_unit" validate:"dive,gte=0"`
	BuildDurationSeconds int                     `yaml:"build_duration_seconds" validate:"gt=0"`
	CapacityFootprint    int                     `yaml:"capacity_footprint" validate:"gte=0"`
}

// BuildDuration returns the build time as a time.Duration
func (b *BlueprintSpec) BuildDuration() time.Duration {
	return time.Duration(b.BuildDurationSeconds) * time.Second
}

// TotalCost computes the cost of building quantity units
func (b *BlueprintSpec) TotalCost(quantity int) map[shared.Resource]int {
	return shared.ScaleCosts(b.CostPerUnit, quantity)
}

// TotalFootprint computes the hangar slots occupied by quantity units
func (b *BlueprintSpec) TotalFootprint(quantity int) int {
	return b.CapacityFootprint * quantity
}
