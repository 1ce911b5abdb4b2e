package queries

import (
	"context"
	"fmt"
	"time"

	"github.com/starforge/starforge-go/internal/application/common"
	"github.com/starforge/starforge-go/internal/application/session"
	"github.com/starforge/starforge-go/internal/domain/hangar"
	"github.com/starforge/starforge-go/internal/domain/shared"
)

// GetStatusQuery requests the full hangar view for the presentation layer
type GetStatusQuery struct{}

// OrderView is the read-side projection of one build order
type OrderView struct {
	ID          string
	BlueprintID string
	Quantity    int
	Status      hangar.OrderStatus
	StartTime   time.Time
	EndTime     time.Time
}

// GetStatusResponse carries the queue, inventory, capacity and stock views
type GetStatusResponse struct {
	Orders         []OrderView
	Inventory      map[string]int
	Capacity       hangar.CapacitySnapshot
	HangarCapacity int
	Stock          map[shared.Resource]int
}

// GetStatusHandler handles the GetStatus query
type GetStatusHandler struct {
	session *session.Session
}

// NewGetStatusHandler creates a new GetStatusHandler
func NewGetStatusHandler(sess *session.Session) *GetStatusHandler {
	return &GetStatusHandler{session: sess}
}

// Handle executes the GetStatus query
func (h *GetStatusHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	if _, ok := request.(*GetStatusQuery); !ok {
		return nil, fmt.Errorf("invalid request type: expected *GetStatusQuery")
	}

	orders := h.session.Queue()
	views := make([]OrderView, len(orders))
	for i, o := range orders {
		views[i] = OrderView{
			ID:          o.ID(),
			BlueprintID: o.BlueprintID(),
			Quantity:    o.Quantity(),
			Status:      o.Status(),
			StartTime:   o.StartTime(),
			EndTime:     o.EndTime(),
		}
	}

	return &GetStatusResponse{
		Orders:         views,
		Inventory:      h.session.Inventory(),
		Capacity:       h.session.Capacity(),
		HangarCapacity: h.session.HangarCapacity(),
		Stock:          h.session.Stock(),
	}, nil
}
