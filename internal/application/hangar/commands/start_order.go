package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/starforge/starforge-go/internal/application/common"
	"github.com/starforge/starforge-go/internal/application/session"
)

// StartOrderCommand requests production of Quantity units of a blueprint
type StartOrderCommand struct {
	BlueprintID string
	Quantity    int
}

// StartOrderResponse reports the admitted order
type StartOrderResponse struct {
	OrderID   string
	StartTime time.Time
	EndTime   time.Time
}

// StartOrderHandler handles the StartOrder command
type StartOrderHandler struct {
	session *session.Session
}

// NewStartOrderHandler creates a new StartOrderHandler
func NewStartOrderHandler(sess *session.Session) *StartOrderHandler {
	return &StartOrderHandler{session: sess}
}

// Handle executes the StartOrder command
func (h *StartOrderHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	cmd, ok := request.(*StartOrderCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *StartOrderCommand")
	}

	order, err := h.session.StartOrder(cmd.BlueprintID, cmd.Quantity)
	if err != nil {
		return nil, err
	}

	return &StartOrderResponse{
		OrderID:   order.ID(),
		StartTime: order.StartTime(),
		EndTime:   order.EndTime(),
	}, nil
}
