package commands

import (
	"context"
	"fmt"

	"github.com/starforge/starforge-go/internal/application/common"
	"github.com/starforge/starforge-go/internal/application/session"
)

// CancelOrderCommand requests cancellation of a build order.
// Resources already debited are not refunded.
type CancelOrderCommand struct {
	OrderID string
}

// CancelOrderResponse confirms the cancellation
type CancelOrderResponse struct {
	OrderID string
}

// CancelOrderHandler handles the CancelOrder command
type CancelOrderHandler struct {
	session *session.Session
}

// NewCancelOrderHandler creates a new CancelOrderHandler
func NewCancelOrderHandler(sess *session.Session) *CancelOrderHandler {
	return &CancelOrderHandler{session: sess}
}

// Handle executes the CancelOrder command
func (h *CancelOrderHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	cmd, ok := request.(*CancelOrderCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *CancelOrderCommand")
	}

	if err := h.session.CancelOrder(cmd.OrderID); err != nil {
		return nil, err
	}

	return &CancelOrderResponse{OrderID: cmd.OrderID}, nil
}
