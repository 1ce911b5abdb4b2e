package commands

import (
	"context"
	"fmt"

	"github.com/starforge/starforge-go/internal/application/common"
	"github.com/starforge/starforge-go/internal/application/session"
)

// DecommissionCommand removes completed units from the hangar inventory,
// freeing the slots they occupy
type DecommissionCommand struct {
	BlueprintID string
	Count       int
}

// DecommissionResponse confirms the removal
type DecommissionResponse struct {
	BlueprintID string
	Count       int
}

// DecommissionHandler handles the Decommission command
type DecommissionHandler struct {
	session *session.Session
}

// NewDecommissionHandler creates a new DecommissionHandler
func NewDecommissionHandler(sess *session.Session) *DecommissionHandler {
	return &DecommissionHandler{session: sess}
}

// Handle executes the Decommission command
func (h *DecommissionHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	cmd, ok := request.(*DecommissionCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *DecommissionCommand")
	}

	if err := h.session.Decommission(cmd.BlueprintID, cmd.Count); err != nil {
		return nil, err
	}

	return &DecommissionResponse{BlueprintID: cmd.BlueprintID, Count: cmd.Count}, nil
}
