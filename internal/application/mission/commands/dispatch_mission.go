package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/starforge/starforge-go/internal/application/common"
	"github.com/starforge/starforge-go/internal/application/session"
	"github.com/starforge/starforge-go/internal/domain/shared"
)

// DispatchMissionCommand launches a fleet mission
type DispatchMissionCommand struct {
	Name     string
	Duration time.Duration
	Reward   map[shared.Resource]int
}

// DispatchMissionResponse reports the dispatched mission
type DispatchMissionResponse struct {
	MissionID string
	ArrivesAt time.Time
}

// DispatchMissionHandler handles the DispatchMission command
type DispatchMissionHandler struct {
	session *session.Session
}

// NewDispatchMissionHandler creates a new DispatchMissionHandler
func NewDispatchMissionHandler(sess *session.Session) *DispatchMissionHandler {
	return &DispatchMissionHandler{session: sess}
}

// Handle executes the DispatchMission command
func (h *DispatchMissionHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	cmd, ok := request.(*DispatchMissionCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *DispatchMissionCommand")
	}

	m, err := h.session.DispatchMission(cmd.Name, cmd.Duration, cmd.Reward)
	if err != nil {
		return nil, err
	}

	return &DispatchMissionResponse{
		MissionID: m.ID(),
		ArrivesAt: m.ArrivesAt(),
	}, nil
}
