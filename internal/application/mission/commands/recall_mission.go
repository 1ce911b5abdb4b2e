package commands

import (
	"context"
	"fmt"

	"github.com/starforge/starforge-go/internal/application/common"
	"github.com/starforge/starforge-go/internal/application/session"
)

// RecallMissionCommand aborts an underway mission, forfeiting its reward
type RecallMissionCommand struct {
	MissionID string
}

// RecallMissionResponse confirms the recall
type RecallMissionResponse struct {
	MissionID string
}

// RecallMissionHandler handles the RecallMission command
type RecallMissionHandler struct {
	session *session.Session
}

// NewRecallMissionHandler creates a new RecallMissionHandler
func NewRecallMissionHandler(sess *session.Session) *RecallMissionHandler {
	return &RecallMissionHandler{session: sess}
}

// Handle executes the RecallMission command
func (h *RecallMissionHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	cmd, ok := request.(*RecallMissionCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *RecallMissionCommand")
	}

	if err := h.session.RecallMission(cmd.MissionID); err != nil {
		return nil, err
	}

	return &RecallMissionResponse{MissionID: cmd.MissionID}, nil
}
