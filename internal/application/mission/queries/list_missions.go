package queries

import (
	"context"
	"fmt"
	"time"

	"github.com/starforge/starforge-go/internal/application/common"
	"github.com/starforge/starforge-go/internal/application/session"
	"github.com/starforge/starforge-go/internal/domain/mission"
	"github.com/starforge/starforge-go/internal/domain/shared"
)

// ListMissionsQuery requests the mission list for the presentation layer
type ListMissionsQuery struct{}

// MissionView is the read-side projection of one mission
type MissionView struct {
	ID         string
	Name       string
	Status     mission.MissionStatus
	DepartedAt time.Time
	ArrivesAt  time.Time
	Reward     map[shared.Resource]int
}

// ListMissionsResponse carries the mission views in dispatch order
type ListMissionsResponse struct {
	Missions []MissionView
}

// ListMissionsHandler handles the ListMissions query
type ListMissionsHandler struct {
	session *session.Session
}

// NewListMissionsHandler creates a new ListMissionsHandler
func NewListMissionsHandler(sess *session.Session) *ListMissionsHandler {
	return &ListMissionsHandler{session: sess}
}

// Handle executes the ListMissions query
func (h *ListMissionsHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	if _, ok := request.(*ListMissionsQuery); !ok {
		return nil, fmt.Errorf("invalid request type: expected *ListMissionsQuery")
	}

	missions := h.session.Missions()
	views := make([]MissionView, len(missions))
	for i, m := range missions {
		views[i] = MissionView{
			ID:         m.ID(),
			Name:       m.Name(),
			Status:     m.Status(),
			DepartedAt: m.DepartedAt(),
			ArrivesAt:  m.ArrivesAt(),
			Reward:     m.Reward(),
		}
	}

	return &ListMissionsResponse{Missions: views}, nil
}
