package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	missionCmd "github.com/starforge/starforge-go/internal/application/mission/commands"
	missionQuery "github.com/starforge/starforge-go/internal/application/mission/queries"
	"github.com/starforge/starforge-go/internal/domain/shared"
)

// newMissionCommand builds the mission management subtree
func newMissionCommand(configPath, pidPath *string) *cobra.Command {
	missionRoot := &cobra.Command{
		Use:   "mission",
		Short: "Manage fleet missions",
	}

	var duration time.Duration
	var rewards []string
	dispatchCmd := &cobra.Command{
		Use:   "dispatch <name>",
		Short: "Dispatch a fleet mission",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reward, err := parseReward(rewards)
			if err != nil {
				return err
			}
			if err := guardDaemonNotRunning(*pidPath); err != nil {
				return err
			}

			app, err := NewApp(*configPath)
			if err != nil {
				return err
			}

			resp, err := app.Mediator.Send(app.Context(), &missionCmd.DispatchMissionCommand{
				Name:     args[0],
				Duration: duration,
				Reward:   reward,
			})
			if err != nil {
				return err
			}
			if err := app.SaveSession(context.Background()); err != nil {
				return err
			}

			dispatched := resp.(*missionCmd.DispatchMissionResponse)
			fmt.Printf("mission %s underway, arrives at %s\n",
				dispatched.MissionID, dispatched.ArrivesAt.Format("15:04:05"))
			return nil
		},
	}
	dispatchCmd.Flags().DurationVarP(&duration, "duration", "d", 5*time.Minute, "mission travel time")
	dispatchCmd.Flags().StringSliceVarP(&rewards, "reward", "r", nil, "reward on arrival, RESOURCE=AMOUNT (repeatable)")

	recallCmd := &cobra.Command{
		Use:   "recall <mission-id>",
		Short: "Recall a mission before arrival (forfeits the reward)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := guardDaemonNotRunning(*pidPath); err != nil {
				return err
			}
			app, err := NewApp(*configPath)
			if err != nil {
				return err
			}

			if _, err := app.Mediator.Send(app.Context(), &missionCmd.RecallMissionCommand{
				MissionID: args[0],
			}); err != nil {
				return err
			}
			if err := app.SaveSession(context.Background()); err != nil {
				return err
			}

			fmt.Printf("mission %s recalled\n", args[0])
			return nil
		},
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List missions",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := NewApp(*configPath)
			if err != nil {
				return err
			}

			resp, err := app.Mediator.Send(app.Context(), &missionQuery.ListMissionsQuery{})
			if err != nil {
				return err
			}

			listed := resp.(*missionQuery.ListMissionsResponse)
			if len(listed.Missions) == 0 {
				fmt.Println("no missions")
				return nil
			}
			for _, m := range listed.Missions {
				fmt.Printf("%-36s  %-10s  %-20s  arrives %s\n",
					m.ID, m.Status, m.Name, m.ArrivesAt.Format("15:04:05"))
			}
			return nil
		},
	}

	missionRoot.AddCommand(dispatchCmd, recallCmd, listCmd)
	return missionRoot
}

// parseReward turns RESOURCE=AMOUNT pairs into a reward map
func parseReward(pairs []string) (map[shared.Resource]int, error) {
	reward := make(map[shared.Resource]int, len(pairs))
	for _, pair := range pairs {
		parts := strings.SplitN(pair, "=", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("invalid reward %q, expected RESOURCE=AMOUNT", pair)
		}
		amount, err := strconv.Atoi(parts[1])
		if err != nil {
			return nil, fmt.Errorf("invalid reward amount in %q: %w", pair, err)
		}
		reward[shared.Resource(strings.ToUpper(parts[0]))] = amount
	}
	return reward, nil
}
