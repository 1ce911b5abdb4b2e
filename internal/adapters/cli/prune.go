package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// newPruneCommand builds the history pruning command. Terminal orders and
// missions are never removed implicitly; this is the explicit cleanup.
func newPruneCommand(configPath, pidPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "prune",
		Short: "Remove completed and cancelled orders and missions from history",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := guardDaemonNotRunning(*pidPath); err != nil {
				return err
			}
			app, err := NewApp(*configPath)
			if err != nil {
				return err
			}

			orders, missions := app.Session.PruneHistory()
			if err := app.SaveSession(context.Background()); err != nil {
				return err
			}

			fmt.Printf("pruned %d orders, %d missions\n", orders, missions)
			return nil
		},
	}
}
