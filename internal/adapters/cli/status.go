package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	hangarQuery "github.com/starforge/starforge-go/internal/application/hangar/queries"
	"github.com/starforge/starforge-go/internal/domain/shared"
)

// newStatusCommand builds the status command: one-shot view of the
// hangar, inventory and resource stock
func newStatusCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show hangar capacity, inventory and resource stock",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := NewApp(*configPath)
			if err != nil {
				return err
			}

			resp, err := app.Mediator.Send(app.Context(), &hangarQuery.GetStatusQuery{})
			if err != nil {
				return err
			}
			status := resp.(*hangarQuery.GetStatusResponse)

			fmt.Printf("player: %s\n", app.Session.PlayerID())
			fmt.Printf("hangar: %d used, %d reserved, %d free (capacity %d)\n",
				status.Capacity.Used, status.Capacity.Reserved,
				status.Capacity.Free, status.HangarCapacity)

			fmt.Println("\ninventory:")
			if len(status.Inventory) == 0 {
				fmt.Println("  (empty)")
			}
			for _, blueprintID := range sortedKeys(status.Inventory) {
				fmt.Printf("  %-20s %d\n", blueprintID, status.Inventory[blueprintID])
			}

			fmt.Println("\nstock:")
			resources := make([]shared.Resource, 0, len(status.Stock))
			for res := range status.Stock {
				resources = append(resources, res)
			}
			sort.Slice(resources, func(i, j int) bool { return resources[i] < resources[j] })
			for _, res := range resources {
				fmt.Printf("  %-20s %d\n", res, status.Stock[res])
			}

			active := 0
			for _, o := range status.Orders {
				if !o.Status.IsTerminal() {
					active++
				}
			}
			fmt.Printf("\norders: %d total, %d active\n", len(status.Orders), active)
			return nil
		},
	}
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
