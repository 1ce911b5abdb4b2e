package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	hangarCmd "github.com/starforge/starforge-go/internal/application/hangar/commands"
	hangarQuery "github.com/starforge/starforge-go/internal/application/hangar/queries"
)

// newOrderCommand builds the order management subtree
func newOrderCommand(configPath, pidPath *string) *cobra.Command {
	orderCmd := &cobra.Command{
		Use:   "order",
		Short: "Manage build orders",
	}

	var quantity int
	startCmd := &cobra.Command{
		Use:   "start <blueprint-id>",
		Short: "Start a build order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := guardDaemonNotRunning(*pidPath); err != nil {
				return err
			}
			app, err := NewApp(*configPath)
			if err != nil {
				return err
			}

			resp, err := app.Mediator.Send(app.Context(), &hangarCmd.StartOrderCommand{
				BlueprintID: args[0],
				Quantity:    quantity,
			})
			if err != nil {
				return err
			}
			if err := app.SaveSession(context.Background()); err != nil {
				return err
			}

			started := resp.(*hangarCmd.StartOrderResponse)
			fmt.Printf("order %s building, completes at %s\n",
				started.OrderID, started.EndTime.Format("15:04:05"))
			return nil
		},
	}
	startCmd.Flags().IntVarP(&quantity, "quantity", "n", 1, "number of units to build")

	cancelCmd := &cobra.Command{
		Use:   "cancel <order-id>",
		Short: "Cancel a build order (no resource refund)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := guardDaemonNotRunning(*pidPath); err != nil {
				return err
			}
			app, err := NewApp(*configPath)
			if err != nil {
				return err
			}

			if _, err := app.Mediator.Send(app.Context(), &hangarCmd.CancelOrderCommand{
				OrderID: args[0],
			}); err != nil {
				return err
			}
			if err := app.SaveSession(context.Background()); err != nil {
				return err
			}

			fmt.Printf("order %s cancelled\n", args[0])
			return nil
		},
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List build orders",
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
			if len(status.Orders) == 0 {
				fmt.Println("no orders")
				return nil
			}
			for _, o := range status.Orders {
				fmt.Printf("%-36s  %-12s  %3dx %-16s  ends %s\n",
					o.ID, o.Status, o.Quantity, o.BlueprintID,
					o.EndTime.Format("15:04:05"))
			}
			return nil
		},
	}

	var count int
	decommissionCmd := &cobra.Command{
		Use:   "decommission <blueprint-id>",
		Short: "Remove completed units from the hangar",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := guardDaemonNotRunning(*pidPath); err != nil {
				return err
			}
			app, err := NewApp(*configPath)
			if err != nil {
				return err
			}

			if _, err := app.Mediator.Send(app.Context(), &hangarCmd.DecommissionCommand{
				BlueprintID: args[0],
				Count:       count,
			}); err != nil {
				return err
			}
			if err := app.SaveSession(context.Background()); err != nil {
				return err
			}

			fmt.Printf("decommissioned %d x %s\n", count, args[0])
			return nil
		},
	}
	decommissionCmd.Flags().IntVarP(&count, "count", "n", 1, "number of units to remove")

	orderCmd.AddCommand(startCmd, cancelCmd, listCmd, decommissionCmd)
	return orderCmd
}
