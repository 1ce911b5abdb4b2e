package cli

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/starforge/starforge-go/internal/adapters/metrics"
	"github.com/starforge/starforge-go/internal/application/heartbeat"
	"github.com/starforge/starforge-go/internal/domain/shared"
	"github.com/starforge/starforge-go/internal/infrastructure/pidfile"
)

// newRunCommand builds the daemon command: heartbeat loop, snapshot after
// every tick, optional metrics endpoint, graceful shutdown on SIGINT/SIGTERM
func newRunCommand(configPath, pidPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Run the scheduler daemon",
		RunE: func(cmd *cobra.Command, args []string) error {
			pid := pidfile.New(*pidPath)
			if err := pid.Acquire(); err != nil {
				return err
			}
			defer pid.Release()

			app, err := NewApp(*configPath)
			if err != nil {
				return err
			}

			if app.Config.Metrics.Enabled {
				metrics.InitRegistry()
			}

			var collector *metrics.HangarCollector
			if metrics.IsEnabled() {
				collector = metrics.NewHangarCollector()
				app.Session.Subscribe(collector.Observer())

				go func() {
					log.Printf("metrics listening on :%d", app.Config.Metrics.Port)
					if err := metrics.ListenAndServe(app.Config.Metrics.Port); err != nil {
						log.Printf("metrics server stopped: %v", err)
					}
				}()
			}

			clock := shared.NewRealClock()
			driver := heartbeat.NewDriver(app.Config.Heartbeat.Period, clock)
			driver.Register(func(now time.Time) {
				started := time.Now()
				app.Session.Advance(now)

				if err := app.SaveSession(context.Background()); err != nil {
					log.Printf("failed to save snapshot: %v", err)
				}

				if collector != nil {
					snap := app.Session.Capacity()
					collector.UpdateCapacity(snap.Used, snap.Reserved, snap.Free)
					collector.RecordAdvanceDuration(time.Since(started).Seconds())
				}
			})

			log.Printf("starting heartbeat for player %s (period %s)",
				app.Session.PlayerID(), app.Config.Heartbeat.Period)
			driver.Start()

			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
			sig := <-sigCh
			log.Printf("received %s, shutting down", sig)

			driver.Stop()
			if err := app.SaveSession(context.Background()); err != nil {
				log.Printf("failed to save final snapshot: %v", err)
			}
			return nil
		},
	}
}
