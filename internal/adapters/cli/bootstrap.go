package cli

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/starforge/starforge-go/internal/adapters/persistence"
	"github.com/starforge/starforge-go/internal/application/common"
	hangarCmd "github.com/starforge/starforge-go/internal/application/hangar/commands"
	hangarQuery "github.com/starforge/starforge-go/internal/application/hangar/queries"
	missionCmd "github.com/starforge/starforge-go/internal/application/mission/commands"
	missionQuery "github.com/starforge/starforge-go/internal/application/mission/queries"
	"github.com/starforge/starforge-go/internal/application/session"
	"github.com/starforge/starforge-go/internal/domain/catalog"
	"github.com/starforge/starforge-go/internal/domain/hangar"
	"github.com/starforge/starforge-go/internal/domain/mission"
	"github.com/starforge/starforge-go/internal/domain/shared"
	"github.com/starforge/starforge-go/internal/infrastructure/config"
	"github.com/starforge/starforge-go/internal/infrastructure/database"
)

// App bundles everything a command needs: configuration, the restored
// session, the snapshot repository and the mediator with all handlers
// registered.
type App struct {
	Config   *config.Config
	Catalog  *catalog.Catalog
	Session  *session.Session
	Repo     *persistence.GormSessionRepository
	Mediator common.Mediator
}

// NewApp loads configuration, opens the snapshot store and restores the
// player session (or creates a fresh one on first run)
func NewApp(configPath string) (*App, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, err
	}

	cat, err := catalog.LoadFile(cfg.Game.CatalogPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	db, err := database.NewConnection(&cfg.Database)
	if err != nil {
		return nil, err
	}

	repo := persistence.NewGormSessionRepository(db)
	if err := repo.Migrate(); err != nil {
		return nil, fmt.Errorf("failed to migrate snapshot store: %w", err)
	}

	clock := shared.NewRealClock()
	sess, err := restoreOrCreate(repo, cfg, cat, clock)
	if err != nil {
		return nil, err
	}

	sess.SetSkipHandlers(
		func(order *hangar.BuildOrder, err error) {
			log.Printf("skipping order %s during advance: %v", order.ID(), err)
		},
		func(m *mission.Mission, err error) {
			log.Printf("skipping mission %s during advance: %v", m.ID(), err)
		},
	)

	// Settle everything that became due while no process was running, so
	// one-shot commands render and mutate current state rather than the
	// state at the last save.
	sess.Advance(clock.Now())

	med, err := buildMediator(sess)
	if err != nil {
		return nil, err
	}

	return &App{
		Config:   cfg,
		Catalog:  cat,
		Session:  sess,
		Repo:     repo,
		Mediator: med,
	}, nil
}

// SaveSession persists the current session snapshot
func (a *App) SaveSession(ctx context.Context) error {
	return a.Repo.Save(ctx, a.Session.Snapshot())
}

// Context returns a base context carrying the CLI logger, so the mediator's
// logging middleware reports failed commands
func (a *App) Context() context.Context {
	return common.WithLogger(context.Background(), stdLogger{})
}

// stdLogger adapts the stdlib logger to the SessionLogger interface
type stdLogger struct{}

func (stdLogger) Log(level, message string, metadata map[string]interface{}) {
	if len(metadata) == 0 {
		log.Printf("[%s] %s", level, message)
		return
	}
	log.Printf("[%s] %s %v", level, message, metadata)
}

func restoreOrCreate(
	repo *persistence.GormSessionRepository,
	cfg *config.Config,
	cat *catalog.Catalog,
	clock shared.Clock,
) (*session.Session, error) {
	snap, err := repo.Load(context.Background(), cfg.Game.PlayerID)
	if err != nil {
		var notFound *persistence.ErrSessionNotFound
		if errors.As(err, &notFound) {
			stock := make(map[shared.Resource]int, len(cfg.Game.OpeningStock))
			for res, amount := range cfg.Game.OpeningStock {
				stock[shared.Resource(res)] = amount
			}
			return session.New(session.Config{
				PlayerID:       cfg.Game.PlayerID,
				Catalog:        cat,
				Clock:          clock,
				HangarCapacity: cfg.Game.HangarCapacity,
				OpeningStock:   stock,
			}), nil
		}
		return nil, err
	}

	// Capacity is configuration, not saved state; the configured limit
	// wins over whatever the snapshot was taken with.
	snap.HangarCapacity = cfg.Game.HangarCapacity
	return session.Restore(snap, cat, clock), nil
}

func buildMediator(sess *session.Session) (common.Mediator, error) {
	med := common.NewMediator()

	med.Use(func(ctx context.Context, request common.Request, next common.HandlerFunc) (common.Response, error) {
		resp, err := next(ctx, request)
		if err != nil {
			common.LoggerFromContext(ctx).Log("error", "command failed", map[string]interface{}{
				"request": fmt.Sprintf("%T", request),
				"error":   err.Error(),
			})
		}
		return resp, err
	})

	registrations := []error{
		common.RegisterHandler[*hangarCmd.StartOrderCommand](med, hangarCmd.NewStartOrderHandler(sess)),
		common.RegisterHandler[*hangarCmd.CancelOrderCommand](med, hangarCmd.NewCancelOrderHandler(sess)),
		common.RegisterHandler[*hangarCmd.DecommissionCommand](med, hangarCmd.NewDecommissionHandler(sess)),
		common.RegisterHandler[*missionCmd.DispatchMissionCommand](med, missionCmd.NewDispatchMissionHandler(sess)),
		common.RegisterHandler[*missionCmd.RecallMissionCommand](med, missionCmd.NewRecallMissionHandler(sess)),
		common.RegisterHandler[*hangarQuery.GetStatusQuery](med, hangarQuery.NewGetStatusHandler(sess)),
		common.RegisterHandler[*missionQuery.ListMissionsQuery](med, missionQuery.NewListMissionsHandler(sess)),
	}
	for _, err := range registrations {
		if err != nil {
			return nil, err
		}
	}

	return med, nil
}
