package persistence

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"gorm.io/gorm"

	"github.com/starforge/starforge-go/internal/application/session"
	"github.com/starforge/starforge-go/internal/domain/hangar"
	"github.com/starforge/starforge-go/internal/domain/mission"
	"github.com/starforge/starforge-go/internal/domain/shared"
)

// ErrSessionNotFound indicates no saved session exists for the player
type ErrSessionNotFound struct {
	PlayerID string
}

func (e *ErrSessionNotFound) Error() string {
	return fmt.Sprintf("no saved session for player %s", e.PlayerID)
}

// GormSessionRepository persists session snapshots using GORM.
//
// The scheduler core owns no wire format; this adapter maps the plain-data
// session.Snapshot onto relational rows and back. Save replaces the whole
// snapshot in one transaction, so a crash mid-save never leaves a player
// with half of two different snapshots.
type GormSessionRepository struct {
	db *gorm.DB
}

// NewGormSessionRepository creates a new GORM session repository
func NewGormSessionRepository(db *gorm.DB) *GormSessionRepository {
	return &GormSessionRepository{db: db}
}

// Migrate creates or updates the snapshot tables
func (r *GormSessionRepository) Migrate() error {
	return r.db.AutoMigrate(
		&SessionModel{},
		&OrderModel{},
		&MissionModel{},
		&StockModel{},
		&InventoryModel{},
	)
}

// Save replaces the stored snapshot for the player
func (r *GormSessionRepository) Save(ctx context.Context, snap session.Snapshot) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		playerID := snap.PlayerID
		for _, model := range []interface{}{
			&SessionModel{}, &OrderModel{}, &MissionModel{}, &StockModel{}, &InventoryModel{},
		} {
			if err := tx.Where("player_id = ?", playerID).Delete(model).Error; err != nil {
				return fmt.Errorf("failed to clear previous snapshot: %w", err)
			}
		}

		sessionRow := SessionModel{
			PlayerID:       playerID,
			HangarCapacity: snap.HangarCapacity,
			CapturedAt:     snap.CapturedAt,
		}
		if err := tx.Create(&sessionRow).Error; err != nil {
			return fmt.Errorf("failed to save session row: %w", err)
		}

		for i, rec := range snap.Orders {
			row := OrderModel{
				ID:          rec.ID,
				PlayerID:    playerID,
				BlueprintID: rec.BlueprintID,
				Quantity:    rec.Quantity,
				Status:      string(rec.Status),
				StartTime:   rec.StartTime,
				EndTime:     rec.EndTime,
				Seq:         i,
			}
			if err := tx.Create(&row).Error; err != nil {
				return fmt.Errorf("failed to save order %s: %w", rec.ID, err)
			}
		}

		for i, rec := range snap.Missions {
			reward, err := json.Marshal(rec.Reward)
			if err != nil {
				return fmt.Errorf("failed to encode reward for mission %s: %w", rec.ID, err)
			}
			row := MissionModel{
				ID:         rec.ID,
				PlayerID:   playerID,
				Name:       rec.Name,
				Status:     string(rec.Status),
				DepartedAt: rec.DepartedAt,
				ArrivesAt:  rec.ArrivesAt,
				Reward:     string(reward),
				Seq:        i,
			}
			if err := tx.Create(&row).Error; err != nil {
				return fmt.Errorf("failed to save mission %s: %w", rec.ID, err)
			}
		}

		for res, amount := range snap.Stock {
			row := StockModel{PlayerID: playerID, Resource: string(res), Amount: amount}
			if err := tx.Create(&row).Error; err != nil {
				return fmt.Errorf("failed to save stock %s: %w", res, err)
			}
		}

		for blueprintID, count := range snap.Inventory {
			row := InventoryModel{PlayerID: playerID, BlueprintID: blueprintID, Count: count}
			if err := tx.Create(&row).Error; err != nil {
				return fmt.Errorf("failed to save inventory %s: %w", blueprintID, err)
			}
		}

		return nil
	})
}

// Load reads the stored snapshot for the player
func (r *GormSessionRepository) Load(ctx context.Context, playerID string) (session.Snapshot, error) {
	var snap session.Snapshot

	var sessionRow SessionModel
	result := r.db.WithContext(ctx).Where("player_id = ?", playerID).First(&sessionRow)
	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			return snap, &ErrSessionNotFound{PlayerID: playerID}
		}
		return snap, fmt.Errorf("failed to load session row: %w", result.Error)
	}

	var orderRows []OrderModel
	if err := r.db.WithContext(ctx).Where("player_id = ?", playerID).Find(&orderRows).Error; err != nil {
		return snap, fmt.Errorf("failed to load orders: %w", err)
	}
	sort.Slice(orderRows, func(i, j int) bool { return orderRows[i].Seq < orderRows[j].Seq })

	var missionRows []MissionModel
	if err := r.db.WithContext(ctx).Where("player_id = ?", playerID).Find(&missionRows).Error; err != nil {
		return snap, fmt.Errorf("failed to load missions: %w", err)
	}
	sort.Slice(missionRows, func(i, j int) bool { return missionRows[i].Seq < missionRows[j].Seq })

	var stockRows []StockModel
	if err := r.db.WithContext(ctx).Where("player_id = ?", playerID).Find(&stockRows).Error; err != nil {
		return snap, fmt.Errorf("failed to load stock: %w", err)
	}

	var inventoryRows []InventoryModel
	if err := r.db.WithContext(ctx).Where("player_id = ?", playerID).Find(&inventoryRows).Error; err != nil {
		return snap, fmt.Errorf("failed to load inventory: %w", err)
	}

	snap.PlayerID = sessionRow.PlayerID
	snap.HangarCapacity = sessionRow.HangarCapacity
	snap.CapturedAt = sessionRow.CapturedAt

	snap.Orders = make([]session.OrderRecord, len(orderRows))
	for i, row := range orderRows {
		snap.Orders[i] = session.OrderRecord{
			ID:          row.ID,
			BlueprintID: row.BlueprintID,
			Quantity:    row.Quantity,
			Status:      hangar.OrderStatus(row.Status),
			StartTime:   row.StartTime,
			EndTime:     row.EndTime,
		}
	}

	snap.Missions = make([]session.MissionRecord, len(missionRows))
	for i, row := range missionRows {
		var reward map[shared.Resource]int
		if row.Reward != "" {
			if err := json.Unmarshal([]byte(row.Reward), &reward); err != nil {
				return snap, fmt.Errorf("failed to decode reward for mission %s: %w", row.ID, err)
			}
		}
		snap.Missions[i] = session.MissionRecord{
			ID:         row.ID,
			Name:       row.Name,
			Status:     mission.MissionStatus(row.Status),
			DepartedAt: row.DepartedAt,
			ArrivesAt:  row.ArrivesAt,
			Reward:     reward,
		}
	}

	snap.Stock = make(map[shared.Resource]int, len(stockRows))
	for _, row := range stockRows {
		snap.Stock[shared.Resource(row.Resource)] = row.Amount
	}

	snap.Inventory = make(map[string]int, len(inventoryRows))
	for _, row := range inventoryRows {
		snap.Inventory[row.BlueprintID] = row.Count
	}

	return snap, nil
}
