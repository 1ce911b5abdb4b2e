package persistence

import (
	"time"
)

// SessionModel represents the sessions table
type SessionModel struct {
	PlayerID       string    `gorm:"column:player_id;primaryKey;not null"`
	HangarCapacity int       `gorm:"column:hangar_capacity;not null"`
	CapturedAt     time.Time `gorm:"column:captured_at;not null"`
}

func (SessionModel) TableName() string {
	return "sessions"
}

// OrderModel represents the build_orders table
type OrderModel struct {
	ID          string    `gorm:"column:id;primaryKey;not null"`
	PlayerID    string    `gorm:"column:player_id;primaryKey;not null"`
	BlueprintID string    `gorm:"column:blueprint_id;not null"`
	Quantity    int       `gorm:"column:quantity;not null"`
	Status      string    `gorm:"column:status;not null"`
	StartTime   time.Time `gorm:"column:start_time"`
	EndTime     time.Time `gorm:"column:end_time"`
	Seq         int       `gorm:"column:seq;not null"` // creation sequence within the session
}

func (OrderModel) TableName() string {
	return "build_orders"
}

// MissionModel represents the missions table
type MissionModel struct {
	ID         string    `gorm:"column:id;primaryKey;not null"`
	PlayerID   string    `gorm:"column:player_id;primaryKey;not null"`
	Name       string    `gorm:"column:name;not null"`
	Status     string    `gorm:"column:status;not null"`
	DepartedAt time.Time `gorm:"column:departed_at"`
	ArrivesAt  time.Time `gorm:"column:arrives_at"`
	Reward     string    `gorm:"column:reward;type:text"` // JSON map as text
	Seq        int       `gorm:"column:seq;not null"`
}

func (MissionModel) TableName() string {
	return "missions"
}

// StockModel represents the resource_stock table
type StockModel struct {
	PlayerID string `gorm:"column:player_id;primaryKey;not null"`
	Resource string `gorm:"column:resource;primaryKey;not null"`
	Amount   int    `gorm:"column:amount;not null"`
}

func (StockModel) TableName() string {
	return "resource_stock"
}

// InventoryModel represents the hangar_inventory table
type InventoryModel struct {
	PlayerID    string `gorm:"column:player_id;primaryKey;not null"`
	BlueprintID string `gorm:"column:blueprint_id;primaryKey;not null"`
	Count       int    `gorm:"column:count;not null"`
}

func (InventoryModel) TableName() string {
	return "hangar_inventory"
}
