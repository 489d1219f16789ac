package models

import "time"

type ActivityType string

const (
	ActivityWatering    ActivityType = "watering"
	ActivityWeeding     ActivityType = "weeding"
	ActivityFertilizing ActivityType = "fertilizing"
	ActivityPestControl ActivityType = "pest_control"
	ActivityOther       ActivityType = "other"
)

// Activity: Ekimden bağımsız genel bahçe işi kaydı (sulama, çapa, gübre...)
type Activity struct {
	ID   uint         `gorm:"primaryKey"`
	Date time.Time    `gorm:"index;not null"` // gün bazlı
	Type ActivityType `gorm:"size:20;not null"`

	// Opsiyonel bağlantılar
	BedID      *uint
	Bed        *Bed
	PlantingID *uint
	Planting   *Planting

	Description string `gorm:"size:255"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
