package models

import "time"

type PropagationMethod string

const (
	PropagationDirectSeed PropagationMethod = "Direct Seed"
	PropagationTransplant PropagationMethod = "Transplant"
)

// Planting: Bir çeşidin tek bir ekim/dikim partisi.
// Yaşam döngüsü PlantingEvent kayıtlarıyla takip edilir.
type Planting struct {
	ID            uint `gorm:"primaryKey"`
	CropVarietyID uint `gorm:"index;not null"`
	CropVariety   CropVariety

	PropagationMethod PropagationMethod `gorm:"size:20;not null"` // Direct Seed / Transplant
	InitialQuantity   *float64          // Başlangıç miktarı (fide/tohum sayısı), opsiyonel
	Note              string            `gorm:"size:255"`

	CreatedAt time.Time
	UpdatedAt time.Time

	Events []PlantingEvent `gorm:"foreignKey:PlantingID;constraint:OnDelete:CASCADE"`
}
