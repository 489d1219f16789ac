package models

import "time"

type EventType string

const (
	EventNurserySeeded EventType = "nursery_seeded" // Fidelikte tohum ekildi
	EventDirectSeeded  EventType = "direct_seeded"  // Yatağa direkt ekildi
	EventTransplanted  EventType = "transplanted"   // Fidelikten yatağa şaşırtıldı
	EventMoved         EventType = "moved"          // Başka yatağa taşındı
	EventHarvested     EventType = "harvested"      // Hasat edildi
	EventRemoved       EventType = "removed"        // Söküldü / sonlandırıldı
)

// PlantingEvent: Ekim defteri kaydı. Kayıtlar değiştirilmez ve silinmez,
// yeni gerçekler her zaman yeni kayıt olarak eklenir (append-only).
type PlantingEvent struct {
	ID         uint `gorm:"primaryKey"`
	PlantingID uint `gorm:"index;not null"`
	Planting   Planting

	Type EventType `gorm:"size:20;index;not null"`
	Date time.Time `gorm:"index;not null"` // gün bazlı

	// Olayın gerçekleştiği yer (tipine göre biri dolu olabilir)
	BedID     *uint
	Bed       *Bed
	NurseryID *uint
	Nursery   *Nursery

	// Hasat olayları için miktar bilgisi
	Qty          *float64 // adet/demet gibi sayım bazlı miktar
	WeightGrams  *float64 // tartım bazlı miktar (gram)
	QuantityUnit string   `gorm:"size:20"` // serbest birim metni (kg, adet, demet...)

	Note      string `gorm:"size:255"`
	CreatedAt time.Time
}
