package models

import "time"

// CropVariety: Ürün çeşidi (ör: "Domates - Rio Grande")
// DTM = olgunlaşma gün sayısı (days to maturity), hepsi opsiyonel
type CropVariety struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"size:100;not null;unique"`
	Crop string `gorm:"size:100;index"` // Ürün ailesi (ör: "Domates")

	DTMDirectSeedMin *int // Direkt ekimde minimum olgunlaşma günü
	DTMDirectSeedMax *int
	DTMTransplantMin *int // Şaşırtmada (fide dikiminde) minimum olgunlaşma günü
	DTMTransplantMax *int

	Note      string `gorm:"size:255"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
