package models

import "time"

// Bed: Tarla içindeki ekim yatağı
type Bed struct {
	ID      uint `gorm:"primaryKey"`
	PlotID  uint `gorm:"index;not null"`
	Plot    Plot
	Name    string   `gorm:"size:100;not null"`
	LengthM *float64 // Opsiyonel uzunluk (m)
	WidthM  *float64 // Opsiyonel genişlik (m)
	Note    string   `gorm:"size:255"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
