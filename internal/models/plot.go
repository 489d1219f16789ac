package models

import "time"

// Plot: Tarla/parsel (içinde birden fazla yatak olabilir)
type Plot struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"size:100;not null;unique"`
	Description string `gorm:"size:255"`
	AreaM2      *float64 // Opsiyonel alan (m²)
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Beds []Bed `gorm:"foreignKey:PlotID"`
}
