package models

import "time"

type Customer struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"size:100;not null;unique"`
	Phone     string `gorm:"size:50"`  // Opsiyonel telefon
	Address   string `gorm:"size:255"` // Opsiyonel adres
	Note      string `gorm:"size:255"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
