package models

import "time"

// Delivery: Müşteriye yapılan teslimat (birden fazla ürün içerebilir)
type Delivery struct {
	ID         uint `gorm:"primaryKey"`
	CustomerID uint `gorm:"index;not null"`
	Customer   Customer
	Date       time.Time `gorm:"index;not null"` // teslimat tarihi
	Note       string    `gorm:"size:255"`
	CreatedAt  time.Time
	UpdatedAt  time.Time

	Items []DeliveryItem `gorm:"foreignKey:DeliveryID;constraint:OnDelete:CASCADE"`
}

// DeliveryItem: Teslimat içindeki her çeşit
type DeliveryItem struct {
	ID            uint `gorm:"primaryKey"`
	DeliveryID    uint `gorm:"index;not null"`
	Delivery      Delivery
	CropVarietyID uint `gorm:"index;not null"`
	CropVariety   CropVariety
	Qty           float64 `gorm:"not null"` // miktar
	Unit          string  `gorm:"size:20"`  // serbest birim metni (kg, adet, demet...)
	UnitPrice     float64 // birim fiyat (opsiyonel, 0 olabilir)
	TotalPrice    float64 // toplam tutar (Qty * UnitPrice)
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
