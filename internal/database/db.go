package database

import (
	"log"

	"ciftlik-backend/internal/config"
	"ciftlik-backend/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Init(cfg *config.Config) {
	var err error

	DB, err = gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{})
	if err != nil {
		log.Fatalf("Veritabanına bağlanılamadı: %v", err)
	}

	// PlantingEvent migration: eski "unit" kolonu "quantity_unit" olarak
	// değiştirildi, mevcut veriyi korumak için AutoMigrate'ten ÖNCE taşı
	if DB.Migrator().HasTable(&models.PlantingEvent{}) {
		if DB.Migrator().HasColumn(&models.PlantingEvent{}, "unit") &&
			!DB.Migrator().HasColumn(&models.PlantingEvent{}, "quantity_unit") {
			log.Println("planting_events.unit kolonu quantity_unit olarak taşınıyor...")
			if err := DB.Exec("ALTER TABLE planting_events RENAME COLUMN unit TO quantity_unit").Error; err != nil {
				log.Printf("Kolon taşınırken hata (zaten taşınmış olabilir): %v", err)
			} else {
				log.Println("planting_events migration tamamlandı")
			}
		}
	}

	err = DB.AutoMigrate(
		&models.User{},
		&models.Plot{},
		&models.Bed{},
		&models.Nursery{},
		&models.CropVariety{},
		&models.Planting{},
		&models.PlantingEvent{},
		&models.Activity{},
		&models.Customer{},
		&models.Delivery{},
		&models.DeliveryItem{},
		&models.AuditLog{},
	)
	if err != nil {
		log.Fatalf("AutoMigrate hatası: %v", err)
	}

	log.Println("Veritabanı bağlantısı başarılı. Migration tamamlandı.")
}
