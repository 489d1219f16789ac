package availability

import (
	"strconv"
	"strings"

	"ciftlik-backend/internal/database"
	"ciftlik-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// parseVarietyIDs: Virgülle ayrılmış id listesini çözer.
// Sayı olmayan parçalar sessizce atlanır.
func parseVarietyIDs(raw string) []uint {
	ids := make([]uint, 0)
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		v, err := strconv.ParseUint(part, 10, 64)
		if err != nil || v == 0 {
			continue
		}
		ids = append(ids, uint(v))
	}
	return ids
}

// GET /api/availability?variety_ids=1,2,3
// Çeşit bazında net kalan miktarı döndürür (hasat - teslimat).
func GetAvailabilityHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		ids := parseVarietyIDs(c.Query("variety_ids"))
		if len(ids) == 0 {
			// Boş id listesi: DB'ye hiç gitmeden boş liste
			return c.JSON([]VarietyAvailability{})
		}

		var plantings []models.Planting
		var harvests []models.PlantingEvent
		var items []models.DeliveryItem

		// Hasat ve teslimat kayıtları aynı anlık görüntüden okunmalı,
		// yoksa iki sorgu arasında giren kayıt yanlış bakiye üretir
		err := database.DB.Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("crop_variety_id IN ?", ids).Find(&plantings).Error; err != nil {
				return err
			}

			plantingIDs := make([]uint, 0, len(plantings))
			for _, p := range plantings {
				plantingIDs = append(plantingIDs, p.ID)
			}

			if len(plantingIDs) > 0 {
				if err := tx.
					Where("planting_id IN ? AND type = ?", plantingIDs, models.EventHarvested).
					Find(&harvests).Error; err != nil {
					return err
				}
			}

			return tx.Where("crop_variety_id IN ?", ids).Find(&items).Error
		})
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Stok bilgisi hesaplanamadı")
		}

		plantingVariety := make(map[uint]uint, len(plantings))
		for _, p := range plantings {
			plantingVariety[p.ID] = p.CropVarietyID
		}

		return c.JSON(Reconcile(ids, plantingVariety, harvests, items))
	}
}
