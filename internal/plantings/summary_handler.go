package plantings

import (
	"time"

	"ciftlik-backend/internal/database"
	"ciftlik-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GET /api/plantings/:id/summary
// Ekim defterinden türetilmiş özeti hesaplar (kalıcı bir kaydı yoktur)
func GetSummaryHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var planting models.Planting
		if err := database.DB.Preload("CropVariety").
			First(&planting, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Ekim bulunamadı")
		}

		var events []models.PlantingEvent
		if err := database.DB.
			Preload("Bed").Preload("Bed.Plot").Preload("Nursery").
			Where("planting_id = ?", planting.ID).
			Order("date ASC, id ASC").
			Find(&events).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Olaylar okunamadı")
		}

		summary := Summarize(events, planting.CropVariety,
			planting.PropagationMethod, planting.InitialQuantity, time.Now().UTC())

		return c.JSON(summary)
	}
}
