package farm

import (
	"strings"

	"ciftlik-backend/internal/database"
	"ciftlik-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type BedResponse struct {
	ID       uint     `json:"id"`
	PlotID   uint     `json:"plot_id"`
	PlotName string   `json:"plot_name"`
	Name     string   `json:"name"`
	LengthM  *float64 `json:"length_m"`
	WidthM   *float64 `json:"width_m"`
	Note     string   `json:"note"`
}

type CreateBedRequest struct {
	PlotID  uint     `json:"plot_id"`
	Name    string   `json:"name"`
	LengthM *float64 `json:"length_m"` // Opsiyonel
	WidthM  *float64 `json:"width_m"`  // Opsiyonel
	Note    string   `json:"note"`
}

type UpdateBedRequest struct {
	Name    *string  `json:"name"`
	LengthM *float64 `json:"length_m"`
	WidthM  *float64 `json:"width_m"`
	Note    *string  `json:"note"`
}

// ----------------------------------------
// YATAK CRUD
// ----------------------------------------

func CreateBedHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateBedRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz veri gönderildi")
		}

		body.Name = strings.TrimSpace(body.Name)
		if body.Name == "" || body.PlotID == 0 {
			return fiber.NewError(fiber.StatusBadRequest, "plot_id ve yatak adı zorunlu")
		}

		var plot models.Plot
		if err := database.DB.First(&plot, "id = ?", body.PlotID).Error; err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Tarla bulunamadı")
		}

		bed := models.Bed{
			PlotID:  body.PlotID,
			Name:    body.Name,
			LengthM: body.LengthM,
			WidthM:  body.WidthM,
			Note:    body.Note,
		}

		if err := database.DB.Create(&bed).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Yatak oluşturulamadı")
		}

		return c.Status(fiber.StatusCreated).JSON(BedResponse{
			ID:       bed.ID,
			PlotID:   bed.PlotID,
			PlotName: plot.Name,
			Name:     bed.Name,
			LengthM:  bed.LengthM,
			WidthM:   bed.WidthM,
			Note:     bed.Note,
		})
	}
}

// GET /api/beds?plot_id=1
func ListBedsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		dbq := database.DB.Preload("Plot").Order("name asc")

		if plotID := c.Query("plot_id"); plotID != "" {
			dbq = dbq.Where("plot_id = ?", plotID)
		}

		var beds []models.Bed
		if err := dbq.Find(&beds).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Yataklar listelenemedi")
		}

		res := make([]BedResponse, 0, len(beds))
		for _, b := range beds {
			res = append(res, BedResponse{
				ID:       b.ID,
				PlotID:   b.PlotID,
				PlotName: b.Plot.Name,
				Name:     b.Name,
				LengthM:  b.LengthM,
				WidthM:   b.WidthM,
				Note:     b.Note,
			})
		}
		return c.JSON(res)
	}
}

func UpdateBedHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var bed models.Bed
		if err := database.DB.Preload("Plot").First(&bed, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Yatak bulunamadı")
		}

		var body UpdateBedRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz veri gönderildi")
		}

		if body.Name != nil {
			name := strings.TrimSpace(*body.Name)
			if name == "" {
				return fiber.NewError(fiber.StatusBadRequest, "Yatak adı boş olamaz")
			}
			bed.Name = name
		}
		if body.LengthM != nil {
			bed.LengthM = body.LengthM
		}
		if body.WidthM != nil {
			bed.WidthM = body.WidthM
		}
		if body.Note != nil {
			bed.Note = *body.Note
		}

		if err := database.DB.Save(&bed).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Yatak güncellenemedi")
		}

		return c.JSON(BedResponse{
			ID:       bed.ID,
			PlotID:   bed.PlotID,
			PlotName: bed.Plot.Name,
			Name:     bed.Name,
			LengthM:  bed.LengthM,
			WidthM:   bed.WidthM,
			Note:     bed.Note,
		})
	}
}

func DeleteBedHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		// Yatağı kullanan ekim defteri kaydı varsa silme
		var eventCount int64
		database.DB.Model(&models.PlantingEvent{}).Where("bed_id = ?", id).Count(&eventCount)
		if eventCount > 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Bu yatağa bağlı ekim kayıtları var, silinemez")
		}

		if err := database.DB.Delete(&models.Bed{}, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Yatak silinemedi")
		}

		return c.SendStatus(fiber.StatusNoContent)
	}
}
