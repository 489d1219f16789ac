package farm

import (
	"strings"

	"ciftlik-backend/internal/database"
	"ciftlik-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type PlotResponse struct {
	ID          uint     `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	AreaM2      *float64 `json:"area_m2"`
	BedCount    int      `json:"bed_count"`
	CreatedAt   string   `json:"created_at"`
}

type CreatePlotRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	AreaM2      *float64 `json:"area_m2"` // Opsiyonel
}

type UpdatePlotRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	AreaM2      *float64 `json:"area_m2"`
}

// ----------------------------------------
// TARLA CRUD
// ----------------------------------------

func CreatePlotHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreatePlotRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz veri gönderildi")
		}

		body.Name = strings.TrimSpace(body.Name)
		if body.Name == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Tarla adı boş olamaz")
		}

		plot := models.Plot{
			Name:        body.Name,
			Description: body.Description,
			AreaM2:      body.AreaM2,
		}

		if err := database.DB.Create(&plot).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Tarla oluşturulamadı")
		}

		return c.Status(fiber.StatusCreated).JSON(PlotResponse{
			ID:          plot.ID,
			Name:        plot.Name,
			Description: plot.Description,
			AreaM2:      plot.AreaM2,
			CreatedAt:   plot.CreatedAt.Format("2006-01-02 15:04:05"),
		})
	}
}

func ListPlotsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var plots []models.Plot
		if err := database.DB.Preload("Beds").Order("name asc").Find(&plots).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Tarlalar listelenemedi")
		}

		res := make([]PlotResponse, 0, len(plots))
		for _, p := range plots {
			res = append(res, PlotResponse{
				ID:          p.ID,
				Name:        p.Name,
				Description: p.Description,
				AreaM2:      p.AreaM2,
				BedCount:    len(p.Beds),
				CreatedAt:   p.CreatedAt.Format("2006-01-02 15:04:05"),
			})
		}
		return c.JSON(res)
	}
}

func GetPlotHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var plot models.Plot
		if err := database.DB.Preload("Beds").First(&plot, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Tarla bulunamadı")
		}

		return c.JSON(PlotResponse{
			ID:          plot.ID,
			Name:        plot.Name,
			Description: plot.Description,
			AreaM2:      plot.AreaM2,
			BedCount:    len(plot.Beds),
			CreatedAt:   plot.CreatedAt.Format("2006-01-02 15:04:05"),
		})
	}
}

func UpdatePlotHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var plot models.Plot
		if err := database.DB.First(&plot, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Tarla bulunamadı")
		}

		var body UpdatePlotRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz veri gönderildi")
		}

		if body.Name != nil {
			name := strings.TrimSpace(*body.Name)
			if name == "" {
				return fiber.NewError(fiber.StatusBadRequest, "Tarla adı boş olamaz")
			}
			plot.Name = name
		}
		if body.Description != nil {
			plot.Description = *body.Description
		}
		if body.AreaM2 != nil {
			plot.AreaM2 = body.AreaM2
		}

		if err := database.DB.Save(&plot).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Tarla güncellenemedi")
		}

		return c.JSON(PlotResponse{
			ID:          plot.ID,
			Name:        plot.Name,
			Description: plot.Description,
			AreaM2:      plot.AreaM2,
			CreatedAt:   plot.CreatedAt.Format("2006-01-02 15:04:05"),
		})
	}
}

func DeletePlotHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		// İçinde yatak varsa silme
		var bedCount int64
		database.DB.Model(&models.Bed{}).Where("plot_id = ?", id).Count(&bedCount)
		if bedCount > 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Önce tarladaki yatakları silmelisiniz")
		}

		if err := database.DB.Delete(&models.Plot{}, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Tarla silinemedi")
		}

		return c.SendStatus(fiber.StatusNoContent)
	}
}
