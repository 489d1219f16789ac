package farm

import (
	"strings"

	"ciftlik-backend/internal/database"
	"ciftlik-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type NurseryResponse struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	CreatedAt   string `json:"created_at"`
}

type CreateNurseryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type UpdateNurseryRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

// ----------------------------------------
// FİDELİK CRUD
// ----------------------------------------

func CreateNurseryHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateNurseryRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz veri gönderildi")
		}

		body.Name = strings.TrimSpace(body.Name)
		if body.Name == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Fidelik adı boş olamaz")
		}

		nursery := models.Nursery{
			Name:        body.Name,
			Description: body.Description,
		}

		if err := database.DB.Create(&nursery).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Fidelik oluşturulamadı")
		}

		return c.Status(fiber.StatusCreated).JSON(NurseryResponse{
			ID:          nursery.ID,
			Name:        nursery.Name,
			Description: nursery.Description,
			CreatedAt:   nursery.CreatedAt.Format("2006-01-02 15:04:05"),
		})
	}
}

func ListNurseriesHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var nurseries []models.Nursery
		if err := database.DB.Order("name asc").Find(&nurseries).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Fidelikler listelenemedi")
		}

		res := make([]NurseryResponse, 0, len(nurseries))
		for _, n := range nurseries {
			res = append(res, NurseryResponse{
				ID:          n.ID,
				Name:        n.Name,
				Description: n.Description,
				CreatedAt:   n.CreatedAt.Format("2006-01-02 15:04:05"),
			})
		}
		return c.JSON(res)
	}
}

func UpdateNurseryHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var nursery models.Nursery
		if err := database.DB.First(&nursery, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Fidelik bulunamadı")
		}

		var body UpdateNurseryRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz veri gönderildi")
		}

		if body.Name != nil {
			name := strings.TrimSpace(*body.Name)
			if name == "" {
				return fiber.NewError(fiber.StatusBadRequest, "Fidelik adı boş olamaz")
			}
			nursery.Name = name
		}
		if body.Description != nil {
			nursery.Description = *body.Description
		}

		if err := database.DB.Save(&nursery).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Fidelik güncellenemedi")
		}

		return c.JSON(NurseryResponse{
			ID:          nursery.ID,
			Name:        nursery.Name,
			Description: nursery.Description,
			CreatedAt:   nursery.CreatedAt.Format("2006-01-02 15:04:05"),
		})
	}
}

func DeleteNurseryHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		// Fideliği kullanan ekim defteri kaydı varsa silme
		var eventCount int64
		database.DB.Model(&models.PlantingEvent{}).Where("nursery_id = ?", id).Count(&eventCount)
		if eventCount > 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Bu fideliğe bağlı ekim kayıtları var, silinemez")
		}

		if err := database.DB.Delete(&models.Nursery{}, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Fidelik silinemedi")
		}

		return c.SendStatus(fiber.StatusNoContent)
	}
}
