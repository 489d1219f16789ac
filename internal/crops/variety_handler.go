package crops

import (
	"strings"

	"ciftlik-backend/internal/database"
	"ciftlik-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type VarietyResponse struct {
	ID               uint   `json:"id"`
	Name             string `json:"name"`
	Crop             string `json:"crop"`
	DTMDirectSeedMin *int   `json:"dtm_direct_seed_min"`
	DTMDirectSeedMax *int   `json:"dtm_direct_seed_max"`
	DTMTransplantMin *int   `json:"dtm_transplant_min"`
	DTMTransplantMax *int   `json:"dtm_transplant_max"`
	Note             string `json:"note"`
	CreatedAt        string `json:"created_at"`
}

type CreateVarietyRequest struct {
	Name             string `json:"name"`
	Crop             string `json:"crop"`
	DTMDirectSeedMin *int   `json:"dtm_direct_seed_min"` // Opsiyonel
	DTMDirectSeedMax *int   `json:"dtm_direct_seed_max"`
	DTMTransplantMin *int   `json:"dtm_transplant_min"`
	DTMTransplantMax *int   `json:"dtm_transplant_max"`
	Note             string `json:"note"`
}

type UpdateVarietyRequest struct {
	Name             *string `json:"name"`
	Crop             *string `json:"crop"`
	DTMDirectSeedMin *int    `json:"dtm_direct_seed_min"`
	DTMDirectSeedMax *int    `json:"dtm_direct_seed_max"`
	DTMTransplantMin *int    `json:"dtm_transplant_min"`
	DTMTransplantMax *int    `json:"dtm_transplant_max"`
	Note             *string `json:"note"`
}

func varietyToResponse(v models.CropVariety) VarietyResponse {
	return VarietyResponse{
		ID:               v.ID,
		Name:             v.Name,
		Crop:             v.Crop,
		DTMDirectSeedMin: v.DTMDirectSeedMin,
		DTMDirectSeedMax: v.DTMDirectSeedMax,
		DTMTransplantMin: v.DTMTransplantMin,
		DTMTransplantMax: v.DTMTransplantMax,
		Note:             v.Note,
		CreatedAt:        v.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}

// POST /api/admin/crop-varieties (admin)
func CreateVarietyHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateVarietyRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz veri gönderildi")
		}

		body.Name = strings.TrimSpace(body.Name)
		if body.Name == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Çeşit adı boş olamaz")
		}

		variety := models.CropVariety{
			Name:             body.Name,
			Crop:             strings.TrimSpace(body.Crop),
			DTMDirectSeedMin: body.DTMDirectSeedMin,
			DTMDirectSeedMax: body.DTMDirectSeedMax,
			DTMTransplantMin: body.DTMTransplantMin,
			DTMTransplantMax: body.DTMTransplantMax,
			Note:             body.Note,
		}

		if err := database.DB.Create(&variety).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Çeşit oluşturulamadı (isim kayıtlı olabilir)")
		}

		return c.Status(fiber.StatusCreated).JSON(varietyToResponse(variety))
	}
}

// GET /api/crop-varieties?crop=Domates
func ListVarietiesHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		dbq := database.DB.Order("name asc")

		if crop := strings.TrimSpace(c.Query("crop")); crop != "" {
			dbq = dbq.Where("crop = ?", crop)
		}

		var varieties []models.CropVariety
		if err := dbq.Find(&varieties).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Çeşitler listelenemedi")
		}

		res := make([]VarietyResponse, 0, len(varieties))
		for _, v := range varieties {
			res = append(res, varietyToResponse(v))
		}
		return c.JSON(res)
	}
}

func GetVarietyHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var variety models.CropVariety
		if err := database.DB.First(&variety, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Çeşit bulunamadı")
		}

		return c.JSON(varietyToResponse(variety))
	}
}

// PUT /api/admin/crop-varieties/:id (admin)
func UpdateVarietyHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var variety models.CropVariety
		if err := database.DB.First(&variety, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Çeşit bulunamadı")
		}

		var body UpdateVarietyRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz veri gönderildi")
		}

		if body.Name != nil {
			name := strings.TrimSpace(*body.Name)
			if name == "" {
				return fiber.NewError(fiber.StatusBadRequest, "Çeşit adı boş olamaz")
			}
			variety.Name = name
		}
		if body.Crop != nil {
			variety.Crop = strings.TrimSpace(*body.Crop)
		}
		if body.DTMDirectSeedMin != nil {
			variety.DTMDirectSeedMin = body.DTMDirectSeedMin
		}
		if body.DTMDirectSeedMax != nil {
			variety.DTMDirectSeedMax = body.DTMDirectSeedMax
		}
		if body.DTMTransplantMin != nil {
			variety.DTMTransplantMin = body.DTMTransplantMin
		}
		if body.DTMTransplantMax != nil {
			variety.DTMTransplantMax = body.DTMTransplantMax
		}
		if body.Note != nil {
			variety.Note = *body.Note
		}

		if err := database.DB.Save(&variety).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Çeşit güncellenemedi")
		}

		return c.JSON(varietyToResponse(variety))
	}
}

// DELETE /api/admin/crop-varieties/:id (admin)
func DeleteVarietyHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		// Çeşidi kullanan ekim varsa silme
		var plantingCount int64
		database.DB.Model(&models.Planting{}).Where("crop_variety_id = ?", id).Count(&plantingCount)
		if plantingCount > 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Bu çeşide bağlı ekimler var, silinemez")
		}

		if err := database.DB.Delete(&models.CropVariety{}, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Çeşit silinemedi")
		}

		return c.SendStatus(fiber.StatusNoContent)
	}
}
