package plantings

import (
	"fmt"
	"time"

	"ciftlik-backend/internal/audit"
	"ciftlik-backend/internal/auth"
	"ciftlik-backend/internal/database"
	"ciftlik-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type CreatePlantingRequest struct {
	CropVarietyID     uint     `json:"crop_variety_id"`
	PropagationMethod string   `json:"propagation_method"` // "Direct Seed" | "Transplant"
	InitialQuantity   *float64 `json:"initial_quantity"`   // Opsiyonel
	Note              string   `json:"note"`
}

type PlantingResponse struct {
	ID                uint     `json:"id"`
	CropVarietyID     uint     `json:"crop_variety_id"`
	CropVarietyName   string   `json:"crop_variety_name"`
	PropagationMethod string   `json:"propagation_method"`
	InitialQuantity   *float64 `json:"initial_quantity"`
	Note              string   `json:"note"`
	EventCount        int      `json:"event_count"`
	CreatedAt         string   `json:"created_at"`
}

type AppendEventRequest struct {
	Type         models.EventType `json:"type"`
	Date         string           `json:"date"` // "2025-04-09"
	BedID        *uint            `json:"bed_id"`
	NurseryID    *uint            `json:"nursery_id"`
	Qty          *float64         `json:"qty"`
	WeightGrams  *float64         `json:"weight_grams"`
	QuantityUnit string           `json:"quantity_unit"`
	Note         string           `json:"note"`
}

type EventResponse struct {
	ID           uint             `json:"id"`
	PlantingID   uint             `json:"planting_id"`
	Type         models.EventType `json:"type"`
	Date         string           `json:"date"`
	BedID        *uint            `json:"bed_id"`
	NurseryID    *uint            `json:"nursery_id"`
	Qty          *float64         `json:"qty"`
	WeightGrams  *float64         `json:"weight_grams"`
	QuantityUnit string           `json:"quantity_unit"`
	Note         string           `json:"note"`
	CreatedAt    string           `json:"created_at"`
}

// Yardımcı: Kullanıcı bilgilerini al
func getUserInfo(c *fiber.Ctx) (uint, string, error) {
	userIDVal := c.Locals(auth.CtxUserIDKey)
	userID, ok := userIDVal.(uint)
	if !ok {
		return 0, "", fiber.NewError(fiber.StatusForbidden, "Kullanıcı bilgisi alınamadı")
	}

	var user models.User
	if err := database.DB.First(&user, "id = ?", userID).Error; err != nil {
		return 0, "", fiber.NewError(fiber.StatusInternalServerError, "Kullanıcı bulunamadı")
	}

	return userID, user.Name, nil
}

func eventToResponse(ev models.PlantingEvent) EventResponse {
	return EventResponse{
		ID:           ev.ID,
		PlantingID:   ev.PlantingID,
		Type:         ev.Type,
		Date:         ev.Date.Format("2006-01-02"),
		BedID:        ev.BedID,
		NurseryID:    ev.NurseryID,
		Qty:          ev.Qty,
		WeightGrams:  ev.WeightGrams,
		QuantityUnit: ev.QuantityUnit,
		Note:         ev.Note,
		CreatedAt:    ev.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}

// POST /api/plantings
func CreatePlantingHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreatePlantingRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}

		if body.CropVarietyID == 0 {
			return fiber.NewError(fiber.StatusBadRequest, "crop_variety_id zorunlu")
		}

		method := models.PropagationMethod(body.PropagationMethod)
		switch method {
		case models.PropagationDirectSeed, models.PropagationTransplant:
			// ok
		default:
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz propagation_method (Direct Seed|Transplant)")
		}

		var variety models.CropVariety
		if err := database.DB.First(&variety, "id = ?", body.CropVarietyID).Error; err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Çeşit bulunamadı")
		}

		planting := models.Planting{
			CropVarietyID:     body.CropVarietyID,
			PropagationMethod: method,
			InitialQuantity:   body.InitialQuantity,
			Note:              body.Note,
		}

		if err := database.DB.Create(&planting).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Ekim oluşturulamadı")
		}

		// Audit log
		userID, userName, err := getUserInfo(c)
		if err == nil {
			_ = audit.WriteLog(audit.LogOptions{
				UserID:      userID,
				UserName:    userName,
				EntityType:  "planting",
				EntityID:    planting.ID,
				Action:      models.AuditActionCreate,
				Description: fmt.Sprintf("Ekim oluşturuldu: %s", variety.Name),
				After:       planting,
			})
		}

		return c.Status(fiber.StatusCreated).JSON(PlantingResponse{
			ID:                planting.ID,
			CropVarietyID:     planting.CropVarietyID,
			CropVarietyName:   variety.Name,
			PropagationMethod: string(planting.PropagationMethod),
			InitialQuantity:   planting.InitialQuantity,
			Note:              planting.Note,
			CreatedAt:         planting.CreatedAt.Format("2006-01-02 15:04:05"),
		})
	}
}

// GET /api/plantings?crop_variety_id=1&active=true
func ListPlantingsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		dbq := database.DB.Preload("CropVariety").Preload("Events").Order("id desc")

		if varietyID := c.Query("crop_variety_id"); varietyID != "" {
			dbq = dbq.Where("crop_variety_id = ?", varietyID)
		}

		var plantings []models.Planting
		if err := dbq.Find(&plantings).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Ekimler listelenemedi")
		}

		res := make([]PlantingResponse, 0, len(plantings))
		for _, p := range plantings {
			res = append(res, PlantingResponse{
				ID:                p.ID,
				CropVarietyID:     p.CropVarietyID,
				CropVarietyName:   p.CropVariety.Name,
				PropagationMethod: string(p.PropagationMethod),
				InitialQuantity:   p.InitialQuantity,
				Note:              p.Note,
				EventCount:        len(p.Events),
				CreatedAt:         p.CreatedAt.Format("2006-01-02 15:04:05"),
			})
		}
		return c.JSON(res)
	}
}

func GetPlantingHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var planting models.Planting
		if err := database.DB.Preload("CropVariety").Preload("Events").
			First(&planting, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Ekim bulunamadı")
		}

		return c.JSON(PlantingResponse{
			ID:                planting.ID,
			CropVarietyID:     planting.CropVarietyID,
			CropVarietyName:   planting.CropVariety.Name,
			PropagationMethod: string(planting.PropagationMethod),
			InitialQuantity:   planting.InitialQuantity,
			Note:              planting.Note,
			EventCount:        len(planting.Events),
			CreatedAt:         planting.CreatedAt.Format("2006-01-02 15:04:05"),
		})
	}
}

// DELETE /api/admin/plantings/:id (admin) - Olaylarıyla birlikte siler
func DeletePlantingHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var planting models.Planting
		if err := database.DB.First(&planting, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Ekim bulunamadı")
		}

		if err := database.DB.Delete(&planting).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Ekim silinemedi")
		}

		userID, userName, err := getUserInfo(c)
		if err == nil {
			_ = audit.WriteLog(audit.LogOptions{
				UserID:      userID,
				UserName:    userName,
				EntityType:  "planting",
				EntityID:    planting.ID,
				Action:      models.AuditActionDelete,
				Description: fmt.Sprintf("Ekim silindi (ID: %d)", planting.ID),
				Before:      planting,
			})
		}

		return c.SendStatus(fiber.StatusNoContent)
	}
}

// POST /api/plantings/:id/events
// Ekim defterine yeni kayıt ekler. Kayıtlar sonradan değiştirilemez.
func AppendEventHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var planting models.Planting
		if err := database.DB.First(&planting, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Ekim bulunamadı")
		}

		var body AppendEventRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}

		switch body.Type {
		case models.EventNurserySeeded, models.EventDirectSeeded, models.EventTransplanted,
			models.EventMoved, models.EventHarvested, models.EventRemoved:
			// ok
		default:
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz olay tipi")
		}

		d, err := time.Parse("2006-01-02", body.Date)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Tarih formatı 'YYYY-MM-DD' olmalı")
		}

		// Yer kontrolleri (tipine göre)
		switch body.Type {
		case models.EventNurserySeeded:
			if body.NurseryID == nil {
				return fiber.NewError(fiber.StatusBadRequest, "nursery_id zorunlu")
			}
			var nursery models.Nursery
			if err := database.DB.First(&nursery, "id = ?", *body.NurseryID).Error; err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "Fidelik bulunamadı")
			}
		case models.EventDirectSeeded, models.EventTransplanted, models.EventMoved:
			if body.BedID == nil {
				return fiber.NewError(fiber.StatusBadRequest, "bed_id zorunlu")
			}
			var bed models.Bed
			if err := database.DB.First(&bed, "id = ?", *body.BedID).Error; err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "Yatak bulunamadı")
			}
		}

		if body.Qty != nil && *body.Qty < 0 {
			return fiber.NewError(fiber.StatusBadRequest, "qty negatif olamaz")
		}
		if body.WeightGrams != nil && *body.WeightGrams < 0 {
			return fiber.NewError(fiber.StatusBadRequest, "weight_grams negatif olamaz")
		}

		event := models.PlantingEvent{
			PlantingID:   planting.ID,
			Type:         body.Type,
			Date:         d,
			BedID:        body.BedID,
			NurseryID:    body.NurseryID,
			Qty:          body.Qty,
			WeightGrams:  body.WeightGrams,
			QuantityUnit: body.QuantityUnit,
			Note:         body.Note,
		}

		if err := database.DB.Create(&event).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Olay kaydedilemedi")
		}

		userID, userName, err := getUserInfo(c)
		if err == nil {
			_ = audit.WriteLog(audit.LogOptions{
				UserID:      userID,
				UserName:    userName,
				EntityType:  "planting_event",
				EntityID:    event.ID,
				Action:      models.AuditActionCreate,
				Description: fmt.Sprintf("Ekim olayı: %s (%s)", event.Type, body.Date),
				After:       event,
			})
		}

		return c.Status(fiber.StatusCreated).JSON(eventToResponse(event))
	}
}

// GET /api/plantings/:id/events
func ListEventsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var planting models.Planting
		if err := database.DB.First(&planting, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Ekim bulunamadı")
		}

		var events []models.PlantingEvent
		if err := database.DB.
			Where("planting_id = ?", planting.ID).
			Order("date ASC, id ASC").
			Find(&events).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Olaylar listelenemedi")
		}

		res := make([]EventResponse, 0, len(events))
		for _, ev := range events {
			res = append(res, eventToResponse(ev))
		}
		return c.JSON(res)
	}
}
