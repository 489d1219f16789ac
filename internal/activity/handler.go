package activity

import (
	"fmt"
	"time"

	"ciftlik-backend/internal/audit"
	"ciftlik-backend/internal/auth"
	"ciftlik-backend/internal/database"
	"ciftlik-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type CreateActivityRequest struct {
	Date        *string             `json:"date"` // "2025-04-09" formatında, boşsa bugün
	Type        models.ActivityType `json:"type"` // watering|weeding|fertilizing|pest_control|other
	BedID       *uint               `json:"bed_id"`
	PlantingID  *uint               `json:"planting_id"`
	Description string              `json:"description"`
}

type ActivityResponse struct {
	ID          uint                `json:"id"`
	Date        string              `json:"date"`
	Type        models.ActivityType `json:"type"`
	BedID       *uint               `json:"bed_id"`
	PlantingID  *uint               `json:"planting_id"`
	Description string              `json:"description"`
	CreatedAt   string              `json:"created_at"`
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

// POST /api/activities
func CreateActivityHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateActivityRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}

		switch body.Type {
		case models.ActivityWatering, models.ActivityWeeding, models.ActivityFertilizing,
			models.ActivityPestControl, models.ActivityOther:
			// ok
		default:
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz tip (watering|weeding|fertilizing|pest_control|other)")
		}

		// tarih
		var date time.Time
		if body.Date == nil || *body.Date == "" {
			// sadece tarih kısmını kullanmak için bugün 00:00
			now := time.Now()
			date = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		} else {
			d, err := time.Parse("2006-01-02", *body.Date)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "Tarih formatı 'YYYY-MM-DD' olmalı")
			}
			date = d
		}

		if body.BedID != nil {
			var bed models.Bed
			if err := database.DB.First(&bed, "id = ?", *body.BedID).Error; err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "Yatak bulunamadı")
			}
		}
		if body.PlantingID != nil {
			var planting models.Planting
			if err := database.DB.First(&planting, "id = ?", *body.PlantingID).Error; err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "Ekim bulunamadı")
			}
		}

		activity := models.Activity{
			Date:        date,
			Type:        body.Type,
			BedID:       body.BedID,
			PlantingID:  body.PlantingID,
			Description: body.Description,
		}

		if err := database.DB.Create(&activity).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "İş kaydı oluşturulamadı")
		}

		// Audit log
		userID, userName, err := getUserInfo(c)
		if err == nil {
			_ = audit.WriteLog(audit.LogOptions{
				UserID:      userID,
				UserName:    userName,
				EntityType:  "activity",
				EntityID:    activity.ID,
				Action:      models.AuditActionCreate,
				Description: fmt.Sprintf("İş kaydı: %s", activity.Type),
				After:       activity,
			})
		}

		return c.Status(fiber.StatusCreated).JSON(ActivityResponse{
			ID:          activity.ID,
			Date:        activity.Date.Format("2006-01-02"),
			Type:        activity.Type,
			BedID:       activity.BedID,
			PlantingID:  activity.PlantingID,
			Description: activity.Description,
			CreatedAt:   activity.CreatedAt.Format("2006-01-02 15:04:05"),
		})
	}
}

// GET /api/activities?year=2025&month=4&type=watering
func ListActivitiesHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		dbq := database.DB.Model(&models.Activity{}).Order("date DESC, id DESC")

		// Ay filtresi (opsiyonel)
		yearStr := c.Query("year")
		monthStr := c.Query("month")
		if yearStr != "" && monthStr != "" {
			var year, month int
			if _, err := fmt.Sscan(yearStr, &year); err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "year geçersiz")
			}
			if _, err := fmt.Sscan(monthStr, &month); err != nil || month < 1 || month > 12 {
				return fiber.NewError(fiber.StatusBadRequest, "month geçersiz")
			}
			start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
			end := start.AddDate(0, 1, 0)
			dbq = dbq.Where("date >= ? AND date < ?", start, end)
		}

		if typ := c.Query("type"); typ != "" {
			dbq = dbq.Where("type = ?", typ)
		}

		var activities []models.Activity
		if err := dbq.Find(&activities).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "İş kayıtları listelenemedi")
		}

		res := make([]ActivityResponse, 0, len(activities))
		for _, a := range activities {
			res = append(res, ActivityResponse{
				ID:          a.ID,
				Date:        a.Date.Format("2006-01-02"),
				Type:        a.Type,
				BedID:       a.BedID,
				PlantingID:  a.PlantingID,
				Description: a.Description,
				CreatedAt:   a.CreatedAt.Format("2006-01-02 15:04:05"),
			})
		}
		return c.JSON(res)
	}
}

// DELETE /api/activities/:id
func DeleteActivityHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var activity models.Activity
		if err := database.DB.First(&activity, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "İş kaydı bulunamadı")
		}

		if err := database.DB.Delete(&activity).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "İş kaydı silinemedi")
		}

		userID, userName, err := getUserInfo(c)
		if err == nil {
			_ = audit.WriteLog(audit.LogOptions{
				UserID:      userID,
				UserName:    userName,
				EntityType:  "activity",
				EntityID:    activity.ID,
				Action:      models.AuditActionDelete,
				Description: fmt.Sprintf("İş kaydı silindi (ID: %d)", activity.ID),
				Before:      activity,
			})
		}

		return c.SendStatus(fiber.StatusNoContent)
	}
}
