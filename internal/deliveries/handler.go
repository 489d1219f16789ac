package deliveries

import (
	"fmt"
	"time"

	"ciftlik-backend/internal/audit"
	"ciftlik-backend/internal/auth"
	"ciftlik-backend/internal/database"
	"ciftlik-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

// CreateDeliveryRequest: Yeni teslimat oluşturma
type CreateDeliveryRequest struct {
	CustomerID uint                  `json:"customer_id"`
	Date       string                `json:"date"`  // "2025-04-09"
	Items      []DeliveryItemRequest `json:"items"` // çeşit listesi
	Note       string                `json:"note"`
}

type DeliveryItemRequest struct {
	CropVarietyID uint    `json:"crop_variety_id"`
	Qty           float64 `json:"qty"`
	Unit          string  `json:"unit"`       // kg, adet, demet...
	UnitPrice     float64 `json:"unit_price"` // Opsiyonel, 0 olabilir
}

type DeliveryResponse struct {
	ID           uint                   `json:"id"`
	CustomerID   uint                   `json:"customer_id"`
	CustomerName string                 `json:"customer_name"`
	Date         string                 `json:"date"`
	TotalAmount  float64                `json:"total_amount"`
	Note         string                 `json:"note"`
	Items        []DeliveryItemResponse `json:"items"`
	CreatedAt    string                 `json:"created_at"`
}

type DeliveryItemResponse struct {
	ID              uint    `json:"id"`
	CropVarietyID   uint    `json:"crop_variety_id"`
	CropVarietyName string  `json:"crop_variety_name"`
	Qty             float64 `json:"qty"`
	Unit            string  `json:"unit"`
	UnitPrice       float64 `json:"unit_price"`
	TotalPrice      float64 `json:"total_price"`
}

type MonthlySummaryRow struct {
	CropVarietyID   uint    `json:"crop_variety_id"`
	CropVarietyName string  `json:"crop_variety_name"`
	Unit            string  `json:"unit"`
	TotalQty        float64 `json:"total_qty"`
	TotalAmount     float64 `json:"total_amount"`
}

type MonthlySummaryResponse struct {
	Year  int                 `json:"year"`
	Month int                 `json:"month"`
	Rows  []MonthlySummaryRow `json:"rows"`
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

func deliveryToResponse(d models.Delivery) DeliveryResponse {
	items := make([]DeliveryItemResponse, 0, len(d.Items))
	var total float64
	for _, item := range d.Items {
		items = append(items, DeliveryItemResponse{
			ID:              item.ID,
			CropVarietyID:   item.CropVarietyID,
			CropVarietyName: item.CropVariety.Name,
			Qty:             item.Qty,
			Unit:            item.Unit,
			UnitPrice:       item.UnitPrice,
			TotalPrice:      item.TotalPrice,
		})
		total += item.TotalPrice
	}

	return DeliveryResponse{
		ID:           d.ID,
		CustomerID:   d.CustomerID,
		CustomerName: d.Customer.Name,
		Date:         d.Date.Format("2006-01-02"),
		TotalAmount:  total,
		Note:         d.Note,
		Items:        items,
		CreatedAt:    d.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}

// POST /api/deliveries
func CreateDeliveryHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateDeliveryRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}

		if len(body.Items) == 0 {
			return fiber.NewError(fiber.StatusBadRequest, "En az bir çeşit eklenmelidir")
		}

		var customer models.Customer
		if err := database.DB.First(&customer, "id = ?", body.CustomerID).Error; err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Müşteri bulunamadı")
		}

		d, err := time.Parse("2006-01-02", body.Date)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Tarih formatı 'YYYY-MM-DD' olmalı")
		}

		// Çeşitleri kontrol et ve kalemleri hazırla
		var items []models.DeliveryItem
		for _, itemReq := range body.Items {
			if itemReq.CropVarietyID == 0 || itemReq.Qty <= 0 {
				return fiber.NewError(fiber.StatusBadRequest, "Tüm kalemler için crop_variety_id ve 0'dan büyük qty zorunlu")
			}

			var variety models.CropVariety
			if err := database.DB.First(&variety, "id = ?", itemReq.CropVarietyID).Error; err != nil {
				return fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("Çeşit bulunamadı (ID: %d)", itemReq.CropVarietyID))
			}

			items = append(items, models.DeliveryItem{
				CropVarietyID: itemReq.CropVarietyID,
				Qty:           itemReq.Qty,
				Unit:          itemReq.Unit,
				UnitPrice:     itemReq.UnitPrice,
				TotalPrice:    itemReq.Qty * itemReq.UnitPrice,
			})
		}

		delivery := models.Delivery{
			CustomerID: body.CustomerID,
			Date:       d,
			Note:       body.Note,
			Items:      items,
		}

		if err := database.DB.Create(&delivery).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Teslimat oluşturulamadı")
		}

		// Audit log
		userID, userName, err := getUserInfo(c)
		if err == nil {
			_ = audit.WriteLog(audit.LogOptions{
				UserID:      userID,
				UserName:    userName,
				EntityType:  "delivery",
				EntityID:    delivery.ID,
				Action:      models.AuditActionCreate,
				Description: fmt.Sprintf("Teslimat oluşturuldu: %s (%d kalem)", customer.Name, len(items)),
				After:       delivery,
			})
		}

		// Yanıt için ilişkili kayıtları yükle
		database.DB.Preload("Customer").Preload("Items").Preload("Items.CropVariety").
			First(&delivery, "id = ?", delivery.ID)

		return c.Status(fiber.StatusCreated).JSON(deliveryToResponse(delivery))
	}
}

// GET /api/deliveries?year=2025&month=4&customer_id=1
func ListDeliveriesHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		dbq := database.DB.
			Preload("Customer").Preload("Items").Preload("Items.CropVariety").
			Order("date DESC, id DESC")

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

		if customerID := c.Query("customer_id"); customerID != "" {
			dbq = dbq.Where("customer_id = ?", customerID)
		}

		var ds []models.Delivery
		if err := dbq.Find(&ds).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Teslimatlar listelenemedi")
		}

		res := make([]DeliveryResponse, 0, len(ds))
		for _, d := range ds {
			res = append(res, deliveryToResponse(d))
		}
		return c.JSON(res)
	}
}

func GetDeliveryHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var delivery models.Delivery
		if err := database.DB.
			Preload("Customer").Preload("Items").Preload("Items.CropVariety").
			First(&delivery, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Teslimat bulunamadı")
		}

		return c.JSON(deliveryToResponse(delivery))
	}
}

// DELETE /api/deliveries/:id
func DeleteDeliveryHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var delivery models.Delivery
		if err := database.DB.Preload("Items").First(&delivery, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Teslimat bulunamadı")
		}

		if err := database.DB.Delete(&delivery).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Teslimat silinemedi")
		}

		userID, userName, err := getUserInfo(c)
		if err == nil {
			_ = audit.WriteLog(audit.LogOptions{
				UserID:      userID,
				UserName:    userName,
				EntityType:  "delivery",
				EntityID:    delivery.ID,
				Action:      models.AuditActionDelete,
				Description: fmt.Sprintf("Teslimat silindi (ID: %d)", delivery.ID),
				Before:      delivery,
			})
		}

		return c.SendStatus(fiber.StatusNoContent)
	}
}

// GET /api/deliveries/summary/monthly?year=2025&month=4
// Ay içindeki teslimatları çeşit bazında toplar
func MonthlySummaryHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var year, month int
		if _, err := fmt.Sscan(c.Query("year"), &year); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "year geçersiz")
		}
		if _, err := fmt.Sscan(c.Query("month"), &month); err != nil || month < 1 || month > 12 {
			return fiber.NewError(fiber.StatusBadRequest, "month geçersiz")
		}

		start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
		end := start.AddDate(0, 1, 0)

		// aggregation sonucu satır yapısı
		type row struct {
			CropVarietyID uint    `gorm:"column:crop_variety_id"`
			Name          string  `gorm:"column:name"`
			Unit          string  `gorm:"column:unit"`
			TotalQty      float64 `gorm:"column:total_qty"`
			TotalAmount   float64 `gorm:"column:total_amount"`
		}
		var rows []row

		sql := `
			SELECT di.crop_variety_id,
				   cv.name,
				   di.unit,
				   SUM(di.qty) AS total_qty,
				   SUM(di.total_price) AS total_amount
			FROM delivery_items di
			JOIN deliveries d ON d.id = di.delivery_id
			JOIN crop_varieties cv ON cv.id = di.crop_variety_id
			WHERE d.date >= ? AND d.date < ?
			GROUP BY di.crop_variety_id, cv.name, di.unit
			ORDER BY cv.name ASC, di.unit ASC;
		`

		if err := database.DB.Raw(sql, start, end).Scan(&rows).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Özet hesaplanamadı")
		}

		resp := MonthlySummaryResponse{
			Year:  year,
			Month: month,
			Rows:  make([]MonthlySummaryRow, 0, len(rows)),
		}
		for _, r := range rows {
			resp.Rows = append(resp.Rows, MonthlySummaryRow{
				CropVarietyID:   r.CropVarietyID,
				CropVarietyName: r.Name,
				Unit:            r.Unit,
				TotalQty:        r.TotalQty,
				TotalAmount:     r.TotalAmount,
			})
		}

		return c.JSON(resp)
	}
}
