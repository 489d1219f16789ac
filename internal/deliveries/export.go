package deliveries

import (
	"fmt"
	"time"

	"ciftlik-backend/internal/database"
	"ciftlik-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
)

// GET /api/deliveries/export?year=2025&month=4
// Ayın teslimatlarını XLSX olarak indirir
func ExportDeliveriesHandler() fiber.Handler {
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

		var ds []models.Delivery
		if err := database.DB.
			Preload("Customer").Preload("Items").Preload("Items.CropVariety").
			Where("date >= ? AND date < ?", start, end).
			Order("date ASC, id ASC").
			Find(&ds).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Teslimatlar listelenemedi")
		}

		f := excelize.NewFile()
		defer f.Close()

		sheetName := fmt.Sprintf("Teslimatlar %d-%02d", year, month)
		f.SetSheetName("Sheet1", sheetName)

		headers := []string{"Tarih", "Müşteri", "Çeşit", "Miktar", "Birim", "Birim Fiyat", "Tutar", "Not"}
		for i, h := range headers {
			cell, _ := excelize.CoordinatesToCellName(i+1, 1)
			f.SetCellValue(sheetName, cell, h)
		}

		rowIndex := 2
		var grandTotal float64
		for _, d := range ds {
			for _, item := range d.Items {
				f.SetCellValue(sheetName, fmt.Sprintf("A%d", rowIndex), d.Date.Format("2006-01-02"))
				f.SetCellValue(sheetName, fmt.Sprintf("B%d", rowIndex), d.Customer.Name)
				f.SetCellValue(sheetName, fmt.Sprintf("C%d", rowIndex), item.CropVariety.Name)
				f.SetCellValue(sheetName, fmt.Sprintf("D%d", rowIndex), item.Qty)
				f.SetCellValue(sheetName, fmt.Sprintf("E%d", rowIndex), item.Unit)
				f.SetCellValue(sheetName, fmt.Sprintf("F%d", rowIndex), item.UnitPrice)
				f.SetCellValue(sheetName, fmt.Sprintf("G%d", rowIndex), item.TotalPrice)
				f.SetCellValue(sheetName, fmt.Sprintf("H%d", rowIndex), d.Note)
				grandTotal += item.TotalPrice
				rowIndex++
			}
		}

		// Genel toplam satırı
		f.SetCellValue(sheetName, fmt.Sprintf("F%d", rowIndex+1), "TOPLAM")
		f.SetCellValue(sheetName, fmt.Sprintf("G%d", rowIndex+1), grandTotal)

		buf, err := f.WriteToBuffer()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Excel dosyası oluşturulamadı")
		}

		fileName := fmt.Sprintf("teslimatlar_%d_%02d.xlsx", year, month)
		c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, fileName))
		return c.Send(buf.Bytes())
	}
}
