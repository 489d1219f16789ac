package dashboard

import (
	"fmt"
	"time"

	"ciftlik-backend/internal/database"

	"github.com/gofiber/fiber/v2"
)

type HarvestChartPoint struct {
	Label        string  `json:"label"` // tarih / hafta başlangıcı / ay başlangıcı
	CountQty     float64 `json:"count_qty"`
	WeightGrams  float64 `json:"weight_grams"`
	HarvestCount int     `json:"harvest_count"` // olay sayısı
}

type HarvestChartGrandTotals struct {
	CountQty     float64 `json:"count_qty"`
	WeightGrams  float64 `json:"weight_grams"`
	HarvestCount int     `json:"harvest_count"`
}

type HarvestChartResponse struct {
	Period      string                  `json:"period"` // daily | weekly | monthly
	From        string                  `json:"from"`
	To          string                  `json:"to"`
	Points      []HarvestChartPoint     `json:"points"`
	GrandTotals HarvestChartGrandTotals `json:"grand_totals"`
}

// GET /api/dashboard/harvest-chart?period=daily&count=7&crop_variety_id=1
func HarvestChartHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		period := c.Query("period", "daily") // daily | weekly | monthly
		countStr := c.Query("count", "")

		var count int
		if countStr == "" {
			switch period {
			case "weekly":
				count = 8
			case "monthly":
				count = 12
			default:
				period = "daily"
				count = 7
			}
		} else {
			if _, err := fmt.Sscan(countStr, &count); err != nil || count <= 0 {
				return fiber.NewError(fiber.StatusBadRequest, "count geçersiz")
			}
		}

		var varietyID uint
		if vStr := c.Query("crop_variety_id"); vStr != "" {
			if _, err := fmt.Sscan(vStr, &varietyID); err != nil || varietyID == 0 {
				return fiber.NewError(fiber.StatusBadRequest, "crop_variety_id geçersiz")
			}
		}

		now := time.Now().UTC()
		// bugünün 00:00'ı
		end := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
		var start time.Time

		switch period {
		case "weekly":
			days := 7 * (count - 1)
			start = end.AddDate(0, 0, -days)
		case "monthly":
			end = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
			start = end.AddDate(0, -(count - 1), 0)
		default:
			period = "daily"
			start = end.AddDate(0, 0, -(count - 1))
		}

		// aggregation sonucu satır yapısı
		type row struct {
			Bucket      time.Time `gorm:"column:bucket"`
			CountQty    float64   `gorm:"column:count_qty"`
			WeightGrams float64   `gorm:"column:weight_grams"`
			EventCount  int       `gorm:"column:event_count"`
		}
		var rows []row

		var trunc string
		switch period {
		case "weekly":
			trunc = "date_trunc('week', pe.date)::date"
		case "monthly":
			trunc = "date_trunc('month', pe.date)::date"
			end = start.AddDate(0, count, 0).AddDate(0, 0, -1)
		default:
			trunc = "pe.date::date"
		}

		sql := fmt.Sprintf(`
			SELECT %s AS bucket,
				   COALESCE(SUM(pe.qty), 0) AS count_qty,
				   COALESCE(SUM(pe.weight_grams), 0) AS weight_grams,
				   COUNT(*) AS event_count
			FROM planting_events pe
			JOIN plantings p ON p.id = pe.planting_id
			WHERE pe.type = 'harvested' AND pe.date >= ? AND pe.date <= ?
			  AND (? = 0 OR p.crop_variety_id = ?)
			GROUP BY bucket
			ORDER BY bucket ASC;
		`, trunc)

		if err := database.DB.Raw(sql, start, end, varietyID, varietyID).Scan(&rows).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Veri toplanırken hata oluştu")
		}

		points := make([]HarvestChartPoint, 0, len(rows))
		grand := HarvestChartGrandTotals{}

		for _, r := range rows {
			points = append(points, HarvestChartPoint{
				Label:        r.Bucket.Format("2006-01-02"),
				CountQty:     r.CountQty,
				WeightGrams:  r.WeightGrams,
				HarvestCount: r.EventCount,
			})

			grand.CountQty += r.CountQty
			grand.WeightGrams += r.WeightGrams
			grand.HarvestCount += r.EventCount
		}

		resp := HarvestChartResponse{
			Period:      period,
			From:        start.Format("2006-01-02"),
			To:          end.Format("2006-01-02"),
			Points:      points,
			GrandTotals: grand,
		}

		return c.JSON(resp)
	}
}
