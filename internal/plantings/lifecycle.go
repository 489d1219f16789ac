package plantings

import (
	"fmt"
	"time"

	"ciftlik-backend/internal/dateutil"
	"ciftlik-backend/internal/models"
)

// HarvestQuantity: Hasat olayında kaydedilen sayım bazlı miktar
type HarvestQuantity struct {
	Qty  float64 `json:"qty"`
	Unit string  `json:"unit"`
}

// Summary: Bir ekimin olay defterinden türetilen özet.
// Kalıcı bir karşılığı yoktur, her istekte yeniden hesaplanır.
type Summary struct {
	NurseryStartedDate *time.Time `json:"nursery_started_date"`
	PlantedDate        *time.Time `json:"planted_date"`
	EndedDate          *time.Time `json:"ended_date"`

	ProjectedHarvestStart *time.Time `json:"projected_harvest_start"`
	ProjectedHarvestEnd   *time.Time `json:"projected_harvest_end"`

	NurseryDays int `json:"nursery_days"`
	FieldDays   int `json:"field_days"`
	TotalDays   int `json:"total_days"`

	CurrentLocationLabel *string `json:"current_location_label"`
	MovesCount           int     `json:"moves_count"`

	HarvestQuantity   *HarvestQuantity `json:"harvest_quantity"`
	HarvestWeightGrams *float64        `json:"harvest_weight_grams"`

	PropagationMethod models.PropagationMethod `json:"propagation_method"`
	InitialQuantity   *float64                 `json:"initial_quantity"`
}

// locationLabel: Olayın gerçekleştiği yerin okunur etiketi
func locationLabel(ev models.PlantingEvent) *string {
	if ev.Nursery != nil && ev.Nursery.Name != "" {
		s := ev.Nursery.Name
		return &s
	}
	if ev.Bed != nil && ev.Bed.Name != "" {
		s := ev.Bed.Name
		if ev.Bed.Plot.Name != "" {
			s = fmt.Sprintf("%s / %s", ev.Bed.Plot.Name, ev.Bed.Name)
		}
		return &s
	}
	return nil
}

// normalizeMinMax: DTM min/max çiftini düzeltir. Eksik veya <=0 değerler
// diğerinden tamamlanır; ikisi de yoksa {0,0} döner.
func normalizeMinMax(min, max *int) (int, int) {
	lo, hi := 0, 0
	if min != nil && *min > 0 {
		lo = *min
	}
	if max != nil && *max > 0 {
		hi = *max
	}
	if lo <= 0 {
		lo = hi
	}
	if hi <= 0 {
		hi = lo
	}
	return lo, hi
}

// Summarize: Tek bir ekimin kronolojik olay listesinden türetilmiş özeti
// hesaplar. Saf bir fonksiyondur: DB'ye dokunmaz, saat okumaz ("now" parametre
// olarak verilir), hiçbir durumda hata üretmez. Olaylar tarih sırasında
// (eşitlikte ekleniş sırasında) verilmelidir.
func Summarize(events []models.PlantingEvent, variety models.CropVariety,
	method models.PropagationMethod, initialQty *float64, now time.Time) Summary {

	s := Summary{
		PropagationMethod: method,
		InitialQuantity:   initialQty,
	}

	hasTransplant := false
	harvestSeen := false
	removedSeen := false

	for _, ev := range events {
		// Bozuk/tarihsiz kayıtlar aritmetiğe girmez
		if ev.Date.IsZero() {
			continue
		}
		d := dateutil.StartOfDayUTC(ev.Date)

		switch ev.Type {
		case models.EventNurserySeeded:
			if s.NurseryStartedDate == nil {
				s.NurseryStartedDate = &d
				if label := locationLabel(ev); label != nil {
					s.CurrentLocationLabel = label
				}
			}

		case models.EventDirectSeeded:
			if s.PlantedDate == nil {
				s.PlantedDate = &d
			}
			if label := locationLabel(ev); label != nil {
				s.CurrentLocationLabel = label
			}

		case models.EventTransplanted:
			hasTransplant = true
			if s.PlantedDate == nil {
				s.PlantedDate = &d
			}
			if label := locationLabel(ev); label != nil {
				s.CurrentLocationLabel = label
			}

		case models.EventMoved:
			s.MovesCount++
			if label := locationLabel(ev); label != nil {
				s.CurrentLocationLabel = label
			}

		case models.EventHarvested:
			// İlk hasat kaydı geçerlidir, sonraki tekrarlar yok sayılır
			if !harvestSeen {
				harvestSeen = true
				s.EndedDate = &d
				if ev.Qty != nil {
					s.HarvestQuantity = &HarvestQuantity{Qty: *ev.Qty, Unit: ev.QuantityUnit}
				}
				if ev.WeightGrams != nil {
					s.HarvestWeightGrams = ev.WeightGrams
				}
			}

		case models.EventRemoved:
			// Hasat kaydı varsa bitiş tarihi hasatta kalır
			if !harvestSeen && !removedSeen {
				removedSeen = true
				s.EndedDate = &d
			}
		}
	}

	ref := dateutil.StartOfDayUTC(now)

	// Süreler (tam gün, asla negatif değil)
	if s.NurseryStartedDate != nil {
		end := ref
		if s.PlantedDate != nil {
			end = *s.PlantedDate
		}
		s.NurseryDays = dateutil.DaysBetween(*s.NurseryStartedDate, end)
	}
	if s.PlantedDate != nil {
		end := ref
		if s.EndedDate != nil {
			end = *s.EndedDate
		}
		s.FieldDays = dateutil.DaysBetween(*s.PlantedDate, end)
	}
	if start := earliestDate(s.NurseryStartedDate, s.PlantedDate); start != nil {
		end := ref
		if s.EndedDate != nil {
			end = *s.EndedDate
		}
		s.TotalDays = dateutil.DaysBetween(*start, end)
	}

	// Tahmini hasat penceresi
	var basis *time.Time
	var minDTM, maxDTM int
	if hasTransplant {
		basis = s.PlantedDate
		minDTM, maxDTM = normalizeMinMax(variety.DTMTransplantMin, variety.DTMTransplantMax)
	} else {
		basis = s.NurseryStartedDate
		if basis == nil {
			basis = s.PlantedDate
		}
		minDTM, maxDTM = normalizeMinMax(variety.DTMDirectSeedMin, variety.DTMDirectSeedMax)
	}
	if basis != nil && minDTM > 0 {
		start := dateutil.AddDays(*basis, minDTM)
		end := dateutil.AddDays(*basis, maxDTM)
		s.ProjectedHarvestStart = &start
		s.ProjectedHarvestEnd = &end
	}

	return s
}

// earliestDate: nil olmayanların en erkeni
func earliestDate(a, b *time.Time) *time.Time {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	if b.Before(*a) {
		return b
	}
	return a
}
