package availability

import (
	"ciftlik-backend/internal/models"
	"ciftlik-backend/internal/units"
)

// VarietyAvailability: Bir çeşidin net kalan miktarı.
// Sayım ve ağırlık eksenleri ayrı defterlerdir, birbirine çevrilmez.
// Negatif değerler geçerlidir (kayıtlı hasattan fazla teslimat).
type VarietyAvailability struct {
	CropVarietyID  uint    `json:"crop_variety_id"`
	CountAvailable float64 `json:"count_available"`
	GramsAvailable float64 `json:"grams_available"`
}

type totals struct {
	harvestedCount float64
	harvestedGrams float64
	deliveredCount float64
	deliveredGrams float64
}

// Reconcile: Çeşit bazında hasat toplamlarını teslimat toplamlarından düşer.
// plantingVariety: planting_id -> crop_variety_id eşlemesi.
// Saf bir fonksiyondur; sonuç listesi varietyIDs sırasını korur,
// boş id listesi boş liste döndürür.
func Reconcile(varietyIDs []uint, plantingVariety map[uint]uint,
	harvestEvents []models.PlantingEvent, deliveryItems []models.DeliveryItem) []VarietyAvailability {

	result := make([]VarietyAvailability, 0, len(varietyIDs))
	if len(varietyIDs) == 0 {
		return result
	}

	requested := make(map[uint]*totals, len(varietyIDs))
	for _, id := range varietyIDs {
		if _, ok := requested[id]; !ok {
			requested[id] = &totals{}
		}
	}

	// Hasat olaylarını çeşide çözüp topla
	for _, ev := range harvestEvents {
		if ev.Type != models.EventHarvested {
			continue
		}
		varietyID, ok := plantingVariety[ev.PlantingID]
		if !ok {
			continue
		}
		agg, ok := requested[varietyID]
		if !ok {
			continue
		}
		if ev.Qty != nil {
			agg.harvestedCount += *ev.Qty
		}
		if ev.WeightGrams != nil {
			agg.harvestedGrams += *ev.WeightGrams
		}
	}

	// Teslimat kalemlerini birimine göre ilgili eksene yaz
	for _, item := range deliveryItems {
		agg, ok := requested[item.CropVarietyID]
		if !ok {
			continue
		}
		if units.IsWeight(item.Unit) {
			agg.deliveredGrams += units.ToGrams(item.Qty, item.Unit)
		} else {
			// count veya tanınmayan birim: sayım ekseni
			agg.deliveredCount += item.Qty
		}
	}

	for _, id := range varietyIDs {
		agg := requested[id]
		result = append(result, VarietyAvailability{
			CropVarietyID:  id,
			CountAvailable: agg.harvestedCount - agg.deliveredCount,
			GramsAvailable: agg.harvestedGrams - agg.deliveredGrams,
		})
	}

	return result
}
