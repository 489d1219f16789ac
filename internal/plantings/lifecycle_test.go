package plantings

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ciftlik-backend/internal/models"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func intPtr(v int) *int         { return &v }
func f64Ptr(v float64) *float64 { return &v }

func testBed(plot, bed string) *models.Bed {
	return &models.Bed{Name: bed, Plot: models.Plot{Name: plot}}
}

func TestNormalizeMinMax(t *testing.T) {
	tests := []struct {
		name     string
		min, max *int
		wantMin  int
		wantMax  int
	}{
		{"ikisi de dolu", intPtr(5), intPtr(10), 5, 10},
		{"min eksik", intPtr(0), intPtr(10), 10, 10},
		{"max eksik", intPtr(5), intPtr(0), 5, 5},
		{"ikisi de eksik", intPtr(0), intPtr(0), 0, 0},
		{"ikisi de nil", nil, nil, 0, 0},
		{"min nil", nil, intPtr(7), 7, 7},
		{"max nil", intPtr(7), nil, 7, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lo, hi := normalizeMinMax(tt.min, tt.max)
			assert.Equal(t, tt.wantMin, lo)
			assert.Equal(t, tt.wantMax, hi)
		})
	}
}

func TestSummarizeDurations(t *testing.T) {
	// fidelik -> 20. gün şaşırtma -> 90. gün hasat
	base := day(2024, 3, 1)
	events := []models.PlantingEvent{
		{Type: models.EventNurserySeeded, Date: base, Nursery: &models.Nursery{Name: "Sera 1"}},
		{Type: models.EventTransplanted, Date: base.AddDate(0, 0, 20), Bed: testBed("Tarla A", "Yatak 3")},
		{Type: models.EventHarvested, Date: base.AddDate(0, 0, 90)},
	}

	s := Summarize(events, models.CropVariety{}, models.PropagationTransplant, nil, day(2024, 12, 1))

	require.NotNil(t, s.NurseryStartedDate)
	require.NotNil(t, s.PlantedDate)
	require.NotNil(t, s.EndedDate)
	assert.Equal(t, 20, s.NurseryDays)
	assert.Equal(t, 70, s.FieldDays)
	assert.Equal(t, 90, s.TotalDays)

	require.NotNil(t, s.CurrentLocationLabel)
	assert.Equal(t, "Tarla A / Yatak 3", *s.CurrentLocationLabel)
}

func TestSummarizeProjectedWindow(t *testing.T) {
	variety := models.CropVariety{
		DTMTransplantMin: intPtr(50),
		DTMTransplantMax: intPtr(65),
	}
	events := []models.PlantingEvent{
		{Type: models.EventTransplanted, Date: day(2024, 1, 1), Bed: testBed("Tarla A", "Yatak 1")},
	}

	s := Summarize(events, variety, models.PropagationTransplant, nil, day(2024, 1, 15))

	require.NotNil(t, s.ProjectedHarvestStart)
	require.NotNil(t, s.ProjectedHarvestEnd)
	assert.Equal(t, day(2024, 2, 20), *s.ProjectedHarvestStart)
	assert.Equal(t, day(2024, 3, 6), *s.ProjectedHarvestEnd)
}

func TestSummarizeDirectSeedWindowUsesDirectSeedDTM(t *testing.T) {
	variety := models.CropVariety{
		DTMDirectSeedMin: intPtr(30),
		DTMDirectSeedMax: intPtr(40),
		DTMTransplantMin: intPtr(50),
		DTMTransplantMax: intPtr(65),
	}
	events := []models.PlantingEvent{
		{Type: models.EventDirectSeeded, Date: day(2024, 4, 1), Bed: testBed("Tarla B", "Yatak 2")},
	}

	s := Summarize(events, variety, models.PropagationDirectSeed, nil, day(2024, 4, 10))

	require.NotNil(t, s.ProjectedHarvestStart)
	assert.Equal(t, day(2024, 5, 1), *s.ProjectedHarvestStart)
	assert.Equal(t, day(2024, 5, 11), *s.ProjectedHarvestEnd)
}

func TestSummarizeNurseryOnly(t *testing.T) {
	// Sadece fidelik kaydı: planted yok, pencere yok, fidelik günleri "now"a göre
	events := []models.PlantingEvent{
		{Type: models.EventNurserySeeded, Date: day(2024, 5, 1), Nursery: &models.Nursery{Name: "Sera 2"}},
	}

	s := Summarize(events, models.CropVariety{DTMTransplantMin: intPtr(50)},
		models.PropagationTransplant, f64Ptr(72), day(2024, 5, 13))

	assert.Nil(t, s.PlantedDate)
	assert.Nil(t, s.ProjectedHarvestStart)
	assert.Nil(t, s.ProjectedHarvestEnd)
	assert.Equal(t, 12, s.NurseryDays)
	assert.Equal(t, 0, s.FieldDays)
	assert.Equal(t, 12, s.TotalDays)
	require.NotNil(t, s.CurrentLocationLabel)
	assert.Equal(t, "Sera 2", *s.CurrentLocationLabel)
	require.NotNil(t, s.InitialQuantity)
	assert.Equal(t, 72.0, *s.InitialQuantity)
}

func TestSummarizeEmptyEvents(t *testing.T) {
	s := Summarize(nil, models.CropVariety{}, models.PropagationDirectSeed, nil, day(2024, 5, 1))

	assert.Nil(t, s.NurseryStartedDate)
	assert.Nil(t, s.PlantedDate)
	assert.Nil(t, s.EndedDate)
	assert.Nil(t, s.ProjectedHarvestStart)
	assert.Nil(t, s.CurrentLocationLabel)
	assert.Nil(t, s.HarvestQuantity)
	assert.Nil(t, s.HarvestWeightGrams)
	assert.Equal(t, 0, s.NurseryDays)
	assert.Equal(t, 0, s.FieldDays)
	assert.Equal(t, 0, s.TotalDays)
}

func TestSummarizeFirstHarvestWins(t *testing.T) {
	events := []models.PlantingEvent{
		{Type: models.EventDirectSeeded, Date: day(2024, 4, 1), Bed: testBed("Tarla A", "Yatak 1")},
		{Type: models.EventHarvested, Date: day(2024, 6, 1), Qty: f64Ptr(10), QuantityUnit: "demet"},
		{Type: models.EventHarvested, Date: day(2024, 6, 8), Qty: f64Ptr(99)},
		{Type: models.EventRemoved, Date: day(2024, 6, 15)},
	}

	s := Summarize(events, models.CropVariety{}, models.PropagationDirectSeed, nil, day(2024, 7, 1))

	require.NotNil(t, s.EndedDate)
	assert.Equal(t, day(2024, 6, 1), *s.EndedDate) // removed hasadı ezmez
	require.NotNil(t, s.HarvestQuantity)
	assert.Equal(t, 10.0, s.HarvestQuantity.Qty)
	assert.Equal(t, "demet", s.HarvestQuantity.Unit)
}

func TestSummarizeRemovedEndsWithoutHarvest(t *testing.T) {
	events := []models.PlantingEvent{
		{Type: models.EventDirectSeeded, Date: day(2024, 4, 1), Bed: testBed("Tarla A", "Yatak 1")},
		{Type: models.EventRemoved, Date: day(2024, 5, 1)},
	}

	s := Summarize(events, models.CropVariety{}, models.PropagationDirectSeed, nil, day(2024, 7, 1))

	require.NotNil(t, s.EndedDate)
	assert.Equal(t, day(2024, 5, 1), *s.EndedDate)
	assert.Equal(t, 30, s.FieldDays)
	assert.Nil(t, s.HarvestQuantity)
}

func TestSummarizeMovesUpdateLocation(t *testing.T) {
	events := []models.PlantingEvent{
		{Type: models.EventDirectSeeded, Date: day(2024, 4, 1), Bed: testBed("Tarla A", "Yatak 1")},
		{Type: models.EventMoved, Date: day(2024, 4, 10), Bed: testBed("Tarla A", "Yatak 2")},
		{Type: models.EventMoved, Date: day(2024, 4, 20), Bed: testBed("Tarla B", "Yatak 5")},
	}

	s := Summarize(events, models.CropVariety{}, models.PropagationDirectSeed, nil, day(2024, 5, 1))

	assert.Equal(t, 2, s.MovesCount)
	require.NotNil(t, s.CurrentLocationLabel)
	assert.Equal(t, "Tarla B / Yatak 5", *s.CurrentLocationLabel)
}

func TestSummarizeSkipsZeroDates(t *testing.T) {
	events := []models.PlantingEvent{
		{Type: models.EventDirectSeeded}, // tarihsiz kayıt aritmetiğe girmez
		{Type: models.EventDirectSeeded, Date: day(2024, 4, 1), Bed: testBed("Tarla A", "Yatak 1")},
	}

	s := Summarize(events, models.CropVariety{}, models.PropagationDirectSeed, nil, day(2024, 4, 11))

	require.NotNil(t, s.PlantedDate)
	assert.Equal(t, day(2024, 4, 1), *s.PlantedDate)
	assert.Equal(t, 10, s.FieldDays)
}

func TestSummarizeDeterministic(t *testing.T) {
	variety := models.CropVariety{DTMTransplantMin: intPtr(50), DTMTransplantMax: intPtr(65)}
	events := []models.PlantingEvent{
		{Type: models.EventNurserySeeded, Date: day(2024, 1, 1), Nursery: &models.Nursery{Name: "Sera 1"}},
		{Type: models.EventTransplanted, Date: day(2024, 1, 21), Bed: testBed("Tarla A", "Yatak 3")},
		{Type: models.EventMoved, Date: day(2024, 2, 5), Bed: testBed("Tarla A", "Yatak 4")},
		{Type: models.EventHarvested, Date: day(2024, 3, 20), WeightGrams: f64Ptr(4500)},
	}
	now := day(2024, 4, 1)

	first := Summarize(events, variety, models.PropagationTransplant, f64Ptr(100), now)
	second := Summarize(events, variety, models.PropagationTransplant, f64Ptr(100), now)

	assert.Equal(t, first, second)
}
