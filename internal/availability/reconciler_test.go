package availability

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ciftlik-backend/internal/models"
)

func f64Ptr(v float64) *float64 { return &v }

func TestReconcileCountAxis(t *testing.T) {
	// X çeşidi: 10 + 5 adet hasat, 12 adet teslimat -> 3 kaldı
	plantingVariety := map[uint]uint{1: 100, 2: 100}
	harvests := []models.PlantingEvent{
		{PlantingID: 1, Type: models.EventHarvested, Qty: f64Ptr(10)},
		{PlantingID: 2, Type: models.EventHarvested, Qty: f64Ptr(5)},
	}
	deliveries := []models.DeliveryItem{
		{CropVarietyID: 100, Qty: 12, Unit: "count"},
	}

	res := Reconcile([]uint{100}, plantingVariety, harvests, deliveries)

	require.Len(t, res, 1)
	assert.Equal(t, uint(100), res[0].CropVarietyID)
	assert.Equal(t, 3.0, res[0].CountAvailable)
	assert.Equal(t, 0.0, res[0].GramsAvailable)
}

func TestReconcileWeightAxis(t *testing.T) {
	// Y çeşidi: 5000 g hasat, 2 lb teslimat -> ~4092.82 g kaldı
	plantingVariety := map[uint]uint{3: 200}
	harvests := []models.PlantingEvent{
		{PlantingID: 3, Type: models.EventHarvested, WeightGrams: f64Ptr(5000)},
	}
	deliveries := []models.DeliveryItem{
		{CropVarietyID: 200, Qty: 2, Unit: "lb"},
	}

	res := Reconcile([]uint{200}, plantingVariety, harvests, deliveries)

	require.Len(t, res, 1)
	assert.InDelta(t, 4092.81526, res[0].GramsAvailable, 0.001)
	assert.Equal(t, 0.0, res[0].CountAvailable)
}

func TestReconcileAxesIndependent(t *testing.T) {
	// Aynı çeşitte sayım ve ağırlık defterleri birbirine karışmaz
	plantingVariety := map[uint]uint{1: 100}
	harvests := []models.PlantingEvent{
		{PlantingID: 1, Type: models.EventHarvested, Qty: f64Ptr(20), WeightGrams: f64Ptr(3000)},
	}
	deliveries := []models.DeliveryItem{
		{CropVarietyID: 100, Qty: 5, Unit: "demet"}, // tanınmayan birim sayım eksenine gider
		{CropVarietyID: 100, Qty: 1, Unit: "kg"},
	}

	res := Reconcile([]uint{100}, plantingVariety, harvests, deliveries)

	require.Len(t, res, 1)
	assert.Equal(t, 15.0, res[0].CountAvailable)
	assert.Equal(t, 2000.0, res[0].GramsAvailable)
}

func TestReconcileNegativeAllowed(t *testing.T) {
	// Kayıtlı hasattan fazla teslimat hata değildir, negatif döner
	deliveries := []models.DeliveryItem{
		{CropVarietyID: 100, Qty: 7, Unit: "adet"},
	}

	res := Reconcile([]uint{100}, map[uint]uint{}, nil, deliveries)

	require.Len(t, res, 1)
	assert.Equal(t, -7.0, res[0].CountAvailable)
}

func TestReconcileEmptyIDs(t *testing.T) {
	res := Reconcile(nil, map[uint]uint{1: 100}, nil, nil)
	assert.Empty(t, res)
	assert.NotNil(t, res)
}

func TestReconcileUnknownPlantingIgnored(t *testing.T) {
	// Eşlemesi olmayan ekim kaydı toplamlara girmez
	harvests := []models.PlantingEvent{
		{PlantingID: 99, Type: models.EventHarvested, Qty: f64Ptr(10)},
	}

	res := Reconcile([]uint{100}, map[uint]uint{}, harvests, nil)

	require.Len(t, res, 1)
	assert.Equal(t, 0.0, res[0].CountAvailable)
}

func TestReconcileOrderFollowsQuery(t *testing.T) {
	plantingVariety := map[uint]uint{1: 100, 2: 200}
	harvests := []models.PlantingEvent{
		{PlantingID: 1, Type: models.EventHarvested, Qty: f64Ptr(1)},
		{PlantingID: 2, Type: models.EventHarvested, Qty: f64Ptr(2)},
	}

	res := Reconcile([]uint{200, 100, 300}, plantingVariety, harvests, nil)

	require.Len(t, res, 3)
	assert.Equal(t, uint(200), res[0].CropVarietyID)
	assert.Equal(t, uint(100), res[1].CropVarietyID)
	assert.Equal(t, uint(300), res[2].CropVarietyID) // verisi olmayan çeşit 0/0 döner
	assert.Equal(t, 0.0, res[2].CountAvailable)
	assert.Equal(t, 0.0, res[2].GramsAvailable)
}
