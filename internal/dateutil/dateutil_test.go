package dateutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestAddPlantingDays(t *testing.T) {
	// Ay sınırı aşan eklemeler
	assert.Equal(t, date(2024, 2, 20), AddDays(date(2024, 1, 1), 50))
	assert.Equal(t, date(2024, 3, 6), AddDays(date(2024, 1, 1), 65))
	// Artık yıl
	assert.Equal(t, date(2024, 2, 29), AddDays(date(2024, 2, 28), 1))
	// Saat bilgisi atılır
	assert.Equal(t, date(2024, 1, 2),
		AddDays(time.Date(2024, 1, 1, 23, 30, 0, 0, time.UTC), 1))
}

func TestDaysBetween(t *testing.T) {
	assert.Equal(t, 20, DaysBetween(date(2024, 1, 1), date(2024, 1, 21)))
	assert.Equal(t, 0, DaysBetween(date(2024, 1, 1), date(2024, 1, 1)))
	// Negatif çıkmaz
	assert.Equal(t, 0, DaysBetween(date(2024, 1, 21), date(2024, 1, 1)))
	// Sıfır zaman aritmetiğe girmez
	assert.Equal(t, 0, DaysBetween(time.Time{}, date(2024, 1, 1)))
	assert.Equal(t, 0, DaysBetween(date(2024, 1, 1), time.Time{}))
}
