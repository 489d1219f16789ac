package units

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		raw  string
		want Unit
	}{
		{"g", UnitGram},
		{"gram", UnitGram},
		{"Grams", UnitGram},
		{"kg", UnitKilogram},
		{"KG", UnitKilogram},
		{"kilogram", UnitKilogram},
		{"kilograms", UnitKilogram},
		{"lb", UnitPound},
		{"LBS", UnitPound},
		{"pound", UnitPound},
		{"Pounds", UnitPound},
		{"oz", UnitOunce},
		{"ounce", UnitOunce},
		{"Ounces", UnitOunce},
		{"count", UnitCount},
		{"adet", UnitCount},
		{" kg ", UnitKilogram},
		{"", Unit("")},
		{"demet", Unit("")},
		{"koli", Unit("")},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Normalize(tt.raw), "raw=%q", tt.raw)
	}
}

func TestIsWeight(t *testing.T) {
	assert.True(t, IsWeight("kg"))
	assert.True(t, IsWeight("Grams"))
	assert.True(t, IsWeight("lbs"))
	assert.True(t, IsWeight("oz"))
	assert.False(t, IsWeight("count"))
	assert.False(t, IsWeight("adet"))
	assert.False(t, IsWeight(""))
	assert.False(t, IsWeight("demet"))
}

func TestToGrams(t *testing.T) {
	// Büyük/küçük harf ve çoğul yazımlar aynı sonucu vermeli
	assert.Equal(t, 2000.0, ToGrams(2, "Kg"))
	assert.Equal(t, 2000.0, ToGrams(2, "kilograms"))
	assert.Equal(t, 500.0, ToGrams(500, "g"))
	assert.InDelta(t, 907.18474, ToGrams(2, "lb"), 1e-9)
	assert.InDelta(t, 453.592370, ToGrams(16, "oz"), 1e-6)

	// count ve tanınmayan birimler olduğu gibi geçer
	assert.Equal(t, 12.0, ToGrams(12, "count"))
	assert.Equal(t, 12.0, ToGrams(12, "adet"))
	assert.Equal(t, 12.0, ToGrams(12, "demet"))
	assert.Equal(t, 12.0, ToGrams(12, ""))
}
