package units

import "strings"

// Unit: Normalize edilmiş kanonik birim
type Unit string

const (
	UnitCount    Unit = "count"
	UnitGram     Unit = "gram"
	UnitKilogram Unit = "kilogram"
	UnitPound    Unit = "pound"
	UnitOunce    Unit = "ounce"
	// Tanınmayan/boş birimler için zero value ("") kullanılır
)

// Gram çevrim katsayıları
const (
	gramsPerKilogram = 1000.0
	gramsPerPound    = 453.59237
	gramsPerOunce    = 28.349523125
)

// Normalize: Serbest birim metnini kanonik birime çevirir.
// Büyük/küçük harf, tekil/çoğul ve kısaltmalar kabul edilir.
// Tanınmayan veya boş metin için "" döner.
func Normalize(raw string) Unit {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "count", "adet":
		return UnitCount
	case "g", "gram", "grams":
		return UnitGram
	case "kg", "kilogram", "kilograms":
		return UnitKilogram
	case "lb", "lbs", "pound", "pounds":
		return UnitPound
	case "oz", "ounce", "ounces":
		return UnitOunce
	default:
		return ""
	}
}

// IsWeight: Birim ağırlık bazlı mı? (count ve tanınmayanlar ağırlık değildir)
func IsWeight(raw string) bool {
	switch Normalize(raw) {
	case UnitGram, UnitKilogram, UnitPound, UnitOunce:
		return true
	default:
		return false
	}
}

// ToGrams: Miktarı grama çevirir. Count ve tanınmayan birimler
// olduğu gibi geri döner (gram kabul edilir). Hiçbir durumda hata üretmez.
func ToGrams(qty float64, raw string) float64 {
	switch Normalize(raw) {
	case UnitGram:
		return qty
	case UnitKilogram:
		return qty * gramsPerKilogram
	case UnitPound:
		return qty * gramsPerPound
	case UnitOunce:
		return qty * gramsPerOunce
	default:
		// count veya tanınmayan birim: miktar olduğu gibi geçer
		return qty
	}
}
