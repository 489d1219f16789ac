package dateutil

import "time"

// StartOfDayUTC: Zamanın UTC takvim gününün 00:00'ı
func StartOfDayUTC(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// AddDays: UTC takvim aritmetiğiyle gün ekler
func AddDays(t time.Time, days int) time.Time {
	return StartOfDayUTC(t).AddDate(0, 0, days)
}

// DaysBetween: start ile end arasındaki tam gün sayısı.
// Negatif çıkmaz, sıfır zamanlar 0 döner.
func DaysBetween(start, end time.Time) int {
	if start.IsZero() || end.IsZero() {
		return 0
	}
	d := int(StartOfDayUTC(end).Sub(StartOfDayUTC(start)).Hours() / 24)
	if d < 0 {
		return 0
	}
	return d
}
