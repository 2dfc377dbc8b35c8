// Package eventtime etkinlik takvimini ve geri sayımı hesaplar.
// Tamamen saf fonksiyonlardır; saat dilimi ve tarih sabittir.
package eventtime

import (
	"time"
	_ "time/tzdata" // Konteyner imajlarında tz veritabanı olmayabilir

	"gemma.link/models"
)

// Etkinlik takvimi sabitleri. Tüm saatler etkinlik saat dilimindedir.
const (
	EventTimezone = "America/Argentina/Buenos_Aires"

	eventYear  = 2026
	eventMonth = time.March
	eventDay   = 14

	youngStartHour = 14 // YOUNG segmenti erişim başlangıcı
	adultStartHour = 19 // ADULT segmenti erişim başlangıcı
	eventEndHour   = 1  // Ertesi gün 01:00
)

var eventLocation = mustLoadLocation()

func mustLoadLocation() *time.Location {
	loc, err := time.LoadLocation(EventTimezone)
	if err != nil {
		panic("etkinlik saat dilimi yüklenemedi: " + err.Error())
	}
	return loc
}

// Countdown bir hedefe kalan süreyi dakika hassasiyetinde taşır.
// Değerler yuvarlanmaz, aşağı kırpılır.
type Countdown struct {
	Days    int
	Hours   int
	Minutes int
	IsPast  bool
}

// EventTimes segment başlangıç anlarını ve etkinlik bitişini döndürür.
func EventTimes() (youngStart, adultStart, end time.Time) {
	youngStart = time.Date(eventYear, eventMonth, eventDay, youngStartHour, 0, 0, 0, eventLocation)
	adultStart = time.Date(eventYear, eventMonth, eventDay, adultStartHour, 0, 0, 0, eventLocation)
	end = time.Date(eventYear, eventMonth, eventDay, eventEndHour, 0, 0, 0, eventLocation).AddDate(0, 0, 1)
	return youngStart, adultStart, end
}

// TargetFor segmentin erişim başlangıç anını döndürür.
// Segment bilinmiyorsa (henüz kod kullanılmamışsa) YOUNG varsayılır.
func TargetFor(segment *models.Segment) time.Time {
	youngStart, adultStart, _ := EventTimes()
	if segment != nil && *segment == models.SegmentAdult {
		return adultStart
	}
	return youngStart
}

// ComputeCountdown hedefe kalan tam gün/saat/dakikayı hesaplar.
// Kalan toplam dakika sıfır veya altındaysa hedef geçmiş sayılır.
func ComputeCountdown(target, now time.Time) Countdown {
	totalMinutes := int(target.Sub(now) / time.Minute)
	if totalMinutes <= 0 {
		return Countdown{IsPast: true}
	}
	return Countdown{
		Days:    totalMinutes / (60 * 24),
		Hours:   (totalMinutes % (60 * 24)) / 60,
		Minutes: totalMinutes % 60,
	}
}

// FormatEventDate anı etkinlik saat diliminde okunur biçimde yazar
// (tanılama sayfası için).
func FormatEventDate(t time.Time) string {
	return t.In(eventLocation).Format("Monday 2 January 2006, 15:04 MST")
}
