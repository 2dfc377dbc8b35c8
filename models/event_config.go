package models

import "time"

// EventConfig tek satırlık etkinlik kaydıdır. Tanılama sayfası bu tabloyu
// bağlantı kontrolü için okur (seçilebilen en küçük gerçek veri).
type EventConfig struct {
	BaseModel
	EventDate time.Time `gorm:"type:timestamptz;not null"`
}
