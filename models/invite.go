package models

import "time"

// Segment misafirin etkinliğe erişim saatini belirleyen kohorttur.
type Segment string

const (
	SegmentYoung Segment = "YOUNG" // Erken erişim (14:00)
	SegmentAdult Segment = "ADULT" // Geç erişim (19:00)
)

// IsValid segment değerinin tanımlı olup olmadığını kontrol eder.
func (s Segment) IsValid() bool {
	return s == SegmentYoung || s == SegmentAdult
}

// Invite tek kullanımlık davet kodunun defter kaydıdır.
// Kod OPEN durumundan USED durumuna tam olarak bir kez geçer, geri dönmez.
// Invariant: IsUsed == true <=> UsedBy != nil && UsedAt != nil.
type Invite struct {
	BaseModel
	Code    string  `gorm:"type:varchar(64);uniqueIndex;not null"` // Büyük/küçük harf duyarlı
	Segment Segment `gorm:"type:varchar(10);not null;index"`
	Enabled bool    `gorm:"default:true;index"`
	IsUsed  bool    `gorm:"default:false;index"`
	UsedBy  *string `gorm:"type:varchar(36);index"` // identities.id
	UsedAt  *time.Time `gorm:"type:timestamptz"`
}
