package models

import "time"

// RSVPStatus olası LCV durumlarını tanımlar.
type RSVPStatus string

const (
	RSVPStatusPending   RSVPStatus = "PENDING"   // Henüz cevap verilmedi
	RSVPStatusConfirmed RSVPStatus = "CONFIRMED" // Katılacak
	RSVPStatusDeclined  RSVPStatus = "DECLINED"  // Katılmayacak
)

// IsValid durumun tanımlı olup olmadığını kontrol eder.
func (s RSVPStatus) IsValid() bool {
	return s == RSVPStatusPending || s == RSVPStatusConfirmed || s == RSVPStatusDeclined
}

// RSVP misafirin katılım cevabıdır. Kimlik başına tek kayıt tutulur;
// her gönderim tam bir üzerine yazmadır, tarihçe tutulmaz.
type RSVP struct {
	BaseModel
	UserID      string     `gorm:"type:varchar(36);uniqueIndex;not null"` // identities.id
	Status      RSVPStatus `gorm:"type:varchar(20);not null;default:'PENDING';index"`
	Note        string     `gorm:"type:text"`
	RespondedAt *time.Time `gorm:"type:timestamptz"`
}
