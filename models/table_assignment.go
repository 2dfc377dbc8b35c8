package models

// TableAssignment yöneticinin misafire atadığı masa etiketidir.
// Kayıt yoksa misafir henüz bir masaya atanmamış demektir.
// Yalnızca admin yazar; misafir sadece okur.
type TableAssignment struct {
	BaseModel
	UserID     string `gorm:"type:varchar(36);uniqueIndex;not null"` // identities.id
	TableLabel string `gorm:"type:varchar(50);not null"`
}
