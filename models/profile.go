package models

// UserRole profilin uygulama içindeki rolüdür.
type UserRole string

const (
	RoleAdmin   UserRole = "ADMIN"
	RoleInvited UserRole = "INVITED"
)

// Profile misafirin profil kaydıdır. Kimlik oluşturulurken boş olarak açılır;
// segment davet kodu kullanılınca, isimler profil kurulumunda dolar.
type Profile struct {
	BaseModel
	UserID    string   `gorm:"type:varchar(36);uniqueIndex;not null"` // identities.id
	Email     string   `gorm:"type:varchar(150)"`
	FirstName string   `gorm:"type:varchar(100)"`
	LastName  string   `gorm:"type:varchar(100)"`
	Segment   *Segment `gorm:"type:varchar(10);index"` // Kod kullanılana kadar null
	Role      UserRole `gorm:"type:varchar(10);not null;default:'INVITED';index"`
	IsCeliac  bool     `gorm:"default:false"`
	AvatarURL string   `gorm:"type:varchar(500)"`
}

// IsComplete ad ve soyadın ikisinin de dolu olduğunu söyler.
// Tam erişim bu kontrole bağlıdır; rol fark etmez.
func (p *Profile) IsComplete() bool {
	return p != nil && p.FirstName != "" && p.LastName != ""
}
