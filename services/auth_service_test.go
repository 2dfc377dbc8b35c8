package services

import (
	"context"
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"gemma.link/models"
	"gemma.link/pkg/identityevents"
)

func seedAdmin(t *testing.T, db *gorm.DB, email, password string) *models.Identity {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("parola hashlenemedi: %v", err)
	}
	hashStr := string(hash)
	identity := &models.Identity{
		ID:           "admin-test-uuid",
		Email:        &email,
		PasswordHash: &hashStr,
		IsAnonymous:  false,
	}
	if err := db.Create(identity).Error; err != nil {
		t.Fatalf("admin kimliği seed edilemedi: %v", err)
	}
	profile := &models.Profile{
		UserID:    identity.ID,
		Email:     email,
		FirstName: "Sistem",
		LastName:  "Yöneticisi",
		Role:      models.RoleAdmin,
	}
	if err := db.Create(profile).Error; err != nil {
		t.Fatalf("admin profili seed edilemedi: %v", err)
	}
	return identity
}

func TestAuthenticateSuccess(t *testing.T) {
	db := newTestDB(t)
	hub := identityevents.NewHub()
	service := NewAuthService(db, hub)
	admin := seedAdmin(t, db, "admin@gemma.link", "cok-gizli")

	events, unsubscribe := hub.Subscribe(1)
	defer unsubscribe()

	// E-posta büyük/küçük harf ve boşluk duyarsız kabul edilir.
	identity, err := service.Authenticate(context.Background(), "  Admin@Gemma.Link ", "cok-gizli")
	if err != nil {
		t.Fatalf("Authenticate hata döndü: %v", err)
	}
	if identity.ID != admin.ID {
		t.Errorf("dönen kimlik = %s, beklenen %s", identity.ID, admin.ID)
	}

	select {
	case event := <-events:
		if event.Type != identityevents.EventSignedIn || event.IdentityID != admin.ID {
			t.Errorf("beklenmeyen olay: %+v", event)
		}
	default:
		t.Error("giriş olayı yayınlanmalıydı")
	}
}

func TestAuthenticateRejections(t *testing.T) {
	db := newTestDB(t)
	service := NewAuthService(db, identityevents.NewHub())
	seedAdmin(t, db, "admin@gemma.link", "cok-gizli")
	ctx := context.Background()

	tests := []struct {
		name     string
		email    string
		password string
	}{
		{"yanlış parola", "admin@gemma.link", "tahmin"},
		{"bilinmeyen e-posta", "baska@gemma.link", "cok-gizli"},
		{"boş e-posta", "", "cok-gizli"},
		{"boş parola", "admin@gemma.link", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.Authenticate(ctx, tt.email, tt.password)
			if !errors.Is(err, ErrInvalidCredentials) {
				t.Errorf("err = %v, beklenen ErrInvalidCredentials", err)
			}
		})
	}
}

func TestAuthenticateAnonymousHasNoPassword(t *testing.T) {
	db := newTestDB(t)
	hub := identityevents.NewHub()
	authSvc := NewAuthService(db, hub)
	identitySvc := NewIdentityService(db, hub)
	ctx := context.Background()

	if _, err := identitySvc.CreateAnonymous(ctx); err != nil {
		t.Fatalf("anonim kimlik oluşturulamadı: %v", err)
	}

	// Anonim kimliklerin e-postası yok; parola girişi hiçbir anonim kaydı açmaz.
	_, err := authSvc.Authenticate(ctx, "anon@gemma.link", "bos")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("err = %v, beklenen ErrInvalidCredentials", err)
	}
}
