package services

import (
	"context"
	"errors"
	"testing"

	"gemma.link/models"
	"gemma.link/pkg/identityevents"
)

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

func TestSaveValidationLeavesProfileUnchanged(t *testing.T) {
	db := newTestDB(t)
	hub := identityevents.NewHub()
	guest := seedGuest(t, NewIdentityService(db, hub))
	profileSvc := NewProfileService(db)
	ctx := context.Background()

	_, err := profileSvc.Save(ctx, guest.ID, ProfileUpdate{
		FirstName: strPtr(""),
		LastName:  strPtr("Diaz"),
	}, true)
	if !errors.Is(err, ErrProfileValidation) {
		t.Fatalf("hata = %v, want ErrProfileValidation", err)
	}

	// Validasyon hatasında hiçbir alan yazılmamalı.
	profile, err := profileSvc.GetByUserID(ctx, guest.ID)
	if err != nil {
		t.Fatalf("profil okunamadı: %v", err)
	}
	if profile.FirstName != "" || profile.LastName != "" {
		t.Errorf("profil değişmemeliydi: %+v", profile)
	}
}

func TestSaveTooShortNameRejected(t *testing.T) {
	db := newTestDB(t)
	guest := seedGuest(t, NewIdentityService(db, identityevents.NewHub()))
	profileSvc := NewProfileService(db)

	_, err := profileSvc.Save(context.Background(), guest.ID, ProfileUpdate{
		FirstName: strPtr("A"),
		LastName:  strPtr("Diaz"),
	}, true)
	if !errors.Is(err, ErrProfileValidation) {
		t.Errorf("hata = %v, want ErrProfileValidation", err)
	}
}

func TestSaveCompletesSetup(t *testing.T) {
	db := newTestDB(t)
	guest := seedGuest(t, NewIdentityService(db, identityevents.NewHub()))
	profileSvc := NewProfileService(db)
	ctx := context.Background()

	profile, err := profileSvc.Save(ctx, guest.ID, ProfileUpdate{
		FirstName: strPtr("Ana"),
		LastName:  strPtr("Diaz"),
		IsCeliac:  boolPtr(true),
	}, true)
	if err != nil {
		t.Fatalf("Save başarısız: %v", err)
	}
	if !profile.IsComplete() {
		t.Error("profil tamamlanmış olmalı")
	}
	if !profile.IsCeliac {
		t.Error("IsCeliac = false, want true")
	}
}

func TestSavePartialKeepsOtherFields(t *testing.T) {
	db := newTestDB(t)
	guest := seedGuest(t, NewIdentityService(db, identityevents.NewHub()))
	profileSvc := NewProfileService(db)
	ctx := context.Background()

	if _, err := profileSvc.Save(ctx, guest.ID, ProfileUpdate{
		FirstName: strPtr("Ana"),
		LastName:  strPtr("Diaz"),
	}, true); err != nil {
		t.Fatalf("ilk Save başarısız: %v", err)
	}

	// Yalnızca çölyak bayrağı güncellenir, isimler korunur.
	profile, err := profileSvc.Save(ctx, guest.ID, ProfileUpdate{IsCeliac: boolPtr(true)}, false)
	if err != nil {
		t.Fatalf("kısmi Save başarısız: %v", err)
	}
	if profile.FirstName != "Ana" || profile.LastName != "Diaz" {
		t.Errorf("isimler korunmalıydı: %+v", profile)
	}
	if !profile.IsCeliac {
		t.Error("IsCeliac güncellenmeliydi")
	}
}

func TestSaveUpsertsMissingRow(t *testing.T) {
	db := newTestDB(t)
	profileSvc := NewProfileService(db)
	ctx := context.Background()

	// Kimlik servisi dışında açılmış bir kullanıcı için satır yoksa
	// Save sözleşme gereği oluşturur.
	profile, err := profileSvc.Save(ctx, "99999999-9999-9999-9999-999999999999", ProfileUpdate{
		FirstName: strPtr("Luz"),
		LastName:  strPtr("Muñoz"),
	}, true)
	if err != nil {
		t.Fatalf("Save başarısız: %v", err)
	}
	if profile.Role != models.RoleInvited {
		t.Errorf("rol varsayılanı = %s, want INVITED", profile.Role)
	}
	if !profile.IsComplete() {
		t.Error("oluşturulan profil tamamlanmış olmalı")
	}
}

func TestGetByUserIDNotFound(t *testing.T) {
	db := newTestDB(t)
	profileSvc := NewProfileService(db)

	if _, err := profileSvc.GetByUserID(context.Background(), "00000000-0000-0000-0000-000000000000"); !errors.Is(err, ErrProfileNotFound) {
		t.Errorf("hata = %v, want ErrProfileNotFound", err)
	}
}

func TestListGuests(t *testing.T) {
	db := newTestDB(t)
	hub := identityevents.NewHub()
	identitySvc := NewIdentityService(db, hub)
	profileSvc := NewProfileService(db)
	rsvpSvc := NewRSVPService(db)
	ctx := context.Background()

	ana := seedGuest(t, identitySvc)
	luz := seedGuest(t, identitySvc)
	if _, err := profileSvc.Save(ctx, ana.ID, ProfileUpdate{FirstName: strPtr("Ana"), LastName: strPtr("Diaz")}, true); err != nil {
		t.Fatal(err)
	}
	if _, err := profileSvc.Save(ctx, luz.ID, ProfileUpdate{FirstName: strPtr("Luz"), LastName: strPtr("Muñoz")}, true); err != nil {
		t.Fatal(err)
	}
	if err := rsvpSvc.SetStatus(ctx, ana.ID, models.RSVPStatusConfirmed, ""); err != nil {
		t.Fatal(err)
	}
	if err := rsvpSvc.AssignTable(ctx, ana.ID, "T5"); err != nil {
		t.Fatal(err)
	}

	entries, err := profileSvc.ListGuests(ctx, "")
	if err != nil {
		t.Fatalf("ListGuests başarısız: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("misafir sayısı = %d, want 2", len(entries))
	}

	byUser := map[string]GuestListEntry{}
	for _, e := range entries {
		byUser[e.Profile.UserID] = e
	}
	anaEntry := byUser[ana.ID]
	if anaEntry.RSVP == nil || anaEntry.RSVP.Status != models.RSVPStatusConfirmed {
		t.Errorf("Ana'nın LCV kaydı eksik: %+v", anaEntry.RSVP)
	}
	if anaEntry.Table == nil || anaEntry.Table.TableLabel != "T5" {
		t.Errorf("Ana'nın masası eksik: %+v", anaEntry.Table)
	}
	if luzEntry := byUser[luz.ID]; luzEntry.RSVP != nil || luzEntry.Table != nil {
		t.Errorf("Luz'un kayıtları boş olmalı: %+v", luzEntry)
	}
}

func TestListGuestsSearchIgnoresAccents(t *testing.T) {
	db := newTestDB(t)
	hub := identityevents.NewHub()
	identitySvc := NewIdentityService(db, hub)
	profileSvc := NewProfileService(db)
	ctx := context.Background()

	luz := seedGuest(t, identitySvc)
	ana := seedGuest(t, identitySvc)
	if _, err := profileSvc.Save(ctx, luz.ID, ProfileUpdate{FirstName: strPtr("Luz"), LastName: strPtr("Munoz")}, true); err != nil {
		t.Fatal(err)
	}
	if _, err := profileSvc.Save(ctx, ana.ID, ProfileUpdate{FirstName: strPtr("Ana"), LastName: strPtr("Diaz")}, true); err != nil {
		t.Fatal(err)
	}

	// "Muñoz" araması aksansız kayıtlı "Munoz"u bulmalı.
	entries, err := profileSvc.ListGuests(ctx, "Muñoz")
	if err != nil {
		t.Fatalf("ListGuests başarısız: %v", err)
	}
	if len(entries) != 1 || entries[0].Profile.UserID != luz.ID {
		t.Errorf("arama sonucu beklenmedik: %+v", entries)
	}
}
