package services

import (
	"context"
	"errors"
	"testing"

	"gemma.link/models"
	"gemma.link/pkg/identityevents"
)

func TestSetStatusDefaultsToPending(t *testing.T) {
	db := newTestDB(t)
	service := NewRSVPService(db)
	guest := seedGuest(t, NewIdentityService(db, identityevents.NewHub()))

	status, record, err := service.GetStatus(context.Background(), guest.ID)
	if err != nil {
		t.Fatalf("GetStatus hata döndü: %v", err)
	}
	if status != models.RSVPStatusPending {
		t.Errorf("kayıt yokken durum = %s, beklenen PENDING", status)
	}
	if record != nil {
		t.Errorf("kayıt yokken record nil olmalı, geldi: %+v", record)
	}
}

func TestSetStatusOverwriteIdempotent(t *testing.T) {
	db := newTestDB(t)
	service := NewRSVPService(db)
	guest := seedGuest(t, NewIdentityService(db, identityevents.NewHub()))
	ctx := context.Background()

	steps := []models.RSVPStatus{
		models.RSVPStatusConfirmed,
		models.RSVPStatusDeclined,
		models.RSVPStatusDeclined,
	}
	for _, next := range steps {
		if err := service.SetStatus(ctx, guest.ID, next, "not"); err != nil {
			t.Fatalf("SetStatus(%s) hata döndü: %v", next, err)
		}
	}

	status, record, err := service.GetStatus(ctx, guest.ID)
	if err != nil {
		t.Fatalf("GetStatus hata döndü: %v", err)
	}
	if status != models.RSVPStatusDeclined {
		t.Errorf("son durum = %s, beklenen DECLINED", status)
	}
	if record == nil || record.RespondedAt == nil {
		t.Fatal("cevaplanmış kayıtta RespondedAt dolu olmalı")
	}

	var count int64
	if err := db.Model(&models.RSVP{}).Where("user_id = ?", guest.ID).Count(&count).Error; err != nil {
		t.Fatalf("sayım başarısız: %v", err)
	}
	if count != 1 {
		t.Errorf("kimlik başına tek LCV kaydı olmalı, bulunan: %d", count)
	}
}

func TestSetStatusRejectsInvalid(t *testing.T) {
	db := newTestDB(t)
	service := NewRSVPService(db)
	guest := seedGuest(t, NewIdentityService(db, identityevents.NewHub()))
	ctx := context.Background()

	tests := []struct {
		name   string
		userID string
		status models.RSVPStatus
	}{
		{"bilinmeyen durum", guest.ID, models.RSVPStatus("MAYBE")},
		{"boş durum", guest.ID, models.RSVPStatus("")},
		{"boş kimlik", "", models.RSVPStatusConfirmed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := service.SetStatus(ctx, tt.userID, tt.status, "")
			if !errors.Is(err, ErrRSVPInvalidStatus) {
				t.Errorf("err = %v, beklenen ErrRSVPInvalidStatus", err)
			}
		})
	}
}

func TestAssignTable(t *testing.T) {
	db := newTestDB(t)
	service := NewRSVPService(db)
	guest := seedGuest(t, NewIdentityService(db, identityevents.NewHub()))
	ctx := context.Background()

	if err := service.AssignTable(ctx, guest.ID, "  "); !errors.Is(err, ErrTableLabelRequired) {
		t.Errorf("boş etiket: err = %v, beklenen ErrTableLabelRequired", err)
	}

	if err := service.AssignTable(ctx, guest.ID, "T5"); err != nil {
		t.Fatalf("AssignTable hata döndü: %v", err)
	}
	// Üzerine yazma yeni kayıt açmamalı.
	if err := service.AssignTable(ctx, guest.ID, "T7"); err != nil {
		t.Fatalf("ikinci AssignTable hata döndü: %v", err)
	}

	assignment, err := service.GetTable(ctx, guest.ID)
	if err != nil {
		t.Fatalf("GetTable hata döndü: %v", err)
	}
	if assignment == nil || assignment.TableLabel != "T7" {
		t.Errorf("assignment = %+v, beklenen etiket T7", assignment)
	}

	var count int64
	if err := db.Model(&models.TableAssignment{}).Where("user_id = ?", guest.ID).Count(&count).Error; err != nil {
		t.Fatalf("sayım başarısız: %v", err)
	}
	if count != 1 {
		t.Errorf("kimlik başına tek masa kaydı olmalı, bulunan: %d", count)
	}
}

func TestGetTableUnassigned(t *testing.T) {
	db := newTestDB(t)
	service := NewRSVPService(db)

	assignment, err := service.GetTable(context.Background(), "hic-yok")
	if err != nil {
		t.Fatalf("GetTable hata döndü: %v", err)
	}
	if assignment != nil {
		t.Errorf("atanmamış misafirde assignment nil olmalı, geldi: %+v", assignment)
	}
}
