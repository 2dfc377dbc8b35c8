package identityevents

import (
	"testing"
	"time"
)

func TestPublishAndSubscribe(t *testing.T) {
	hub := NewHub()
	ch, unsubscribe := hub.Subscribe(4)
	defer unsubscribe()

	hub.Publish(Event{Type: EventSignedIn, IdentityID: "id-1"})

	select {
	case got := <-ch:
		if got.Type != EventSignedIn || got.IdentityID != "id-1" {
			t.Errorf("beklenmeyen olay: %+v", got)
		}
		if got.At.IsZero() {
			t.Error("At otomatik doldurulmalıydı")
		}
	case <-time.After(time.Second):
		t.Fatal("olay teslim edilmedi")
	}
}

func TestSnapshot(t *testing.T) {
	hub := NewHub()

	if _, ok := hub.Snapshot(); ok {
		t.Error("olay yokken Snapshot ok dönmemeli")
	}

	hub.Publish(Event{Type: EventSignedIn, IdentityID: "id-1"})
	hub.Publish(Event{Type: EventClaimed, IdentityID: "id-1"})

	got, ok := hub.Snapshot()
	if !ok {
		t.Fatal("Snapshot olay bulmalıydı")
	}
	if got.Type != EventClaimed {
		t.Errorf("Snapshot son olayı vermeli, geldi: %v", got.Type)
	}
}

func TestUnsubscribe(t *testing.T) {
	hub := NewHub()
	ch, unsubscribe := hub.Subscribe(1)

	unsubscribe()
	unsubscribe() // İkinci çağrı panic yapmamalı

	if hub.SubscriberCount() != 0 {
		t.Errorf("abone sayısı = %d, want 0", hub.SubscriberCount())
	}

	// Kanal kapandı; okuma bloklamadan sıfır değer dönmeli.
	if _, open := <-ch; open {
		t.Error("abonelik kanalı kapatılmalıydı")
	}

	hub.Publish(Event{Type: EventSignedOut, IdentityID: "id-1"}) // Panic etmemeli
}

func TestPublishDoesNotBlockOnSlowSubscriber(t *testing.T) {
	hub := NewHub()
	_, unsubscribe := hub.Subscribe(1)
	defer unsubscribe()

	done := make(chan struct{})
	go func() {
		// Kanal kapasitesi 1; kimse okumazken art arda yayın bloklamamalı.
		for i := 0; i < 10; i++ {
			hub.Publish(Event{Type: EventSignedIn, IdentityID: "id-1"})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Publish yavaş abonede bloklandı")
	}
}
