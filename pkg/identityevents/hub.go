// Package identityevents kimlik değişikliklerini (giriş, çıkış, kod kullanımı)
// abonelere duyuran küçük bir yayıncıdır. Abonelik bir kanal ve bir
// unsubscribe tutacağı döndürür; Snapshot son olayı senkron verir.
package identityevents

import (
	"sync"
	"time"
)

// EventType kimlik olayının türüdür.
type EventType string

const (
	EventSignedIn  EventType = "SIGNED_IN"
	EventSignedOut EventType = "SIGNED_OUT"
	EventClaimed   EventType = "INVITE_CLAIMED"
)

// Event tek bir kimlik değişikliğini temsil eder.
type Event struct {
	Type       EventType
	IdentityID string
	At         time.Time
}

// Hub abonelikleri ve son olayı tutar. Sıfır değeri kullanılamaz, NewHub ile
// oluşturulur. Publish hiçbir aboneyi bekletmez; dolu kanala olay düşürülür.
type Hub struct {
	mu      sync.RWMutex
	nextID  int
	subs    map[int]chan Event
	last    Event
	hasLast bool
}

// NewHub boş bir yayıncı oluşturur.
func NewHub() *Hub {
	return &Hub{subs: make(map[int]chan Event)}
}

// Subscribe yeni bir abonelik açar. Dönen fonksiyon aboneliği kapatır;
// birden çok kez çağrılması güvenlidir.
func (h *Hub) Subscribe(buffer int) (<-chan Event, func()) {
	if buffer < 1 {
		buffer = 1
	}
	ch := make(chan Event, buffer)

	h.mu.Lock()
	id := h.nextID
	h.nextID++
	h.subs[id] = ch
	h.mu.Unlock()

	var once sync.Once
	unsubscribe := func() {
		once.Do(func() {
			h.mu.Lock()
			if sub, ok := h.subs[id]; ok {
				delete(h.subs, id)
				close(sub)
			}
			h.mu.Unlock()
		})
	}
	return ch, unsubscribe
}

// Publish olayı tüm abonelere dağıtır ve son olay olarak saklar.
// Kanalı dolu olan abone o olayı kaçırır; yayıncı asla bloklanmaz.
func (h *Hub) Publish(e Event) {
	if e.At.IsZero() {
		e.At = time.Now().UTC()
	}

	h.mu.Lock()
	h.last = e
	h.hasLast = true
	for _, ch := range h.subs {
		select {
		case ch <- e:
		default:
		}
	}
	h.mu.Unlock()
}

// Snapshot en son yayınlanan olayı döndürür. Henüz olay yoksa ikinci değer false.
func (h *Hub) Snapshot() (Event, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.last, h.hasLast
}

// SubscriberCount açık abonelik sayısını döndürür (test ve tanılama için).
func (h *Hub) SubscriberCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs)
}
