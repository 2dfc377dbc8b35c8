// Package accessgate kimlik + profil durumundan yönlendirme kararlarını türetir.
// Saf fonksiyonlardır; HTTP katmanı middleware'lerde yaşar.
package accessgate

import "gemma.link/models"

// State erişim durum makinesinin adımlarıdır.
// Unresolved -> Unauthenticated -> Incomplete -> Complete
type State int

const (
	// StateUnresolved kimlik çözümlemesi henüz sonuçlanmadı (örn. backend
	// erişilemez). Korumalı sayfalar yönlendirme değil bekleme ekranı gösterir.
	StateUnresolved State = iota
	// StateUnauthenticated kimlik yok; yalnızca davet kodu ekranı erişilebilir.
	StateUnauthenticated
	// StateIncomplete kimlik var ama ad/soyad eksik; profil kurulumuna zorlanır.
	StateIncomplete
	// StateComplete misafir sayfalarına tam erişim.
	StateComplete
)

func (s State) String() string {
	switch s {
	case StateUnauthenticated:
		return "UNAUTHENTICATED"
	case StateIncomplete:
		return "AUTHENTICATED_INCOMPLETE"
	case StateComplete:
		return "AUTHENTICATED_COMPLETE"
	default:
		return "UNRESOLVED"
	}
}

// Resolve mevcut kimlik ve profilden erişim durumunu hesaplar.
// resolved=false, "kimlik yok" ile karıştırılmamalıdır; backend'e
// ulaşılamadığında durum bilinmiyordur ve misafir login'e atılmaz.
func Resolve(resolved bool, identity *models.Identity, profile *models.Profile) State {
	if !resolved {
		return StateUnresolved
	}
	if identity == nil {
		return StateUnauthenticated
	}
	if !profile.IsComplete() {
		return StateIncomplete
	}
	return StateComplete
}

// Admitted kimliğin kapıdan geçmiş sayılıp sayılmadığını söyler. Anonim
// kimlikler ilk istekte açılır; davet kodu talep edilene (segment yazılana)
// kadar misafir "giriş yapmamış" kabul edilir. Parolalı kimlikler ve admin
// rolü kapıdan muaftır.
func Admitted(identity *models.Identity, profile *models.Profile) bool {
	if identity == nil {
		return false
	}
	if !identity.IsAnonymous {
		return true
	}
	if profile == nil {
		return false
	}
	return profile.Segment != nil || profile.Role == models.RoleAdmin
}

// AllowAdmin admin rotasına girişe izin verilip verilmeyeceğini söyler.
// Rol kontrolü segmentten bağımsızdır ama isim zorunluluğu admin için de geçerli.
func AllowAdmin(state State, profile *models.Profile) bool {
	return state == StateComplete && profile != nil && profile.Role == models.RoleAdmin
}
