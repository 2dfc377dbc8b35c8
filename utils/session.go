package utils

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
)

// Session anahtarları.
const (
	SessionKeyIdentityID  = "identity_id"
	SessionKeyPendingCode = "pending_invite_code"
)

var ErrSessionStoreMissing = errors.New("session store locals içinde bulunamadı")

// SessionStart istekteki session'ı açar. Store, router'daki bootstrap
// middleware tarafından locals'a konur.
func SessionStart(c *fiber.Ctx) (*session.Session, error) {
	store, ok := c.Locals("session_store").(*session.Store)
	if !ok || store == nil {
		return nil, ErrSessionStoreMissing
	}
	return store.Get(c)
}

// GetIdentityIDFromSession session'daki kimlik UUID'sini döndürür.
func GetIdentityIDFromSession(sess *session.Session) (string, error) {
	id, ok := sess.Get(SessionKeyIdentityID).(string)
	if !ok || id == "" {
		return "", errors.New("session'da kimlik yok")
	}
	return id, nil
}

// SetIdentityIDToSession kimliği session'a yazar ve kaydeder.
func SetIdentityIDToSession(sess *session.Session, identityID string) error {
	sess.Set(SessionKeyIdentityID, identityID)
	return sess.Save()
}

// GetPendingInviteCode bekleyen davet kodunu okur (yoksa boş string).
func GetPendingInviteCode(sess *session.Session) string {
	code, _ := sess.Get(SessionKeyPendingCode).(string)
	return code
}

// SetPendingInviteCode kodu ertelenmiş kullanım için session'a yazar.
func SetPendingInviteCode(sess *session.Session, code string) error {
	sess.Set(SessionKeyPendingCode, code)
	return sess.Save()
}

// ClearPendingInviteCode bekleyen kodu siler. Ertelenmiş kullanım tek denemedir;
// başarı da başarısızlık da kodu düşürür.
func ClearPendingInviteCode(sess *session.Session) error {
	sess.Delete(SessionKeyPendingCode)
	return sess.Save()
}

// DestroySession oturumu tamamen sonlandırır (çıkış).
func DestroySession(sess *session.Session) error {
	return sess.Destroy()
}
