package middlewares

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"go.uber.org/zap"

	"gemma.link/configs/configslog"
	"gemma.link/models"
	"gemma.link/pkg/accessgate"
	"gemma.link/services"
	"gemma.link/utils"
)

// Locals anahtarları. Handler'lar kimlik ve erişim durumunu buradan okur.
const (
	LocalIdentityID  = "identityID"
	LocalIdentity    = "identity"
	LocalProfile     = "profile"
	LocalAccessState = "accessState"
)

// AccessContext her istekte kimliği çözer, profili yükler ve erişim durumunu
// locals'a koyar. Anonim-öncelikli politika: session'da kimlik yoksa (veya
// bayatsa) yeni bir anonim kimlik açılır. Backend'e ulaşılamıyorsa istek
// UNRESOLVED durumuyla devam eder; yönlendirme kararını kapı middleware'leri verir.
func AccessContext(identityService services.IIdentityService, profileService services.IProfileService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess, err := utils.SessionStart(c)
		if err != nil {
			configslog.Log.Error("Session açılamadı", zap.Error(err))
			c.Locals(LocalAccessState, accessgate.StateUnresolved)
			return c.Next()
		}

		identity, resolveErr := resolveOrCreate(c, identityService, sess)
		if resolveErr != nil {
			// Altyapı hatası: kimlik "yok" değil "bilinmiyor".
			configslog.Log.Error("Kimlik çözümlenemedi", zap.Error(resolveErr))
			c.Locals(LocalAccessState, accessgate.StateUnresolved)
			return c.Next()
		}

		// Audit kolonları için eyleyen kimlik request context'ine işlenir.
		userCtx := context.WithValue(c.UserContext(), models.ContextUserIDKey, identity.ID)
		c.SetUserContext(userCtx)
		c.Locals(LocalIdentityID, identity.ID)
		c.Locals(LocalIdentity, identity)

		profile, profErr := profileService.GetByUserID(c.UserContext(), identity.ID)
		if profErr != nil && !errors.Is(profErr, services.ErrProfileNotFound) {
			configslog.Log.Error("Profil yüklenemedi", zap.String("identityID", identity.ID), zap.Error(profErr))
			c.Locals(LocalAccessState, accessgate.StateUnresolved)
			return c.Next()
		}
		if profile != nil {
			c.Locals(LocalProfile, profile)
		}

		gateIdentity := identity
		if !accessgate.Admitted(identity, profile) {
			gateIdentity = nil
		}
		c.Locals(LocalAccessState, accessgate.Resolve(true, gateIdentity, profile))
		return c.Next()
	}
}

func resolveOrCreate(c *fiber.Ctx, identityService services.IIdentityService, sess *session.Session) (*models.Identity, error) {
	id, _ := sess.Get(utils.SessionKeyIdentityID).(string)
	if id != "" {
		identity, err := identityService.Resolve(c.UserContext(), id)
		if err == nil {
			return identity, nil
		}
		if !errors.Is(err, services.ErrIdentityNotFound) {
			return nil, err
		}
		configslog.SLog.Warnf("Session'daki kimlik artık yok, yenisi açılıyor: %s", id)
	}

	identity, err := identityService.CreateAnonymous(c.UserContext())
	if err != nil {
		return nil, err
	}
	sess.Set(utils.SessionKeyIdentityID, identity.ID)
	if err := sess.Save(); err != nil {
		return nil, err
	}
	return identity, nil
}

// refreshAccessState locals'taki kimlik/profil üzerinden durumu yeniden hesaplar.
// Ertelenmiş davet kullanımı gibi istek içi geçişlerden sonra çağrılır.
func refreshAccessState(c *fiber.Ctx) {
	identity, _ := c.Locals(LocalIdentity).(*models.Identity)
	profile := CurrentProfile(c)
	gateIdentity := identity
	if !accessgate.Admitted(identity, profile) {
		gateIdentity = nil
	}
	c.Locals(LocalAccessState, accessgate.Resolve(identity != nil, gateIdentity, profile))
}

// CurrentAccessState locals'tan erişim durumunu okur; yoksa UNRESOLVED varsayar.
func CurrentAccessState(c *fiber.Ctx) accessgate.State {
	state, ok := c.Locals(LocalAccessState).(accessgate.State)
	if !ok {
		return accessgate.StateUnresolved
	}
	return state
}

// CurrentProfile locals'taki profili döndürür (yoksa nil).
func CurrentProfile(c *fiber.Ctx) *models.Profile {
	profile, _ := c.Locals(LocalProfile).(*models.Profile)
	return profile
}

// CurrentIdentityID locals'taki kimlik UUID'sini döndürür (yoksa boş).
func CurrentIdentityID(c *fiber.Ctx) string {
	id, _ := c.Locals(LocalIdentityID).(string)
	return id
}
