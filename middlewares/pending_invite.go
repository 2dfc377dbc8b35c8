package middlewares

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"gemma.link/configs/configslog"
	"gemma.link/pkg/flashmessages"
	"gemma.link/services"
	"gemma.link/utils"
)

// RedeemPendingInvite session'da bekleyen davet kodunu, kimlik hazır olur olmaz
// bir kez kullanmayı dener. Tek denemedir: sonuç ne olursa olsun kod düşürülür.
// "Zaten kullanılmış" ertelenmiş kullanımda zararsızdır (kod büyük olasılıkla
// aynı kimlik tarafından az önce kullanıldı); sessizce loglanır. Diğer hatalar
// tek bir flash mesajıyla yüzeye çıkar.
func RedeemPendingInvite(inviteService services.IInviteService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		identityID := CurrentIdentityID(c)
		if identityID == "" {
			return c.Next()
		}

		sess, err := utils.SessionStart(c)
		if err != nil {
			return c.Next()
		}
		code := utils.GetPendingInviteCode(sess)
		if code == "" {
			return c.Next()
		}

		if err := utils.ClearPendingInviteCode(sess); err != nil {
			configslog.Log.Error("Bekleyen davet kodu silinemedi", zap.Error(err))
		}

		invite, err := inviteService.Claim(c.UserContext(), code, identityID)
		if err != nil {
			if errors.Is(err, services.ErrInviteAlreadyUsed) {
				configslog.SLog.Debugf("Ertelenmiş davet kodu zaten kullanılmış (zararsız): %s", code)
				return c.Next()
			}
			configslog.Log.Warn("Ertelenmiş davet kodu kullanılamadı",
				zap.String("code", code), zap.String("identityID", identityID), zap.Error(err))
			_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Davet kodu kullanılamadı: "+err.Error())
			return c.Next()
		}

		// Segment bu istekte belli oldu; erişim durumu yenilenmeli ki
		// misafir kapıya geri düşmesin.
		if profile := CurrentProfile(c); profile != nil {
			segment := invite.Segment
			profile.Segment = &segment
		}
		refreshAccessState(c)

		configslog.SLog.Infof("Ertelenmiş davet kodu kullanıldı: %s -> %s", code, identityID)
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "Davet kodunuz doğrulandı.")
		return c.Next()
	}
}
