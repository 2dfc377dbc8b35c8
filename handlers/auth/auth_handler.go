package handlers

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"gemma.link/configs/configslog"
	"gemma.link/middlewares"
	"gemma.link/pkg/flashmessages"
	"gemma.link/pkg/renderer"
	"gemma.link/services"
	"gemma.link/utils"
)

// AuthHandler davet kapısı, yönetici girişi ve çıkış akışlarını yürütür.
type AuthHandler struct {
	identityService services.IIdentityService
	inviteService   services.IInviteService
	authService     services.IAuthService
}

// NewAuthHandler bağımlılıkları dışarıdan alan yeni bir AuthHandler oluşturur.
func NewAuthHandler(identityService services.IIdentityService, inviteService services.IInviteService, authService services.IAuthService) *AuthHandler {
	return &AuthHandler{
		identityService: identityService,
		inviteService:   inviteService,
		authService:     authService,
	}
}

// ShowInviteGate davet kodu ekranını gösterir (GET /login).
func (h *AuthHandler) ShowInviteGate(c *fiber.Ctx) error {
	flashData, _ := flashmessages.GetFlashMessages(c)
	renderData := fiber.Map{
		"Title": "Gemma 15 — Davet",
	}
	renderer.SetFlashMessages(renderData, flashData)
	return renderer.Render(c, "auth/login", "layouts/main_layout", renderData)
}

// SubmitInviteCode davet kodunu işler (POST /login).
// Kod önce session'a yazılır; kimlik hazırsa talep hemen çalışır, değilse
// bir sonraki istekte middleware tarafından bir kez denenir.
func (h *AuthHandler) SubmitInviteCode(c *fiber.Ctx) error {
	code := strings.TrimSpace(c.FormValue("invite_code"))
	if code == "" {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Lütfen davet kodunuzu girin.")
		return c.Redirect("/login", fiber.StatusSeeOther)
	}

	sess, err := utils.SessionStart(c)
	if err != nil {
		configslog.Log.Error("SubmitInviteCode: session açılamadı", zap.Error(err))
		return c.Redirect("/login", fiber.StatusSeeOther)
	}
	if err := utils.SetPendingInviteCode(sess, code); err != nil {
		configslog.Log.Error("SubmitInviteCode: kod session'a yazılamadı", zap.Error(err))
	}

	identityID := middlewares.CurrentIdentityID(c)
	if identityID == "" {
		// Kimlik bu istekte çözümlenemedi; kod bekliyor, bir sonraki
		// istekte kullanılacak.
		return c.Redirect("/", fiber.StatusSeeOther)
	}

	_ = utils.ClearPendingInviteCode(sess)
	if _, err := h.inviteService.Claim(c.UserContext(), code, identityID); err != nil {
		errMsg := "Davet kodu kullanılamadı."
		switch {
		case errors.Is(err, services.ErrInviteNotFound):
			errMsg = "Böyle bir davet kodu yok."
		case errors.Is(err, services.ErrInviteDisabled):
			errMsg = "Bu davet kodu devre dışı bırakılmış."
		case errors.Is(err, services.ErrInviteAlreadyUsed):
			errMsg = "Bu davet kodu daha önce kullanılmış."
		case errors.Is(err, services.ErrInviteInvalidInput):
			errMsg = "Geçersiz davet kodu."
		default:
			configslog.Log.Error("SubmitInviteCode: talep hatası",
				zap.String("code", code), zap.String("identityID", identityID), zap.Error(err))
		}
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, errMsg)
		return c.Redirect("/login", fiber.StatusSeeOther)
	}

	configslog.SLog.Infof("Davet kodu kullanıldı: %s -> %s", code, identityID)
	_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "Hoş geldiniz! Şimdi profilinizi tamamlayın.")
	return c.Redirect("/profile-setup", fiber.StatusSeeOther)
}

// ShowAdminLogin yönetici giriş formunu gösterir (GET /auth/login).
func (h *AuthHandler) ShowAdminLogin(c *fiber.Ctx) error {
	flashData, _ := flashmessages.GetFlashMessages(c)
	renderData := fiber.Map{
		"Title": "Yönetici Girişi",
	}
	renderer.SetFlashMessages(renderData, flashData)
	return renderer.Render(c, "auth/admin_login", "layouts/main_layout", renderData)
}

// AdminLogin e-posta + parola ile yönetici girişi yapar (POST /auth/login).
func (h *AuthHandler) AdminLogin(c *fiber.Ctx) error {
	email := c.FormValue("email")
	password := c.FormValue("password")

	identity, err := h.authService.Authenticate(c.UserContext(), email, password)
	if err != nil {
		if !errors.Is(err, services.ErrInvalidCredentials) {
			configslog.Log.Error("AdminLogin: beklenmeyen hata", zap.Error(err))
		}
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, services.ErrInvalidCredentials.Error())
		return c.Redirect("/auth/login", fiber.StatusSeeOther)
	}

	sess, sessErr := utils.SessionStart(c)
	if sessErr != nil {
		configslog.Log.Error("AdminLogin: session açılamadı", zap.Error(sessErr))
		return c.Redirect("/auth/login", fiber.StatusSeeOther)
	}
	// Anonim kimliğin yerine yönetici kimliği geçer.
	if err := utils.SetIdentityIDToSession(sess, identity.ID); err != nil {
		configslog.Log.Error("AdminLogin: kimlik session'a yazılamadı", zap.Error(err))
		return c.Redirect("/auth/login", fiber.StatusSeeOther)
	}

	configslog.SLog.Infof("Yönetici girişi: %s", identity.ID)
	return c.Redirect("/admin", fiber.StatusFound)
}

// Logout oturumu kapatır (GET/POST /auth/logout).
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	identityID := middlewares.CurrentIdentityID(c)
	if identityID != "" {
		h.identityService.SignOut(identityID)
	}
	if sess, err := utils.SessionStart(c); err == nil {
		if destroyErr := utils.DestroySession(sess); destroyErr != nil {
			configslog.Log.Error("Logout: session sonlandırılamadı", zap.Error(destroyErr))
		}
	}
	return c.Redirect("/login", fiber.StatusFound)
}
