package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"gemma.link/configs/configslog"
	"gemma.link/middlewares"
	"gemma.link/pkg/flashmessages"
	"gemma.link/pkg/renderer"
	"gemma.link/services"
)

// ProfileHandler profil kurulum akışını yürütür.
type ProfileHandler struct {
	profileService services.IProfileService
}

// NewProfileHandler bağımlılıkları dışarıdan alan yeni bir ProfileHandler oluşturur.
func NewProfileHandler(profileService services.IProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

// ShowSetup profil kurulum formunu gösterir (GET /profile-setup).
func (h *ProfileHandler) ShowSetup(c *fiber.Ctx) error {
	flashData, _ := flashmessages.GetFlashMessages(c)
	formData := flashmessages.GetFlashFormData(c)

	renderData := fiber.Map{
		"Title":    "Profilini Tamamla",
		"Profile":  middlewares.CurrentProfile(c),
		"FormData": formData,
	}
	renderer.SetFlashMessages(renderData, flashData)
	return renderer.Render(c, "profile/setup", "layouts/main_layout", renderData)
}

// SubmitSetup ad/soyad ve çölyak bilgisini kaydeder (POST /profile-setup).
// Validasyon hatasında profil değişmeden forma dönülür.
func (h *ProfileHandler) SubmitSetup(c *fiber.Ctx) error {
	identityID := middlewares.CurrentIdentityID(c)
	firstName := c.FormValue("first_name")
	lastName := c.FormValue("last_name")
	isCeliac := c.FormValue("is_celiac") == "on" || c.FormValue("is_celiac") == "true"

	update := services.ProfileUpdate{
		FirstName: &firstName,
		LastName:  &lastName,
		IsCeliac:  &isCeliac,
	}

	if _, err := h.profileService.Save(c.UserContext(), identityID, update, true); err != nil {
		errMsg := "Profil kaydedilemedi."
		if errors.Is(err, services.ErrProfileValidation) {
			errMsg = err.Error()
		} else {
			configslog.Log.Error("SubmitSetup: kayıt hatası", zap.String("identityID", identityID), zap.Error(err))
		}
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, errMsg)
		_ = flashmessages.SetFlashFormData(c, fiber.Map{
			"first_name": firstName,
			"last_name":  lastName,
			"is_celiac":  isCeliac,
		})
		return c.Redirect("/profile-setup", fiber.StatusSeeOther)
	}

	_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "Profiliniz kaydedildi.")
	return c.Redirect("/", fiber.StatusFound)
}
