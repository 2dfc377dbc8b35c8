package handlers

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"gemma.link/configs/configslog"
	"gemma.link/pkg/flashmessages"
	"gemma.link/pkg/renderer"
	"gemma.link/services"
)

// TableAdminHandler masa yönetim ekranını yürütür.
type TableAdminHandler struct {
	profileService services.IProfileService
	rsvpService    services.IRSVPService
}

// NewTableAdminHandler bağımlılıkları dışarıdan alan yeni bir TableAdminHandler oluşturur.
func NewTableAdminHandler(profileService services.IProfileService, rsvpService services.IRSVPService) *TableAdminHandler {
	return &TableAdminHandler{
		profileService: profileService,
		rsvpService:    rsvpService,
	}
}

// ListGuests misafirleri LCV ve masa bilgisiyle listeler (GET /admin/tables).
// search parametresi aksan duyarsız isim filtresidir.
func (h *TableAdminHandler) ListGuests(c *fiber.Ctx) error {
	flashData, _ := flashmessages.GetFlashMessages(c)
	search := strings.TrimSpace(c.Query("search"))

	renderData := fiber.Map{
		"Title":  "Masa Yönetimi",
		"Search": search,
	}
	renderer.SetFlashMessages(renderData, flashData)

	entries, err := h.profileService.ListGuests(c.UserContext(), search)
	if err != nil {
		configslog.Log.Error("ListGuests: liste alınamadı", zap.Error(err))
		renderData[renderer.FlashErrorKeyView] = "Misafir listesi alınırken bir hata oluştu."
		entries = []services.GuestListEntry{}
	}
	renderData["Guests"] = entries

	return renderer.Render(c, "admin/tables", "layouts/admin_layout", renderData)
}

// AssignTable bir misafiri masaya atar (POST /admin/tables/assign).
func (h *TableAdminHandler) AssignTable(c *fiber.Ctx) error {
	userID := c.FormValue("user_id")
	label := c.FormValue("table_label")

	if err := h.rsvpService.AssignTable(c.UserContext(), userID, label); err != nil {
		errMsg := "Masa ataması yapılamadı."
		if errors.Is(err, services.ErrTableLabelRequired) {
			errMsg = "Masa etiketi boş olamaz."
		} else {
			configslog.Log.Error("AssignTable: atama hatası",
				zap.String("userID", userID), zap.String("label", label), zap.Error(err))
		}
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, errMsg)
		return c.Redirect("/admin/tables", fiber.StatusSeeOther)
	}

	_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "Masa ataması kaydedildi.")
	return c.Redirect("/admin/tables", fiber.StatusSeeOther)
}
