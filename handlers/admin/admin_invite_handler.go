package handlers

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"gemma.link/configs/configslog"
	"gemma.link/models"
	"gemma.link/pkg/flashmessages"
	"gemma.link/pkg/queryparams"
	"gemma.link/pkg/renderer"
	"gemma.link/services"
)

// InviteAdminHandler davet kodu yönetim ekranını yürütür.
type InviteAdminHandler struct {
	inviteService services.IInviteService
}

// NewInviteAdminHandler bağımlılıkları dışarıdan alan yeni bir InviteAdminHandler oluşturur.
func NewInviteAdminHandler(inviteService services.IInviteService) *InviteAdminHandler {
	return &InviteAdminHandler{inviteService: inviteService}
}

// ListInvites davet kodlarını sayfalanmış listeler (GET /admin).
func (h *InviteAdminHandler) ListInvites(c *fiber.Ctx) error {
	flashData, _ := flashmessages.GetFlashMessages(c)

	var params queryparams.ListParams
	if err := c.QueryParser(&params); err != nil {
		configslog.Log.Warn("ListInvites: sayfalama parametreleri parse edilemedi", zap.Error(err))
		params = queryparams.DefaultListParams("created_at")
	}
	params.Validate()

	renderData := fiber.Map{
		"Title":  "Davet Kodları",
		"Params": params,
	}
	renderer.SetFlashMessages(renderData, flashData)

	result, err := h.inviteService.GetAllInvitesPaginated(c.UserContext(), params)
	if err != nil {
		configslog.Log.Error("ListInvites: liste alınamadı", zap.Error(err))
		renderData[renderer.FlashErrorKeyView] = "Davet kodları listelenirken bir hata oluştu."
		result = &queryparams.PaginatedResult{Data: []models.Invite{}, Meta: queryparams.PaginationMeta{}}
	}
	renderData["Result"] = result

	return renderer.Render(c, "admin/invites", "layouts/admin_layout", renderData, http.StatusOK)
}

// CreateInvite yeni davet kodu oluşturur (POST /admin/invites).
func (h *InviteAdminHandler) CreateInvite(c *fiber.Ctx) error {
	code := c.FormValue("code")
	segment := models.Segment(c.FormValue("segment"))

	if _, err := h.inviteService.CreateInvite(c.UserContext(), code, segment); err != nil {
		errMsg := "Davet kodu oluşturulamadı."
		switch {
		case errors.Is(err, services.ErrInviteInvalidInput):
			errMsg = "Kod ve segment (YOUNG/ADULT) zorunludur."
		case errors.Is(err, services.ErrInviteCodeTaken):
			errMsg = "Bu kod zaten mevcut."
		default:
			configslog.Log.Error("CreateInvite: oluşturma hatası", zap.String("code", code), zap.Error(err))
		}
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, errMsg)
		return c.Redirect("/admin", fiber.StatusSeeOther)
	}

	_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "Davet kodu oluşturuldu: "+code)
	return c.Redirect("/admin", fiber.StatusSeeOther)
}

// ToggleInvite kodu açar/kapatır (POST /admin/invites/:id/toggle).
// Kullanılmış kodu kapatmak geçmişi değiştirmez; yalnızca yeni talepleri keser.
func (h *InviteAdminHandler) ToggleInvite(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Geçersiz kayıt.")
		return c.Redirect("/admin", fiber.StatusSeeOther)
	}

	invite, err := h.inviteService.ToggleEnabled(c.UserContext(), uint(id))
	if err != nil {
		errMsg := "Davet kodu güncellenemedi."
		if errors.Is(err, services.ErrInviteNotFound) {
			errMsg = "Davet kodu bulunamadı."
		} else {
			configslog.Log.Error("ToggleInvite: güncelleme hatası", zap.Int("id", id), zap.Error(err))
		}
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, errMsg)
		return c.Redirect("/admin", fiber.StatusSeeOther)
	}

	statusText := "kapatıldı"
	if invite.Enabled {
		statusText = "açıldı"
	}
	_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "Kod "+invite.Code+" "+statusText+".")
	return c.Redirect("/admin", fiber.StatusSeeOther)
}
