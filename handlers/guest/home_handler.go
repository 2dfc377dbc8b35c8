package handlers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"gemma.link/configs/configslog"
	"gemma.link/middlewares"
	"gemma.link/models"
	"gemma.link/pkg/eventtime"
	"gemma.link/pkg/flashmessages"
	"gemma.link/pkg/renderer"
	"gemma.link/services"
)

// HomeHandler misafir ana sayfası ve LCV akışını yürütür.
type HomeHandler struct {
	rsvpService services.IRSVPService
}

// NewHomeHandler bağımlılıkları dışarıdan alan yeni bir HomeHandler oluşturur.
func NewHomeHandler(rsvpService services.IRSVPService) *HomeHandler {
	return &HomeHandler{rsvpService: rsvpService}
}

// ShowHome geri sayım, LCV durumu ve masa kartını gösterir (GET /).
func (h *HomeHandler) ShowHome(c *fiber.Ctx) error {
	flashData, _ := flashmessages.GetFlashMessages(c)
	profile := middlewares.CurrentProfile(c)
	identityID := middlewares.CurrentIdentityID(c)

	var segment *models.Segment
	if profile != nil {
		segment = profile.Segment
	}
	target := eventtime.TargetFor(segment)
	countdown := eventtime.ComputeCountdown(target, time.Now())

	status, rsvp, err := h.rsvpService.GetStatus(c.UserContext(), identityID)
	if err != nil {
		configslog.Log.Error("ShowHome: LCV durumu okunamadı", zap.String("identityID", identityID), zap.Error(err))
		status = models.RSVPStatusPending
	}

	table, err := h.rsvpService.GetTable(c.UserContext(), identityID)
	if err != nil {
		configslog.Log.Error("ShowHome: masa ataması okunamadı", zap.String("identityID", identityID), zap.Error(err))
	}

	renderData := fiber.Map{
		"Title":      "Gemma 15",
		"Profile":    profile,
		"Countdown":  countdown,
		"EventDate":  eventtime.FormatEventDate(target),
		"RSVPStatus": status,
		"RSVP":       rsvp,
		"Table":      table,
	}
	renderer.SetFlashMessages(renderData, flashData)
	return renderer.Render(c, "home/index", "layouts/main_layout", renderData)
}

// SubmitRSVP misafirin cevabını kaydeder (POST /rsvp).
func (h *HomeHandler) SubmitRSVP(c *fiber.Ctx) error {
	identityID := middlewares.CurrentIdentityID(c)
	status := models.RSVPStatus(c.FormValue("status"))
	note := c.FormValue("note")

	if err := h.rsvpService.SetStatus(c.UserContext(), identityID, status, note); err != nil {
		errMsg := "Cevabınız kaydedilemedi."
		if errors.Is(err, services.ErrRSVPInvalidStatus) {
			errMsg = "Geçersiz cevap."
		} else {
			configslog.Log.Error("SubmitRSVP: kayıt hatası", zap.String("identityID", identityID), zap.Error(err))
		}
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, errMsg)
		return c.Redirect("/", fiber.StatusSeeOther)
	}

	_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "Cevabınız kaydedildi.")
	return c.Redirect("/", fiber.StatusSeeOther)
}
