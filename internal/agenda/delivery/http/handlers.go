package http

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	pkgLog "agenda-notifier/pkg/log"
	"agenda-notifier/pkg/response"
)

// SendAgenda runs one agenda send.
// @Summary Send agenda
// @Description Query today's tasks and send the digest SMS once
// @Tags Agenda
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Resp "Digest sent"
// @Failure 401 {object} response.Resp "Missing or wrong trigger token"
// @Failure 429 {object} response.Resp "Rate limited"
// @Failure 502 {object} response.Resp "Airtable or Twilio failed"
// @Router /api/v1/agenda/send [post]
func (h *handler) SendAgenda(c *gin.Context) {
	ctx := pkgLog.WithRunID(c.Request.Context(), uuid.NewString())

	out, err := h.uc.SendAgenda(ctx)
	if err != nil {
		h.l.Errorf(ctx, "agenda.delivery.http.SendAgenda: %v", err)
		h.writeError(c, err)
		return
	}

	response.OK(c, newSendResp(out))
}

// SendPing sends the test message.
// @Summary Send test SMS
// @Description Send the fixed test message to the configured number
// @Tags Agenda
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Resp "Test message sent"
// @Failure 401 {object} response.Resp "Missing or wrong trigger token"
// @Failure 429 {object} response.Resp "Rate limited"
// @Failure 502 {object} response.Resp "Twilio failed"
// @Router /api/v1/agenda/ping [post]
func (h *handler) SendPing(c *gin.Context) {
	ctx := pkgLog.WithRunID(c.Request.Context(), uuid.NewString())

	out, err := h.uc.SendPing(ctx)
	if err != nil {
		h.l.Errorf(ctx, "agenda.delivery.http.SendPing: %v", err)
		h.writeError(c, err)
		return
	}

	response.OK(c, newSendResp(out))
}
