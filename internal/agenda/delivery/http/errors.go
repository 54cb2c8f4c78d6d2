package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"agenda-notifier/internal/agenda"
	"agenda-notifier/pkg/response"
)

// writeError translates use-case errors into HTTP responses.
func (h *handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, agenda.ErrRemoteQuery),
		errors.Is(err, agenda.ErrDeserialization),
		errors.Is(err, agenda.ErrDelivery):
		response.UpstreamError(c, err)
	default:
		response.InternalError(c, err)
	}
}
