package http

import (
	"github.com/gin-gonic/gin"

	"agenda-notifier/internal/agenda"
	pkgLog "agenda-notifier/pkg/log"
)

// Handler is the public interface for the agenda HTTP delivery layer.
type Handler interface {
	SendAgenda(c *gin.Context)
	SendPing(c *gin.Context)
}

type handler struct {
	l  pkgLog.Logger
	uc agenda.UseCase
}

// New creates a new HTTP handler for the agenda domain.
func New(l pkgLog.Logger, uc agenda.UseCase) Handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
