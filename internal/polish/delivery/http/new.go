package http

import (
	"report-srv/internal/middleware"
	"report-srv/internal/polish"
	"report-srv/pkg/discord"
	"report-srv/pkg/log"

	"github.com/gin-gonic/gin"
)

type Handler interface {
	RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware)
}

type handler struct {
	l       log.Logger
	uc      polish.UseCase
	discord discord.IDiscord
}

func New(l log.Logger, uc polish.UseCase, discord discord.IDiscord) Handler {
	return &handler{
		l:       l,
		uc:      uc,
		discord: discord,
	}
}
