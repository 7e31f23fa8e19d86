package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"f2computers/site/internal/config"
	"f2computers/site/internal/store"
)

type HandlerSet struct {
	log   zerolog.Logger
	cfg   *config.AppConfig
	store *store.Store
}

func NewHandlerSet(log zerolog.Logger, st *store.Store, cfg *config.AppConfig) HandlerSet {
	return HandlerSet{
		log:   log,
		cfg:   cfg,
		store: st,
	}
}

func (h HandlerSet) Register(router *gin.RouterGroup) {
	router.GET("/test", h.ServerTest)

	router.POST("/register", h.RegisterUser)
	router.POST("/login", h.Login)
	router.POST("/logout", h.Logout)
	router.POST("/contact", h.SubmitContact)

	admin := router.Group("/admin")
	admin.GET("/messages", h.AdminListMessages)
	admin.GET("/users", h.AdminListUsers)
	admin.GET("/stats", h.AdminStats)
	admin.PUT("/messages/:id/status", h.AdminUpdateMessageStatus)
}
