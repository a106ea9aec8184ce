package httpx

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/you/remindersvc/internal/http/handlers"
	"github.com/you/remindersvc/internal/http/middleware"
)

func BuildRouter(uh *handlers.UserHandlers, rh *handlers.ReminderHandlers, th *handlers.TagHandlers, nh *handlers.NotificationHandlers, mh *handlers.MessageHandlers, authmw *middleware.AuthMW) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.WithTimeout(30*time.Second))

	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	r.POST("/usuarios/registro", uh.Register)
	r.POST("/usuarios/login", uh.Login)

	users := r.Group("/usuarios").Use(authmw.WithAuth())
	users.GET("", uh.Me)
	users.PUT("", uh.Update)
	users.POST("/regenerar-api-key", uh.RegenerateAPIKey)
	users.POST("/logout", uh.Logout)
	users.DELETE("", uh.Delete)

	reminders := r.Group("/lembretes").Use(authmw.WithAuth())
	reminders.POST("", rh.Create)
	reminders.GET("", rh.List)
	reminders.PUT("/:id", rh.Update)
	reminders.DELETE("/:id", rh.Delete)

	tags := r.Group("/tags").Use(authmw.WithAuth())
	tags.POST("", th.Create)
	tags.GET("", th.List)
	tags.PUT("/:id", th.Update)
	tags.DELETE("/:id", th.Delete)
	tags.POST("/lembrete/:lembreteId", th.Associate)
	tags.GET("/lembrete/:lembreteId", th.ListByReminder)

	notifications := r.Group("/notificacoes").Use(authmw.WithAuth())
	notifications.POST("", nh.Create)
	notifications.GET("", nh.List)
	notifications.PUT("/:id", nh.Update)
	notifications.DELETE("/:id", nh.Delete)

	messages := r.Group("/mensagens").Use(authmw.WithAuth())
	messages.POST("/whatsapp", mh.SendWhatsApp)
	messages.POST("/contato", mh.SendContact)

	verify := r.Group("/verificacao").Use(authmw.WithAuth())
	verify.POST("/whatsapp", mh.VerifyNumbers)

	return r
}
